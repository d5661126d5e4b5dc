// Package pb holds the gRPC bindings of statebox.counter.v1.CounterService
// described in api/proto/statebox/counter/v1/counter.proto.
//
// The service only uses well-known wrapper messages, so the bindings are the
// service descriptor plus typed client and server helpers.
package pb
