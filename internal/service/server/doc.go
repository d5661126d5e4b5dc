// Package server runs the counter store behind the CounterService gRPC API.
package server
