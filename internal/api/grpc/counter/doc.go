// Package counter implements the gRPC transport of the counter store.
//
// Dispatch translates wire action names into counter actions, GetState reads
// the committed value and Watch streams committed values to the client.
package counter
