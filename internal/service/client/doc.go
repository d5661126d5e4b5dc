// Package client implements the one-shot statebox commands: dispatching an
// action to the server and printing the counter value.
package client
