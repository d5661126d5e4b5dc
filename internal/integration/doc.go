// Package integration runs the statebox server and client together over a
// real TCP listener.
package integration
