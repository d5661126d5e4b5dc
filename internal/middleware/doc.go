// Package middleware provides reusable store middleware: dispatch logging,
// delayed follow-up dispatches and an in-memory recorder.
package middleware
