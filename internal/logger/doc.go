// Package logger wraps zap with the conventions used across statebox:
//   - a global sugared logger writing console lines to stdout,
//   - context helpers (ToContext/FromContext/WithName/WithKV/WithFields),
//   - level parsing and runtime level changes,
//   - shorthand functions (Infof, DebugKV, ErrorKV, ...) that pull the
//     logger out of a context.
//
// Services and middleware take a context and log through it so that every
// line carries the component name and request-scoped fields.
package logger
