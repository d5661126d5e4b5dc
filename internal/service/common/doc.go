// Package common holds helpers shared by the statebox client commands: a
// CounterService client wrapper with call timeouts and actor metadata, and
// detection of the current actor for audit logs.
//
//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common
