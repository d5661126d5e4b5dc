package version

import (
	"fmt"
	"runtime"
)

var (
	// Version is the semantic version, overridden via ldflags for releases.
	Version = "0.1.0"
	// Commit is the short git SHA set at build time.
	Commit = "none"
	// BuildTime is the UTC build timestamp set at build time.
	BuildTime = "unknown"
)

// Short returns only the semantic version.
func Short() string {
	return Version
}

// Full returns the version with commit, build time and Go runtime.
func Full() string {
	return fmt.Sprintf("statebox %s (commit %s, built %s, %s)", Version, Commit, BuildTime, runtime.Version())
}
