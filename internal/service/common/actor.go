//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"fmt"
	"os"
	"os/user"

	"github.com/oshokin/statebox/internal/logger"
)

// DetectActor returns "username@hostname" of the current process for audit logs.
func DetectActor() (string, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return "", fmt.Errorf("hostname: %w", err)
	}

	currentUser, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("current user: %w", err)
	}

	return currentUser.Username + "@" + hostname, nil
}

// ActorOptions returns the options that attach the detected actor to calls.
// Audit metadata is optional, so a detection failure is only logged.
func ActorOptions(ctx context.Context) []Option {
	actor, err := DetectActor()
	if err != nil {
		logger.WarnKV(ctx, "Actor detection failed", "error", err)

		return nil
	}

	return []Option{WithActor(actor)}
}
