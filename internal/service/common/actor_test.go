//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestDetectActor ensures both username and hostname are present.
func TestDetectActor(t *testing.T) {
	t.Parallel()

	actor, err := DetectActor()
	require.NoError(t, err)

	user, host, ok := strings.Cut(actor, "@")
	require.True(t, ok)
	require.NotEmpty(t, user)
	require.NotEmpty(t, host)
}

// TestActorOptions checks that the returned options attach the detected actor.
func TestActorOptions(t *testing.T) {
	t.Parallel()

	actor, err := DetectActor()
	require.NoError(t, err)

	opts := ActorOptions(context.Background())
	require.Len(t, opts, 1)

	var c Client
	for _, opt := range opts {
		opt(&c)
	}

	require.Equal(t, actor, c.actor)
}
