package server

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"

	api "github.com/oshokin/statebox/internal/api/grpc/counter"
	"github.com/oshokin/statebox/internal/domain/counter"
)

// TestResolveListenAddress covers the override, port extraction and error paths.
func TestResolveListenAddress(t *testing.T) {
	t.Parallel()

	addr, err := resolveListenAddress("example.com:7000", "")
	require.NoError(t, err)
	require.Equal(t, ":7000", addr)

	addr, err = resolveListenAddress("example.com:7000", "127.0.0.1:9000")
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:9000", addr)

	_, err = resolveListenAddress("", "")
	require.ErrorIs(t, err, ErrNoServerAddress)

	_, err = resolveListenAddress("no-port", "")
	require.Error(t, err)
}

// newTestAPI returns a transport server over a fresh counter store.
func newTestAPI(t *testing.T) *api.Server {
	t.Helper()

	s := counter.NewStore(context.Background(), counter.State{})
	t.Cleanup(s.Close)

	return api.NewServer(s)
}

// TestServe_ReturnsOnServeFailure ensures a failing listener ends serve without waiting for cancellation.
func TestServe_ReturnsOnServeFailure(t *testing.T) {
	t.Parallel()

	lc := net.ListenConfig{}

	lis, err := lc.Listen(context.Background(), "tcp", "127.0.0.1:0")
	require.NoError(t, err)
	require.NoError(t, lis.Close())

	// The parent context is never canceled; serve must clean up on its own.
	err = serve(context.Background(), grpc.NewServer(), newTestAPI(t), lis)
	require.ErrorContains(t, err, "serve gRPC")
}

// TestServe_StopsOnCancel checks that cancellation stops serving without an error.
func TestServe_StopsOnCancel(t *testing.T) {
	t.Parallel()

	lc := net.ListenConfig{}

	lis, err := lc.Listen(context.Background(), "tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, serve(ctx, grpc.NewServer(), newTestAPI(t), lis))
}
