package counter

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	domain "github.com/oshokin/statebox/internal/domain/counter"
	pb "github.com/oshokin/statebox/internal/pb/v1"
)

// TestCounterService_OverBufconn runs the generated-style client against the server over an in-memory listener.
func TestCounterService_OverBufconn(t *testing.T) {
	t.Parallel()

	st := domain.NewStore(context.Background(), domain.State{})
	defer st.Close()

	lis := bufconn.Listen(1 << 20)
	api := NewServer(st)

	grpcServer := grpc.NewServer()
	pb.RegisterCounterServiceServer(grpcServer, api)

	go func() {
		_ = grpcServer.Serve(lis) //nolint:errcheck // Stopped below.
	}()

	defer func() {
		api.Shutdown()
		grpcServer.GracefulStop()
	}()

	conn, err := grpc.NewClient(
		"passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	defer func() {
		_ = conn.Close()
	}()

	client := pb.NewCounterServiceClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	watch, err := client.Watch(ctx, new(emptypb.Empty))
	require.NoError(t, err)

	first, err := watch.Recv()
	require.NoError(t, err)
	require.Zero(t, first.GetValue())

	_, err = client.Dispatch(ctx, wrapperspb.String("increment"))
	require.NoError(t, err)

	// Watch delivers the latest value; wait until the increment shows up.
	for {
		v, err := watch.Recv()
		require.NoError(t, err)

		if v.GetValue() == 1 {
			break
		}
	}

	got, err := client.GetState(ctx, new(emptypb.Empty))
	require.NoError(t, err)
	require.EqualValues(t, 1, got.GetValue())

	_, err = client.Dispatch(ctx, wrapperspb.String("bogus"))
	require.Error(t, err)
}
