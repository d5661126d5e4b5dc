package counter

import (
	"context"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	domain "github.com/oshokin/statebox/internal/domain/counter"
	"github.com/oshokin/statebox/internal/logger"
	pb "github.com/oshokin/statebox/internal/pb/v1"
	"github.com/oshokin/statebox/internal/store"
)

// unknownActor is logged when a request does not name its caller.
const unknownActor = "<unknown>"

// Store abstracts the store operations the transport layer depends on.
type Store interface {
	Dispatch(action domain.Action)
	State() domain.State
	Subscribe(observer store.Observer[domain.State]) (unsubscribe func())
}

// Server implements the CounterService gRPC API.
type Server struct {
	pb.UnimplementedCounterServiceServer

	// store is the counter store served by this transport.
	store Store
	// shutdown is closed to end every open Watch stream.
	shutdown chan struct{}
	// shutdownOnce guards shutdown.
	shutdownOnce sync.Once
}

// NewServer wires the provided store into a gRPC handler.
func NewServer(store Store) *Server {
	return &Server{
		store:    store,
		shutdown: make(chan struct{}),
	}
}

// Dispatch submits the named action to the store.
func (s *Server) Dispatch(ctx context.Context, req *wrapperspb.StringValue) (*emptypb.Empty, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	action, err := domain.ParseAction(req.GetValue())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	s.store.Dispatch(action)

	logger.DebugKV(ctx, "Action accepted", "action", action.String(), "actor", actorFromContext(ctx))

	return new(emptypb.Empty), nil
}

// GetState returns the committed counter value.
func (s *Server) GetState(context.Context, *emptypb.Empty) (*wrapperspb.Int64Value, error) {
	return wrapperspb.Int64(s.store.State().Count), nil
}

// Watch streams the current value and then every committed value.
// A slow client skips intermediate values and always receives the latest one.
func (s *Server) Watch(_ *emptypb.Empty, stream grpc.ServerStreamingServer[wrapperspb.Int64Value]) error {
	ctx := stream.Context()

	updates := make(chan domain.State, 1)

	unsubscribe := s.store.Subscribe(func(state domain.State) {
		offerLatest(updates, state)
	})
	defer unsubscribe()

	logger.DebugKV(ctx, "Watch stream opened", "actor", actorFromContext(ctx))

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.shutdown:
			return status.Error(codes.Unavailable, "server is shutting down")
		case state := <-updates:
			if err := stream.Send(wrapperspb.Int64(state.Count)); err != nil {
				return err
			}
		}
	}
}

// Shutdown ends every open Watch stream so the gRPC server can stop gracefully.
func (s *Server) Shutdown() {
	s.shutdownOnce.Do(func() {
		close(s.shutdown)
	})
}

// actorFromContext returns the caller named in request metadata.
func actorFromContext(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return unknownActor
	}

	if values := md.Get(pb.ActorMetadataKey); len(values) > 0 && values[0] != "" {
		return values[0]
	}

	return unknownActor
}

// offerLatest puts state into a one-slot channel, replacing an unread value.
func offerLatest(ch chan domain.State, state domain.State) {
	for {
		select {
		case ch <- state:
			return
		default:
		}

		select {
		case <-ch:
		default:
		}
	}
}
