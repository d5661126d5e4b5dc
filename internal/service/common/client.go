//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/oshokin/statebox/internal/config"
	pb "github.com/oshokin/statebox/internal/pb/v1"
)

// Client wraps the CounterService gRPC client with timeouts and actor metadata.
type Client struct {
	// conn is the underlying gRPC connection.
	conn *grpc.ClientConn
	// api is the CounterService client.
	api pb.CounterServiceClient

	// callTimeout bounds unary calls. Watch streams are not bounded.
	callTimeout time.Duration
	// actor is sent with every call when set.
	actor string
}

// Option configures client behaviour.
type Option func(*Client)

// WithCallTimeout sets a default timeout for unary calls.
func WithCallTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.callTimeout = timeout
		}
	}
}

// WithActor attaches the given actor to every call.
func WithActor(actor string) Option {
	return func(c *Client) {
		c.actor = actor
	}
}

var (
	// errAddressRequired is returned when the server address is missing.
	errAddressRequired = errors.New("address must be provided")
	// errActionRequired is returned when an empty action name is dispatched.
	errActionRequired = errors.New("action must be provided")
)

// Dial creates a client for the server at address.
// The connection uses insecure transport credentials.
func Dial(_ context.Context, address string, opts ...Option) (*Client, error) {
	if address == "" {
		return nil, errAddressRequired
	}

	conn, err := grpc.NewClient(
		address,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	)
	if err != nil {
		return nil, fmt.Errorf("dial statebox server: %w", err)
	}

	client := &Client{
		conn:        conn,
		api:         pb.NewCounterServiceClient(conn),
		callTimeout: config.DefaultTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}

	return c.conn.Close()
}

// Dispatch submits the named action.
func (c *Client) Dispatch(ctx context.Context, action string) error {
	if action == "" {
		return errActionRequired
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	if _, err := c.api.Dispatch(callCtx, wrapperspb.String(action)); err != nil {
		return fmt.Errorf("dispatch %s: %w", action, err)
	}

	return nil
}

// GetState returns the committed counter value.
func (c *Client) GetState(ctx context.Context) (int64, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.GetState(callCtx, new(emptypb.Empty))
	if err != nil {
		return 0, fmt.Errorf("get state: %w", err)
	}

	return resp.GetValue(), nil
}

// Watch calls fn with the current value and every later value until ctx
// ends, fn returns an error or the server closes the stream.
func (c *Client) Watch(ctx context.Context, fn func(count int64) error) error {
	stream, err := c.api.Watch(c.withActor(ctx), new(emptypb.Empty))
	if err != nil {
		return fmt.Errorf("open watch: %w", err)
	}

	for {
		value, err := stream.Recv()

		switch {
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			if ctx.Err() != nil {
				return ctx.Err()
			}

			return fmt.Errorf("receive state: %w", err)
		}

		if err := fn(value.GetValue()); err != nil {
			return err
		}
	}
}

// callContext returns a context with the client's call timeout and actor metadata.
func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx = c.withActor(ctx)

	if c.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, c.callTimeout)
}

// withActor attaches actor metadata when an actor is configured.
func (c *Client) withActor(ctx context.Context) context.Context {
	if c.actor == "" {
		return ctx
	}

	return metadata.AppendToOutgoingContext(ctx, pb.ActorMetadataKey, c.actor)
}
