package server

import (
	"context"
	"errors"
	"fmt"
	"net"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"

	api "github.com/oshokin/statebox/internal/api/grpc/counter"
	"github.com/oshokin/statebox/internal/config"
	"github.com/oshokin/statebox/internal/logger"
	pb "github.com/oshokin/statebox/internal/pb/v1"
)

// Options controls the statebox-server process and configuration.
type Options struct {
	// ConfigPath specifies the path to settings YAML file.
	ConfigPath string
	// ListenAddress provides an optional listen address override for the gRPC server.
	ListenAddress string
	// Ready, when set, receives the bound listen address once the server accepts connections.
	Ready chan<- string
}

// ErrNoServerAddress indicates missing server configuration.
var ErrNoServerAddress = errors.New("no server address configured")

// Run starts the counter store behind a gRPC server and blocks until the
// context is canceled or the server stops.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "statebox-server")

	settings, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	if err = logger.Configure(settings.LogLevel); err != nil {
		return fmt.Errorf("configure logger: %w", err)
	}

	listenAddress, err := resolveListenAddress(settings.ServerAddress, opts.ListenAddress)
	if err != nil {
		return fmt.Errorf("resolve listen address: %w", err)
	}

	lc := net.ListenConfig{}

	lis, err := lc.Listen(ctx, "tcp", listenAddress)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", listenAddress, err)
	}

	svc := newService(ctx, settings)
	defer svc.close(ctx)

	apiServer := api.NewServer(svc.store)

	grpcServer := grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler()))
	pb.RegisterCounterServiceServer(grpcServer, apiServer)

	logger.InfoKV(ctx, "Statebox server listening", "listen_address", lis.Addr().String())

	if opts.Ready != nil {
		opts.Ready <- lis.Addr().String()
	}

	return serve(ctx, grpcServer, apiServer, lis)
}

// serve runs grpcServer on lis until ctx is canceled or serving fails.
// It returns only after the shutdown goroutine has finished.
func serve(ctx context.Context, grpcServer *grpc.Server, apiServer *api.Server, lis net.Listener) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Closed once GracefulStop returns.
	done := make(chan struct{})

	go func() {
		<-ctx.Done()
		logger.Info(ctx, "Shutting down gRPC server")
		apiServer.Shutdown()
		grpcServer.GracefulStop()
		close(done)
	}()

	err := grpcServer.Serve(lis)

	cancel()
	<-done

	if err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("serve gRPC: %w", err)
	}

	logger.Info(ctx, "GRPC server stopped")

	return nil
}

// resolveListenAddress returns override when set, otherwise ":<port>" taken
// from the configured server address so the server binds on all interfaces.
func resolveListenAddress(configAddr, override string) (string, error) {
	if override != "" {
		return override, nil
	}

	if configAddr == "" {
		return "", ErrNoServerAddress
	}

	_, port, err := net.SplitHostPort(configAddr)
	if err != nil {
		return "", fmt.Errorf("invalid server address format %q: %w", configAddr, err)
	}

	return ":" + port, nil
}
