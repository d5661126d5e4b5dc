package watcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/oshokin/statebox/internal/config"
	"github.com/oshokin/statebox/internal/logger"
	"github.com/oshokin/statebox/internal/service/common"
)

// Options controls the watcher.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// ServerAddress provides an optional gRPC server address override.
	ServerAddress string
	// RetryInterval is the wait before reopening a broken stream.
	RetryInterval time.Duration
	// Out receives one line per observed value; nil logs them instead.
	Out io.Writer
}

// DefaultRetryInterval is used when Options.RetryInterval is not set.
const DefaultRetryInterval = 2 * time.Second

// Run streams counter values from the server until the context is canceled,
// reopening the stream after failures.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "statebox-watch")

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	retryInterval := opts.RetryInterval
	if retryInterval <= 0 {
		retryInterval = DefaultRetryInterval
	}

	serverAddress := cfg.ServerAddress
	if opts.ServerAddress != "" {
		serverAddress = opts.ServerAddress
	}

	clientOptions := append([]common.Option{common.WithCallTimeout(cfg.Timeout)}, common.ActorOptions(ctx)...)

	client, err := common.Dial(ctx, serverAddress, clientOptions...)
	if err != nil {
		return fmt.Errorf("dial server: %w", err)
	}

	defer func() {
		_ = client.Close()
	}()

	logger.InfoKV(ctx, "Watching counter", "server_address", serverAddress)

	report := func(count int64) error {
		return reportState(ctx, opts.Out, count)
	}

	for {
		err = client.Watch(ctx, report)

		switch {
		case ctx.Err() != nil:
			logger.Info(ctx, "Context canceled, exiting")

			return nil
		case errors.Is(err, errWrite):
			return err
		case err != nil:
			logger.ErrorKV(ctx, "Watch failed", "error", err, "retry_in", retryInterval.String())
		default:
			logger.Info(ctx, "Watch stream closed by server")
		}

		select {
		case <-ctx.Done():
			logger.Info(ctx, "Context canceled, exiting")

			return nil
		case <-time.After(retryInterval):
		}
	}
}

// errWrite marks output failures, which end the watcher instead of retrying.
var errWrite = errors.New("write output")

// reportState prints or logs one observed value.
func reportState(ctx context.Context, out io.Writer, count int64) error {
	if out == nil {
		logger.InfoKV(ctx, "Counter changed", "count", count)

		return nil
	}

	if _, err := fmt.Fprintf(out, "count: %d\n", count); err != nil {
		return fmt.Errorf("%w: %w", errWrite, err)
	}

	return nil
}
