package client

import (
	"context"
	"fmt"
	"io"

	"github.com/oshokin/statebox/internal/config"
	"github.com/oshokin/statebox/internal/logger"
	"github.com/oshokin/statebox/internal/service/common"
)

// Options configures a one-shot client command.
type Options struct {
	// ConfigPath to YAML settings file, defaults to the standard filename if empty.
	ConfigPath string
	// ServerAddress overrides the server address from config when specified.
	ServerAddress string
	// Out receives the printed counter value.
	Out io.Writer
}

// Dispatch sends the named action to the server and prints the counter value
// read right after. The value may not include the action yet, because the
// server applies actions asynchronously.
func Dispatch(ctx context.Context, opts *Options, action string) error {
	ctx = logger.WithName(ctx, "statebox-dispatch")

	return withClient(ctx, opts, func(client *common.Client) error {
		if err := client.Dispatch(ctx, action); err != nil {
			return err
		}

		logger.DebugKV(ctx, "Action dispatched", "action", action)

		return printState(ctx, client, opts.Out)
	})
}

// State prints the committed counter value.
func State(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "statebox-state")

	return withClient(ctx, opts, func(client *common.Client) error {
		return printState(ctx, client, opts.Out)
	})
}

// withClient loads settings, dials the server and runs fn with the client.
func withClient(ctx context.Context, opts *Options, fn func(*common.Client) error) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
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

	return fn(client)
}

// printState reads the counter value and writes it to out.
func printState(ctx context.Context, client *common.Client, out io.Writer) error {
	count, err := client.GetState(ctx)
	if err != nil {
		return err
	}

	if out == nil {
		logger.InfoKV(ctx, "Counter state", "count", count)

		return nil
	}

	if _, err := fmt.Fprintf(out, "count: %d\n", count); err != nil {
		return fmt.Errorf("write state: %w", err)
	}

	return nil
}
