package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/statebox/internal/config"
	"github.com/oshokin/statebox/internal/service/server"
	"github.com/oshokin/statebox/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string

	// rootCmd represents the base command for running the gRPC server.
	rootCmd = &cobra.Command{
		Use:   "statebox-server [listen-address]",
		Short: "Run the counter store behind a gRPC server.",
		Long: `Starts the gRPC server that owns the counter store.

Every dispatched action is reduced on the store's single mutation goroutine.
Middleware log each action and turn increment_async into an increment after
the configured async_delay.

Only the port from server_addr is used for listening (e.g., :8080).
A listen address argument overrides it (e.g., :9090, 0.0.0.0:8080).
Settings can be overridden with STATEBOX_* environment variables.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			var listenAddress string
			if len(args) > 0 {
				listenAddress = args[0]
			}

			return server.Run(ctx, &server.Options{
				ConfigPath:    configPath,
				ListenAddress: listenAddress,
			})
		},
	}
)

// Execute runs the statebox-server CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
}
