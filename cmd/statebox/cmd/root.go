package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/statebox/internal/config"
	"github.com/oshokin/statebox/internal/domain/counter"
	"github.com/oshokin/statebox/internal/service/client"
	"github.com/oshokin/statebox/internal/service/watcher"
	"github.com/oshokin/statebox/internal/version"
)

var (
	// configPath stores the configuration file path.
	configPath string
	// serverAddress overrides the configured server address.
	serverAddress string

	// rootCmd is the statebox client.
	rootCmd = &cobra.Command{
		Use:          "statebox",
		Short:        "Talk to a statebox server.",
		SilenceUsage: true,
	}

	// dispatchCmd sends one action.
	dispatchCmd = &cobra.Command{
		Use:       "dispatch <action>",
		Short:     "Dispatch an action to the counter store.",
		Long:      "Dispatch an action to the counter store. Known actions: " + strings.Join(counter.ActionNames(), ", ") + ".",
		Args:      cobra.ExactArgs(1),
		ValidArgs: counter.ActionNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := counter.ParseAction(args[0]); err != nil {
				return fmt.Errorf("dispatch: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			return client.Dispatch(ctx, options(cmd), args[0])
		},
	}

	// stateCmd prints the committed value.
	stateCmd = &cobra.Command{
		Use:   "state",
		Short: "Print the current counter value.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			return client.State(ctx, options(cmd))
		},
	}

	// watchCmd follows the value until interrupted.
	watchCmd = &cobra.Command{
		Use:   "watch",
		Short: "Print the counter value every time it changes.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			return watcher.Run(ctx, &watcher.Options{
				ConfigPath:    configPath,
				ServerAddress: serverAddress,
				Out:           cmd.OutOrStdout(),
			})
		},
	}
)

// options builds client options from the persistent flags.
func options(cmd *cobra.Command) *client.Options {
	return &client.Options{
		ConfigPath:    configPath,
		ServerAddress: serverAddress,
		Out:           cmd.OutOrStdout(),
	}
}

// Execute runs the statebox CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.PersistentFlags().StringVarP(&serverAddress, "server", "s", "", "server address, overrides the configuration")

	rootCmd.AddCommand(dispatchCmd, stateCmd, watchCmd)
}
