// Package cli implements the command-line interface for cyclewise.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cyclewise/cyclewise/internal/output"
)

// NewRootCmd creates a new isolated root command instance. Isolation
// avoids shared global state so tests can execute commands in parallel.
func NewRootCmd() *cobra.Command {
	flags := newDefaultFlags()

	cmd := &cobra.Command{
		Use:   "cyclewise",
		Short: "Track recurring cycles and predict the next start date",
		Long: `cyclewise records cycle start dates and predicts the next one from
interval statistics. With an AI provider configured and the owner opted
in, predictions come from the external model instead of the local
estimator; otherwise everything runs offline.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.ConfigFile, "config", "c", "", "Path to configuration file")
	cmd.PersistentFlags().StringVar(&flags.OwnerKey, "owner", defaultOwnerKey, "Owner whose cycles to operate on")
	cmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().CountVarP(&flags.Verbose, "verbose", "v", "Increase verbosity (-v debug, -vv trace)")
	cmd.PersistentFlags().BoolVar(&flags.JSONOutput, "json", false, "JSON output where supported")

	cmd.AddCommand(createLogCmd(flags))
	cmd.AddCommand(createStatsCmd(flags))
	cmd.AddCommand(createPredictCmd(flags))
	cmd.AddCommand(createAICmd(flags))
	cmd.AddCommand(createVersionCmd(flags))

	return cmd
}

// Execute runs the CLI
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		output.Warn("Interrupt received, canceling...")
		cancel()
	}()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		output.Error(err.Error())
		os.Exit(1)
	}
}
