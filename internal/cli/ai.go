package cli

import (
	"github.com/spf13/cobra"

	"github.com/cyclewise/cyclewise/internal/output"
)

func createAICmd(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ai",
		Short: "Manage AI-backed estimation for an owner",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "on",
		Short: "Opt in to AI-backed predictions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return setAIEnabled(cmd, flags, true)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "off",
		Short: "Opt out of AI-backed predictions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return setAIEnabled(cmd, flags, false)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show the owner's AI estimation status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			settings, err := a.tracker.Settings(cmd.Context(), flags.OwnerKey)
			if err != nil {
				return err
			}

			if settings.AIEnabled && settings.AIEligible {
				output.Success("AI predictions: active")
			} else if settings.AIEnabled {
				output.Warn("AI predictions: opted in, but no provider is configured")
			} else {
				output.Info("AI predictions: off (local estimator in use)")
			}
			return nil
		},
	})

	return cmd
}

func setAIEnabled(cmd *cobra.Command, flags *Flags, enabled bool) error {
	a, err := newApp(cmd.Context(), flags)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	if err := a.tracker.SetAIEnabled(cmd.Context(), flags.OwnerKey, enabled); err != nil {
		return err
	}

	if enabled {
		output.Success("AI predictions enabled")
	} else {
		output.Success("AI predictions disabled")
	}
	return nil
}
