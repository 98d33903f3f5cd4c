package cli

import (
	"encoding/json"
	"errors"

	"github.com/spf13/cobra"

	"github.com/cyclewise/cyclewise/internal/output"
	"github.com/cyclewise/cyclewise/internal/service"
)

func createStatsCmd(flags *Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show interval statistics over the recorded history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			stats, err := a.tracker.Stats(cmd.Context(), flags.OwnerKey)
			if err != nil {
				if errors.Is(err, service.ErrNoStats) {
					output.Info("Not enough data yet: record at least two cycle starts")
					return nil
				}
				return err
			}

			if flags.JSONOutput {
				encoder := json.NewEncoder(output.Stdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(stats)
			}

			output.Plainf("Average cycle length: %d days", stats.AverageDays)
			output.Plainf("Range:                %d-%d days", stats.MinDays, stats.MaxDays)
			output.Plainf("Standard deviation:   %.1f days", stats.StdDev)
			output.Plainf("Regularity:           %s", stats.Regularity.Label())
			output.Plainf("Samples:              %d intervals", stats.SampleCount)
			return nil
		},
	}
}
