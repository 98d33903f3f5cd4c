package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/cyclewise/cyclewise/internal/output"
	"github.com/cyclewise/cyclewise/internal/predict"
)

func createPredictCmd(flags *Flags) *cobra.Command {
	var recalculate bool

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Show the predicted next cycle start",
		Long: `Shows the stored prediction when it is still fresh, recomputing it
first when it is missing, stale, or invalidated by a newer log. Use
--recalculate to force a fresh computation.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			var prediction *predict.Prediction
			if recalculate {
				prediction, err = a.tracker.Recalculate(cmd.Context(), flags.OwnerKey)
			} else {
				prediction, err = a.tracker.Current(cmd.Context(), flags.OwnerKey)
			}
			if err != nil {
				return err
			}

			if flags.JSONOutput {
				encoder := json.NewEncoder(output.Stdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(prediction)
			}

			output.Successf("Next cycle start: %s", prediction.PredictedDate.Format("2006-01-02"))
			output.Plainf("Cycle length:     %d days", prediction.AverageDays)
			output.Plainf("Confidence:       %.0f%%", prediction.Confidence*100)
			if prediction.Reasoning != "" {
				output.Plainf("Reasoning:        %s", prediction.Reasoning)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&recalculate, "recalculate", false, "Force a fresh prediction")
	return cmd
}
