package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cyclewise/cyclewise/internal/output"
)

// ErrDateRequired indicates a command needs a date argument.
var ErrDateRequired = errors.New("a date argument is required (YYYY-MM-DD or 'today')")

// parseDate accepts YYYY-MM-DD or the literal "today".
func parseDate(arg string) (time.Time, error) {
	if arg == "today" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	day, err := time.Parse("2006-01-02", arg)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", arg, err)
	}
	return day, nil
}

func createLogCmd(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Manage recorded cycle start dates",
	}

	cmd.AddCommand(createLogAddCmd(flags))
	cmd.AddCommand(createLogListCmd(flags))
	cmd.AddCommand(createLogRemoveCmd(flags))

	return cmd
}

func createLogAddCmd(flags *Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "add [date]",
		Short: "Record a cycle start date (defaults to today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := "today"
			if len(args) == 1 {
				arg = args[0]
			}
			day, err := parseDate(arg)
			if err != nil {
				return err
			}

			a, err := newApp(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			log, err := a.tracker.AddLog(cmd.Context(), flags.OwnerKey, day)
			if err != nil {
				return err
			}

			output.Successf("Recorded cycle start on %s", log.StartDate.Format("2006-01-02"))
			return nil
		},
	}
}

func createLogListCmd(flags *Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recorded cycle start dates, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			logs, err := a.tracker.Logs(cmd.Context(), flags.OwnerKey)
			if err != nil {
				return err
			}

			if len(logs) == 0 {
				output.Info("No cycle starts recorded yet")
				return nil
			}

			for i, log := range logs {
				line := log.StartDate.Format("2006-01-02")
				if i > 0 {
					gap := int(log.StartDate.Sub(logs[i-1].StartDate).Hours() / 24)
					line = fmt.Sprintf("%s  (%d days)", line, gap)
				}
				output.Plain(line)
			}
			output.Infof("%d cycle starts recorded", len(logs))
			return nil
		},
	}
}

func createLogRemoveCmd(flags *Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <date>",
		Short: "Remove the recorded cycle start on a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDate(args[0])
			if err != nil {
				return err
			}

			a, err := newApp(cmd.Context(), flags)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			if err := a.tracker.RemoveLog(cmd.Context(), flags.OwnerKey, day); err != nil {
				return err
			}

			output.Successf("Removed cycle start on %s", day.Format("2006-01-02"))
			return nil
		},
	}
}
