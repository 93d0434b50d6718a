// Log commands: set, day.
package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/habitkeep/habitkeep/pkg/types"
)

func newLogCmd() *cobra.Command {
	log := &cobra.Command{
		Use:   "log",
		Short: "Record and inspect daily completion logs",
	}
	log.AddCommand(newLogSetCmd())
	log.AddCommand(newLogDayCmd())
	return log
}

func newLogSetCmd() *cobra.Command {
	var userID int64
	var habit, date, status string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Record a day's status for a habit",
		Long: `Set records a completion status for one habit on one date.
Recording the same date again replaces the previous status; there is
never more than one log per habit and date.

Example:
  habitkeep log set --user 1 --habit "Morning Run" --date 2024-02-01 --status Completed`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logs, err := logStore()
			if err != nil {
				return err
			}

			if !types.ValidLogStatus(status) {
				return fmt.Errorf("status must be one of %s", strings.Join([]string{
					types.LogStatusCompleted, types.LogStatusIncomplete, types.LogStatusPartial,
				}, ", "))
			}
			if date == "" {
				date = types.NormalizeDate(time.Now())
			}

			id, err := resolveHabitID(userID, habit)
			if err != nil {
				return err
			}

			if err := logs.Upsert(id, date, status); err != nil {
				return fmt.Errorf("record log: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged %q as %s on %s\n", habit, status, date)
			return nil
		},
	}

	cmd.Flags().Int64Var(&userID, "user", 0, "user id from login (required)")
	cmd.Flags().StringVar(&habit, "habit", "", "habit title (required)")
	cmd.Flags().StringVar(&date, "date", "", "date YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&status, "status", "", "Completed, Incomplete, or Partial (required)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("habit")
	_ = cmd.MarkFlagRequired("status")
	return cmd
}

func newLogDayCmd() *cobra.Command {
	var userID int64
	var date string

	cmd := &cobra.Command{
		Use:   "day",
		Short: "Show all logs for one date",
		RunE: func(cmd *cobra.Command, args []string) error {
			logs, err := logStore()
			if err != nil {
				return err
			}

			if date == "" {
				date = types.NormalizeDate(time.Now())
			}

			entries, err := logs.ForUserAndDate(userID, date)
			if err != nil {
				return fmt.Errorf("list logs: %w", err)
			}

			if flags.jsonMode {
				data, err := json.MarshalIndent(entries, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal logs: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			if len(entries) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No logs on %s\n", date)
				return nil
			}
			for _, e := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", e.Title, e.Status)
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&userID, "user", 0, "user id from login (required)")
	cmd.Flags().StringVar(&date, "date", "", "date YYYY-MM-DD (default: today)")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
