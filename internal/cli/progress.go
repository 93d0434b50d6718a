// Progress commands: calendar completion view.
package cli

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/habitkeep/habitkeep/internal/report"
	"github.com/habitkeep/habitkeep/pkg/types"
)

// tierColors maps report tiers to terminal colors. ANSI has no orange;
// bright red is the closest fit.
var tierColors = map[report.Tier]*color.Color{
	report.TierGreen:      color.New(color.FgGreen),
	report.TierLightGreen: color.New(color.FgHiGreen),
	report.TierYellow:     color.New(color.FgYellow),
	report.TierOrange:     color.New(color.FgHiRed),
	report.TierRed:        color.New(color.FgRed),
}

func newProgressCmd() *cobra.Command {
	progress := &cobra.Command{
		Use:   "progress",
		Short: "View aggregated completion",
	}
	progress.AddCommand(newProgressCalendarCmd())
	return progress
}

func newProgressCalendarCmd() *cobra.Command {
	var userID int64
	var month string

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show per-day completion for a month",
		Long: `Calendar prints each day of the month with its completion
percentage, colored by tier. Days without logs show "no data", which is
not the same as 0%.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logs, err := logStore()
			if err != nil {
				return err
			}

			if month == "" {
				month = time.Now().Format("2006-01")
			}
			first, err := time.Parse("2006-01", month)
			if err != nil {
				return fmt.Errorf("month must be YYYY-MM")
			}

			all, err := logs.AllForUser(userID)
			if err != nil {
				return fmt.Errorf("load logs: %w", err)
			}
			byDate := report.PercentageByDate(all)

			if flags.jsonMode {
				return printCalendarJSON(cmd, first, byDate)
			}

			for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
				date := types.NormalizeDate(d)
				pct, ok := byDate[date]
				if !ok {
					fmt.Fprintf(cmd.OutOrStdout(), "%s  no data\n", date)
					continue
				}
				tier := report.TierFor(pct)
				line := fmt.Sprintf("%s  %3.0f%%  %s", date, pct, tier)
				fmt.Fprintln(cmd.OutOrStdout(), tierColors[tier].Sprint(line))
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&userID, "user", 0, "user id from login (required)")
	cmd.Flags().StringVar(&month, "month", "", "month YYYY-MM (default: current month)")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

// printCalendarJSON emits the month's days that have data, sorted by date.
func printCalendarJSON(cmd *cobra.Command, first time.Time, byDate map[string]float64) error {
	type dayJSON struct {
		Date       string  `json:"date"`
		Percentage float64 `json:"percentage"`
		Tier       string  `json:"tier"`
	}

	var days []dayJSON
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		date := types.NormalizeDate(d)
		if pct, ok := byDate[date]; ok {
			days = append(days, dayJSON{date, pct, report.TierFor(pct).String()})
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })

	data, err := json.MarshalIndent(days, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal calendar: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
