// Package report derives calendar-style views from already-fetched habit
// logs: completion percentages and display-priority color tiers. It performs
// no storage access.
package report

import "github.com/habitkeep/habitkeep/pkg/types"

// Weights contributed by each log status toward a day's completion
// percentage.
const (
	weightCompleted  = 100.0
	weightPartial    = 50.0
	weightIncomplete = 0.0
)

// CompletionPercentage averages the status weights over the given logs.
// The second return value is false when logs is empty: a day with no data
// is distinct from a day at 0% completion.
func CompletionPercentage(logs []*types.HabitLog) (float64, bool) {
	if len(logs) == 0 {
		return 0, false
	}
	var total float64
	for _, l := range logs {
		total += statusWeight(l.Status)
	}
	return total / float64(len(logs)), true
}

// PercentageByDate groups logs by date and computes each date's completion
// percentage. Dates with no logs simply do not appear in the result.
func PercentageByDate(logs []*types.HabitLog) map[string]float64 {
	byDate := make(map[string][]*types.HabitLog)
	for _, l := range logs {
		byDate[l.Date] = append(byDate[l.Date], l)
	}

	result := make(map[string]float64, len(byDate))
	for date, dayLogs := range byDate {
		pct, _ := CompletionPercentage(dayLogs)
		result[date] = pct
	}
	return result
}

// statusWeight maps a log status to its percentage contribution.
// Unrecognized statuses weigh nothing.
func statusWeight(status string) float64 {
	switch status {
	case types.LogStatusCompleted:
		return weightCompleted
	case types.LogStatusPartial:
		return weightPartial
	default:
		return weightIncomplete
	}
}

// Tier is a display-priority color tier for a day's completion.
type Tier int

// Tiers in descending completion order. TierNone marks a day with no data,
// which renders differently from a fully incomplete day.
const (
	TierNone Tier = iota
	TierRed
	TierOrange
	TierYellow
	TierLightGreen
	TierGreen
)

// String returns the tier's display name.
func (t Tier) String() string {
	switch t {
	case TierGreen:
		return "green"
	case TierLightGreen:
		return "light green"
	case TierYellow:
		return "yellow"
	case TierOrange:
		return "orange"
	case TierRed:
		return "red"
	default:
		return "none"
	}
}

// TierFor maps a completion percentage to its color tier.
func TierFor(pct float64) Tier {
	switch {
	case pct >= 100:
		return TierGreen
	case pct >= 75:
		return TierLightGreen
	case pct >= 50:
		return TierYellow
	case pct >= 25:
		return TierOrange
	default:
		return TierRed
	}
}

// TierForStatus maps a single log status to a tier: Completed is green,
// Partial is yellow, Incomplete is red.
func TierForStatus(status string) Tier {
	return TierFor(statusWeight(status))
}
