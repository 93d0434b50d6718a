package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/habitkeep/habitkeep/pkg/types"
)

func logWith(status string) *types.HabitLog {
	return &types.HabitLog{Date: "2025-01-15", Status: status}
}

func TestCompletionPercentage(t *testing.T) {
	tests := []struct {
		name     string
		statuses []string
		want     float64
		hasData  bool
	}{
		{
			name:     "no logs is no data, not zero percent",
			statuses: nil,
			want:     0,
			hasData:  false,
		},
		{
			name:     "single completed",
			statuses: []string{types.LogStatusCompleted},
			want:     100,
			hasData:  true,
		},
		{
			name:     "completed and partial average to 75",
			statuses: []string{types.LogStatusCompleted, types.LogStatusPartial},
			want:     75,
			hasData:  true,
		},
		{
			name:     "all incomplete is zero percent with data",
			statuses: []string{types.LogStatusIncomplete, types.LogStatusIncomplete},
			want:     0,
			hasData:  true,
		},
		{
			name: "mixed three statuses",
			statuses: []string{
				types.LogStatusCompleted,
				types.LogStatusPartial,
				types.LogStatusIncomplete,
			},
			want:    50,
			hasData: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs []*types.HabitLog
			for _, s := range tt.statuses {
				logs = append(logs, logWith(s))
			}
			got, ok := CompletionPercentage(logs)
			assert.Equal(t, tt.hasData, ok)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestPercentageByDate(t *testing.T) {
	logs := []*types.HabitLog{
		{Date: "2025-01-01", Status: types.LogStatusCompleted},
		{Date: "2025-01-01", Status: types.LogStatusIncomplete},
		{Date: "2025-01-02", Status: types.LogStatusPartial},
	}

	byDate := PercentageByDate(logs)
	assert.Len(t, byDate, 2)
	assert.InDelta(t, 50, byDate["2025-01-01"], 0.001)
	assert.InDelta(t, 50, byDate["2025-01-02"], 0.001)

	_, present := byDate["2025-01-03"]
	assert.False(t, present, "dates without logs must not appear")
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		pct  float64
		want Tier
	}{
		{100, TierGreen},
		{99.9, TierLightGreen},
		{75, TierLightGreen},
		{74.9, TierYellow},
		{50, TierYellow},
		{49.9, TierOrange},
		{25, TierOrange},
		{24.9, TierRed},
		{0, TierRed},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TierFor(tt.pct), "pct %.1f", tt.pct)
	}
}

func TestTierForStatus(t *testing.T) {
	assert.Equal(t, TierGreen, TierForStatus(types.LogStatusCompleted))
	assert.Equal(t, TierYellow, TierForStatus(types.LogStatusPartial))
	assert.Equal(t, TierRed, TierForStatus(types.LogStatusIncomplete))
}

func TestTierString(t *testing.T) {
	assert.Equal(t, "green", TierGreen.String())
	assert.Equal(t, "none", TierNone.String())
}
