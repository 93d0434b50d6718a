package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidLogStatus(t *testing.T) {
	for _, status := range []string{LogStatusCompleted, LogStatusIncomplete, LogStatusPartial} {
		assert.True(t, ValidLogStatus(status), "status %q should be valid", status)
	}
	for _, status := range []string{"", "completed", "DONE", "Complete", "partial"} {
		assert.False(t, ValidLogStatus(status), "status %q should be invalid", status)
	}
}

func TestNormalizeDate(t *testing.T) {
	d := time.Date(2025, time.March, 7, 23, 59, 1, 0, time.UTC)
	assert.Equal(t, "2025-03-07", NormalizeDate(d))
}

func TestValidDate(t *testing.T) {
	tests := []struct {
		date  string
		valid bool
	}{
		{"2025-01-15", true},
		{"2025-12-31", true},
		{"2025-13-01", false},
		{"2025-02-30", false},
		{"15-01-2025", false},
		{"2025-1-5", false},
		{"", false},
		{"not-a-date", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.valid, ValidDate(tt.date), "date %q", tt.date)
	}
}
