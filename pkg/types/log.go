package types

import (
	"errors"
	"time"
)

// Log statuses recorded for a single day. The capitalized spellings are part
// of the persisted layout and must not be changed.
const (
	LogStatusCompleted  = "Completed"
	LogStatusIncomplete = "Incomplete"
	LogStatusPartial    = "Partial"
)

// validLogStatuses is the set of recognized log status values.
var validLogStatuses = map[string]bool{
	LogStatusCompleted:  true,
	LogStatusIncomplete: true,
	LogStatusPartial:    true,
}

// ValidLogStatus reports whether s is a recognized log status.
func ValidLogStatus(s string) bool {
	return validLogStatuses[s]
}

// HabitLog is a single day's recorded completion status for one habit.
// At most one log exists per (habit, date) pair.
type HabitLog struct {
	LogID   int64  // AUTOINCREMENT primary key, assigned on insert.
	HabitID int64  // Owning habit.
	Date    string // Calendar date, "YYYY-MM-DD".
	Status  string // One of the LogStatus constants.
}

// LogEntry is a HabitLog joined with the owning habit's title, as returned
// by per-date queries for display.
type LogEntry struct {
	HabitLog
	Title string
}

// DateLayout is the calendar-date format used for all persisted dates.
// Time-of-day is always truncated before storage or comparison.
const DateLayout = "2006-01-02"

// NormalizeDate truncates t to calendar-date precision and formats it for
// storage.
func NormalizeDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ValidDate reports whether s is a well-formed "YYYY-MM-DD" calendar date.
func ValidDate(s string) bool {
	t, err := time.Parse(DateLayout, s)
	return err == nil && t.Format(DateLayout) == s
}

// Log operation errors.
var (
	ErrInvalidDate      = errors.New("date must be a YYYY-MM-DD calendar date")
	ErrInvalidLogStatus = errors.New("invalid log status value")
)
