package types

import "errors"

// Habit statuses. A habit is created active and moves to done exactly once;
// there is no transition back.
const (
	HabitStatusActive = "active"
	HabitStatusDone   = "done"
)

// Habit represents a user-defined recurring activity tracked over time.
// A habit is owned exclusively by its user; deleting the habit removes its
// logs as well.
type Habit struct {
	HabitID     int64  // AUTOINCREMENT primary key, assigned on insert.
	UserID      int64  // Owning user.
	Title       string // Required. Unique among the user's non-done habits (caller-enforced).
	Description string
	StartDate   string // Calendar date, "YYYY-MM-DD".
	Category    string // Free-form category label; empty means uncategorized.
	Status      string // One of the HabitStatus constants.
}

// Active reports whether the habit has not been marked done.
func (h *Habit) Active() bool {
	return h.Status != HabitStatusDone
}

// HabitFilter restricts ListActive results. The zero value matches every
// active habit. Fields map deterministically to equality predicates; no raw
// string interpolation is involved.
type HabitFilter struct {
	// Category, when non-empty, restricts results to habits with exactly
	// this category.
	Category string
}

// Habit operation errors.
var (
	ErrInvalidTitle = errors.New("habit title must not be empty")
)
