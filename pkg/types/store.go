package types

import "errors"

// Store defines the lifecycle of a storage backend. Callers open the store
// once at process start, access the typed table stores, and close on
// shutdown. The store handle is shared; no pooling is involved.
type Store interface {
	// Open connects the store to the database described by config,
	// creating the data directory and applying the schema if needed.
	// Returns ErrAlreadyOpen if called while already open.
	Open(config Config) error

	// Close releases backend resources. Idempotent: multiple calls
	// succeed. After Close, the table accessors return ErrStoreClosed.
	Close() error

	// Users returns the account store.
	Users() (UserStore, error)

	// Habits returns the habit store.
	Habits() (HabitStore, error)

	// Logs returns the log store.
	Logs() (LogStore, error)
}

// UserStore persists accounts. Lookup misses are reported as ErrNotFound,
// an expected outcome, not a storage failure.
type UserStore interface {
	// Authenticate returns the user id for an exact user name and
	// password match, or ErrNotFound when there is none ("invalid
	// credentials" to the caller).
	Authenticate(userName, password string) (int64, error)

	// Exists reports whether an account with the given user name exists.
	Exists(userName string) (bool, error)

	// Create inserts a new account unconditionally. Callers are
	// responsible for checking Exists first; no uniqueness constraint is
	// enforced at this layer.
	Create(userName, password string) error

	// Get returns the user with the given id, or ErrNotFound.
	Get(userID int64) (*User, error)

	// Update replaces the user's name, email, and password.
	// Returns ErrNotFound if no such user exists.
	Update(userID int64, userName, email, password string) error
}

// HabitStore persists habits. Business rules (empty title, duplicate title
// while active) are checked by the caller via Exists before mutating calls.
type HabitStore interface {
	// ListActive returns the user's habits whose status is not done,
	// optionally restricted by filter. Results are in natural storage
	// order.
	ListActive(userID int64, filter HabitFilter) ([]*Habit, error)

	// Exists reports whether a non-done habit with exactly this title
	// exists for the user. A done habit with the same title does not
	// count; its title may be reused.
	Exists(userID int64, title string) (bool, error)

	// Create inserts a habit with status active and returns the new
	// habit id. The title and start date are validated; duplicate titles
	// are not rejected here.
	Create(userID int64, title, description, startDate, category string) (int64, error)

	// MarkComplete transitions the habit to done. One-way: a done habit
	// is never resurrected. The habit's logs are left untouched.
	MarkComplete(habitID int64) error

	// Remove deletes the habit and every log referencing it, in one
	// transaction. No orphan log rows survive.
	Remove(habitID int64) error
}

// LogStore persists per-day completion logs.
type LogStore interface {
	// FindHabitIDByTitle returns the id of the user's habit with the
	// given title, or ErrNotFound.
	FindHabitIDByTitle(userID int64, title string) (int64, error)

	// Get returns the log for the exact (habit, date) pair, or
	// ErrNotFound.
	Get(habitID int64, date string) (*HabitLog, error)

	// Upsert records a status for (habit, date): the existing row is
	// updated if one exists, otherwise a new row is inserted. The check
	// and the write run in a single transaction, so two Upserts for the
	// same pair never produce duplicate rows; the last write wins.
	Upsert(habitID int64, date, status string) error

	// ForUserAndDate returns the user's logs for one date, each joined
	// with the owning habit's title.
	ForUserAndDate(userID int64, date string) ([]*LogEntry, error)

	// AllForUser returns every log belonging to the user's habits, for
	// calendar-style aggregation.
	AllForUser(userID int64) ([]*HabitLog, error)
}

// Store lifecycle errors.
var (
	ErrStoreClosed = errors.New("store is closed")
	ErrAlreadyOpen = errors.New("store is already open")
	ErrNotFound    = errors.New("not found")
)
