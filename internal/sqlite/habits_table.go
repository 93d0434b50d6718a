// This file implements the habit store for the SQLite backend.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/habitkeep/habitkeep/pkg/types"
)

// Compile-time interface check.
var _ types.HabitStore = (*habitsTable)(nil)

// habitsTable implements HabitStore against the Habit table.
type habitsTable struct {
	backend *Backend
}

// ListActive returns the user's habits with status != done, optionally
// restricted by the filter. Filter fields translate to parameterized
// equality predicates only; rows come back in natural storage order.
func (ht *habitsTable) ListActive(userID int64, filter types.HabitFilter) ([]*types.Habit, error) {
	query := "SELECT habit_id, user_id, title, description, start_date, category, status FROM Habit"
	conditions := []string{"user_id = ?", "status != ?"}
	args := []any{userID, types.HabitStatusDone}

	if filter.Category != "" {
		conditions = append(conditions, "category = ?")
		args = append(args, filter.Category)
	}

	query += " WHERE " + strings.Join(conditions, " AND ")

	rows, err := ht.backend.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing habits: %w", err)
	}
	defer rows.Close()

	var habits []*types.Habit
	for rows.Next() {
		habit, err := hydrateHabit(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning habit row: %w", err)
		}
		habits = append(habits, habit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating habit rows: %w", err)
	}
	return habits, nil
}

// Exists reports whether a non-done habit with exactly this title exists for
// the user. Done habits do not count, so their titles are reusable.
func (ht *habitsTable) Exists(userID int64, title string) (bool, error) {
	var id int64
	err := ht.backend.db.QueryRow(
		"SELECT habit_id FROM Habit WHERE user_id = ? AND title = ? AND status != ?",
		userID, title, types.HabitStatusDone,
	).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking habit existence: %w", err)
	}
	return true, nil
}

// Create inserts a habit for the user. Status is implicitly active via the
// column default. Duplicate titles are not rejected here; callers check
// Exists first.
func (ht *habitsTable) Create(userID int64, title, description, startDate, category string) (int64, error) {
	if title == "" {
		return 0, types.ErrInvalidTitle
	}
	if !types.ValidDate(startDate) {
		return 0, types.ErrInvalidDate
	}

	result, err := ht.backend.db.Exec(
		"INSERT INTO Habit (user_id, title, description, start_date, category) VALUES (?, ?, ?, ?, ?)",
		userID, title, description, startDate, category,
	)
	if err != nil {
		return 0, fmt.Errorf("creating habit: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting habit id: %w", err)
	}

	ht.backend.logger.Debug("created habit", "habit_id", id, "user_id", userID, "title", title)
	return id, nil
}

// MarkComplete transitions the habit to done. The transition is one-way and
// idempotent; the habit's logs are left in place.
// Returns types.ErrNotFound when no such habit exists.
func (ht *habitsTable) MarkComplete(habitID int64) error {
	result, err := ht.backend.db.Exec(
		"UPDATE Habit SET status = ? WHERE habit_id = ?",
		types.HabitStatusDone, habitID,
	)
	if err != nil {
		return fmt.Errorf("marking habit %d complete: %w", habitID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if affected == 0 {
		return types.ErrNotFound
	}

	ht.backend.logger.Debug("marked habit complete", "habit_id", habitID)
	return nil
}

// Remove deletes the habit's logs and then the habit row inside one
// transaction, so a failure leaves both tables untouched and a success
// leaves no orphan log rows.
// Returns types.ErrNotFound when no such habit exists.
func (ht *habitsTable) Remove(habitID int64) error {
	tx, err := ht.backend.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	// Logs first: explicit delete order respects the foreign key even
	// when cascade enforcement is off.
	if _, err := tx.Exec("DELETE FROM HabitLog WHERE habit_id = ?", habitID); err != nil {
		return fmt.Errorf("deleting habit logs: %w", err)
	}

	result, err := tx.Exec("DELETE FROM Habit WHERE habit_id = ?", habitID)
	if err != nil {
		return fmt.Errorf("deleting habit: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if affected == 0 {
		return types.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing habit removal: %w", err)
	}

	ht.backend.logger.Debug("removed habit", "habit_id", habitID)
	return nil
}

// hydrateHabit converts a row from sql.Rows into a *types.Habit. The
// description and category columns are nullable in legacy database files.
func hydrateHabit(rows *sql.Rows) (*types.Habit, error) {
	var h types.Habit
	var description, category sql.NullString
	if err := rows.Scan(&h.HabitID, &h.UserID, &h.Title, &description, &h.StartDate, &category, &h.Status); err != nil {
		return nil, err
	}
	if description.Valid {
		h.Description = description.String
	}
	if category.Valid {
		h.Category = category.String
	}
	return &h, nil
}
