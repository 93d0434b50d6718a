// This file implements the log store for the SQLite backend.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/habitkeep/habitkeep/pkg/types"
)

// Compile-time interface check.
var _ types.LogStore = (*logsTable)(nil)

// logsTable implements LogStore against the HabitLog table.
type logsTable struct {
	backend *Backend
}

// FindHabitIDByTitle returns the id of the user's habit with the given
// title, or types.ErrNotFound.
func (lt *logsTable) FindHabitIDByTitle(userID int64, title string) (int64, error) {
	var id int64
	err := lt.backend.db.QueryRow(
		"SELECT habit_id FROM Habit WHERE title = ? AND user_id = ?",
		title, userID,
	).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, types.ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("finding habit by title: %w", err)
	}
	return id, nil
}

// Get returns the log for the exact (habit, date) pair, or types.ErrNotFound.
func (lt *logsTable) Get(habitID int64, date string) (*types.HabitLog, error) {
	if !types.ValidDate(date) {
		return nil, types.ErrInvalidDate
	}

	var l types.HabitLog
	err := lt.backend.db.QueryRow(
		"SELECT log_id, habit_id, date, status FROM HabitLog WHERE habit_id = ? AND date = ?",
		habitID, date,
	).Scan(&l.LogID, &l.HabitID, &l.Date, &l.Status)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting log for habit %d on %s: %w", habitID, date, err)
	}
	return &l, nil
}

// Upsert records a status for (habit, date). The existence check and the
// write run inside a single transaction: the invariant of at most one log
// row per (habit, date) holds even under concurrent callers, and the last
// write wins.
func (lt *logsTable) Upsert(habitID int64, date, status string) error {
	if !types.ValidDate(date) {
		return types.ErrInvalidDate
	}
	if !types.ValidLogStatus(status) {
		return types.ErrInvalidLogStatus
	}

	tx, err := lt.backend.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var logID int64
	err = tx.QueryRow(
		"SELECT log_id FROM HabitLog WHERE habit_id = ? AND date = ?",
		habitID, date,
	).Scan(&logID)
	switch {
	case err == sql.ErrNoRows:
		_, err = tx.Exec(
			"INSERT INTO HabitLog (habit_id, date, status) VALUES (?, ?, ?)",
			habitID, date, status,
		)
		if err != nil {
			return fmt.Errorf("inserting log: %w", err)
		}
	case err != nil:
		return fmt.Errorf("checking log existence: %w", err)
	default:
		_, err = tx.Exec(
			"UPDATE HabitLog SET status = ? WHERE habit_id = ? AND date = ?",
			status, habitID, date,
		)
		if err != nil {
			return fmt.Errorf("updating log: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing log upsert: %w", err)
	}

	lt.backend.logger.Debug("upserted log", "habit_id", habitID, "date", date, "status", status)
	return nil
}

// ForUserAndDate returns the user's logs for one date, each joined with the
// owning habit's title for display.
func (lt *logsTable) ForUserAndDate(userID int64, date string) ([]*types.LogEntry, error) {
	if !types.ValidDate(date) {
		return nil, types.ErrInvalidDate
	}

	rows, err := lt.backend.db.Query(
		`SELECT hl.log_id, hl.habit_id, hl.date, hl.status, h.title
		 FROM HabitLog hl
		 INNER JOIN Habit h ON h.habit_id = hl.habit_id
		 WHERE h.user_id = ? AND hl.date = ?`,
		userID, date,
	)
	if err != nil {
		return nil, fmt.Errorf("querying logs for date: %w", err)
	}
	defer rows.Close()

	var entries []*types.LogEntry
	for rows.Next() {
		var e types.LogEntry
		if err := rows.Scan(&e.LogID, &e.HabitID, &e.Date, &e.Status, &e.Title); err != nil {
			return nil, fmt.Errorf("scanning log row: %w", err)
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating log rows: %w", err)
	}
	return entries, nil
}

// AllForUser returns every log belonging to the user's habits.
func (lt *logsTable) AllForUser(userID int64) ([]*types.HabitLog, error) {
	rows, err := lt.backend.db.Query(
		`SELECT hl.log_id, hl.habit_id, hl.date, hl.status
		 FROM HabitLog hl
		 INNER JOIN Habit h ON h.habit_id = hl.habit_id
		 WHERE h.user_id = ?`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying logs for user: %w", err)
	}
	defer rows.Close()

	var logs []*types.HabitLog
	for rows.Next() {
		var l types.HabitLog
		if err := rows.Scan(&l.LogID, &l.HabitID, &l.Date, &l.Status); err != nil {
			return nil, fmt.Errorf("scanning log row: %w", err)
		}
		logs = append(logs, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating log rows: %w", err)
	}
	return logs, nil
}
