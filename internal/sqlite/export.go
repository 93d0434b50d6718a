// This file implements per-user JSONL snapshot export.
package sqlite

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/habitkeep/habitkeep/pkg/types"
)

// habitJSON represents a habit in habits.jsonl.
type habitJSON struct {
	HabitID     int64  `json:"habit_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	StartDate   string `json:"start_date"`
	Category    string `json:"category,omitempty"`
	Status      string `json:"status"`
}

// logJSON represents a habit log in logs.jsonl.
type logJSON struct {
	LogID   int64  `json:"log_id"`
	HabitID int64  `json:"habit_id"`
	Date    string `json:"date"`
	Status  string `json:"status"`
}

// exportManifest identifies a snapshot. The snapshot id is a UUID v7 so
// snapshots sort by creation time.
type exportManifest struct {
	SnapshotID string `json:"snapshot_id"`
	UserID     int64  `json:"user_id"`
	UserName   string `json:"user_name"`
	CreatedAt  string `json:"created_at"`
	Habits     int    `json:"habits"`
	Logs       int    `json:"logs"`
}

// Export writes a JSONL snapshot of one user's habits and logs to outDir:
// habits.jsonl, logs.jsonl, and a manifest.json naming the snapshot.
// Done habits are included; a snapshot is a full copy, not a view.
func (b *Backend) Export(userID int64, outDir string) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.open {
		return "", types.ErrStoreClosed
	}

	var userName string
	err := b.db.QueryRow("SELECT user_name FROM user WHERE user_id = ?", userID).Scan(&userName)
	if err != nil {
		return "", types.ErrNotFound
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}

	habitRecords, err := b.exportHabits(userID)
	if err != nil {
		return "", err
	}
	logRecords, err := b.exportLogs(userID)
	if err != nil {
		return "", err
	}

	if err := writeJSONL(filepath.Join(outDir, "habits.jsonl"), habitRecords); err != nil {
		return "", fmt.Errorf("writing habits.jsonl: %w", err)
	}
	if err := writeJSONL(filepath.Join(outDir, "logs.jsonl"), logRecords); err != nil {
		return "", fmt.Errorf("writing logs.jsonl: %w", err)
	}

	manifest := exportManifest{
		SnapshotID: newSnapshotID(),
		UserID:     userID,
		UserName:   userName,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
		Habits:     len(habitRecords),
		Logs:       len(logRecords),
	}
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outDir, "manifest.json"), data, 0o644); err != nil {
		return "", fmt.Errorf("writing manifest.json: %w", err)
	}

	b.logger.Info("exported snapshot", "snapshot_id", manifest.SnapshotID,
		"user_id", userID, "habits", manifest.Habits, "logs", manifest.Logs)
	return manifest.SnapshotID, nil
}

// exportHabits reads all of the user's habits as JSONL records.
func (b *Backend) exportHabits(userID int64) ([]json.RawMessage, error) {
	rows, err := b.db.Query(
		"SELECT habit_id, title, description, start_date, category, status FROM Habit WHERE user_id = ?",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying habits for export: %w", err)
	}
	defer rows.Close()

	var records []json.RawMessage
	for rows.Next() {
		var rec habitJSON
		var description, category *string
		if err := rows.Scan(&rec.HabitID, &rec.Title, &description, &rec.StartDate, &category, &rec.Status); err != nil {
			return nil, fmt.Errorf("scanning habit for export: %w", err)
		}
		if description != nil {
			rec.Description = *description
		}
		if category != nil {
			rec.Category = *category
		}
		data, err := json.Marshal(rec)
		if err != nil {
			return nil, fmt.Errorf("marshaling habit for export: %w", err)
		}
		records = append(records, data)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating habits for export: %w", err)
	}
	return records, nil
}

// exportLogs reads all logs belonging to the user's habits as JSONL records.
func (b *Backend) exportLogs(userID int64) ([]json.RawMessage, error) {
	rows, err := b.db.Query(
		`SELECT hl.log_id, hl.habit_id, hl.date, hl.status
		 FROM HabitLog hl
		 INNER JOIN Habit h ON h.habit_id = hl.habit_id
		 WHERE h.user_id = ?`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying logs for export: %w", err)
	}
	defer rows.Close()

	var records []json.RawMessage
	for rows.Next() {
		var rec logJSON
		if err := rows.Scan(&rec.LogID, &rec.HabitID, &rec.Date, &rec.Status); err != nil {
			return nil, fmt.Errorf("scanning log for export: %w", err)
		}
		data, err := json.Marshal(rec)
		if err != nil {
			return nil, fmt.Errorf("marshaling log for export: %w", err)
		}
		records = append(records, data)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating logs for export: %w", err)
	}
	return records, nil
}

// newSnapshotID generates a UUID v7 snapshot id, falling back to v4 if v7
// generation fails.
func newSnapshotID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
