// This file implements demo-data seeding for an empty database.
package sqlite

import (
	"fmt"

	"github.com/habitkeep/habitkeep/pkg/types"
)

// demoUser describes an account to seed, with its habits.
type demoUser struct {
	userName string
	password string
	email    string
	habits   []demoHabit
}

// demoHabit describes a habit to seed, with its logs.
type demoHabit struct {
	title       string
	description string
	startDate   string
	category    string
	logs        []demoLog
}

// demoLog describes a log entry to seed.
type demoLog struct {
	date   string
	status string
}

// demoCategories are the sample lookup rows for the reserved Category table.
var demoCategories = []string{"Fitness", "Personal Growth", "Wellness", "Hobbies"}

// demoUsers is the sample dataset inserted by SeedDemo.
var demoUsers = []demoUser{
	{
		userName: "username_1",
		password: "password_123",
		email:    "email1@example.com",
		habits: []demoHabit{
			{
				title:       "Morning Run",
				description: "Run 5km every morning",
				startDate:   "2024-02-01",
				category:    "Fitness",
				logs: []demoLog{
					{"2024-02-01", types.LogStatusCompleted},
					{"2024-02-02", types.LogStatusIncomplete},
				},
			},
			{
				title:       "Read a Book",
				description: "Read 30 pages daily",
				startDate:   "2024-02-02",
				category:    "Personal Growth",
				logs: []demoLog{
					{"2024-02-02", types.LogStatusCompleted},
				},
			},
			{
				title:       "Meditation",
				description: "10 minutes of meditation",
				startDate:   "2024-02-03",
				category:    "Wellness",
				logs: []demoLog{
					{"2024-02-03", types.LogStatusCompleted},
				},
			},
		},
	},
	{
		userName: "username_2",
		password: "password_456",
		email:    "email2@example.com",
		habits: []demoHabit{
			{
				title:       "Evening Walk",
				description: "Walk for 30 minutes",
				startDate:   "2024-02-04",
				category:    "Fitness",
				logs: []demoLog{
					{"2024-02-04", types.LogStatusCompleted},
				},
			},
			{
				title:       "Journal Writing",
				description: "Write a journal entry daily",
				startDate:   "2024-02-05",
				category:    "Personal Growth",
				logs: []demoLog{
					{"2024-02-05", types.LogStatusPartial},
				},
			},
		},
	},
	{
		userName: "username_3",
		password: "password_789",
		email:    "email3@example.com",
		habits: []demoHabit{
			{
				title:       "Practice Guitar",
				description: "Practice guitar for 1 hour",
				startDate:   "2024-02-06",
				category:    "Hobbies",
			},
		},
	},
}

// SeedDemo inserts the sample dataset into an empty database. A database
// that already has any user is left untouched and the call succeeds,
// so seeding on every launch is harmless.
func (b *Backend) SeedDemo() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.open {
		return types.ErrStoreClosed
	}

	var count int
	if err := b.db.QueryRow("SELECT COUNT(*) FROM user").Scan(&count); err != nil {
		return fmt.Errorf("checking for existing users: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, name := range demoCategories {
		if _, err := tx.Exec("INSERT INTO Category (name) VALUES (?)", name); err != nil {
			return fmt.Errorf("seeding category %q: %w", name, err)
		}
	}

	for _, du := range demoUsers {
		result, err := tx.Exec(
			"INSERT INTO user (user_name, password, email) VALUES (?, ?, ?)",
			du.userName, du.password, du.email,
		)
		if err != nil {
			return fmt.Errorf("seeding user %q: %w", du.userName, err)
		}
		userID, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("getting seeded user id: %w", err)
		}

		for _, dh := range du.habits {
			result, err := tx.Exec(
				"INSERT INTO Habit (user_id, title, description, start_date, category) VALUES (?, ?, ?, ?, ?)",
				userID, dh.title, dh.description, dh.startDate, dh.category,
			)
			if err != nil {
				return fmt.Errorf("seeding habit %q: %w", dh.title, err)
			}
			habitID, err := result.LastInsertId()
			if err != nil {
				return fmt.Errorf("getting seeded habit id: %w", err)
			}

			for _, dl := range dh.logs {
				_, err := tx.Exec(
					"INSERT INTO HabitLog (habit_id, date, status) VALUES (?, ?, ?)",
					habitID, dl.date, dl.status,
				)
				if err != nil {
					return fmt.Errorf("seeding log for habit %q on %s: %w", dh.title, dl.date, err)
				}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing seed data: %w", err)
	}

	b.logger.Info("seeded demo data", "users", len(demoUsers))
	return nil
}
