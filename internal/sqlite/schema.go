// Package sqlite implements the SQLite storage backend for habitkeep.
package sqlite

// Pragmas applied on every open. WAL keeps single-writer commits durable and
// cheap; foreign_keys makes the ON DELETE CASCADE declarations effective.
const (
	pragmaJournalMode = `PRAGMA journal_mode = WAL;`
	pragmaForeignKeys = `PRAGMA foreign_keys = ON;`
)

// Schema DDL. The column layout is a compatibility contract with existing
// database files and must not change shape: integer AUTOINCREMENT keys,
// ISO 8601 calendar dates as TEXT, and cascading foreign keys from Habit to
// user and from HabitLog to Habit. Every statement is idempotent so the
// schema can be applied on every process start.
const (
	createUser = `CREATE TABLE IF NOT EXISTS user (
    user_id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_name TEXT NOT NULL,
    password TEXT NOT NULL,
    email TEXT
);`

	createHabit = `CREATE TABLE IF NOT EXISTS Habit (
    habit_id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id INTEGER NOT NULL,
    title TEXT NOT NULL,
    description TEXT,
    start_date TEXT NOT NULL,
    category TEXT,
    status TEXT NOT NULL DEFAULT 'active',
    FOREIGN KEY (user_id) REFERENCES user (user_id) ON DELETE CASCADE
);`

	createHabitLog = `CREATE TABLE IF NOT EXISTS HabitLog (
    log_id INTEGER PRIMARY KEY AUTOINCREMENT,
    habit_id INTEGER NOT NULL,
    date TEXT NOT NULL,
    status TEXT NOT NULL,
    FOREIGN KEY (habit_id) REFERENCES Habit (habit_id) ON DELETE CASCADE
);`

	// Category is a reserved lookup table. It is part of the persisted
	// layout but no query in this package joins against it.
	createCategory = `CREATE TABLE IF NOT EXISTS Category (
    category_id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE
);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createUser,
	createHabit,
	createHabitLog,
	createCategory,
}
