package sqlite

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/habitkeep/habitkeep/pkg/types"
)

// Backend implements the Store interface on a single SQLite database file.
// The handle is opened once and reused for the process lifetime; callers are
// logically single-threaded, and the one check-then-act sequence (log upsert)
// runs inside a transaction so genuinely concurrent callers stay safe.
type Backend struct {
	mu     sync.RWMutex
	open   bool
	config types.Config
	db     *sql.DB
	logger *slog.Logger

	users  *usersTable
	habits *habitsTable
	logs   *logsTable
}

// Compile-time interface check.
var _ types.Store = (*Backend)(nil)

// NewBackend creates a new SQLite backend instance.
// The backend is not open; call Open with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{
		logger: slog.Default().With("component", "store"),
	}
}

// Open initializes the backend with the given configuration: creates the
// data directory if needed, opens the database file, applies the pragmas,
// and ensures the schema. Safe to call on every process start; an existing
// database is left untouched apart from missing tables being created.
// Returns ErrAlreadyOpen if already open.
func (b *Backend) Open(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.open {
		return types.ErrAlreadyOpen
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, config.File())
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(pragmaJournalMode); err != nil {
		db.Close()
		return fmt.Errorf("enabling WAL mode: %w", err)
	}
	if _, err := db.Exec(pragmaForeignKeys); err != nil {
		db.Close()
		return fmt.Errorf("enabling foreign keys: %w", err)
	}

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("applying schema: %w", err)
		}
	}

	b.db = db
	b.config = config
	b.open = true
	b.users = &usersTable{backend: b}
	b.habits = &habitsTable{backend: b}
	b.logs = &logsTable{backend: b}

	b.logger.Info("sqlite store opened", "path", dbPath)
	return nil
}

// Close releases the database handle. After Close, the table accessors
// return ErrStoreClosed. Close is idempotent.
func (b *Backend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.open {
		return nil // idempotent
	}

	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}

	b.open = false
	b.users = nil
	b.habits = nil
	b.logs = nil

	b.logger.Info("sqlite store closed")
	return nil
}

// Config returns the configuration the backend was opened with.
func (b *Backend) Config() types.Config {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.config
}

// Users returns the account store.
// Returns ErrStoreClosed if the backend is not open.
func (b *Backend) Users() (types.UserStore, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.open {
		return nil, types.ErrStoreClosed
	}
	return b.users, nil
}

// Habits returns the habit store.
// Returns ErrStoreClosed if the backend is not open.
func (b *Backend) Habits() (types.HabitStore, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.open {
		return nil, types.ErrStoreClosed
	}
	return b.habits, nil
}

// Logs returns the log store.
// Returns ErrStoreClosed if the backend is not open.
func (b *Backend) Logs() (types.LogStore, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.open {
		return nil, types.ErrStoreClosed
	}
	return b.logs, nil
}
