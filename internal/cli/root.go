// Package cli implements the habitkeep command-line interface. It is the
// boundary collaborator of the storage core: commands perform the
// caller-level validation (duplicate accounts, duplicate titles, empty
// fields) and render store results, and never report success before the
// store has confirmed the write.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/habitkeep/habitkeep/internal/sqlite"
	"github.com/habitkeep/habitkeep/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	jsonMode  bool
}

var flags rootFlags

// backend is the shared store handle, opened once per invocation by
// initStore and closed by closeStore.
var backend *sqlite.Backend

// NewRootCmd creates the top-level "habitkeep" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "habitkeep",
		Short: "A personal habit tracker",
		Long: `Habitkeep persists habits, per-day completion logs, and accounts
in a local SQLite database, and renders the queries a habit tracker needs:
active habit lists, per-date logs, and calendar completion views.`,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:       true,
		PersistentPreRunE:  initStore,
		PersistentPostRunE: closeStore,
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "data directory (default: platform data dir)")
	root.PersistentFlags().BoolVar(&flags.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newAccountCmd())
	root.AddCommand(newHabitCmd())
	root.AddCommand(newLogCmd())
	root.AddCommand(newProgressCmd())
	root.AddCommand(newExportCmd())
	root.AddCommand(newSeedCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(exitUserError)
	}
}

// initStore loads config and opens the shared store handle.
// The version command needs no storage and skips this.
func initStore(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	b := sqlite.NewBackend()
	if err := b.Open(cfg); err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	backend = b
	return nil
}

// closeStore closes the shared store handle.
func closeStore(cmd *cobra.Command, args []string) error {
	if backend != nil {
		return backend.Close()
	}
	return nil
}

// userStore returns the account store from the shared backend.
func userStore() (types.UserStore, error) {
	return backend.Users()
}

// habitStore returns the habit store from the shared backend.
func habitStore() (types.HabitStore, error) {
	return backend.Habits()
}

// logStore returns the log store from the shared backend.
func logStore() (types.LogStore, error) {
	return backend.Logs()
}
