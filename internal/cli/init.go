package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the database and configuration files",
		Long: `Init creates the configuration directory, a default config file, and
the database with its schema. Running it again is harmless: existing
tables and data are kept as they are.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// initStore has already opened the backend and applied the
			// schema. Report where everything landed.
			cfg := backend.Config()
			fmt.Fprintf(cmd.OutOrStdout(), "database ready at %s\n", filepath.Join(cfg.DataDir, cfg.File()))
			return nil
		},
	}
}
