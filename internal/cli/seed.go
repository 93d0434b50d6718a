package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the demo dataset",
		Long: `Seed inserts a small demo dataset of users, habits, and logs for
trying the tool out. It does nothing if any account already exists.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := backend.SeedDemo(); err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "demo data loaded")
			return nil
		},
	}
}
