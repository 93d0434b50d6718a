package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	var userID int64
	var outDir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a user's habits and logs as JSONL",
		Long: `Export writes habits.jsonl, logs.jsonl, and a manifest.json with a
snapshot id into the output directory. Files are written atomically.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if outDir == "" {
				wd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("resolve working directory: %w", err)
				}
				outDir = wd
			}

			snapshotID, err := backend.Export(userID, outDir)
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}

			if flags.jsonMode {
				out := map[string]string{"snapshot_id": snapshotID, "dir": outDir}
				data, err := json.MarshalIndent(out, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported snapshot %s to %s\n", snapshotID, outDir)
			return nil
		},
	}

	cmd.Flags().Int64Var(&userID, "user", 0, "user id from login (required)")
	cmd.Flags().StringVar(&outDir, "out", "", "output directory (default: current directory)")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
