package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Daniel98M/Lightweight-Data-Warehouse/internal/logging"
	"github.com/Daniel98M/Lightweight-Data-Warehouse/internal/services"
)

func newBackupCmd() *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "backup [table ...]",
		Short: "Snapshot warehouse tables to dated Parquet backups",
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := buildDeps()
			if err != nil {
				return err
			}
			defer deps.DB.Close()

			out := cmd.OutOrStdout()
			backup := services.NewBackup(deps.DB, deps.Config.BackupDir, deps.Logger)

			if list {
				banner(out, "EXISTING BACKUPS")
				names, err := backup.List()
				if err != nil {
					return err
				}
				if len(names) == 0 {
					fmt.Fprintln(out, "No backups found.")
					return nil
				}
				for _, name := range names {
					fmt.Fprintln(out, name)
				}
				return nil
			}

			banner(out, "BACKING UP WAREHOUSE TABLES")
			dir, err := backup.Run(cmd.Context(), time.Now(), args...)
			if err != nil {
				logging.LogError(deps.Logger, "Backup failed", err)
				return err
			}
			okf(out, "Backup written to %s", dir)
			return nil
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "list existing backups instead of creating one")
	return cmd
}
