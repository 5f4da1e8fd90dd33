package cli

import (
	"github.com/spf13/cobra"

	"github.com/Daniel98M/Lightweight-Data-Warehouse/internal/logging"
	"github.com/Daniel98M/Lightweight-Data-Warehouse/internal/services"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Test the database connection",
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := buildDeps()
			if err != nil {
				return err
			}
			defer deps.DB.Close()

			out := cmd.OutOrStdout()
			banner(out, "TESTING DATABASE CONNECTION")

			report, err := services.CheckConnection(cmd.Context(), deps.DB)
			if err != nil {
				logging.LogError(deps.Logger, "Connection check failed", err)
				return err
			}

			okf(out, "%s", report.Message)
			okf(out, "Database version: %s", report.Version)
			okf(out, "Table existence check: working (probe=%v)", report.TablesVisible)
			okf(out, "All checks passed")
			return nil
		},
	}
}
