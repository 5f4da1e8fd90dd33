package cli

import (
	"github.com/spf13/cobra"

	"github.com/Daniel98M/Lightweight-Data-Warehouse/internal/logging"
	"github.com/Daniel98M/Lightweight-Data-Warehouse/internal/transformation"
)

func newPromoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "promote",
		Short: "Rebuild the staging zone from the raw zone",
		Long:  "Deduplicates the raw zone (latest extraction wins per case), exports the snapshot to the staging directory, and registers the stg_cases table in DuckDB.",
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := buildDeps()
			if err != nil {
				return err
			}
			defer deps.DB.Close()

			out := cmd.OutOrStdout()
			banner(out, "PROMOTING RAW TO STAGING")

			promoter := transformation.NewPromoter(
				deps.DB, deps.Config.RawRoot(), deps.Config.StagingDir(), deps.Logger)
			count, err := promoter.Promote(cmd.Context())
			if err != nil {
				logging.LogError(deps.Logger, "Staging build failed", err)
				return err
			}

			logging.LogInfo(deps.Logger, "Staging build completed")
			okf(out, "Staged %d cases into %s", count, transformation.StagingTable)
			return nil
		},
	}
}
