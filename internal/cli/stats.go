package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Daniel98M/Lightweight-Data-Warehouse/internal/transformation"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show per-partition statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := buildDeps()
			if err != nil {
				return err
			}
			defer deps.DB.Close()

			reader := transformation.NewReader(deps.DB, deps.Config.RawRoot())
			res, err := reader.PartitionStats(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			banner(out, "PARTITION STATISTICS")
			printResult(out, res, 0)
			fmt.Fprintf(out, "\nFound %d partition(s)\n", len(res.Rows))
			return nil
		},
	}
}
