package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Daniel98M/Lightweight-Data-Warehouse/internal/extraction"
	"github.com/Daniel98M/Lightweight-Data-Warehouse/internal/logging"
)

func newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show an inventory of the raw zone",
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := buildDeps()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			banner(out, "RAW LAYER SUMMARY")

			infos, err := extraction.Summarize(deps.Config.RawRoot())
			if err != nil {
				return err
			}
			if len(infos) == 0 {
				logging.LogWarn(deps.Logger, "No data files found in the raw layer")
				fmt.Fprintln(out, "No data files found in the raw layer.")
				fmt.Fprintln(out, "Load data with: casedwh load <file>")
				return nil
			}

			fmt.Fprintf(out, "Found %d file(s):\n\n", len(infos))
			for _, info := range infos {
				fmt.Fprintf(out, "%04d-%02d-%02d  %-40s %8.2f MB  modified %s\n",
					info.Partition.Year, info.Partition.Month, info.Partition.Day,
					info.FileName, info.SizeMB,
					info.ModifiedAt.Format("2006-01-02 15:04"))
			}
			fmt.Fprintf(out, "\nTotal size: %.2f MB\n", extraction.TotalSizeMB(infos))
			return nil
		},
	}
}
