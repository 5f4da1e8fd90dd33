package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Daniel98M/Lightweight-Data-Warehouse/internal/extraction"
)

func newSeedCmd() *cobra.Command {
	var count int
	var dateFlag string
	var output string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate a sample cases CSV for demos and testing",
		RunE: func(cmd *cobra.Command, args []string) error {
			extractionDate, err := parseDateFlag(dateFlag)
			if err != nil {
				return err
			}

			gen := extraction.NewGenerator(time.Now().UnixNano())
			records := gen.Generate(count, extractionDate)
			if err := gen.WriteCSV(output, records); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			okf(out, "Wrote %d sample cases to %s", len(records), output)
			fmt.Fprintf(out, "Load them with: casedwh load %s --date %s\n",
				output, extractionDate.Format("2006-01-02"))
			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", 1000, "number of sample cases")
	cmd.Flags().StringVar(&dateFlag, "date", "", "extraction date as YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&output, "output", "sample_cases.csv", "output CSV path")
	return cmd
}
