package cli

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Daniel98M/Lightweight-Data-Warehouse/internal/extraction"
	"github.com/Daniel98M/Lightweight-Data-Warehouse/internal/logging"
)

func newLoadCmd() *cobra.Command {
	var dateFlag string
	var sheet string

	cmd := &cobra.Command{
		Use:   "load <file>",
		Short: "Load a CSV or Excel file into the raw zone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := buildDeps()
			if err != nil {
				return err
			}

			extractionDate, err := parseDateFlag(dateFlag)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			banner(out, "LOADING CASES TO PARQUET")
			fmt.Fprintf(out, "Source file: %s\n", filepath.Base(args[0]))
			fmt.Fprintf(out, "Extraction date: %s\n", extractionDate.Format("2006-01-02"))

			loader := extraction.NewLoader(deps.Config.RawRoot(), deps.Logger)

			var outputPath string
			switch strings.ToLower(filepath.Ext(args[0])) {
			case ".csv":
				outputPath, err = loader.LoadCSV(args[0], extractionDate)
			case ".xlsx", ".xls":
				outputPath, err = loader.LoadExcel(args[0], sheet, extractionDate)
			default:
				return fmt.Errorf("unsupported file type: %s", filepath.Ext(args[0]))
			}
			if err != nil {
				logging.LogError(deps.Logger, "Error during load", err)
				return fmt.Errorf("error during load: %w", err)
			}

			okf(out, "Load completed: %s", outputPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "extraction date as YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&sheet, "sheet", "", "Excel sheet name (default: first sheet)")
	return cmd
}

func parseDateFlag(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q, expected YYYY-MM-DD", value)
	}
	return t, nil
}
