package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Daniel98M/Lightweight-Data-Warehouse/internal/infrastructure/database"
	"github.com/Daniel98M/Lightweight-Data-Warehouse/internal/transformation"
)

func newQueryCmd() *cobra.Command {
	var year, month, day int
	var fromFlag, toFlag string
	var where string
	var limit int

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query cases from the raw zone",
		Long:  "Query cases straight from the Hive-partitioned Parquet files. Filter by partition date, by a date range, or with an ad-hoc SQL expression.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if year == 0 && (month != 0 || day != 0) {
				return fmt.Errorf("--month and --day require --year")
			}

			deps, err := buildDeps()
			if err != nil {
				return err
			}
			defer deps.DB.Close()

			reader := transformation.NewReader(deps.DB, deps.Config.RawRoot())
			ctx := cmd.Context()

			var res *database.Result
			switch {
			case where != "":
				res, err = reader.QueryFilter(ctx, where)
			case fromFlag != "" || toFlag != "":
				if fromFlag == "" || toFlag == "" {
					return fmt.Errorf("--from and --to must be used together")
				}
				from, perr := parseDateFlag(fromFlag)
				if perr != nil {
					return perr
				}
				to, perr := parseDateFlag(toFlag)
				if perr != nil {
					return perr
				}
				res, err = reader.ReadByRange(ctx, from, to)
			case year != 0:
				res, err = reader.ReadByDate(ctx, year, month, day)
			default:
				res, err = reader.ReadAll(ctx)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			banner(out, "QUERY CASES - DUCKDB + HIVE PARTITIONS")
			printResult(out, res, limit)
			fmt.Fprintf(out, "\nTotal rows: %d\n", len(res.Rows))
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "filter by partition year")
	cmd.Flags().IntVar(&month, "month", 0, "filter by partition month (requires --year)")
	cmd.Flags().IntVar(&day, "day", 0, "filter by partition day (requires --month)")
	cmd.Flags().StringVar(&fromFlag, "from", "", "range start as YYYY-MM-DD")
	cmd.Flags().StringVar(&toFlag, "to", "", "range end as YYYY-MM-DD")
	cmd.Flags().StringVar(&where, "where", "", "ad-hoc filter expression or full SELECT")
	cmd.Flags().IntVar(&limit, "limit", 20, "max rows to print (0 = all)")
	return cmd
}
