package transformation

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/Daniel98M/Lightweight-Data-Warehouse/internal/infrastructure/database"
)

// Reader queries the raw zone's Parquet files through DuckDB, leaning on
// its native Hive partition support for pruning.
type Reader struct {
	DB      database.Database
	RawRoot string
}

func NewReader(db database.Database, rawRoot string) *Reader {
	return &Reader{DB: db, RawRoot: rawRoot}
}

// ScanSource is the FROM clause scanning every raw partition.
func (r *Reader) ScanSource() string {
	glob := filepath.ToSlash(filepath.Join(r.RawRoot, "**", "*.parquet"))
	glob = strings.ReplaceAll(glob, "'", "''")
	return fmt.Sprintf("read_parquet('%s', hive_partitioning = true)", glob)
}

// ReadAll returns every case across all partitions.
func (r *Reader) ReadAll(ctx context.Context) (*database.Result, error) {
	return r.DB.FetchAll(ctx, fmt.Sprintf("SELECT * FROM %s", r.ScanSource()))
}

// ReadByDate returns cases from one partition slice. A zero month or day
// widens the slice to the whole year or month.
func (r *Reader) ReadByDate(ctx context.Context, year, month, day int) (*database.Result, error) {
	where := DateFilter(year, month, day)
	if where == "" {
		return nil, fmt.Errorf("year is required for a date filter")
	}
	query := fmt.Sprintf("SELECT * FROM %s WHERE %s", r.ScanSource(), where)
	return r.DB.FetchAll(ctx, query)
}

// ReadByRange returns cases whose partition date falls in [from, to].
func (r *Reader) ReadByRange(ctx context.Context, from, to time.Time) (*database.Result, error) {
	query := fmt.Sprintf(
		"SELECT * FROM %s WHERE make_date(year, month, day) BETWEEN DATE '%s' AND DATE '%s'",
		r.ScanSource(), from.Format("2006-01-02"), to.Format("2006-01-02"))
	return r.DB.FetchAll(ctx, query)
}

// PartitionStats returns per-partition row and distinct case counts,
// newest partitions first.
func (r *Reader) PartitionStats(ctx context.Context) (*database.Result, error) {
	query := fmt.Sprintf(`
		SELECT
			year,
			month,
			day,
			COUNT(*) AS case_count,
			COUNT(DISTINCT case_id) AS unique_cases
		FROM %s
		GROUP BY year, month, day
		ORDER BY year DESC, month DESC, day DESC`, r.ScanSource())
	return r.DB.FetchAll(ctx, query)
}

// QueryFilter runs an ad-hoc query. A full SELECT statement passes through
// unchanged; anything else is treated as a WHERE clause over the raw scan.
func (r *Reader) QueryFilter(ctx context.Context, filter string) (*database.Result, error) {
	query := r.BuildFilterQuery(filter)
	return r.DB.FetchAll(ctx, query)
}

// BuildFilterQuery resolves an ad-hoc filter into a full query.
func (r *Reader) BuildFilterQuery(filter string) string {
	if strings.HasPrefix(strings.ToUpper(strings.TrimSpace(filter)), "SELECT") {
		return filter
	}
	return fmt.Sprintf("SELECT * FROM %s WHERE %s", r.ScanSource(), filter)
}

// DateFilter builds the partition-pruning WHERE clause for a year and
// optional month and day. Returns "" when year is zero.
func DateFilter(year, month, day int) string {
	if year == 0 {
		return ""
	}
	clauses := []string{fmt.Sprintf("year = %d", year)}
	if month != 0 {
		clauses = append(clauses, fmt.Sprintf("month = %d", month))
	}
	if day != 0 {
		clauses = append(clauses, fmt.Sprintf("day = %d", day))
	}
	return strings.Join(clauses, " AND ")
}
