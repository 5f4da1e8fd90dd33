package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/marcboeker/go-duckdb/v2"
)

// DuckDB implements Database on an embedded DuckDB file. An empty path
// opens an in-memory database, which the connection check and tests use.
type DuckDB struct {
	Path        string
	MemoryLimit string
	Threads     int

	db *sql.DB
}

func NewDuckDB(path, memoryLimit string, threads int) *DuckDB {
	return &DuckDB{Path: path, MemoryLimit: memoryLimit, Threads: threads}
}

func (d *DuckDB) Connect(ctx context.Context) error {
	if d.db != nil {
		return nil
	}

	db, err := sql.Open("duckdb", d.Path)
	if err != nil {
		return fmt.Errorf("failed to open duckdb at %q: %w", d.Path, err)
	}

	if d.MemoryLimit != "" {
		if _, err := db.ExecContext(ctx, fmt.Sprintf("SET memory_limit='%s'", d.MemoryLimit)); err != nil {
			_ = db.Close()
			return fmt.Errorf("failed to set memory limit: %w", err)
		}
	}
	if d.Threads > 0 {
		if _, err := db.ExecContext(ctx, fmt.Sprintf("SET threads=%d", d.Threads)); err != nil {
			_ = db.Close()
			return fmt.Errorf("failed to set thread count: %w", err)
		}
	}

	d.db = db
	return nil
}

func (d *DuckDB) Close() error {
	if d.db == nil {
		return nil
	}
	err := d.db.Close()
	d.db = nil
	if err != nil {
		return fmt.Errorf("error closing duckdb connection: %w", err)
	}
	return nil
}

func (d *DuckDB) conn(ctx context.Context) (*sql.DB, error) {
	if d.db == nil {
		if err := d.Connect(ctx); err != nil {
			return nil, err
		}
	}
	return d.db, nil
}

func (d *DuckDB) Execute(ctx context.Context, query string, args ...any) error {
	db, err := d.conn(ctx)
	if err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("query failed: %w", err)
	}
	return nil
}

func (d *DuckDB) FetchOne(ctx context.Context, query string, args ...any) (Row, error) {
	res, err := d.FetchAll(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	if res.Empty() {
		return nil, sql.ErrNoRows
	}
	return res.Rows[0], nil
}

func (d *DuckDB) FetchAll(ctx context.Context, query string, args ...any) (*Result, error) {
	db, err := d.conn(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read result columns: %w", err)
	}

	result := &Result{Columns: cols}
	for rows.Next() {
		values := make(Row, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		result.Rows = append(result.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return result, nil
}

func (d *DuckDB) TableExists(ctx context.Context, name string) (bool, error) {
	row, err := d.FetchOne(ctx,
		"SELECT COUNT(*) FROM information_schema.tables WHERE table_name = ?", name)
	if err != nil {
		return false, err
	}
	count, ok := row[0].(int64)
	if !ok {
		return false, fmt.Errorf("unexpected count type %T", row[0])
	}
	return count > 0, nil
}

func (d *DuckDB) TableInfo(ctx context.Context, name string) (*Result, error) {
	return d.FetchAll(ctx, fmt.Sprintf("DESCRIBE %s", QuoteIdent(name)))
}

func (d *DuckDB) CreateTableFromParquet(ctx context.Context, parquetPath, table string, mode TableMode) (int64, error) {
	if _, err := os.Stat(parquetPath); err != nil {
		return 0, fmt.Errorf("parquet file not found: %w", err)
	}

	exists, err := d.TableExists(ctx, table)
	if err != nil {
		return 0, err
	}

	switch {
	case exists && mode == ModeFail:
		return 0, fmt.Errorf("%w: %s", ErrTableExists, table)
	case exists && mode == ModeReplace:
		if err := d.Execute(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", QuoteIdent(table))); err != nil {
			return 0, err
		}
		exists = false
	}

	source := fmt.Sprintf("SELECT * FROM read_parquet(%s)", quoteString(parquetPath))
	var query string
	if exists && mode == ModeAppend {
		query = fmt.Sprintf("INSERT INTO %s %s", QuoteIdent(table), source)
	} else {
		query = fmt.Sprintf("CREATE TABLE %s AS %s", QuoteIdent(table), source)
	}
	if err := d.Execute(ctx, query); err != nil {
		return 0, err
	}

	row, err := d.FetchOne(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", QuoteIdent(table)))
	if err != nil {
		return 0, err
	}
	count, _ := row[0].(int64)
	return count, nil
}

func (d *DuckDB) ExportToParquet(ctx context.Context, query, outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	export := fmt.Sprintf("COPY (%s) TO %s (FORMAT PARQUET, COMPRESSION ZSTD)",
		query, quoteString(outputPath))
	return d.Execute(ctx, export)
}

func (d *DuckDB) Checkpoint(ctx context.Context) error {
	return d.Execute(ctx, "CHECKPOINT")
}

// QuoteIdent quotes a SQL identifier, doubling embedded quotes.
func QuoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// quoteString quotes a SQL string literal.
func quoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
