package database

import (
	"context"
	"errors"
)

// TableMode controls what happens when a target table already exists.
type TableMode string

const (
	ModeFail    TableMode = "fail"
	ModeReplace TableMode = "replace"
	ModeAppend  TableMode = "append"
)

var (
	// ErrTableExists is returned by ModeFail when the table is present.
	ErrTableExists = errors.New("table already exists")
	// ErrUnsupportedKind is returned by Open for unknown database kinds.
	ErrUnsupportedKind = errors.New("unsupported database kind")
)

// Row is a single result row in column order.
type Row []any

// Result holds a full query result for display or shaping.
type Result struct {
	Columns []string
	Rows    []Row
}

// Empty reports whether the result has no rows.
func (r *Result) Empty() bool {
	return r == nil || len(r.Rows) == 0
}

// Database is the contract every analytical backend must implement.
// It keeps the warehouse code independent of the concrete engine.
type Database interface {
	Connect(ctx context.Context) error
	Close() error

	Execute(ctx context.Context, query string, args ...any) error
	FetchOne(ctx context.Context, query string, args ...any) (Row, error)
	FetchAll(ctx context.Context, query string, args ...any) (*Result, error)

	TableExists(ctx context.Context, name string) (bool, error)
	TableInfo(ctx context.Context, name string) (*Result, error)

	// CreateTableFromParquet loads a Parquet file into a table and returns
	// the resulting row count of the table.
	CreateTableFromParquet(ctx context.Context, parquetPath, table string, mode TableMode) (int64, error)
	// ExportToParquet writes a query result to a zstd-compressed Parquet file,
	// creating parent directories as needed.
	ExportToParquet(ctx context.Context, query, outputPath string) error

	// Checkpoint flushes and compacts the database file.
	Checkpoint(ctx context.Context) error
}
