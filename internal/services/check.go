package services

import (
	"context"
	"fmt"

	"github.com/Daniel98M/Lightweight-Data-Warehouse/internal/infrastructure/database"
)

// CheckReport is the outcome of a connection check.
type CheckReport struct {
	Message       string
	Version       string
	ProbeWorking  bool
	TablesVisible bool
}

// CheckConnection verifies the database is reachable and the basic adapter
// operations work: a literal query, the engine version, and a table
// existence probe against a name that must not exist.
func CheckConnection(ctx context.Context, db database.Database) (*CheckReport, error) {
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connection failed: %w", err)
	}

	report := &CheckReport{}

	row, err := db.FetchOne(ctx, "SELECT 'Connection successful!' AS message")
	if err != nil {
		return nil, fmt.Errorf("probe query failed: %w", err)
	}
	report.Message, _ = row[0].(string)
	report.ProbeWorking = report.Message != ""

	row, err = db.FetchOne(ctx, "SELECT version()")
	if err != nil {
		return nil, fmt.Errorf("version query failed: %w", err)
	}
	report.Version, _ = row[0].(string)

	exists, err := db.TableExists(ctx, "nonexistent_table")
	if err != nil {
		return nil, fmt.Errorf("table existence probe failed: %w", err)
	}
	report.TablesVisible = !exists

	return report, nil
}
