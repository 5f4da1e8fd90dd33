package transformation

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/Daniel98M/Lightweight-Data-Warehouse/internal/infrastructure/database"
)

const (
	// StagingTable is the DuckDB table registered from the staging export.
	StagingTable = "stg_cases"

	stagingFileName = "cases.parquet"
)

// Promoter builds the staging zone from the raw zone: the latest extraction
// wins per case, duplicates are dropped, and the result is both exported as
// Parquet and registered as a DuckDB table.
type Promoter struct {
	DB         database.Database
	RawRoot    string
	StagingDir string
	Logger     *logrus.Logger
}

func NewPromoter(db database.Database, rawRoot, stagingDir string, logger *logrus.Logger) *Promoter {
	return &Promoter{DB: db, RawRoot: rawRoot, StagingDir: stagingDir, Logger: logger}
}

// Promote rebuilds the staging snapshot. Returns the staged row count.
func (p *Promoter) Promote(ctx context.Context) (int64, error) {
	reader := NewReader(p.DB, p.RawRoot)
	dedupe := fmt.Sprintf(`
		SELECT * EXCLUDE (rn) FROM (
			SELECT *, ROW_NUMBER() OVER (
				PARTITION BY case_id ORDER BY extracted_at DESC
			) AS rn
			FROM %s
		) WHERE rn = 1`, reader.ScanSource())

	outputPath := filepath.Join(p.StagingDir, stagingFileName)
	if err := p.DB.ExportToParquet(ctx, dedupe, outputPath); err != nil {
		return 0, fmt.Errorf("failed to export staging snapshot: %w", err)
	}
	p.Logger.Infof("Staging snapshot exported to %s", outputPath)

	count, err := p.DB.CreateTableFromParquet(ctx, outputPath, StagingTable, database.ModeReplace)
	if err != nil {
		return 0, fmt.Errorf("failed to register staging table: %w", err)
	}
	p.Logger.Infof("Table %s registered with %d rows", StagingTable, count)
	return count, nil
}
