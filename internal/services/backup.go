package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Daniel98M/Lightweight-Data-Warehouse/internal/infrastructure/database"
)

// Backup exports dated Parquet snapshots of warehouse tables.
type Backup struct {
	DB        database.Database
	BackupDir string
	Logger    *logrus.Logger
}

func NewBackup(db database.Database, backupDir string, logger *logrus.Logger) *Backup {
	return &Backup{DB: db, BackupDir: backupDir, Logger: logger}
}

// Run snapshots the given tables into backups/YYYYMMDD/<table>.parquet and
// checkpoints the database afterwards. With no tables given, every base
// table in the main schema is snapshotted. Returns the snapshot directory.
func (b *Backup) Run(ctx context.Context, now time.Time, tables ...string) (string, error) {
	if len(tables) == 0 {
		var err error
		tables, err = b.listTables(ctx)
		if err != nil {
			return "", err
		}
	}
	if len(tables) == 0 {
		return "", fmt.Errorf("no tables to back up")
	}

	dir := filepath.Join(b.BackupDir, now.Format("20060102"))
	for _, table := range tables {
		out := filepath.Join(dir, table+".parquet")
		query := fmt.Sprintf("SELECT * FROM %s", database.QuoteIdent(table))
		if err := b.DB.ExportToParquet(ctx, query, out); err != nil {
			return "", fmt.Errorf("failed to back up table %s: %w", table, err)
		}
		b.Logger.Infof("Backed up %s to %s", table, out)
	}

	if err := b.DB.Checkpoint(ctx); err != nil {
		return "", fmt.Errorf("checkpoint after backup failed: %w", err)
	}
	return dir, nil
}

func (b *Backup) listTables(ctx context.Context) ([]string, error) {
	res, err := b.DB.FetchAll(ctx,
		"SELECT table_name FROM information_schema.tables WHERE table_schema = 'main' AND table_type = 'BASE TABLE' ORDER BY table_name")
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	var tables []string
	for _, row := range res.Rows {
		if name, ok := row[0].(string); ok {
			tables = append(tables, name)
		}
	}
	return tables, nil
}

// List returns existing snapshot directory names, newest first.
func (b *Backup) List() ([]string, error) {
	entries, err := os.ReadDir(b.BackupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	return names, nil
}
