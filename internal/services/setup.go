package services

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Daniel98M/Lightweight-Data-Warehouse/internal/config"
	"github.com/Daniel98M/Lightweight-Data-Warehouse/internal/models"
)

// Setup creates the warehouse directory tree. It is idempotent and returns
// the directories it ensured, in creation order.
func Setup(cfg *config.Config, now time.Time) ([]string, error) {
	dirs := []string{
		cfg.StagingDir(),
		cfg.WarehouseDir(),
		cfg.BackupDir,
		cfg.LogDir,
		// Current-date raw partition, so the first load has a home.
		filepath.Join(cfg.RawRoot(), models.NewPartitionKey(now).Path()),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	return dirs, nil
}
