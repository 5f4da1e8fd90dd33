package extraction

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Daniel98M/Lightweight-Data-Warehouse/internal/models"
)

// Summarize inventories the raw zone: one entry per Parquet file with its
// partition, size and modification time, in partition order.
func Summarize(root string) ([]models.RawFileInfo, error) {
	files, err := AllRawFiles(root)
	if err != nil {
		return nil, fmt.Errorf("failed to scan raw zone: %w", err)
	}

	var infos []models.RawFileInfo
	for _, path := range files {
		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}
		key, ok := models.ParsePartitionPath(rel)
		if !ok {
			// Files outside the partition layout are not part of the zone.
			continue
		}

		stat, err := os.Stat(path)
		if err != nil {
			continue
		}

		infos = append(infos, models.RawFileInfo{
			Partition:  key,
			FileName:   filepath.Base(path),
			Path:       path,
			SizeMB:     float64(stat.Size()) / (1024 * 1024),
			ModifiedAt: stat.ModTime(),
		})
	}
	return infos, nil
}

// TotalSizeMB sums the sizes of the given raw files.
func TotalSizeMB(infos []models.RawFileInfo) float64 {
	var total float64
	for _, info := range infos {
		total += info.SizeMB
	}
	return total
}
