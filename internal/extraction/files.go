package extraction

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/Daniel98M/Lightweight-Data-Warehouse/internal/models"
)

// AllRawFiles lists every Parquet file under root in path order, which is
// chronological thanks to the partition layout.
func AllRawFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) && path == root {
				return filepath.SkipAll
			}
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".parquet") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// LatestRawFile returns the most recently modified raw file. The second
// return value is false when the raw zone holds no files.
func LatestRawFile(root string) (string, bool, error) {
	files, err := AllRawFiles(root)
	if err != nil {
		return "", false, err
	}

	var latest string
	var latestMod time.Time
	for _, path := range files {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if latest == "" || info.ModTime().After(latestMod) {
			latest = path
			latestMod = info.ModTime()
		}
	}
	if latest == "" {
		return "", false, nil
	}
	return latest, true, nil
}

// RawFilesInRange lists the raw files whose extraction date falls between
// from and to, inclusive.
func RawFilesInRange(root string, from, to time.Time) ([]string, error) {
	var files []string
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		key := models.NewPartitionKey(d)
		path := filepath.Join(root, key.Path(), key.FileName())
		if _, err := os.Stat(path); err == nil {
			files = append(files, path)
		}
	}
	return files, nil
}

// FileSizeMB returns the file size in megabytes, 0 for missing files.
func FileSizeMB(path string) float64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return float64(info.Size()) / (1024 * 1024)
}
