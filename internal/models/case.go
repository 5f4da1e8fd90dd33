package models

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// CaseRecord is one row of the case_history dataset. The raw zone stores
// these as zstd-compressed Parquet, one file per extraction date.
type CaseRecord struct {
	CaseID      int64      `parquet:"case_id,zstd" json:"case_id"`
	Status      string     `parquet:"status,zstd" json:"status"`
	Country     string     `parquet:"country,zstd" json:"country"`
	Priority    string     `parquet:"priority,zstd" json:"priority"`
	AssignedTo  string     `parquet:"assigned_to,zstd" json:"assigned_to"`
	OpenedAt    time.Time  `parquet:"opened_at,zstd" json:"opened_at"`
	ClosedAt    *time.Time `parquet:"closed_at,optional,zstd" json:"closed_at,omitempty"`
	ExtractedAt time.Time  `parquet:"extracted_at,zstd" json:"extracted_at"`
}

// PartitionKey identifies one raw-zone partition directory.
type PartitionKey struct {
	Year  int
	Month int
	Day   int
}

// NewPartitionKey derives the partition for an extraction date.
func NewPartitionKey(date time.Time) PartitionKey {
	return PartitionKey{Year: date.Year(), Month: int(date.Month()), Day: date.Day()}
}

// Path renders the Hive-style partition path relative to the raw root,
// e.g. "year=2025/month=02/day=11".
func (k PartitionKey) Path() string {
	return filepath.Join(
		fmt.Sprintf("year=%d", k.Year),
		fmt.Sprintf("month=%02d", k.Month),
		fmt.Sprintf("day=%02d", k.Day),
	)
}

// FileName is the raw-zone file name for this partition's extraction,
// e.g. "case_history_20250211.parquet".
func (k PartitionKey) FileName() string {
	return fmt.Sprintf("case_history_%04d%02d%02d.parquet", k.Year, k.Month, k.Day)
}

// Date returns the partition as a midnight UTC timestamp.
func (k PartitionKey) Date() time.Time {
	return time.Date(k.Year, time.Month(k.Month), k.Day, 0, 0, 0, 0, time.UTC)
}

// ParsePartitionPath extracts the partition key from a path containing
// Hive-style year=/month=/day= segments. Returns false when any segment
// is missing or malformed.
func ParsePartitionPath(path string) (PartitionKey, bool) {
	var key PartitionKey
	var haveYear, haveMonth, haveDay bool

	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		name, value, found := strings.Cut(part, "=")
		if !found {
			continue
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			continue
		}
		switch name {
		case "year":
			key.Year, haveYear = n, true
		case "month":
			key.Month, haveMonth = n, true
		case "day":
			key.Day, haveDay = n, true
		}
	}

	if !haveYear || !haveMonth || !haveDay {
		return PartitionKey{}, false
	}
	if key.Month < 1 || key.Month > 12 || key.Day < 1 || key.Day > 31 {
		return PartitionKey{}, false
	}
	return key, true
}

// RawFileInfo describes one Parquet file in the raw zone.
type RawFileInfo struct {
	Partition  PartitionKey
	FileName   string
	Path       string
	SizeMB     float64
	ModifiedAt time.Time
}
