package extraction

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/Daniel98M/Lightweight-Data-Warehouse/internal/models"
)

// Loader writes source files (CSV, Excel) into the raw zone as
// zstd-compressed Parquet, one file per extraction date, laid out as
// year=YYYY/month=MM/day=DD/case_history_YYYYMMDD.parquet.
type Loader struct {
	BasePath string
	Logger   *logrus.Logger
}

func NewLoader(basePath string, logger *logrus.Logger) *Loader {
	return &Loader{BasePath: basePath, Logger: logger}
}

// LoadCSV reads a CSV file and writes it to the raw zone.
// Returns the path of the created Parquet file.
func (l *Loader) LoadCSV(csvPath string, extractionDate time.Time) (string, error) {
	f, err := os.Open(csvPath)
	if err != nil {
		return "", fmt.Errorf("CSV file not found: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return "", fmt.Errorf("failed to read CSV header: %w", err)
	}

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue // skip malformed rows
		}
		rows = append(rows, row)
	}

	records, skipped := rowsToRecords(header, rows, extractionDate)
	if skipped > 0 {
		l.Logger.Warnf("Skipped %d unparseable rows in %s", skipped, filepath.Base(csvPath))
	}
	l.Logger.Infof("Loaded %d rows from %s", len(records), filepath.Base(csvPath))

	return l.writeParquet(records, extractionDate)
}

// LoadExcel reads a sheet of an Excel workbook and writes it to the raw
// zone. An empty sheet name selects the first sheet.
func (l *Loader) LoadExcel(excelPath, sheet string, extractionDate time.Time) (string, error) {
	wb, err := excelize.OpenFile(excelPath)
	if err != nil {
		return "", fmt.Errorf("Excel file not found or unreadable: %w", err)
	}
	defer wb.Close()

	if sheet == "" {
		sheet = wb.GetSheetName(0)
	}
	all, err := wb.GetRows(sheet)
	if err != nil {
		return "", fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(all) == 0 {
		return "", fmt.Errorf("sheet %q is empty", sheet)
	}

	records, skipped := rowsToRecords(all[0], all[1:], extractionDate)
	if skipped > 0 {
		l.Logger.Warnf("Skipped %d unparseable rows in %s", skipped, filepath.Base(excelPath))
	}
	l.Logger.Infof("Loaded %d rows from %s", len(records), filepath.Base(excelPath))

	return l.writeParquet(records, extractionDate)
}

func (l *Loader) writeParquet(records []models.CaseRecord, extractionDate time.Time) (string, error) {
	if len(records) == 0 {
		return "", fmt.Errorf("no usable rows in source file")
	}

	key := models.NewPartitionKey(extractionDate)
	dir := filepath.Join(l.BasePath, key.Path())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create partition directory: %w", err)
	}

	outputPath := filepath.Join(dir, key.FileName())
	f, err := os.Create(outputPath)
	if err != nil {
		return "", fmt.Errorf("failed to create parquet file: %w", err)
	}

	writer := parquet.NewGenericWriter[models.CaseRecord](f)
	if _, err := writer.Write(records); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("failed to write parquet rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close parquet file: %w", err)
	}

	l.Logger.Infof("Saved %d rows to %s (%.2f MB)", len(records), outputPath, FileSizeMB(outputPath))
	return outputPath, nil
}

// rowsToRecords maps raw rows onto CaseRecords using the header for column
// lookup. Headers are matched case-insensitively after snake_casing, so
// "CASE_ID", "Case Id" and "case_id" are all the same column. Rows without
// a parseable case_id are dropped and counted.
func rowsToRecords(header []string, rows [][]string, extractionDate time.Time) ([]models.CaseRecord, int) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[toSnakeCase(h)] = i
	}

	field := func(row []string, name string) string {
		i, ok := idx[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var records []models.CaseRecord
	skipped := 0
	for _, row := range rows {
		id, err := strconv.ParseInt(field(row, "case_id"), 10, 64)
		if err != nil {
			skipped++
			continue
		}

		rec := models.CaseRecord{
			CaseID:      id,
			Status:      field(row, "status"),
			Country:     field(row, "country"),
			Priority:    field(row, "priority"),
			AssignedTo:  field(row, "assigned_to"),
			ExtractedAt: extractionDate,
		}
		if t, ok := parseTime(field(row, "opened_at")); ok {
			rec.OpenedAt = t
		}
		if t, ok := parseTime(field(row, "closed_at")); ok {
			rec.ClosedAt = &t
		}
		records = append(records, rec)
	}
	return records, skipped
}

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006",
}

func parseTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// toSnakeCase converts "Column Name" to "column_name".
func toSnakeCase(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}
