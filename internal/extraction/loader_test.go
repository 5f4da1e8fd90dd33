package extraction

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Daniel98M/Lightweight-Data-Warehouse/internal/models"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.ErrorLevel)
	return logger
}

func TestRowsToRecords(t *testing.T) {
	date := time.Date(2025, 2, 11, 0, 0, 0, 0, time.UTC)

	t.Run("maps headers case-insensitively", func(t *testing.T) {
		header := []string{"CASE_ID", "Status", "Country", "Priority", "Assigned To", "opened_at", "closed_at"}
		rows := [][]string{
			{"101", "Resolved", "Mexico", "High", "Ana Lopez", "2025-01-03", "2025-01-20"},
			{"102", "Open", "Spain", "Low", "Luis Rey", "2025-02-01", ""},
		}

		records, skipped := rowsToRecords(header, rows, date)
		require.Len(t, records, 2)
		assert.Zero(t, skipped)

		assert.Equal(t, int64(101), records[0].CaseID)
		assert.Equal(t, "Resolved", records[0].Status)
		assert.Equal(t, "Ana Lopez", records[0].AssignedTo)
		require.NotNil(t, records[0].ClosedAt)
		assert.Equal(t, 2025, records[0].ClosedAt.Year())
		assert.Nil(t, records[1].ClosedAt)
		assert.Equal(t, date, records[0].ExtractedAt)
	})

	t.Run("drops rows without a parseable case id", func(t *testing.T) {
		header := []string{"case_id", "status"}
		rows := [][]string{
			{"not-a-number", "Open"},
			{"", "Open"},
			{"7", "Open"},
		}

		records, skipped := rowsToRecords(header, rows, date)
		require.Len(t, records, 1)
		assert.Equal(t, 2, skipped)
		assert.Equal(t, int64(7), records[0].CaseID)
	})

	t.Run("short rows do not panic", func(t *testing.T) {
		header := []string{"case_id", "status", "country"}
		rows := [][]string{{"1"}}

		records, skipped := rowsToRecords(header, rows, date)
		require.Len(t, records, 1)
		assert.Zero(t, skipped)
		assert.Empty(t, records[0].Status)
	})
}

func TestLoadCSV(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "cases.csv")
	content := "case_id,status,country,priority,assigned_to,opened_at,closed_at\n" +
		"1,Open,Mexico,High,Ana,2025-01-03,\n" +
		"2,Closed,Spain,Low,Luis,2025-01-05,2025-01-30\n" +
		"bad,Open,Peru,Low,Eva,2025-01-06,\n"
	require.NoError(t, os.WriteFile(csvPath, []byte(content), 0o644))

	rawRoot := filepath.Join(dir, "raw")
	loader := NewLoader(rawRoot, testLogger())
	date := time.Date(2025, 2, 11, 0, 0, 0, 0, time.UTC)

	outputPath, err := loader.LoadCSV(csvPath, date)
	require.NoError(t, err)

	expected := filepath.Join(rawRoot, "year=2025", "month=02", "day=11", "case_history_20250211.parquet")
	assert.Equal(t, expected, outputPath)

	records, err := parquet.ReadFile[models.CaseRecord](outputPath)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, int64(1), records[0].CaseID)
	assert.Equal(t, "Spain", records[1].Country)
	require.NotNil(t, records[1].ClosedAt)
}

func TestLoadExcel(t *testing.T) {
	dir := t.TempDir()
	excelPath := filepath.Join(dir, "cases.xlsx")

	wb := excelize.NewFile()
	sheet := wb.GetSheetName(0)
	rows := [][]any{
		{"case_id", "status", "country", "priority", "assigned_to", "opened_at", "closed_at"},
		{"1", "Open", "Mexico", "High", "Ana", "2025-01-03", ""},
		{"2", "Closed", "Spain", "Low", "Luis", "2025-01-05", "2025-01-30"},
		{"bad", "Open", "Peru", "Low", "Eva", "2025-01-06", ""},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, wb.SetSheetRow(sheet, cell, &row))
	}
	require.NoError(t, wb.SaveAs(excelPath))
	require.NoError(t, wb.Close())

	rawRoot := filepath.Join(dir, "raw")
	loader := NewLoader(rawRoot, testLogger())
	date := time.Date(2025, 2, 11, 0, 0, 0, 0, time.UTC)

	outputPath, err := loader.LoadExcel(excelPath, "", date)
	require.NoError(t, err)

	expected := filepath.Join(rawRoot, "year=2025", "month=02", "day=11", "case_history_20250211.parquet")
	assert.Equal(t, expected, outputPath)

	records, err := parquet.ReadFile[models.CaseRecord](outputPath)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, int64(1), records[0].CaseID)
	assert.Equal(t, "Spain", records[1].Country)
	require.NotNil(t, records[1].ClosedAt)
	assert.Nil(t, records[0].ClosedAt)
}

func TestLoadExcelErrors(t *testing.T) {
	loader := NewLoader(t.TempDir(), testLogger())
	date := time.Now()

	t.Run("missing file", func(t *testing.T) {
		_, err := loader.LoadExcel("does-not-exist.xlsx", "", date)
		require.Error(t, err)
	})

	t.Run("unknown sheet", func(t *testing.T) {
		dir := t.TempDir()
		excelPath := filepath.Join(dir, "cases.xlsx")
		wb := excelize.NewFile()
		require.NoError(t, wb.SaveAs(excelPath))
		require.NoError(t, wb.Close())

		_, err := loader.LoadExcel(excelPath, "NoSuchSheet", date)
		require.Error(t, err)
	})
}

func TestLoadCSVErrors(t *testing.T) {
	loader := NewLoader(t.TempDir(), testLogger())
	date := time.Now()

	t.Run("missing file", func(t *testing.T) {
		_, err := loader.LoadCSV("does-not-exist.csv", date)
		require.Error(t, err)
	})

	t.Run("no usable rows", func(t *testing.T) {
		dir := t.TempDir()
		csvPath := filepath.Join(dir, "empty.csv")
		require.NoError(t, os.WriteFile(csvPath, []byte("case_id,status\n"), 0o644))

		_, err := loader.LoadCSV(csvPath, date)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no usable rows")
	})
}

func TestParseTime(t *testing.T) {
	for _, input := range []string{"2025-01-03", "2025-01-03 14:30:00", "03/01/2025", "2025-01-03T14:30:00Z"} {
		parsed, ok := parseTime(input)
		require.True(t, ok, "input %q", input)
		assert.Equal(t, 2025, parsed.Year())
	}

	_, ok := parseTime("")
	assert.False(t, ok)
	_, ok = parseTime("yesterday")
	assert.False(t, ok)
}

func TestToSnakeCase(t *testing.T) {
	assert.Equal(t, "case_id", toSnakeCase(" Case ID "))
	assert.Equal(t, "assigned_to", toSnakeCase("Assigned-To"))
	assert.Equal(t, "status", toSnakeCase("STATUS"))
}
