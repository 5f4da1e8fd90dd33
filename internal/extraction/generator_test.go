package extraction

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	date := time.Date(2025, 2, 11, 0, 0, 0, 0, time.UTC)
	records := NewGenerator(42).Generate(200, date)
	require.Len(t, records, 200)

	seen := make(map[int64]bool)
	for _, rec := range records {
		assert.False(t, seen[rec.CaseID], "duplicate case id %d", rec.CaseID)
		seen[rec.CaseID] = true

		assert.Contains(t, statuses, rec.Status)
		assert.Contains(t, priorities, rec.Priority)
		assert.NotEmpty(t, rec.Country)
		assert.NotEmpty(t, rec.AssignedTo)
		assert.True(t, rec.OpenedAt.Before(date))
		assert.Equal(t, date, rec.ExtractedAt)

		if rec.Status == "Resolved" || rec.Status == "Closed" {
			require.NotNil(t, rec.ClosedAt)
			assert.True(t, rec.ClosedAt.After(rec.OpenedAt))
		} else {
			assert.Nil(t, rec.ClosedAt)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	date := time.Date(2025, 2, 11, 0, 0, 0, 0, time.UTC)
	a := NewGenerator(7).Generate(10, date)
	b := NewGenerator(7).Generate(10, date)
	assert.Equal(t, a, b)
}

func TestWriteCSVRoundTrip(t *testing.T) {
	date := time.Date(2025, 2, 11, 0, 0, 0, 0, time.UTC)
	gen := NewGenerator(42)
	records := gen.Generate(50, date)

	csvPath := filepath.Join(t.TempDir(), "sample.csv")
	require.NoError(t, gen.WriteCSV(csvPath, records))

	loader := NewLoader(filepath.Join(t.TempDir(), "raw"), testLogger())
	outputPath, err := loader.LoadCSV(csvPath, date)
	require.NoError(t, err)
	assert.FileExists(t, outputPath)
}
