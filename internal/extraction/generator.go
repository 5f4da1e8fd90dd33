package extraction

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/Daniel98M/Lightweight-Data-Warehouse/internal/models"
)

var (
	statuses   = []string{"Open", "In Progress", "Pending", "Resolved", "Closed"}
	priorities = []string{"Low", "Medium", "High", "Critical"}
)

// Generator produces sample case records for demos and tests.
type Generator struct {
	faker *gofakeit.Faker
}

func NewGenerator(seed int64) *Generator {
	return &Generator{faker: gofakeit.New(seed)}
}

// Generate returns n sample records dated relative to the extraction date.
func (g *Generator) Generate(n int, extractionDate time.Time) []models.CaseRecord {
	records := make([]models.CaseRecord, 0, n)
	for i := 0; i < n; i++ {
		opened := extractionDate.AddDate(0, 0, -g.faker.Number(1, 90))
		rec := models.CaseRecord{
			CaseID:      int64(100000 + i),
			Status:      g.faker.RandomString(statuses),
			Country:     g.faker.Country(),
			Priority:    g.faker.RandomString(priorities),
			AssignedTo:  g.faker.Name(),
			OpenedAt:    opened,
			ExtractedAt: extractionDate,
		}
		if rec.Status == "Resolved" || rec.Status == "Closed" {
			closed := opened.AddDate(0, 0, g.faker.Number(1, 30))
			rec.ClosedAt = &closed
		}
		records = append(records, rec)
	}
	return records
}

// WriteCSV writes records as a CSV file in the shape the loader ingests.
func (g *Generator) WriteCSV(path string, records []models.CaseRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"case_id", "status", "country", "priority", "assigned_to", "opened_at", "closed_at"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, rec := range records {
		closed := ""
		if rec.ClosedAt != nil {
			closed = rec.ClosedAt.Format("2006-01-02")
		}
		row := []string{
			strconv.FormatInt(rec.CaseID, 10),
			rec.Status,
			rec.Country,
			rec.Priority,
			rec.AssignedTo,
			rec.OpenedAt.Format("2006-01-02"),
			closed,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}
