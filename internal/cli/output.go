package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/Daniel98M/Lightweight-Data-Warehouse/internal/infrastructure/database"
)

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	okColor     = color.New(color.FgGreen)
)

// banner prints a section header.
func banner(w io.Writer, title string) {
	line := strings.Repeat("=", 60)
	fmt.Fprintln(w, line)
	headerColor.Fprintln(w, title)
	fmt.Fprintln(w, line)
}

// okf prints a green checkmark line.
func okf(w io.Writer, format string, args ...any) {
	okColor.Fprintf(w, "✓ "+format+"\n", args...)
}

// printResult renders a query result as an aligned table, truncated to
// limit rows (0 = no limit).
func printResult(w io.Writer, res *database.Result, limit int) {
	if res.Empty() {
		fmt.Fprintln(w, "(no rows)")
		return
	}

	rows := res.Rows
	truncated := 0
	if limit > 0 && len(rows) > limit {
		truncated = len(rows) - limit
		rows = rows[:limit]
	}

	widths := make([]int, len(res.Columns))
	cells := make([][]string, len(rows))
	for i, col := range res.Columns {
		widths[i] = len(col)
	}
	for ri, row := range rows {
		cells[ri] = make([]string, len(res.Columns))
		for ci := range res.Columns {
			var s string
			if ci < len(row) {
				s = formatValue(row[ci])
			}
			cells[ri][ci] = s
			if len(s) > widths[ci] {
				widths[ci] = len(s)
			}
		}
	}

	for i, col := range res.Columns {
		if i > 0 {
			fmt.Fprint(w, "  ")
		}
		headerColor.Fprintf(w, "%-*s", widths[i], col)
	}
	fmt.Fprintln(w)

	for _, row := range cells {
		for i, cell := range row {
			if i > 0 {
				fmt.Fprint(w, "  ")
			}
			fmt.Fprintf(w, "%-*s", widths[i], cell)
		}
		fmt.Fprintln(w)
	}

	if truncated > 0 {
		fmt.Fprintf(w, "... %d more rows\n", truncated)
	}
}

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case float64:
		return fmt.Sprintf("%.2f", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
