package components

import (
	"strings"

	"github.com/theirongolddev/cbakit/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// DataTable renders headers and rows as aligned columns for use inside a
// ContentCard. The first column is left-aligned, the rest right-aligned.
// A row whose only cell is "…" renders as an elision marker.
func DataTable(headers []string, rows [][]string) string {
	return renderTable(headers, rows, true)
}

// TextTable is DataTable with every column left-aligned.
func TextTable(headers []string, rows [][]string) string {
	return renderTable(headers, rows, false)
}

func renderTable(headers []string, rows [][]string, numeric bool) string {
	t := theme.Active

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}

	headerStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Bold(true)
	cellStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	gap := lipgloss.NewStyle().Background(t.Surface).Render("  ")

	align := func(s string, i int) string {
		pad := strings.Repeat(" ", max(0, widths[i]-lipgloss.Width(s)))
		if i == 0 || !numeric {
			return s + pad
		}
		return pad + s
	}

	var b strings.Builder
	for i, h := range headers {
		if i > 0 {
			b.WriteString(gap)
		}
		b.WriteString(headerStyle.Render(align(h, i)))
	}

	for _, row := range rows {
		b.WriteString("\n")
		if len(row) == 1 && row[0] == "…" {
			b.WriteString(dimStyle.Render(align("…", 0)))
			continue
		}
		for i := range headers {
			if i > 0 {
				b.WriteString(gap)
			}
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			b.WriteString(cellStyle.Render(align(cell, i)))
		}
	}
	return b.String()
}

// ElideRows keeps the first and last keep rows of a long table, replacing
// the middle with a single "…" row.
func ElideRows(rows [][]string, keep int) [][]string {
	if keep < 1 || len(rows) <= 2*keep+1 {
		return rows
	}
	out := make([][]string, 0, 2*keep+1)
	out = append(out, rows[:keep]...)
	out = append(out, []string{"…"})
	out = append(out, rows[len(rows)-keep:]...)
	return out
}
