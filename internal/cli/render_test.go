package cli

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRenderTableAlignsMultiByteCells(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Year", "Cash Flow"},
		Rows: [][]string{
			{"1", "£2,500.00"},
			{"---"},
			{"10", "-£12,500.00"},
		},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 7 {
		t.Fatalf("got %d lines, want 7:\n%s", len(lines), out)
	}
	want := lipgloss.Width(lines[0])
	for i, line := range lines {
		if w := lipgloss.Width(line); w != want {
			t.Errorf("line %d width = %d, want %d: %q", i, w, want, line)
		}
	}
}

func TestRenderTableEmpty(t *testing.T) {
	if out := RenderTable(Table{}); out != "" {
		t.Errorf("empty table rendered %q", out)
	}
}

func TestRenderSignedBar(t *testing.T) {
	for _, v := range []float64{-10, -3, 0, 4, 10, 25} {
		bar := RenderSignedBar(v, 10, 8)
		if w := lipgloss.Width(bar); w != 17 {
			t.Errorf("RenderSignedBar(%v) width = %d, want 17", v, w)
		}
	}
}

func TestRenderSparkline(t *testing.T) {
	got := RenderSparkline([]float64{-7500, -5000, -2500, 0})
	if []rune(got)[0] != '▁' || []rune(got)[3] != '█' {
		t.Errorf("RenderSparkline = %q, want lowest first and highest last", got)
	}
	if RenderSparkline(nil) != "" {
		t.Error("RenderSparkline(nil) should be empty")
	}
}

func TestRenderHorizontalBar(t *testing.T) {
	full := RenderHorizontalBar("Revenue", "£8,333.33", 8333.33, 8333.33, 20)
	half := RenderHorizontalBar("Fixed costs", "£5,000.00", 4166.67, 8333.33, 20)
	if lipgloss.Width(full) != lipgloss.Width(half) {
		t.Errorf("bars with equal-width values differ: %d vs %d", lipgloss.Width(full), lipgloss.Width(half))
	}
	if n := strings.Count(full, "█"); n != 20 {
		t.Errorf("full bar has %d blocks, want 20", n)
	}
	if n := strings.Count(half, "█"); n != 10 {
		t.Errorf("half bar has %d blocks, want 10", n)
	}
	if n := strings.Count(RenderHorizontalBar("Zero", "0", 5, 0, 20), "█"); n != 0 {
		t.Errorf("zero scale drew %d blocks", n)
	}
}
