package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/theirongolddev/cbakit/internal/tui/theme"
)

func TestBarChartSignedValues(t *testing.T) {
	th := theme.FlexokiDark
	values := []float64{-7500, -5000, -2500, 0, 2500}
	labels := []string{"1", "2", "3", "4", "5"}

	out := BarChart(values, labels, th.Green, th.Red, 40, 8)
	lines := strings.Split(out, "\n")

	// 8 bar rows, the zero axis and the label row.
	if len(lines) != 10 {
		t.Fatalf("got %d lines, want 10:\n%s", len(lines), out)
	}

	axis := -1
	for i, l := range lines {
		if strings.Contains(l, "┼") {
			axis = i
		}
	}
	if axis <= 0 || axis >= len(lines)-2 {
		t.Fatalf("zero axis at line %d, want a middle row:\n%s", axis, out)
	}
	if !strings.Contains(lines[len(lines)-2], "-") {
		t.Errorf("bottom row should carry the negative label: %q", lines[len(lines)-2])
	}
}

func TestBarChartAllPositive(t *testing.T) {
	th := theme.FlexokiDark
	out := BarChart([]float64{1, 2, 3}, nil, th.Green, th.Red, 30, 4)
	if strings.Contains(out, "┼") {
		t.Error("all-positive chart should not draw a negative half")
	}
	if !strings.Contains(out, "└") {
		t.Error("missing x axis")
	}
}

func TestBarChartSamplesWideSeries(t *testing.T) {
	th := theme.FlexokiDark
	values := make([]float64, 50)
	for i := range values {
		values[i] = float64(i - 25)
	}
	out := BarChart(values, nil, th.Green, th.Red, 40, 6)
	for i, l := range strings.Split(out, "\n") {
		if w := lipgloss.Width(l); w > 40 {
			t.Errorf("line %d width %d exceeds 40", i, w)
		}
	}
}

func TestBarChartNarrowFallsBackToSparkline(t *testing.T) {
	th := theme.FlexokiDark
	out := BarChart([]float64{1, 2}, nil, th.Green, th.Red, 10, 2)
	if strings.Contains(out, "\n") {
		t.Errorf("narrow chart should be a single sparkline, got %q", out)
	}
}

func TestFormatChartLabel(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{0, "0"},
		{5, "5"},
		{2500, "2.5k"},
		{10000, "10k"},
		{-7500, "-7.5k"},
		{3e6, "3M"},
		{0.5, "0.50"},
	}
	for _, tt := range tests {
		if got := formatChartLabel(tt.v); got != tt.want {
			t.Errorf("formatChartLabel(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestTabIdxByKey(t *testing.T) {
	for key, want := range map[string]int{"1": 0, "4": 3, "5": -1, "0": -1, "x": -1} {
		if got := TabIdxByKey(key); got != want {
			t.Errorf("TabIdxByKey(%q) = %d, want %d", key, got, want)
		}
	}
}

func TestElideRows(t *testing.T) {
	rows := make([][]string, 20)
	for i := range rows {
		rows[i] = []string{"r"}
	}
	got := ElideRows(rows, 3)
	if len(got) != 7 || got[3][0] != "…" {
		t.Errorf("ElideRows = %v", got)
	}
	if len(ElideRows(rows[:7], 3)) != 7 {
		t.Error("short tables should not be elided")
	}
}
