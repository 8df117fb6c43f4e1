package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/theirongolddev/cbakit/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Sparkline renders a unicode sparkline scaled between the lowest and the
// highest value, so negative series still show their shape.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	style := lipgloss.NewStyle().Foreground(color).Background(t.Surface)

	var buf strings.Builder
	buf.Grow(len(values) * 4) // UTF-8 block chars are up to 3 bytes
	for _, v := range values {
		idx := int((v - lo) / span * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		buf.WriteRune(blocks[idx]) //nolint:gosec // bounds checked above
	}

	return style.Render(buf.String())
}

// BarChart renders a vertical bar chart around a zero axis. Positive values
// grow upward in posColor; negative values hang below the axis in negColor.
// Rows are split between the two halves in proportion to their ranges.
func BarChart(values []float64, labels []string, posColor, negColor lipgloss.Color, width, height int) string {
	if len(values) == 0 {
		return ""
	}
	if width < 15 || height < 3 {
		return Sparkline(values, posColor)
	}

	t := theme.Active

	maxPos, maxNeg := 0.0, 0.0
	for _, v := range values {
		maxPos = math.Max(maxPos, v)
		maxNeg = math.Max(maxNeg, -v)
	}
	if maxPos == 0 && maxNeg == 0 {
		maxPos = 1
	}

	tickStep := chartTickStep(math.Max(maxPos, maxNeg))
	top := math.Ceil(maxPos/tickStep) * tickStep
	bottom := math.Ceil(maxNeg/tickStep) * tickStep

	rowsUp, rowsDown := height, 0
	if bottom > 0 {
		rowsUp = int(math.Round(float64(height) * top / (top + bottom)))
		if top > 0 && rowsUp < 1 {
			rowsUp = 1
		}
		if rowsUp > height-1 {
			rowsUp = height - 1
		}
		rowsDown = height - rowsUp
	}

	topLabel := formatChartLabel(top)
	bottomLabel := "-" + formatChartLabel(bottom)
	yLabelW := max(len(topLabel), len(bottomLabel)) + 1
	if yLabelW < 4 {
		yLabelW = 4
	}

	// Chart area width
	chartW := width - yLabelW - 1
	if chartW < 5 {
		chartW = 5
	}

	n := len(values)

	// Bar sizing
	gap := 1
	if n <= 1 {
		gap = 0
	}
	barW := 2
	if n > 1 {
		barW = (chartW - (n - 1)) / n
	} else if n == 1 {
		barW = chartW
	}
	if barW < 2 && n > 1 {
		maxN := (chartW + 1) / 3
		if maxN < 2 {
			maxN = 2
		}
		sampled := make([]float64, maxN)
		var sampledLabels []string
		if len(labels) == n {
			sampledLabels = make([]string, maxN)
		}
		for i := range sampled {
			srcIdx := i * (n - 1) / (maxN - 1)
			sampled[i] = values[srcIdx]
			if sampledLabels != nil {
				sampledLabels[i] = labels[srcIdx]
			}
		}
		values = sampled
		labels = sampledLabels
		n = maxN
		barW = 2
	}
	if barW > 6 {
		barW = 6
	}
	axisLen := n*barW + max(0, n-1)*gap

	upBlocks := []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	posStyle := lipgloss.NewStyle().Foreground(posColor).Background(t.Surface)
	negStyle := lipgloss.NewStyle().Foreground(negColor).Background(t.Surface)
	blank := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	writeCells := func(cell func(v float64) (string, lipgloss.Style)) {
		for i, v := range values {
			if i > 0 && gap > 0 {
				b.WriteString(blank.Render(strings.Repeat(" ", gap)))
			}
			ch, st := cell(v)
			b.WriteString(st.Render(strings.Repeat(ch, barW)))
		}
		b.WriteString("\n")
	}

	// Positive half, top to bottom
	for row := rowsUp; row >= 1; row-- {
		rowTop := top * float64(row) / float64(rowsUp)
		rowBottom := top * float64(row-1) / float64(rowsUp)

		label := ""
		if row == rowsUp {
			label = topLabel
		}
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, label)))
		b.WriteString(axisStyle.Render("│"))

		writeCells(func(v float64) (string, lipgloss.Style) {
			switch {
			case v >= rowTop:
				return "█", posStyle
			case v > rowBottom:
				idx := int((v - rowBottom) / (rowTop - rowBottom) * 8)
				idx = min(max(idx, 1), 8)
				return string(upBlocks[idx]), posStyle
			default:
				return " ", blank
			}
		})
	}

	// Zero axis
	corner := "└"
	if rowsDown > 0 {
		corner = "┼"
	}
	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, "0")))
	b.WriteString(axisStyle.Render(corner))
	b.WriteString(axisStyle.Render(strings.Repeat("─", axisLen)))

	// Negative half, hanging down from the axis
	if rowsDown > 0 {
		b.WriteString("\n")
	}
	for row := 1; row <= rowsDown; row++ {
		depthTop := bottom * float64(row) / float64(rowsDown)
		depthPrev := bottom * float64(row-1) / float64(rowsDown)

		label := ""
		if row == rowsDown {
			label = bottomLabel
		}
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, label)))
		b.WriteString(axisStyle.Render("│"))

		cells := func(v float64) (string, lipgloss.Style) {
			d := -v
			switch {
			case d >= depthTop:
				return "█", negStyle
			case d > depthPrev:
				if (d-depthPrev)/(depthTop-depthPrev) >= 0.5 {
					return "▀", negStyle
				}
				return "▔", negStyle
			default:
				return " ", blank
			}
		}
		if row < rowsDown {
			writeCells(cells)
			continue
		}
		// Last row: no trailing newline.
		for i, v := range values {
			if i > 0 && gap > 0 {
				b.WriteString(blank.Render(strings.Repeat(" ", gap)))
			}
			ch, st := cells(v)
			b.WriteString(st.Render(strings.Repeat(ch, barW)))
		}
	}

	// X-axis labels
	if len(labels) == n && n > 0 {
		buf := make([]byte, axisLen)
		for i := range buf {
			buf[i] = ' '
		}

		minSpacing := 6
		labelStep := max(1, (n*minSpacing)/(axisLen+1))

		lastEnd := -1
		for i := 0; i < n; i += labelStep {
			pos := i * (barW + gap)
			lbl := labels[i]
			end := pos + len(lbl)
			if pos <= lastEnd {
				continue
			}
			if end > axisLen {
				end = axisLen
				if end-pos < 2 {
					continue
				}
				lbl = lbl[:end-pos]
			}
			copy(buf[pos:end], lbl)
			lastEnd = end + 1
		}

		b.WriteString("\n")
		labelStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
		b.WriteString(blank.Render(strings.Repeat(" ", yLabelW+1)))
		b.WriteString(labelStyle.Render(strings.TrimRight(string(buf), " ")))
	}

	return b.String()
}

// chartTickStep computes a nice tick interval targeting ~5 ticks.
func chartTickStep(maxVal float64) float64 {
	if maxVal <= 0 {
		return 1
	}
	rough := maxVal / 5
	exp := math.Floor(math.Log10(rough))
	base := math.Pow(10, exp)
	frac := rough / base

	switch {
	case frac < 1.5:
		return base
	case frac < 3.5:
		return 2 * base
	default:
		return 5 * base
	}
}

func formatChartLabel(v float64) string {
	if v < 0 {
		return "-" + formatChartLabel(-v)
	}
	switch {
	case v >= 1e9:
		if v == math.Trunc(v/1e9)*1e9 {
			return fmt.Sprintf("%.0fB", v/1e9)
		}
		return fmt.Sprintf("%.1fB", v/1e9)
	case v >= 1e6:
		if v == math.Trunc(v/1e6)*1e6 {
			return fmt.Sprintf("%.0fM", v/1e6)
		}
		return fmt.Sprintf("%.1fM", v/1e6)
	case v >= 1e3:
		if v == math.Trunc(v/1e3)*1e3 {
			return fmt.Sprintf("%.0fk", v/1e3)
		}
		return fmt.Sprintf("%.1fk", v/1e3)
	case v >= 1 || v == 0:
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}
