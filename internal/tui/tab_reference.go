package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/cbakit/internal/reference"
	"github.com/theirongolddev/cbakit/internal/tui/components"
	"github.com/theirongolddev/cbakit/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// referenceState tracks scrolling and the last export/copy on the
// Reference tab.
type referenceState struct {
	scroll int
	status actionStatus
}

func (a App) renderReferenceTab(cw int, contentH int) string {
	t := theme.Active

	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	numStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	textStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	pointStyle := lipgloss.NewStyle().Foreground(t.Cyan).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	inner := components.CardInnerWidth(cw)
	wrap := lipgloss.NewStyle().Background(t.Surface).Width(inner - 5)

	var steps strings.Builder
	for i, s := range reference.Steps() {
		if i > 0 {
			steps.WriteString("\n")
		}
		steps.WriteString(numStyle.Render(fmt.Sprintf("%2d. ", i+1)))
		steps.WriteString(titleStyle.Render(s.Title))
		if s.Summary != "" {
			steps.WriteString("\n     ")
			steps.WriteString(wrap.Render(textStyle.Render(s.Summary)))
		}
		for _, p := range s.Points {
			steps.WriteString("\n     ")
			line := textStyle.Render(p.Text)
			if p.Title != "" {
				line = pointStyle.Render(p.Title+": ") + line
			}
			steps.WriteString(wrap.Render(dimStyle.Render("• ") + line))
		}
	}

	cmp := reference.Comparison()
	table := components.TextTable(cmp.Headers, cmp.Rows)

	footer := dimStyle.Render("[j/k] scroll  [e] export workbook  [y] copy text") + statusLine(a.ref.status)

	body := components.ContentCard("Cost-Benefit Analysis Steps", steps.String(), cw) + "\n" +
		components.ContentCard(cmp.Title, table+"\n\n"+footer, cw)

	lines := strings.Split(body, "\n")
	maxScroll := max(0, len(lines)-contentH)
	scroll := min(a.ref.scroll, maxScroll)
	return strings.Join(lines[scroll:], "\n")
}
