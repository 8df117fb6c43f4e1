package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/cbakit/internal/tui/components"
	"github.com/theirongolddev/cbakit/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// field is one editable calculator input. Values stay as text until the
// calculator parses them.
type field struct {
	label       string
	value       string
	placeholder string
}

// formState tracks cursor and edit state of a calculator's inputs.
type formState struct {
	fields  []field
	cursor  int
	editing bool
	input   textinput.Model
}

func newForm(fields ...field) formState {
	return formState{fields: fields}
}

func (f formState) value(i int) string {
	return f.fields[i].value
}

func (f *formState) moveCursor(delta int) {
	f.cursor += delta
	if f.cursor < 0 {
		f.cursor = 0
	}
	if f.cursor >= len(f.fields) {
		f.cursor = len(f.fields) - 1
	}
}

func newFieldInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 40
	ti.Prompt = ""
	return ti
}

// startEdit opens a text input prefilled with the selected field.
func (f *formState) startEdit() tea.Cmd {
	cur := f.fields[f.cursor]
	ti := newFieldInput()
	ti.Placeholder = cur.placeholder
	ti.SetValue(cur.value)
	ti.CursorEnd()
	ti.Focus()
	f.input = ti
	f.editing = true
	return ti.Cursor.BlinkCmd()
}

// update routes a key to the open input. committed reports whether the
// edit was accepted with Enter.
func (f *formState) update(msg tea.KeyMsg) (committed bool, cmd tea.Cmd) {
	switch msg.String() {
	case "enter":
		f.fields[f.cursor].value = strings.TrimSpace(f.input.Value())
		f.editing = false
		return true, nil
	case "esc":
		f.editing = false
		return false, nil
	}
	f.input, cmd = f.input.Update(msg)
	return false, cmd
}

// render draws the field list with the selected row highlighted.
func (f formState) render(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	labelW := 0
	for _, fl := range f.fields {
		labelW = max(labelW, lipgloss.Width(fl.label)+1)
	}

	var b strings.Builder
	for i, fl := range f.fields {
		if i > 0 {
			b.WriteString("\n")
		}

		if f.editing && i == f.cursor {
			b.WriteString(markerStyle.Render("▸ "))
			b.WriteString(accentStyle.Render(fmt.Sprintf("%-*s ", labelW, fl.label)))
			b.WriteString(f.input.View())
			continue
		}

		value := fl.value
		if value == "" {
			value = "(empty)"
		}

		if i == f.cursor {
			marker := markerStyle.Render("▸ ")
			label := selectedLabelStyle.Render(fmt.Sprintf("%-*s ", labelW, fl.label+":"))
			val := selectedStyle.Render(value)
			b.WriteString(marker + label + val)
			padLen := components.CardInnerWidth(cw) - lipgloss.Width(marker) - lipgloss.Width(label) - lipgloss.Width(val)
			if padLen > 0 {
				b.WriteString(lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", padLen)))
			}
			continue
		}

		b.WriteString(spaceStyle.Render("  "))
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-*s ", labelW, fl.label+":")))
		b.WriteString(valueStyle.Render(value))
	}

	b.WriteString("\n\n")
	hint := "[Enter] edit  [e] export  [i] image"
	if f.editing {
		hint = "[Enter] apply  [Esc] cancel"
	}
	b.WriteString(lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface).Render(hint))
	return b.String()
}
