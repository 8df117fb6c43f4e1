package tui

import (
	"errors"
	"path/filepath"

	"github.com/theirongolddev/cbakit/internal/export"
	"github.com/theirongolddev/cbakit/internal/projection"
	"github.com/theirongolddev/cbakit/internal/reference"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

var errNoResult = errors.New("no result to export, fix the inputs first")

// ExportDoneMsg is sent when a workbook export finishes.
type ExportDoneMsg struct {
	Tab    int
	Report export.Report
	Err    error
}

// ChartSavedMsg is sent when a standalone chart image has been written.
type ChartSavedMsg struct {
	Tab  int
	Path string
	Err  error
}

// ClipboardMsg is sent when the reference text has been copied.
type ClipboardMsg struct {
	Err error
}

// actionStatus is the outcome of the last export or copy on a tab.
type actionStatus struct {
	busy    bool
	message string
	err     error
}

func (s actionStatus) text() (string, bool) {
	switch {
	case s.busy:
		return "Working…", false
	case s.err != nil:
		return s.err.Error(), true
	default:
		return s.message, false
	}
}

func reportMessage(rep export.Report) string {
	msg := "Saved " + filepath.Base(rep.Workbook)
	if rep.Chart != "" {
		msg += " + " + filepath.Base(rep.Chart)
	}
	for _, w := range rep.Warnings {
		msg += " (" + w + ")"
	}
	return msg
}

func exportPaybackCmd(e *export.Exporter, res projection.PaybackResult) tea.Cmd {
	return func() tea.Msg {
		rep, err := e.ExportPayback(res)
		return ExportDoneMsg{Tab: tabPayback, Report: rep, Err: err}
	}
}

func exportNPVCmd(e *export.Exporter, res projection.NPVResult) tea.Cmd {
	return func() tea.Msg {
		rep, err := e.ExportNPV(res)
		return ExportDoneMsg{Tab: tabNPV, Report: rep, Err: err}
	}
}

func exportBreakEvenCmd(e *export.Exporter, res projection.BreakEvenResult) tea.Cmd {
	return func() tea.Msg {
		rep, err := e.ExportBreakEven(res)
		return ExportDoneMsg{Tab: tabBreakEven, Report: rep, Err: err}
	}
}

func exportReferenceCmd(e *export.Exporter) tea.Cmd {
	return func() tea.Msg {
		rep, err := e.ExportReference()
		return ExportDoneMsg{Tab: tabReference, Report: rep, Err: err}
	}
}

func paybackChartCmd(e *export.Exporter, res projection.PaybackResult) tea.Cmd {
	return func() tea.Msg {
		path, err := e.SavePaybackChart(res, "")
		return ChartSavedMsg{Tab: tabPayback, Path: path, Err: err}
	}
}

func npvChartCmd(e *export.Exporter, res projection.NPVResult) tea.Cmd {
	return func() tea.Msg {
		path, err := e.SaveNPVChart(res, "")
		return ChartSavedMsg{Tab: tabNPV, Path: path, Err: err}
	}
}

func breakEvenChartCmd(e *export.Exporter, res projection.BreakEvenResult) tea.Cmd {
	return func() tea.Msg {
		path, err := e.SaveBreakEvenChart(res, "")
		return ChartSavedMsg{Tab: tabBreakEven, Path: path, Err: err}
	}
}

// copyReferenceCmd copies the reference guide as plain text.
func copyReferenceCmd() tea.Cmd {
	return func() tea.Msg {
		return ClipboardMsg{Err: clipboard.WriteAll(reference.PlainText())}
	}
}
