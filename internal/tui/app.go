// Package tui provides the interactive Bubble Tea dashboard for cbakit.
package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/cbakit/internal/config"
	"github.com/theirongolddev/cbakit/internal/export"
	"github.com/theirongolddev/cbakit/internal/tui/components"
	"github.com/theirongolddev/cbakit/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// Tab indices, matching components.Tabs.
const (
	tabReference = iota
	tabPayback
	tabNPV
	tabBreakEven
)

// Options configures a new App.
type Options struct {
	Config   config.Config
	Exporter *export.Exporter
	Logger   *zap.Logger
	FirstRun bool // show the setup form before the dashboard
}

// App is the root Bubble Tea model.
type App struct {
	cfg      config.Config
	exporter *export.Exporter
	logger   *zap.Logger

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Per-tab state
	ref       referenceState
	payback   paybackState
	npv       npvState
	breakEven breakEvenState

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals *SetupValues
	needSetup bool
}

const (
	minTerminalWidth = 80
	maxContentWidth  = 160

	minContentHeight = 5 // minimum content area height
)

// NewApp creates a new TUI app model. Every calculator is computed once
// from the configured defaults so the tabs open with results.
func NewApp(opts Options) App {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	exp := opts.Exporter
	if exp == nil {
		exp = &export.Exporter{Dir: config.ExportDir(opts.Config)}
	}

	a := App{
		cfg:       opts.Config,
		exporter:  exp,
		logger:    logger,
		activeTab: tabPayback,
		payback:   newPaybackState(opts.Config),
		npv:       newNPVState(opts.Config),
		breakEven: newBreakEvenState(opts.Config),
		needSetup: opts.FirstRun,
	}
	if a.needSetup {
		vals := SetupValuesFrom(opts.Config)
		a.setupVals = &vals
		a.setupForm = NewSetupForm(a.setupVals)
	}
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnableMouseCellMotion}
	if a.needSetup && a.setupForm != nil {
		cmds = append(cmds, a.setupForm.Init())
	}
	return tea.Batch(cmds...)
}

// form returns the active calculator form, or nil on the Reference tab.
func (a *App) form() *formState {
	switch a.activeTab {
	case tabPayback:
		return &a.payback.form
	case tabNPV:
		return &a.npv.form
	case tabBreakEven:
		return &a.breakEven.form
	}
	return nil
}

// recompute reruns the active calculator and clears its last export status.
func (a *App) recompute() {
	switch a.activeTab {
	case tabPayback:
		a.payback.compute()
		a.payback.status = actionStatus{}
		a.logResult("payback", a.payback.err)
	case tabNPV:
		a.npv.compute()
		a.npv.status = actionStatus{}
		a.logResult("npv", a.npv.err)
	case tabBreakEven:
		a.breakEven.compute()
		a.breakEven.status = actionStatus{}
		a.logResult("break-even", a.breakEven.err)
	}
}

func (a *App) logResult(calc string, err error) {
	if err != nil {
		a.logger.Debug("calculation rejected", zap.String("calc", calc), zap.Error(err))
		return
	}
	a.logger.Debug("calculation updated", zap.String("calc", calc))
}

// status returns the action status of the active tab.
func (a *App) status() *actionStatus {
	return a.statusFor(a.activeTab)
}

func (a *App) statusFor(tab int) *actionStatus {
	switch tab {
	case tabPayback:
		return &a.payback.status
	case tabNPV:
		return &a.npv.status
	case tabBreakEven:
		return &a.breakEven.status
	}
	return &a.ref.status
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || (a.needSetup && a.setupForm != nil) {
			return a, nil
		}

		switch msg.Button {
		case tea.MouseButtonWheelUp:
			return a.moveCursor(-1), nil
		case tea.MouseButtonWheelDown:
			return a.moveCursor(1), nil
		case tea.MouseButtonLeft:
			if msg.Action == tea.MouseActionPress && msg.Y == 0 {
				if tab := a.tabAtX(msg.X); tab >= 0 && !a.editing() {
					a.activeTab = tab
				}
			}
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		// Global: quit
		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// First-run setup wizard intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		// An open text input owns every key until Enter or Esc.
		if f := a.form(); f != nil && f.editing {
			committed, cmd := f.update(msg)
			if committed {
				a.recompute()
			}
			return a, cmd
		}

		// Help toggle
		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}

		// Dismiss help
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch key {
		case "q":
			return a, tea.Quit
		case "left", "h":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
			return a, nil
		case "right", "l", "tab":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		case "j", "down":
			return a.moveCursor(1), nil
		case "k", "up":
			return a.moveCursor(-1), nil
		case "g":
			a.ref.scroll = 0
			return a, nil
		case "enter":
			if f := a.form(); f != nil {
				return a, f.startEdit()
			}
			return a, nil
		case "e":
			return a.startExport()
		case "i":
			return a.startChart()
		case "y":
			if a.activeTab == tabReference {
				a.ref.status = actionStatus{busy: true}
				return a, copyReferenceCmd()
			}
			return a, nil
		}

		if idx := components.TabIdxByKey(key); idx >= 0 {
			a.activeTab = idx
		}
		return a, nil

	case ExportDoneMsg:
		s := a.statusFor(msg.Tab)
		if msg.Err != nil {
			a.logger.Warn("export failed", zap.Int("tab", msg.Tab), zap.Error(msg.Err))
			*s = actionStatus{err: fmt.Errorf("export failed: %w", msg.Err)}
			return a, nil
		}
		*s = actionStatus{message: reportMessage(msg.Report)}
		return a, nil

	case ChartSavedMsg:
		s := a.statusFor(msg.Tab)
		if msg.Err != nil {
			a.logger.Warn("chart save failed", zap.Int("tab", msg.Tab), zap.Error(msg.Err))
			*s = actionStatus{err: fmt.Errorf("chart failed: %w", msg.Err)}
			return a, nil
		}
		*s = actionStatus{message: "Saved chart " + msg.Path}
		return a, nil

	case ClipboardMsg:
		if msg.Err != nil {
			a.ref.status = actionStatus{err: fmt.Errorf("copy failed: %w", msg.Err)}
			return a, nil
		}
		a.ref.status = actionStatus{message: "Reference copied to clipboard"}
		return a, nil
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	// Cursor blinks for an open field editor.
	if f := a.form(); f != nil && f.editing {
		var cmd tea.Cmd
		f.input, cmd = f.input.Update(msg)
		return a, cmd
	}

	return a, nil
}

func (a App) editing() bool {
	f := a.form()
	return f != nil && f.editing
}

func (a App) moveCursor(delta int) App {
	if f := a.form(); f != nil {
		if !f.editing {
			f.moveCursor(delta)
		}
		return a
	}
	a.ref.scroll = max(0, a.ref.scroll+delta)
	return a
}

func (a App) startExport() (tea.Model, tea.Cmd) {
	s := a.status()
	var cmd tea.Cmd
	switch a.activeTab {
	case tabReference:
		cmd = exportReferenceCmd(a.exporter)
	case tabPayback:
		if a.payback.result != nil {
			cmd = exportPaybackCmd(a.exporter, *a.payback.result)
		}
	case tabNPV:
		if a.npv.result != nil {
			cmd = exportNPVCmd(a.exporter, *a.npv.result)
		}
	case tabBreakEven:
		if a.breakEven.result != nil {
			cmd = exportBreakEvenCmd(a.exporter, *a.breakEven.result)
		}
	}
	if cmd == nil {
		*s = actionStatus{err: errNoResult}
		return a, nil
	}
	*s = actionStatus{busy: true}
	return a, cmd
}

func (a App) startChart() (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeTab {
	case tabReference:
		return a, nil
	case tabPayback:
		if a.payback.result != nil {
			cmd = paybackChartCmd(a.exporter, *a.payback.result)
		}
	case tabNPV:
		if a.npv.result != nil {
			cmd = npvChartCmd(a.exporter, *a.npv.result)
		}
	case tabBreakEven:
		if a.breakEven.result != nil {
			cmd = breakEvenChartCmd(a.exporter, *a.breakEven.result)
		}
	}
	s := a.status()
	if cmd == nil {
		*s = actionStatus{err: errNoResult}
		return a, nil
	}
	*s = actionStatus{busy: true}
	return a, cmd
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		a.saveSetupConfig()
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

// saveSetupConfig applies the setup answers to the running app and
// persists them. A failed save only affects later sessions.
func (a *App) saveSetupConfig() {
	a.cfg = a.setupVals.Apply(a.cfg)
	theme.SetActive(a.cfg.Appearance.Theme)
	a.exporter.CurrencySymbol = a.cfg.General.CurrencySymbol
	a.exporter.EmbedCharts = a.cfg.Export.EmbedCharts
	a.exporter.Dir = config.ExportDir(a.cfg)

	if err := config.Save(a.cfg); err != nil {
		a.logger.Warn("saving setup config", zap.Error(err))
		a.ref.status = actionStatus{err: fmt.Errorf("could not save config: %w", err)}
	}
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	// First-run setup wizard
	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  cbakit needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active
	h := a.height
	w := a.width

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	sections := []struct {
		title    string
		bindings []struct{ key, desc string }
	}{
		{"Navigation", []struct{ key, desc string }{
			{"1 2 3 4", "Jump to tab"},
			{"← →", "Previous / Next tab"},
			{"j k", "Select field / Scroll"},
		}},
		{"Calculators", []struct{ key, desc string }{
			{"Enter", "Edit field / Apply and recalculate"},
			{"Esc", "Cancel edit"},
			{"e", "Export workbook"},
			{"i", "Save chart image"},
		}},
		{"Reference", []struct{ key, desc string }{
			{"e", "Export BCR vs Net Profit workbook"},
			{"y", "Copy guide to clipboard"},
		}},
		{"General", []struct{ key, desc string }{
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}
	for i, sec := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(sectionStyle.Render(sec.title))
		b.WriteString("\n")
		for _, bind := range sec.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Exports go to " + a.exporter.Dir))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// 1. Header: tab bar + info row
	infoStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	accentStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	infoRow := lipgloss.NewStyle().Background(t.Surface).Width(w).Render(
		infoStyle.Render(" ◈ ") + accentStyle.Render("cbakit") +
			infoStyle.Render(" │ currency ") + accentStyle.Render(a.cfg.General.CurrencySymbol) +
			infoStyle.Render(" │ exports ") + accentStyle.Render(a.exporter.Dir))

	header := components.RenderTabBar(a.activeTab, w) + "\n" + infoRow

	// 2. Status bar
	hints := "[1-4] tabs  [j/k] select  [Enter] edit  [e] export  [?] help  [q] quit"
	if a.editing() {
		hints = "[Enter] apply  [Esc] cancel"
	}
	msg, isErr := a.status().text()
	statusBar := components.RenderStatusBar(w, hints, msg, isErr)

	// 3. Content zone height
	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	// 4. Tab content
	var content string
	switch a.activeTab {
	case tabReference:
		content = a.renderReferenceTab(cw, contentH)
	case tabPayback:
		content = a.renderPaybackTab(cw)
	case tabNPV:
		content = a.renderNPVTab(cw)
	case tabBreakEven:
		content = a.renderBreakEvenTab(cw)
	}

	// 5. Truncate + pad to exactly contentH lines
	content = padHeight(truncateHeight(content, contentH), contentH)

	// 6. Fill each line to full width with background
	content = fillLinesWithBackground(content, cw, t.Background)

	// 7. Center the content when the terminal is wider than cw
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)

		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		// Separator is one column between tabs.
		if i < len(components.Tabs)-1 {
			pos++
		}
	}
	return -1
}
