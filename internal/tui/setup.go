package tui

import (
	"strings"

	"github.com/theirongolddev/cbakit/internal/config"
	"github.com/theirongolddev/cbakit/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// SetupValues holds the answers of the setup form.
type SetupValues struct {
	Theme          string
	CurrencySymbol string
	ExportDir      string
	EmbedCharts    bool
}

// SetupValuesFrom prefills the setup answers from cfg.
func SetupValuesFrom(cfg config.Config) SetupValues {
	return SetupValues{
		Theme:          cfg.Appearance.Theme,
		CurrencySymbol: cfg.General.CurrencySymbol,
		ExportDir:      cfg.Export.Dir,
		EmbedCharts:    cfg.Export.EmbedCharts,
	}
}

// Apply copies the answers into cfg. Blank answers keep the current value,
// except ExportDir where blank means the default location.
func (v SetupValues) Apply(cfg config.Config) config.Config {
	if theme.Valid(v.Theme) {
		cfg.Appearance.Theme = v.Theme
	}
	if sym := strings.TrimSpace(v.CurrencySymbol); sym != "" {
		cfg.General.CurrencySymbol = sym
	}
	cfg.Export.Dir = strings.TrimSpace(v.ExportDir)
	cfg.Export.EmbedCharts = v.EmbedCharts
	return cfg
}

// NewSetupForm builds the setup wizard writing into vals.
func NewSetupForm(vals *SetupValues) *huh.Form {
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to cbakit").
				Description("Payback, NPV and break-even calculators with spreadsheet export.\nA few preferences and you are ready."),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.Theme),
			huh.NewInput().
				Title("Currency symbol").
				Description("Shown in front of every amount.").
				Placeholder("£").
				CharLimit(4).
				Value(&vals.CurrencySymbol),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Export directory").
				Description("Leave blank for your Desktop, or the current directory.").
				Placeholder("~/Documents/cba").
				Value(&vals.ExportDir),
			huh.NewConfirm().
				Title("Embed charts in workbooks?").
				Description("When off, charts are saved as PNG files next to the workbook.").
				Affirmative("Yes").
				Negative("No").
				Value(&vals.EmbedCharts),
		),
	).WithTheme(huh.ThemeDracula())
}
