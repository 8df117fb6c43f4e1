package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useTempConfigHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	useTempConfigHome(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.False(t, Exists())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	home := useTempConfigHome(t)

	cfg := DefaultConfig()
	cfg.General.CurrencySymbol = "$"
	cfg.General.MaxPaybackYears = 30
	cfg.Export.Dir = "/tmp/reports"
	cfg.Export.EmbedCharts = false
	cfg.Appearance.Theme = "tokyo-night"
	cfg.Defaults.NPV.CashFlows = "100, 200"

	require.NoError(t, Save(cfg))
	assert.True(t, Exists())
	assert.Equal(t, filepath.Join(home, "cbakit", "config.toml"), Path())

	info, err := os.Stat(Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoad_NormalizesBadValues(t *testing.T) {
	useTempConfigHome(t)
	require.NoError(t, os.MkdirAll(Dir(), 0o755))

	raw := `
[general]
currency_symbol = ""
max_payback_years = -3

[export]
chart_width = 10
`
	require.NoError(t, os.WriteFile(Path(), []byte(raw), 0o600))

	cfg, err := Load()
	require.NoError(t, err)
	def := DefaultConfig()
	assert.Equal(t, def.General.CurrencySymbol, cfg.General.CurrencySymbol)
	assert.Equal(t, def.General.MaxPaybackYears, cfg.General.MaxPaybackYears)
	assert.Equal(t, def.Export.ChartWidth, cfg.Export.ChartWidth)
	// Fields absent from the file keep their defaults.
	assert.Equal(t, def.Defaults.Payback.AnnualBenefit, cfg.Defaults.Payback.AnnualBenefit)
}

func TestLoad_ParseError(t *testing.T) {
	useTempConfigHome(t)
	require.NoError(t, os.MkdirAll(Dir(), 0o755))
	require.NoError(t, os.WriteFile(Path(), []byte("[general\n"), 0o600))

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestExportDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Export.Dir = "/srv/exports"
	assert.Equal(t, "/srv/exports", ExportDir(cfg))

	home := t.TempDir()
	t.Setenv("HOME", home)
	cfg.Export.Dir = "~/reports"
	assert.Equal(t, filepath.Join(home, "reports"), ExportDir(cfg))

	cfg.Export.Dir = ""
	require.NoError(t, os.Mkdir(filepath.Join(home, "Desktop"), 0o755))
	assert.Equal(t, filepath.Join(home, "Desktop"), ExportDir(cfg))
}
