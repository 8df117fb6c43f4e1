// Package config loads and saves cbakit preferences from a TOML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all cbakit configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Export     ExportConfig     `toml:"export"`
	Appearance AppearanceConfig `toml:"appearance"`
	Defaults   DefaultsConfig   `toml:"defaults"`
	Log        LogConfig        `toml:"log"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	CurrencySymbol  string `toml:"currency_symbol"`
	MaxPaybackYears int    `toml:"max_payback_years"`
}

// ExportConfig controls where and how results are written.
type ExportConfig struct {
	Dir         string `toml:"dir,omitempty"`
	EmbedCharts bool   `toml:"embed_charts"`
	ChartWidth  int    `toml:"chart_width"`
	ChartHeight int    `toml:"chart_height"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultsConfig prefills the calculator fields. Values are kept as text
// so they go through the same parsing as user edits.
type DefaultsConfig struct {
	Payback   PaybackDefaults   `toml:"payback"`
	NPV       NPVDefaults       `toml:"npv"`
	BreakEven BreakEvenDefaults `toml:"breakeven"`
}

// PaybackDefaults prefills the payback calculator.
type PaybackDefaults struct {
	InitialInvestment string `toml:"initial_investment"`
	AnnualBenefit     string `toml:"annual_benefit"`
}

// NPVDefaults prefills the NPV calculator.
type NPVDefaults struct {
	DiscountRate      string `toml:"discount_rate"`
	InitialInvestment string `toml:"initial_investment"`
	CashFlows         string `toml:"cash_flows"`
}

// BreakEvenDefaults prefills the break-even calculator.
type BreakEvenDefaults struct {
	FixedCosts   string `toml:"fixed_costs"`
	VariableCost string `toml:"variable_cost"`
	SalesPrice   string `toml:"sales_price"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level string `toml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			CurrencySymbol:  "£",
			MaxPaybackYears: 50,
		},
		Export: ExportConfig{
			EmbedCharts: true,
			ChartWidth:  1024,
			ChartHeight: 600,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Defaults: DefaultsConfig{
			Payback: PaybackDefaults{
				InitialInvestment: "10000",
				AnnualBenefit:     "2500",
			},
			NPV: NPVDefaults{
				DiscountRate:      "10",
				InitialInvestment: "10000",
				CashFlows:         "3000, 3500, 4000, 4500, 5000",
			},
			BreakEven: BreakEvenDefaults{
				FixedCosts:   "5000",
				VariableCost: "20",
				SalesPrice:   "50",
			},
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "cbakit")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "cbakit")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// LogPath returns the file the TUI logs to.
func LogPath() string {
	return filepath.Join(Dir(), "cbakit.log")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	cfg.normalize()

	return cfg, nil
}

// normalize replaces unusable values with defaults.
func (c *Config) normalize() {
	def := DefaultConfig()
	if c.General.CurrencySymbol == "" {
		c.General.CurrencySymbol = def.General.CurrencySymbol
	}
	if c.General.MaxPaybackYears <= 0 {
		c.General.MaxPaybackYears = def.General.MaxPaybackYears
	}
	if c.Export.ChartWidth < 200 {
		c.Export.ChartWidth = def.Export.ChartWidth
	}
	if c.Export.ChartHeight < 150 {
		c.Export.ChartHeight = def.Export.ChartHeight
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// ExportDir resolves the directory exports are written to: the configured
// directory, else ~/Desktop when it exists, else the working directory.
func ExportDir(cfg Config) string {
	if cfg.Export.Dir != "" {
		return expandHome(cfg.Export.Dir)
	}
	if home, err := os.UserHomeDir(); err == nil {
		desktop := filepath.Join(home, "Desktop")
		if fi, err := os.Stat(desktop); err == nil && fi.IsDir() {
			return desktop
		}
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

func expandHome(p string) string {
	if p == "~" || (len(p) > 1 && p[:2] == "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, p[1:])
		}
	}
	return p
}
