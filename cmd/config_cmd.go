package cmd

import (
	"fmt"

	"github.com/theirongolddev/cbakit/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Printf("  Log file:    %s\n", config.LogPath())
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Currency symbol:   %s\n", cfg.General.CurrencySymbol)
	fmt.Printf("    Max payback years: %d\n", cfg.General.MaxPaybackYears)
	fmt.Println()

	fmt.Println("  [Export]")
	dir := config.ExportDir(cfg)
	if cfg.Export.Dir == "" {
		dir += " (default)"
	}
	fmt.Printf("    Directory:    %s\n", dir)
	fmt.Printf("    Embed charts: %v\n", cfg.Export.EmbedCharts)
	fmt.Printf("    Chart size:   %dx%d\n", cfg.Export.ChartWidth, cfg.Export.ChartHeight)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	d := cfg.Defaults
	fmt.Println("  [Defaults]")
	fmt.Printf("    Payback:    investment=%s benefit=%s\n",
		orUnset(d.Payback.InitialInvestment), orUnset(d.Payback.AnnualBenefit))
	fmt.Printf("    NPV:        rate=%s investment=%s cash_flows=%s\n",
		orUnset(d.NPV.DiscountRate), orUnset(d.NPV.InitialInvestment), orUnset(d.NPV.CashFlows))
	fmt.Printf("    Break-even: fixed=%s variable=%s price=%s\n",
		orUnset(d.BreakEven.FixedCosts), orUnset(d.BreakEven.VariableCost), orUnset(d.BreakEven.SalesPrice))
	fmt.Println()

	fmt.Println("  [Log]")
	fmt.Printf("    Level: %s\n", cfg.Log.Level)
	fmt.Println()

	fmt.Println("  Run `cbakit setup` to reconfigure.")
	return nil
}

func orUnset(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
