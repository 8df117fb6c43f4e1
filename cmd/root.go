// Package cmd implements the cbakit CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/cbakit/internal/cli"
	"github.com/theirongolddev/cbakit/internal/config"
	"github.com/theirongolddev/cbakit/internal/export"
	"github.com/theirongolddev/cbakit/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagExportDir string
	flagVerbose   bool
	flagNoEmbed   bool
)

var rootCmd = &cobra.Command{
	Use:   "cbakit",
	Short: "Cost-benefit analysis toolkit",
	Long: "Payback period, net present value and break-even calculators with a\n" +
		"cost-benefit analysis reference. Results export to xlsx workbooks and PNG charts.\n\n" +
		"Run without a subcommand to open the interactive dashboard.",
	SilenceUsage: true,
	RunE:         runTUI,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagExportDir, "export-dir", "", "Directory for exported workbooks and charts (default: config, then ~/Desktop)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug output to stderr")
	rootCmd.PersistentFlags().BoolVar(&flagNoEmbed, "no-embed", false, "Save charts as separate PNG files instead of embedding them")
}

// bootstrap loads the config and builds the stderr logger shared by the
// one-shot commands.
func bootstrap() (config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, nil, err
	}
	logger, err := logging.NewCLI(cfg.Log.Level, flagVerbose)
	if err != nil {
		return cfg, nil, fmt.Errorf("creating logger: %w", err)
	}
	logger.Debug("config loaded", zap.String("path", config.Path()), zap.Bool("exists", config.Exists()))
	return cfg, logger, nil
}

// newExporter applies the global flags on top of the export config.
func newExporter(cfg config.Config, logger *zap.Logger) *export.Exporter {
	dir := flagExportDir
	if dir == "" {
		dir = config.ExportDir(cfg)
	}
	return &export.Exporter{
		Dir:            dir,
		EmbedCharts:    cfg.Export.EmbedCharts && !flagNoEmbed,
		ChartWidth:     cfg.Export.ChartWidth,
		ChartHeight:    cfg.Export.ChartHeight,
		CurrencySymbol: cfg.General.CurrencySymbol,
		Logger:         logger,
	}
}

// flagOr returns the flag text, or the configured default when unset.
func flagOr(flag, fallback string) string {
	if flag != "" {
		return flag
	}
	return fallback
}

func printReport(rep export.Report) {
	fmt.Println(cli.RenderSuccess("Workbook saved to " + rep.Workbook))
	if rep.Chart != "" {
		fmt.Println(cli.RenderSuccess("Chart saved to " + rep.Chart))
	}
	for _, w := range rep.Warnings {
		fmt.Println(cli.RenderWarning(w))
	}
}
