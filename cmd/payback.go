package cmd

import (
	"fmt"
	"strconv"

	"github.com/theirongolddev/cbakit/internal/cli"
	"github.com/theirongolddev/cbakit/internal/input"
	"github.com/theirongolddev/cbakit/internal/projection"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagInvestment    string
	flagBenefit       string
	flagMaxYears      int
	flagPaybackExport bool
	flagPaybackChart  string
)

var paybackCmd = &cobra.Command{
	Use:   "payback",
	Short: "Years and months until an investment is recovered",
	Example: "  cbakit payback --investment 10000 --benefit 2500\n" +
		"  cbakit payback --investment 50000 --benefit 1200 --max-years 30 --export",
	Args: cobra.NoArgs,
	RunE: runPayback,
}

func init() {
	paybackCmd.Flags().StringVar(&flagInvestment, "investment", "", "Initial investment (default from config)")
	paybackCmd.Flags().StringVar(&flagBenefit, "benefit", "", "Annual benefit (default from config)")
	paybackCmd.Flags().IntVar(&flagMaxYears, "max-years", 0, "Give up after this many years (default from config, 50)")
	paybackCmd.Flags().BoolVar(&flagPaybackExport, "export", false, "Write payback_period_calculation.xlsx to the export directory")
	paybackCmd.Flags().StringVar(&flagPaybackChart, "chart", "", "Save the chart as a PNG at this path")
	rootCmd.AddCommand(paybackCmd)
}

func runPayback(_ *cobra.Command, _ []string) error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	inv, err := input.ParseAmount("investment", flagOr(flagInvestment, cfg.Defaults.Payback.InitialInvestment))
	if err != nil {
		return err
	}
	benefit, err := input.ParseAmount("benefit", flagOr(flagBenefit, cfg.Defaults.Payback.AnnualBenefit))
	if err != nil {
		return err
	}
	maxYears := flagMaxYears
	if maxYears <= 0 {
		maxYears = cfg.General.MaxPaybackYears
	}

	res, err := projection.Payback(projection.PaybackInput{
		InitialInvestment: inv,
		AnnualBenefit:     benefit,
		MaxYears:          maxYears,
	})
	if err != nil {
		return err
	}
	logger.Debug("payback computed", zap.Int("rows", len(res.Rows)), zap.Bool("recovered", res.Recovered))

	sym := cfg.General.CurrencySymbol

	fmt.Println()
	fmt.Println(cli.RenderTitle("PAYBACK PERIOD"))
	fmt.Println()
	fmt.Println(cli.RenderKeyValue("Initial investment", cli.FormatCurrency(sym, inv)))
	fmt.Println(cli.RenderKeyValue("Annual benefit", cli.FormatCurrency(sym, benefit)))
	if res.Recovered {
		fmt.Println(cli.RenderKeyValue("Payback period", cli.FormatPayback(res.Years, res.Months)))
		fmt.Println(cli.RenderKeyValue("Payback (years)", strconv.FormatFloat(res.FractionalYears, 'f', 2, 64)))
	} else {
		fmt.Println(cli.RenderWarning(fmt.Sprintf("Not paid back within %d years", len(res.Rows))))
	}
	trend := make([]float64, 0, len(res.Rows)+1)
	trend = append(trend, -inv)
	for _, r := range res.Rows {
		trend = append(trend, r.Cumulative)
	}
	fmt.Println(cli.RenderKeyValue("Cumulative trend", cli.RenderSparkline(trend)))
	fmt.Println()

	maxAbs := inv
	for _, r := range res.Rows {
		maxAbs = max(maxAbs, r.Cumulative, -r.Cumulative)
	}
	rows := make([][]string, 0, len(res.Rows))
	for _, r := range res.Rows {
		rows = append(rows, []string{
			strconv.Itoa(r.Year),
			cli.FormatCurrency(sym, r.CashFlow),
			cli.FormatCurrency(sym, r.Cumulative),
			cli.RenderSignedBar(r.Cumulative, maxAbs, 10),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Cash Flows",
		Headers: []string{"Year", "Cash Flow", "Cumulative", "Position"},
		Rows:    rows,
	}))

	if !flagPaybackExport && flagPaybackChart == "" {
		return nil
	}
	fmt.Println()
	exp := newExporter(cfg, logger)
	if flagPaybackExport {
		rep, err := exp.ExportPayback(res)
		if err != nil {
			return err
		}
		printReport(rep)
	}
	if flagPaybackChart != "" {
		path, err := exp.SavePaybackChart(res, flagPaybackChart)
		if err != nil {
			return err
		}
		fmt.Println(cli.RenderSuccess("Chart saved to " + path))
	}
	return nil
}
