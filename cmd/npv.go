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
	flagRate          string
	flagNPVInvestment string
	flagCashFlows     string
	flagNPVExport     bool
	flagNPVChart      string
)

var npvCmd = &cobra.Command{
	Use:     "npv",
	Short:   "Net present value of a series of yearly cash flows",
	Example: `  cbakit npv --rate 10 --investment 10000 --cash-flows "3000,3500,4000,4500,5000"`,
	Args:    cobra.NoArgs,
	RunE:    runNPV,
}

func init() {
	npvCmd.Flags().StringVar(&flagRate, "rate", "", "Discount rate in percent (default from config)")
	npvCmd.Flags().StringVar(&flagNPVInvestment, "investment", "", "Initial investment (default from config)")
	npvCmd.Flags().StringVar(&flagCashFlows, "cash-flows", "", "Comma-separated yearly cash flows (default from config)")
	npvCmd.Flags().BoolVar(&flagNPVExport, "export", false, "Write NPV_Calculation.xlsx to the export directory")
	npvCmd.Flags().StringVar(&flagNPVChart, "chart", "", "Save the chart as a PNG at this path")
	rootCmd.AddCommand(npvCmd)
}

func runNPV(_ *cobra.Command, _ []string) error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	d := cfg.Defaults.NPV
	rate, err := input.ParseAmount("rate", flagOr(flagRate, d.DiscountRate))
	if err != nil {
		return err
	}
	inv, err := input.ParseAmount("investment", flagOr(flagNPVInvestment, d.InitialInvestment))
	if err != nil {
		return err
	}
	flows, err := input.ParseCashFlows("cash-flows", flagOr(flagCashFlows, d.CashFlows))
	if err != nil {
		return err
	}

	res, err := projection.NPV(projection.NPVInput{
		DiscountRate:      rate,
		InitialInvestment: inv,
		CashFlows:         flows,
	})
	if err != nil {
		return err
	}
	logger.Debug("npv computed", zap.Int("periods", len(res.Rows)), zap.Float64("npv", res.NetPresentValue))

	sym := cfg.General.CurrencySymbol

	fmt.Println()
	fmt.Println(cli.RenderTitle("NET PRESENT VALUE"))
	fmt.Println()

	maxAbs := 0.0
	for _, r := range res.Rows {
		maxAbs = max(maxAbs, r.PresentValue, -r.PresentValue)
	}
	rows := make([][]string, 0, len(res.Rows)+2)
	for _, r := range res.Rows {
		rows = append(rows, []string{
			strconv.Itoa(r.Year),
			cli.FormatCurrency(sym, r.CashFlow),
			cli.FormatFactor(r.DiscountFactor),
			cli.FormatCurrency(sym, r.PresentValue),
			cli.RenderSignedBar(r.PresentValue, maxAbs, 8),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"TOTAL", "", "", cli.FormatCurrency(sym, res.TotalPresentValue), ""})
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Discounted Cash Flows at " + cli.FormatPercent(rate),
		Headers: []string{"Year", "Cash Flow", "Factor", "Present Value", ""},
		Rows:    rows,
	}))
	fmt.Println()

	fmt.Println(cli.RenderKeyValue("PV of benefits", cli.FormatCurrency(sym, res.TotalPresentValue)))
	fmt.Println(cli.RenderKeyValue("Initial investment", cli.FormatCurrency(sym, res.InitialInvestment)))
	fmt.Println(cli.RenderKeyValue("Benefit-cost ratio", cli.FormatRatio(res.BenefitCostRatio)))
	net := []float64{-res.InitialInvestment}
	for _, r := range res.Rows {
		net = append(net, net[len(net)-1]+r.PresentValue)
	}
	fmt.Println(cli.RenderKeyValue("Net position trend", cli.RenderSparkline(net)))
	npvLine := cli.RenderKeyValue("Net present value", cli.FormatCurrency(sym, res.NetPresentValue))
	fmt.Println(npvLine)
	if res.NetPresentValue < 0 {
		fmt.Println(cli.RenderWarning("Negative NPV: the project does not recover its cost at this rate"))
	} else {
		fmt.Println(cli.RenderSuccess("Positive NPV: the project is viable at this rate"))
	}

	if !flagNPVExport && flagNPVChart == "" {
		return nil
	}
	fmt.Println()
	exp := newExporter(cfg, logger)
	if flagNPVExport {
		rep, err := exp.ExportNPV(res)
		if err != nil {
			return err
		}
		printReport(rep)
	}
	if flagNPVChart != "" {
		path, err := exp.SaveNPVChart(res, flagNPVChart)
		if err != nil {
			return err
		}
		fmt.Println(cli.RenderSuccess("Chart saved to " + path))
	}
	return nil
}
