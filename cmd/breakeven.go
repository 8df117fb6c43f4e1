package cmd

import (
	"fmt"

	"github.com/theirongolddev/cbakit/internal/cli"
	"github.com/theirongolddev/cbakit/internal/input"
	"github.com/theirongolddev/cbakit/internal/projection"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagFixed           string
	flagVariable        string
	flagPrice           string
	flagBreakEvenExport bool
	flagBreakEvenChart  string
)

var breakEvenCmd = &cobra.Command{
	Use:     "breakeven",
	Aliases: []string{"break-even"},
	Short:   "Units and revenue needed to cover fixed costs",
	Example: "  cbakit breakeven --fixed 5000 --variable 20 --price 50",
	Args:    cobra.NoArgs,
	RunE:    runBreakEven,
}

func init() {
	breakEvenCmd.Flags().StringVar(&flagFixed, "fixed", "", "Fixed costs (default from config)")
	breakEvenCmd.Flags().StringVar(&flagVariable, "variable", "", "Variable cost per unit (default from config)")
	breakEvenCmd.Flags().StringVar(&flagPrice, "price", "", "Sales price per unit (default from config)")
	breakEvenCmd.Flags().BoolVar(&flagBreakEvenExport, "export", false, "Write break_even_analysis.xlsx to the export directory")
	breakEvenCmd.Flags().StringVar(&flagBreakEvenChart, "chart", "", "Save the chart as a PNG at this path")
	rootCmd.AddCommand(breakEvenCmd)
}

func runBreakEven(_ *cobra.Command, _ []string) error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	d := cfg.Defaults.BreakEven
	fixed, err := input.ParseAmount("fixed", flagOr(flagFixed, d.FixedCosts))
	if err != nil {
		return err
	}
	variable, err := input.ParseAmount("variable", flagOr(flagVariable, d.VariableCost))
	if err != nil {
		return err
	}
	price, err := input.ParseAmount("price", flagOr(flagPrice, d.SalesPrice))
	if err != nil {
		return err
	}

	res, err := projection.BreakEven(projection.BreakEvenInput{
		FixedCosts:   fixed,
		VariableCost: variable,
		SalesPrice:   price,
	})
	if err != nil {
		return err
	}
	logger.Debug("break-even computed", zap.Float64("units", res.Units), zap.Float64("revenue", res.Revenue))

	sym := cfg.General.CurrencySymbol

	fmt.Println()
	fmt.Println(cli.RenderTitle("BREAK-EVEN ANALYSIS"))
	fmt.Println()
	fmt.Println(cli.RenderKeyValue("Fixed costs", cli.FormatCurrency(sym, fixed)))
	fmt.Println(cli.RenderKeyValue("Variable cost per unit", cli.FormatCurrency(sym, variable)))
	fmt.Println(cli.RenderKeyValue("Sales price per unit", cli.FormatCurrency(sym, price)))
	fmt.Println(cli.RenderKeyValue("Contribution margin", cli.FormatCurrency(sym, price-variable)))
	fmt.Println()
	fmt.Println(cli.RenderKeyValue("Break-even units", cli.FormatAmount(res.Units)))
	fmt.Println(cli.RenderKeyValue("Break-even revenue", cli.FormatCurrency(sym, res.Revenue)))
	fmt.Println()

	// At break-even, revenue is exactly fixed plus variable costs.
	variableTotal := res.Units * variable
	fmt.Println(cli.RenderHorizontalBar("Fixed costs", cli.FormatCurrency(sym, fixed), fixed, res.Revenue, 30))
	fmt.Println(cli.RenderHorizontalBar("Variable costs", cli.FormatCurrency(sym, variableTotal), variableTotal, res.Revenue, 30))
	fmt.Println(cli.RenderHorizontalBar("Revenue", cli.FormatCurrency(sym, res.Revenue), res.Revenue, res.Revenue, 30))
	fmt.Println()

	curve := res.Curve(7)
	maxAbs := 0.0
	for _, p := range curve {
		maxAbs = max(maxAbs, p.TotalRevenue-p.TotalCost, p.TotalCost-p.TotalRevenue)
	}
	rows := make([][]string, 0, len(curve))
	for _, p := range curve {
		profit := p.TotalRevenue - p.TotalCost
		rows = append(rows, []string{
			cli.FormatAmount(p.Units),
			cli.FormatCurrency(sym, p.TotalCost),
			cli.FormatCurrency(sym, p.TotalRevenue),
			cli.FormatCurrency(sym, profit),
			cli.RenderSignedBar(profit, maxAbs, 8),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Cost and Revenue",
		Headers: []string{"Units", "Total Cost", "Total Revenue", "Profit", ""},
		Rows:    rows,
	}))

	if !flagBreakEvenExport && flagBreakEvenChart == "" {
		return nil
	}
	fmt.Println()
	exp := newExporter(cfg, logger)
	if flagBreakEvenExport {
		rep, err := exp.ExportBreakEven(res)
		if err != nil {
			return err
		}
		printReport(rep)
	}
	if flagBreakEvenChart != "" {
		path, err := exp.SaveBreakEvenChart(res, flagBreakEvenChart)
		if err != nil {
			return err
		}
		fmt.Println(cli.RenderSuccess("Chart saved to " + path))
	}
	return nil
}
