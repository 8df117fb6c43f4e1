package tui

import (
	"strings"

	"github.com/theirongolddev/cbakit/internal/cli"
	"github.com/theirongolddev/cbakit/internal/config"
	"github.com/theirongolddev/cbakit/internal/input"
	"github.com/theirongolddev/cbakit/internal/projection"
	"github.com/theirongolddev/cbakit/internal/tui/components"
	"github.com/theirongolddev/cbakit/internal/tui/theme"
)

const (
	breakEvenFieldFixed = iota
	breakEvenFieldVariable
	breakEvenFieldPrice
)

// breakEvenChartPoints is the number of profit samples in the terminal chart.
const breakEvenChartPoints = 13

type breakEvenState struct {
	form   formState
	result *projection.BreakEvenResult
	err    error
	status actionStatus
}

func newBreakEvenState(cfg config.Config) breakEvenState {
	d := cfg.Defaults.BreakEven
	s := breakEvenState{form: newForm(
		field{label: "Fixed Costs", value: d.FixedCosts, placeholder: "5000"},
		field{label: "Variable Cost per Unit", value: d.VariableCost, placeholder: "20"},
		field{label: "Sales Price per Unit", value: d.SalesPrice, placeholder: "50"},
	)}
	s.compute()
	return s
}

func (s *breakEvenState) compute() {
	s.result, s.err = nil, nil

	labels := []string{"Fixed Costs", "Variable Cost", "Sales Price"}
	var vals [3]float64
	for i, l := range labels {
		v, err := input.ParseAmount(l, s.form.value(i))
		if err != nil {
			s.err = err
			return
		}
		vals[i] = v
	}

	res, err := projection.BreakEven(projection.BreakEvenInput{
		FixedCosts:   vals[breakEvenFieldFixed],
		VariableCost: vals[breakEvenFieldVariable],
		SalesPrice:   vals[breakEvenFieldPrice],
	})
	if err != nil {
		s.err = err
		return
	}
	s.result = &res
}

func (a App) renderBreakEvenTab(cw int) string {
	t := theme.Active
	s := a.breakEven
	sym := a.cfg.General.CurrencySymbol

	if s.err != nil || s.result == nil {
		return components.ContentCard("Inputs", s.form.render(cw), cw) + "\n" + errorCard(s.err, cw)
	}
	res := s.result
	margin := res.Input.SalesPrice - res.Input.VariableCost

	var b strings.Builder
	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Break-Even Units", Value: cli.FormatAmount(res.Units), Color: t.AccentBright},
		{Label: "Break-Even Revenue", Value: cli.FormatCurrency(sym, res.Revenue)},
		{Label: "Contribution Margin", Value: cli.FormatCurrency(sym, margin), Delta: "per unit"},
	}, cw))
	b.WriteString("\n")

	leftW := cw * 2 / 5
	rightW := cw - leftW

	left := components.ContentCard("Inputs", s.form.render(leftW), leftW)

	curve := res.Curve(breakEvenChartPoints)
	profit := make([]float64, len(curve))
	labels := make([]string, len(curve))
	for i, p := range curve {
		profit[i] = p.TotalRevenue - p.TotalCost
		labels[i] = formatUnits(p.Units)
	}
	chart := components.BarChart(profit, labels, t.Green, t.Red, components.CardInnerWidth(rightW), 8)
	right := components.ContentCard("Profit by Units Sold", chart, rightW)

	b.WriteString(components.CardRow([]string{left, right}))
	b.WriteString("\n")

	var rows [][]string
	for _, p := range res.Curve(7) {
		rows = append(rows, []string{
			cli.FormatAmount(p.Units),
			cli.FormatCurrency(sym, p.TotalCost),
			cli.FormatCurrency(sym, p.TotalRevenue),
			cli.FormatCurrency(sym, p.TotalRevenue-p.TotalCost),
		})
	}
	table := components.DataTable([]string{"Units", "Total Cost", "Total Revenue", "Profit"}, rows)
	b.WriteString(components.ContentCard("Cost and Revenue", table+statusLine(s.status), cw))

	return b.String()
}

func formatUnits(u float64) string {
	if u >= 1000 {
		return cli.FormatNumber(int64(u+0.5))
	}
	return strings.TrimSuffix(cli.FormatAmount(u), ".00")
}
