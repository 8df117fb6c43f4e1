package tui

import (
	"strconv"
	"strings"

	"github.com/theirongolddev/cbakit/internal/cli"
	"github.com/theirongolddev/cbakit/internal/config"
	"github.com/theirongolddev/cbakit/internal/input"
	"github.com/theirongolddev/cbakit/internal/projection"
	"github.com/theirongolddev/cbakit/internal/tui/components"
	"github.com/theirongolddev/cbakit/internal/tui/theme"
)

const (
	npvFieldRate = iota
	npvFieldInvestment
	npvFieldCashFlows
)

type npvState struct {
	form   formState
	result *projection.NPVResult
	err    error
	status actionStatus
}

func newNPVState(cfg config.Config) npvState {
	d := cfg.Defaults.NPV
	s := npvState{form: newForm(
		field{label: "Discount Rate (%)", value: d.DiscountRate, placeholder: "10"},
		field{label: "Initial Investment", value: d.InitialInvestment, placeholder: "10000"},
		field{label: "Cash Flows", value: d.CashFlows, placeholder: "3000, 3500, 4000"},
	)}
	s.compute()
	return s
}

func (s *npvState) compute() {
	s.result, s.err = nil, nil

	rate, err := input.ParseAmount("Discount Rate", s.form.value(npvFieldRate))
	if err != nil {
		s.err = err
		return
	}
	inv, err := input.ParseAmount("Initial Investment", s.form.value(npvFieldInvestment))
	if err != nil {
		s.err = err
		return
	}
	flows, err := input.ParseCashFlows("Cash Flows", s.form.value(npvFieldCashFlows))
	if err != nil {
		s.err = err
		return
	}

	res, err := projection.NPV(projection.NPVInput{
		DiscountRate:      rate,
		InitialInvestment: inv,
		CashFlows:         flows,
	})
	if err != nil {
		s.err = err
		return
	}
	s.result = &res
}

func (a App) renderNPVTab(cw int) string {
	t := theme.Active
	s := a.npv
	sym := a.cfg.General.CurrencySymbol

	if s.err != nil || s.result == nil {
		return components.ContentCard("Inputs", s.form.render(cw), cw) + "\n" + errorCard(s.err, cw)
	}
	res := s.result

	verdict := "not viable"
	if res.NetPresentValue >= 0 {
		verdict = "viable"
	}

	var b strings.Builder
	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Net Present Value", Value: cli.FormatCurrency(sym, res.NetPresentValue), Delta: verdict, Color: t.Signed(res.NetPresentValue)},
		{Label: "PV of Benefits", Value: cli.FormatCurrency(sym, res.TotalPresentValue)},
		{Label: "Initial Investment", Value: cli.FormatCurrency(sym, res.InitialInvestment)},
		{Label: "Benefit-Cost Ratio", Value: cli.FormatRatio(res.BenefitCostRatio), Delta: "at " + cli.FormatPercent(res.Input.DiscountRate)},
	}, cw))
	b.WriteString("\n")

	leftW := cw * 2 / 5
	rightW := cw - leftW

	innerL := components.CardInnerWidth(leftW)
	left := components.ContentCard("Inputs", s.form.render(leftW)+"\n\n"+
		components.RecoveryBar("PV / Cost", res.BenefitCostRatio, 9, innerL-16), leftW)

	values := make([]float64, len(res.Rows))
	labels := make([]string, len(res.Rows))
	for i, r := range res.Rows {
		values[i] = r.PresentValue
		labels[i] = strconv.Itoa(r.Year)
	}
	chart := components.BarChart(values, labels, t.Blue, t.Red, components.CardInnerWidth(rightW), 8)
	right := components.ContentCard("Present Value by Year", chart, rightW)

	b.WriteString(components.CardRow([]string{left, right}))
	b.WriteString("\n")

	rows := make([][]string, len(res.Rows))
	for i, r := range res.Rows {
		rows[i] = []string{
			strconv.Itoa(r.Year),
			cli.FormatCurrency(sym, r.CashFlow),
			cli.FormatFactor(r.DiscountFactor),
			cli.FormatCurrency(sym, r.PresentValue),
		}
	}
	headers := []string{"Year", "Cash Flow", "Discount Factor", "Present Value"}
	table := components.DataTable(headers, components.ElideRows(rows, 4))
	b.WriteString(components.ContentCard("Discounted Cash Flows", table+statusLine(s.status), cw))

	return b.String()
}
