package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/cbakit/internal/cli"
	"github.com/theirongolddev/cbakit/internal/config"
	"github.com/theirongolddev/cbakit/internal/input"
	"github.com/theirongolddev/cbakit/internal/projection"
	"github.com/theirongolddev/cbakit/internal/tui/components"
	"github.com/theirongolddev/cbakit/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

const (
	paybackFieldInvestment = iota
	paybackFieldBenefit
)

// paybackState holds the payback tab inputs and its latest result.
type paybackState struct {
	form     formState
	maxYears int
	result   *projection.PaybackResult
	err      error
	status   actionStatus
}

func newPaybackState(cfg config.Config) paybackState {
	s := paybackState{
		form: newForm(
			field{label: "Initial Investment", value: cfg.Defaults.Payback.InitialInvestment, placeholder: "10000"},
			field{label: "Annual Benefit", value: cfg.Defaults.Payback.AnnualBenefit, placeholder: "2500"},
		),
		maxYears: cfg.General.MaxPaybackYears,
	}
	s.compute()
	return s
}

// compute parses the fields and recomputes the schedule. Any error clears
// the previous result.
func (s *paybackState) compute() {
	s.result, s.err = nil, nil

	inv, err := input.ParseAmount("Initial Investment", s.form.value(paybackFieldInvestment))
	if err != nil {
		s.err = err
		return
	}
	benefit, err := input.ParseAmount("Annual Benefit", s.form.value(paybackFieldBenefit))
	if err != nil {
		s.err = err
		return
	}

	res, err := projection.Payback(projection.PaybackInput{
		InitialInvestment: inv,
		AnnualBenefit:     benefit,
		MaxYears:          s.maxYears,
	})
	if err != nil {
		s.err = err
		return
	}
	s.result = &res
}

func (a App) renderPaybackTab(cw int) string {
	t := theme.Active
	s := a.payback
	sym := a.cfg.General.CurrencySymbol

	if s.err != nil || s.result == nil {
		return components.ContentCard("Inputs", s.form.render(cw), cw) + "\n" + errorCard(s.err, cw)
	}
	res := s.result

	period := cli.FormatPayback(res.Years, res.Months)
	periodColor := t.Green
	delta := fmt.Sprintf("%.2f years", res.FractionalYears)
	if !res.Recovered {
		period = "Not recovered"
		periodColor = t.Red
		delta = fmt.Sprintf("within %d years", len(res.Rows))
	}
	last := res.Rows[len(res.Rows)-1]

	var b strings.Builder
	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Payback Period", Value: period, Delta: delta, Color: periodColor},
		{Label: "Initial Investment", Value: cli.FormatCurrency(sym, res.Input.InitialInvestment)},
		{Label: "Annual Benefit", Value: cli.FormatCurrency(sym, res.Input.AnnualBenefit)},
		{Label: "Final Position", Value: cli.FormatCurrency(sym, last.Cumulative), Delta: fmt.Sprintf("after year %d", last.Year), Color: t.Signed(last.Cumulative)},
	}, cw))
	b.WriteString("\n")

	leftW := cw * 2 / 5
	rightW := cw - leftW

	// Recovery uses the benefits accrued over the simulated years.
	recovered := res.Input.AnnualBenefit * float64(len(res.Rows)) / res.Input.InitialInvestment
	innerL := components.CardInnerWidth(leftW)
	left := components.ContentCard("Inputs", s.form.render(leftW)+"\n\n"+
		components.RecoveryBar("Recovered", recovered, 9, innerL-16), leftW)

	values := make([]float64, len(res.Rows))
	labels := make([]string, len(res.Rows))
	for i, r := range res.Rows {
		values[i] = r.Cumulative
		labels[i] = strconv.Itoa(r.Year)
	}
	chart := components.BarChart(values, labels, t.Green, t.Red, components.CardInnerWidth(rightW), 8)
	right := components.ContentCard("Cumulative Cash Flow", chart, rightW)

	b.WriteString(components.CardRow([]string{left, right}))
	b.WriteString("\n")

	rows := make([][]string, len(res.Rows))
	for i, r := range res.Rows {
		rows[i] = []string{
			strconv.Itoa(r.Year),
			cli.FormatCurrency(sym, r.CashFlow),
			cli.FormatCurrency(sym, r.Cumulative),
		}
	}
	table := components.DataTable([]string{"Year", "Cash Flow", "Cumulative"}, components.ElideRows(rows, 4))
	b.WriteString(components.ContentCard("Cash Flows", table+statusLine(s.status), cw))

	return b.String()
}

// errorCard renders a parse or validation failure in place of results.
func errorCard(err error, cw int) string {
	t := theme.Active
	msg := "No result"
	if err != nil {
		msg = err.Error()
	}
	style := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface)
	hint := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface).
		Render("Edit the highlighted field and press Enter to recalculate.")
	return components.ContentCard("Cannot calculate", style.Render(msg)+"\n"+hint, cw)
}

// statusLine renders the last export outcome under a card body.
func statusLine(s actionStatus) string {
	msg, isErr := s.text()
	if msg == "" {
		return ""
	}
	t := theme.Active
	color := t.Green
	if isErr {
		color = t.Red
	}
	return "\n\n" + lipgloss.NewStyle().Foreground(color).Background(t.Surface).Render(msg)
}
