// Package reference holds the static cost-benefit analysis guide shown in
// the Reference tab and exported by `cbakit reference`.
package reference

import (
	"fmt"
	"strings"
)

// Point is a titled sub-item of a Step.
type Point struct {
	Title string
	Text  string
}

// Step is one stage of the cost-benefit analysis procedure.
type Step struct {
	Title   string
	Summary string
	Points  []Point
}

// Table is a simple headed grid of text cells.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

var steps = []Step{
	{Title: "Define Scope", Summary: "Clarify procurement project goals, including evaluated products & desired outcomes."},
	{Title: "Identify Costs", Points: []Point{
		{"Direct Costs", "Purchase price, shipping, clearance."},
		{"Indirect Costs", "Maintenance, training, potential downtime."},
		{"Opportunity Costs", "Evaluate potential revenue loss from procurement choices."},
	}},
	{Title: "Identify Benefits", Points: []Point{
		{"Tangible Benefits", "Measure increased revenue, cost savings, efficiency, quality improvements."},
		{"Intangible Benefits", "Consider non-quantifiable gains like brand reputation & customer satisfaction."},
	}},
	{Title: "Data Collection", Summary: "Collect data from past purchases, supplier quotes, market research."},
	{Title: "Quantify Costs & Benefits", Points: []Point{
		{"", "Convert costs & benefits into a common monetary unit for comparison."},
		{"", "Estimate future cash flows & discount them to present value."},
	}},
	{Title: "Analyze Data", Points: []Point{
		{"", "Calculate total costs & benefits."},
		{"", "Determine net present value (NPV) by subtracting costs from benefits."},
		{"", "Evaluate additional metrics like benefit-cost ratio (BCR) & payback period."},
	}},
	{Title: "Sensitivity Analysis", Points: []Point{
		{"", "Identify risks & uncertainties."},
		{"", "Assess the impact of changes in key assumptions on results."},
	}},
	{Title: "Document Findings", Summary: "Prepare a report detailing methods, assumptions, & results, supported by charts & graphs."},
	{Title: "Make Recommendations", Summary: "Decide on procurement, explore alternatives, & negotiate terms."},
	{Title: "Monitor Post-Decision", Summary: "Continuously track implementation & performance against anticipated benefits & costs to ensure alignment with goals."},
}

var comparison = Table{
	Title:   "Key Differences between BCR and Net Profit",
	Headers: []string{"Metric", "BCR (Benefit-Cost Ratio)", "Net Profit"},
	Rows: [][]string{
		{"Definition:", "Ratio of PV of benefits to PV of costs", "Difference between total revenue and total costs"},
		{"Formula:", "PV of Benefits / PV of Costs", "Total Benefits - Total Costs"},
		{"Interpretation:", "Shows return per unit cost (BCR > 1 is viable)", "Shows absolute profit in monetary terms"},
		{"Focus:", "Relative comparison of benefits and costs", "Absolute profitability in currency"},
		{"Decision-Making:", "Useful for comparing projects", "Useful for assessing financial gain"},
		{"Time Value of Money:", "Uses discounted present values", "Does not require discounting"},
	},
}

// Steps returns the cost-benefit analysis procedure. The slice is a copy.
func Steps() []Step {
	out := make([]Step, len(steps))
	copy(out, steps)
	return out
}

// Comparison returns the BCR vs Net Profit table. Rows are copied.
func Comparison() Table {
	t := comparison
	t.Headers = append([]string(nil), comparison.Headers...)
	t.Rows = make([][]string, len(comparison.Rows))
	for i, r := range comparison.Rows {
		t.Rows[i] = append([]string(nil), r...)
	}
	return t
}

// PlainText renders the procedure and the comparison as plain text.
func PlainText() string {
	var b strings.Builder
	b.WriteString("Cost-Benefit Analysis\n\n")
	for i, s := range steps {
		fmt.Fprintf(&b, "%d. %s", i+1, s.Title)
		if s.Summary != "" {
			fmt.Fprintf(&b, ": %s", s.Summary)
		}
		b.WriteString("\n")
		for _, p := range s.Points {
			if p.Title != "" {
				fmt.Fprintf(&b, "   - %s: %s\n", p.Title, p.Text)
			} else {
				fmt.Fprintf(&b, "   - %s\n", p.Text)
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(comparison.Title)
	b.WriteString("\n\n")
	for _, r := range comparison.Rows {
		fmt.Fprintf(&b, "%s\n   %s: %s\n   %s: %s\n",
			r[0], comparison.Headers[1], r[1], comparison.Headers[2], r[2])
	}
	return strings.TrimRight(b.String(), "\n")
}
