package projection

import "math"

// Payback builds the cumulative cash flow schedule for an investment
// recovered by a constant annual benefit.
//
// Rows are emitted until the cumulative position reaches zero or MaxYears
// is exhausted. Not recovering within the horizon is a result state
// (Recovered == false), not an error.
func Payback(in PaybackInput) (PaybackResult, error) {
	if !finite(in.InitialInvestment) || in.InitialInvestment <= 0 {
		return PaybackResult{}, invalid("initial investment", "must be greater than zero")
	}
	if !finite(in.AnnualBenefit) || in.AnnualBenefit <= 0 {
		return PaybackResult{}, invalid("annual net benefit", "must be greater than zero")
	}
	if in.MaxYears <= 0 {
		in.MaxYears = DefaultMaxYears
	}

	res := PaybackResult{Input: in}
	cumulative := -in.InitialInvestment
	for year := 1; year <= in.MaxYears; year++ {
		before := cumulative
		cumulative += in.AnnualBenefit
		res.Rows = append(res.Rows, CashFlowRow{
			Year:       year,
			CashFlow:   in.AnnualBenefit,
			Cumulative: cumulative,
		})
		// Cent-level comparison keeps float drift from adding a year.
		if Round2(cumulative) >= 0 {
			fraction := min(-before/in.AnnualBenefit, 1)
			res.Recovered = true
			res.FractionalYears = float64(year-1) + fraction
			res.Years, res.Months = splitYears(res.FractionalYears)
			break
		}
	}
	return res, nil
}

// splitYears converts fractional years into whole years and months.
// A fraction that rounds to 12 months rolls over into the next year.
func splitYears(fy float64) (int, int) {
	years := int(math.Floor(fy))
	months := int(math.Round((fy - float64(years)) * 12))
	if months >= 12 {
		years++
		months = 0
	}
	return years, months
}
