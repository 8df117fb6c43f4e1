package projection

import "math"

// NPV discounts each cash flow at the given annual rate and nets the
// total against the initial investment. Cash flow i (1-indexed) is
// discounted by 1/(1+r)^i.
func NPV(in NPVInput) (NPVResult, error) {
	if !finite(in.DiscountRate) {
		return NPVResult{}, invalid("discount rate", "must be a finite number")
	}
	if in.DiscountRate <= -100 {
		return NPVResult{}, invalid("discount rate", "must be greater than -100%%")
	}
	if !finite(in.InitialInvestment) || in.InitialInvestment <= 0 {
		return NPVResult{}, invalid("initial investment", "must be greater than zero")
	}
	if len(in.CashFlows) == 0 {
		return NPVResult{}, invalid("cash flows", "at least one cash flow is required")
	}

	rate := in.DiscountRate / 100
	res := NPVResult{
		Input:             in,
		Rows:              make([]DiscountedRow, 0, len(in.CashFlows)),
		InitialInvestment: in.InitialInvestment,
	}
	for i, cf := range in.CashFlows {
		if !finite(cf) {
			return NPVResult{}, invalid("cash flows", "year %d is not a finite number", i+1)
		}
		year := i + 1
		factor := 1 / math.Pow(1+rate, float64(year))
		if !finite(factor) {
			return NPVResult{}, invalid("discount rate", "discount factor for year %d is not finite", year)
		}
		pv := cf * factor
		res.TotalPresentValue += pv
		res.Rows = append(res.Rows, DiscountedRow{
			Year:           year,
			CashFlow:       cf,
			DiscountFactor: factor,
			PresentValue:   pv,
		})
	}
	res.NetPresentValue = res.TotalPresentValue - in.InitialInvestment
	res.BenefitCostRatio = res.TotalPresentValue / in.InitialInvestment
	return res, nil
}
