package projection

// curveExtent is how far past the break-even volume the chart curve runs.
const curveExtent = 1.5

// BreakEven finds the unit volume and revenue at which total revenue
// covers fixed plus variable costs.
func BreakEven(in BreakEvenInput) (BreakEvenResult, error) {
	if !finite(in.FixedCosts) || in.FixedCosts < 0 {
		return BreakEvenResult{}, invalid("fixed costs", "must be zero or greater")
	}
	if !finite(in.VariableCost) || in.VariableCost < 0 {
		return BreakEvenResult{}, invalid("variable cost per unit", "must be zero or greater")
	}
	if !finite(in.SalesPrice) {
		return BreakEvenResult{}, invalid("sales price per unit", "must be a finite number")
	}
	if in.SalesPrice <= in.VariableCost {
		return BreakEvenResult{}, invalid("sales price per unit", "must be greater than variable cost per unit")
	}

	units := in.FixedCosts / (in.SalesPrice - in.VariableCost)
	return BreakEvenResult{
		Input:   in,
		Units:   Round2(units),
		Revenue: Round2(units * in.SalesPrice),
	}, nil
}

// Curve samples total cost and total revenue from zero units to 150% of
// the break-even volume. points is clamped to at least 2; a zero
// break-even volume yields a single point at the origin.
func (r BreakEvenResult) Curve(points int) []CurvePoint {
	if points < 2 {
		points = 2
	}
	limit := r.Units * curveExtent
	if limit <= 0 {
		return []CurvePoint{r.pointAt(0)}
	}
	step := limit / float64(points-1)
	out := make([]CurvePoint, points)
	for i := range out {
		out[i] = r.pointAt(step * float64(i))
	}
	out[points-1] = r.pointAt(limit)
	return out
}

func (r BreakEvenResult) pointAt(units float64) CurvePoint {
	return CurvePoint{
		Units:        units,
		TotalCost:    r.Input.FixedCosts + r.Input.VariableCost*units,
		TotalRevenue: r.Input.SalesPrice * units,
	}
}
