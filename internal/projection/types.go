// Package projection computes payback schedules, NPV schedules and
// break-even points. Every function is pure: inputs are value objects and
// results are returned, never stored.
package projection

// DefaultMaxYears bounds the payback search when PaybackInput.MaxYears is unset.
const DefaultMaxYears = 50

// PaybackInput holds the payback calculator fields.
type PaybackInput struct {
	InitialInvestment float64
	AnnualBenefit     float64
	MaxYears          int // <= 0 means DefaultMaxYears
}

// CashFlowRow is one year of a payback schedule.
type CashFlowRow struct {
	Year       int
	CashFlow   float64
	Cumulative float64
}

// PaybackResult is the outcome of a payback calculation.
// Recovered is false when the investment is not paid back within MaxYears;
// Years, Months and FractionalYears are zero in that case.
type PaybackResult struct {
	Input           PaybackInput
	Rows            []CashFlowRow
	Recovered       bool
	Years           int
	Months          int
	FractionalYears float64
}

// NPVInput holds the NPV calculator fields. DiscountRate is a percentage.
type NPVInput struct {
	DiscountRate      float64
	InitialInvestment float64
	CashFlows         []float64
}

// DiscountedRow is one period of an NPV schedule.
type DiscountedRow struct {
	Year           int
	CashFlow       float64
	DiscountFactor float64
	PresentValue   float64
}

// NPVResult is the outcome of an NPV calculation.
type NPVResult struct {
	Input             NPVInput
	Rows              []DiscountedRow
	TotalPresentValue float64 // present value of benefits
	InitialInvestment float64
	NetPresentValue   float64
	BenefitCostRatio  float64
}

// BreakEvenInput holds the break-even calculator fields.
type BreakEvenInput struct {
	FixedCosts   float64
	VariableCost float64 // per unit
	SalesPrice   float64 // per unit
}

// BreakEvenResult is the outcome of a break-even analysis.
// Units and Revenue are rounded to two decimals.
type BreakEvenResult struct {
	Input   BreakEvenInput
	Units   float64
	Revenue float64
}

// CurvePoint is one sample of the cost/revenue curve.
type CurvePoint struct {
	Units        float64
	TotalCost    float64
	TotalRevenue float64
}
