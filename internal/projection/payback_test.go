package projection

import (
	"errors"
	"testing"
)

func TestPayback_ExactYears(t *testing.T) {
	res, err := Payback(PaybackInput{InitialInvestment: 10000, AnnualBenefit: 2500})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Recovered {
		t.Fatal("Recovered = false, want true")
	}
	if res.Years != 4 || res.Months != 0 {
		t.Errorf("payback = %dy %dm, want 4y 0m", res.Years, res.Months)
	}

	want := []float64{-7500, -5000, -2500, 0}
	if len(res.Rows) != len(want) {
		t.Fatalf("len(Rows) = %d, want %d", len(res.Rows), len(want))
	}
	for i, row := range res.Rows {
		if row.Year != i+1 {
			t.Errorf("Rows[%d].Year = %d, want %d", i, row.Year, i+1)
		}
		if row.CashFlow != 2500 {
			t.Errorf("Rows[%d].CashFlow = %.2f, want 2500", i, row.CashFlow)
		}
		if row.Cumulative != want[i] {
			t.Errorf("Rows[%d].Cumulative = %.2f, want %.2f", i, row.Cumulative, want[i])
		}
	}
}

func TestPayback_FractionalYear(t *testing.T) {
	// 10000 / 3000 = 3.333 years -> 3 years 4 months
	res, err := Payback(PaybackInput{InitialInvestment: 10000, AnnualBenefit: 3000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Years != 3 || res.Months != 4 {
		t.Errorf("payback = %dy %dm, want 3y 4m", res.Years, res.Months)
	}
	if len(res.Rows) != 4 {
		t.Errorf("len(Rows) = %d, want 4", len(res.Rows))
	}
	if got := res.Rows[3].Cumulative; got != 2000 {
		t.Errorf("final cumulative = %.2f, want 2000", got)
	}
}

func TestPayback_MonthRollover(t *testing.T) {
	// 0.99 of a year rounds to 12 months and must roll into the next year.
	res, err := Payback(PaybackInput{InitialInvestment: 990, AnnualBenefit: 1000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Years != 1 || res.Months != 0 {
		t.Errorf("payback = %dy %dm, want 1y 0m", res.Years, res.Months)
	}
	if res.Months > 11 {
		t.Errorf("Months = %d, must stay within 0-11", res.Months)
	}
}

func TestPayback_StopsAtCentLevelRecovery(t *testing.T) {
	// Ten additions of 0.1 sum to just under 1.0 in float64.
	res, err := Payback(PaybackInput{InitialInvestment: 1, AnnualBenefit: 0.1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Rows) != 10 {
		t.Fatalf("got %d rows, want 10", len(res.Rows))
	}
	if !res.Recovered || res.Years != 10 || res.Months != 0 {
		t.Errorf("payback = %dy %dm (recovered=%v), want 10y 0m", res.Years, res.Months, res.Recovered)
	}
	if got := Round2(res.Rows[9].Cumulative); got != 0 {
		t.Errorf("final cumulative = %.2f, want 0.00", got)
	}
}

func TestPayback_NotRecoveredWithinHorizon(t *testing.T) {
	res, err := Payback(PaybackInput{InitialInvestment: 1_000_000, AnnualBenefit: 1000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Recovered {
		t.Fatal("Recovered = true, want false")
	}
	if len(res.Rows) != DefaultMaxYears {
		t.Errorf("len(Rows) = %d, want %d", len(res.Rows), DefaultMaxYears)
	}
	if res.Years != 0 || res.Months != 0 {
		t.Errorf("payback = %dy %dm, want zero values", res.Years, res.Months)
	}
}

func TestPayback_CustomHorizon(t *testing.T) {
	res, err := Payback(PaybackInput{InitialInvestment: 10000, AnnualBenefit: 2500, MaxYears: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Recovered {
		t.Fatal("Recovered = true with a 3 year horizon, want false")
	}
	if len(res.Rows) != 3 {
		t.Errorf("len(Rows) = %d, want 3", len(res.Rows))
	}
}

func TestPayback_CumulativeNonDecreasing(t *testing.T) {
	inputs := []PaybackInput{
		{InitialInvestment: 10000, AnnualBenefit: 2500},
		{InitialInvestment: 123456.78, AnnualBenefit: 987.65},
		{InitialInvestment: 1, AnnualBenefit: 0.01},
		{InitialInvestment: 50, AnnualBenefit: 5000},
	}
	for _, in := range inputs {
		res, err := Payback(in)
		if err != nil {
			t.Fatalf("Payback(%+v): %v", in, err)
		}
		for i := 1; i < len(res.Rows); i++ {
			if res.Rows[i].Cumulative < res.Rows[i-1].Cumulative {
				t.Fatalf("Payback(%+v): cumulative decreased at year %d", in, res.Rows[i].Year)
			}
		}
	}
}

func TestPayback_Validation(t *testing.T) {
	tests := []struct {
		name string
		in   PaybackInput
	}{
		{"zero investment", PaybackInput{InitialInvestment: 0, AnnualBenefit: 100}},
		{"negative investment", PaybackInput{InitialInvestment: -5, AnnualBenefit: 100}},
		{"zero benefit", PaybackInput{InitialInvestment: 100, AnnualBenefit: 0}},
		{"negative benefit", PaybackInput{InitialInvestment: 100, AnnualBenefit: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Payback(tt.in)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("err = %v, want ErrValidation", err)
			}
			var ve *ValidationError
			if !errors.As(err, &ve) || ve.Field == "" {
				t.Fatalf("err = %v, want *ValidationError with a field", err)
			}
		})
	}
}
