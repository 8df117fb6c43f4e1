package projection

import (
	"errors"
	"testing"
)

func TestBreakEven_Reference(t *testing.T) {
	res, err := BreakEven(BreakEvenInput{FixedCosts: 5000, VariableCost: 20, SalesPrice: 50})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Units != 166.67 {
		t.Errorf("Units = %.4f, want 166.67", res.Units)
	}
	if res.Revenue != 8333.33 {
		t.Errorf("Revenue = %.4f, want 8333.33", res.Revenue)
	}
}

func TestBreakEven_ZeroFixedCosts(t *testing.T) {
	res, err := BreakEven(BreakEvenInput{FixedCosts: 0, VariableCost: 0, SalesPrice: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Units != 0 || res.Revenue != 0 {
		t.Errorf("got %.2f units / %.2f revenue, want zeros", res.Units, res.Revenue)
	}
	if pts := res.Curve(10); len(pts) != 1 {
		t.Errorf("len(Curve) = %d, want 1 for a zero break-even volume", len(pts))
	}
}

func TestBreakEven_RejectsPriceNotAboveVariableCost(t *testing.T) {
	for _, price := range []float64{20, 19.99, 0} {
		_, err := BreakEven(BreakEvenInput{FixedCosts: 5000, VariableCost: 20, SalesPrice: price})
		if !errors.Is(err, ErrValidation) {
			t.Errorf("price %.2f: err = %v, want ErrValidation", price, err)
		}
	}
}

func TestBreakEven_RejectsNegativeCosts(t *testing.T) {
	if _, err := BreakEven(BreakEvenInput{FixedCosts: -1, VariableCost: 20, SalesPrice: 50}); !errors.Is(err, ErrValidation) {
		t.Errorf("negative fixed costs: err = %v, want ErrValidation", err)
	}
	if _, err := BreakEven(BreakEvenInput{FixedCosts: 1, VariableCost: -20, SalesPrice: 50}); !errors.Is(err, ErrValidation) {
		t.Errorf("negative variable cost: err = %v, want ErrValidation", err)
	}
}

func TestBreakEvenCurve(t *testing.T) {
	res, err := BreakEven(BreakEvenInput{FixedCosts: 5000, VariableCost: 20, SalesPrice: 50})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pts := res.Curve(11)
	if len(pts) != 11 {
		t.Fatalf("len(Curve) = %d, want 11", len(pts))
	}
	first, last := pts[0], pts[len(pts)-1]
	if first.Units != 0 || first.TotalCost != 5000 || first.TotalRevenue != 0 {
		t.Errorf("first point = %+v, want {0 5000 0}", first)
	}
	if last.Units != res.Units*1.5 {
		t.Errorf("last units = %.4f, want %.4f", last.Units, res.Units*1.5)
	}
	if last.TotalRevenue <= last.TotalCost {
		t.Errorf("revenue %.2f should exceed cost %.2f past break-even", last.TotalRevenue, last.TotalCost)
	}
	for i := 1; i < len(pts); i++ {
		if pts[i].Units <= pts[i-1].Units {
			t.Fatalf("curve units not increasing at %d", i)
		}
	}

	if got := len(res.Curve(0)); got != 2 {
		t.Errorf("len(Curve(0)) = %d, want clamp to 2", got)
	}
}
