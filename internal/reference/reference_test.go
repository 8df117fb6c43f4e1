package reference

import (
	"strings"
	"testing"
)

func TestSteps(t *testing.T) {
	s := Steps()
	if len(s) != 10 {
		t.Fatalf("len(Steps) = %d, want 10", len(s))
	}
	if s[0].Title != "Define Scope" {
		t.Errorf("first step = %q, want Define Scope", s[0].Title)
	}
	if s[9].Title != "Monitor Post-Decision" {
		t.Errorf("last step = %q, want Monitor Post-Decision", s[9].Title)
	}

	s[0].Title = "mutated"
	if Steps()[0].Title != "Define Scope" {
		t.Error("Steps() returned shared backing storage")
	}
}

func TestComparison(t *testing.T) {
	c := Comparison()
	if len(c.Headers) != 3 {
		t.Fatalf("len(Headers) = %d, want 3", len(c.Headers))
	}
	if len(c.Rows) != 6 {
		t.Fatalf("len(Rows) = %d, want 6", len(c.Rows))
	}
	for i, r := range c.Rows {
		if len(r) != len(c.Headers) {
			t.Errorf("row %d has %d cells, want %d", i, len(r), len(c.Headers))
		}
	}

	c.Rows[0][0] = "mutated"
	if Comparison().Rows[0][0] != "Definition:" {
		t.Error("Comparison() returned shared rows")
	}
}

func TestPlainText(t *testing.T) {
	text := PlainText()
	for _, want := range []string{
		"1. Define Scope: Clarify procurement",
		"   - Direct Costs: Purchase price",
		"10. Monitor Post-Decision",
		"Key Differences between BCR and Net Profit",
		"PV of Benefits / PV of Costs",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("PlainText missing %q", want)
		}
	}
	if strings.HasSuffix(text, "\n") {
		t.Error("PlainText should not end with a newline")
	}
}
