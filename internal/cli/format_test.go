package cli

import "testing"

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		symbol string
		in     float64
		want   string
	}{
		{"£", 0, "£0.00"},
		{"£", 2500, "£2,500.00"},
		{"£", -7500, "-£7,500.00"},
		{"$", 1234567.891, "$1,234,567.89"},
		{"£", 8333.333, "£8,333.33"},
		{"£", 0.005, "£0.01"},
		{"€", -0.004, "€0.00"},
	}
	for _, tt := range tests {
		if got := FormatCurrency(tt.symbol, tt.in); got != tt.want {
			t.Errorf("FormatCurrency(%q, %v) = %q, want %q", tt.symbol, tt.in, got, tt.want)
		}
	}
}

func TestRoundCents(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{1.235, 1.24},
		{1.234, 1.23},
		{-1.235, -1.24},
		{166.6666, 166.67},
	}
	for _, tt := range tests {
		if got := RoundCents(tt.in); got != tt.want {
			t.Errorf("RoundCents(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFormatPayback(t *testing.T) {
	tests := []struct {
		years, months int
		want          string
	}{
		{4, 0, "4 years and 0 months"},
		{1, 1, "1 year and 1 month"},
		{3, 4, "3 years and 4 months"},
	}
	for _, tt := range tests {
		if got := FormatPayback(tt.years, tt.months); got != tt.want {
			t.Errorf("FormatPayback(%d, %d) = %q, want %q", tt.years, tt.months, got, tt.want)
		}
	}
}

func TestFormatFactorAndRatio(t *testing.T) {
	if got := FormatFactor(0.7513148009); got != "0.7513" {
		t.Errorf("FormatFactor = %q, want 0.7513", got)
	}
	if got := FormatRatio(1.480326); got != "1.48" {
		t.Errorf("FormatRatio = %q, want 1.48", got)
	}
	if got := FormatPercent(10); got != "10.00%" {
		t.Errorf("FormatPercent = %q, want 10.00%%", got)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-4500, "-4,500"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
