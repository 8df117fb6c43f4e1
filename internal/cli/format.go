// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// RoundCents rounds a currency amount to cents, half away from zero.
func RoundCents(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// FormatCurrency formats an amount with grouped thousands and two decimals.
// e.g., ("£", -7500) -> "-£7,500.00"
func FormatCurrency(symbol string, v float64) string {
	v = RoundCents(v)
	if v < 0 {
		return "-" + symbol + printer.Sprintf("%.2f", -v)
	}
	return symbol + printer.Sprintf("%.2f", v)
}

// FormatAmount formats a plain number with grouped thousands and two decimals.
func FormatAmount(v float64) string {
	return printer.Sprintf("%.2f", RoundCents(v))
}

// FormatFactor formats a discount factor to four decimals.
func FormatFactor(f float64) string {
	return strconv.FormatFloat(f, 'f', 4, 64)
}

// FormatRatio formats a benefit-cost ratio.
func FormatRatio(r float64) string {
	return strconv.FormatFloat(r, 'f', 2, 64)
}

// FormatPercent formats a percentage value (10 -> "10.00%").
func FormatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', 2, 64) + "%"
}

// FormatPayback renders a payback period as years and months.
// e.g., (3, 4) -> "3 years and 4 months"
func FormatPayback(years, months int) string {
	return fmt.Sprintf("%s and %s", plural(years, "year"), plural(months, "month"))
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return strconv.Itoa(n) + " " + unit + "s"
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}
