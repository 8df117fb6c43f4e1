// Package input turns user-edited text fields into numbers for the
// projection engine. Anything that is not a plain finite number is
// rejected here, before it reaches a calculator.
package input

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrParse is the sentinel wrapped by every ParseError.
var ErrParse = errors.New("not a number")

// ParseError reports a field whose text could not be read as a number.
type ParseError struct {
	Field string
	Value string
	Item  int // 1-based list position, 0 for scalar fields
}

func (e *ParseError) Error() string {
	if e.Item > 0 {
		return fmt.Sprintf("%s: item %d %q is not a valid number", e.Field, e.Item, e.Value)
	}
	if e.Value == "" {
		return fmt.Sprintf("%s: a value is required", e.Field)
	}
	return fmt.Sprintf("%s: %q is not a valid number", e.Field, e.Value)
}

// Unwrap lets callers match with errors.Is(err, ErrParse).
func (e *ParseError) Unwrap() error {
	return ErrParse
}

// ParseAmount reads a single numeric field.
func ParseAmount(field, text string) (float64, error) {
	s := strings.TrimSpace(text)
	// Only plain decimal notation; ParseFloat also takes hex floats like 0x1p4.
	if strings.ContainsAny(s, "xX") {
		return 0, &ParseError{Field: field, Value: s}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ParseError{Field: field, Value: s}
	}
	return v, nil
}

// ParseCashFlows reads a comma-separated list of amounts, e.g.
// "3000, 3500, 4000".
func ParseCashFlows(field, text string) ([]float64, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return nil, &ParseError{Field: field}
	}

	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for i, p := range parts {
		v, err := ParseAmount(field, p)
		if err != nil {
			return nil, &ParseError{Field: field, Value: strings.TrimSpace(p), Item: i + 1}
		}
		out = append(out, v)
	}
	return out, nil
}

// FormatCashFlows is the inverse of ParseCashFlows, used to prefill fields.
func FormatCashFlows(flows []float64) string {
	parts := make([]string, len(flows))
	for i, f := range flows {
		parts[i] = strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strings.Join(parts, ", ")
}
