package input

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"integer", "10000", 10000},
		{"decimal", "2500.50", 2500.5},
		{"padded", "  42 ", 42},
		{"negative", "-100", -100},
		{"exponent", "1e3", 1000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount("amount", tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAmount_Rejects(t *testing.T) {
	for _, text := range []string{"", "   ", "abc", "10,000", "£100", "NaN", "Inf", "1.2.3", "0x1p4", "-0X10p0"} {
		_, err := ParseAmount("initial investment", text)
		require.Error(t, err, "text %q", text)
		assert.True(t, errors.Is(err, ErrParse), "text %q: %v", text, err)

		var pe *ParseError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, "initial investment", pe.Field)
	}
}

func TestParseCashFlows(t *testing.T) {
	got, err := ParseCashFlows("cash flows", "3000, 3500,4000 ,  4500, 5000")
	require.NoError(t, err)
	assert.Equal(t, []float64{3000, 3500, 4000, 4500, 5000}, got)

	single, err := ParseCashFlows("cash flows", "750")
	require.NoError(t, err)
	assert.Equal(t, []float64{750}, single)
}

func TestParseCashFlows_ReportsItem(t *testing.T) {
	_, err := ParseCashFlows("cash flows", "3000, x, 4000")
	require.Error(t, err)

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 2, pe.Item)
	assert.Equal(t, "x", pe.Value)
	assert.Contains(t, err.Error(), "item 2")
}

func TestParseCashFlows_EmptyItems(t *testing.T) {
	for _, text := range []string{"", "1,,2", "1,2,"} {
		_, err := ParseCashFlows("cash flows", text)
		assert.ErrorIs(t, err, ErrParse, "text %q", text)
	}
}

func TestFormatCashFlows(t *testing.T) {
	assert.Equal(t, "3000, 3500.5, -20", FormatCashFlows([]float64{3000, 3500.5, -20}))
	flows, err := ParseCashFlows("cash flows", FormatCashFlows([]float64{1.25, 2}))
	require.NoError(t, err)
	assert.Equal(t, []float64{1.25, 2}, flows)
}
