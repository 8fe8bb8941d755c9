package summary

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceAmount(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		want  string
		null  bool
	}{
		{name: "plain integer", raw: "50000", want: "50000"},
		{name: "decimal point", raw: "1234.56", want: "1234.56"},
		{name: "comma decimal separator", raw: "1234,56", want: "1234.56"},
		{name: "thousands commas", raw: "1,234,567.89", want: "1234567.89"},
		{name: "thousands spaces", raw: "1 234 567", want: "1234567"},
		{name: "surrounding whitespace", raw: "  42  ", want: "42"},
		{name: "negative", raw: "-10.5", want: "-10.5"},
		{name: "zero", raw: "0", want: "0"},
		{name: "empty", raw: "", null: true},
		{name: "blank", raw: "   ", null: true},
		{name: "text", raw: "n/a", null: true},
		{name: "stray currency sign", raw: "€5000", null: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CoerceAmount(tt.raw)
			if tt.null {
				assert.False(t, got.Valid)
				return
			}
			require.True(t, got.Valid)
			want, err := decimal.NewFromString(tt.want)
			require.NoError(t, err)
			assert.True(t, want.Equal(got.Decimal), "want %s, got %s", want, got.Decimal)
		})
	}
}

func TestIsFunded(t *testing.T) {
	assert.True(t, isFunded(CoerceAmount("1")))
	assert.False(t, isFunded(CoerceAmount("0")))
	assert.False(t, isFunded(CoerceAmount("-5")))
	assert.False(t, isFunded(decimal.NullDecimal{}))
}

func TestAmountOrZero(t *testing.T) {
	assert.True(t, amountOrZero(decimal.NullDecimal{}).IsZero())
	assert.Equal(t, "7", amountOrZero(CoerceAmount("7")).String())
}
