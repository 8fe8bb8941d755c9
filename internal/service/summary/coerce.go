package summary

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CoerceAmount turns a raw monetary cell into numeric-or-null. Anything that
// does not parse as a number becomes null; this never errors, and nulls
// propagate through the sums downstream as zero while staying excluded from
// the funded (>0) counters.
func CoerceAmount(raw string) decimal.NullDecimal {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.NullDecimal{}
	}

	// Some dump vintages carry comma decimal separators and thousands spaces.
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.ReplaceAll(s, ",", ".")
	} else {
		s = strings.ReplaceAll(s, ",", "")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}
	}

	return decimal.NullDecimal{Decimal: d, Valid: true}
}

// amountOrZero is the summation view of a nullable amount.
func amountOrZero(a decimal.NullDecimal) decimal.Decimal {
	if !a.Valid {
		return decimal.Zero
	}
	return a.Decimal
}

// isFunded reports a strictly positive contribution. Null is not funded.
func isFunded(a decimal.NullDecimal) bool {
	return a.Valid && a.Decimal.IsPositive()
}
