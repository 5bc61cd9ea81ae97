package types

import "github.com/shopspring/decimal"

// Money is kept at native decimal precision while prices are resolved.
// Rounding to 2 places happens only at line-total and aggregate boundaries so
// repeated resolutions do not compound rounding error.

// Round2 rounds a monetary amount to 2 decimal places (half away from zero).
func Round2(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}

// Hundred is the divisor used when applying percentage discounts.
var Hundred = decimal.NewFromInt(100)
