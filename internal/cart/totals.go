package cart

import (
	"github.com/shopspring/decimal"

	"github.com/modaline/storefront-backend/pkg/types"
)

// Totals is the aggregate snapshot over a set of reconciled lines.
type Totals struct {
	Subtotal   decimal.Decimal `json:"subtotal"`
	Shipping   decimal.Decimal `json:"shipping"`
	Total      decimal.Decimal `json:"total"`
	AnyChanged bool            `json:"anyChanged"`
}

// aggregate sums per-line totals into the cart snapshot. Line totals are
// already rounded to 2 places per line; the sums are rounded again so the
// ordering (round per line, then sum, then round) stays reproducible.
func aggregate(lines []ReconciledLine) Totals {
	subtotal := decimal.Zero
	shipping := decimal.Zero
	anyChanged := false

	for _, line := range lines {
		subtotal = subtotal.Add(line.LineTotal)
		shipping = shipping.Add(line.LineShipping)
		anyChanged = anyChanged || line.Changed
	}

	subtotal = types.Round2(subtotal)
	shipping = types.Round2(shipping)

	return Totals{
		Subtotal:   subtotal,
		Shipping:   shipping,
		Total:      types.Round2(subtotal.Add(shipping)),
		AnyChanged: anyChanged,
	}
}
