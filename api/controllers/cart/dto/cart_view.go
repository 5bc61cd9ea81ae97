package cartdto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartView is the persisted cart as consumed by order creation: the lines
// and totals are read verbatim, with no re-pricing.
type CartView struct {
	ID        uuid.UUID       `json:"id"`
	Lines     []CartViewLine  `json:"lines"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Shipping  decimal.Decimal `json:"shipping"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// CartViewLine is one persisted, price-snapshotted line.
type CartViewLine struct {
	ProductID    uuid.UUID       `json:"productId"`
	Style        int             `json:"style"`
	Size         string          `json:"size"`
	Name         string          `json:"name,omitempty"`
	Image        *string         `json:"image,omitempty"`
	Qty          int             `json:"qty"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	UnitShipping decimal.Decimal `json:"unitShipping"`
	LineTotal    decimal.Decimal `json:"lineTotal"`
	LineShipping decimal.Decimal `json:"lineShipping"`
}
