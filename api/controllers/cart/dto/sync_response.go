package cartdto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SyncCartResponse reports the reconciled state of every submitted line plus
// the aggregate snapshot that was persisted.
type SyncCartResponse struct {
	Lines      []SyncCartResponseLine `json:"lines"`
	Subtotal   decimal.Decimal        `json:"subtotal"`
	Shipping   decimal.Decimal        `json:"shipping"`
	Total      decimal.Decimal        `json:"total"`
	AnyChanged bool                   `json:"anyChanged"`
	Saved      bool                   `json:"saved"`
}

// SyncCartResponseLine mirrors one submitted line after reconciliation.
type SyncCartResponseLine struct {
	ProductID     uuid.UUID       `json:"productId"`
	Style         int             `json:"style"`
	Size          string          `json:"size"`
	Name          string          `json:"name,omitempty"`
	Image         *string         `json:"image,omitempty"`
	RequestedQty  int             `json:"requestedQty"`
	AvailableQty  int             `json:"availableQty"`
	ReconciledQty int             `json:"reconciledQty"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	UnitShipping  decimal.Decimal `json:"unitShipping"`
	LineTotal     decimal.Decimal `json:"lineTotal"`
	LineShipping  decimal.Decimal `json:"lineShipping"`
	Changed       bool            `json:"changed"`
	Reasons       []string        `json:"reasons"`
}
