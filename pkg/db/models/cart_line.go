package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartLine is a price-snapshotted line tied to a CartRecord. Only lines that
// survived reconciliation with a positive quantity and unit price are
// persisted; dropped lines are reported to the caller but never stored.
type CartLine struct {
	ID           uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	CartID       uuid.UUID       `gorm:"column:cart_id;type:uuid;not null"`
	ProductID    uuid.UUID       `gorm:"column:product_id;type:uuid;not null"`
	StyleIndex   int             `gorm:"column:style_index;not null"`
	SizeLabel    string          `gorm:"column:size_label;not null"`
	Qty          int             `gorm:"column:qty;not null"`
	UnitPrice    decimal.Decimal `gorm:"column:unit_price;type:numeric(12,2);not null"`
	UnitShipping decimal.Decimal `gorm:"column:unit_shipping;type:numeric(12,2);not null;default:0"`
	LineTotal    decimal.Decimal `gorm:"column:line_total;type:numeric(12,2);not null"`
	LineShipping decimal.Decimal `gorm:"column:line_shipping;type:numeric(12,2);not null;default:0"`
	Name         string          `gorm:"column:name"`
	Image        *string         `gorm:"column:image"`
	CreatedAt    time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
