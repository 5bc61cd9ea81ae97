package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/modaline/storefront-backend/pkg/types"
)

// ProductSize is a purchasable unit nested under a style: a label plus stock
// and regional pricing. DiscountPct is nullable on purpose: an explicit 0
// overrides the style-level discount, while NULL means "inherit".
type ProductSize struct {
	ID               uuid.UUID              `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	StyleID          uuid.UUID              `gorm:"column:style_id;type:uuid;not null"`
	Position         int                    `gorm:"column:position;not null"`
	Label            string                 `gorm:"column:label;not null"`
	StockQty         int                    `gorm:"column:stock_qty;not null;default:0"`
	BasePrice        decimal.Decimal        `gorm:"column:base_price;type:numeric(12,2);not null"`
	DiscountPct      *decimal.Decimal       `gorm:"column:discount_pct;type:numeric(5,2)"`
	CountryOverrides types.CountryOverrides `gorm:"column:country_overrides;type:jsonb"`
	GroupOverrides   types.GroupOverrides   `gorm:"column:group_overrides;type:jsonb"`
	CreatedAt        time.Time              `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time              `gorm:"column:updated_at;autoUpdateTime"`
}
