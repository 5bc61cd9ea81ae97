package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductVariant represents the canonical catalog listing. Pricing and stock
// live on the nested style/size rows; the variant itself only carries the
// flat shipping fee applied per unit regardless of destination.
type ProductVariant struct {
	ID          uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name        string          `gorm:"column:name;not null"`
	ShippingFee decimal.Decimal `gorm:"column:shipping_fee;type:numeric(12,2);not null;default:0"`
	IsActive    bool            `gorm:"column:is_active;not null;default:true"`
	Styles      []ProductStyle  `gorm:"foreignKey:VariantID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
