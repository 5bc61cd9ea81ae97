package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartRecord is the single persisted cart per user. Every successful sync
// fully replaces the record's lines and totals; nothing is ever merged in.
// Order creation reads this record verbatim and does not re-run pricing, so
// the persisted total must always equal the aggregate of the persisted lines.
type CartRecord struct {
	ID        uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID    uuid.UUID       `gorm:"column:user_id;type:uuid;not null;uniqueIndex"`
	Subtotal  decimal.Decimal `gorm:"column:subtotal;type:numeric(12,2);not null;default:0"`
	Shipping  decimal.Decimal `gorm:"column:shipping;type:numeric(12,2);not null;default:0"`
	Total     decimal.Decimal `gorm:"column:total;type:numeric(12,2);not null;default:0"`
	Lines     []CartLine      `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
