package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// ProductStyle is one color/style option of a variant. Styles are addressed
// by their zero-based Position, which is what clients submit as the style
// index on cart lines.
type ProductStyle struct {
	ID          uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	VariantID   uuid.UUID       `gorm:"column:variant_id;type:uuid;not null"`
	Position    int             `gorm:"column:position;not null"`
	Name        string          `gorm:"column:name"`
	Images      pq.StringArray  `gorm:"column:images;type:text[]"`
	DiscountPct decimal.Decimal `gorm:"column:discount_pct;type:numeric(5,2);not null;default:0"`
	Sizes       []ProductSize   `gorm:"foreignKey:StyleID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

// FirstImage returns the style's lead image when one exists.
func (s ProductStyle) FirstImage() *string {
	if len(s.Images) == 0 {
		return nil
	}
	img := s.Images[0]
	return &img
}
