package catalog

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/modaline/storefront-backend/pkg/db/models"
)

// VariantRepository exposes the catalog read surface used by pricing and cart
// reconciliation.
type VariantRepository interface {
	FindVariantByID(ctx context.Context, id uuid.UUID) (*models.ProductVariant, error)
}

// Repository loads product variants with their style/size tree.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	if tx == nil {
		return r
	}
	return &Repository{db: tx}
}

// FindVariantByID loads an active variant with styles and sizes ordered by
// position, so style indexes submitted by clients line up deterministically.
func (r *Repository) FindVariantByID(ctx context.Context, id uuid.UUID) (*models.ProductVariant, error) {
	var variant models.ProductVariant
	err := r.db.WithContext(ctx).
		Preload("Styles", func(db *gorm.DB) *gorm.DB {
			return db.Order("product_styles.position ASC")
		}).
		Preload("Styles.Sizes", func(db *gorm.DB) *gorm.DB {
			return db.Order("product_sizes.position ASC")
		}).
		Where("id = ? AND is_active = ?", id, true).
		First(&variant).Error
	if err != nil {
		return nil, err
	}
	return &variant, nil
}
