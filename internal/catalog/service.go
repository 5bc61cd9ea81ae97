package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/modaline/storefront-backend/internal/pricing"
	"github.com/modaline/storefront-backend/pkg/db/models"
	pkgerrors "github.com/modaline/storefront-backend/pkg/errors"
	"github.com/modaline/storefront-backend/pkg/types"
)

// Service exposes catalog reads and price previews.
type Service interface {
	GetVariantByID(ctx context.Context, id uuid.UUID) (*models.ProductVariant, error)
	PricePreview(ctx context.Context, input PricePreviewInput) (*PricePreviewResult, error)
}

// PricePreviewInput addresses one size and the countries to quote it for.
type PricePreviewInput struct {
	VariantID     uuid.UUID
	StyleIndex    int
	SizeLabel     string
	Countries     []string
	CountryGroups types.CountryGroups
}

// PricePreviewResult is the per-country quote map for the addressed size.
type PricePreviewResult struct {
	VariantID  uuid.UUID                `json:"productId"`
	StyleIndex int                      `json:"styleIndex"`
	SizeLabel  string                   `json:"sizeLabel"`
	Quotes     map[string]pricing.Quote `json:"quotes"`
}

type service struct {
	repo VariantRepository
}

// NewService builds a catalog service backed by the provided repository.
func NewService(repo VariantRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("variant repository required")
	}
	return &service{repo: repo}, nil
}

// GetVariantByID returns the active variant or a typed not-found error.
func (s *service) GetVariantByID(ctx context.Context, id uuid.UUID) (*models.ProductVariant, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	variant, err := s.repo.FindVariantByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product variant")
	}
	return variant, nil
}

// PricePreview resolves the addressed size for each requested country.
func (s *service) PricePreview(ctx context.Context, input PricePreviewInput) (*PricePreviewResult, error) {
	if len(input.Countries) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "at least one country is required")
	}

	groups, err := input.CountryGroups.Normalize()
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid country groups")
	}

	variant, err := s.GetVariantByID(ctx, input.VariantID)
	if err != nil {
		return nil, err
	}

	quotes, ok := pricing.ResolveBulk(variant, input.StyleIndex, input.SizeLabel, input.Countries, groups)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "style or size not found on product")
	}

	return &PricePreviewResult{
		VariantID:  variant.ID,
		StyleIndex: input.StyleIndex,
		SizeLabel:  input.SizeLabel,
		Quotes:     quotes,
	}, nil
}
