package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/modaline/storefront-backend/pkg/db/models"
	pkgerrors "github.com/modaline/storefront-backend/pkg/errors"
	"github.com/modaline/storefront-backend/pkg/types"
)

type stubVariantRepo struct {
	variant *models.ProductVariant
	err     error
}

func (s *stubVariantRepo) FindVariantByID(ctx context.Context, id uuid.UUID) (*models.ProductVariant, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.variant, nil
}

func previewVariant() *models.ProductVariant {
	base := decimal.RequireFromString("100")
	override := decimal.RequireFromString("80")
	return &models.ProductVariant{
		ID:          uuid.New(),
		Name:        "Linen Shirt",
		ShippingFee: decimal.RequireFromString("4"),
		Styles: []models.ProductStyle{
			{
				Position: 0,
				Sizes: []models.ProductSize{
					{
						Position:  0,
						Label:     "M",
						StockQty:  5,
						BasePrice: base,
						CountryOverrides: types.CountryOverrides{
							{Country: "EG", Price: override},
						},
					},
				},
			},
		},
	}
}

func TestPricePreview(t *testing.T) {
	t.Parallel()

	variant := previewVariant()
	svc, err := NewService(&stubVariantRepo{variant: variant})
	if err != nil {
		t.Fatalf("building service: %v", err)
	}

	result, err := svc.PricePreview(context.Background(), PricePreviewInput{
		VariantID:  variant.ID,
		StyleIndex: 0,
		SizeLabel:  "M",
		Countries:  []string{"EG", "US"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Quotes) != 2 {
		t.Fatalf("expected 2 quotes, got %d", len(result.Quotes))
	}
	if !result.Quotes["EG"].BasePrice.Equal(decimal.RequireFromString("80")) {
		t.Fatalf("unexpected EG base: %s", result.Quotes["EG"].BasePrice)
	}
}

func TestPricePreviewUnknownSize(t *testing.T) {
	t.Parallel()

	svc, err := NewService(&stubVariantRepo{variant: previewVariant()})
	if err != nil {
		t.Fatalf("building service: %v", err)
	}

	_, err = svc.PricePreview(context.Background(), PricePreviewInput{
		VariantID:  uuid.New(),
		StyleIndex: 0,
		SizeLabel:  "XXL",
		Countries:  []string{"US"},
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPricePreviewRequiresCountries(t *testing.T) {
	t.Parallel()

	svc, err := NewService(&stubVariantRepo{variant: previewVariant()})
	if err != nil {
		t.Fatalf("building service: %v", err)
	}

	_, err = svc.PricePreview(context.Background(), PricePreviewInput{VariantID: uuid.New(), SizeLabel: "M"})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGetVariantNotFound(t *testing.T) {
	t.Parallel()

	svc, err := NewService(&stubVariantRepo{err: gorm.ErrRecordNotFound})
	if err != nil {
		t.Fatalf("building service: %v", err)
	}

	_, err = svc.GetVariantByID(context.Background(), uuid.New())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("unexpected error: %v", err)
	}
}
