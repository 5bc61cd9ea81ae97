package cart

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/modaline/storefront-backend/internal/pricing"
	"github.com/modaline/storefront-backend/pkg/db/models"
	"github.com/modaline/storefront-backend/pkg/enums"
	pkgerrors "github.com/modaline/storefront-backend/pkg/errors"
	"github.com/modaline/storefront-backend/pkg/types"
)

// ReconciledLine is the authoritative result for one submitted line. Reason
// codes explain every deviation from the request; a line with no reasons was
// accepted exactly as submitted.
type ReconciledLine struct {
	ProductID     uuid.UUID              `json:"productId"`
	StyleIndex    int                    `json:"styleIndex"`
	SizeLabel     string                 `json:"sizeLabel"`
	Name          string                 `json:"name"`
	Image         *string                `json:"image,omitempty"`
	RequestedQty  int                    `json:"requestedQty"`
	AvailableQty  int                    `json:"availableQty"`
	ReconciledQty int                    `json:"reconciledQty"`
	UnitPrice     decimal.Decimal        `json:"unitPrice"`
	UnitShipping  decimal.Decimal        `json:"unitShipping"`
	LineTotal     decimal.Decimal        `json:"lineTotal"`
	LineShipping  decimal.Decimal        `json:"lineShipping"`
	Changed       bool                   `json:"changed"`
	Reasons       []enums.CartLineReason `json:"reasons"`
}

// variantLoader is the catalog read surface the reconciler depends on.
type variantLoader interface {
	FindVariantByID(ctx context.Context, id uuid.UUID) (*models.ProductVariant, error)
}

// variantCache memoizes catalog lookups for the duration of one sync call so
// repeated lines against the same product hit the store once. Not-found is
// cached too; any other catalog failure aborts the whole call.
type variantCache struct {
	loader  variantLoader
	entries map[uuid.UUID]*models.ProductVariant
}

func newVariantCache(loader variantLoader) *variantCache {
	return &variantCache{
		loader:  loader,
		entries: map[uuid.UUID]*models.ProductVariant{},
	}
}

func (c *variantCache) find(ctx context.Context, id uuid.UUID) (*models.ProductVariant, error) {
	if variant, ok := c.entries[id]; ok {
		return variant, nil
	}
	variant, err := c.loader.FindVariantByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.entries[id] = nil
			return nil, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product variant")
	}
	c.entries[id] = variant
	return variant, nil
}

// reconcileLine drives one normalized line through the catalog and the price
// resolver. Every business-level failure terminates into a zero-quantity
// result with reason codes; only catalog transport failures return an error.
func reconcileLine(ctx context.Context, catalog *variantCache, line normalizedLine, country string, groups types.CountryGroups) (ReconciledLine, error) {
	result := ReconciledLine{
		ProductID:    line.ProductID,
		StyleIndex:   line.StyleIndex,
		SizeLabel:    line.SizeLabel,
		RequestedQty: line.RequestedQty,
		UnitPrice:    decimal.Zero,
		UnitShipping: decimal.Zero,
		LineTotal:    decimal.Zero,
		LineShipping: decimal.Zero,
	}

	if line.Invalid {
		return terminal(result, enums.CartLineReasonStructureFixed), nil
	}

	variant, err := catalog.find(ctx, line.ProductID)
	if err != nil {
		return ReconciledLine{}, err
	}
	if variant == nil {
		return terminal(result, enums.CartLineReasonMissing), nil
	}

	result.Name = variant.Name
	style := styleAt(variant, line.StyleIndex)
	if style != nil {
		result.Image = style.FirstImage()
	}

	size := sizeAt(style, line.SizeLabel)
	if size == nil {
		return terminal(result, enums.CartLineReasonMissing, enums.CartLineReasonOOS), nil
	}

	result.AvailableQty = size.StockQty
	if result.AvailableQty < 0 {
		result.AvailableQty = 0
	}

	quote, ok := pricing.Resolve(variant, line.StyleIndex, line.SizeLabel, country, groups)
	if !ok || !quote.UnitPrice.IsPositive() {
		return terminal(result, enums.CartLineReasonNoPrice), nil
	}

	result.UnitPrice = quote.UnitPrice
	result.UnitShipping = quote.Shipping

	result.ReconciledQty = line.RequestedQty
	if result.ReconciledQty > result.AvailableQty {
		result.ReconciledQty = result.AvailableQty
	}

	switch {
	case result.ReconciledQty == 0 && result.AvailableQty == 0:
		result.Reasons = append(result.Reasons, enums.CartLineReasonOOS)
	case result.ReconciledQty < line.RequestedQty:
		result.Reasons = append(result.Reasons, enums.CartLineReasonQtyAdjusted)
	}

	qty := decimal.NewFromInt(int64(result.ReconciledQty))
	result.LineTotal = types.Round2(result.UnitPrice.Mul(qty))
	result.LineShipping = types.Round2(result.UnitShipping.Mul(qty))
	result.Changed = len(result.Reasons) > 0
	return result, nil
}

func terminal(result ReconciledLine, reasons ...enums.CartLineReason) ReconciledLine {
	result.ReconciledQty = 0
	result.Reasons = append(result.Reasons, reasons...)
	result.Changed = true
	result.LineTotal = decimal.Zero
	result.LineShipping = decimal.Zero
	return result
}

func styleAt(variant *models.ProductVariant, styleIndex int) *models.ProductStyle {
	if variant == nil || styleIndex < 0 {
		return nil
	}
	for i := range variant.Styles {
		if variant.Styles[i].Position == styleIndex {
			return &variant.Styles[i]
		}
	}
	return nil
}

func sizeAt(style *models.ProductStyle, sizeLabel string) *models.ProductSize {
	if style == nil {
		return nil
	}
	for i := range style.Sizes {
		if strings.TrimSpace(style.Sizes[i].Label) == sizeLabel {
			return &style.Sizes[i]
		}
	}
	return nil
}
