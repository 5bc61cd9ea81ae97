package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/modaline/storefront-backend/pkg/db/models"
	"github.com/modaline/storefront-backend/pkg/enums"
	pkgerrors "github.com/modaline/storefront-backend/pkg/errors"
)

func d(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

type stubVariantLoader struct {
	variants map[uuid.UUID]*models.ProductVariant
	err      error
	calls    int
}

func (s *stubVariantLoader) FindVariantByID(ctx context.Context, id uuid.UUID) (*models.ProductVariant, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	if variant, ok := s.variants[id]; ok {
		return variant, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func knitVariant(id uuid.UUID) *models.ProductVariant {
	img := "https://cdn.modaline.app/knit-charcoal.jpg"
	return &models.ProductVariant{
		ID:          id,
		Name:        "Rib Knit Sweater",
		ShippingFee: d("5"),
		IsActive:    true,
		Styles: []models.ProductStyle{
			{
				Position: 0,
				Name:     "Charcoal",
				Images:   []string{img},
				Sizes: []models.ProductSize{
					{Position: 0, Label: "M", StockQty: 2, BasePrice: d("100")},
					{Position: 1, Label: "L", StockQty: 0, BasePrice: d("100")},
					{Position: 2, Label: "XL", StockQty: 5, BasePrice: d("0")},
				},
			},
		},
	}
}

func reconcileOne(t *testing.T, loader *stubVariantLoader, line normalizedLine) ReconciledLine {
	t.Helper()
	result, err := reconcileLine(context.Background(), newVariantCache(loader), line, "US", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return result
}

func TestReconcileStructurallyInvalid(t *testing.T) {
	t.Parallel()

	loader := &stubVariantLoader{}
	result := reconcileOne(t, loader, normalizedLine{Invalid: true, RequestedQty: 3})

	if result.ReconciledQty != 0 || !result.Changed {
		t.Fatalf("expected zero-qty changed line, got %+v", result)
	}
	if len(result.Reasons) != 1 || result.Reasons[0] != enums.CartLineReasonStructureFixed {
		t.Fatalf("unexpected reasons: %v", result.Reasons)
	}
	if loader.calls != 0 {
		t.Fatalf("expected no catalog lookup for invalid line, got %d", loader.calls)
	}
}

func TestReconcileMissingProduct(t *testing.T) {
	t.Parallel()

	loader := &stubVariantLoader{}
	result := reconcileOne(t, loader, normalizedLine{ProductID: uuid.New(), SizeLabel: "M", RequestedQty: 1})

	if len(result.Reasons) != 1 || result.Reasons[0] != enums.CartLineReasonMissing {
		t.Fatalf("unexpected reasons: %v", result.Reasons)
	}
	if result.ReconciledQty != 0 {
		t.Fatalf("expected zero qty, got %d", result.ReconciledQty)
	}
}

func TestReconcileMissingSizeKeepsProductMetadata(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	loader := &stubVariantLoader{variants: map[uuid.UUID]*models.ProductVariant{id: knitVariant(id)}}
	result := reconcileOne(t, loader, normalizedLine{ProductID: id, SizeLabel: "XXL", RequestedQty: 1})

	want := []enums.CartLineReason{enums.CartLineReasonMissing, enums.CartLineReasonOOS}
	if len(result.Reasons) != 2 || result.Reasons[0] != want[0] || result.Reasons[1] != want[1] {
		t.Fatalf("unexpected reasons: %v", result.Reasons)
	}
	if result.Name != "Rib Knit Sweater" {
		t.Fatalf("expected product name populated, got %q", result.Name)
	}
	if result.Image == nil {
		t.Fatal("expected style image populated")
	}
}

func TestReconcileStyleOutOfRange(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	loader := &stubVariantLoader{variants: map[uuid.UUID]*models.ProductVariant{id: knitVariant(id)}}
	result := reconcileOne(t, loader, normalizedLine{ProductID: id, StyleIndex: 7, SizeLabel: "M", RequestedQty: 1})

	if len(result.Reasons) != 2 || result.Reasons[0] != enums.CartLineReasonMissing {
		t.Fatalf("unexpected reasons: %v", result.Reasons)
	}
	if result.Name != "Rib Knit Sweater" {
		t.Fatalf("expected product name populated, got %q", result.Name)
	}
	if result.Image != nil {
		t.Fatal("expected no image for unknown style")
	}
}

func TestReconcileNoPositivePrice(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	loader := &stubVariantLoader{variants: map[uuid.UUID]*models.ProductVariant{id: knitVariant(id)}}
	result := reconcileOne(t, loader, normalizedLine{ProductID: id, SizeLabel: "XL", RequestedQty: 1})

	if len(result.Reasons) != 1 || result.Reasons[0] != enums.CartLineReasonNoPrice {
		t.Fatalf("unexpected reasons: %v", result.Reasons)
	}
	if result.AvailableQty != 5 {
		t.Fatalf("expected available qty populated, got %d", result.AvailableQty)
	}
	if result.ReconciledQty != 0 {
		t.Fatalf("expected zero qty, got %d", result.ReconciledQty)
	}
}

func TestReconcileQtyClamped(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	loader := &stubVariantLoader{variants: map[uuid.UUID]*models.ProductVariant{id: knitVariant(id)}}
	result := reconcileOne(t, loader, normalizedLine{ProductID: id, SizeLabel: "M", RequestedQty: 5})

	if result.ReconciledQty != 2 {
		t.Fatalf("expected clamp to 2, got %d", result.ReconciledQty)
	}
	if len(result.Reasons) != 1 || result.Reasons[0] != enums.CartLineReasonQtyAdjusted {
		t.Fatalf("unexpected reasons: %v", result.Reasons)
	}
	if !result.LineTotal.Equal(d("200")) {
		t.Fatalf("expected line total 200, got %s", result.LineTotal)
	}
	if !result.LineShipping.Equal(d("10")) {
		t.Fatalf("expected line shipping 10, got %s", result.LineShipping)
	}
}

func TestReconcileOutOfStock(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	loader := &stubVariantLoader{variants: map[uuid.UUID]*models.ProductVariant{id: knitVariant(id)}}
	result := reconcileOne(t, loader, normalizedLine{ProductID: id, StyleIndex: 0, SizeLabel: "L", RequestedQty: 2})

	if result.ReconciledQty != 0 {
		t.Fatalf("expected zero qty, got %d", result.ReconciledQty)
	}
	if len(result.Reasons) != 1 || result.Reasons[0] != enums.CartLineReasonOOS {
		t.Fatalf("unexpected reasons: %v", result.Reasons)
	}
}

func TestReconcileUnchangedLine(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	loader := &stubVariantLoader{variants: map[uuid.UUID]*models.ProductVariant{id: knitVariant(id)}}
	result := reconcileOne(t, loader, normalizedLine{ProductID: id, SizeLabel: "M", RequestedQty: 2})

	if result.Changed || len(result.Reasons) != 0 {
		t.Fatalf("expected untouched line, got %+v", result)
	}
	if !result.UnitPrice.Equal(d("100")) {
		t.Fatalf("expected unit price 100, got %s", result.UnitPrice)
	}
}

func TestReconcileCatalogOutageAborts(t *testing.T) {
	t.Parallel()

	loader := &stubVariantLoader{err: errors.New("connection refused")}
	_, err := reconcileLine(context.Background(), newVariantCache(loader), normalizedLine{ProductID: uuid.New(), SizeLabel: "M", RequestedQty: 1}, "US", nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestVariantCacheMemoizesLookups(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	loader := &stubVariantLoader{variants: map[uuid.UUID]*models.ProductVariant{id: knitVariant(id)}}
	cache := newVariantCache(loader)

	for i := 0; i < 3; i++ {
		if _, err := cache.find(context.Background(), id); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if _, err := cache.find(context.Background(), uuid.New()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if loader.calls != 2 {
		t.Fatalf("expected 2 catalog calls, got %d", loader.calls)
	}
}
