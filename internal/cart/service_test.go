package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/modaline/storefront-backend/pkg/db/models"
	"github.com/modaline/storefront-backend/pkg/enums"
	pkgerrors "github.com/modaline/storefront-backend/pkg/errors"
	"github.com/modaline/storefront-backend/pkg/types"
)

type stubCartRepo struct {
	record      *models.CartRecord
	findErr     error
	replaceErr  error
	replaced    []models.CartLine
	updated     *models.CartRecord
	createCalls int
}

func (s *stubCartRepo) WithTx(tx *gorm.DB) CartRepository { return s }

func (s *stubCartRepo) FindByUser(ctx context.Context, userID uuid.UUID) (*models.CartRecord, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	if s.record == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return s.record, nil
}

func (s *stubCartRepo) Create(ctx context.Context, record *models.CartRecord) (*models.CartRecord, error) {
	s.createCalls++
	record.ID = uuid.New()
	s.record = record
	return record, nil
}

func (s *stubCartRepo) Update(ctx context.Context, record *models.CartRecord) (*models.CartRecord, error) {
	s.updated = record
	return record, nil
}

func (s *stubCartRepo) ReplaceLines(ctx context.Context, cartID uuid.UUID, lines []models.CartLine) error {
	if s.replaceErr != nil {
		return s.replaceErr
	}
	s.replaced = lines
	return nil
}

type stubTxRunner struct{}

func (stubTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

func newTestService(t *testing.T, repo CartRepository, loader variantLoader) Service {
	t.Helper()
	svc, err := NewService(repo, loader, stubTxRunner{}, nil, "US")
	if err != nil {
		t.Fatalf("building service: %v", err)
	}
	return svc
}

func TestSyncCartRequiresIdentity(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &stubCartRepo{}, &stubVariantLoader{})
	_, err := svc.SyncCart(context.Background(), uuid.Nil, SyncCartInput{Lines: []SyncLine{}})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSyncCartRequiresLineList(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &stubCartRepo{}, &stubVariantLoader{})
	_, err := svc.SyncCart(context.Background(), uuid.New(), SyncCartInput{})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSyncCartRejectsOverlappingGroups(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &stubCartRepo{}, &stubVariantLoader{})
	_, err := svc.SyncCart(context.Background(), uuid.New(), SyncCartInput{
		Lines: []SyncLine{},
		CountryGroups: types.CountryGroups{
			"GULF": {"AE", "SA"},
			"MENA": {"EG", "AE"},
		},
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSyncCartPersistsOnlySurvivingLines(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	loader := &stubVariantLoader{variants: map[uuid.UUID]*models.ProductVariant{id: knitVariant(id)}}
	repo := &stubCartRepo{}
	svc := newTestService(t, repo, loader)

	qty := 2.0
	result, err := svc.SyncCart(context.Background(), uuid.New(), SyncCartInput{
		Lines: []SyncLine{
			{ProductID: id.String(), StyleIndex: intPtr(0), SizeLabel: "M", Qty: &qty},
			{SizeLabel: "M"}, // structurally invalid, reported but not persisted
			{ProductID: id.String(), StyleIndex: intPtr(0), SizeLabel: "L", Qty: &qty}, // out of stock
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Lines) != 3 {
		t.Fatalf("expected one output line per input line, got %d", len(result.Lines))
	}
	if !result.Saved {
		t.Fatal("expected saved result")
	}
	if !result.Totals.AnyChanged {
		t.Fatal("expected anyChanged from invalid and OOS lines")
	}

	if len(repo.replaced) != 1 {
		t.Fatalf("expected 1 persisted line, got %d", len(repo.replaced))
	}
	persisted := repo.replaced[0]
	if persisted.ProductID != id || persisted.Qty != 2 {
		t.Fatalf("unexpected persisted line: %+v", persisted)
	}
	if repo.createCalls != 1 {
		t.Fatalf("expected cart creation, got %d calls", repo.createCalls)
	}
	if repo.updated == nil || !repo.updated.Total.Equal(result.Totals.Total) {
		t.Fatal("expected cart totals snapshot persisted")
	}
}

func TestSyncCartDoesNotMergeDuplicateLines(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	loader := &stubVariantLoader{variants: map[uuid.UUID]*models.ProductVariant{id: knitVariant(id)}}
	repo := &stubCartRepo{}
	svc := newTestService(t, repo, loader)

	qty := 1.0
	result, err := svc.SyncCart(context.Background(), uuid.New(), SyncCartInput{
		Lines: []SyncLine{
			{ProductID: id.String(), StyleIndex: intPtr(0), SizeLabel: "M", Qty: &qty},
			{ProductID: id.String(), StyleIndex: intPtr(0), SizeLabel: "M", Qty: &qty},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Lines) != 2 {
		t.Fatalf("expected 2 independent lines, got %d", len(result.Lines))
	}
	if len(repo.replaced) != 2 {
		t.Fatalf("expected 2 persisted lines, got %d", len(repo.replaced))
	}
	if loader.calls != 1 {
		t.Fatalf("expected memoized catalog lookup, got %d calls", loader.calls)
	}
}

func TestSyncCartEmptyListClearsCart(t *testing.T) {
	t.Parallel()

	repo := &stubCartRepo{record: &models.CartRecord{ID: uuid.New(), UserID: uuid.New()}}
	svc := newTestService(t, repo, &stubVariantLoader{})

	result, err := svc.SyncCart(context.Background(), uuid.New(), SyncCartInput{Lines: []SyncLine{}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Lines) != 0 || !result.Totals.Subtotal.IsZero() {
		t.Fatalf("expected empty reconciliation, got %+v", result)
	}
	if len(repo.replaced) != 0 {
		t.Fatalf("expected all lines removed, got %d", len(repo.replaced))
	}
}

func TestSyncCartPersistenceFailure(t *testing.T) {
	t.Parallel()

	repo := &stubCartRepo{replaceErr: errors.New("connection reset")}
	svc := newTestService(t, repo, &stubVariantLoader{})

	_, err := svc.SyncCart(context.Background(), uuid.New(), SyncCartInput{Lines: []SyncLine{}})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSyncCartReportsReasonsPerLine(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	loader := &stubVariantLoader{variants: map[uuid.UUID]*models.ProductVariant{id: knitVariant(id)}}
	svc := newTestService(t, &stubCartRepo{}, loader)

	qty := 5.0
	result, err := svc.SyncCart(context.Background(), uuid.New(), SyncCartInput{
		Lines: []SyncLine{
			{ProductID: id.String(), StyleIndex: intPtr(0), SizeLabel: "M", Qty: &qty},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	line := result.Lines[0]
	if line.ReconciledQty != 2 {
		t.Fatalf("expected clamp to stock, got %d", line.ReconciledQty)
	}
	if len(line.Reasons) != 1 || line.Reasons[0] != enums.CartLineReasonQtyAdjusted {
		t.Fatalf("unexpected reasons: %v", line.Reasons)
	}
}

func TestGetCartForUser(t *testing.T) {
	t.Parallel()

	record := &models.CartRecord{ID: uuid.New(), UserID: uuid.New()}
	repo := &stubCartRepo{record: record}
	svc := newTestService(t, repo, &stubVariantLoader{})

	got, err := svc.GetCartForUser(context.Background(), record.UserID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != record {
		t.Fatal("expected record to match")
	}
}

func TestGetCartForUserNotFound(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &stubCartRepo{}, &stubVariantLoader{})
	_, err := svc.GetCartForUser(context.Background(), uuid.New())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGetCartForUserRequiresIdentity(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &stubCartRepo{}, &stubVariantLoader{})
	_, err := svc.GetCartForUser(context.Background(), uuid.Nil)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("unexpected error: %v", err)
	}
}
