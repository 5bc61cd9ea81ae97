package cart

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/modaline/storefront-backend/pkg/db/models"
	pkgerrors "github.com/modaline/storefront-backend/pkg/errors"
	"github.com/modaline/storefront-backend/pkg/metrics"
	"github.com/modaline/storefront-backend/pkg/types"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// SyncCartInput is the full sync payload: the client's lines plus the
// shopper's country and the per-request country-group map.
type SyncCartInput struct {
	Lines         []SyncLine
	Country       string
	CountryGroups types.CountryGroups
}

// SyncCartResult is returned to the caller after reconciliation. Lines
// mirrors the submitted lines one-to-one, including dropped ones; only lines
// with a positive quantity and price made it into the persisted cart.
type SyncCartResult struct {
	Lines  []ReconciledLine `json:"lines"`
	Totals Totals           `json:"totals"`
	Saved  bool             `json:"saved"`
}

// Service exposes cart reconciliation and the read surface consumed by order
// creation.
type Service interface {
	SyncCart(ctx context.Context, userID uuid.UUID, input SyncCartInput) (*SyncCartResult, error)
	GetCartForUser(ctx context.Context, userID uuid.UUID) (*models.CartRecord, error)
}

type service struct {
	repo           CartRepository
	catalog        variantLoader
	tx             txRunner
	metrics        *metrics.CartSyncMetrics
	defaultCountry string
}

// NewService builds a cart service backed by the provided stack. Metrics may
// be nil in tests.
func NewService(repo CartRepository, catalog variantLoader, tx txRunner, m *metrics.CartSyncMetrics, defaultCountry string) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("cart repository required")
	}
	if catalog == nil {
		return nil, fmt.Errorf("catalog loader required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if strings.TrimSpace(defaultCountry) == "" {
		defaultCountry = "US"
	}
	return &service{
		repo:           repo,
		catalog:        catalog,
		tx:             tx,
		metrics:        m,
		defaultCountry: strings.ToUpper(strings.TrimSpace(defaultCountry)),
	}, nil
}

// SyncCart reconciles the submitted lines against current catalog truth and
// atomically replaces the user's persisted cart with the surviving lines.
// Per-line business failures are reported as reason codes and never abort
// the batch; only a malformed payload, a catalog outage or a failed persist
// is an error.
func (s *service) SyncCart(ctx context.Context, userID uuid.UUID, input SyncCartInput) (*SyncCartResult, error) {
	started := time.Now()

	result, err := s.syncCart(ctx, userID, input)
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	s.metrics.IncSync(outcome)
	s.metrics.ObserveDuration(outcome, time.Since(started))
	if result != nil {
		for _, line := range result.Lines {
			for _, reason := range line.Reasons {
				s.metrics.IncLineReason(reason.String())
			}
		}
	}
	return result, err
}

func (s *service) syncCart(ctx context.Context, userID uuid.UUID, input SyncCartInput) (*SyncCartResult, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "caller identity is required")
	}
	if input.Lines == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart must be a list of lines")
	}

	country := strings.ToUpper(strings.TrimSpace(input.Country))
	if country == "" {
		country = s.defaultCountry
	}

	groups, err := input.CountryGroups.Normalize()
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid country groups")
	}

	cache := newVariantCache(s.catalog)
	reconciled := make([]ReconciledLine, 0, len(input.Lines))
	for _, raw := range input.Lines {
		line, err := reconcileLine(ctx, cache, normalizeLine(raw), country, groups)
		if err != nil {
			return nil, err
		}
		reconciled = append(reconciled, line)
	}

	totals := aggregate(reconciled)

	if err := s.persist(ctx, userID, reconciled, totals); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist cart")
	}

	return &SyncCartResult{
		Lines:  reconciled,
		Totals: totals,
		Saved:  true,
	}, nil
}

// persist replaces the user's cart record and lines in one transaction.
// Last writer wins: concurrent syncs for the same user are not serialized.
func (s *service) persist(ctx context.Context, userID uuid.UUID, lines []ReconciledLine, totals Totals) error {
	persisted := buildCartLines(lines)

	return s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)

		record, err := txRepo.FindByUser(ctx, userID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if record == nil || errors.Is(err, gorm.ErrRecordNotFound) {
			record = &models.CartRecord{UserID: userID}
			if record, err = txRepo.Create(ctx, record); err != nil {
				return err
			}
		}

		record.Subtotal = totals.Subtotal
		record.Shipping = totals.Shipping
		record.Total = totals.Total
		record.Lines = nil
		if _, err := txRepo.Update(ctx, record); err != nil {
			return err
		}

		return txRepo.ReplaceLines(ctx, record.ID, persisted)
	})
}

// buildCartLines keeps only lines that survived reconciliation with a
// positive quantity and unit price; everything else is response-only.
func buildCartLines(lines []ReconciledLine) []models.CartLine {
	persisted := make([]models.CartLine, 0, len(lines))
	for _, line := range lines {
		if line.ReconciledQty <= 0 || !line.UnitPrice.IsPositive() {
			continue
		}
		persisted = append(persisted, models.CartLine{
			ProductID:    line.ProductID,
			StyleIndex:   line.StyleIndex,
			SizeLabel:    line.SizeLabel,
			Qty:          line.ReconciledQty,
			UnitPrice:    types.Round2(line.UnitPrice),
			UnitShipping: types.Round2(line.UnitShipping),
			LineTotal:    line.LineTotal,
			LineShipping: line.LineShipping,
			Name:         line.Name,
			Image:        line.Image,
		})
	}
	return persisted
}

// GetCartForUser returns the persisted cart verbatim; order creation trusts
// it without re-running price resolution.
func (s *service) GetCartForUser(ctx context.Context, userID uuid.UUID) (*models.CartRecord, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "caller identity is required")
	}

	record, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "cart not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}
	return record, nil
}
