package cart

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/modaline/storefront-backend/pkg/db/models"
)

func setupCartTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	cartRecords := `
CREATE TABLE IF NOT EXISTS cart_records (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  subtotal NUMERIC NOT NULL DEFAULT 0,
  shipping NUMERIC NOT NULL DEFAULT 0,
  total NUMERIC NOT NULL DEFAULT 0,
  created_at DATETIME,
  updated_at DATETIME
);`
	cartLines := `
CREATE TABLE IF NOT EXISTS cart_lines (
  id TEXT PRIMARY KEY,
  cart_id TEXT NOT NULL,
  product_id TEXT NOT NULL,
  style_index INTEGER NOT NULL,
  size_label TEXT NOT NULL,
  qty INTEGER NOT NULL,
  unit_price NUMERIC NOT NULL,
  unit_shipping NUMERIC NOT NULL DEFAULT 0,
  line_total NUMERIC NOT NULL,
  line_shipping NUMERIC NOT NULL DEFAULT 0,
  name TEXT NOT NULL DEFAULT '',
  image TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(cartRecords).Error)
	require.NoError(t, db.Exec(cartLines).Error)
	require.NoError(t, db.Exec(`DELETE FROM cart_lines`).Error)
	require.NoError(t, db.Exec(`DELETE FROM cart_records`).Error)
	return db
}

func newCartLine(cartID uuid.UUID, label string, qty int, unitPrice string) models.CartLine {
	price := decimal.RequireFromString(unitPrice)
	return models.CartLine{
		ID:        uuid.New(),
		CartID:    cartID,
		ProductID: uuid.New(),
		SizeLabel: label,
		Qty:       qty,
		UnitPrice: price,
		LineTotal: price.Mul(decimal.NewFromInt(int64(qty))),
	}
}

func TestRepositoryCreateAndFindByUser(t *testing.T) {
	db := setupCartTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	record := &models.CartRecord{
		ID:       uuid.New(),
		UserID:   uuid.New(),
		Subtotal: decimal.RequireFromString("25.00"),
		Total:    decimal.RequireFromString("25.00"),
	}
	_, err := repo.Create(ctx, record)
	require.NoError(t, err)

	require.NoError(t, repo.ReplaceLines(ctx, record.ID, []models.CartLine{
		newCartLine(record.ID, "M", 2, "12.50"),
	}))

	found, err := repo.FindByUser(ctx, record.UserID)
	require.NoError(t, err)
	assert.Equal(t, record.ID, found.ID)
	require.Len(t, found.Lines, 1)
	assert.Equal(t, 2, found.Lines[0].Qty)
	assert.True(t, found.Lines[0].UnitPrice.Equal(decimal.RequireFromString("12.50")))
}

func TestRepositoryFindByUserNotFound(t *testing.T) {
	db := setupCartTestDB(t)
	repo := NewRepository(db)

	_, err := repo.FindByUser(context.Background(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepositoryReplaceLinesOverwrites(t *testing.T) {
	db := setupCartTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	record := &models.CartRecord{ID: uuid.New(), UserID: uuid.New()}
	_, err := repo.Create(ctx, record)
	require.NoError(t, err)

	require.NoError(t, repo.ReplaceLines(ctx, record.ID, []models.CartLine{
		newCartLine(record.ID, "M", 1, "10.00"),
		newCartLine(record.ID, "L", 2, "10.00"),
	}))
	require.NoError(t, repo.ReplaceLines(ctx, record.ID, []models.CartLine{
		newCartLine(record.ID, "XL", 3, "9.00"),
	}))

	found, err := repo.FindByUser(ctx, record.UserID)
	require.NoError(t, err)
	require.Len(t, found.Lines, 1)
	assert.Equal(t, "XL", found.Lines[0].SizeLabel)
}

func TestRepositoryReplaceLinesEmptyClears(t *testing.T) {
	db := setupCartTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	record := &models.CartRecord{ID: uuid.New(), UserID: uuid.New()}
	_, err := repo.Create(ctx, record)
	require.NoError(t, err)

	require.NoError(t, repo.ReplaceLines(ctx, record.ID, []models.CartLine{
		newCartLine(record.ID, "M", 1, "10.00"),
	}))
	require.NoError(t, repo.ReplaceLines(ctx, record.ID, nil))

	found, err := repo.FindByUser(ctx, record.UserID)
	require.NoError(t, err)
	assert.Empty(t, found.Lines)
}

func TestRepositoryUpdateTotals(t *testing.T) {
	db := setupCartTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	record := &models.CartRecord{ID: uuid.New(), UserID: uuid.New()}
	_, err := repo.Create(ctx, record)
	require.NoError(t, err)

	record.Subtotal = decimal.RequireFromString("99.90")
	record.Shipping = decimal.RequireFromString("5.00")
	record.Total = decimal.RequireFromString("104.90")
	_, err = repo.Update(ctx, record)
	require.NoError(t, err)

	found, err := repo.FindByUser(ctx, record.UserID)
	require.NoError(t, err)
	assert.True(t, found.Total.Equal(decimal.RequireFromString("104.90")))
}
