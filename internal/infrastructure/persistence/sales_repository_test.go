package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ovenplan/backend/internal/domain/sales"
	"github.com/ovenplan/backend/internal/domain/shared"
	"github.com/ovenplan/backend/internal/domain/shared/valueobject"
)

func seedSale(t *testing.T, db *gorm.DB, goodID uuid.UUID, qty int64, soldAt time.Time) *sales.SalesRecord {
	t.Helper()

	record, err := sales.NewSalesRecord(goodID, "Croissant", valueobject.UnitPiece, decimal.NewFromInt(qty), decimal.NewFromFloat(2.50), "counter")
	require.NoError(t, err)
	record.SoldAt = soldAt
	require.NoError(t, NewGormSalesRecordRepository(db).Append(context.Background(), record))
	return record
}

func TestGormSalesRecordRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormSalesRecordRepository(db)
	ctx := context.Background()

	goodID := uuid.New()
	otherGoodID := uuid.New()
	morning := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	noon := morning.Add(4 * time.Hour)
	evening := morning.Add(10 * time.Hour)

	first := seedSale(t, db, goodID, 3, morning)
	second := seedSale(t, db, goodID, 1, noon)
	other := seedSale(t, db, otherGoodID, 2, evening)

	t.Run("find by good newest first", func(t *testing.T) {
		records, err := repo.FindByGood(ctx, goodID, shared.DefaultFilter())
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, second.ID, records[0].ID)
		assert.Equal(t, first.ID, records[1].ID)
		assert.True(t, records[1].TotalRevenue.Equal(decimal.NewFromFloat(7.50)))
	})

	t.Run("find between includes boundaries", func(t *testing.T) {
		records, err := repo.FindBetween(ctx, morning, noon, shared.DefaultFilter())
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("find recent spans goods", func(t *testing.T) {
		records, err := repo.FindRecent(ctx, shared.DefaultFilter())
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, other.ID, records[0].ID)
	})
}

func TestGormEndOfDayRecordRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormEndOfDayRecordRepository(db)
	ctx := context.Background()

	dayOldID := uuid.New()
	writeOff, err := sales.NewEndOfDayRecord(uuid.New(), "Brioche", valueobject.UnitPiece, sales.EndOfDayActionWriteOff, decimal.NewFromInt(4), nil, "", "closer")
	require.NoError(t, err)
	writeOff.RecordedAt = time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Append(ctx, writeOff))

	transfer, err := sales.NewEndOfDayRecord(uuid.New(), "Sourdough", valueobject.UnitPiece, sales.EndOfDayActionTransferToDayOld, decimal.NewFromInt(6), &dayOldID, "Day-Old Sourdough", "closer")
	require.NoError(t, err)
	transfer.RecordedAt = time.Date(2026, 9, 2, 18, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Append(ctx, transfer))

	t.Run("find between", func(t *testing.T) {
		records, err := repo.FindBetween(ctx,
			time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 9, 1, 23, 59, 59, 0, time.UTC),
			shared.DefaultFilter())
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, writeOff.ID, records[0].ID)
	})

	t.Run("find recent newest first", func(t *testing.T) {
		records, err := repo.FindRecent(ctx, shared.DefaultFilter())
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, transfer.ID, records[0].ID)
		require.NotNil(t, records[0].DayOldGoodID)
		assert.Equal(t, dayOldID, *records[0].DayOldGoodID)
	})
}
