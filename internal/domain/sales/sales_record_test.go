package sales

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovenplan/backend/internal/domain/shared"
	"github.com/ovenplan/backend/internal/domain/shared/valueobject"
)

func assertDomainErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr), "expected domain error, got %v", err)
	assert.Equal(t, code, domainErr.Code)
}

func TestNewSalesRecord(t *testing.T) {
	goodID := uuid.New()
	rec, err := NewSalesRecord(goodID, "Croissant", valueobject.UnitPiece,
		decimal.NewFromInt(3), decimal.NewFromFloat(4.25), "till")
	require.NoError(t, err)

	assert.Equal(t, goodID, rec.FinishedGoodID)
	assert.True(t, rec.TotalRevenue.Equal(decimal.NewFromFloat(12.75)), "revenue derives from quantity x price")
	assert.Equal(t, "till", rec.SoldBy)
	assert.False(t, rec.SoldAt.IsZero())
}

func TestNewSalesRecord_FreeGiveaway(t *testing.T) {
	rec, err := NewSalesRecord(uuid.New(), "Day-Old Croissant", valueobject.UnitPiece,
		decimal.NewFromInt(2), decimal.Zero, "till")
	require.NoError(t, err)
	assert.True(t, rec.TotalRevenue.Equal(decimal.Zero))
}

func TestNewSalesRecord_Validation(t *testing.T) {
	goodID := uuid.New()
	qty := decimal.NewFromInt(1)
	price := decimal.NewFromInt(3)

	_, err := NewSalesRecord(uuid.Nil, "Croissant", valueobject.UnitPiece, qty, price, "till")
	assertDomainErrorCode(t, err, "INVALID_GOOD")

	_, err = NewSalesRecord(goodID, "", valueobject.UnitPiece, qty, price, "till")
	assertDomainErrorCode(t, err, "INVALID_GOOD")

	_, err = NewSalesRecord(goodID, "Croissant", valueobject.UnitPiece, decimal.Zero, price, "till")
	assertDomainErrorCode(t, err, "INVALID_QUANTITY")

	_, err = NewSalesRecord(goodID, "Croissant", valueobject.UnitPiece, qty, decimal.NewFromInt(-1), "till")
	assertDomainErrorCode(t, err, "INVALID_PRICE")
}

func TestNewEndOfDayRecord_WriteOff(t *testing.T) {
	strayDayOld := uuid.New()
	rec, err := NewEndOfDayRecord(uuid.New(), "Baguette", valueobject.UnitPiece,
		EndOfDayActionWriteOff, decimal.NewFromInt(4), &strayDayOld, "ignored", "closer")
	require.NoError(t, err)

	assert.Equal(t, EndOfDayActionWriteOff, rec.Action)
	assert.Nil(t, rec.DayOldGoodID, "write-off drops any day-old reference")
	assert.Empty(t, rec.DayOldGoodName)
	assert.False(t, rec.RecordedAt.IsZero())
}

func TestNewEndOfDayRecord_Transfer(t *testing.T) {
	dayOldID := uuid.New()
	rec, err := NewEndOfDayRecord(uuid.New(), "Baguette", valueobject.UnitPiece,
		EndOfDayActionTransferToDayOld, decimal.NewFromInt(4), &dayOldID, "Day-Old Baguette", "closer")
	require.NoError(t, err)

	require.NotNil(t, rec.DayOldGoodID)
	assert.Equal(t, dayOldID, *rec.DayOldGoodID)
	assert.Equal(t, "Day-Old Baguette", rec.DayOldGoodName)
}

func TestNewEndOfDayRecord_Validation(t *testing.T) {
	goodID := uuid.New()
	dayOldID := uuid.New()
	qty := decimal.NewFromInt(2)

	_, err := NewEndOfDayRecord(uuid.Nil, "Baguette", valueobject.UnitPiece, EndOfDayActionWriteOff, qty, nil, "", "closer")
	assertDomainErrorCode(t, err, "INVALID_GOOD")

	_, err = NewEndOfDayRecord(goodID, "Baguette", valueobject.UnitPiece, EndOfDayAction("donate"), qty, nil, "", "closer")
	assertDomainErrorCode(t, err, "INVALID_ACTION")

	_, err = NewEndOfDayRecord(goodID, "Baguette", valueobject.UnitPiece, EndOfDayActionWriteOff, decimal.Zero, nil, "", "closer")
	assertDomainErrorCode(t, err, "INVALID_QUANTITY")

	_, err = NewEndOfDayRecord(goodID, "Baguette", valueobject.UnitPiece, EndOfDayActionTransferToDayOld, qty, nil, "", "closer")
	assertDomainErrorCode(t, err, "NO_DAY_OLD_TARGET")

	nilID := uuid.Nil
	_, err = NewEndOfDayRecord(goodID, "Baguette", valueobject.UnitPiece, EndOfDayActionTransferToDayOld, qty, &nilID, "", "closer")
	assertDomainErrorCode(t, err, "NO_DAY_OLD_TARGET")

	_, err = NewEndOfDayRecord(goodID, "Baguette", valueobject.UnitPiece, EndOfDayActionTransferToDayOld, qty, &dayOldID, "Day-Old", "closer")
	assert.NoError(t, err)
}
