package inventory

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ovenplan/backend/internal/domain/inventory"
	"github.com/ovenplan/backend/internal/domain/shared"
	"github.com/ovenplan/backend/internal/domain/shared/valueobject"
)

var (
	_ inventory.StockItemRepository     = (*MockStockItemRepository)(nil)
	_ inventory.StockMovementRepository = (*MockStockMovementRepository)(nil)
	_ WorkOrderCounter                  = (*MockWorkOrderCounter)(nil)
	_ shared.EventPublisher             = (*MockEventPublisher)(nil)
)

func newTestStockService() (*StockService, *MockStockItemRepository, *MockStockMovementRepository, *MockRecipeRepository, *MockWorkOrderCounter) {
	stockRepo := new(MockStockItemRepository)
	movementRepo := new(MockStockMovementRepository)
	recipeRepo := new(MockRecipeRepository)
	counter := new(MockWorkOrderCounter)
	txScope := NewNoOpTransactionScope(stockRepo, movementRepo)
	svc := NewStockService(stockRepo, movementRepo, recipeRepo, counter, txScope)
	return svc, stockRepo, movementRepo, recipeRepo, counter
}

func testStockItem(t *testing.T, kind inventory.StockItemKind, stock int64) *inventory.StockItem {
	t.Helper()
	unit := valueobject.UnitKilogram
	if kind == inventory.StockItemKindFinishedGood {
		unit = valueobject.UnitPiece
	}
	item, err := inventory.NewStockItem(kind, "Test Item", unit,
		decimal.NewFromInt(stock), decimal.NewFromInt(5), "tester")
	require.NoError(t, err)
	return item
}

func TestStockService_Create(t *testing.T) {
	svc, stockRepo, _, _, _ := newTestStockService()
	cost := decimal.NewFromFloat(1.20)

	stockRepo.On("Save", mock.Anything, mock.AnythingOfType("*inventory.StockItem")).Return(nil)

	resp, err := svc.Create(context.Background(), &CreateStockItemRequest{
		Kind:              "ingredient",
		Name:              "Rye Flour",
		Unit:              "kg",
		InitialStock:      decimal.NewFromInt(30),
		LowStockThreshold: decimal.NewFromInt(8),
		CostPerUnit:       &cost,
	}, "owner")
	require.NoError(t, err)

	assert.Equal(t, "ingredient", resp.Kind)
	assert.Equal(t, "Rye Flour", resp.Name)
	assert.True(t, resp.CurrentStock.Equal(decimal.NewFromInt(30)))
	require.NotNil(t, resp.CostPerUnit)
	assert.Equal(t, "owner", resp.CreatedBy)
	stockRepo.AssertExpectations(t)
}

func TestStockService_Create_InvalidUnit(t *testing.T) {
	svc, _, _, _, _ := newTestStockService()

	_, err := svc.Create(context.Background(), &CreateStockItemRequest{
		Kind: "ingredient",
		Name: "Rye Flour",
		Unit: "bags",
	}, "owner")
	assert.Error(t, err)
}

func TestStockService_Create_LinksDayOld(t *testing.T) {
	svc, stockRepo, _, _, _ := newTestStockService()
	dayOld := testStockItem(t, inventory.StockItemKindFinishedGood, 0)

	stockRepo.On("FindByID", mock.Anything, dayOld.ID).Return(dayOld, nil)
	stockRepo.On("Save", mock.Anything, mock.AnythingOfType("*inventory.StockItem")).Return(nil)

	resp, err := svc.Create(context.Background(), &CreateStockItemRequest{
		Kind:                 "finished_good",
		Name:                 "Fresh Baguette",
		Unit:                 "units",
		DayOldFinishedGoodID: &dayOld.ID,
	}, "owner")
	require.NoError(t, err)
	require.NotNil(t, resp.DayOldFinishedGoodID)
	assert.Equal(t, dayOld.ID, *resp.DayOldFinishedGoodID)
}

func TestStockService_Create_DayOldTargetMustBeFinishedGood(t *testing.T) {
	svc, stockRepo, _, _, _ := newTestStockService()
	ingredient := testStockItem(t, inventory.StockItemKindIngredient, 10)

	stockRepo.On("FindByID", mock.Anything, ingredient.ID).Return(ingredient, nil)

	_, err := svc.Create(context.Background(), &CreateStockItemRequest{
		Kind:                 "finished_good",
		Name:                 "Fresh Baguette",
		Unit:                 "units",
		DayOldFinishedGoodID: &ingredient.ID,
	}, "owner")
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "INVALID_REFERENCE", domainErr.Code)
}

func TestStockService_AdjustStock(t *testing.T) {
	svc, stockRepo, movementRepo, _, _ := newTestStockService()
	item := testStockItem(t, inventory.StockItemKindIngredient, 20)
	delta := decimal.NewFromInt(-5)

	stockRepo.On("FindByID", mock.Anything, item.ID).Return(item, nil)
	stockRepo.On("AdjustStock", mock.Anything, item.ID, delta).Return(decimal.NewFromInt(15), nil)
	movementRepo.On("Append", mock.Anything, mock.MatchedBy(func(mv *inventory.StockMovement) bool {
		return mv.ItemID == item.ID && mv.Delta.Equal(delta) && mv.Reason == inventory.MovementReasonManualAdjustment
	})).Return(nil)

	resp, err := svc.AdjustStock(context.Background(), item.ID, &AdjustStockRequest{Delta: delta}, "owner")
	require.NoError(t, err)
	assert.True(t, resp.ResultingStock.Equal(decimal.NewFromInt(15)))
	movementRepo.AssertExpectations(t)
}

func TestStockService_AdjustStock_Insufficient(t *testing.T) {
	svc, stockRepo, movementRepo, _, _ := newTestStockService()
	item := testStockItem(t, inventory.StockItemKindIngredient, 3)
	delta := decimal.NewFromInt(-10)

	stockRepo.On("FindByID", mock.Anything, item.ID).Return(item, nil)
	stockRepo.On("AdjustStock", mock.Anything, item.ID, delta).Return(decimal.Zero, shared.ErrInsufficientStock)

	_, err := svc.AdjustStock(context.Background(), item.ID, &AdjustStockRequest{Delta: delta}, "owner")
	assert.ErrorIs(t, err, shared.ErrInsufficientStock)
	movementRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestStockService_AdjustStock_Validation(t *testing.T) {
	svc, _, _, _, _ := newTestStockService()
	id := uuid.New()

	_, err := svc.AdjustStock(context.Background(), id, &AdjustStockRequest{Delta: decimal.Zero}, "owner")
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "INVALID_QUANTITY", domainErr.Code)

	_, err = svc.AdjustStock(context.Background(), id, &AdjustStockRequest{
		Delta:  decimal.NewFromInt(1),
		Reason: "vibes",
	}, "owner")
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "INVALID_REASON", domainErr.Code)
}

func TestStockService_AdjustStock_PublishesLowStockEvent(t *testing.T) {
	svc, stockRepo, movementRepo, _, _ := newTestStockService()
	publisher := new(MockEventPublisher)
	publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)
	svc.SetEventPublisher(publisher)

	item := testStockItem(t, inventory.StockItemKindIngredient, 20) // threshold 5
	delta := decimal.NewFromInt(-16)

	stockRepo.On("FindByID", mock.Anything, item.ID).Return(item, nil)
	stockRepo.On("AdjustStock", mock.Anything, item.ID, delta).Return(decimal.NewFromInt(4), nil)
	movementRepo.On("Append", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.AdjustStock(context.Background(), item.ID, &AdjustStockRequest{Delta: delta}, "owner")
	require.NoError(t, err)

	require.Len(t, publisher.Events, 2)
	assert.Equal(t, inventory.EventTypeStockAdjusted, publisher.Events[0].EventType())
	assert.Equal(t, inventory.EventTypeStockBelowThreshold, publisher.Events[1].EventType())
}

func TestStockService_Delete_BlockedByRecipe(t *testing.T) {
	svc, stockRepo, _, recipeRepo, _ := newTestStockService()
	item := testStockItem(t, inventory.StockItemKindIngredient, 10)

	stockRepo.On("FindByID", mock.Anything, item.ID).Return(item, nil)
	recipeRepo.On("CountByIngredient", mock.Anything, item.ID).Return(int64(2), nil)

	err := svc.Delete(context.Background(), item.ID)
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "HAS_DEPENDENTS", domainErr.Code)
	stockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestStockService_Delete_BlockedByOpenWorkOrder(t *testing.T) {
	svc, stockRepo, _, recipeRepo, counter := newTestStockService()
	item := testStockItem(t, inventory.StockItemKindIngredient, 10)

	stockRepo.On("FindByID", mock.Anything, item.ID).Return(item, nil)
	recipeRepo.On("CountByIngredient", mock.Anything, item.ID).Return(int64(0), nil)
	counter.On("CountOpenByStockItem", mock.Anything, item.ID).Return(int64(1), nil)

	err := svc.Delete(context.Background(), item.ID)
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "HAS_DEPENDENTS", domainErr.Code)
}

func TestStockService_Delete_BlockedByDayOldLink(t *testing.T) {
	svc, stockRepo, _, recipeRepo, counter := newTestStockService()
	item := testStockItem(t, inventory.StockItemKindFinishedGood, 10)

	stockRepo.On("FindByID", mock.Anything, item.ID).Return(item, nil)
	recipeRepo.On("CountByIngredient", mock.Anything, item.ID).Return(int64(0), nil)
	recipeRepo.On("CountByFinishedGood", mock.Anything, item.ID).Return(int64(0), nil)
	counter.On("CountOpenByStockItem", mock.Anything, item.ID).Return(int64(0), nil)
	stockRepo.On("CountReferencingAsDayOld", mock.Anything, item.ID).Return(int64(1), nil)

	err := svc.Delete(context.Background(), item.ID)
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "HAS_DEPENDENTS", domainErr.Code)
}

func TestStockService_Delete_Unreferenced(t *testing.T) {
	svc, stockRepo, _, recipeRepo, counter := newTestStockService()
	item := testStockItem(t, inventory.StockItemKindIngredient, 10)

	stockRepo.On("FindByID", mock.Anything, item.ID).Return(item, nil)
	recipeRepo.On("CountByIngredient", mock.Anything, item.ID).Return(int64(0), nil)
	counter.On("CountOpenByStockItem", mock.Anything, item.ID).Return(int64(0), nil)
	stockRepo.On("CountReferencingAsDayOld", mock.Anything, item.ID).Return(int64(0), nil)
	stockRepo.On("Delete", mock.Anything, item.ID).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), item.ID))
	stockRepo.AssertExpectations(t)
}

func TestStockService_List_FiltersByKind(t *testing.T) {
	svc, stockRepo, _, _, _ := newTestStockService()
	item := testStockItem(t, inventory.StockItemKindIngredient, 10)

	stockRepo.On("FindByKind", mock.Anything, inventory.StockItemKindIngredient, mock.Anything).
		Return([]inventory.StockItem{*item}, nil)
	stockRepo.On("Count", mock.Anything, mock.Anything).Return(int64(1), nil)

	result, err := svc.List(context.Background(), &StockItemListFilter{Kind: "ingredient"})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, int64(1), result.Total)
}

func TestStockService_Update(t *testing.T) {
	svc, stockRepo, _, _, _ := newTestStockService()
	item := testStockItem(t, inventory.StockItemKindIngredient, 10)
	newName := "Organic Flour"
	threshold := decimal.NewFromInt(12)

	stockRepo.On("FindByID", mock.Anything, item.ID).Return(item, nil)
	stockRepo.On("Save", mock.Anything, item).Return(nil)

	resp, err := svc.Update(context.Background(), item.ID, &UpdateStockItemRequest{
		Name:              &newName,
		LowStockThreshold: &threshold,
	})
	require.NoError(t, err)
	assert.Equal(t, "Organic Flour", resp.Name)
	assert.True(t, resp.LowStockThreshold.Equal(threshold))
}

func TestStockService_GetByID_NotFound(t *testing.T) {
	svc, stockRepo, _, _, _ := newTestStockService()
	id := uuid.New()

	stockRepo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

	_, err := svc.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
