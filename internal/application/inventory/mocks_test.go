package inventory

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/ovenplan/backend/internal/domain/inventory"
	"github.com/ovenplan/backend/internal/domain/recipe"
	"github.com/ovenplan/backend/internal/domain/shared"
)

// MockStockItemRepository is a mock implementation of inventory.StockItemRepository
type MockStockItemRepository struct {
	mock.Mock
}

func (m *MockStockItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.StockItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.StockItem), args.Error(1)
}

func (m *MockStockItemRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]inventory.StockItem, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]inventory.StockItem), args.Error(1)
}

func (m *MockStockItemRepository) FindByKind(ctx context.Context, kind inventory.StockItemKind, filter shared.Filter) ([]inventory.StockItem, error) {
	args := m.Called(ctx, kind, filter)
	return args.Get(0).([]inventory.StockItem), args.Error(1)
}

func (m *MockStockItemRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.StockItem, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]inventory.StockItem), args.Error(1)
}

func (m *MockStockItemRepository) FindBelowThreshold(ctx context.Context, filter shared.Filter) ([]inventory.StockItem, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]inventory.StockItem), args.Error(1)
}

func (m *MockStockItemRepository) FindEndOfDayCandidates(ctx context.Context) ([]inventory.StockItem, error) {
	args := m.Called(ctx)
	return args.Get(0).([]inventory.StockItem), args.Error(1)
}

func (m *MockStockItemRepository) CountReferencingAsDayOld(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStockItemRepository) Save(ctx context.Context, item *inventory.StockItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockStockItemRepository) AdjustStock(ctx context.Context, id uuid.UUID, delta decimal.Decimal) (decimal.Decimal, error) {
	args := m.Called(ctx, id, delta)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockStockItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStockItemRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockStockMovementRepository is a mock implementation of inventory.StockMovementRepository
type MockStockMovementRepository struct {
	mock.Mock
}

func (m *MockStockMovementRepository) Append(ctx context.Context, movement *inventory.StockMovement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

func (m *MockStockMovementRepository) FindByItem(ctx context.Context, itemID uuid.UUID, filter shared.Filter) ([]inventory.StockMovement, error) {
	args := m.Called(ctx, itemID, filter)
	return args.Get(0).([]inventory.StockMovement), args.Error(1)
}

func (m *MockStockMovementRepository) FindRecent(ctx context.Context, filter shared.Filter) ([]inventory.StockMovement, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]inventory.StockMovement), args.Error(1)
}

func (m *MockStockMovementRepository) CountByItem(ctx context.Context, itemID uuid.UUID) (int64, error) {
	args := m.Called(ctx, itemID)
	return args.Get(0).(int64), args.Error(1)
}

// MockRecipeRepository is a mock implementation of recipe.RecipeRepository
type MockRecipeRepository struct {
	mock.Mock
}

func (m *MockRecipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recipe.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) FindActive(ctx context.Context, filter shared.Filter) ([]recipe.Recipe, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]recipe.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]recipe.Recipe, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]recipe.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) FindActiveByFinishedGood(ctx context.Context, finishedGoodID uuid.UUID) (*recipe.Recipe, error) {
	args := m.Called(ctx, finishedGoodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recipe.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) CountByIngredient(ctx context.Context, ingredientID uuid.UUID) (int64, error) {
	args := m.Called(ctx, ingredientID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRecipeRepository) CountByFinishedGood(ctx context.Context, finishedGoodID uuid.UUID) (int64, error) {
	args := m.Called(ctx, finishedGoodID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRecipeRepository) Save(ctx context.Context, r *recipe.Recipe) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRecipeRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockWorkOrderCounter is a mock implementation of WorkOrderCounter
type MockWorkOrderCounter struct {
	mock.Mock
}

func (m *MockWorkOrderCounter) CountOpenByStockItem(ctx context.Context, itemID uuid.UUID) (int64, error) {
	args := m.Called(ctx, itemID)
	return args.Get(0).(int64), args.Error(1)
}

// MockEventPublisher records published events
type MockEventPublisher struct {
	mock.Mock
	Events []shared.DomainEvent
}

func (m *MockEventPublisher) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	m.Events = append(m.Events, events...)
	args := m.Called(ctx, events)
	return args.Error(0)
}
