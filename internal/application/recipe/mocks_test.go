package recipe

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/ovenplan/backend/internal/domain/inventory"
	"github.com/ovenplan/backend/internal/domain/recipe"
	"github.com/ovenplan/backend/internal/domain/shared"
)

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

// MockOpenWorkOrderCounter is a mock implementation of OpenWorkOrderCounter
type MockOpenWorkOrderCounter struct {
	mock.Mock
}

func (m *MockOpenWorkOrderCounter) CountOpenByRecipe(ctx context.Context, recipeID uuid.UUID) (int64, error) {
	args := m.Called(ctx, recipeID)
	return args.Get(0).(int64), args.Error(1)
}
