package planning

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/ovenplan/backend/internal/domain/inventory"
	"github.com/ovenplan/backend/internal/domain/planning"
	"github.com/ovenplan/backend/internal/domain/recipe"
	"github.com/ovenplan/backend/internal/domain/shared"
)

// MockWorkOrderRepository is a mock implementation of planning.WorkOrderRepository
type MockWorkOrderRepository struct {
	mock.Mock
}

func (m *MockWorkOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*planning.WorkOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*planning.WorkOrder), args.Error(1)
}

func (m *MockWorkOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]planning.WorkOrder, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]planning.WorkOrder), args.Error(1)
}

func (m *MockWorkOrderRepository) FindQueue(ctx context.Context, filter shared.Filter) ([]planning.WorkOrder, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]planning.WorkOrder), args.Error(1)
}

func (m *MockWorkOrderRepository) FindScheduledBetween(ctx context.Context, start, end time.Time) ([]planning.WorkOrder, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).([]planning.WorkOrder), args.Error(1)
}

func (m *MockWorkOrderRepository) CountOpenByRecipe(ctx context.Context, recipeID uuid.UUID) (int64, error) {
	args := m.Called(ctx, recipeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWorkOrderRepository) CountOpenByStockItem(ctx context.Context, itemID uuid.UUID) (int64, error) {
	args := m.Called(ctx, itemID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWorkOrderRepository) Save(ctx context.Context, order *planning.WorkOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockWorkOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockDemandPlanRepository is a mock implementation of planning.DemandPlanRepository
type MockDemandPlanRepository struct {
	mock.Mock
}

func (m *MockDemandPlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*planning.DemandPlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*planning.DemandPlan), args.Error(1)
}

func (m *MockDemandPlanRepository) FindAll(ctx context.Context, filter shared.Filter) ([]planning.DemandPlan, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]planning.DemandPlan), args.Error(1)
}

func (m *MockDemandPlanRepository) Save(ctx context.Context, plan *planning.DemandPlan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockDemandPlanRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockWeeklyTemplateRepository is a mock implementation of planning.WeeklyTemplateRepository
type MockWeeklyTemplateRepository struct {
	mock.Mock
}

func (m *MockWeeklyTemplateRepository) FindAll(ctx context.Context) ([]planning.WeeklyTemplate, error) {
	args := m.Called(ctx)
	return args.Get(0).([]planning.WeeklyTemplate), args.Error(1)
}

func (m *MockWeeklyTemplateRepository) FindByFinishedGood(ctx context.Context, finishedGoodID uuid.UUID) (*planning.WeeklyTemplate, error) {
	args := m.Called(ctx, finishedGoodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*planning.WeeklyTemplate), args.Error(1)
}

func (m *MockWeeklyTemplateRepository) Save(ctx context.Context, template *planning.WeeklyTemplate) error {
	args := m.Called(ctx, template)
	return args.Error(0)
}

// MockWeeklyPlanRepository is a mock implementation of planning.WeeklyPlanRepository
type MockWeeklyPlanRepository struct {
	mock.Mock
}

func (m *MockWeeklyPlanRepository) FindByWeek(ctx context.Context, weekOf time.Time) ([]planning.WeeklyPlan, error) {
	args := m.Called(ctx, weekOf)
	return args.Get(0).([]planning.WeeklyPlan), args.Error(1)
}

func (m *MockWeeklyPlanRepository) FindAll(ctx context.Context, filter shared.Filter) ([]planning.WeeklyPlan, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]planning.WeeklyPlan), args.Error(1)
}

func (m *MockWeeklyPlanRepository) CountByWeek(ctx context.Context, weekOf time.Time) (int64, error) {
	args := m.Called(ctx, weekOf)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWeeklyPlanRepository) Save(ctx context.Context, plan *planning.WeeklyPlan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

// MockProductionRecordRepository is a mock implementation of planning.ProductionRecordRepository
type MockProductionRecordRepository struct {
	mock.Mock
}

func (m *MockProductionRecordRepository) Append(ctx context.Context, record *planning.ProductionRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockProductionRecordRepository) FindByWorkOrder(ctx context.Context, workOrderID uuid.UUID) ([]planning.ProductionRecord, error) {
	args := m.Called(ctx, workOrderID)
	return args.Get(0).([]planning.ProductionRecord), args.Error(1)
}

func (m *MockProductionRecordRepository) FindRecent(ctx context.Context, filter shared.Filter) ([]planning.ProductionRecord, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]planning.ProductionRecord), args.Error(1)
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
