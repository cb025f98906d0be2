package purchasing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/ovenplan/backend/internal/domain/inventory"
	"github.com/ovenplan/backend/internal/domain/planning"
	"github.com/ovenplan/backend/internal/domain/purchasing"
	"github.com/ovenplan/backend/internal/domain/shared"
)

// MockPurchaseOrderRepository is a mock implementation of purchasing.PurchaseOrderRepository
type MockPurchaseOrderRepository struct {
	mock.Mock
}

func (m *MockPurchaseOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*purchasing.PurchaseOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*purchasing.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*purchasing.PurchaseOrder, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*purchasing.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepository) FindByStatus(ctx context.Context, status purchasing.PurchaseOrderStatus, filter shared.Filter) ([]*purchasing.PurchaseOrder, error) {
	args := m.Called(ctx, status, filter)
	return args.Get(0).([]*purchasing.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepository) Save(ctx context.Context, order *purchasing.PurchaseOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockPurchaseOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPurchaseOrderRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

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
