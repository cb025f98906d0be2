package planning

import (
	"context"

	"github.com/ovenplan/backend/internal/domain/inventory"
	"github.com/ovenplan/backend/internal/domain/planning"
)

// TransactionScope provides transactional access to the repositories the
// planning services mutate together: work orders, demand plans, stock and
// the append-only audit logs. Everything executed inside one scope commits
// or rolls back atomically.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the planning-side repositories
// within a transaction. All repositories share the same underlying database
// transaction.
type TransactionalRepositories interface {
	// WorkOrderRepo returns the work order repository scoped to the current transaction
	WorkOrderRepo() planning.WorkOrderRepository
	// DemandPlanRepo returns the demand plan repository scoped to the current transaction
	DemandPlanRepo() planning.DemandPlanRepository
	// WeeklyPlanRepo returns the weekly plan repository scoped to the current transaction
	WeeklyPlanRepo() planning.WeeklyPlanRepository
	// ProductionRecordRepo returns the production record repository scoped to the current transaction
	ProductionRecordRepo() planning.ProductionRecordRepository
	// StockItemRepo returns the stock item repository scoped to the current transaction
	StockItemRepo() inventory.StockItemRepository
	// MovementRepo returns the stock movement repository scoped to the current transaction
	MovementRepo() inventory.StockMovementRepository
}

// NoOpTransactionScope runs scope functions without a real transaction.
// Useful for tests.
type NoOpTransactionScope struct {
	workOrderRepo        planning.WorkOrderRepository
	demandPlanRepo       planning.DemandPlanRepository
	weeklyPlanRepo       planning.WeeklyPlanRepository
	productionRecordRepo planning.ProductionRecordRepository
	stockItemRepo        inventory.StockItemRepository
	movementRepo         inventory.StockMovementRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	workOrderRepo planning.WorkOrderRepository,
	demandPlanRepo planning.DemandPlanRepository,
	weeklyPlanRepo planning.WeeklyPlanRepository,
	productionRecordRepo planning.ProductionRecordRepository,
	stockItemRepo inventory.StockItemRepository,
	movementRepo inventory.StockMovementRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		workOrderRepo:        workOrderRepo,
		demandPlanRepo:       demandPlanRepo,
		weeklyPlanRepo:       weeklyPlanRepo,
		productionRecordRepo: productionRecordRepo,
		stockItemRepo:        stockItemRepo,
		movementRepo:         movementRepo,
	}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// WorkOrderRepo returns the work order repository.
func (s *NoOpTransactionScope) WorkOrderRepo() planning.WorkOrderRepository {
	return s.workOrderRepo
}

// DemandPlanRepo returns the demand plan repository.
func (s *NoOpTransactionScope) DemandPlanRepo() planning.DemandPlanRepository {
	return s.demandPlanRepo
}

// WeeklyPlanRepo returns the weekly plan repository.
func (s *NoOpTransactionScope) WeeklyPlanRepo() planning.WeeklyPlanRepository {
	return s.weeklyPlanRepo
}

// ProductionRecordRepo returns the production record repository.
func (s *NoOpTransactionScope) ProductionRecordRepo() planning.ProductionRecordRepository {
	return s.productionRecordRepo
}

// StockItemRepo returns the stock item repository.
func (s *NoOpTransactionScope) StockItemRepo() inventory.StockItemRepository {
	return s.stockItemRepo
}

// MovementRepo returns the stock movement repository.
func (s *NoOpTransactionScope) MovementRepo() inventory.StockMovementRepository {
	return s.movementRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
