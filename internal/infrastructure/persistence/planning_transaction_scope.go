package persistence

import (
	"context"

	"gorm.io/gorm"

	appplanning "github.com/ovenplan/backend/internal/application/planning"
	"github.com/ovenplan/backend/internal/domain/inventory"
	"github.com/ovenplan/backend/internal/domain/planning"
)

// GormPlanningTransactionScope implements the planning TransactionScope
// using GORM transactions.
type GormPlanningTransactionScope struct {
	db *gorm.DB
}

// NewGormPlanningTransactionScope creates a new GormPlanningTransactionScope
func NewGormPlanningTransactionScope(db *gorm.DB) *GormPlanningTransactionScope {
	return &GormPlanningTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
func (s *GormPlanningTransactionScope) Execute(ctx context.Context, fn func(repos appplanning.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormPlanningTransactionalRepositories{tx: tx})
	})
}

type gormPlanningTransactionalRepositories struct {
	tx *gorm.DB
}

func (r *gormPlanningTransactionalRepositories) WorkOrderRepo() planning.WorkOrderRepository {
	return NewGormWorkOrderRepository(r.tx)
}

func (r *gormPlanningTransactionalRepositories) DemandPlanRepo() planning.DemandPlanRepository {
	return NewGormDemandPlanRepository(r.tx)
}

func (r *gormPlanningTransactionalRepositories) WeeklyPlanRepo() planning.WeeklyPlanRepository {
	return NewGormWeeklyPlanRepository(r.tx)
}

func (r *gormPlanningTransactionalRepositories) ProductionRecordRepo() planning.ProductionRecordRepository {
	return NewGormProductionRecordRepository(r.tx)
}

func (r *gormPlanningTransactionalRepositories) StockItemRepo() inventory.StockItemRepository {
	return NewGormStockItemRepository(r.tx)
}

func (r *gormPlanningTransactionalRepositories) MovementRepo() inventory.StockMovementRepository {
	return NewGormStockMovementRepository(r.tx)
}

var _ appplanning.TransactionScope = (*GormPlanningTransactionScope)(nil)
var _ appplanning.TransactionalRepositories = (*gormPlanningTransactionalRepositories)(nil)
