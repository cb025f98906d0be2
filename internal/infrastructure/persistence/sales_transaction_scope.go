package persistence

import (
	"context"

	"gorm.io/gorm"

	appsales "github.com/ovenplan/backend/internal/application/sales"
	"github.com/ovenplan/backend/internal/domain/inventory"
	"github.com/ovenplan/backend/internal/domain/sales"
)

// GormSalesTransactionScope implements the sales TransactionScope using
// GORM transactions.
type GormSalesTransactionScope struct {
	db *gorm.DB
}

// NewGormSalesTransactionScope creates a new GormSalesTransactionScope
func NewGormSalesTransactionScope(db *gorm.DB) *GormSalesTransactionScope {
	return &GormSalesTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
func (s *GormSalesTransactionScope) Execute(ctx context.Context, fn func(repos appsales.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormSalesTransactionalRepositories{tx: tx})
	})
}

type gormSalesTransactionalRepositories struct {
	tx *gorm.DB
}

func (r *gormSalesTransactionalRepositories) SalesRepo() sales.SalesRecordRepository {
	return NewGormSalesRecordRepository(r.tx)
}

func (r *gormSalesTransactionalRepositories) EndOfDayRepo() sales.EndOfDayRecordRepository {
	return NewGormEndOfDayRecordRepository(r.tx)
}

func (r *gormSalesTransactionalRepositories) StockItemRepo() inventory.StockItemRepository {
	return NewGormStockItemRepository(r.tx)
}

func (r *gormSalesTransactionalRepositories) MovementRepo() inventory.StockMovementRepository {
	return NewGormStockMovementRepository(r.tx)
}

var _ appsales.TransactionScope = (*GormSalesTransactionScope)(nil)
var _ appsales.TransactionalRepositories = (*gormSalesTransactionalRepositories)(nil)
