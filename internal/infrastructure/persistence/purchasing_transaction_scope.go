package persistence

import (
	"context"

	"gorm.io/gorm"

	apppurchasing "github.com/ovenplan/backend/internal/application/purchasing"
	"github.com/ovenplan/backend/internal/domain/inventory"
	"github.com/ovenplan/backend/internal/domain/purchasing"
)

// GormPurchasingTransactionScope implements the purchasing TransactionScope
// using GORM transactions.
type GormPurchasingTransactionScope struct {
	db *gorm.DB
}

// NewGormPurchasingTransactionScope creates a new GormPurchasingTransactionScope
func NewGormPurchasingTransactionScope(db *gorm.DB) *GormPurchasingTransactionScope {
	return &GormPurchasingTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
func (s *GormPurchasingTransactionScope) Execute(ctx context.Context, fn func(repos apppurchasing.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormPurchasingTransactionalRepositories{tx: tx})
	})
}

type gormPurchasingTransactionalRepositories struct {
	tx *gorm.DB
}

func (r *gormPurchasingTransactionalRepositories) OrderRepo() purchasing.PurchaseOrderRepository {
	return NewGormPurchaseOrderRepository(r.tx)
}

func (r *gormPurchasingTransactionalRepositories) StockItemRepo() inventory.StockItemRepository {
	return NewGormStockItemRepository(r.tx)
}

func (r *gormPurchasingTransactionalRepositories) MovementRepo() inventory.StockMovementRepository {
	return NewGormStockMovementRepository(r.tx)
}

var _ apppurchasing.TransactionScope = (*GormPurchasingTransactionScope)(nil)
var _ apppurchasing.TransactionalRepositories = (*gormPurchasingTransactionalRepositories)(nil)
