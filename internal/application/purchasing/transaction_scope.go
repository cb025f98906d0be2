package purchasing

import (
	"context"

	"github.com/ovenplan/backend/internal/domain/inventory"
	"github.com/ovenplan/backend/internal/domain/purchasing"
)

// TransactionScope provides transactional access to the repositories goods
// receipt mutates together: the purchase order, stock and the movement log.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the purchasing-side
// repositories within a transaction.
type TransactionalRepositories interface {
	// OrderRepo returns the purchase order repository scoped to the current transaction
	OrderRepo() purchasing.PurchaseOrderRepository
	// StockItemRepo returns the stock item repository scoped to the current transaction
	StockItemRepo() inventory.StockItemRepository
	// MovementRepo returns the stock movement repository scoped to the current transaction
	MovementRepo() inventory.StockMovementRepository
}

// NoOpTransactionScope runs scope functions without a real transaction.
// Useful for tests.
type NoOpTransactionScope struct {
	orderRepo     purchasing.PurchaseOrderRepository
	stockItemRepo inventory.StockItemRepository
	movementRepo  inventory.StockMovementRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	orderRepo purchasing.PurchaseOrderRepository,
	stockItemRepo inventory.StockItemRepository,
	movementRepo inventory.StockMovementRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		orderRepo:     orderRepo,
		stockItemRepo: stockItemRepo,
		movementRepo:  movementRepo,
	}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// OrderRepo returns the purchase order repository.
func (s *NoOpTransactionScope) OrderRepo() purchasing.PurchaseOrderRepository {
	return s.orderRepo
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
