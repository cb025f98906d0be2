package inventory

import (
	"context"

	"github.com/ovenplan/backend/internal/domain/inventory"
)

// TransactionScope provides transactional access to inventory repositories.
// When a function is executed within a transaction scope, all repository
// operations are part of the same database transaction and commit or roll
// back atomically.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the inventory repositories
// within a transaction. All repositories share the same underlying
// database transaction.
type TransactionalRepositories interface {
	// StockItemRepo returns the stock item repository scoped to the current transaction
	StockItemRepo() inventory.StockItemRepository
	// MovementRepo returns the stock movement repository scoped to the current transaction
	MovementRepo() inventory.StockMovementRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. Useful for tests.
type NoOpTransactionScope struct {
	stockItemRepo inventory.StockItemRepository
	movementRepo  inventory.StockMovementRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(stockItemRepo inventory.StockItemRepository, movementRepo inventory.StockMovementRepository) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		stockItemRepo: stockItemRepo,
		movementRepo:  movementRepo,
	}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
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
