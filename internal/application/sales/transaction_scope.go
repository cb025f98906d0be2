package sales

import (
	"context"

	"github.com/ovenplan/backend/internal/domain/inventory"
	"github.com/ovenplan/backend/internal/domain/sales"
)

// TransactionScope provides transactional access to the repositories sales
// and end-of-day reconciliation mutate together.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the sales-side repositories
// within a transaction.
type TransactionalRepositories interface {
	// SalesRepo returns the sales record repository scoped to the current transaction
	SalesRepo() sales.SalesRecordRepository
	// EndOfDayRepo returns the end-of-day record repository scoped to the current transaction
	EndOfDayRepo() sales.EndOfDayRecordRepository
	// StockItemRepo returns the stock item repository scoped to the current transaction
	StockItemRepo() inventory.StockItemRepository
	// MovementRepo returns the stock movement repository scoped to the current transaction
	MovementRepo() inventory.StockMovementRepository
}

// NoOpTransactionScope runs scope functions without a real transaction.
// Useful for tests.
type NoOpTransactionScope struct {
	salesRepo     sales.SalesRecordRepository
	endOfDayRepo  sales.EndOfDayRecordRepository
	stockItemRepo inventory.StockItemRepository
	movementRepo  inventory.StockMovementRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	salesRepo sales.SalesRecordRepository,
	endOfDayRepo sales.EndOfDayRecordRepository,
	stockItemRepo inventory.StockItemRepository,
	movementRepo inventory.StockMovementRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		salesRepo:     salesRepo,
		endOfDayRepo:  endOfDayRepo,
		stockItemRepo: stockItemRepo,
		movementRepo:  movementRepo,
	}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// SalesRepo returns the sales record repository.
func (s *NoOpTransactionScope) SalesRepo() sales.SalesRecordRepository {
	return s.salesRepo
}

// EndOfDayRepo returns the end-of-day record repository.
func (s *NoOpTransactionScope) EndOfDayRepo() sales.EndOfDayRecordRepository {
	return s.endOfDayRepo
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
