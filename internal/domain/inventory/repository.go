package inventory

import (
	"context"

	"github.com/google/uuid"
	"github.com/ovenplan/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// StockItemRepository defines the interface for stock item persistence
type StockItemRepository interface {
	// FindByID finds a stock item by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*StockItem, error)

	// FindByIDs finds multiple stock items by their IDs
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]StockItem, error)

	// FindByKind lists stock items of one kind, ordered by name
	FindByKind(ctx context.Context, kind StockItemKind, filter shared.Filter) ([]StockItem, error)

	// FindAll lists all stock items
	FindAll(ctx context.Context, filter shared.Filter) ([]StockItem, error)

	// FindBelowThreshold finds items whose stock sits at or below their threshold
	FindBelowThreshold(ctx context.Context, filter shared.Filter) ([]StockItem, error)

	// FindEndOfDayCandidates finds finished goods with remaining stock that
	// are not themselves referenced as another good's day-old target
	FindEndOfDayCandidates(ctx context.Context) ([]StockItem, error)

	// CountReferencingAsDayOld counts finished goods that point at the given
	// item as their day-old target
	CountReferencingAsDayOld(ctx context.Context, id uuid.UUID) (int64, error)

	// Save creates or updates a stock item (descriptive fields; never use
	// Save to persist a computed stock level)
	Save(ctx context.Context, item *StockItem) error

	// AdjustStock atomically applies a signed delta to current_stock.
	// Negative deltas are guarded so the persisted value never drops below
	// zero; an insufficient balance returns shared.ErrInsufficientStock with
	// no change. Returns the resulting stock level on success.
	AdjustStock(ctx context.Context, id uuid.UUID, delta decimal.Decimal) (decimal.Decimal, error)

	// Delete hard-deletes a stock item. Callers are responsible for the
	// dependents check; the repository only removes the row.
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts stock items matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// StockMovementRepository persists the append-only stock movement log
type StockMovementRepository interface {
	// Append writes one movement record; records are never updated or deleted
	Append(ctx context.Context, movement *StockMovement) error

	// FindByItem lists movements for one item, newest first
	FindByItem(ctx context.Context, itemID uuid.UUID, filter shared.Filter) ([]StockMovement, error)

	// FindRecent lists the most recent movements across all items
	FindRecent(ctx context.Context, filter shared.Filter) ([]StockMovement, error)

	// CountByItem counts movements referencing an item
	CountByItem(ctx context.Context, itemID uuid.UUID) (int64, error)
}
