package planning

import (
	"context"

	"github.com/google/uuid"
	"github.com/ovenplan/backend/internal/domain/inventory"
	"github.com/ovenplan/backend/internal/domain/recipe"
	"github.com/shopspring/decimal"
)

// stockSnapshotFor fetches the current stock level of every ingredient in a
// recipe, keyed by ingredient id. Missing rows count as zero stock.
func stockSnapshotFor(ctx context.Context, stockRepo inventory.StockItemRepository, r *recipe.Recipe) (map[uuid.UUID]decimal.Decimal, error) {
	ids := make([]uuid.UUID, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		ids = append(ids, ing.IngredientID)
	}
	items, err := stockRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	snapshot := make(map[uuid.UUID]decimal.Decimal, len(items))
	for i := range items {
		snapshot[items[i].ID] = items[i].CurrentStock
	}
	return snapshot, nil
}
