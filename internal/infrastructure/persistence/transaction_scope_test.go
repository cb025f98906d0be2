package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appplanning "github.com/ovenplan/backend/internal/application/planning"
	"github.com/ovenplan/backend/internal/domain/inventory"
	"github.com/ovenplan/backend/internal/domain/shared/valueobject"
)

func TestGormPlanningTransactionScope(t *testing.T) {
	db := newTestDB(t)
	scope := NewGormPlanningTransactionScope(db)
	ctx := context.Background()

	t.Run("commits on success", func(t *testing.T) {
		flour := seedStockItem(t, db, inventory.StockItemKindIngredient, "Bread Flour", valueobject.UnitKilogram, 20, 2)
		loaf := seedStockItem(t, db, inventory.StockItemKindFinishedGood, "Sourdough", valueobject.UnitPiece, 0, 2)

		err := scope.Execute(ctx, func(repos appplanning.TransactionalRepositories) error {
			if _, err := repos.StockItemRepo().AdjustStock(ctx, flour.ID, decimal.NewFromInt(-8)); err != nil {
				return err
			}
			_, err := repos.StockItemRepo().AdjustStock(ctx, loaf.ID, decimal.NewFromInt(20))
			return err
		})
		require.NoError(t, err)

		repo := NewGormStockItemRepository(db)
		found, err := repo.FindByID(ctx, flour.ID)
		require.NoError(t, err)
		assert.True(t, found.CurrentStock.Equal(decimal.NewFromInt(12)))

		found, err = repo.FindByID(ctx, loaf.ID)
		require.NoError(t, err)
		assert.True(t, found.CurrentStock.Equal(decimal.NewFromInt(20)))
	})

	t.Run("rolls back every write on failure", func(t *testing.T) {
		flour := seedStockItem(t, db, inventory.StockItemKindIngredient, "Rye Flour", valueobject.UnitKilogram, 10, 1)
		boom := errors.New("boom")

		err := scope.Execute(ctx, func(repos appplanning.TransactionalRepositories) error {
			if _, err := repos.StockItemRepo().AdjustStock(ctx, flour.ID, decimal.NewFromInt(-6)); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)

		found, err := NewGormStockItemRepository(db).FindByID(ctx, flour.ID)
		require.NoError(t, err)
		assert.True(t, found.CurrentStock.Equal(decimal.NewFromInt(10)))
	})
}
