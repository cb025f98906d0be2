package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ovenplan/backend/internal/domain/planning"
	"github.com/ovenplan/backend/internal/domain/shared"
)

func seedMTSPlan(t *testing.T, db *gorm.DB, goodID uuid.UUID, target int64) *planning.DemandPlan {
	t.Helper()

	plan, err := planning.NewMTSDemandPlan(goodID, "Sourdough", decimal.NewFromInt(target), decimal.NewFromInt(5), planning.RecipeSnapshot{
		RecipeID:   uuid.New(),
		RecipeName: "Sourdough",
		Yield:      decimal.NewFromInt(10),
	}, "test")
	require.NoError(t, err)
	plan.ClearDomainEvents()
	require.NoError(t, NewGormDemandPlanRepository(db).Save(context.Background(), plan))
	return plan
}

func TestGormDemandPlanRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormDemandPlanRepository(db)
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		plan := seedMTSPlan(t, db, uuid.New(), 30)

		found, err := repo.FindByID(ctx, plan.ID)
		require.NoError(t, err)
		assert.Equal(t, planning.DemandPlanStatusOpen, found.Status)
		assert.Equal(t, plan.BatchesRequired, found.BatchesRequired)
		assert.True(t, found.TargetQuantity.Equal(decimal.NewFromInt(30)))
	})

	t.Run("not found", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("status change persists", func(t *testing.T) {
		plan := seedMTSPlan(t, db, uuid.New(), 20)
		require.NoError(t, plan.Cancel())
		plan.ClearDomainEvents()
		require.NoError(t, repo.Save(ctx, plan))

		found, err := repo.FindByID(ctx, plan.ID)
		require.NoError(t, err)
		assert.Equal(t, planning.DemandPlanStatusCancelled, found.Status)
	})

	t.Run("mto plan keeps customer and pickup", func(t *testing.T) {
		pickup := time.Date(2026, 9, 5, 9, 0, 0, 0, time.UTC)
		plan, err := planning.NewMTODemandPlan(uuid.New(), "Wedding Cake", decimal.NewFromInt(2), "A. Dupont", pickup, planning.RecipeSnapshot{
			RecipeID:   uuid.New(),
			RecipeName: "Wedding Cake",
			Yield:      decimal.NewFromInt(1),
		}, "test")
		require.NoError(t, err)
		plan.ClearDomainEvents()
		require.NoError(t, repo.Save(ctx, plan))

		found, err := repo.FindByID(ctx, plan.ID)
		require.NoError(t, err)
		assert.Equal(t, planning.OrderTypeMTO, found.OrderType)
		assert.Equal(t, "A. Dupont", found.CustomerName)
		require.NotNil(t, found.PickupAt)
	})

	t.Run("filters by status and order type", func(t *testing.T) {
		filter := shared.DefaultFilter()
		filter.Filters = map[string]interface{}{"status": string(planning.DemandPlanStatusCancelled)}

		plans, err := repo.FindAll(ctx, filter)
		require.NoError(t, err)
		assert.Len(t, plans, 1)

		filter.Filters = map[string]interface{}{"order_type": string(planning.OrderTypeMTO)}
		plans, err = repo.FindAll(ctx, filter)
		require.NoError(t, err)
		assert.Len(t, plans, 1)

		count, err := repo.Count(ctx, shared.Filter{})
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})
}
