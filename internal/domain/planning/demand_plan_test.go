package planning

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecipeSnapshot() RecipeSnapshot {
	return RecipeSnapshot{
		RecipeID:   uuid.New(),
		RecipeName: "Sourdough",
		Yield:      decimal.NewFromInt(8),
	}
}

func TestNewMTSDemandPlan(t *testing.T) {
	plan, err := NewMTSDemandPlan(uuid.New(), "Sourdough Loaf",
		decimal.NewFromInt(30), decimal.NewFromInt(12), testRecipeSnapshot(), "tester")
	require.NoError(t, err)

	assert.Equal(t, OrderTypeMTS, plan.OrderType)
	assert.Equal(t, DemandPlanStatusOpen, plan.Status)
	require.NotNil(t, plan.Shortfall)
	assert.True(t, plan.Shortfall.Equal(decimal.NewFromInt(18)))
	// ceil(18 / 8) = 3 batches
	assert.Equal(t, int64(3), plan.BatchesRequired)
	assert.True(t, plan.IsOpen())
}

func TestNewMTSDemandPlan_StockCoversTarget(t *testing.T) {
	plan, err := NewMTSDemandPlan(uuid.New(), "Sourdough Loaf",
		decimal.NewFromInt(10), decimal.NewFromInt(25), testRecipeSnapshot(), "tester")
	require.NoError(t, err)

	assert.True(t, plan.Shortfall.Equal(decimal.Zero))
	assert.Equal(t, int64(0), plan.BatchesRequired, "surplus stock means nothing to bake")
}

func TestNewMTODemandPlan(t *testing.T) {
	pickup := time.Now().Add(48 * time.Hour)
	plan, err := NewMTODemandPlan(uuid.New(), "Wedding Cake",
		decimal.NewFromInt(30), "Cafe Lumen", pickup, testRecipeSnapshot(), "tester")
	require.NoError(t, err)

	assert.Equal(t, OrderTypeMTO, plan.OrderType)
	assert.Equal(t, "Cafe Lumen", plan.CustomerName)
	require.NotNil(t, plan.PickupAt)
	assert.Nil(t, plan.CurrentStock, "shelf stock never offsets a customer commitment")
	assert.Nil(t, plan.Shortfall)
	// ceil(30 / 8) = 4 batches from the full target
	assert.Equal(t, int64(4), plan.BatchesRequired)
}

func TestNewDemandPlan_Validation(t *testing.T) {
	goodID := uuid.New()
	snap := testRecipeSnapshot()
	pickup := time.Now().Add(time.Hour)

	t.Run("nil finished good", func(t *testing.T) {
		_, err := NewMTSDemandPlan(uuid.Nil, "Loaf", decimal.NewFromInt(10), decimal.Zero, snap, "tester")
		assertDomainErrorCode(t, err, "INVALID_FINISHED_GOOD")
	})
	t.Run("zero target", func(t *testing.T) {
		_, err := NewMTSDemandPlan(goodID, "Loaf", decimal.Zero, decimal.Zero, snap, "tester")
		assertDomainErrorCode(t, err, "INVALID_QUANTITY")
	})
	t.Run("negative current stock", func(t *testing.T) {
		_, err := NewMTSDemandPlan(goodID, "Loaf", decimal.NewFromInt(10), decimal.NewFromInt(-1), snap, "tester")
		assertDomainErrorCode(t, err, "INVALID_QUANTITY")
	})
	t.Run("unresolved recipe", func(t *testing.T) {
		_, err := NewMTSDemandPlan(goodID, "Loaf", decimal.NewFromInt(10), decimal.Zero, RecipeSnapshot{}, "tester")
		assertDomainErrorCode(t, err, "RECIPE_NOT_FOUND")
	})
	t.Run("zero yield", func(t *testing.T) {
		bad := snap
		bad.Yield = decimal.Zero
		_, err := NewMTSDemandPlan(goodID, "Loaf", decimal.NewFromInt(10), decimal.Zero, bad, "tester")
		assertDomainErrorCode(t, err, "YIELD_NOT_POSITIVE")
	})
	t.Run("missing customer", func(t *testing.T) {
		_, err := NewMTODemandPlan(goodID, "Loaf", decimal.NewFromInt(10), "", pickup, snap, "tester")
		assertDomainErrorCode(t, err, "INVALID_CUSTOMER")
	})
	t.Run("missing pickup", func(t *testing.T) {
		_, err := NewMTODemandPlan(goodID, "Loaf", decimal.NewFromInt(10), "Cafe Lumen", time.Time{}, snap, "tester")
		assertDomainErrorCode(t, err, "INVALID_PICKUP")
	})
}

func TestDemandPlan_Fulfill(t *testing.T) {
	plan, err := NewMTSDemandPlan(uuid.New(), "Loaf",
		decimal.NewFromInt(30), decimal.Zero, testRecipeSnapshot(), "tester")
	require.NoError(t, err)

	require.NoError(t, plan.Fulfill())
	assert.Equal(t, DemandPlanStatusFulfilled, plan.Status)
	require.NotNil(t, plan.FulfilledAt)
	assert.False(t, plan.IsOpen())

	events := plan.GetDomainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, EventTypeDemandPlanFulfilled, events[0].EventType())

	assertDomainErrorCode(t, plan.Fulfill(), "INVALID_STATE")
	assertDomainErrorCode(t, plan.Cancel(), "INVALID_STATE")
}

func TestDemandPlan_Cancel(t *testing.T) {
	plan, err := NewMTSDemandPlan(uuid.New(), "Loaf",
		decimal.NewFromInt(30), decimal.Zero, testRecipeSnapshot(), "tester")
	require.NoError(t, err)

	require.NoError(t, plan.Cancel())
	assert.Equal(t, DemandPlanStatusCancelled, plan.Status)
	require.NotNil(t, plan.CancelledAt)

	assertDomainErrorCode(t, plan.Fulfill(), "INVALID_STATE")
	assertDomainErrorCode(t, plan.Cancel(), "INVALID_STATE")
}
