package recipe

import (
	"context"

	"github.com/google/uuid"
	"github.com/ovenplan/backend/internal/domain/shared"
)

// RecipeRepository defines the interface for recipe persistence
type RecipeRepository interface {
	// FindByID finds a recipe by its ID, regardless of status. Work orders
	// reference archived recipes and those must stay resolvable.
	FindByID(ctx context.Context, id uuid.UUID) (*Recipe, error)

	// FindActive lists active recipes
	FindActive(ctx context.Context, filter shared.Filter) ([]Recipe, error)

	// FindAll lists all recipes including archived ones
	FindAll(ctx context.Context, filter shared.Filter) ([]Recipe, error)

	// FindActiveByFinishedGood finds the active recipe producing a finished
	// good, or shared.ErrNotFound when none exists
	FindActiveByFinishedGood(ctx context.Context, finishedGoodID uuid.UUID) (*Recipe, error)

	// CountByIngredient counts recipes (any status) whose BOM references an ingredient
	CountByIngredient(ctx context.Context, ingredientID uuid.UUID) (int64, error)

	// CountByFinishedGood counts recipes (any status) producing a finished good
	CountByFinishedGood(ctx context.Context, finishedGoodID uuid.UUID) (int64, error)

	// Save creates or updates a recipe with its ingredient lines
	Save(ctx context.Context, recipe *Recipe) error

	// Count counts recipes matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
