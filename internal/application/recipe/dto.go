package recipe

import (
	"time"

	"github.com/google/uuid"
	"github.com/ovenplan/backend/internal/domain/recipe"
	"github.com/shopspring/decimal"
)

// RecipeIngredientRequest represents one BOM line in a create/update request
type RecipeIngredientRequest struct {
	IngredientID uuid.UUID       `json:"ingredient_id" binding:"required"`
	Quantity     decimal.Decimal `json:"quantity" binding:"required"`
	Unit         string          `json:"unit" binding:"required"`
}

// CreateRecipeRequest represents a request to create a recipe
type CreateRecipeRequest struct {
	Name           string                    `json:"name" binding:"required"`
	FinishedGoodID uuid.UUID                 `json:"finished_good_id" binding:"required"`
	YieldQuantity  decimal.Decimal           `json:"yield_quantity" binding:"required"`
	YieldUnit      string                    `json:"yield_unit" binding:"required"`
	Ingredients    []RecipeIngredientRequest `json:"ingredients" binding:"required,min=1,dive"`
}

// UpdateRecipeRequest represents a request to update a recipe. Yield and
// ingredient changes are structural and are blocked while open work orders
// reference the recipe.
type UpdateRecipeRequest struct {
	Name          *string                   `json:"name"`
	YieldQuantity *decimal.Decimal          `json:"yield_quantity"`
	YieldUnit     *string                   `json:"yield_unit"`
	Ingredients   []RecipeIngredientRequest `json:"ingredients" binding:"omitempty,min=1,dive"`
}

// RecipeIngredientResponse represents one BOM line in API responses
type RecipeIngredientResponse struct {
	IngredientID   uuid.UUID       `json:"ingredient_id"`
	IngredientName string          `json:"ingredient_name"`
	Quantity       decimal.Decimal `json:"quantity"`
	Unit           string          `json:"unit"`
}

// RecipeResponse represents a recipe in API responses
type RecipeResponse struct {
	ID               uuid.UUID                  `json:"id"`
	Name             string                     `json:"name"`
	FinishedGoodID   uuid.UUID                  `json:"finished_good_id"`
	FinishedGoodName string                     `json:"finished_good_name"`
	YieldQuantity    decimal.Decimal            `json:"yield_quantity"`
	YieldUnit        string                     `json:"yield_unit"`
	Ingredients      []RecipeIngredientResponse `json:"ingredients"`
	Status           string                     `json:"status"`
	CreatedBy        string                     `json:"created_by"`
	CreatedAt        time.Time                  `json:"created_at"`
	UpdatedAt        time.Time                  `json:"updated_at"`
}

// RecipeListFilter represents filter options for listing recipes
type RecipeListFilter struct {
	IncludeArchived bool `form:"include_archived"`
	Page            int  `form:"page" binding:"omitempty,min=1"`
	PageSize        int  `form:"page_size" binding:"omitempty,min=1,max=200"`
}

// ToRecipeResponse converts a domain recipe to its response form
func ToRecipeResponse(r *recipe.Recipe) *RecipeResponse {
	ingredients := make([]RecipeIngredientResponse, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		ingredients = append(ingredients, RecipeIngredientResponse{
			IngredientID:   ing.IngredientID,
			IngredientName: ing.IngredientName,
			Quantity:       ing.Quantity,
			Unit:           string(ing.Unit),
		})
	}
	return &RecipeResponse{
		ID:               r.ID,
		Name:             r.Name,
		FinishedGoodID:   r.FinishedGoodID,
		FinishedGoodName: r.FinishedGoodName,
		YieldQuantity:    r.YieldQuantity,
		YieldUnit:        string(r.YieldUnit),
		Ingredients:      ingredients,
		Status:           r.Status.String(),
		CreatedBy:        r.CreatedBy,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}
