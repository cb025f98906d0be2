package recipe

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/ovenplan/backend/internal/domain/inventory"
	"github.com/ovenplan/backend/internal/domain/recipe"
	"github.com/ovenplan/backend/internal/domain/shared"
	"github.com/ovenplan/backend/internal/domain/shared/valueobject"
)

// OpenWorkOrderCounter reports open work orders referencing a recipe,
// implemented by the planning context.
type OpenWorkOrderCounter interface {
	CountOpenByRecipe(ctx context.Context, recipeID uuid.UUID) (int64, error)
}

// RecipeService handles recipe business operations
type RecipeService struct {
	recipeRepo recipe.RecipeRepository
	stockRepo  inventory.StockItemRepository
	workOrders OpenWorkOrderCounter
}

// NewRecipeService creates a new RecipeService
func NewRecipeService(recipeRepo recipe.RecipeRepository, stockRepo inventory.StockItemRepository, workOrders OpenWorkOrderCounter) *RecipeService {
	return &RecipeService{
		recipeRepo: recipeRepo,
		stockRepo:  stockRepo,
		workOrders: workOrders,
	}
}

// Create creates a new active recipe. The finished good and every
// ingredient must exist as stock items of the right kind; names are
// snapshotted onto the recipe.
func (s *RecipeService) Create(ctx context.Context, req *CreateRecipeRequest, createdBy string) (*RecipeResponse, error) {
	yieldUnit, err := valueobject.ParseUnit(req.YieldUnit)
	if err != nil {
		return nil, err
	}

	good, err := s.stockRepo.FindByID(ctx, req.FinishedGoodID)
	if err != nil {
		return nil, err
	}
	if good.Kind != inventory.StockItemKindFinishedGood {
		return nil, shared.NewDomainError("INVALID_FINISHED_GOOD", fmt.Sprintf("%s is not a finished good", good.Name))
	}

	inputs, err := s.resolveIngredients(ctx, req.Ingredients)
	if err != nil {
		return nil, err
	}

	r, err := recipe.NewRecipe(req.Name, good.ID, good.Name, req.YieldQuantity, yieldUnit, inputs, createdBy)
	if err != nil {
		return nil, err
	}
	if err := s.recipeRepo.Save(ctx, r); err != nil {
		return nil, err
	}
	return ToRecipeResponse(r), nil
}

// GetByID retrieves a recipe by ID, archived ones included
func (s *RecipeService) GetByID(ctx context.Context, id uuid.UUID) (*RecipeResponse, error) {
	r, err := s.recipeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToRecipeResponse(r), nil
}

// GetActiveByFinishedGood resolves the active recipe producing a finished good
func (s *RecipeService) GetActiveByFinishedGood(ctx context.Context, finishedGoodID uuid.UUID) (*RecipeResponse, error) {
	r, err := s.recipeRepo.FindActiveByFinishedGood(ctx, finishedGoodID)
	if err != nil {
		return nil, err
	}
	return ToRecipeResponse(r), nil
}

// List lists recipes, active only by default
func (s *RecipeService) List(ctx context.Context, filter *RecipeListFilter) (*shared.Paginated[*RecipeResponse], error) {
	f := shared.DefaultFilter()
	f.OrderBy = "name"
	f.OrderDir = "asc"
	if filter.Page > 0 {
		f.Page = filter.Page
	}
	if filter.PageSize > 0 {
		f.PageSize = filter.PageSize
	}

	var (
		recipes []recipe.Recipe
		err     error
	)
	if filter.IncludeArchived {
		recipes, err = s.recipeRepo.FindAll(ctx, f)
	} else {
		recipes, err = s.recipeRepo.FindActive(ctx, f)
	}
	if err != nil {
		return nil, err
	}

	total, err := s.recipeRepo.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	responses := make([]*RecipeResponse, 0, len(recipes))
	for i := range recipes {
		responses = append(responses, ToRecipeResponse(&recipes[i]))
	}
	result := shared.NewPaginated(responses, total, f.Page, f.PageSize)
	return &result, nil
}

// Update edits a recipe. Renames are always allowed; yield or ingredient
// changes are blocked while open work orders reference the recipe, because
// their requirement snapshots were derived from the current structure.
func (s *RecipeService) Update(ctx context.Context, id uuid.UUID, req *UpdateRecipeRequest) (*RecipeResponse, error) {
	r, err := s.recipeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := r.Rename(*req.Name); err != nil {
			return nil, err
		}
	}

	structural := req.YieldQuantity != nil || req.YieldUnit != nil || len(req.Ingredients) > 0
	if structural {
		openCount, err := s.workOrders.CountOpenByRecipe(ctx, id)
		if err != nil {
			return nil, err
		}
		if openCount > 0 {
			return nil, shared.NewDomainError("HAS_DEPENDENTS", fmt.Sprintf("Recipe %s has %d open work order(s); structural changes are blocked", r.Name, openCount))
		}

		yieldQuantity := r.YieldQuantity
		if req.YieldQuantity != nil {
			yieldQuantity = *req.YieldQuantity
		}
		yieldUnit := r.YieldUnit
		if req.YieldUnit != nil {
			yieldUnit, err = valueobject.ParseUnit(*req.YieldUnit)
			if err != nil {
				return nil, err
			}
		}

		inputs := existingIngredientInputs(r)
		if len(req.Ingredients) > 0 {
			inputs, err = s.resolveIngredients(ctx, req.Ingredients)
			if err != nil {
				return nil, err
			}
		}

		if err := r.UpdateStructure(yieldQuantity, yieldUnit, inputs); err != nil {
			return nil, err
		}
	}

	if err := s.recipeRepo.Save(ctx, r); err != nil {
		return nil, err
	}
	return ToRecipeResponse(r), nil
}

// Archive marks a recipe archived. It stays resolvable by id for history.
func (s *RecipeService) Archive(ctx context.Context, id uuid.UUID) (*RecipeResponse, error) {
	r, err := s.recipeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.Archive(); err != nil {
		return nil, err
	}
	if err := s.recipeRepo.Save(ctx, r); err != nil {
		return nil, err
	}
	return ToRecipeResponse(r), nil
}

// resolveIngredients validates that every requested ingredient exists as an
// ingredient-kind stock item and snapshots its name.
func (s *RecipeService) resolveIngredients(ctx context.Context, reqs []RecipeIngredientRequest) ([]recipe.IngredientInput, error) {
	ids := make([]uuid.UUID, 0, len(reqs))
	for _, req := range reqs {
		ids = append(ids, req.IngredientID)
	}
	items, err := s.stockRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*inventory.StockItem, len(items))
	for i := range items {
		byID[items[i].ID] = &items[i]
	}

	inputs := make([]recipe.IngredientInput, 0, len(reqs))
	for _, req := range reqs {
		item, ok := byID[req.IngredientID]
		if !ok {
			return nil, shared.NewDomainError("NOT_FOUND", fmt.Sprintf("Ingredient %s not found", req.IngredientID))
		}
		if item.Kind != inventory.StockItemKindIngredient {
			return nil, shared.NewDomainError("INVALID_INGREDIENT", fmt.Sprintf("%s is not an ingredient", item.Name))
		}
		unit, err := valueobject.ParseUnit(req.Unit)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, recipe.IngredientInput{
			IngredientID:   item.ID,
			IngredientName: item.Name,
			Quantity:       req.Quantity,
			Unit:           unit,
		})
	}
	return inputs, nil
}

func existingIngredientInputs(r *recipe.Recipe) []recipe.IngredientInput {
	inputs := make([]recipe.IngredientInput, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		inputs = append(inputs, recipe.IngredientInput{
			IngredientID:   ing.IngredientID,
			IngredientName: ing.IngredientName,
			Quantity:       ing.Quantity,
			Unit:           ing.Unit,
		})
	}
	return inputs
}
