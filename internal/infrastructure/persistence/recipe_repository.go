package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ovenplan/backend/internal/domain/recipe"
	"github.com/ovenplan/backend/internal/domain/shared"
)

// GormRecipeRepository implements RecipeRepository using GORM
type GormRecipeRepository struct {
	db *gorm.DB
}

// NewGormRecipeRepository creates a new GormRecipeRepository
func NewGormRecipeRepository(db *gorm.DB) *GormRecipeRepository {
	return &GormRecipeRepository{db: db}
}

// FindByID finds a recipe with its ingredient lines, regardless of status
func (r *GormRecipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	var rec recipe.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// FindActive lists active recipes
func (r *GormRecipeRepository) FindActive(ctx context.Context, filter shared.Filter) ([]recipe.Recipe, error) {
	return r.findWithStatus(ctx, filter, true)
}

// FindAll lists all recipes including archived ones
func (r *GormRecipeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]recipe.Recipe, error) {
	return r.findWithStatus(ctx, filter, false)
}

func (r *GormRecipeRepository) findWithStatus(ctx context.Context, filter shared.Filter, activeOnly bool) ([]recipe.Recipe, error) {
	var recipes []recipe.Recipe
	query := r.db.WithContext(ctx).
		Model(&recipe.Recipe{}).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		})
	if activeOnly {
		query = query.Where("status = ?", recipe.RecipeStatusActive)
	}
	query = r.applyFilter(query, filter)

	if err := query.Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// FindActiveByFinishedGood finds the active recipe producing a finished good
func (r *GormRecipeRepository) FindActiveByFinishedGood(ctx context.Context, finishedGoodID uuid.UUID) (*recipe.Recipe, error) {
	var rec recipe.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("finished_good_id = ? AND status = ?", finishedGoodID, recipe.RecipeStatusActive).
		First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// CountByIngredient counts recipes whose BOM references an ingredient
func (r *GormRecipeRepository) CountByIngredient(ctx context.Context, ingredientID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&recipe.RecipeIngredient{}).
		Distinct("recipe_id").
		Where("ingredient_id = ?", ingredientID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByFinishedGood counts recipes producing a finished good
func (r *GormRecipeRepository) CountByFinishedGood(ctx context.Context, finishedGoodID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&recipe.Recipe{}).
		Where("finished_good_id = ?", finishedGoodID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a recipe with its ingredient lines. Lines removed
// from the aggregate are deleted so the table mirrors the BOM exactly.
func (r *GormRecipeRepository) Save(ctx context.Context, rec *recipe.Recipe) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Ingredients").Save(rec).Error; err != nil {
			return err
		}

		currentIDs := make([]uuid.UUID, len(rec.Ingredients))
		for i, ing := range rec.Ingredients {
			currentIDs[i] = ing.ID
		}

		if len(currentIDs) > 0 {
			if err := tx.Where("recipe_id = ? AND id NOT IN ?", rec.ID, currentIDs).
				Delete(&recipe.RecipeIngredient{}).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Where("recipe_id = ?", rec.ID).
				Delete(&recipe.RecipeIngredient{}).Error; err != nil {
				return err
			}
		}

		for i := range rec.Ingredients {
			rec.Ingredients[i].RecipeID = rec.ID
			if err := tx.Save(&rec.Ingredients[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Count counts recipes matching the filter
func (r *GormRecipeRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&recipe.Recipe{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormRecipeRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, RecipeSortFields, "name")
	orderDir := "ASC"
	if strings.ToLower(filter.OrderDir) == "desc" {
		orderDir = "DESC"
	}
	return query.Order(orderBy + " " + orderDir)
}

func (r *GormRecipeRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "finished_good_id":
			query = query.Where("finished_good_id = ?", value)
		}
	}
	return query
}

// Ensure GormRecipeRepository implements RecipeRepository
var _ recipe.RecipeRepository = (*GormRecipeRepository)(nil)
