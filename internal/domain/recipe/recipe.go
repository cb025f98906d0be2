package recipe

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ovenplan/backend/internal/domain/shared"
	"github.com/ovenplan/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// RecipeStatus represents the lifecycle state of a recipe
type RecipeStatus string

const (
	RecipeStatusActive   RecipeStatus = "active"
	RecipeStatusArchived RecipeStatus = "archived"
)

// IsValid checks if the status is a valid RecipeStatus
func (s RecipeStatus) IsValid() bool {
	return s == RecipeStatusActive || s == RecipeStatusArchived
}

// String returns the string representation of RecipeStatus
func (s RecipeStatus) String() string {
	return string(s)
}

// RecipeIngredient is one line of a recipe's bill of materials: the quantity
// of an ingredient consumed per batch. The ingredient name is a snapshot so
// historical records stay readable after renames.
type RecipeIngredient struct {
	ID             uuid.UUID        `gorm:"type:uuid;primary_key"`
	RecipeID       uuid.UUID        `gorm:"type:uuid;not null;index"`
	IngredientID   uuid.UUID        `gorm:"type:uuid;not null"`
	IngredientName string           `gorm:"type:varchar(200);not null"`
	Quantity       decimal.Decimal  `gorm:"type:decimal(18,4);not null"` // per batch
	Unit           valueobject.Unit `gorm:"type:varchar(10);not null"`
	Position       int              `gorm:"not null"` // preserves the author's ordering
	CreatedAt      time.Time        `gorm:"not null"`
	UpdatedAt      time.Time        `gorm:"not null"`
}

// TableName returns the table name for GORM
func (RecipeIngredient) TableName() string {
	return "recipe_ingredients"
}

// Recipe is the aggregate root for a bill of materials: the ingredients
// consumed by one batch and the finished-good yield that batch produces.
// Recipes are archived rather than deleted because work orders reference
// them by id and must remain resolvable for history.
type Recipe struct {
	shared.AuditedAggregateRoot
	Name             string             `gorm:"type:varchar(200);not null"`
	FinishedGoodID   uuid.UUID          `gorm:"type:uuid;not null;index"`
	FinishedGoodName string             `gorm:"type:varchar(200);not null"`
	YieldQuantity    decimal.Decimal    `gorm:"type:decimal(18,4);not null"`
	YieldUnit        valueobject.Unit   `gorm:"type:varchar(10);not null"`
	Ingredients      []RecipeIngredient `gorm:"foreignKey:RecipeID;references:ID"`
	Status           RecipeStatus       `gorm:"type:varchar(20);not null;default:'active';index"`
}

// TableName returns the table name for GORM
func (Recipe) TableName() string {
	return "recipes"
}

// IngredientInput describes one BOM line for recipe creation or update
type IngredientInput struct {
	IngredientID   uuid.UUID
	IngredientName string
	Quantity       decimal.Decimal
	Unit           valueobject.Unit
}

// NewRecipe creates a new active recipe with its ingredient list
func NewRecipe(name string, finishedGoodID uuid.UUID, finishedGoodName string, yieldQuantity decimal.Decimal, yieldUnit valueobject.Unit, ingredients []IngredientInput, createdBy string) (*Recipe, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Recipe name cannot be empty")
	}
	if finishedGoodID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_FINISHED_GOOD", "Finished good ID cannot be empty")
	}
	if finishedGoodName == "" {
		return nil, shared.NewDomainError("INVALID_FINISHED_GOOD", "Finished good name cannot be empty")
	}
	if yieldQuantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_YIELD", "Yield quantity must be positive")
	}
	if !yieldUnit.IsValid() {
		return nil, shared.NewDomainError("INVALID_UNIT", "Yield unit is not in the supported set")
	}
	if len(ingredients) == 0 {
		return nil, shared.NewDomainError("NO_INGREDIENTS", "Recipe must have at least one ingredient")
	}

	r := &Recipe{
		AuditedAggregateRoot: shared.NewAuditedAggregateRoot(createdBy),
		Name:                 name,
		FinishedGoodID:       finishedGoodID,
		FinishedGoodName:     finishedGoodName,
		YieldQuantity:        yieldQuantity,
		YieldUnit:            yieldUnit,
		Ingredients:          make([]RecipeIngredient, 0, len(ingredients)),
		Status:               RecipeStatusActive,
	}
	if err := r.setIngredients(ingredients); err != nil {
		return nil, err
	}
	return r, nil
}

// Rename changes the recipe name (non-structural, always allowed)
func (r *Recipe) Rename(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Recipe name cannot be empty")
	}
	r.Name = name
	r.touch()
	return nil
}

// UpdateStructure replaces the yield and ingredient list. Callers must
// verify no open work order references the recipe before invoking this.
func (r *Recipe) UpdateStructure(yieldQuantity decimal.Decimal, yieldUnit valueobject.Unit, ingredients []IngredientInput) error {
	if r.Status == RecipeStatusArchived {
		return shared.NewDomainError("INVALID_STATE", "Cannot modify an archived recipe")
	}
	if yieldQuantity.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_YIELD", "Yield quantity must be positive")
	}
	if !yieldUnit.IsValid() {
		return shared.NewDomainError("INVALID_UNIT", "Yield unit is not in the supported set")
	}
	if len(ingredients) == 0 {
		return shared.NewDomainError("NO_INGREDIENTS", "Recipe must have at least one ingredient")
	}

	r.YieldQuantity = yieldQuantity
	r.YieldUnit = yieldUnit
	r.Ingredients = r.Ingredients[:0]
	if err := r.setIngredients(ingredients); err != nil {
		return err
	}
	r.touch()
	return nil
}

// Archive marks the recipe archived. Archived recipes disappear from active
// listings but remain resolvable by id.
func (r *Recipe) Archive() error {
	if r.Status == RecipeStatusArchived {
		return shared.NewDomainError("INVALID_STATE", "Recipe is already archived")
	}
	r.Status = RecipeStatusArchived
	r.touch()
	return nil
}

// IsActive returns true if the recipe is active
func (r *Recipe) IsActive() bool {
	return r.Status == RecipeStatusActive
}

// IngredientByID returns the BOM line for an ingredient, or nil
func (r *Recipe) IngredientByID(ingredientID uuid.UUID) *RecipeIngredient {
	for idx := range r.Ingredients {
		if r.Ingredients[idx].IngredientID == ingredientID {
			return &r.Ingredients[idx]
		}
	}
	return nil
}

func (r *Recipe) setIngredients(inputs []IngredientInput) error {
	seen := make(map[uuid.UUID]bool, len(inputs))
	now := time.Now()
	for pos, in := range inputs {
		if in.IngredientID == uuid.Nil {
			return shared.NewDomainError("INVALID_INGREDIENT", "Ingredient ID cannot be empty")
		}
		if in.IngredientName == "" {
			return shared.NewDomainError("INVALID_INGREDIENT", "Ingredient name cannot be empty")
		}
		if in.Quantity.LessThanOrEqual(decimal.Zero) {
			return shared.NewDomainError("INVALID_QUANTITY", fmt.Sprintf("Quantity for %s must be positive", in.IngredientName))
		}
		if !in.Unit.IsValid() {
			return shared.NewDomainError("INVALID_UNIT", fmt.Sprintf("Unit for %s is not in the supported set", in.IngredientName))
		}
		if seen[in.IngredientID] {
			return shared.NewDomainError("DUPLICATE_INGREDIENT", fmt.Sprintf("Ingredient %s appears more than once", in.IngredientName))
		}
		seen[in.IngredientID] = true

		r.Ingredients = append(r.Ingredients, RecipeIngredient{
			ID:             uuid.New(),
			RecipeID:       r.ID,
			IngredientID:   in.IngredientID,
			IngredientName: in.IngredientName,
			Quantity:       in.Quantity,
			Unit:           in.Unit,
			Position:       pos,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	}
	return nil
}

func (r *Recipe) touch() {
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
}
