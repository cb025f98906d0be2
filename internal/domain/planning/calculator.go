package planning

import (
	"github.com/google/uuid"
	"github.com/ovenplan/backend/internal/domain/recipe"
	"github.com/ovenplan/backend/internal/domain/shared"
	"github.com/ovenplan/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// This file holds the requirement calculator: pure functions shared by
// demand planning, work-order creation, purchasing and weekly planning.
// None of them touch storage; callers pass in stock snapshots.

// ErrYieldNotPositive is returned when batches cannot be computed because the
// recipe yield is zero or negative. Callers must treat this as "cannot
// calculate", never as zero batches.
var ErrYieldNotPositive = shared.NewDomainError("YIELD_NOT_POSITIVE", "Recipe yield must be positive to compute batches")

// BatchesRequired returns ceil(target / yield): the number of full batches
// needed to produce at least the target quantity. A non-positive target
// needs zero batches.
func BatchesRequired(target, yield decimal.Decimal) (int64, error) {
	if yield.LessThanOrEqual(decimal.Zero) {
		return 0, ErrYieldNotPositive
	}
	if target.LessThanOrEqual(decimal.Zero) {
		return 0, nil
	}
	return target.Div(yield).Ceil().IntPart(), nil
}

// TotalRequired returns the ingredient quantity consumed by the given number
// of batches: quantity-per-batch times batches.
func TotalRequired(perBatch decimal.Decimal, batches int64) decimal.Decimal {
	return perBatch.Mul(decimal.NewFromInt(batches))
}

// SufficiencyResult reports whether current stock covers a requirement
type SufficiencyResult struct {
	Sufficient bool
	Shortfall  decimal.Decimal // max(0, required - stock)
}

// Sufficiency compares a required quantity against a stock snapshot
func Sufficiency(required, stock decimal.Decimal) SufficiencyResult {
	shortfall := required.Sub(stock)
	if shortfall.IsNegative() {
		shortfall = decimal.Zero
	}
	return SufficiencyResult{
		Sufficient: required.LessThanOrEqual(stock),
		Shortfall:  shortfall,
	}
}

// MTSShortfall returns the production need for a make-to-stock target:
// existing shelf stock already covers part of demand, so only the positive
// gap is produced. Make-to-order targets never use this; they produce the
// full target regardless of stock.
func MTSShortfall(target, currentStock decimal.Decimal) decimal.Decimal {
	shortfall := target.Sub(currentStock)
	if shortfall.IsNegative() {
		return decimal.Zero
	}
	return shortfall
}

// RequirementLine is one ingredient of a requirement snapshot. The per-batch
// quantity is authoritative for later recomputation; TotalRequired is the
// amount for the batch count the snapshot was built with.
type RequirementLine struct {
	IngredientID     uuid.UUID
	IngredientName   string
	QuantityPerBatch decimal.Decimal
	Unit             valueobject.Unit
	TotalRequired    decimal.Decimal
}

// RequirementSnapshot is the full ingredient requirement for a batch count,
// checked against a stock snapshot at build time. The sufficiency flags are
// informational; stock-affecting commits re-validate against live data.
type RequirementSnapshot struct {
	Lines                   []RequirementLine
	Sufficient              bool
	InsufficientIngredients []string
}

// BuildRequirements computes the per-ingredient requirement for producing
// the given number of batches of a recipe, evaluated against the supplied
// stock snapshot (keyed by ingredient id; missing keys count as zero stock).
func BuildRequirements(r *recipe.Recipe, batches int64, stockByID map[uuid.UUID]decimal.Decimal) RequirementSnapshot {
	snapshot := RequirementSnapshot{
		Lines:      make([]RequirementLine, 0, len(r.Ingredients)),
		Sufficient: true,
	}
	for _, ing := range r.Ingredients {
		total := TotalRequired(ing.Quantity, batches)
		line := RequirementLine{
			IngredientID:     ing.IngredientID,
			IngredientName:   ing.IngredientName,
			QuantityPerBatch: ing.Quantity,
			Unit:             ing.Unit,
			TotalRequired:    total,
		}
		snapshot.Lines = append(snapshot.Lines, line)

		if !Sufficiency(total, stockByID[ing.IngredientID]).Sufficient {
			snapshot.Sufficient = false
			snapshot.InsufficientIngredients = append(snapshot.InsufficientIngredients, ing.IngredientName)
		}
	}
	return snapshot
}
