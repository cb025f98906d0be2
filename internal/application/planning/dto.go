package planning

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ovenplan/backend/internal/domain/planning"
	"github.com/shopspring/decimal"
)

// CreateDemandPlanRequest represents a request to create a demand plan.
// MTO plans require customer name and pickup time; MTS plans ignore them.
type CreateDemandPlanRequest struct {
	OrderType      string          `json:"order_type" binding:"required,oneof=MTS MTO"`
	FinishedGoodID uuid.UUID       `json:"finished_good_id" binding:"required"`
	TargetQuantity decimal.Decimal `json:"target_quantity" binding:"required"`
	CustomerName   string          `json:"customer_name"`
	PickupAt       *time.Time      `json:"pickup_at"`
}

// DemandPlanResponse represents a demand plan in API responses
type DemandPlanResponse struct {
	ID               uuid.UUID        `json:"id"`
	OrderType        string           `json:"order_type"`
	FinishedGoodID   uuid.UUID        `json:"finished_good_id"`
	FinishedGoodName string           `json:"finished_good_name"`
	TargetQuantity   decimal.Decimal  `json:"target_quantity"`
	CurrentStock     *decimal.Decimal `json:"current_stock,omitempty"`
	Shortfall        *decimal.Decimal `json:"shortfall,omitempty"`
	CustomerName     string           `json:"customer_name,omitempty"`
	PickupAt         *time.Time       `json:"pickup_at,omitempty"`
	RecipeID         uuid.UUID        `json:"recipe_id"`
	RecipeName       string           `json:"recipe_name"`
	RecipeYield      decimal.Decimal  `json:"recipe_yield"`
	BatchesRequired  int64            `json:"batches_required"`
	Status           string           `json:"status"`
	CreatedBy        string           `json:"created_by"`
	CreatedAt        time.Time        `json:"created_at"`
	FulfilledAt      *time.Time       `json:"fulfilled_at,omitempty"`
	CancelledAt      *time.Time       `json:"cancelled_at,omitempty"`
}

// ConvertDemandPlanRequest carries the schedule for converting a plan into a
// work order
type ConvertDemandPlanRequest struct {
	ScheduledStart time.Time `json:"scheduled_start" binding:"required"`
	DueBy          time.Time `json:"due_by" binding:"required"`
	Notes          string    `json:"notes"`
}

// CreateWorkOrderRequest represents a request to create a work order directly
type CreateWorkOrderRequest struct {
	FinishedGoodID uuid.UUID  `json:"finished_good_id" binding:"required"`
	OrderType      string     `json:"order_type" binding:"required,oneof=MTS MTO"`
	CustomerName   string     `json:"customer_name"`
	Batches        int64      `json:"batches" binding:"required,min=1"`
	ScheduledStart time.Time  `json:"scheduled_start" binding:"required"`
	DueBy          time.Time  `json:"due_by" binding:"required"`
	Notes          string     `json:"notes"`
}

// UpdateWorkOrderRequest edits the mutable fields of an open work order
type UpdateWorkOrderRequest struct {
	BatchesActual  int64     `json:"batches_actual" binding:"required,min=1"`
	ScheduledStart time.Time `json:"scheduled_start" binding:"required"`
	DueBy          time.Time `json:"due_by" binding:"required"`
	Notes          string    `json:"notes"`
}

// WorkOrderIngredientResponse represents one requirement snapshot line
type WorkOrderIngredientResponse struct {
	IngredientID     uuid.UUID       `json:"ingredient_id"`
	IngredientName   string          `json:"ingredient_name"`
	QuantityPerBatch decimal.Decimal `json:"quantity_per_batch"`
	Unit             string          `json:"unit"`
	TotalRequired    decimal.Decimal `json:"total_required"`
}

// WorkOrderResponse represents a work order in API responses
type WorkOrderResponse struct {
	ID                      uuid.UUID                     `json:"id"`
	RecipeID                uuid.UUID                     `json:"recipe_id"`
	RecipeName              string                        `json:"recipe_name"`
	FinishedGoodID          uuid.UUID                     `json:"finished_good_id"`
	FinishedGoodName        string                        `json:"finished_good_name"`
	DemandPlanID            *uuid.UUID                    `json:"demand_plan_id,omitempty"`
	WeeklyPlanID            *uuid.UUID                    `json:"weekly_plan_id,omitempty"`
	OrderType               string                        `json:"order_type"`
	CustomerName            string                        `json:"customer_name,omitempty"`
	BatchesOrdered          int64                         `json:"batches_ordered"`
	BatchesActual           int64                         `json:"batches_actual"`
	RecipeYield             decimal.Decimal               `json:"recipe_yield"`
	TotalYield              decimal.Decimal               `json:"total_yield"`
	YieldUnit               string                        `json:"yield_unit"`
	ScheduledStart          time.Time                     `json:"scheduled_start"`
	DueBy                   time.Time                     `json:"due_by"`
	Ingredients             []WorkOrderIngredientResponse `json:"ingredients"`
	IngredientsSufficient   bool                          `json:"ingredients_sufficient"`
	InsufficientIngredients []string                      `json:"insufficient_ingredients,omitempty"`
	Status                  string                        `json:"status"`
	Notes                   string                        `json:"notes,omitempty"`
	CreatedBy               string                        `json:"created_by"`
	CreatedAt               time.Time                     `json:"created_at"`
	StartedAt               *time.Time                    `json:"started_at,omitempty"`
	CompletedAt             *time.Time                    `json:"completed_at,omitempty"`
	CancelledAt             *time.Time                    `json:"cancelled_at,omitempty"`
}

// CompleteWorkOrderResponse reports the stock transfer performed by completion
type CompleteWorkOrderResponse struct {
	WorkOrder     *WorkOrderResponse `json:"work_order"`
	Consumed      []ConsumedLineDTO  `json:"consumed"`
	ProducedToStock bool             `json:"produced_to_stock"`
	YieldQuantity decimal.Decimal    `json:"yield_quantity"`
}

// ConsumedLineDTO is one consumed-ingredient line in completion responses
type ConsumedLineDTO struct {
	IngredientID   uuid.UUID       `json:"ingredient_id"`
	IngredientName string          `json:"ingredient_name"`
	Quantity       decimal.Decimal `json:"quantity"`
	Unit           string          `json:"unit"`
}

// WorkOrderListFilter represents filter options for listing work orders
type WorkOrderListFilter struct {
	Queue    bool   `form:"queue"`
	Status   string `form:"status" binding:"omitempty,oneof=planned in_progress complete cancelled"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=200"`
}

// WeeklyTemplateRequest sets the recurring weekday quantities for one good.
// Quantities are Monday-first; all seven are required.
type WeeklyTemplateRequest struct {
	FinishedGoodID uuid.UUID         `json:"finished_good_id" binding:"required"`
	Quantities     []decimal.Decimal `json:"quantities" binding:"required,len=7"`
}

// WeeklyTemplateResponse represents a weekly template in API responses
type WeeklyTemplateResponse struct {
	ID               uuid.UUID         `json:"id"`
	FinishedGoodID   uuid.UUID         `json:"finished_good_id"`
	FinishedGoodName string            `json:"finished_good_name"`
	Quantities       []decimal.Decimal `json:"quantities"` // Monday-first
	UpdatedAt        time.Time         `json:"updated_at"`
}

// GenerateWeekRequest asks for work-order generation for one week
type GenerateWeekRequest struct {
	WeekOf time.Time `json:"week_of" binding:"required"`
}

// GenerateWeekResponse summarizes a generation run. AlreadyPlanned warns the
// caller that the week had been generated before; it never blocks.
type GenerateWeekResponse struct {
	WeeklyPlanID    uuid.UUID `json:"weekly_plan_id"`
	WeekOf          time.Time `json:"week_of"`
	OrdersGenerated int       `json:"orders_generated"`
	SkippedProducts []string  `json:"skipped_products,omitempty"`
	AlreadyPlanned  bool      `json:"already_planned"`
	PriorPlanCount  int64     `json:"prior_plan_count,omitempty"`
}

// ProductionRecordResponse represents one production log entry
type ProductionRecordResponse struct {
	ID               uuid.UUID         `json:"id"`
	WorkOrderID      uuid.UUID         `json:"work_order_id"`
	RecipeName       string            `json:"recipe_name"`
	FinishedGoodID   uuid.UUID         `json:"finished_good_id"`
	FinishedGoodName string            `json:"finished_good_name"`
	OrderType        string            `json:"order_type"`
	Batches          int64             `json:"batches"`
	YieldQuantity    decimal.Decimal   `json:"yield_quantity"`
	YieldUnit        string            `json:"yield_unit"`
	Consumed         []ConsumedLineDTO `json:"consumed"`
	ProducedBy       string            `json:"produced_by"`
	CreatedAt        time.Time         `json:"created_at"`
}

// ToDemandPlanResponse converts a domain demand plan to its response form
func ToDemandPlanResponse(p *planning.DemandPlan) *DemandPlanResponse {
	return &DemandPlanResponse{
		ID:               p.ID,
		OrderType:        p.OrderType.String(),
		FinishedGoodID:   p.FinishedGoodID,
		FinishedGoodName: p.FinishedGoodName,
		TargetQuantity:   p.TargetQuantity,
		CurrentStock:     p.CurrentStock,
		Shortfall:        p.Shortfall,
		CustomerName:     p.CustomerName,
		PickupAt:         p.PickupAt,
		RecipeID:         p.RecipeID,
		RecipeName:       p.RecipeName,
		RecipeYield:      p.RecipeYield,
		BatchesRequired:  p.BatchesRequired,
		Status:           p.Status.String(),
		CreatedBy:        p.CreatedBy,
		CreatedAt:        p.CreatedAt,
		FulfilledAt:      p.FulfilledAt,
		CancelledAt:      p.CancelledAt,
	}
}

// ToWorkOrderResponse converts a domain work order to its response form
func ToWorkOrderResponse(w *planning.WorkOrder) *WorkOrderResponse {
	ingredients := make([]WorkOrderIngredientResponse, 0, len(w.IngredientsRequired))
	for _, line := range w.IngredientsRequired {
		ingredients = append(ingredients, WorkOrderIngredientResponse{
			IngredientID:     line.IngredientID,
			IngredientName:   line.IngredientName,
			QuantityPerBatch: line.QuantityPerBatch,
			Unit:             string(line.Unit),
			TotalRequired:    line.TotalRequired,
		})
	}
	var insufficient []string
	if w.InsufficientIngredients != "" {
		insufficient = strings.Split(w.InsufficientIngredients, ", ")
	}
	return &WorkOrderResponse{
		ID:                      w.ID,
		RecipeID:                w.RecipeID,
		RecipeName:              w.RecipeName,
		FinishedGoodID:          w.FinishedGoodID,
		FinishedGoodName:        w.FinishedGoodName,
		DemandPlanID:            w.DemandPlanID,
		WeeklyPlanID:            w.WeeklyPlanID,
		OrderType:               w.OrderType.String(),
		CustomerName:            w.CustomerName,
		BatchesOrdered:          w.BatchesOrdered,
		BatchesActual:           w.BatchesActual,
		RecipeYield:             w.RecipeYield,
		TotalYield:              w.TotalYield,
		YieldUnit:               string(w.YieldUnit),
		ScheduledStart:          w.ScheduledStart,
		DueBy:                   w.DueBy,
		Ingredients:             ingredients,
		IngredientsSufficient:   w.IngredientsSufficient,
		InsufficientIngredients: insufficient,
		Status:                  w.Status.String(),
		Notes:                   w.Notes,
		CreatedBy:               w.CreatedBy,
		CreatedAt:               w.CreatedAt,
		StartedAt:               w.StartedAt,
		CompletedAt:             w.CompletedAt,
		CancelledAt:             w.CancelledAt,
	}
}

// ToWeeklyTemplateResponse converts a domain template to its response form
func ToWeeklyTemplateResponse(t *planning.WeeklyTemplate) *WeeklyTemplateResponse {
	q := t.Quantities()
	return &WeeklyTemplateResponse{
		ID:               t.ID,
		FinishedGoodID:   t.FinishedGoodID,
		FinishedGoodName: t.FinishedGoodName,
		Quantities:       q[:],
		UpdatedAt:        t.UpdatedAt,
	}
}

// ToProductionRecordResponse converts a domain production record to its response form
func ToProductionRecordResponse(r *planning.ProductionRecord) *ProductionRecordResponse {
	consumed := make([]ConsumedLineDTO, 0, len(r.Consumed))
	for _, line := range r.Consumed {
		consumed = append(consumed, ConsumedLineDTO{
			IngredientID:   line.IngredientID,
			IngredientName: line.IngredientName,
			Quantity:       line.Quantity,
			Unit:           string(line.Unit),
		})
	}
	return &ProductionRecordResponse{
		ID:               r.ID,
		WorkOrderID:      r.WorkOrderID,
		RecipeName:       r.RecipeName,
		FinishedGoodID:   r.FinishedGoodID,
		FinishedGoodName: r.FinishedGoodName,
		OrderType:        r.OrderType.String(),
		Batches:          r.Batches,
		YieldQuantity:    r.YieldQuantity,
		YieldUnit:        string(r.YieldUnit),
		Consumed:         consumed,
		ProducedBy:       r.ProducedBy,
		CreatedAt:        r.CreatedAt,
	}
}
