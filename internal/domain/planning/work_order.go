package planning

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ovenplan/backend/internal/domain/shared"
	"github.com/ovenplan/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// WorkOrderStatus represents the status of a work order
type WorkOrderStatus string

const (
	WorkOrderStatusPlanned    WorkOrderStatus = "planned"
	WorkOrderStatusInProgress WorkOrderStatus = "in_progress"
	WorkOrderStatusComplete   WorkOrderStatus = "complete"
	WorkOrderStatusCancelled  WorkOrderStatus = "cancelled"
)

// IsValid checks if the status is a valid WorkOrderStatus
func (s WorkOrderStatus) IsValid() bool {
	switch s {
	case WorkOrderStatusPlanned, WorkOrderStatusInProgress, WorkOrderStatusComplete, WorkOrderStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of WorkOrderStatus
func (s WorkOrderStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status.
// The machine is forward-only: planned -> in_progress -> complete, with
// cancellation allowed only from planned.
func (s WorkOrderStatus) CanTransitionTo(target WorkOrderStatus) bool {
	switch s {
	case WorkOrderStatusPlanned:
		return target == WorkOrderStatusInProgress || target == WorkOrderStatusCancelled
	case WorkOrderStatusInProgress:
		return target == WorkOrderStatusComplete
	case WorkOrderStatusComplete, WorkOrderStatusCancelled:
		return false
	}
	return false
}

// IsTerminal returns true for complete and cancelled
func (s WorkOrderStatus) IsTerminal() bool {
	return s == WorkOrderStatusComplete || s == WorkOrderStatusCancelled
}

// WorkOrderIngredient is one line of the requirement snapshot captured at
// work-order creation. QuantityPerBatch is authoritative: completion deducts
// QuantityPerBatch x the live BatchesActual, never the stale TotalRequired
// that was computed from BatchesOrdered.
type WorkOrderIngredient struct {
	ID               uuid.UUID        `gorm:"type:uuid;primary_key"`
	WorkOrderID      uuid.UUID        `gorm:"type:uuid;not null;index"`
	IngredientID     uuid.UUID        `gorm:"type:uuid;not null"`
	IngredientName   string           `gorm:"type:varchar(200);not null"`
	QuantityPerBatch decimal.Decimal  `gorm:"type:decimal(18,4);not null"`
	Unit             valueobject.Unit `gorm:"type:varchar(10);not null"`
	TotalRequired    decimal.Decimal  `gorm:"type:decimal(18,4);not null"`
	CreatedAt        time.Time        `gorm:"not null"`
	UpdatedAt        time.Time        `gorm:"not null"`
}

// TableName returns the table name for GORM
func (WorkOrderIngredient) TableName() string {
	return "work_order_ingredients"
}

// WorkOrder is the central production task: it snapshots what a batch run
// needs at creation and, on completion, drives the atomic stock transfer
// that consumes ingredients and produces the finished good.
type WorkOrder struct {
	shared.AuditedAggregateRoot
	RecipeID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	RecipeName       string     `gorm:"type:varchar(200);not null"`
	FinishedGoodID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	FinishedGoodName string     `gorm:"type:varchar(200);not null"`
	DemandPlanID     *uuid.UUID `gorm:"type:uuid;index"`
	WeeklyPlanID     *uuid.UUID `gorm:"type:uuid;index"`
	OrderType        OrderType  `gorm:"type:varchar(10);not null"`
	CustomerName     string     `gorm:"type:varchar(200)"`

	BatchesOrdered int64           `gorm:"not null"` // immutable after creation
	BatchesActual  int64           `gorm:"not null"` // editable until completion
	RecipeYield    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	TotalYield     decimal.Decimal `gorm:"type:decimal(18,4);not null"` // BatchesActual x RecipeYield
	YieldUnit      valueobject.Unit `gorm:"type:varchar(10);not null"`

	ScheduledStart time.Time `gorm:"not null;index"`
	DueBy          time.Time `gorm:"not null"`

	IngredientsRequired []WorkOrderIngredient `gorm:"foreignKey:WorkOrderID;references:ID"`
	// Informational sufficiency against the stock snapshot taken when the
	// order was created or last edited; completion re-validates against
	// live stock regardless.
	IngredientsSufficient   bool   `gorm:"not null;default:true"`
	InsufficientIngredients string `gorm:"type:text"` // comma-separated names

	Status      WorkOrderStatus `gorm:"type:varchar(20);not null;default:'planned';index"`
	Notes       string          `gorm:"type:text"`
	StartedAt   *time.Time
	CompletedAt *time.Time
	CancelledAt *time.Time
}

// TableName returns the table name for GORM
func (WorkOrder) TableName() string {
	return "work_orders"
}

// NewWorkOrderParams carries the inputs for work-order creation
type NewWorkOrderParams struct {
	RecipeID         uuid.UUID
	RecipeName       string
	FinishedGoodID   uuid.UUID
	FinishedGoodName string
	DemandPlanID     *uuid.UUID
	WeeklyPlanID     *uuid.UUID
	OrderType        OrderType
	CustomerName     string
	BatchesOrdered   int64
	RecipeYield      decimal.Decimal
	YieldUnit        valueobject.Unit
	ScheduledStart   time.Time
	DueBy            time.Time
	Requirements     RequirementSnapshot
	Notes            string
	CreatedBy        string
}

// NewWorkOrder creates a planned work order with its requirement snapshot.
// Sufficiency at creation is informational only and never blocks creation.
func NewWorkOrder(p NewWorkOrderParams) (*WorkOrder, error) {
	if p.RecipeID == uuid.Nil || p.RecipeName == "" {
		return nil, shared.NewDomainError("RECIPE_NOT_FOUND", "A resolved recipe is required to create a work order")
	}
	if p.FinishedGoodID == uuid.Nil || p.FinishedGoodName == "" {
		return nil, shared.NewDomainError("INVALID_FINISHED_GOOD", "Finished good reference cannot be empty")
	}
	if !p.OrderType.IsValid() {
		return nil, shared.NewDomainError("INVALID_ORDER_TYPE", "Order type must be MTS or MTO")
	}
	if p.BatchesOrdered < 1 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Batches ordered must be at least 1")
	}
	if p.RecipeYield.LessThanOrEqual(decimal.Zero) {
		return nil, ErrYieldNotPositive
	}
	if p.ScheduledStart.IsZero() || p.DueBy.IsZero() {
		return nil, shared.NewDomainError("INVALID_SCHEDULE", "Scheduled start and due-by are required")
	}
	if !p.DueBy.After(p.ScheduledStart) {
		return nil, shared.NewDomainError("INVALID_SCHEDULE", "Due-by must be after scheduled start")
	}
	if len(p.Requirements.Lines) == 0 {
		return nil, shared.NewDomainError("NO_INGREDIENTS", "Requirement snapshot cannot be empty")
	}

	wo := &WorkOrder{
		AuditedAggregateRoot:    shared.NewAuditedAggregateRoot(p.CreatedBy),
		RecipeID:                p.RecipeID,
		RecipeName:              p.RecipeName,
		FinishedGoodID:          p.FinishedGoodID,
		FinishedGoodName:        p.FinishedGoodName,
		DemandPlanID:            p.DemandPlanID,
		WeeklyPlanID:            p.WeeklyPlanID,
		OrderType:               p.OrderType,
		CustomerName:            p.CustomerName,
		BatchesOrdered:          p.BatchesOrdered,
		BatchesActual:           p.BatchesOrdered,
		RecipeYield:             p.RecipeYield,
		TotalYield:              p.RecipeYield.Mul(decimal.NewFromInt(p.BatchesOrdered)),
		YieldUnit:               p.YieldUnit,
		ScheduledStart:          p.ScheduledStart,
		DueBy:                   p.DueBy,
		IngredientsSufficient:   p.Requirements.Sufficient,
		InsufficientIngredients: strings.Join(p.Requirements.InsufficientIngredients, ", "),
		Status:                  WorkOrderStatusPlanned,
		Notes:                   p.Notes,
	}

	now := time.Now()
	wo.IngredientsRequired = make([]WorkOrderIngredient, 0, len(p.Requirements.Lines))
	for _, line := range p.Requirements.Lines {
		wo.IngredientsRequired = append(wo.IngredientsRequired, WorkOrderIngredient{
			ID:               uuid.New(),
			WorkOrderID:      wo.ID,
			IngredientID:     line.IngredientID,
			IngredientName:   line.IngredientName,
			QuantityPerBatch: line.QuantityPerBatch,
			Unit:             line.Unit,
			TotalRequired:    line.TotalRequired,
			CreatedAt:        now,
			UpdatedAt:        now,
		})
	}

	return wo, nil
}

// Start transitions planned -> in_progress. No side effects beyond the
// status and the timestamp.
func (w *WorkOrder) Start() error {
	if !w.Status.CanTransitionTo(WorkOrderStatusInProgress) {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot start a work order in %s status", w.Status))
	}
	now := time.Now()
	w.Status = WorkOrderStatusInProgress
	w.StartedAt = &now
	w.touch()
	return nil
}

// UpdateDetails edits the mutable fields while the order is planned or in
// progress. BatchesOrdered is immutable; batchesActual drives TotalYield and
// the sufficiency recheck the caller performs afterwards.
func (w *WorkOrder) UpdateDetails(batchesActual int64, scheduledStart, dueBy time.Time, notes string) error {
	if w.Status.IsTerminal() {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot edit a work order in %s status", w.Status))
	}
	if batchesActual < 1 {
		return shared.NewDomainError("INVALID_QUANTITY", "Actual batches must be at least 1")
	}
	if !dueBy.After(scheduledStart) {
		return shared.NewDomainError("INVALID_SCHEDULE", "Due-by must be after scheduled start")
	}

	w.BatchesActual = batchesActual
	w.TotalYield = w.RecipeYield.Mul(decimal.NewFromInt(batchesActual))
	w.ScheduledStart = scheduledStart
	w.DueBy = dueBy
	w.Notes = notes
	w.touch()
	return nil
}

// SetSufficiency records the result of a sufficiency recheck
func (w *WorkOrder) SetSufficiency(sufficient bool, insufficientNames []string) {
	w.IngredientsSufficient = sufficient
	w.InsufficientIngredients = strings.Join(insufficientNames, ", ")
	w.touch()
}

// Cancel transitions planned -> cancelled (terminal). Orders that have
// started cannot be cancelled.
func (w *WorkOrder) Cancel() error {
	if !w.Status.CanTransitionTo(WorkOrderStatusCancelled) {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot cancel a work order in %s status", w.Status))
	}
	now := time.Now()
	w.Status = WorkOrderStatusCancelled
	w.CancelledAt = &now
	w.touch()
	return nil
}

// Complete transitions in_progress -> complete. The caller (service) is
// responsible for performing the stock transfer in the same transaction;
// this method only validates and applies the state change.
func (w *WorkOrder) Complete() error {
	if !w.Status.CanTransitionTo(WorkOrderStatusComplete) {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot complete a work order in %s status", w.Status))
	}
	now := time.Now()
	w.Status = WorkOrderStatusComplete
	w.CompletedAt = &now
	w.touch()
	w.AddDomainEvent(NewWorkOrderCompletedEvent(w))
	return nil
}

// RequiredForCompletion returns the quantity of one snapshot line that
// completion will deduct: per-batch quantity times the live BatchesActual.
func (w *WorkOrder) RequiredForCompletion(line WorkOrderIngredient) decimal.Decimal {
	return line.QuantityPerBatch.Mul(decimal.NewFromInt(w.BatchesActual))
}

// ProducesToStock returns true when the yield goes to shelf inventory.
// Make-to-order output goes directly to the customer.
func (w *WorkOrder) ProducesToStock() bool {
	return w.OrderType != OrderTypeMTO
}

// EffectiveBatches returns the batch count purchasing should plan with:
// the edited actual count when set, otherwise the ordered count.
func (w *WorkOrder) EffectiveBatches() int64 {
	if w.BatchesActual > 0 {
		return w.BatchesActual
	}
	return w.BatchesOrdered
}

func (w *WorkOrder) touch() {
	w.UpdatedAt = time.Now()
	w.IncrementVersion()
}
