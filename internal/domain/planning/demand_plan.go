package planning

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ovenplan/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// DemandPlanStatus represents the lifecycle state of a demand plan
type DemandPlanStatus string

const (
	DemandPlanStatusOpen      DemandPlanStatus = "open"
	DemandPlanStatusFulfilled DemandPlanStatus = "fulfilled"
	DemandPlanStatusCancelled DemandPlanStatus = "cancelled"
)

// IsValid checks if the status is a valid DemandPlanStatus
func (s DemandPlanStatus) IsValid() bool {
	switch s {
	case DemandPlanStatusOpen, DemandPlanStatusFulfilled, DemandPlanStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of DemandPlanStatus
func (s DemandPlanStatus) String() string {
	return string(s)
}

// DemandPlan represents forecasted (MTS) or customer-committed (MTO) future
// production need. An open plan can be cancelled, or fulfilled exactly once
// by converting it into a work order; both transitions are terminal.
type DemandPlan struct {
	shared.AuditedAggregateRoot
	OrderType        OrderType        `gorm:"type:varchar(10);not null"`
	FinishedGoodID   uuid.UUID        `gorm:"type:uuid;not null;index"`
	FinishedGoodName string           `gorm:"type:varchar(200);not null"`
	TargetQuantity   decimal.Decimal  `gorm:"type:decimal(18,4);not null"`
	// MTS snapshot: the shelf stock observed at creation and the resulting
	// production shortfall batches were computed from.
	CurrentStock *decimal.Decimal `gorm:"type:decimal(18,4)"`
	Shortfall    *decimal.Decimal `gorm:"type:decimal(18,4)"`
	// MTO commitment details.
	CustomerName string     `gorm:"type:varchar(200)"`
	PickupAt     *time.Time `gorm:"index"`
	// Recipe snapshot captured at creation.
	RecipeID        uuid.UUID        `gorm:"type:uuid;not null"`
	RecipeName      string           `gorm:"type:varchar(200);not null"`
	RecipeYield     decimal.Decimal  `gorm:"type:decimal(18,4);not null"`
	BatchesRequired int64            `gorm:"not null"`
	Status          DemandPlanStatus `gorm:"type:varchar(20);not null;default:'open';index"`
	FulfilledAt     *time.Time
	CancelledAt     *time.Time
}

// TableName returns the table name for GORM
func (DemandPlan) TableName() string {
	return "demand_plans"
}

// RecipeSnapshot carries the recipe fields a demand plan captures at creation
type RecipeSnapshot struct {
	RecipeID   uuid.UUID
	RecipeName string
	Yield      decimal.Decimal
}

// NewMTSDemandPlan creates a make-to-stock plan. Batches are computed from
// the shortfall between the target and the observed shelf stock, because
// existing stock already covers part of demand.
func NewMTSDemandPlan(finishedGoodID uuid.UUID, finishedGoodName string, target, currentStock decimal.Decimal, snap RecipeSnapshot, createdBy string) (*DemandPlan, error) {
	if err := validatePlanInputs(finishedGoodID, finishedGoodName, target, snap); err != nil {
		return nil, err
	}
	if currentStock.IsNegative() {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Current stock cannot be negative")
	}

	shortfall := MTSShortfall(target, currentStock)
	batches, err := BatchesRequired(shortfall, snap.Yield)
	if err != nil {
		return nil, err
	}

	plan := &DemandPlan{
		AuditedAggregateRoot: shared.NewAuditedAggregateRoot(createdBy),
		OrderType:            OrderTypeMTS,
		FinishedGoodID:       finishedGoodID,
		FinishedGoodName:     finishedGoodName,
		TargetQuantity:       target,
		CurrentStock:         &currentStock,
		Shortfall:            &shortfall,
		RecipeID:             snap.RecipeID,
		RecipeName:           snap.RecipeName,
		RecipeYield:          snap.Yield,
		BatchesRequired:      batches,
		Status:               DemandPlanStatusOpen,
	}
	return plan, nil
}

// NewMTODemandPlan creates a make-to-order plan. Batches cover the full
// target quantity; shelf stock is never offset against a customer commitment.
func NewMTODemandPlan(finishedGoodID uuid.UUID, finishedGoodName string, target decimal.Decimal, customerName string, pickupAt time.Time, snap RecipeSnapshot, createdBy string) (*DemandPlan, error) {
	if err := validatePlanInputs(finishedGoodID, finishedGoodName, target, snap); err != nil {
		return nil, err
	}
	if customerName == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer name is required for make-to-order plans")
	}
	if pickupAt.IsZero() {
		return nil, shared.NewDomainError("INVALID_PICKUP", "Pickup time is required for make-to-order plans")
	}

	batches, err := BatchesRequired(target, snap.Yield)
	if err != nil {
		return nil, err
	}

	plan := &DemandPlan{
		AuditedAggregateRoot: shared.NewAuditedAggregateRoot(createdBy),
		OrderType:            OrderTypeMTO,
		FinishedGoodID:       finishedGoodID,
		FinishedGoodName:     finishedGoodName,
		TargetQuantity:       target,
		CustomerName:         customerName,
		PickupAt:             &pickupAt,
		RecipeID:             snap.RecipeID,
		RecipeName:           snap.RecipeName,
		RecipeYield:          snap.Yield,
		BatchesRequired:      batches,
		Status:               DemandPlanStatusOpen,
	}
	return plan, nil
}

// Fulfill marks an open plan fulfilled. Called only inside the transaction
// that creates the corresponding work order, so a plan is never fulfilled
// without that order existing.
func (p *DemandPlan) Fulfill() error {
	if p.Status != DemandPlanStatusOpen {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot fulfill a demand plan in %s status", p.Status))
	}
	now := time.Now()
	p.Status = DemandPlanStatusFulfilled
	p.FulfilledAt = &now
	p.touch()
	p.AddDomainEvent(NewDemandPlanFulfilledEvent(p))
	return nil
}

// Cancel marks an open plan cancelled (terminal)
func (p *DemandPlan) Cancel() error {
	if p.Status != DemandPlanStatusOpen {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot cancel a demand plan in %s status", p.Status))
	}
	now := time.Now()
	p.Status = DemandPlanStatusCancelled
	p.CancelledAt = &now
	p.touch()
	return nil
}

// IsOpen returns true while the plan can still be fulfilled or cancelled
func (p *DemandPlan) IsOpen() bool {
	return p.Status == DemandPlanStatusOpen
}

func validatePlanInputs(finishedGoodID uuid.UUID, finishedGoodName string, target decimal.Decimal, snap RecipeSnapshot) error {
	if finishedGoodID == uuid.Nil {
		return shared.NewDomainError("INVALID_FINISHED_GOOD", "Finished good ID cannot be empty")
	}
	if finishedGoodName == "" {
		return shared.NewDomainError("INVALID_FINISHED_GOOD", "Finished good name cannot be empty")
	}
	if target.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_QUANTITY", "Target quantity must be positive")
	}
	if snap.RecipeID == uuid.Nil || snap.RecipeName == "" {
		return shared.NewDomainError("RECIPE_NOT_FOUND", "A resolved recipe is required to create a demand plan")
	}
	return nil
}

func (p *DemandPlan) touch() {
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}
