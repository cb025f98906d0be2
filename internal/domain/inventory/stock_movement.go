package inventory

import (
	"github.com/google/uuid"
	"github.com/ovenplan/backend/internal/domain/shared"
	"github.com/ovenplan/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// MovementReason classifies why a stock delta was applied
type MovementReason string

const (
	MovementReasonProduction       MovementReason = "production"
	MovementReasonConsumption      MovementReason = "consumption"
	MovementReasonPurchaseReceipt  MovementReason = "purchase_receipt"
	MovementReasonSale             MovementReason = "sale"
	MovementReasonWriteOff         MovementReason = "write_off"
	MovementReasonDayOldTransfer   MovementReason = "day_old_transfer"
	MovementReasonManualAdjustment MovementReason = "manual_adjustment"
)

// IsValid checks if the reason is a known MovementReason
func (r MovementReason) IsValid() bool {
	switch r {
	case MovementReasonProduction, MovementReasonConsumption, MovementReasonPurchaseReceipt,
		MovementReasonSale, MovementReasonWriteOff, MovementReasonDayOldTransfer,
		MovementReasonManualAdjustment:
		return true
	}
	return false
}

// StockMovement is an append-only audit record of one signed stock delta.
// Movements are written in the same transaction as the delta they describe
// and are never updated or deleted.
type StockMovement struct {
	shared.BaseEntity
	ItemID      uuid.UUID        `gorm:"type:uuid;not null;index"`
	ItemName    string           `gorm:"type:varchar(200);not null"`
	ItemKind    StockItemKind    `gorm:"type:varchar(20);not null"`
	Unit        valueobject.Unit `gorm:"type:varchar(10);not null"`
	Delta       decimal.Decimal  `gorm:"type:decimal(18,4);not null"`
	Reason      MovementReason   `gorm:"type:varchar(30);not null;index"`
	ReferenceID *uuid.UUID       `gorm:"type:uuid;index"` // work order, purchase order, sale or end-of-day record
	RecordedBy  string           `gorm:"type:varchar(200)"`
}

// TableName returns the table name for GORM
func (StockMovement) TableName() string {
	return "stock_movements"
}

// NewStockMovement creates a new movement record for a stock delta
func NewStockMovement(item *StockItem, delta decimal.Decimal, reason MovementReason, referenceID *uuid.UUID, recordedBy string) (*StockMovement, error) {
	if item == nil {
		return nil, shared.NewDomainError("INVALID_ITEM", "Stock item is required")
	}
	if delta.IsZero() {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Movement delta cannot be zero")
	}
	if !reason.IsValid() {
		return nil, shared.NewDomainError("INVALID_REASON", "Unknown movement reason")
	}

	return &StockMovement{
		BaseEntity:  shared.NewBaseEntity(),
		ItemID:      item.ID,
		ItemName:    item.Name,
		ItemKind:    item.Kind,
		Unit:        item.Unit,
		Delta:       delta,
		Reason:      reason,
		ReferenceID: referenceID,
		RecordedBy:  recordedBy,
	}, nil
}
