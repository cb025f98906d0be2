package inventory

import (
	"github.com/google/uuid"
	"github.com/ovenplan/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Aggregate type constant
const AggregateTypeStockItem = "StockItem"

// Event type constants
const (
	EventTypeStockAdjusted       = "StockAdjusted"
	EventTypeStockBelowThreshold = "StockBelowThreshold"
)

// StockAdjustedEvent is raised after a signed delta has been applied to a
// stock item. ResultingStock is the value observed after the commit.
type StockAdjustedEvent struct {
	shared.BaseDomainEvent
	ItemID         uuid.UUID       `json:"item_id"`
	ItemName       string          `json:"item_name"`
	ItemKind       StockItemKind   `json:"item_kind"`
	Delta          decimal.Decimal `json:"delta"`
	ResultingStock decimal.Decimal `json:"resulting_stock"`
	Reason         MovementReason  `json:"reason"`
}

// NewStockAdjustedEvent creates a new StockAdjustedEvent
func NewStockAdjustedEvent(item *StockItem, delta, resultingStock decimal.Decimal, reason MovementReason) *StockAdjustedEvent {
	return &StockAdjustedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStockAdjusted, AggregateTypeStockItem, item.ID),
		ItemID:          item.ID,
		ItemName:        item.Name,
		ItemKind:        item.Kind,
		Delta:           delta,
		ResultingStock:  resultingStock,
		Reason:          reason,
	}
}

// EventType returns the event type name
func (e *StockAdjustedEvent) EventType() string {
	return EventTypeStockAdjusted
}

// StockBelowThresholdEvent is raised when a deduction leaves an item at or
// below its low-stock threshold
type StockBelowThresholdEvent struct {
	shared.BaseDomainEvent
	ItemID       uuid.UUID       `json:"item_id"`
	ItemName     string          `json:"item_name"`
	ItemKind     StockItemKind   `json:"item_kind"`
	CurrentStock decimal.Decimal `json:"current_stock"`
	Threshold    decimal.Decimal `json:"threshold"`
}

// NewStockBelowThresholdEvent creates a new StockBelowThresholdEvent
func NewStockBelowThresholdEvent(item *StockItem, currentStock decimal.Decimal) *StockBelowThresholdEvent {
	return &StockBelowThresholdEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStockBelowThreshold, AggregateTypeStockItem, item.ID),
		ItemID:          item.ID,
		ItemName:        item.Name,
		ItemKind:        item.Kind,
		CurrentStock:    currentStock,
		Threshold:       item.LowStockThreshold,
	}
}

// EventType returns the event type name
func (e *StockBelowThresholdEvent) EventType() string {
	return EventTypeStockBelowThreshold
}
