package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/ovenplan/backend/internal/domain/inventory"
	"github.com/shopspring/decimal"
)

// StockItemResponse represents a stock item in API responses
type StockItemResponse struct {
	ID                   uuid.UUID        `json:"id"`
	Kind                 string           `json:"kind"`
	Name                 string           `json:"name"`
	Unit                 string           `json:"unit"`
	CurrentStock         decimal.Decimal  `json:"current_stock"`
	LowStockThreshold    decimal.Decimal  `json:"low_stock_threshold"`
	CostPerUnit          *decimal.Decimal `json:"cost_per_unit,omitempty"`
	Price                *decimal.Decimal `json:"price,omitempty"`
	DayOldFinishedGoodID *uuid.UUID       `json:"day_old_finished_good_id,omitempty"`
	IsBelowThreshold     bool             `json:"is_below_threshold"`
	CreatedBy            string           `json:"created_by"`
	CreatedAt            time.Time        `json:"created_at"`
	UpdatedAt            time.Time        `json:"updated_at"`
}

// CreateStockItemRequest represents a request to create a stock item
type CreateStockItemRequest struct {
	Kind                 string           `json:"kind" binding:"required,oneof=ingredient finished_good"`
	Name                 string           `json:"name" binding:"required"`
	Unit                 string           `json:"unit" binding:"required"`
	InitialStock         decimal.Decimal  `json:"initial_stock"`
	LowStockThreshold    decimal.Decimal  `json:"low_stock_threshold"`
	CostPerUnit          *decimal.Decimal `json:"cost_per_unit"`
	Price                *decimal.Decimal `json:"price"`
	DayOldFinishedGoodID *uuid.UUID       `json:"day_old_finished_good_id"`
}

// UpdateStockItemRequest represents a request to update descriptive fields.
// Stock levels are never updated here; use AdjustStockRequest.
type UpdateStockItemRequest struct {
	Name                 *string          `json:"name"`
	LowStockThreshold    *decimal.Decimal `json:"low_stock_threshold"`
	CostPerUnit          *decimal.Decimal `json:"cost_per_unit"`
	Price                *decimal.Decimal `json:"price"`
	DayOldFinishedGoodID *uuid.UUID       `json:"day_old_finished_good_id"`
	ClearDayOldLink      bool             `json:"clear_day_old_link"`
}

// AdjustStockRequest represents a manual signed stock adjustment
type AdjustStockRequest struct {
	Delta  decimal.Decimal `json:"delta" binding:"required"`
	Reason string          `json:"reason"`
}

// AdjustStockResponse reports the stock level after the delta was applied
type AdjustStockResponse struct {
	ItemID         uuid.UUID       `json:"item_id"`
	Delta          decimal.Decimal `json:"delta"`
	ResultingStock decimal.Decimal `json:"resulting_stock"`
}

// StockItemListFilter represents filter options for listing stock items
type StockItemListFilter struct {
	Kind           string `form:"kind" binding:"omitempty,oneof=ingredient finished_good"`
	BelowThreshold bool   `form:"below_threshold"`
	Page           int    `form:"page" binding:"omitempty,min=1"`
	PageSize       int    `form:"page_size" binding:"omitempty,min=1,max=200"`
}

// StockMovementResponse represents one stock movement log entry
type StockMovementResponse struct {
	ID          uuid.UUID       `json:"id"`
	ItemID      uuid.UUID       `json:"item_id"`
	ItemName    string          `json:"item_name"`
	ItemKind    string          `json:"item_kind"`
	Unit        string          `json:"unit"`
	Delta       decimal.Decimal `json:"delta"`
	Reason      string          `json:"reason"`
	ReferenceID *uuid.UUID      `json:"reference_id,omitempty"`
	RecordedBy  string          `json:"recorded_by"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ToStockItemResponse converts a domain stock item to its response form
func ToStockItemResponse(item *inventory.StockItem) *StockItemResponse {
	return &StockItemResponse{
		ID:                   item.ID,
		Kind:                 item.Kind.String(),
		Name:                 item.Name,
		Unit:                 string(item.Unit),
		CurrentStock:         item.CurrentStock,
		LowStockThreshold:    item.LowStockThreshold,
		CostPerUnit:          item.CostPerUnit,
		Price:                item.Price,
		DayOldFinishedGoodID: item.DayOldFinishedGoodID,
		IsBelowThreshold:     item.IsBelowThreshold(),
		CreatedBy:            item.CreatedBy,
		CreatedAt:            item.CreatedAt,
		UpdatedAt:            item.UpdatedAt,
	}
}

// ToStockMovementResponse converts a movement record to its response form
func ToStockMovementResponse(m *inventory.StockMovement) *StockMovementResponse {
	return &StockMovementResponse{
		ID:          m.ID,
		ItemID:      m.ItemID,
		ItemName:    m.ItemName,
		ItemKind:    m.ItemKind.String(),
		Unit:        string(m.Unit),
		Delta:       m.Delta,
		Reason:      string(m.Reason),
		ReferenceID: m.ReferenceID,
		RecordedBy:  m.RecordedBy,
		CreatedAt:   m.CreatedAt,
	}
}
