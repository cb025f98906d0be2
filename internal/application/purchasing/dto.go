package purchasing

import (
	"time"

	"github.com/google/uuid"
	"github.com/ovenplan/backend/internal/domain/purchasing"
	"github.com/shopspring/decimal"
)

// RequirementLineResponse is one aggregated ingredient requirement over a
// planning range, with the live stock position netted against it
type RequirementLineResponse struct {
	IngredientID   uuid.UUID       `json:"ingredient_id"`
	IngredientName string          `json:"ingredient_name"`
	Unit           string          `json:"unit"`
	TotalRequired  decimal.Decimal `json:"total_required"`
	CurrentStock   decimal.Decimal `json:"current_stock"`
	SafetyStock    decimal.Decimal `json:"safety_stock"`
	NetRequired    decimal.Decimal `json:"net_required"` // max(0, required - (current - safety))
}

// AggregateRequirementsResponse is the netted shopping list for a date range
type AggregateRequirementsResponse struct {
	PlanningStart time.Time                 `json:"planning_start"`
	PlanningEnd   time.Time                 `json:"planning_end"`
	Lines         []RequirementLineResponse `json:"lines"`
	WorkOrderIDs  []uuid.UUID               `json:"work_order_ids"`
}

// CreateOrderItemRequest is one line of a purchase order creation request.
// OrderedQuantity may override the suggested net requirement.
type CreateOrderItemRequest struct {
	IngredientID    uuid.UUID       `json:"ingredient_id" binding:"required"`
	OrderedQuantity decimal.Decimal `json:"ordered_quantity" binding:"required"`
}

// CreatePurchaseOrderRequest represents a request to create a purchase order
type CreatePurchaseOrderRequest struct {
	PlanningStart time.Time                `json:"planning_start" binding:"required"`
	PlanningEnd   time.Time                `json:"planning_end" binding:"required"`
	Items         []CreateOrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// ReceiveGoodsLineRequest is one received line of a goods receipt
type ReceiveGoodsLineRequest struct {
	IngredientID uuid.UUID       `json:"ingredient_id" binding:"required"`
	Quantity     decimal.Decimal `json:"quantity" binding:"required"`
}

// ReceiveGoodsRequest represents a goods receipt against a purchase order
type ReceiveGoodsRequest struct {
	Lines []ReceiveGoodsLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// PurchaseOrderItemResponse represents one order line in API responses
type PurchaseOrderItemResponse struct {
	IngredientID     uuid.UUID       `json:"ingredient_id"`
	IngredientName   string          `json:"ingredient_name"`
	Unit             string          `json:"unit"`
	CurrentStock     decimal.Decimal `json:"current_stock"`
	SafetyStock      decimal.Decimal `json:"safety_stock"`
	TotalRequired    decimal.Decimal `json:"total_required"`
	NetRequired      decimal.Decimal `json:"net_required"`
	OrderedQuantity  decimal.Decimal `json:"ordered_quantity"`
	ReceivedQuantity decimal.Decimal `json:"received_quantity"`
	FullyReceived    bool            `json:"fully_received"`
}

// PurchaseOrderResponse represents a purchase order in API responses
type PurchaseOrderResponse struct {
	ID            uuid.UUID                   `json:"id"`
	PlanningStart time.Time                   `json:"planning_start"`
	PlanningEnd   time.Time                   `json:"planning_end"`
	Items         []PurchaseOrderItemResponse `json:"items"`
	WorkOrderIDs  []uuid.UUID                 `json:"work_order_ids"`
	Status        string                      `json:"status"`
	CreatedBy     string                      `json:"created_by"`
	CreatedAt     time.Time                   `json:"created_at"`
	SentAt        *time.Time                  `json:"sent_at,omitempty"`
	CompletedAt   *time.Time                  `json:"completed_at,omitempty"`
}

// PurchaseOrderListFilter represents filter options for listing orders
type PurchaseOrderListFilter struct {
	Status   string `form:"status" binding:"omitempty,oneof=draft sent partial complete"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=200"`
}

// ToPurchaseOrderResponse converts a domain purchase order to its response form
func ToPurchaseOrderResponse(o *purchasing.PurchaseOrder) *PurchaseOrderResponse {
	items := make([]PurchaseOrderItemResponse, 0, len(o.Items))
	for i := range o.Items {
		item := &o.Items[i]
		items = append(items, PurchaseOrderItemResponse{
			IngredientID:     item.IngredientID,
			IngredientName:   item.IngredientName,
			Unit:             string(item.Unit),
			CurrentStock:     item.CurrentStock,
			SafetyStock:      item.SafetyStock,
			TotalRequired:    item.TotalRequired,
			NetRequired:      item.NetRequired,
			OrderedQuantity:  item.OrderedQuantity,
			ReceivedQuantity: item.ReceivedQuantity,
			FullyReceived:    item.IsFullyReceived(),
		})
	}
	return &PurchaseOrderResponse{
		ID:            o.ID,
		PlanningStart: o.PlanningStart,
		PlanningEnd:   o.PlanningEnd,
		Items:         items,
		WorkOrderIDs:  o.WorkOrderIDs(),
		Status:        o.Status.String(),
		CreatedBy:     o.CreatedBy,
		CreatedAt:     o.CreatedAt,
		SentAt:        o.SentAt,
		CompletedAt:   o.CompletedAt,
	}
}
