package purchasing

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ovenplan/backend/internal/domain/shared"
	"github.com/ovenplan/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// PurchaseOrderStatus represents the status of a purchase order
type PurchaseOrderStatus string

const (
	PurchaseOrderStatusDraft    PurchaseOrderStatus = "draft"
	PurchaseOrderStatusSent     PurchaseOrderStatus = "sent"
	PurchaseOrderStatusPartial  PurchaseOrderStatus = "partial"
	PurchaseOrderStatusComplete PurchaseOrderStatus = "complete"
)

// IsValid checks if the status is a valid PurchaseOrderStatus
func (s PurchaseOrderStatus) IsValid() bool {
	switch s {
	case PurchaseOrderStatusDraft, PurchaseOrderStatusSent, PurchaseOrderStatusPartial, PurchaseOrderStatusComplete:
		return true
	}
	return false
}

// String returns the string representation of PurchaseOrderStatus
func (s PurchaseOrderStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s PurchaseOrderStatus) CanTransitionTo(target PurchaseOrderStatus) bool {
	switch s {
	case PurchaseOrderStatusDraft:
		return target == PurchaseOrderStatusSent
	case PurchaseOrderStatusSent:
		return target == PurchaseOrderStatusPartial || target == PurchaseOrderStatusComplete
	case PurchaseOrderStatusPartial:
		return target == PurchaseOrderStatusPartial || target == PurchaseOrderStatusComplete
	case PurchaseOrderStatusComplete:
		return false
	}
	return false
}

// CanReceive returns true if goods receipt is allowed in this status
func (s PurchaseOrderStatus) CanReceive() bool {
	return s == PurchaseOrderStatusSent || s == PurchaseOrderStatusPartial
}

// PurchaseOrderItem is one ingredient line of a purchase order. The planning
// context (stock, safety buffer, requirement) is snapshotted at creation so
// the order stays readable as a historical record.
type PurchaseOrderItem struct {
	ID               uuid.UUID        `gorm:"type:uuid;primary_key"`
	OrderID          uuid.UUID        `gorm:"type:uuid;not null;index"`
	IngredientID     uuid.UUID        `gorm:"type:uuid;not null"`
	IngredientName   string           `gorm:"type:varchar(200);not null"`
	Unit             valueobject.Unit `gorm:"type:varchar(10);not null"`
	CurrentStock     decimal.Decimal  `gorm:"type:decimal(18,4);not null"` // snapshot at planning time
	SafetyStock      decimal.Decimal  `gorm:"type:decimal(18,4);not null"`
	TotalRequired    decimal.Decimal  `gorm:"type:decimal(18,4);not null"`
	NetRequired      decimal.Decimal  `gorm:"type:decimal(18,4);not null"`
	OrderedQuantity  decimal.Decimal  `gorm:"type:decimal(18,4);not null"`
	ReceivedQuantity decimal.Decimal  `gorm:"type:decimal(18,4);not null;default:0"`
	CreatedAt        time.Time        `gorm:"not null"`
	UpdatedAt        time.Time        `gorm:"not null"`
}

// TableName returns the table name for GORM
func (PurchaseOrderItem) TableName() string {
	return "purchase_order_items"
}

// IsFullyReceived returns true once received covers ordered
func (i *PurchaseOrderItem) IsFullyReceived() bool {
	return i.ReceivedQuantity.GreaterThanOrEqual(i.OrderedQuantity)
}

// AddReceivedQuantity accumulates a goods receipt onto the line. Receiving
// more than ordered is allowed; the supplier sometimes rounds up to pack
// sizes.
func (i *PurchaseOrderItem) AddReceivedQuantity(quantity decimal.Decimal) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_QUANTITY", "Receive quantity must be positive")
	}
	i.ReceivedQuantity = i.ReceivedQuantity.Add(quantity)
	i.UpdatedAt = time.Now()
	return nil
}

// WorkOrderRef records one work order whose requirements fed a purchase order
type WorkOrderRef struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index"`
	WorkOrderID uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (WorkOrderRef) TableName() string {
	return "purchase_order_work_orders"
}

// PurchaseOrder aggregates netted ingredient requirements over a planning
// date range into a supplier order. Only draft orders may be deleted; every
// other status is a permanent record.
type PurchaseOrder struct {
	shared.AuditedAggregateRoot
	PlanningStart time.Time           `gorm:"not null"`
	PlanningEnd   time.Time           `gorm:"not null"`
	Items         []PurchaseOrderItem `gorm:"foreignKey:OrderID;references:ID"`
	WorkOrders    []WorkOrderRef      `gorm:"foreignKey:OrderID;references:ID"`
	Status        PurchaseOrderStatus `gorm:"type:varchar(20);not null;default:'draft';index"`
	SentAt        *time.Time
	CompletedAt   *time.Time
}

// TableName returns the table name for GORM
func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

// NewItemInput describes one order line at creation, with the planning
// snapshot and the (possibly user-overridden) ordered quantity.
type NewItemInput struct {
	IngredientID    uuid.UUID
	IngredientName  string
	Unit            valueobject.Unit
	CurrentStock    decimal.Decimal
	SafetyStock     decimal.Decimal
	TotalRequired   decimal.Decimal
	NetRequired     decimal.Decimal
	OrderedQuantity decimal.Decimal
}

// NewPurchaseOrder creates a draft purchase order. Lines with a zero or
// negative ordered quantity are dropped; at least one positive line must
// remain.
func NewPurchaseOrder(planningStart, planningEnd time.Time, items []NewItemInput, workOrderIDs []uuid.UUID, createdBy string) (*PurchaseOrder, error) {
	if planningStart.IsZero() || planningEnd.IsZero() {
		return nil, shared.NewDomainError("INVALID_RANGE", "Planning date range is required")
	}
	if planningEnd.Before(planningStart) {
		return nil, shared.NewDomainError("INVALID_RANGE", "Planning range end cannot precede its start")
	}

	order := &PurchaseOrder{
		AuditedAggregateRoot: shared.NewAuditedAggregateRoot(createdBy),
		PlanningStart:        planningStart,
		PlanningEnd:          planningEnd,
		Status:               PurchaseOrderStatusDraft,
	}

	now := time.Now()
	seen := make(map[uuid.UUID]bool, len(items))
	for _, in := range items {
		if in.OrderedQuantity.LessThanOrEqual(decimal.Zero) {
			continue
		}
		if in.IngredientID == uuid.Nil || in.IngredientName == "" {
			return nil, shared.NewDomainError("INVALID_INGREDIENT", "Order line ingredient reference cannot be empty")
		}
		if seen[in.IngredientID] {
			return nil, shared.NewDomainError("DUPLICATE_INGREDIENT", fmt.Sprintf("Ingredient %s appears more than once", in.IngredientName))
		}
		seen[in.IngredientID] = true

		order.Items = append(order.Items, PurchaseOrderItem{
			ID:               uuid.New(),
			OrderID:          order.ID,
			IngredientID:     in.IngredientID,
			IngredientName:   in.IngredientName,
			Unit:             in.Unit,
			CurrentStock:     in.CurrentStock,
			SafetyStock:      in.SafetyStock,
			TotalRequired:    in.TotalRequired,
			NetRequired:      in.NetRequired,
			OrderedQuantity:  in.OrderedQuantity,
			ReceivedQuantity: decimal.Zero,
			CreatedAt:        now,
			UpdatedAt:        now,
		})
	}
	if len(order.Items) == 0 {
		return nil, shared.NewDomainError("NO_ITEMS", "Purchase order needs at least one line with a positive ordered quantity")
	}

	for _, woID := range workOrderIDs {
		order.WorkOrders = append(order.WorkOrders, WorkOrderRef{
			ID:          uuid.New(),
			OrderID:     order.ID,
			WorkOrderID: woID,
			CreatedAt:   now,
		})
	}

	return order, nil
}

// MarkSent transitions draft -> sent
func (o *PurchaseOrder) MarkSent() error {
	if !o.Status.CanTransitionTo(PurchaseOrderStatusSent) {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot send a purchase order in %s status", o.Status))
	}
	now := time.Now()
	o.Status = PurchaseOrderStatusSent
	o.SentAt = &now
	o.touch()
	return nil
}

// ReceiptLine is one ingredient receipt applied to the order
type ReceiptLine struct {
	IngredientID uuid.UUID
	Quantity     decimal.Decimal
}

// ReceivedLine reports how one line was updated by a receipt, so the caller
// can apply the matching stock increment in the same transaction.
type ReceivedLine struct {
	IngredientID   uuid.UUID
	IngredientName string
	Unit           valueobject.Unit
	Quantity       decimal.Decimal
}

// Receive records a goods receipt: accumulates received quantities onto the
// matching lines and derives the resulting status - complete iff every
// line's received quantity covers its ordered quantity, else partial.
func (o *PurchaseOrder) Receive(lines []ReceiptLine) ([]ReceivedLine, error) {
	if !o.Status.CanReceive() {
		return nil, shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot receive goods for a purchase order in %s status", o.Status))
	}
	if len(lines) == 0 {
		return nil, shared.NewDomainError("NO_ITEMS", "Receipt lines cannot be empty")
	}

	received := make([]ReceivedLine, 0, len(lines))
	for _, line := range lines {
		if line.Quantity.LessThanOrEqual(decimal.Zero) {
			continue
		}
		item := o.itemByIngredient(line.IngredientID)
		if item == nil {
			return nil, shared.NewDomainError("ITEM_NOT_FOUND", fmt.Sprintf("Ingredient %s is not on this purchase order", line.IngredientID))
		}
		if err := item.AddReceivedQuantity(line.Quantity); err != nil {
			return nil, err
		}
		received = append(received, ReceivedLine{
			IngredientID:   item.IngredientID,
			IngredientName: item.IngredientName,
			Unit:           item.Unit,
			Quantity:       line.Quantity,
		})
	}
	if len(received) == 0 {
		return nil, shared.NewDomainError("NO_ITEMS", "Receipt must include at least one positive quantity")
	}

	if o.allItemsReceived() {
		now := time.Now()
		o.Status = PurchaseOrderStatusComplete
		o.CompletedAt = &now
	} else {
		o.Status = PurchaseOrderStatusPartial
	}
	o.touch()

	return received, nil
}

// EnsureDeletable returns nil only for draft orders; any other status is a
// permanent record and the error names it.
func (o *PurchaseOrder) EnsureDeletable() error {
	if o.Status != PurchaseOrderStatusDraft {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Only draft purchase orders can be deleted; this order is %s", o.Status))
	}
	return nil
}

// IsDraft returns true if the order has not been sent yet
func (o *PurchaseOrder) IsDraft() bool {
	return o.Status == PurchaseOrderStatusDraft
}

// WorkOrderIDs returns the referenced work order ids
func (o *PurchaseOrder) WorkOrderIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(o.WorkOrders))
	for _, ref := range o.WorkOrders {
		ids = append(ids, ref.WorkOrderID)
	}
	return ids
}

func (o *PurchaseOrder) itemByIngredient(ingredientID uuid.UUID) *PurchaseOrderItem {
	for idx := range o.Items {
		if o.Items[idx].IngredientID == ingredientID {
			return &o.Items[idx]
		}
	}
	return nil
}

func (o *PurchaseOrder) allItemsReceived() bool {
	for _, item := range o.Items {
		if !item.IsFullyReceived() {
			return false
		}
	}
	return len(o.Items) > 0
}

func (o *PurchaseOrder) touch() {
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
}
