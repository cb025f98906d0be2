package planning

import (
	"github.com/google/uuid"
	"github.com/ovenplan/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Aggregate type constants
const (
	AggregateTypeWorkOrder  = "WorkOrder"
	AggregateTypeDemandPlan = "DemandPlan"
)

// Event type constants
const (
	EventTypeWorkOrderCompleted  = "WorkOrderCompleted"
	EventTypeDemandPlanFulfilled = "DemandPlanFulfilled"
)

// WorkOrderCompletedEvent is raised when a work order completes and its
// stock transfer has committed
type WorkOrderCompletedEvent struct {
	shared.BaseDomainEvent
	WorkOrderID      uuid.UUID       `json:"work_order_id"`
	FinishedGoodID   uuid.UUID       `json:"finished_good_id"`
	FinishedGoodName string          `json:"finished_good_name"`
	OrderType        OrderType       `json:"order_type"`
	Batches          int64           `json:"batches"`
	TotalYield       decimal.Decimal `json:"total_yield"`
}

// NewWorkOrderCompletedEvent creates a new WorkOrderCompletedEvent
func NewWorkOrderCompletedEvent(wo *WorkOrder) *WorkOrderCompletedEvent {
	return &WorkOrderCompletedEvent{
		BaseDomainEvent:  shared.NewBaseDomainEvent(EventTypeWorkOrderCompleted, AggregateTypeWorkOrder, wo.ID),
		WorkOrderID:      wo.ID,
		FinishedGoodID:   wo.FinishedGoodID,
		FinishedGoodName: wo.FinishedGoodName,
		OrderType:        wo.OrderType,
		Batches:          wo.BatchesActual,
		TotalYield:       wo.TotalYield,
	}
}

// EventType returns the event type name
func (e *WorkOrderCompletedEvent) EventType() string {
	return EventTypeWorkOrderCompleted
}

// DemandPlanFulfilledEvent is raised when an open plan is converted into a
// work order
type DemandPlanFulfilledEvent struct {
	shared.BaseDomainEvent
	DemandPlanID     uuid.UUID `json:"demand_plan_id"`
	FinishedGoodID   uuid.UUID `json:"finished_good_id"`
	FinishedGoodName string    `json:"finished_good_name"`
	OrderType        OrderType `json:"order_type"`
}

// NewDemandPlanFulfilledEvent creates a new DemandPlanFulfilledEvent
func NewDemandPlanFulfilledEvent(p *DemandPlan) *DemandPlanFulfilledEvent {
	return &DemandPlanFulfilledEvent{
		BaseDomainEvent:  shared.NewBaseDomainEvent(EventTypeDemandPlanFulfilled, AggregateTypeDemandPlan, p.ID),
		DemandPlanID:     p.ID,
		FinishedGoodID:   p.FinishedGoodID,
		FinishedGoodName: p.FinishedGoodName,
		OrderType:        p.OrderType,
	}
}

// EventType returns the event type name
func (e *DemandPlanFulfilledEvent) EventType() string {
	return EventTypeDemandPlanFulfilled
}
