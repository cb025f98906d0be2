package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/ovenplan/backend/internal/domain/sales"
	"github.com/shopspring/decimal"
)

// RecordSaleRequest represents a request to record one over-the-counter sale
type RecordSaleRequest struct {
	FinishedGoodID uuid.UUID        `json:"finished_good_id" binding:"required"`
	Quantity       decimal.Decimal  `json:"quantity" binding:"required"`
	PricePerUnit   *decimal.Decimal `json:"price_per_unit"` // defaults to the good's list price
}

// SalesRecordResponse represents a sale in API responses
type SalesRecordResponse struct {
	ID               uuid.UUID       `json:"id"`
	FinishedGoodID   uuid.UUID       `json:"finished_good_id"`
	FinishedGoodName string          `json:"finished_good_name"`
	Unit             string          `json:"unit"`
	Quantity         decimal.Decimal `json:"quantity"`
	PricePerUnit     decimal.Decimal `json:"price_per_unit"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	SoldBy           string          `json:"sold_by"`
	SoldAt           time.Time       `json:"sold_at"`
}

// EndOfDayCandidateResponse is one finished good eligible for reconciliation
type EndOfDayCandidateResponse struct {
	FinishedGoodID   uuid.UUID       `json:"finished_good_id"`
	FinishedGoodName string          `json:"finished_good_name"`
	Unit             string          `json:"unit"`
	CurrentStock     decimal.Decimal `json:"current_stock"`
	DayOldGoodID     *uuid.UUID      `json:"day_old_good_id,omitempty"`
	CanTransfer      bool            `json:"can_transfer"`
}

// ReconcileRowRequest is one row of an end-of-day reconciliation
type ReconcileRowRequest struct {
	FinishedGoodID uuid.UUID       `json:"finished_good_id" binding:"required"`
	Action         string          `json:"action" binding:"required,oneof=write_off transfer_to_day_old"`
	Quantity       decimal.Decimal `json:"quantity" binding:"required"`
}

// ReconcileRequest represents a full end-of-day reconciliation submission
type ReconcileRequest struct {
	Rows []ReconcileRowRequest `json:"rows" binding:"required,min=1,dive"`
}

// EndOfDayRecordResponse represents one reconciliation record
type EndOfDayRecordResponse struct {
	ID               uuid.UUID       `json:"id"`
	FinishedGoodID   uuid.UUID       `json:"finished_good_id"`
	FinishedGoodName string          `json:"finished_good_name"`
	Unit             string          `json:"unit"`
	Action           string          `json:"action"`
	Quantity         decimal.Decimal `json:"quantity"`
	DayOldGoodID     *uuid.UUID      `json:"day_old_good_id,omitempty"`
	DayOldGoodName   string          `json:"day_old_good_name,omitempty"`
	RecordedBy       string          `json:"recorded_by"`
	RecordedAt       time.Time       `json:"recorded_at"`
}

// ToSalesRecordResponse converts a domain sales record to its response form
func ToSalesRecordResponse(r *sales.SalesRecord) *SalesRecordResponse {
	return &SalesRecordResponse{
		ID:               r.ID,
		FinishedGoodID:   r.FinishedGoodID,
		FinishedGoodName: r.FinishedGoodName,
		Unit:             string(r.Unit),
		Quantity:         r.Quantity,
		PricePerUnit:     r.PricePerUnit,
		TotalRevenue:     r.TotalRevenue,
		SoldBy:           r.SoldBy,
		SoldAt:           r.SoldAt,
	}
}

// ToEndOfDayRecordResponse converts a domain reconciliation record to its response form
func ToEndOfDayRecordResponse(r *sales.EndOfDayRecord) *EndOfDayRecordResponse {
	return &EndOfDayRecordResponse{
		ID:               r.ID,
		FinishedGoodID:   r.FinishedGoodID,
		FinishedGoodName: r.FinishedGoodName,
		Unit:             string(r.Unit),
		Action:           r.Action.String(),
		Quantity:         r.Quantity,
		DayOldGoodID:     r.DayOldGoodID,
		DayOldGoodName:   r.DayOldGoodName,
		RecordedBy:       r.RecordedBy,
		RecordedAt:       r.RecordedAt,
	}
}
