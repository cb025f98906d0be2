package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	salesapp "github.com/ovenplan/backend/internal/application/sales"
)

// SalesHandler handles sales recording and end-of-day reconciliation endpoints
type SalesHandler struct {
	BaseHandler
	salesService    *salesapp.SalesService
	endOfDayService *salesapp.EndOfDayService
}

// NewSalesHandler creates a new SalesHandler
func NewSalesHandler(salesService *salesapp.SalesService, endOfDayService *salesapp.EndOfDayService) *SalesHandler {
	return &SalesHandler{
		salesService:    salesService,
		endOfDayService: endOfDayService,
	}
}

// RecordSale handles POST /sales
func (h *SalesHandler) RecordSale(c *gin.Context) {
	var req salesapp.RecordSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	record, err := h.salesService.RecordSale(c.Request.Context(), &req, getUser(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, record)
}

// ListSales handles GET /sales. An optional good_id query narrows to one
// finished good; start/end narrow to a date range.
func (h *SalesHandler) ListSales(c *gin.Context) {
	ctx := c.Request.Context()

	if goodIDStr := c.Query("good_id"); goodIDStr != "" {
		goodID, err := uuid.Parse(goodIDStr)
		if err != nil {
			h.BadRequest(c, "Invalid finished good ID format")
			return
		}
		page, pageSize := parsePagination(c)
		records, err := h.salesService.ListByGood(ctx, goodID, page, pageSize)
		if err != nil {
			h.HandleDomainError(c, err)
			return
		}
		h.Success(c, records)
		return
	}

	if startStr := c.Query("start"); startStr != "" {
		start, err := parseDate(startStr)
		if err != nil {
			h.BadRequest(c, "Invalid start date")
			return
		}
		end, err := parseDate(c.Query("end"))
		if err != nil {
			h.BadRequest(c, "Invalid end date")
			return
		}
		records, err := h.salesService.ListBetween(ctx, start, end)
		if err != nil {
			h.HandleDomainError(c, err)
			return
		}
		h.Success(c, records)
		return
	}

	page, pageSize := parsePagination(c)
	records, err := h.salesService.ListRecent(ctx, page, pageSize)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, records)
}

// ListEndOfDayCandidates handles GET /end-of-day/candidates
func (h *SalesHandler) ListEndOfDayCandidates(c *gin.Context) {
	candidates, err := h.endOfDayService.ListCandidates(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, candidates)
}

// Reconcile handles POST /end-of-day/reconcile
func (h *SalesHandler) Reconcile(c *gin.Context) {
	var req salesapp.ReconcileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	records, err := h.endOfDayService.Reconcile(c.Request.Context(), &req, getUser(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, records)
}

// ListEndOfDayRecords handles GET /end-of-day/records
func (h *SalesHandler) ListEndOfDayRecords(c *gin.Context) {
	page, pageSize := parsePagination(c)
	records, err := h.endOfDayService.ListRecent(c.Request.Context(), page, pageSize)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, records)
}
