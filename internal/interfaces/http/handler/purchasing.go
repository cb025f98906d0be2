package handler

import (
	"github.com/gin-gonic/gin"

	purchasingapp "github.com/ovenplan/backend/internal/application/purchasing"
)

// PurchasingHandler handles requirement aggregation and purchase order endpoints
type PurchasingHandler struct {
	BaseHandler
	purchasingService *purchasingapp.PurchasingService
}

// NewPurchasingHandler creates a new PurchasingHandler
func NewPurchasingHandler(purchasingService *purchasingapp.PurchasingService) *PurchasingHandler {
	return &PurchasingHandler{purchasingService: purchasingService}
}

// AggregateRequirements handles GET /purchasing/requirements?start=...&end=...
func (h *PurchasingHandler) AggregateRequirements(c *gin.Context) {
	start, err := parseDate(c.Query("start"))
	if err != nil {
		h.BadRequest(c, "Invalid start date")
		return
	}
	end, err := parseDate(c.Query("end"))
	if err != nil {
		h.BadRequest(c, "Invalid end date")
		return
	}

	result, err := h.purchasingService.AggregateRequirements(c.Request.Context(), start, end)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, result)
}

// Create handles POST /purchase-orders
func (h *PurchasingHandler) Create(c *gin.Context) {
	var req purchasingapp.CreatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	order, err := h.purchasingService.Create(c.Request.Context(), &req, getUser(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, order)
}

// GetByID handles GET /purchase-orders/:id
func (h *PurchasingHandler) GetByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid purchase order ID format")
		return
	}

	order, err := h.purchasingService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, order)
}

// List handles GET /purchase-orders
func (h *PurchasingHandler) List(c *gin.Context) {
	var filter purchasingapp.PurchaseOrderListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.purchasingService.List(c.Request.Context(), &filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// MarkSent handles POST /purchase-orders/:id/send
func (h *PurchasingHandler) MarkSent(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid purchase order ID format")
		return
	}

	order, err := h.purchasingService.MarkSent(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, order)
}

// ReceiveGoods handles POST /purchase-orders/:id/receive
func (h *PurchasingHandler) ReceiveGoods(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid purchase order ID format")
		return
	}

	var req purchasingapp.ReceiveGoodsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	order, err := h.purchasingService.ReceiveGoods(c.Request.Context(), id, &req, getUser(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, order)
}

// Delete handles DELETE /purchase-orders/:id
func (h *PurchasingHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid purchase order ID format")
		return
	}

	if err := h.purchasingService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
