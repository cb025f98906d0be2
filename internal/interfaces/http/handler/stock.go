package handler

import (
	"github.com/gin-gonic/gin"

	inventoryapp "github.com/ovenplan/backend/internal/application/inventory"
)

// StockHandler handles stock item and movement endpoints
type StockHandler struct {
	BaseHandler
	stockService *inventoryapp.StockService
}

// NewStockHandler creates a new StockHandler
func NewStockHandler(stockService *inventoryapp.StockService) *StockHandler {
	return &StockHandler{stockService: stockService}
}

// Create handles POST /stock-items
func (h *StockHandler) Create(c *gin.Context) {
	var req inventoryapp.CreateStockItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	item, err := h.stockService.Create(c.Request.Context(), &req, getUser(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, item)
}

// GetByID handles GET /stock-items/:id
func (h *StockHandler) GetByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid stock item ID format")
		return
	}

	item, err := h.stockService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, item)
}

// List handles GET /stock-items
func (h *StockHandler) List(c *gin.Context) {
	var filter inventoryapp.StockItemListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.stockService.List(c.Request.Context(), &filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Update handles PUT /stock-items/:id
func (h *StockHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid stock item ID format")
		return
	}

	var req inventoryapp.UpdateStockItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	item, err := h.stockService.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, item)
}

// Delete handles DELETE /stock-items/:id
func (h *StockHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid stock item ID format")
		return
	}

	if err := h.stockService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// AdjustStock handles POST /stock-items/:id/adjust
func (h *StockHandler) AdjustStock(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid stock item ID format")
		return
	}

	var req inventoryapp.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.stockService.AdjustStock(c.Request.Context(), id, &req, getUser(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, result)
}

// ListMovements handles GET /stock-items/:id/movements
func (h *StockHandler) ListMovements(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid stock item ID format")
		return
	}

	page, pageSize := parsePagination(c)
	movements, err := h.stockService.ListMovements(c.Request.Context(), id, page, pageSize)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, movements)
}

// ListLowStock handles GET /stock-items/low-stock
func (h *StockHandler) ListLowStock(c *gin.Context) {
	items, err := h.stockService.ListLowStock(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, items)
}
