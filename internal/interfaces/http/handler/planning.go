package handler

import (
	"github.com/gin-gonic/gin"

	planningapp "github.com/ovenplan/backend/internal/application/planning"
)

// PlanningHandler handles demand plan, work order and weekly plan endpoints
type PlanningHandler struct {
	BaseHandler
	demandPlans *planningapp.DemandPlanService
	workOrders  *planningapp.WorkOrderService
	weeklyPlans *planningapp.WeeklyPlanService
}

// NewPlanningHandler creates a new PlanningHandler
func NewPlanningHandler(
	demandPlans *planningapp.DemandPlanService,
	workOrders *planningapp.WorkOrderService,
	weeklyPlans *planningapp.WeeklyPlanService,
) *PlanningHandler {
	return &PlanningHandler{
		demandPlans: demandPlans,
		workOrders:  workOrders,
		weeklyPlans: weeklyPlans,
	}
}

// ===================== Demand plans =====================

// CreateDemandPlan handles POST /demand-plans
func (h *PlanningHandler) CreateDemandPlan(c *gin.Context) {
	var req planningapp.CreateDemandPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	plan, err := h.demandPlans.Create(c.Request.Context(), &req, getUser(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, plan)
}

// GetDemandPlan handles GET /demand-plans/:id
func (h *PlanningHandler) GetDemandPlan(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid demand plan ID format")
		return
	}

	plan, err := h.demandPlans.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, plan)
}

// ListDemandPlans handles GET /demand-plans
func (h *PlanningHandler) ListDemandPlans(c *gin.Context) {
	page, pageSize := parsePagination(c)
	result, err := h.demandPlans.List(c.Request.Context(), page, pageSize)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// CancelDemandPlan handles POST /demand-plans/:id/cancel
func (h *PlanningHandler) CancelDemandPlan(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid demand plan ID format")
		return
	}

	plan, err := h.demandPlans.Cancel(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, plan)
}

// ConvertDemandPlan handles POST /demand-plans/:id/convert
func (h *PlanningHandler) ConvertDemandPlan(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid demand plan ID format")
		return
	}

	var req planningapp.ConvertDemandPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	order, err := h.demandPlans.Convert(c.Request.Context(), id, &req, getUser(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, order)
}

// ===================== Work orders =====================

// CreateWorkOrder handles POST /work-orders
func (h *PlanningHandler) CreateWorkOrder(c *gin.Context) {
	var req planningapp.CreateWorkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	order, err := h.workOrders.Create(c.Request.Context(), &req, getUser(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, order)
}

// GetWorkOrder handles GET /work-orders/:id
func (h *PlanningHandler) GetWorkOrder(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid work order ID format")
		return
	}

	order, err := h.workOrders.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, order)
}

// ListWorkOrders handles GET /work-orders
func (h *PlanningHandler) ListWorkOrders(c *gin.Context) {
	var filter planningapp.WorkOrderListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.workOrders.List(c.Request.Context(), &filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// StartWorkOrder handles POST /work-orders/:id/start
func (h *PlanningHandler) StartWorkOrder(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid work order ID format")
		return
	}

	order, err := h.workOrders.Start(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, order)
}

// UpdateWorkOrder handles PUT /work-orders/:id
func (h *PlanningHandler) UpdateWorkOrder(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid work order ID format")
		return
	}

	var req planningapp.UpdateWorkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	order, err := h.workOrders.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, order)
}

// CancelWorkOrder handles POST /work-orders/:id/cancel
func (h *PlanningHandler) CancelWorkOrder(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid work order ID format")
		return
	}

	order, err := h.workOrders.Cancel(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, order)
}

// CompleteWorkOrder handles POST /work-orders/:id/complete
func (h *PlanningHandler) CompleteWorkOrder(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid work order ID format")
		return
	}

	result, err := h.workOrders.Complete(c.Request.Context(), id, getUser(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, result)
}

// ListProductionRecords handles GET /production-records
func (h *PlanningHandler) ListProductionRecords(c *gin.Context) {
	page, pageSize := parsePagination(c)
	records, err := h.workOrders.ListProductionRecords(c.Request.Context(), page, pageSize)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, records)
}

// ===================== Weekly planning =====================

// UpsertWeeklyTemplate handles PUT /weekly-templates
func (h *PlanningHandler) UpsertWeeklyTemplate(c *gin.Context) {
	var req planningapp.WeeklyTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	template, err := h.weeklyPlans.UpsertTemplate(c.Request.Context(), &req, getUser(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, template)
}

// ListWeeklyTemplates handles GET /weekly-templates
func (h *PlanningHandler) ListWeeklyTemplates(c *gin.Context) {
	templates, err := h.weeklyPlans.ListTemplates(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, templates)
}

// GenerateWeek handles POST /weekly-plans/generate
func (h *PlanningHandler) GenerateWeek(c *gin.Context) {
	var req planningapp.GenerateWeekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.weeklyPlans.GenerateWeek(c.Request.Context(), &req, getUser(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, result)
}

// ListWeeklyPlans handles GET /weekly-plans
func (h *PlanningHandler) ListWeeklyPlans(c *gin.Context) {
	page, pageSize := parsePagination(c)
	plans, err := h.weeklyPlans.ListPlans(c.Request.Context(), page, pageSize)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, plans)
}
