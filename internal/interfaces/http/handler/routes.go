package handler

import "github.com/gin-gonic/gin"

// RegisterRoutes wires stock item endpoints
func (h *StockHandler) RegisterRoutes(rg *gin.RouterGroup) {
	items := rg.Group("/stock-items")
	{
		items.POST("", h.Create)
		items.GET("", h.List)
		items.GET("/low-stock", h.ListLowStock)
		items.GET("/:id", h.GetByID)
		items.PUT("/:id", h.Update)
		items.DELETE("/:id", h.Delete)
		items.POST("/:id/adjust", h.AdjustStock)
		items.GET("/:id/movements", h.ListMovements)
	}
}

// RegisterRoutes wires recipe endpoints
func (h *RecipeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	recipes := rg.Group("/recipes")
	{
		recipes.POST("", h.Create)
		recipes.GET("", h.List)
		recipes.GET("/by-finished-good/:id", h.GetActiveByFinishedGood)
		recipes.GET("/:id", h.GetByID)
		recipes.PUT("/:id", h.Update)
		recipes.POST("/:id/archive", h.Archive)
	}
}

// RegisterRoutes wires demand plan, work order and weekly planning endpoints
func (h *PlanningHandler) RegisterRoutes(rg *gin.RouterGroup) {
	plans := rg.Group("/demand-plans")
	{
		plans.POST("", h.CreateDemandPlan)
		plans.GET("", h.ListDemandPlans)
		plans.GET("/:id", h.GetDemandPlan)
		plans.POST("/:id/cancel", h.CancelDemandPlan)
		plans.POST("/:id/convert", h.ConvertDemandPlan)
	}

	orders := rg.Group("/work-orders")
	{
		orders.POST("", h.CreateWorkOrder)
		orders.GET("", h.ListWorkOrders)
		orders.GET("/:id", h.GetWorkOrder)
		orders.PUT("/:id", h.UpdateWorkOrder)
		orders.POST("/:id/start", h.StartWorkOrder)
		orders.POST("/:id/cancel", h.CancelWorkOrder)
		orders.POST("/:id/complete", h.CompleteWorkOrder)
	}

	rg.GET("/production-records", h.ListProductionRecords)

	templates := rg.Group("/weekly-templates")
	{
		templates.PUT("", h.UpsertWeeklyTemplate)
		templates.GET("", h.ListWeeklyTemplates)
	}

	weekly := rg.Group("/weekly-plans")
	{
		weekly.POST("/generate", h.GenerateWeek)
		weekly.GET("", h.ListWeeklyPlans)
	}
}

// RegisterRoutes wires purchasing endpoints
func (h *PurchasingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/purchasing/requirements", h.AggregateRequirements)

	orders := rg.Group("/purchase-orders")
	{
		orders.POST("", h.Create)
		orders.GET("", h.List)
		orders.GET("/:id", h.GetByID)
		orders.POST("/:id/send", h.MarkSent)
		orders.POST("/:id/receive", h.ReceiveGoods)
		orders.DELETE("/:id", h.Delete)
	}
}

// RegisterRoutes wires sales and end-of-day endpoints
func (h *SalesHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/sales", h.RecordSale)
	rg.GET("/sales", h.ListSales)

	eod := rg.Group("/end-of-day")
	{
		eod.GET("/candidates", h.ListEndOfDayCandidates)
		eod.POST("/reconcile", h.Reconcile)
		eod.GET("/records", h.ListEndOfDayRecords)
	}
}
