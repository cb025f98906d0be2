package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	recipeapp "github.com/ovenplan/backend/internal/application/recipe"
)

// RecipeHandler handles recipe endpoints
type RecipeHandler struct {
	BaseHandler
	recipeService *recipeapp.RecipeService
}

// NewRecipeHandler creates a new RecipeHandler
func NewRecipeHandler(recipeService *recipeapp.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService}
}

// Create handles POST /recipes
func (h *RecipeHandler) Create(c *gin.Context) {
	var req recipeapp.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	rec, err := h.recipeService.Create(c.Request.Context(), &req, getUser(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, rec)
}

// GetByID handles GET /recipes/:id
func (h *RecipeHandler) GetByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid recipe ID format")
		return
	}

	rec, err := h.recipeService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, rec)
}

// GetActiveByFinishedGood handles GET /recipes/by-finished-good/:id
func (h *RecipeHandler) GetActiveByFinishedGood(c *gin.Context) {
	goodID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid finished good ID format")
		return
	}

	rec, err := h.recipeService.GetActiveByFinishedGood(c.Request.Context(), goodID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, rec)
}

// List handles GET /recipes
func (h *RecipeHandler) List(c *gin.Context) {
	var filter recipeapp.RecipeListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.recipeService.List(c.Request.Context(), &filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Update handles PUT /recipes/:id
func (h *RecipeHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid recipe ID format")
		return
	}

	var req recipeapp.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	rec, err := h.recipeService.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, rec)
}

// Archive handles POST /recipes/:id/archive
func (h *RecipeHandler) Archive(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid recipe ID format")
		return
	}

	rec, err := h.recipeService.Archive(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, rec)
}
