package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/silvercommerce/tax-admin/internal/service"
	"github.com/silvercommerce/tax-admin/pkg/pagination"
	"github.com/silvercommerce/tax-admin/pkg/response"
)

type TaxCategoryHandler struct {
	categoryService service.TaxCategoryService
	defaultSiteID   uuid.UUID
}

func NewTaxCategoryHandler(categoryService service.TaxCategoryService, defaultSiteID uuid.UUID) *TaxCategoryHandler {
	return &TaxCategoryHandler{categoryService: categoryService, defaultSiteID: defaultSiteID}
}

func (h *TaxCategoryHandler) RegisterRoutes(router *gin.RouterGroup) {
	categories := router.Group("/api/tax-categories")
	{
		categories.GET("", h.ListTaxCategories)
		categories.POST("", h.CreateTaxCategory)
		categories.GET("/:id", h.GetTaxCategory)
		categories.PUT("/:id", h.UpdateTaxCategory)
		categories.DELETE("/:id", h.DeleteTaxCategory)
		categories.POST("/:id/default", h.SetDefault)
		categories.POST("/:id/rates", h.AttachRate)
		categories.DELETE("/:id/rates/:rateId", h.DetachRate)
	}
}

// ListTaxCategories returns the site's tax categories with their rates
// @Summary      List tax categories
// @Tags         tax-categories
// @Produce      json
// @Param        X-Site-ID  header    string  false  "Tenant site ID"
// @Param        page       query     int     false  "Page number"
// @Param        limit      query     int     false  "Page size"
// @Success      200        {object}  response.Response{data=[]service.TaxCategoryResponse}
// @Failure      500        {object}  response.Response
// @Router       /tax-categories [get]
func (h *TaxCategoryHandler) ListTaxCategories(c *gin.Context) {
	siteID, err := resolveSiteID(c, h.defaultSiteID)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	params := pagination.Parse(c)
	categories, total, err := h.categoryService.List(c.Request.Context(), siteID, params.Page, params.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.SuccessWithPagination(http.StatusOK, categories, params.Page, params.Limit, total))
}

// GetTaxCategory returns a single category with rates in position order
// @Summary      Get tax category
// @Tags         tax-categories
// @Produce      json
// @Param        id   path      string  true  "Tax category ID"
// @Success      200  {object}  response.Response{data=service.TaxCategoryResponse}
// @Failure      404  {object}  response.Response
// @Router       /tax-categories/{id} [get]
func (h *TaxCategoryHandler) GetTaxCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	category, err := h.categoryService.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, category))
}

// CreateTaxCategory creates a new tax category
// @Summary      Create tax category
// @Tags         tax-categories
// @Accept       json
// @Produce      json
// @Param        X-Site-ID  header    string                             false  "Tenant site ID"
// @Param        payload    body      service.CreateTaxCategoryRequest   true   "Tax category payload"
// @Success      201        {object}  response.Response{data=service.TaxCategoryResponse}
// @Failure      400        {object}  response.Response
// @Router       /tax-categories [post]
func (h *TaxCategoryHandler) CreateTaxCategory(c *gin.Context) {
	siteID, err := resolveSiteID(c, h.defaultSiteID)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	var req service.CreateTaxCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), siteID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, category))
}

// UpdateTaxCategory updates title and default flag
// @Summary      Update tax category
// @Tags         tax-categories
// @Accept       json
// @Produce      json
// @Param        id       path      string                            true  "Tax category ID"
// @Param        payload  body      service.UpdateTaxCategoryRequest  true  "Tax category payload"
// @Success      200      {object}  response.Response{data=service.TaxCategoryResponse}
// @Failure      400      {object}  response.Response
// @Router       /tax-categories/{id} [put]
func (h *TaxCategoryHandler) UpdateTaxCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateTaxCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	category, err := h.categoryService.Update(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, category))
}

// DeleteTaxCategory removes a tax category
// @Summary      Delete tax category
// @Tags         tax-categories
// @Produce      json
// @Param        id   path      string  true  "Tax category ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /tax-categories/{id} [delete]
func (h *TaxCategoryHandler) DeleteTaxCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.categoryService.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.SuccessWithMessage(http.StatusOK, "Tax category deleted", nil))
}

// SetDefault promotes a category to site default, demoting siblings
// @Summary      Set default tax category
// @Tags         tax-categories
// @Produce      json
// @Param        id   path      string  true  "Tax category ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /tax-categories/{id}/default [post]
func (h *TaxCategoryHandler) SetDefault(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.categoryService.SetDefault(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.SuccessWithMessage(http.StatusOK, "Default tax category updated", nil))
}

// AttachRate attaches a rate to the category at a position
// @Summary      Attach rate
// @Tags         tax-categories
// @Accept       json
// @Produce      json
// @Param        id       path      string                     true  "Tax category ID"
// @Param        payload  body      service.AttachRateRequest  true  "Attach payload"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /tax-categories/{id}/rates [post]
func (h *TaxCategoryHandler) AttachRate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.AttachRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	if err := h.categoryService.AttachRate(c.Request.Context(), id, req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.SuccessWithMessage(http.StatusOK, "Rate attached", nil))
}

// DetachRate removes a rate from the category
// @Summary      Detach rate
// @Tags         tax-categories
// @Produce      json
// @Param        id      path      string  true  "Tax category ID"
// @Param        rateId  path      string  true  "Tax rate ID"
// @Success      200     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Router       /tax-categories/{id}/rates/{rateId} [delete]
func (h *TaxCategoryHandler) DetachRate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	rateID, ok := parseIDParam(c, "rateId")
	if !ok {
		return
	}

	if err := h.categoryService.DetachRate(c.Request.Context(), id, rateID); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.SuccessWithMessage(http.StatusOK, "Rate detached", nil))
}
