package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/silvercommerce/tax-admin/internal/service"
	"github.com/silvercommerce/tax-admin/pkg/pagination"
	"github.com/silvercommerce/tax-admin/pkg/response"
)

type TaxRateHandler struct {
	rateService   service.TaxRateService
	defaultSiteID uuid.UUID
}

func NewTaxRateHandler(rateService service.TaxRateService, defaultSiteID uuid.UUID) *TaxRateHandler {
	return &TaxRateHandler{rateService: rateService, defaultSiteID: defaultSiteID}
}

func (h *TaxRateHandler) RegisterRoutes(router *gin.RouterGroup) {
	rates := router.Group("/api/tax-rates")
	{
		rates.GET("", h.ListTaxRates)
		rates.POST("", h.CreateTaxRate)
		rates.GET("/:id", h.GetTaxRate)
		rates.PUT("/:id", h.UpdateTaxRate)
		rates.DELETE("/:id", h.DeleteTaxRate)
	}
}

// ListTaxRates returns the site's tax rates ordered by title
// @Summary      List tax rates
// @Tags         tax-rates
// @Produce      json
// @Param        X-Site-ID  header    string  false  "Tenant site ID"
// @Param        page       query     int     false  "Page number"
// @Param        limit      query     int     false  "Page size"
// @Success      200        {object}  response.Response{data=[]service.TaxRateResponse}
// @Failure      500        {object}  response.Response
// @Router       /tax-rates [get]
func (h *TaxRateHandler) ListTaxRates(c *gin.Context) {
	siteID, err := resolveSiteID(c, h.defaultSiteID)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	params := pagination.Parse(c)
	rates, total, err := h.rateService.List(c.Request.Context(), siteID, params.Page, params.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.SuccessWithPagination(http.StatusOK, rates, params.Page, params.Limit, total))
}

// GetTaxRate returns a single tax rate with its zones
// @Summary      Get tax rate
// @Tags         tax-rates
// @Produce      json
// @Param        id   path      string  true  "Tax rate ID"
// @Success      200  {object}  response.Response{data=service.TaxRateResponse}
// @Failure      404  {object}  response.Response
// @Router       /tax-rates/{id} [get]
func (h *TaxRateHandler) GetTaxRate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	rate, err := h.rateService.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, rate))
}

// CreateTaxRate creates a new tax rate
// @Summary      Create tax rate
// @Tags         tax-rates
// @Accept       json
// @Produce      json
// @Param        X-Site-ID  header    string                         false  "Tenant site ID"
// @Param        payload    body      service.CreateTaxRateRequest   true   "Tax rate payload"
// @Success      201        {object}  response.Response{data=service.TaxRateResponse}
// @Failure      400        {object}  response.Response
// @Router       /tax-rates [post]
func (h *TaxRateHandler) CreateTaxRate(c *gin.Context) {
	siteID, err := resolveSiteID(c, h.defaultSiteID)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	var req service.CreateTaxRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	rate, err := h.rateService.Create(c.Request.Context(), siteID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, rate))
}

// UpdateTaxRate updates a tax rate and its zone scoping
// @Summary      Update tax rate
// @Tags         tax-rates
// @Accept       json
// @Produce      json
// @Param        id       path      string                        true  "Tax rate ID"
// @Param        payload  body      service.UpdateTaxRateRequest  true  "Tax rate payload"
// @Success      200      {object}  response.Response{data=service.TaxRateResponse}
// @Failure      400      {object}  response.Response
// @Router       /tax-rates/{id} [put]
func (h *TaxRateHandler) UpdateTaxRate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateTaxRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	rate, err := h.rateService.Update(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, rate))
}

// DeleteTaxRate removes a tax rate
// @Summary      Delete tax rate
// @Tags         tax-rates
// @Produce      json
// @Param        id   path      string  true  "Tax rate ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /tax-rates/{id} [delete]
func (h *TaxRateHandler) DeleteTaxRate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.rateService.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.SuccessWithMessage(http.StatusOK, "Tax rate deleted", nil))
}
