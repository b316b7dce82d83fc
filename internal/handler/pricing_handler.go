package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/silvercommerce/tax-admin/internal/pricing"
	"github.com/silvercommerce/tax-admin/internal/service"
	"github.com/silvercommerce/tax-admin/pkg/response"
)

type PricingHandler struct {
	pricingService service.PricingService
	defaultSiteID  uuid.UUID
}

func NewPricingHandler(pricingService service.PricingService, defaultSiteID uuid.UUID) *PricingHandler {
	return &PricingHandler{pricingService: pricingService, defaultSiteID: defaultSiteID}
}

func (h *PricingHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/api/pricing/quote", h.Quote)
}

// Quote prices a stored product or an ad-hoc amount
// @Summary      Quote a price
// @Description  Returns the full tax breakdown for a product or an explicit base price with a rate or category.
// @Tags         pricing
// @Accept       json
// @Produce      json
// @Param        X-Site-ID  header    string                false  "Tenant site ID"
// @Param        payload    body      service.QuoteRequest  true   "Quote payload"
// @Success      200        {object}  response.Response{data=service.QuoteResponse}
// @Failure      400        {object}  response.Response
// @Router       /pricing/quote [post]
func (h *PricingHandler) Quote(c *gin.Context) {
	siteID, err := resolveSiteID(c, h.defaultSiteID)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	var req service.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	quote, err := h.pricingService.Quote(c.Request.Context(), siteID, req)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, pricing.ErrNegativeBasePrice) {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, response.Error(status, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, quote))
}
