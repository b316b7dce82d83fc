package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/silvercommerce/tax-admin/internal/service"
	"github.com/silvercommerce/tax-admin/pkg/pagination"
	"github.com/silvercommerce/tax-admin/pkg/response"
)

type ZoneHandler struct {
	zoneService   service.ZoneService
	defaultSiteID uuid.UUID
}

func NewZoneHandler(zoneService service.ZoneService, defaultSiteID uuid.UUID) *ZoneHandler {
	return &ZoneHandler{zoneService: zoneService, defaultSiteID: defaultSiteID}
}

func (h *ZoneHandler) RegisterRoutes(router *gin.RouterGroup) {
	zones := router.Group("/api/zones")
	{
		zones.GET("", h.ListZones)
		zones.POST("", h.CreateZone)
		zones.GET("/:id", h.GetZone)
		zones.PUT("/:id", h.UpdateZone)
		zones.DELETE("/:id", h.DeleteZone)
	}
}

// ListZones returns the site's zones with regions
// @Summary      List zones
// @Tags         zones
// @Produce      json
// @Param        X-Site-ID  header    string  false  "Tenant site ID"
// @Param        page       query     int     false  "Page number"
// @Param        limit      query     int     false  "Page size"
// @Success      200        {object}  response.Response{data=[]service.ZoneResponse}
// @Failure      500        {object}  response.Response
// @Router       /zones [get]
func (h *ZoneHandler) ListZones(c *gin.Context) {
	siteID, err := resolveSiteID(c, h.defaultSiteID)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	params := pagination.Parse(c)
	zones, total, err := h.zoneService.List(c.Request.Context(), siteID, params.Page, params.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.SuccessWithPagination(http.StatusOK, zones, params.Page, params.Limit, total))
}

// GetZone returns a single zone
// @Summary      Get zone
// @Tags         zones
// @Produce      json
// @Param        id   path      string  true  "Zone ID"
// @Success      200  {object}  response.Response{data=service.ZoneResponse}
// @Failure      404  {object}  response.Response
// @Router       /zones/{id} [get]
func (h *ZoneHandler) GetZone(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	zone, err := h.zoneService.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, zone))
}

// CreateZone creates a zone with its regions
// @Summary      Create zone
// @Tags         zones
// @Accept       json
// @Produce      json
// @Param        X-Site-ID  header    string                    false  "Tenant site ID"
// @Param        payload    body      service.CreateZoneRequest  true   "Zone payload"
// @Success      201        {object}  response.Response{data=service.ZoneResponse}
// @Failure      400        {object}  response.Response
// @Router       /zones [post]
func (h *ZoneHandler) CreateZone(c *gin.Context) {
	siteID, err := resolveSiteID(c, h.defaultSiteID)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	var req service.CreateZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	zone, err := h.zoneService.Create(c.Request.Context(), siteID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, zone))
}

// UpdateZone updates a zone, replacing its regions
// @Summary      Update zone
// @Tags         zones
// @Accept       json
// @Produce      json
// @Param        id       path      string                     true  "Zone ID"
// @Param        payload  body      service.UpdateZoneRequest  true  "Zone payload"
// @Success      200      {object}  response.Response{data=service.ZoneResponse}
// @Failure      400      {object}  response.Response
// @Router       /zones/{id} [put]
func (h *ZoneHandler) UpdateZone(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	zone, err := h.zoneService.Update(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, zone))
}

// DeleteZone removes a zone
// @Summary      Delete zone
// @Tags         zones
// @Produce      json
// @Param        id   path      string  true  "Zone ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /zones/{id} [delete]
func (h *ZoneHandler) DeleteZone(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.zoneService.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.SuccessWithMessage(http.StatusOK, "Zone deleted", nil))
}
