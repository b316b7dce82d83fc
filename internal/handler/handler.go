package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/silvercommerce/tax-admin/pkg/response"
)

// siteHeader selects the tenant for a request. Absent header means the
// default site configured at boot.
const siteHeader = "X-Site-ID"

func resolveSiteID(c *gin.Context, fallback uuid.UUID) (uuid.UUID, error) {
	raw := c.GetHeader(siteHeader)
	if raw == "" {
		return fallback, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s header: %w", siteHeader, err)
	}
	return id, nil
}

func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid "+name+": "+err.Error()))
		return uuid.Nil, false
	}
	return id, true
}

// parseIncludeTax reads the optional include_tax query flag; nil means
// the configured default applies.
func parseIncludeTax(c *gin.Context) *bool {
	raw := c.Query("include_tax")
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}
