package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/silvercommerce/tax-admin/internal/service"
	"github.com/silvercommerce/tax-admin/pkg/pagination"
	"github.com/silvercommerce/tax-admin/pkg/response"
)

type ProductHandler struct {
	productService service.ProductService
	defaultSiteID  uuid.UUID
}

func NewProductHandler(productService service.ProductService, defaultSiteID uuid.UUID) *ProductHandler {
	return &ProductHandler{productService: productService, defaultSiteID: defaultSiteID}
}

func (h *ProductHandler) RegisterRoutes(router *gin.RouterGroup) {
	products := router.Group("/api/products")
	{
		products.GET("", h.ListProducts)
		products.POST("", h.CreateProduct)
		products.GET("/:id", h.GetProduct)
		products.PUT("/:id", h.UpdateProduct)
		products.DELETE("/:id", h.DeleteProduct)
		products.GET("/:id/pricing", h.GetProductPricing)
	}
}

// ListProducts returns the site's products
// @Summary      List products
// @Tags         products
// @Produce      json
// @Param        X-Site-ID  header    string  false  "Tenant site ID"
// @Param        page       query     int     false  "Page number"
// @Param        limit      query     int     false  "Page size"
// @Param        search     query     string  false  "Match against title or stock id"
// @Success      200        {object}  response.Response{data=[]service.ProductResponse}
// @Failure      500        {object}  response.Response
// @Router       /products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	siteID, err := resolveSiteID(c, h.defaultSiteID)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	params := pagination.Parse(c)
	products, total, err := h.productService.List(c.Request.Context(), siteID, params.Page, params.Limit, c.Query("search"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.SuccessWithPagination(http.StatusOK, products, params.Page, params.Limit, total))
}

// GetProduct returns a single product
// @Summary      Get product
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product ID"
// @Success      200  {object}  response.Response{data=service.ProductResponse}
// @Failure      404  {object}  response.Response
// @Router       /products/{id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	product, err := h.productService.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, product))
}

// GetProductPricing returns the product's full tax breakdown
// @Summary      Get product pricing
// @Tags         products
// @Produce      json
// @Param        id           path      string  true   "Product ID"
// @Param        country      query     string  false  "Buyer country (ISO-3166 alpha-2)"
// @Param        region       query     string  false  "Buyer subdivision code"
// @Param        include_tax  query     bool    false  "Quote price with tax included"
// @Success      200          {object}  response.Response{data=service.QuoteResponse}
// @Failure      404          {object}  response.Response
// @Router       /products/{id}/pricing [get]
func (h *ProductHandler) GetProductPricing(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	quote, err := h.productService.Pricing(c.Request.Context(), id, c.Query("country"), c.Query("region"), parseIncludeTax(c))
	if err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, quote))
}

// CreateProduct creates a product
// @Summary      Create product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        X-Site-ID  header    string                        false  "Tenant site ID"
// @Param        payload    body      service.CreateProductRequest  true   "Product payload"
// @Success      201        {object}  response.Response{data=service.ProductResponse}
// @Failure      400        {object}  response.Response
// @Router       /products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	siteID, err := resolveSiteID(c, h.defaultSiteID)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	var req service.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	product, err := h.productService.Create(c.Request.Context(), siteID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, product))
}

// UpdateProduct updates a product
// @Summary      Update product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id       path      string                        true  "Product ID"
// @Param        payload  body      service.UpdateProductRequest  true  "Product payload"
// @Success      200      {object}  response.Response{data=service.ProductResponse}
// @Failure      400      {object}  response.Response
// @Router       /products/{id} [put]
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	product, err := h.productService.Update(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, product))
}

// DeleteProduct removes a product
// @Summary      Delete product
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /products/{id} [delete]
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.SuccessWithMessage(http.StatusOK, "Product deleted", nil))
}
