package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/grocx/pricetrack/internal/domain/apperr"
	"github.com/grocx/pricetrack/internal/domain/dto"
	"github.com/grocx/pricetrack/internal/domain/models"
	"github.com/grocx/pricetrack/internal/service"
)

// Handler provides HTTP handlers for the price-tracking endpoints.
//
// Responsibilities:
//   - Validate incoming parameters and JSON bodies
//   - Delegate to the service layer
//   - Map the typed error taxonomy to HTTP status codes
//   - Return structured JSON responses
type Handler struct {
	products service.ProductService
	stores   service.StoreService
	prices   service.PriceService
}

// NewHandler constructs a Handler with its service dependencies.
func NewHandler(products service.ProductService, stores service.StoreService, prices service.PriceService) *Handler {
	return &Handler{products: products, stores: stores, prices: prices}
}

// respondError maps a service error to the HTTP taxonomy: 400 for
// validation failures, 409 for duplicate/conflict, 422 for dangling
// foreign keys, 500 for anything else (storage unavailable, bugs).
func respondError(c *gin.Context, fallback string, err error) {
	switch {
	case apperr.IsValidation(err):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error(), nil))
	case errors.Is(err, apperr.ErrDuplicateBarcode):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(err.Error(), nil))
	case errors.Is(err, apperr.ErrReferentialConflict):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(err.Error(), nil))
	case errors.Is(err, apperr.ErrForeignKeyViolation):
		c.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(err.Error(), nil))
	default:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(fallback, err))
	}
}

// GetProductByBarcode handles GET /api/v1/products/barcode/:barcode.
//
// GetProductByBarcode godoc
// @Summary      Get product by barcode
// @Description  Returns the product carrying the given barcode
// @Tags         products
// @Produce      json
// @Param        barcode  path      string  true  "Product barcode" example(7891000100103)
// @Success      200      {object}  models.Product         "Success"
// @Failure      400      {object}  dto.ErrorResponse      "Bad Request"
// @Failure      404      {object}  dto.ErrorResponse      "Not Found"
// @Failure      500      {object}  dto.ErrorResponse      "Internal Error"
// @Router       /api/v1/products/barcode/{barcode} [get]
func (h *Handler) GetProductByBarcode(c *gin.Context) {
	barcode := strings.TrimSpace(c.Param("barcode"))

	product, err := h.products.FindByBarcode(c.Request.Context(), barcode)
	if err != nil {
		respondError(c, "failed to fetch product", err)
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("product not found", nil))
		return
	}

	c.JSON(http.StatusOK, product)
}

// SearchProducts handles GET /api/v1/products/search.
//
// SearchProducts godoc
// @Summary      Search products
// @Description  Case-insensitive partial match on name, or exact match on barcode
// @Tags         products
// @Produce      json
// @Param        q    query     string  true  "Search term" example(appl)
// @Success      200  {array}   models.Product         "Success (possibly empty)"
// @Failure      400  {object}  dto.ErrorResponse      "Bad Request"
// @Failure      500  {object}  dto.ErrorResponse      "Internal Error"
// @Router       /api/v1/products/search [get]
func (h *Handler) SearchProducts(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))

	products, err := h.products.Search(c.Request.Context(), query)
	if err != nil {
		respondError(c, "failed to search products", err)
		return
	}

	c.JSON(http.StatusOK, products)
}

// CreateProduct handles POST /api/v1/products.
//
// CreateProduct godoc
// @Summary      Create product
// @Description  Registers a new product; the barcode must be unused
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        product  body      dto.CreateProductRequest  true  "Product draft"
// @Success      201      {object}  models.Product         "Created"
// @Failure      400      {object}  dto.ErrorResponse      "Bad Request"
// @Failure      409      {object}  dto.ErrorResponse      "Duplicate Barcode"
// @Failure      500      {object}  dto.ErrorResponse      "Internal Error"
// @Router       /api/v1/products [post]
func (h *Handler) CreateProduct(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body: barcode and name are required", err))
		return
	}

	product, err := h.products.Create(c.Request.Context(), models.Product{
		Barcode:     req.Barcode,
		Name:        req.Name,
		Brand:       req.Brand,
		Description: req.Description,
		Category:    req.Category,
	})
	if err != nil {
		respondError(c, "failed to create product", err)
		return
	}

	c.JSON(http.StatusCreated, product)
}

// DeleteProduct handles DELETE /api/v1/products/:barcode.
//
// DeleteProduct godoc
// @Summary      Delete product by barcode
// @Description  Idempotent; blocked while price observations reference the product
// @Tags         products
// @Produce      json
// @Param        barcode  path      string  true  "Product barcode"
// @Success      200      {object}  dto.DeleteProductResponse  "Success"
// @Failure      400      {object}  dto.ErrorResponse          "Bad Request"
// @Failure      409      {object}  dto.ErrorResponse          "Referential Conflict"
// @Failure      500      {object}  dto.ErrorResponse          "Internal Error"
// @Router       /api/v1/products/{barcode} [delete]
func (h *Handler) DeleteProduct(c *gin.Context) {
	barcode := strings.TrimSpace(c.Param("barcode"))

	deleted, err := h.products.DeleteByBarcode(c.Request.Context(), barcode)
	if err != nil {
		respondError(c, "failed to delete product", err)
		return
	}

	c.JSON(http.StatusOK, dto.DeleteProductResponse{Deleted: deleted})
}
