package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/grocx/pricetrack/internal/domain/dto"
)

// RecordPrice handles POST /api/v1/prices.
//
// RecordPrice godoc
// @Summary      Record a price observation
// @Description  Appends one observed price for a product at a store; currency defaults to USD
// @Tags         prices
// @Accept       json
// @Produce      json
// @Param        observation  body      dto.RecordPriceRequest  true  "Price observation"
// @Success      201  {object}  models.PriceObservation  "Created"
// @Failure      400  {object}  dto.ErrorResponse        "Bad Request"
// @Failure      422  {object}  dto.ErrorResponse        "Unknown product or store"
// @Failure      500  {object}  dto.ErrorResponse        "Internal Error"
// @Router       /api/v1/prices [post]
func (h *Handler) RecordPrice(c *gin.Context) {
	var req dto.RecordPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body: product_id, store_id and price are required", err))
		return
	}

	obs, err := h.prices.Record(c.Request.Context(), req.ProductID, req.StoreID, *req.Price, req.Currency)
	if err != nil {
		respondError(c, "failed to record price", err)
		return
	}

	c.JSON(http.StatusCreated, obs)
}

// GetPriceHistory handles GET /api/v1/prices/history/:product_id.
//
// GetPriceHistory godoc
// @Summary      Price history for a product
// @Description  All observations for the product joined with store name and location, most recent first
// @Tags         prices
// @Produce      json
// @Param        product_id  path      int  true  "Product id" example(42)
// @Success      200  {array}   models.PriceHistoryEntry  "Success (possibly empty)"
// @Failure      400  {object}  dto.ErrorResponse         "Bad Request"
// @Failure      500  {object}  dto.ErrorResponse         "Internal Error"
// @Router       /api/v1/prices/history/{product_id} [get]
func (h *Handler) GetPriceHistory(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("product_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("product_id must be an integer", err))
		return
	}

	entries, err := h.prices.HistoryForProduct(c.Request.Context(), productID)
	if err != nil {
		respondError(c, "failed to fetch price history", err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// GetAllPriceEntries handles GET /api/v1/prices.
//
// GetAllPriceEntries godoc
// @Summary      Full price ledger
// @Description  Every observation joined with product and store display fields, most recent first
// @Tags         prices
// @Produce      json
// @Success      200  {array}   models.LedgerEntry  "Success (possibly empty)"
// @Failure      500  {object}  dto.ErrorResponse   "Internal Error"
// @Router       /api/v1/prices [get]
func (h *Handler) GetAllPriceEntries(c *gin.Context) {
	entries, err := h.prices.AllEntries(c.Request.Context())
	if err != nil {
		respondError(c, "failed to fetch price entries", err)
		return
	}

	c.JSON(http.StatusOK, entries)
}
