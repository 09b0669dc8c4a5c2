package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListStores handles GET /api/v1/stores.
//
// ListStores godoc
// @Summary      List stores
// @Description  Returns all stores ordered by name ascending
// @Tags         stores
// @Produce      json
// @Success      200  {array}   models.Store       "Success (possibly empty)"
// @Failure      500  {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/stores [get]
func (h *Handler) ListStores(c *gin.Context) {
	stores, err := h.stores.List(c.Request.Context())
	if err != nil {
		respondError(c, "failed to fetch stores", err)
		return
	}

	c.JSON(http.StatusOK, stores)
}
