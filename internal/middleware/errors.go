package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/grocx/pricetrack/internal/domain/dto"
	"github.com/grocx/pricetrack/internal/logger"
)

// ErrorHandler is a Gin middleware that converts errors attached to the
// context (via c.Error) into a standardized JSON response, when the
// handler did not already write one.
//
// Behavior:
//   - Runs the handler chain first.
//   - If c.Errors is non-empty and no body was written, logs the last
//     error and responds 500 with dto.ErrorResponse.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	err := c.Errors.Last().Err
	logger.L().Error().Err(err).
		Str("path", c.Request.URL.Path).
		Msg("unhandled request error")

	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", err))
}

// AbortWithError stops the handler chain and writes a standardized JSON
// error body with the given status.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
