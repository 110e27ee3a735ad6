package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sppulse/sppulse/internal/domain/dto"
	"github.com/sppulse/sppulse/internal/logger"
)

// ErrorHandler converts errors attached to the Gin context into a
// standardized JSON error response, once, after all handlers ran.
// Handlers that already wrote a response are left alone.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	err := c.Errors.Last().Err
	logger.L().Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", err))
}
