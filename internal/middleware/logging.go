package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sppulse/sppulse/internal/logger"
)

// RequestLogger is a Gin middleware that logs method, path, status
// code, request latency, and request ID (if available).
//
// Example log output:
//
//	request_id=123e4567-e89b-12d3-a456-426614174000 method=GET path=/api/v1/summary status=200 latency_ms=2
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method
		path := c.Request.URL.Path

		c.Next()

		rid, _ := c.Get(RequestIDKey)

		logger.L().Info().
			Str("request_id", toString(rid)).
			Str("method", method).
			Str("path", path).
			Int("status", c.Writer.Status()).
			Int64("latency_ms", time.Since(start).Milliseconds()).
			Str("client_ip", c.ClientIP()).
			Msg("http_request")
	}
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
