package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDKey = "request_id"

// RequestID is a Gin middleware that injects a unique identifier for
// each incoming HTTP request.
//
// Behavior:
//   - Generates a new UUID (v4).
//   - Stores it in the Gin context under the key "request_id".
//   - Adds it to the response headers as "X-Request-ID".
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set(RequestIDKey, id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}
