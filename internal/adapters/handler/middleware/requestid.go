package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid/v5"
)

const (
	// RequestIDHeader propagates the correlation id to the caller.
	RequestIDHeader = "X-Request-ID"

	requestIDKey = "requestID"
)

// RequestID reuses the caller's X-Request-ID or generates a fresh one, and
// makes it available to the access logger and the response headers.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(RequestIDHeader)
		if rid == "" {
			if id, err := uuid.NewV4(); err == nil {
				rid = id.String()
			}
		}

		c.Set(requestIDKey, rid)
		c.Writer.Header().Set(RequestIDHeader, rid)
		c.Next()
	}
}
