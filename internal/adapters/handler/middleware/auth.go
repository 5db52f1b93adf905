package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const bearerPrefix = "Bearer "

// Auth rejects any request whose Authorization bearer token does not match
// the configured shared secret. The check runs before all route handlers, so
// a rejected request never reaches pipeline logic.
func Auth(expected string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")

		token, found := strings.CutPrefix(header, bearerPrefix)
		if !found || token == "" {
			c.String(http.StatusUnauthorized, "No Bearer Header")
			c.Abort()
			return
		}

		if subtle.ConstantTimeCompare([]byte(token), []byte(expected)) != 1 {
			c.String(http.StatusUnauthorized, "Authentication Error")
			c.Abort()
			return
		}

		c.Next()
	}
}
