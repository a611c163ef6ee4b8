package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// Auth is a stub for a real authentication layer. It records the
// bearer token when one is sent and never rejects the request.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if parts := strings.SplitN(header, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			c.Set("auth_token", parts[1])
		}
		c.Next()
	}
}
