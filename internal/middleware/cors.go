package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS admits the configured frontend origins. "*" admits any origin;
// the request origin is always echoed back rather than the literal
// wildcard so credentialed requests keep working.
func CORS(allowed []string) gin.HandlerFunc {
	admit := map[string]bool{}
	anyOrigin := false
	for _, o := range allowed {
		if o == "*" {
			anyOrigin = true
			continue
		}
		admit[o] = true
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		if origin != "" && (anyOrigin || admit[origin]) {
			h := c.Writer.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Vary", "Origin")
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Set(
				"Access-Control-Allow-Headers",
				"Content-Type, Authorization",
			)
			h.Set(
				"Access-Control-Allow-Methods",
				"GET, POST, PUT, PATCH, DELETE, OPTIONS",
			)
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
