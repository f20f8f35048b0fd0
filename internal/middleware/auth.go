package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/glowline/salon-scheduler/internal/session"
)

const ContextSession = "session"

// Auth restores the session from the bearer token. This is the single
// interception point for authentication failures: any bad token clears
// the stored session and answers 401, so no handler repeats that
// logic.
func Auth(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
			return
		}

		token := BearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		sess, err := store.Restore(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "session_unavailable"})
			return
		}
		if sess == nil {
			// Restore has already cleared whatever was cached.
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		c.Set(ContextSession, sess)
		c.Next()
	}
}

// Require enforces a route requirement through the authorization
// guard. Denials answer 401 for missing authentication and 403 for
// missing role; the session is kept on a role denial.
func Require(req session.Requirement) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := SessionFrom(c)
		if session.CanAccess(sess, req, time.Now()) {
			c.Next()
			return
		}

		if sess == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication_required"})
			return
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin_required"})
	}
}

// BearerToken pulls the raw token out of the Authorization header,
// or "" when the header is absent or not a bearer scheme.
func BearerToken(c *gin.Context) string {
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

func SessionFrom(c *gin.Context) *session.Session {
	v, ok := c.Get(ContextSession)
	if !ok {
		return nil
	}
	sess, _ := v.(*session.Session)
	return sess
}
