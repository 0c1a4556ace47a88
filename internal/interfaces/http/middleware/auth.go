// internal/interfaces/http/middleware/auth.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-bff/internal/domain/session"
	"github.com/your-org/storefront-bff/internal/pkg/auth"
)

const sessionContextKey = "session"

// RequireSession resolves the bearer token to a live session and aborts
// with 401 when there is none. Handlers behind it can rely on
// SessionFromContext returning a session.
func RequireSession(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := auth.ExtractTokenFromHeader(c.GetHeader("Authorization"))
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authorization header required",
			})
			c.Abort()
			return
		}

		sess, err := sessions.FromToken(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired session",
			})
			c.Abort()
			return
		}

		c.Set(sessionContextKey, sess)
		c.Next()
	}
}

// OptionalSession resolves a session when a valid token is present and
// continues without one otherwise
func OptionalSession(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := auth.ExtractTokenFromHeader(c.GetHeader("Authorization"))
		if token == "" {
			c.Next()
			return
		}

		sess, err := sessions.FromToken(c.Request.Context(), token)
		if err == nil {
			c.Set(sessionContextKey, sess)
		}
		c.Next()
	}
}

// SessionFromContext extracts the resolved session from gin context
func SessionFromContext(c *gin.Context) (*session.Session, bool) {
	value, exists := c.Get(sessionContextKey)
	if !exists {
		return nil, false
	}
	sess, ok := value.(*session.Session)
	return sess, ok
}
