// internal/interfaces/http/handlers/session.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-bff/internal/domain/session"
	"github.com/your-org/storefront-bff/internal/interfaces/http/middleware"
	"github.com/your-org/storefront-bff/internal/pkg/auth"
)

// SessionHandler handles login and logout endpoints
type SessionHandler struct {
	sessions *session.Manager
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessions *session.Manager) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// LoginRequest is the login payload
type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// Login handles POST /auth/login
func (h *SessionHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	sess, token, err := h.sessions.Login(c.Request.Context(), req.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"data": gin.H{
			"token":   token,
			"session": sess,
		},
	})
}

// Logout handles POST /auth/logout
func (h *SessionHandler) Logout(c *gin.Context) {
	token := auth.ExtractTokenFromHeader(c.GetHeader("Authorization"))
	if err := h.sessions.Logout(c.Request.Context(), token); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logout successful",
	})
}

// Me handles GET /auth/me
func (h *SessionHandler) Me(c *gin.Context) {
	sess, _ := middleware.SessionFromContext(c)
	c.JSON(http.StatusOK, gin.H{
		"data": sess,
	})
}
