// internal/interfaces/http/handlers/respond.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-bff/internal/pkg/apperrors"
)

// respondError maps domain errors onto HTTP status codes. Unknown errors
// become an opaque 500; upstream details never leak to the client.
func respondError(c *gin.Context, err error) {
	var (
		validationErr *apperrors.ValidationError
		stockErr      *apperrors.StockConflictError
	)

	switch {
	case errors.Is(err, apperrors.ErrAuthRequired):
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Authentication required",
		})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Not found",
		})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": validationErr.Message,
			"field": validationErr.Field,
		})
	case errors.As(err, &stockErr):
		c.JSON(http.StatusConflict, gin.H{
			"error":    "Some items in your cart are no longer available as requested",
			"problems": stockErr.Problems,
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "The request could not be completed",
		})
	}
}
