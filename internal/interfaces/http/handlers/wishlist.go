// internal/interfaces/http/handlers/wishlist.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-bff/internal/domain/wishlist"
	"github.com/your-org/storefront-bff/internal/interfaces/http/middleware"
)

// WishlistHandler handles wishlist endpoints
type WishlistHandler struct {
	wishlistService *wishlist.Service
}

// NewWishlistHandler creates a new wishlist handler
func NewWishlistHandler(wishlistService *wishlist.Service) *WishlistHandler {
	return &WishlistHandler{wishlistService: wishlistService}
}

// AddToWishlistRequest is the add-to-wishlist payload
type AddToWishlistRequest struct {
	ItemCode string `json:"item_code" binding:"required"`
}

// GetWishlist handles GET /wishlist
func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	sess, _ := middleware.SessionFromContext(c)

	list, err := h.wishlistService.GetWishlist(c.Request.Context(), sess)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Wishlist retrieved successfully",
		"data":    list,
	})
}

// AddToWishlist handles POST /wishlist/items
func (h *WishlistHandler) AddToWishlist(c *gin.Context) {
	sess, _ := middleware.SessionFromContext(c)

	var req AddToWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.wishlistService.AddItem(c.Request.Context(), sess, req.ItemCode, nil); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to wishlist successfully",
	})
}

// RemoveFromWishlist handles DELETE /wishlist/items/:code
func (h *WishlistHandler) RemoveFromWishlist(c *gin.Context) {
	sess, _ := middleware.SessionFromContext(c)

	if err := h.wishlistService.RemoveItem(c.Request.Context(), sess, c.Param("code"), nil); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from wishlist successfully",
	})
}
