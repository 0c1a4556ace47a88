// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-bff/internal/domain/cart"
	"github.com/your-org/storefront-bff/internal/interfaces/http/middleware"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	cartService *cart.Service
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *cart.Service) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// AddToCartRequest is the add-to-cart payload
type AddToCartRequest struct {
	ItemCode string `json:"item_code" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

// UpdateQuantityRequest is the update-quantity payload
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	sess, _ := middleware.SessionFromContext(c)

	userCart, err := h.cartService.GetCart(c.Request.Context(), sess)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    userCart,
	})
}

// AddToCart handles POST /cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	sess, _ := middleware.SessionFromContext(c)

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.cartService.AddItem(c.Request.Context(), sess, req.ItemCode, req.Quantity, nil); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart successfully",
	})
}

// UpdateCartItem handles PUT /cart/items/:code
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	sess, _ := middleware.SessionFromContext(c)

	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.cartService.UpdateQuantity(c.Request.Context(), sess, c.Param("code"), req.Quantity, nil); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item updated successfully",
	})
}

// RemoveCartItem handles DELETE /cart/items/:code
func (h *CartHandler) RemoveCartItem(c *gin.Context) {
	sess, _ := middleware.SessionFromContext(c)

	if err := h.cartService.RemoveItem(c.Request.Context(), sess, c.Param("code"), nil); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart successfully",
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	sess, _ := middleware.SessionFromContext(c)

	if err := h.cartService.Clear(c.Request.Context(), sess, nil); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared successfully",
	})
}
