// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-bff/internal/domain/cart"
	"github.com/your-org/storefront-bff/internal/domain/checkout"
	"github.com/your-org/storefront-bff/internal/interfaces/http/middleware"
)

// CheckoutHandler handles stock validation and order placement
type CheckoutHandler struct {
	checkoutService *checkout.Service
	cartService     *cart.Service
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *checkout.Service, cartService *cart.Service) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		cartService:     cartService,
	}
}

// ValidateStock handles POST /checkout/validate
func (h *CheckoutHandler) ValidateStock(c *gin.Context) {
	sess, _ := middleware.SessionFromContext(c)

	userCart, err := h.cartService.GetCart(c.Request.Context(), sess)
	if err != nil {
		respondError(c, err)
		return
	}

	report := h.checkoutService.ValidateStock(c.Request.Context(), userCart.Lines)
	c.JSON(http.StatusOK, gin.H{
		"ok":       report.OK(),
		"problems": report.Problems,
	})
}

// PlaceOrder handles POST /checkout/order
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	sess, _ := middleware.SessionFromContext(c)

	var req checkout.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	result, err := h.checkoutService.PlaceOrder(c.Request.Context(), sess, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"data":    result,
	})
}
