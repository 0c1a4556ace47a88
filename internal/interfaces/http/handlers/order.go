// internal/interfaces/http/handlers/order.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-bff/internal/domain/order"
	"github.com/your-org/storefront-bff/internal/interfaces/http/middleware"
)

// OrderHandler handles order and invoice history endpoints
type OrderHandler struct {
	orderService *order.Service
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *order.Service) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// ListOrders handles GET /orders
func (h *OrderHandler) ListOrders(c *gin.Context) {
	sess, _ := middleware.SessionFromContext(c)

	orders, err := h.orderService.ListOrders(c.Request.Context(), sess)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": orders,
	})
}

// GetOrder handles GET /orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	sess, _ := middleware.SessionFromContext(c)

	o, err := h.orderService.GetOrder(c.Request.Context(), sess, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": o,
	})
}

// ListInvoices handles GET /invoices
func (h *OrderHandler) ListInvoices(c *gin.Context) {
	sess, _ := middleware.SessionFromContext(c)

	invoices, err := h.orderService.ListInvoices(c.Request.Context(), sess)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": invoices,
	})
}

// GetInvoice handles GET /invoices/:id
func (h *OrderHandler) GetInvoice(c *gin.Context) {
	sess, _ := middleware.SessionFromContext(c)

	invoice, err := h.orderService.GetInvoice(c.Request.Context(), sess, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": invoice,
	})
}
