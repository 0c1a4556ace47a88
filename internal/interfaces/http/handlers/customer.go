// internal/interfaces/http/handlers/customer.go
package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-bff/internal/domain/customer"
	"github.com/your-org/storefront-bff/internal/interfaces/http/middleware"
)

// CustomerHandler handles customer profile and leaderboard endpoints
type CustomerHandler struct {
	customerService *customer.Service
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *customer.Service) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// GetProfile handles GET /customers/profile
func (h *CustomerHandler) GetProfile(c *gin.Context) {
	sess, _ := middleware.SessionFromContext(c)

	profile, err := h.customerService.GetProfile(c.Request.Context(), sess)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": profile,
	})
}

// UpdateProfile handles PUT /customers/profile
func (h *CustomerHandler) UpdateProfile(c *gin.Context) {
	sess, _ := middleware.SessionFromContext(c)

	var req customer.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	profile, err := h.customerService.UpdateProfile(c.Request.Context(), sess, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"data":    profile,
	})
}

// TopCustomers handles GET /customers/top
func (h *CustomerHandler) TopCustomers(c *gin.Context) {
	now := time.Now()
	year, _ := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	month := c.DefaultQuery("month", now.Month().String())

	board, err := h.customerService.TopCustomers(c.Request.Context(), year, month)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": board,
	})
}
