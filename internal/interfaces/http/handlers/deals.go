// internal/interfaces/http/handlers/deals.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-bff/internal/domain/deals"
)

// DealsHandler handles the discounted-products feed
type DealsHandler struct {
	dealsService *deals.Service
}

// NewDealsHandler creates a new deals handler
func NewDealsHandler(dealsService *deals.Service) *DealsHandler {
	return &DealsHandler{dealsService: dealsService}
}

// GetDeals handles GET /deals
func (h *DealsHandler) GetDeals(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	page, err := h.dealsService.GetPage(c.Request.Context(), offset, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":     page.Products,
		"has_more": page.HasMore,
		"total":    page.Total,
	})
}
