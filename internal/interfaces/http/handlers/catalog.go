// internal/interfaces/http/handlers/catalog.go
package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-bff/internal/domain/catalog"
	"github.com/your-org/storefront-bff/internal/fetch"
	"github.com/your-org/storefront-bff/internal/interfaces/http/middleware"
)

// CatalogHandler handles catalog browsing endpoints. Feed endpoints are
// backed by stateful fetch controllers: a GET returns the current
// snapshot (refreshing an idle feed first), and the "more" endpoints
// advance paging.
type CatalogHandler struct {
	catalogService *catalog.Service
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *catalog.Service) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// callerKey identifies the feed-state owner for a request: the session
// when logged in, the client address otherwise.
func callerKey(c *gin.Context) string {
	if sess, ok := middleware.SessionFromContext(c); ok {
		return "session:" + sess.ID
	}
	return "ip:" + c.ClientIP()
}

func feedResponse(c *gin.Context, snap fetch.Snapshot[catalog.Product]) {
	body := gin.H{
		"state":    string(snap.State),
		"items":    snap.Items,
		"has_more": snap.HasMore,
	}
	if snap.State == fetch.StateError && snap.Err != nil {
		body["error"] = snap.Err.Error()
	}
	c.JSON(http.StatusOK, body)
}

func serveFeed(c *gin.Context, ctrl *fetch.Controller[catalog.Product]) {
	snap := ctrl.Snapshot()
	if snap.State == fetch.StateIdle || c.Query("refresh") == "true" {
		ctrl.Refresh(c.Request.Context())
		snap = ctrl.Snapshot()
	}
	feedResponse(c, snap)
}

func serveFeedMore(c *gin.Context, ctrl *fetch.Controller[catalog.Product]) {
	ctrl.LoadMore(c.Request.Context())
	feedResponse(c, ctrl.Snapshot())
}

// NewArrivals handles GET /catalog/new-arrivals
func (h *CatalogHandler) NewArrivals(c *gin.Context) {
	serveFeed(c, h.catalogService.NewArrivals(callerKey(c)))
}

// NewArrivalsMore handles POST /catalog/new-arrivals/more
func (h *CatalogHandler) NewArrivalsMore(c *gin.Context) {
	serveFeedMore(c, h.catalogService.NewArrivals(callerKey(c)))
}

// ForYou handles GET /catalog/for-you
func (h *CatalogHandler) ForYou(c *gin.Context) {
	serveFeed(c, h.catalogService.ForYou(callerKey(c)))
}

// ForYouMore handles POST /catalog/for-you/more
func (h *CatalogHandler) ForYouMore(c *gin.Context) {
	serveFeedMore(c, h.catalogService.ForYou(callerKey(c)))
}

// Listing handles GET /catalog/categories/:id/items
func (h *CatalogHandler) Listing(c *gin.Context) {
	serveFeed(c, h.catalogService.Listing(callerKey(c), c.Param("id")))
}

// ListingMore handles POST /catalog/categories/:id/items/more
func (h *CatalogHandler) ListingMore(c *gin.Context) {
	serveFeedMore(c, h.catalogService.Listing(callerKey(c), c.Param("id")))
}

// Search handles GET /catalog/search. A q parameter registers a query
// change behind the debounce window; the response is the current
// snapshot, which may still be loading.
func (h *CatalogHandler) Search(c *gin.Context) {
	search := h.catalogService.Search(callerKey(c))
	if q, ok := c.GetQuery("q"); ok {
		// The debounced fetch outlives this request, so it must not
		// inherit the request's cancellation.
		search.SetQuery(context.WithoutCancel(c.Request.Context()), q)
	}

	snap := search.Snapshot()
	body := gin.H{
		"state": string(snap.State),
		"items": snap.Items,
	}
	if snap.State == fetch.StateError && snap.Err != nil {
		body["error"] = snap.Err.Error()
	}
	c.JSON(http.StatusOK, body)
}

// GetItem handles GET /catalog/items/:code
func (h *CatalogHandler) GetItem(c *gin.Context) {
	product, err := h.catalogService.Item(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": product,
	})
}

// GetCategories handles GET /catalog/categories
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	groups, err := h.catalogService.Groups(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": groups,
	})
}

// GetBundles handles GET /catalog/bundles
func (h *CatalogHandler) GetBundles(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	bundles, err := h.catalogService.Bundles(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": bundles,
	})
}

// GetReviews handles GET /catalog/items/:code/reviews
func (h *CatalogHandler) GetReviews(c *gin.Context) {
	reviews, err := h.catalogService.Reviews(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": reviews,
	})
}
