// internal/interfaces/http/handlers/catalog_test.go
package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-bff/internal/config"
	"github.com/your-org/storefront-bff/internal/domain/catalog"
	"github.com/your-org/storefront-bff/internal/erp"
)

type catalogGatewayStub struct {
	mu            sync.Mutex
	searchCalls   int
	searchQueries []string
	searchCtxErrs []error
}

func (g *catalogGatewayStub) SearchItems(ctx context.Context, query string) ([]erp.RawItem, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.searchCalls++
	g.searchQueries = append(g.searchQueries, query)
	g.searchCtxErrs = append(g.searchCtxErrs, ctx.Err())
	return []erp.RawItem{{ItemCode: "SHOE-1", ItemName: "Runner", StandardRate: 20}}, nil
}

func (g *catalogGatewayStub) GetNewArrivals(ctx context.Context, pageSize int, sortByPrice string) ([]erp.RawItem, error) {
	return nil, nil
}

func (g *catalogGatewayStub) GetWebsiteItems(ctx context.Context, filters map[string]string, limit, offset int, sortByPrice string) ([]erp.RawItem, error) {
	return nil, nil
}

func (g *catalogGatewayStub) GetWebsiteItemsByGroup(ctx context.Context, groupID string, limit int, sortByPrice string) ([]erp.RawItem, error) {
	return nil, nil
}

func (g *catalogGatewayStub) GetItem(ctx context.Context, itemCode string) (*erp.RawItem, error) {
	return nil, nil
}

func (g *catalogGatewayStub) GetItemGroups(ctx context.Context) ([]erp.RawGroup, error) {
	return nil, nil
}

func (g *catalogGatewayStub) GetProductBundles(ctx context.Context, limit int) ([]erp.RawBundle, error) {
	return nil, nil
}

func (g *catalogGatewayStub) GetItemReviews(ctx context.Context, itemName string) ([]erp.RawReview, error) {
	return nil, nil
}

func newSearchRouter(gw catalog.Gateway) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logrus.New()
	log.SetOutput(io.Discard)
	cfg := &config.Config{
		Storefront: config.StorefrontConfig{
			Currency:       "GH₵",
			PageSize:       5,
			SearchDebounce: 20 * time.Millisecond,
		},
	}
	handler := NewCatalogHandler(catalog.NewService(gw, nil, cfg, log))
	router := gin.New()
	router.GET("/catalog/search", handler.Search)
	return router
}

func searchRequest(router *gin.Engine, target, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// The debounced fetch fires after the HTTP request that armed it has
// completed and its context has been cancelled. The fetch must still run
// against a live context and land the results.
func TestSearch_FetchSurvivesRequestCompletion(t *testing.T) {
	gw := &catalogGatewayStub{}
	router := newSearchRouter(gw)

	req := httptest.NewRequest(http.MethodGet, "/catalog/search?q=shoes", nil)
	ctx, cancel := context.WithCancel(context.Background())
	req = req.WithContext(ctx)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"state":"loading"`)

	// net/http cancels the request context once the handler returns.
	cancel()
	time.Sleep(100 * time.Millisecond)

	gw.mu.Lock()
	calls, queries, ctxErrs := gw.searchCalls, gw.searchQueries, gw.searchCtxErrs
	gw.mu.Unlock()
	require.Equal(t, 1, calls)
	assert.Equal(t, "shoes", queries[0])
	require.NoError(t, ctxErrs[0], "the fetch must not inherit the finished request's cancellation")

	// A followup poll from the same client sees the loaded results.
	w2 := searchRequest(router, "/catalog/search", "192.0.2.1:1234")
	assert.Contains(t, w2.Body.String(), `"state":"loaded"`)
	assert.Contains(t, w2.Body.String(), "SHOE-1")
}

func TestSearch_BurstOfRequestsDebouncesToOneFetch(t *testing.T) {
	gw := &catalogGatewayStub{}
	router := newSearchRouter(gw)

	for _, q := range []string{"s", "sh", "shoes"} {
		searchRequest(router, "/catalog/search?q="+q, "192.0.2.1:1234")
		time.Sleep(5 * time.Millisecond)
	}
	time.Sleep(100 * time.Millisecond)

	gw.mu.Lock()
	calls, queries := gw.searchCalls, gw.searchQueries
	gw.mu.Unlock()
	require.Equal(t, 1, calls, "a typing burst produces one backend call")
	assert.Equal(t, "shoes", queries[0])
}

func TestSearch_StateIsolatedAcrossClients(t *testing.T) {
	gw := &catalogGatewayStub{}
	router := newSearchRouter(gw)

	searchRequest(router, "/catalog/search?q=shoes", "203.0.113.7:4000")
	time.Sleep(100 * time.Millisecond)

	w := searchRequest(router, "/catalog/search", "203.0.113.8:4000")
	assert.Contains(t, w.Body.String(), `"state":"idle"`, "one client's search must not leak into another's")
}
