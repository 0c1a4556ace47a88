// internal/domain/catalog/service.go
package catalog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-bff/internal/config"
	"github.com/your-org/storefront-bff/internal/erp"
	"github.com/your-org/storefront-bff/internal/fetch"
	"github.com/your-org/storefront-bff/internal/infrastructure/cache"
	"github.com/your-org/storefront-bff/internal/pkg/apperrors"
)

// Gateway is the slice of the ERP client the catalog service needs
type Gateway interface {
	GetNewArrivals(ctx context.Context, pageSize int, sortByPrice string) ([]erp.RawItem, error)
	GetWebsiteItems(ctx context.Context, filters map[string]string, limit, offset int, sortByPrice string) ([]erp.RawItem, error)
	GetWebsiteItemsByGroup(ctx context.Context, groupID string, limit int, sortByPrice string) ([]erp.RawItem, error)
	SearchItems(ctx context.Context, query string) ([]erp.RawItem, error)
	GetItem(ctx context.Context, itemCode string) (*erp.RawItem, error)
	GetItemGroups(ctx context.Context) ([]erp.RawGroup, error)
	GetProductBundles(ctx context.Context, limit int) ([]erp.RawBundle, error)
	GetItemReviews(ctx context.Context, itemName string) ([]erp.RawReview, error)
}

const groupsCacheKey = "catalog:groups"

// maxFeedSets caps how many caller feed sets are kept in memory. When
// the cap is hit the least recently used set is dropped; that caller
// simply starts from a fresh feed on their next request.
const maxFeedSets = 1024

// feedSet holds one caller's feed controllers. Controller state is
// paging position, pending debounces and in-flight requests, so it is
// scoped per caller rather than shared process-wide: one user's search
// or load-more must never supersede another's.
type feedSet struct {
	newArrivals *fetch.Controller[Product]
	forYou      *fetch.Controller[Product]
	search      *fetch.SearchController[Product]
	listings    map[string]*fetch.Controller[Product]
	lastSeen    time.Time
}

// Service is the catalog read layer. Feed-style collections (new
// arrivals, the personalized feed, per-category listings, search) are
// owned by per-caller fetch controllers; single-entity reads go
// straight through.
type Service struct {
	gateway Gateway
	cache   *cache.Client
	cfg     *config.Config
	log     *logrus.Entry

	mu    sync.Mutex
	feeds map[string]*feedSet
}

// NewService creates a catalog service
func NewService(gateway Gateway, cacheClient *cache.Client, cfg *config.Config, log *logrus.Logger) *Service {
	return &Service{
		gateway: gateway,
		cache:   cacheClient,
		cfg:     cfg,
		log:     log.WithField("component", "catalog"),
		feeds:   make(map[string]*feedSet),
	}
}

// NewArrivals returns the caller's new-arrivals feed controller
func (s *Service) NewArrivals(caller string) *fetch.Controller[Product] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.feedsFor(caller).newArrivals
}

// ForYou returns the caller's shuffled personalized feed controller
func (s *Service) ForYou(caller string) *fetch.Controller[Product] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.feedsFor(caller).forYou
}

// Search returns the caller's debounced search controller
func (s *Service) Search(caller string) *fetch.SearchController[Product] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.feedsFor(caller).search
}

// Listing returns the caller's feed controller for one category,
// creating it on first use. Each category keeps its own paging position.
func (s *Service) Listing(caller, groupID string) *fetch.Controller[Product] {
	s.mu.Lock()
	defer s.mu.Unlock()

	set := s.feedsFor(caller)
	if ctrl, ok := set.listings[groupID]; ok {
		return ctrl
	}
	ctrl := fetch.NewController(s.cfg.Storefront.PageSize, func(ctx context.Context, offset, limit int) ([]Product, error) {
		// Same local-slice paging as new arrivals; the group endpoint
		// accepts only a row cap.
		raws, err := s.gateway.GetWebsiteItemsByGroup(ctx, groupID, offset+limit, "")
		if err != nil {
			return nil, err
		}
		products := MapItems(raws)
		if offset >= len(products) {
			return []Product{}, nil
		}
		return products[offset:], nil
	}, s.log.WithField("feed", "listing:"+groupID))
	set.listings[groupID] = ctrl
	return ctrl
}

// feedsFor returns the caller's feed set, creating it on first use.
// Callers must hold s.mu.
func (s *Service) feedsFor(caller string) *feedSet {
	set, ok := s.feeds[caller]
	if !ok {
		if len(s.feeds) >= maxFeedSets {
			s.evictOldest()
		}
		set = s.newFeedSet()
		s.feeds[caller] = set
	}
	set.lastSeen = time.Now()
	return set
}

func (s *Service) evictOldest() {
	var oldestKey string
	var oldest time.Time
	for key, set := range s.feeds {
		if oldestKey == "" || set.lastSeen.Before(oldest) {
			oldestKey = key
			oldest = set.lastSeen
		}
	}
	if oldestKey != "" {
		delete(s.feeds, oldestKey)
	}
}

func (s *Service) newFeedSet() *feedSet {
	pageSize := s.cfg.Storefront.PageSize

	newArrivals := fetch.NewController(pageSize, func(ctx context.Context, offset, limit int) ([]Product, error) {
		// The upstream endpoint has no offset; paging past the first
		// page widens the window and slices locally.
		raws, err := s.gateway.GetNewArrivals(ctx, offset+limit, "")
		if err != nil {
			return nil, err
		}
		products := MapItems(raws)
		if offset >= len(products) {
			return []Product{}, nil
		}
		return products[offset:], nil
	}, s.log.WithField("feed", "new-arrivals"))

	forYou := fetch.NewController(pageSize, func(ctx context.Context, offset, limit int) ([]Product, error) {
		raws, err := s.gateway.GetWebsiteItems(ctx, nil, limit, offset, "")
		if err != nil {
			return nil, err
		}
		return MapItems(raws), nil
	}, s.log.WithField("feed", "for-you")).WithTransform(fetch.Shuffle[Product])

	search := fetch.NewSearchController(s.cfg.Storefront.SearchDebounce, func(ctx context.Context, query string) ([]Product, error) {
		raws, err := s.gateway.SearchItems(ctx, query)
		if err != nil {
			return nil, err
		}
		return MapItems(raws), nil
	}, s.log.WithField("feed", "search"))

	return &feedSet{
		newArrivals: newArrivals,
		forYou:      forYou,
		search:      search,
		listings:    make(map[string]*fetch.Controller[Product]),
	}
}

// Item retrieves a single product by item code
func (s *Service) Item(ctx context.Context, itemCode string) (*Product, error) {
	if itemCode == "" {
		return nil, apperrors.NewValidationError("item_code", "item code is required")
	}
	raw, err := s.gateway.GetItem(ctx, itemCode)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve item: %w", err)
	}
	if raw == nil {
		return nil, apperrors.ErrNotFound
	}
	product := MapItem(raw)
	return &product, nil
}

// Groups returns the category tree, served from cache when fresh
func (s *Service) Groups(ctx context.Context) ([]Category, error) {
	var cached []Category
	if found, err := s.cache.GetJSON(ctx, groupsCacheKey, &cached); err == nil && found {
		return cached, nil
	} else if err != nil {
		s.log.WithError(err).Warn("groups cache read failed")
	}

	raws, err := s.gateway.GetItemGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve item groups: %w", err)
	}
	groups := MapGroups(raws)

	if err := s.cache.SetJSON(ctx, groupsCacheKey, groups, s.cfg.Storefront.CacheTTL); err != nil {
		s.log.WithError(err).Warn("groups cache write failed")
	}
	return groups, nil
}

// Bundles retrieves product bundles
func (s *Service) Bundles(ctx context.Context, limit int) ([]Bundle, error) {
	if limit <= 0 {
		limit = s.cfg.Storefront.PageSize
	}
	raws, err := s.gateway.GetProductBundles(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bundles: %w", err)
	}
	return MapBundles(raws), nil
}

// Reviews retrieves reviews for one item
func (s *Service) Reviews(ctx context.Context, itemName string) ([]Review, error) {
	if itemName == "" {
		return nil, apperrors.NewValidationError("item", "item is required")
	}
	raws, err := s.gateway.GetItemReviews(ctx, itemName)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve reviews: %w", err)
	}
	return MapReviews(raws), nil
}
