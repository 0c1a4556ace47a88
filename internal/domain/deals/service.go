// internal/domain/deals/service.go
package deals

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-bff/internal/config"
	"github.com/your-org/storefront-bff/internal/domain/catalog"
	"github.com/your-org/storefront-bff/internal/erp"
	"github.com/your-org/storefront-bff/internal/fetch"
)

// Gateway is the slice of the ERP client the deals service needs
type Gateway interface {
	GetPricingRules(ctx context.Context) ([]erp.RawPricingRule, error)
	GetItem(ctx context.Context, itemCode string) (*erp.RawItem, error)
	GetItemsByGroup(ctx context.Context, groupID string, limit int) ([]erp.RawItem, error)
}

// Page is one client-side page of the deals feed
type Page struct {
	Products []catalog.Product `json:"products"`
	HasMore  bool              `json:"has_more"`
	Total    int               `json:"total"`
}

// Service aggregates active pricing rules into a single discounted-product
// feed. The feed is materialized in full, deduplicated, shuffled once, and
// paged client-side; pages stay stable until the next rebuild.
type Service struct {
	gateway  Gateway
	pageSize int
	ttl      time.Duration
	log      *logrus.Entry

	mu       sync.Mutex
	products []catalog.Product
	builtAt  time.Time
}

// NewService creates a new deals service
func NewService(gateway Gateway, cfg *config.Config, log *logrus.Logger) *Service {
	return &Service{
		gateway:  gateway,
		pageSize: cfg.Storefront.PageSize,
		ttl:      cfg.Storefront.CacheTTL,
		log:      log.WithField("component", "deals"),
	}
}

// groupResolveLimit caps how many items a single group-scoped rule pulls in.
const groupResolveLimit = 50

// Refresh rebuilds the deals feed from the current pricing rules. A rule
// that fails to resolve is logged and skipped; the feed is built from
// whatever resolved.
func (s *Service) Refresh(ctx context.Context) error {
	rules, err := s.gateway.GetPricingRules(ctx)
	if err != nil {
		return fmt.Errorf("failed to retrieve pricing rules: %w", err)
	}

	// Dedupe by item code, last rule wins.
	byCode := make(map[string]catalog.Product)
	var order []string

	add := func(p catalog.Product) {
		if _, seen := byCode[p.ItemCode]; !seen {
			order = append(order, p.ItemCode)
		}
		byCode[p.ItemCode] = p
	}

	for i := range rules {
		rule := &rules[i]
		if rule.Disable != 0 {
			continue
		}
		resolved, err := s.resolveRule(ctx, rule)
		if err != nil {
			s.log.WithError(err).WithField("rule", rule.Name).Warn("pricing rule resolution failed")
			continue
		}
		for _, p := range resolved {
			add(applyDiscount(p, rule.DiscountPercentage))
		}
	}

	products := make([]catalog.Product, 0, len(order))
	for _, code := range order {
		p := byCode[code]
		if !p.HasDiscount() {
			continue
		}
		products = append(products, p)
	}
	products = fetch.Shuffle(products)

	s.mu.Lock()
	s.products = products
	s.builtAt = time.Now()
	s.mu.Unlock()

	s.log.WithField("count", len(products)).Info("deals feed rebuilt")
	return nil
}

func (s *Service) resolveRule(ctx context.Context, rule *erp.RawPricingRule) ([]catalog.Product, error) {
	switch rule.ApplyOn {
	case "Item Code":
		products := make([]catalog.Product, 0, len(rule.Items))
		for _, ref := range rule.Items {
			rawItem, err := s.gateway.GetItem(ctx, ref.ItemCode)
			if err != nil {
				return nil, fmt.Errorf("item %s: %w", ref.ItemCode, err)
			}
			if rawItem == nil {
				continue
			}
			products = append(products, catalog.MapItem(rawItem))
		}
		return products, nil
	case "Item Group":
		var products []catalog.Product
		for _, ref := range rule.ItemGroups {
			raws, err := s.gateway.GetItemsByGroup(ctx, ref.ItemGroup, groupResolveLimit)
			if err != nil {
				return nil, fmt.Errorf("group %s: %w", ref.ItemGroup, err)
			}
			products = append(products, catalog.MapItems(raws)...)
		}
		return products, nil
	default:
		return nil, nil
	}
}

// applyDiscount prefers the rule's explicit percentage; without one the
// discount is derived from the item's own price pair.
func applyDiscount(p catalog.Product, rulePercent float64) catalog.Product {
	if rulePercent > 0 {
		return catalog.ApplyPricingDiscount(p, rulePercent)
	}
	p.DiscountPercent = catalog.DerivedDiscount(p.Price, p.OriginalPrice)
	if p.DiscountPercent > 0 {
		p.IsOnSale = true
	}
	return p
}

// GetPage returns one page of the deals feed, rebuilding it when empty or
// stale. HasMore follows from position against the materialized total.
func (s *Service) GetPage(ctx context.Context, offset, limit int) (*Page, error) {
	if limit <= 0 {
		limit = s.pageSize
	}
	if offset < 0 {
		offset = 0
	}

	s.mu.Lock()
	stale := s.builtAt.IsZero() || time.Since(s.builtAt) > s.ttl
	s.mu.Unlock()

	if stale {
		if err := s.Refresh(ctx); err != nil {
			return nil, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	total := len(s.products)
	if offset >= total {
		return &Page{Products: []catalog.Product{}, HasMore: false, Total: total}, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	page := make([]catalog.Product, end-offset)
	copy(page, s.products[offset:end])

	return &Page{
		Products: page,
		HasMore:  end < total,
		Total:    total,
	}, nil
}
