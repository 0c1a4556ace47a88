// internal/domain/deals/service_test.go
package deals

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-bff/internal/config"
	"github.com/your-org/storefront-bff/internal/erp"
)

type fakeGateway struct {
	rules    []erp.RawPricingRule
	rulesErr error
	items    map[string]*erp.RawItem
	groups   map[string][]erp.RawItem
	groupErr map[string]error
}

func (f *fakeGateway) GetPricingRules(ctx context.Context) ([]erp.RawPricingRule, error) {
	return f.rules, f.rulesErr
}

func (f *fakeGateway) GetItem(ctx context.Context, itemCode string) (*erp.RawItem, error) {
	return f.items[itemCode], nil
}

func (f *fakeGateway) GetItemsByGroup(ctx context.Context, groupID string, limit int) ([]erp.RawItem, error) {
	if err, ok := f.groupErr[groupID]; ok {
		return nil, err
	}
	return f.groups[groupID], nil
}

func testConfig() *config.Config {
	return &config.Config{
		Storefront: config.StorefrontConfig{
			PageSize: 2,
			CacheTTL: time.Minute,
		},
	}
}

func itemRule(name string, discount float64, codes ...string) erp.RawPricingRule {
	rule := erp.RawPricingRule{Name: name, ApplyOn: "Item Code", DiscountPercentage: discount}
	for _, code := range codes {
		rule.Items = append(rule.Items, erp.RawPricingRuleItem{ItemCode: code})
	}
	return rule
}

func TestRefresh_AppliesRuleDiscount(t *testing.T) {
	gw := &fakeGateway{
		rules: []erp.RawPricingRule{itemRule("R1", 20, "SKU-1")},
		items: map[string]*erp.RawItem{
			"SKU-1": {ItemCode: "SKU-1", StandardRate: 100},
		},
	}
	svc := NewService(gw, testConfig(), logrus.New())

	page, err := svc.GetPage(context.Background(), 0, 10)

	require.NoError(t, err)
	require.Len(t, page.Products, 1)
	p := page.Products[0]
	assert.InDelta(t, 80.0, p.Price, 1e-9)
	require.NotNil(t, p.OriginalPrice)
	assert.Equal(t, 100.0, *p.OriginalPrice)
	assert.Equal(t, 20, p.DiscountPercent)
}

func TestRefresh_DerivedDiscountWhenRuleHasNoPercentage(t *testing.T) {
	gw := &fakeGateway{
		rules: []erp.RawPricingRule{itemRule("R1", 0, "SKU-1")},
		items: map[string]*erp.RawItem{
			"SKU-1": {ItemCode: "SKU-1", StandardRate: 100, PriceListRate: 150},
		},
	}
	svc := NewService(gw, testConfig(), logrus.New())

	page, err := svc.GetPage(context.Background(), 0, 10)

	require.NoError(t, err)
	require.Len(t, page.Products, 1)
	assert.Equal(t, 33, page.Products[0].DiscountPercent)
}

func TestRefresh_DropsUndiscountedProducts(t *testing.T) {
	gw := &fakeGateway{
		rules: []erp.RawPricingRule{itemRule("R1", 0, "PLAIN")},
		items: map[string]*erp.RawItem{
			"PLAIN": {ItemCode: "PLAIN", StandardRate: 100},
		},
	}
	svc := NewService(gw, testConfig(), logrus.New())

	page, err := svc.GetPage(context.Background(), 0, 10)

	require.NoError(t, err)
	assert.Empty(t, page.Products, "a rule resolving to no discount contributes nothing")
}

func TestRefresh_DedupeLastRuleWins(t *testing.T) {
	gw := &fakeGateway{
		rules: []erp.RawPricingRule{
			itemRule("R1", 10, "SKU-1"),
			itemRule("R2", 30, "SKU-1"),
		},
		items: map[string]*erp.RawItem{
			"SKU-1": {ItemCode: "SKU-1", StandardRate: 100},
		},
	}
	svc := NewService(gw, testConfig(), logrus.New())

	page, err := svc.GetPage(context.Background(), 0, 10)

	require.NoError(t, err)
	require.Len(t, page.Products, 1, "the same item across rules appears once")
	assert.Equal(t, 30, page.Products[0].DiscountPercent, "the later rule wins")
}

func TestRefresh_SkipsFailingAndDisabledRules(t *testing.T) {
	disabled := itemRule("R-OFF", 50, "SKU-1")
	disabled.Disable = 1

	groupRule := erp.RawPricingRule{
		Name: "R-GRP", ApplyOn: "Item Group", DiscountPercentage: 10,
		ItemGroups: []erp.RawPricingRuleGroup{{ItemGroup: "Broken"}},
	}

	gw := &fakeGateway{
		rules: []erp.RawPricingRule{
			disabled,
			groupRule,
			itemRule("R-OK", 25, "SKU-2"),
		},
		items: map[string]*erp.RawItem{
			"SKU-1": {ItemCode: "SKU-1", StandardRate: 100},
			"SKU-2": {ItemCode: "SKU-2", StandardRate: 40},
		},
		groupErr: map[string]error{"Broken": errors.New("timeout")},
	}
	svc := NewService(gw, testConfig(), logrus.New())

	page, err := svc.GetPage(context.Background(), 0, 10)

	require.NoError(t, err, "one failing rule does not fail the feed")
	require.Len(t, page.Products, 1)
	assert.Equal(t, "SKU-2", page.Products[0].ItemCode)
}

func TestGetPage_PagingAndStability(t *testing.T) {
	rule := itemRule("R1", 15, "A", "B", "C", "D", "E")
	gw := &fakeGateway{
		rules: []erp.RawPricingRule{rule},
		items: map[string]*erp.RawItem{
			"A": {ItemCode: "A", StandardRate: 10},
			"B": {ItemCode: "B", StandardRate: 20},
			"C": {ItemCode: "C", StandardRate: 30},
			"D": {ItemCode: "D", StandardRate: 40},
			"E": {ItemCode: "E", StandardRate: 50},
		},
	}
	svc := NewService(gw, testConfig(), logrus.New())
	ctx := context.Background()

	first, err := svc.GetPage(ctx, 0, 2)
	require.NoError(t, err)
	assert.Len(t, first.Products, 2)
	assert.True(t, first.HasMore)
	assert.Equal(t, 5, first.Total)

	// The shuffled order is fixed until the next rebuild.
	again, err := svc.GetPage(ctx, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, first.Products, again.Products)

	last, err := svc.GetPage(ctx, 4, 2)
	require.NoError(t, err)
	assert.Len(t, last.Products, 1)
	assert.False(t, last.HasMore)

	beyond, err := svc.GetPage(ctx, 10, 2)
	require.NoError(t, err)
	assert.Empty(t, beyond.Products)
	assert.False(t, beyond.HasMore)

	// All five items are reachable across pages.
	var codes []string
	for offset := 0; offset < 5; offset += 2 {
		page, err := svc.GetPage(ctx, offset, 2)
		require.NoError(t, err)
		for _, p := range page.Products {
			codes = append(codes, p.ItemCode)
		}
	}
	assert.ElementsMatch(t, []string{"A", "B", "C", "D", "E"}, codes)
}

func TestGetPage_RulesFetchFailure(t *testing.T) {
	gw := &fakeGateway{rulesErr: errors.New("upstream down")}
	svc := NewService(gw, testConfig(), logrus.New())

	_, err := svc.GetPage(context.Background(), 0, 2)

	assert.Error(t, err)
}
