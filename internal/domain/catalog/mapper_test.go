// internal/domain/catalog/mapper_test.go
package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-bff/internal/erp"
)

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "GH₵7.00", FormatPrice("GH₵", 7))
	assert.Equal(t, "GH₵1234.50", FormatPrice("GH₵", 1234.5))
	assert.Equal(t, "GH₵0.00", FormatPrice("GH₵", 0))
	assert.Equal(t, "$19.99", FormatPrice("$", 19.99))
}

func TestMapItem_Basics(t *testing.T) {
	raw := &erp.RawItem{
		ItemCode:     "SKU-001",
		ItemName:     "internal name",
		WebItemName:  "Display Name",
		Brand:        "Acme",
		ItemGroup:    "Shoes",
		StandardRate: 120,
		WebsiteImage: "/files/shoe.png",
		Colours:      []string{"Black", "Red"},
		InStock:      1,
		Rating:       4.5,
		ReviewCount:  12,
		Ranking:      3,
	}

	p := MapItem(raw)

	assert.Equal(t, "SKU-001", p.ItemCode)
	assert.Equal(t, "Display Name", p.Name, "web item name wins over item name")
	assert.Equal(t, 120.0, p.Price)
	assert.Equal(t, "/files/shoe.png", p.ListingImage)
	assert.Equal(t, []string{"/files/shoe.png"}, p.Images, "listing image doubles as the only detail image")
	assert.True(t, p.InStock)
	assert.True(t, p.IsTrending)
	assert.Equal(t, 0, p.DiscountPercent)
	assert.Nil(t, p.OriginalPrice)
}

func TestMapItem_NilAndNegativePrice(t *testing.T) {
	assert.Equal(t, Product{}, MapItem(nil))

	p := MapItem(&erp.RawItem{ItemCode: "X", StandardRate: -5})
	assert.Equal(t, 0.0, p.Price)
}

func TestMapItem_NewArrivalWindow(t *testing.T) {
	recent := time.Now().Add(-24 * time.Hour).Format("2006-01-02 15:04:05")
	old := time.Now().Add(-90 * 24 * time.Hour).Format("2006-01-02 15:04:05")

	assert.True(t, MapItem(&erp.RawItem{ItemCode: "A", Creation: recent}).IsNew)
	assert.False(t, MapItem(&erp.RawItem{ItemCode: "B", Creation: old}).IsNew)
	assert.False(t, MapItem(&erp.RawItem{ItemCode: "C", Creation: "not a date"}).IsNew)
}

func TestApplyPricingDiscount_RulePercentageWins(t *testing.T) {
	// The item already carries a price pair that would imply 33%; an
	// explicit 20% rule replaces it entirely.
	original := 150.0
	p := Product{Price: 100, OriginalPrice: &original}

	p = ApplyPricingDiscount(p, 20)

	require.NotNil(t, p.OriginalPrice)
	assert.Equal(t, 100.0, *p.OriginalPrice, "pre-rule price becomes the displayed original")
	assert.InDelta(t, 80.0, p.Price, 1e-9)
	assert.Equal(t, 20, p.DiscountPercent)
	assert.True(t, p.IsOnSale)
}

func TestApplyPricingDiscount_NonPositiveIsNoop(t *testing.T) {
	p := Product{Price: 100}
	assert.Equal(t, p, ApplyPricingDiscount(p, 0))
	assert.Equal(t, p, ApplyPricingDiscount(p, -10))
}

func TestDerivedDiscount(t *testing.T) {
	original := 150.0
	assert.Equal(t, 33, DerivedDiscount(100, &original))

	assert.Equal(t, 0, DerivedDiscount(100, nil))

	zero := 0.0
	assert.Equal(t, 0, DerivedDiscount(100, &zero))

	// Original below current price implies a negative discount: show none.
	below := 80.0
	assert.Equal(t, 0, DerivedDiscount(100, &below))

	same := 100.0
	assert.Equal(t, 0, DerivedDiscount(100, &same))
}

func TestMapItem_ExplicitDiscountPrecedence(t *testing.T) {
	raw := &erp.RawItem{
		ItemCode:      "SKU-D",
		StandardRate:  100,
		PriceListRate: 150,
		Discount:      20,
	}

	p := MapItem(raw)

	require.NotNil(t, p.OriginalPrice)
	assert.Equal(t, 100.0, *p.OriginalPrice)
	assert.InDelta(t, 80.0, p.Price, 1e-9)
	assert.Equal(t, 20, p.DiscountPercent)
}

func TestMapItem_DerivedDiscountFromPricePair(t *testing.T) {
	raw := &erp.RawItem{
		ItemCode:      "SKU-E",
		StandardRate:  100,
		PriceListRate: 150,
	}

	p := MapItem(raw)

	assert.Equal(t, 33, p.DiscountPercent)
	assert.Equal(t, 100.0, p.Price)
	require.NotNil(t, p.OriginalPrice)
	assert.Equal(t, 150.0, *p.OriginalPrice)
	assert.True(t, p.IsOnSale)
}

func TestMapGroups_BuildsTree(t *testing.T) {
	raws := []erp.RawGroup{
		{Name: "All", ItemGroupName: "All Item Groups"},
		{Name: "Shoes", ParentItemGroup: "All"},
		{Name: "Sneakers", ParentItemGroup: "Shoes"},
		{Name: "Bags", ParentItemGroup: "All"},
		{Name: "Orphan", ParentItemGroup: "Missing"},
	}

	roots := MapGroups(raws)

	require.Len(t, roots, 2)
	assert.Equal(t, "All", roots[0].ID)
	require.Len(t, roots[0].Children, 2)
	assert.Equal(t, "Shoes", roots[0].Children[0].ID)
	require.Len(t, roots[0].Children[0].Children, 1)
	assert.Equal(t, "Sneakers", roots[0].Children[0].Children[0].ID)
	assert.Equal(t, "Orphan", roots[1].ID, "group with unknown parent becomes a root")
}

func TestMapBundle(t *testing.T) {
	b := MapBundle(&erp.RawBundle{
		Name:        "BNDL-1",
		NewItemCode: "SET-001",
		Items: []erp.RawBundleItem{
			{ItemCode: "A", Qty: 2},
			{ItemCode: "B", Qty: 1},
		},
	})

	assert.Equal(t, "BNDL-1", b.ID)
	assert.Equal(t, "SET-001", b.ItemCode)
	require.Len(t, b.Items, 2)
	assert.Equal(t, 2.0, b.Items[0].Quantity)
}
