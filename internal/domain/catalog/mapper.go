// internal/domain/catalog/mapper.go
package catalog

import (
	"math"
	"time"

	"github.com/your-org/storefront-bff/internal/erp"
)

// erpTimeLayout is the timestamp format the ERP uses on creation fields
const erpTimeLayout = "2006-01-02 15:04:05"

// newArrivalWindow is how long after creation an item counts as "new"
const newArrivalWindow = 30 * 24 * time.Hour

// MapItem maps a raw ERP item into a normalized Product. It is total: a
// nil or partial record produces a Product with zero-valued defaults.
func MapItem(raw *erp.RawItem) Product {
	if raw == nil {
		return Product{}
	}

	price := raw.StandardRate
	if price < 0 {
		price = 0
	}

	p := Product{
		ID:             raw.ItemCode,
		ItemCode:       raw.ItemCode,
		Name:           displayName(raw),
		Brand:          raw.Brand,
		Description:    raw.Description,
		Price:          price,
		ListingImage:   listingImage(raw),
		Images:         detailImages(raw),
		Colors:         append([]string{}, raw.Colours...),
		Sizes:          append([]string{}, raw.Sizes...),
		Specifications: mapSpecs(raw.Specifications),
		InStock:        raw.InStock == 1 || raw.AvailableStock > 0,
		AvailableStock: raw.AvailableStock,
		Rating:         raw.Rating,
		ReviewCount:    raw.ReviewCount,
		IsTrending:     raw.Ranking > 0,
		Category:       raw.ItemGroup,
	}

	if created, err := time.Parse(erpTimeLayout, raw.Creation); err == nil {
		p.CreatedAt = created
		p.IsNew = time.Since(created) < newArrivalWindow
	}

	if raw.PriceListRate > 0 {
		original := raw.PriceListRate
		p.OriginalPrice = &original
	}

	if raw.Discount > 0 {
		p = ApplyPricingDiscount(p, raw.Discount)
	} else {
		p.DiscountPercent = DerivedDiscount(p.Price, p.OriginalPrice)
	}

	p.IsOnSale = raw.OnSale == 1 || p.DiscountPercent > 0
	return p
}

// ApplyPricingDiscount applies an explicit pricing-rule discount to a
// product. The rule percentage takes precedence over any discount derived
// from the listed original price: the current price becomes the displayed
// "original", and the displayed price is current × (1 − discount/100).
func ApplyPricingDiscount(p Product, discount float64) Product {
	if discount <= 0 {
		return p
	}
	preRule := p.Price
	p.OriginalPrice = &preRule
	p.Price = preRule * (1 - discount/100)
	p.DiscountPercent = int(math.Round(discount))
	p.IsOnSale = true
	return p
}

// DerivedDiscount computes the discount percentage implied by an original
// price, rounded to the nearest whole percent. A result of zero or less
// means no discount is shown.
func DerivedDiscount(price float64, originalPrice *float64) int {
	if originalPrice == nil || *originalPrice <= 0 {
		return 0
	}
	d := int(math.Round((*originalPrice - price) / *originalPrice * 100))
	if d <= 0 {
		return 0
	}
	return d
}

// MapItems maps a slice of raw items, preserving order
func MapItems(raws []erp.RawItem) []Product {
	products := make([]Product, len(raws))
	for i := range raws {
		products[i] = MapItem(&raws[i])
	}
	return products
}

// MapGroup maps a raw item group into a Category
func MapGroup(raw *erp.RawGroup) Category {
	if raw == nil {
		return Category{}
	}
	name := raw.ItemGroupName
	if name == "" {
		name = raw.Name
	}
	return Category{
		ID:       raw.Name,
		Name:     name,
		Slug:     raw.Route,
		Image:    raw.Image,
		ParentID: raw.ParentItemGroup,
	}
}

// MapGroups maps raw item groups into a category tree via parent links.
// Groups whose parent is absent from the result set become roots.
func MapGroups(raws []erp.RawGroup) []Category {
	known := make(map[string]bool, len(raws))
	childIDs := make(map[string][]int, len(raws))
	for i := range raws {
		known[raws[i].Name] = true
	}
	for i := range raws {
		childIDs[raws[i].ParentItemGroup] = append(childIDs[raws[i].ParentItemGroup], i)
	}

	var build func(i int) Category
	build = func(i int) Category {
		cat := MapGroup(&raws[i])
		for _, c := range childIDs[cat.ID] {
			cat.Children = append(cat.Children, build(c))
		}
		return cat
	}

	var roots []Category
	for i := range raws {
		if !known[raws[i].ParentItemGroup] {
			roots = append(roots, build(i))
		}
	}
	return roots
}

// MapReview maps a raw review
func MapReview(raw *erp.RawReview) Review {
	if raw == nil {
		return Review{}
	}
	r := Review{
		User:     raw.User,
		UserName: raw.UserName,
		Rating:   raw.Rating,
		Comment:  raw.Comment,
	}
	if created, err := time.Parse(erpTimeLayout, raw.Creation); err == nil {
		r.CreatedAt = created
	}
	return r
}

// MapReviews maps a slice of raw reviews, preserving order
func MapReviews(raws []erp.RawReview) []Review {
	reviews := make([]Review, len(raws))
	for i := range raws {
		reviews[i] = MapReview(&raws[i])
	}
	return reviews
}

// MapBundle maps a raw product bundle
func MapBundle(raw *erp.RawBundle) Bundle {
	if raw == nil {
		return Bundle{}
	}
	b := Bundle{
		ID:          raw.Name,
		ItemCode:    raw.NewItemCode,
		Description: raw.Description,
	}
	for _, item := range raw.Items {
		b.Items = append(b.Items, BundleItem{ItemCode: item.ItemCode, Quantity: item.Qty})
	}
	return b
}

// MapBundles maps a slice of raw bundles, preserving order
func MapBundles(raws []erp.RawBundle) []Bundle {
	bundles := make([]Bundle, len(raws))
	for i := range raws {
		bundles[i] = MapBundle(&raws[i])
	}
	return bundles
}

func displayName(raw *erp.RawItem) string {
	if raw.WebItemName != "" {
		return raw.WebItemName
	}
	if raw.ItemName != "" {
		return raw.ItemName
	}
	return raw.ItemCode
}

func listingImage(raw *erp.RawItem) string {
	if raw.WebsiteImage != "" {
		return raw.WebsiteImage
	}
	return raw.Image
}

func detailImages(raw *erp.RawItem) []string {
	if len(raw.SlideshowItems) > 0 {
		return append([]string{}, raw.SlideshowItems...)
	}
	if img := listingImage(raw); img != "" {
		return []string{img}
	}
	return []string{}
}

func mapSpecs(raws []erp.RawSpec) []Spec {
	specs := make([]Spec, 0, len(raws))
	for _, s := range raws {
		specs = append(specs, Spec{Label: s.Label, Value: s.Description})
	}
	return specs
}
