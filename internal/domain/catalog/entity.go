// internal/domain/catalog/entity.go
package catalog

import (
	"fmt"
	"time"
)

// Product is the normalized storefront product, independent of the ERP's
// wire shape. Instances are immutable snapshots produced by the mappers;
// updates re-fetch and re-map.
type Product struct {
	ID              string    `json:"id"`
	ItemCode        string    `json:"item_code"`
	Name            string    `json:"name"`
	Brand           string    `json:"brand"`
	Description     string    `json:"description"`
	Price           float64   `json:"price"`
	OriginalPrice   *float64  `json:"original_price,omitempty"`
	DiscountPercent int       `json:"discount_percent"`
	ListingImage    string    `json:"listing_image"`
	Images          []string  `json:"images"`
	Colors          []string  `json:"colors"`
	Sizes           []string  `json:"sizes"`
	Specifications  []Spec    `json:"specifications"`
	InStock         bool      `json:"in_stock"`
	AvailableStock  float64   `json:"available_stock"`
	Rating          float64   `json:"rating"`
	ReviewCount     int       `json:"review_count"`
	IsNew           bool      `json:"is_new"`
	IsTrending      bool      `json:"is_trending"`
	IsOnSale        bool      `json:"is_on_sale"`
	Category        string    `json:"category"`
	CreatedAt       time.Time `json:"created_at,omitempty"`
}

// Spec is a key/value specification row on a product
type Spec struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Category is a node in the item-group tree
type Category struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Slug     string     `json:"slug"`
	Image    string     `json:"image"`
	ParentID string     `json:"parent_id,omitempty"`
	Children []Category `json:"children,omitempty"`
}

// Review is a normalized item review
type Review struct {
	User      string    `json:"user"`
	UserName  string    `json:"user_name"`
	Rating    float64   `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// BundleItem is one component of a product bundle
type BundleItem struct {
	ItemCode string  `json:"item_code"`
	Quantity float64 `json:"quantity"`
}

// Bundle is a normalized product bundle
type Bundle struct {
	ID          string       `json:"id"`
	ItemCode    string       `json:"item_code"`
	Description string       `json:"description"`
	Items       []BundleItem `json:"items"`
}

// HasDiscount reports whether a discount should be shown for the product
func (p *Product) HasDiscount() bool {
	return p.DiscountPercent > 0
}

// FormatPrice renders a price as "<currency><amount>" with exactly two
// decimals, e.g. 7 -> "GH₵7.00".
func FormatPrice(currency string, price float64) string {
	return fmt.Sprintf("%s%.2f", currency, price)
}
