// internal/domain/wishlist/entity.go
package wishlist

import (
	"github.com/your-org/storefront-bff/internal/domain/catalog"
)

// Entry is a wishlist entry. Product is nil when the item lookup failed.
type Entry struct {
	ItemCode string           `json:"item_code"`
	AddedAt  string           `json:"added_at,omitempty"`
	Product  *catalog.Product `json:"product,omitempty"`
}

// Wishlist is a user's saved-items list
type Wishlist struct {
	User    string  `json:"user"`
	Entries []Entry `json:"entries"`
}

// Contains reports whether the wishlist holds the given item
func (w *Wishlist) Contains(itemCode string) bool {
	for _, entry := range w.Entries {
		if entry.ItemCode == itemCode {
			return true
		}
	}
	return false
}
