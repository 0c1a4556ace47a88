// internal/domain/cart/entity.go
package cart

import (
	"github.com/your-org/storefront-bff/internal/domain/catalog"
)

// Line is a cart line. Product is the resolved catalog product and is nil
// when the item lookup failed; the line itself is kept either way.
type Line struct {
	ID       string           `json:"id"`
	ItemCode string           `json:"item_code"`
	Quantity int              `json:"quantity"`
	Product  *catalog.Product `json:"product,omitempty"`
}

// Totals summarizes a cart
type Totals struct {
	ItemCount     int     `json:"item_count"`
	TotalQuantity int     `json:"total_quantity"`
	SubTotal      float64 `json:"subtotal"`
}

// Cart is a user's shopping cart as currently held by the ERP
type Cart struct {
	User   string `json:"user"`
	Lines  []Line `json:"lines"`
	Totals Totals `json:"totals"`
}

// CalculateTotals computes totals over lines with a resolved product;
// unresolved lines contribute quantity but no amount.
func CalculateTotals(lines []Line) Totals {
	var totals Totals
	totals.ItemCount = len(lines)
	for _, line := range lines {
		totals.TotalQuantity += line.Quantity
		if line.Product != nil {
			totals.SubTotal += line.Product.Price * float64(line.Quantity)
		}
	}
	return totals
}
