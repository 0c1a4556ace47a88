// internal/domain/checkout/entity.go
package checkout

// StockProblem describes one cart line that cannot be fulfilled as
// requested. Reason is a human-readable message shown to the shopper.
type StockProblem struct {
	ItemCode string `json:"item_code"`
	ItemName string `json:"item_name"`
	Reason   string `json:"reason"`
}

// StockReport is the outcome of reconciling cart quantities against live
// stock. An empty Problems slice means the order may be submitted.
type StockReport struct {
	Problems []StockProblem `json:"problems"`
}

// OK reports whether every cart line can be fulfilled
func (r *StockReport) OK() bool {
	return len(r.Problems) == 0
}

// Messages flattens the report into display strings
func (r *StockReport) Messages() []string {
	msgs := make([]string, 0, len(r.Problems))
	for _, p := range r.Problems {
		name := p.ItemName
		if name == "" {
			name = p.ItemCode
		}
		msgs = append(msgs, name+": "+p.Reason)
	}
	return msgs
}

// PlaceOrderRequest is the storefront-side order submission
type PlaceOrderRequest struct {
	PaymentMethod   string `json:"payment_method"`
	ShippingAddress string `json:"shipping_address,omitempty"`
	BillingAddress  string `json:"billing_address,omitempty"`
}

// PlaceOrderResult reports a successful submission
type PlaceOrderResult struct {
	OrderID      string `json:"order_id"`
	DeliveryDate string `json:"delivery_date"`
}
