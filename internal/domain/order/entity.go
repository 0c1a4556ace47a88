// internal/domain/order/entity.go
package order

// Item is a line on a placed sales order
type Item struct {
	ItemCode string  `json:"item_code"`
	ItemName string  `json:"item_name"`
	Quantity int     `json:"quantity"`
	Rate     float64 `json:"rate"`
	Amount   float64 `json:"amount"`
	Colour   string  `json:"colour,omitempty"`
	Size     string  `json:"size,omitempty"`
}

// Order is a normalized sales order
type Order struct {
	ID              string  `json:"id"`
	Status          string  `json:"status"`
	Customer        string  `json:"customer"`
	TransactionDate string  `json:"transaction_date"`
	DeliveryDate    string  `json:"delivery_date"`
	NetTotal        float64 `json:"net_total"`
	Taxes           float64 `json:"taxes"`
	Discount        float64 `json:"discount"`
	Shipping        float64 `json:"shipping"`
	GrandTotal      float64 `json:"grand_total"`
	ShippingAddress string  `json:"shipping_address,omitempty"`
	BillingAddress  string  `json:"billing_address,omitempty"`
	PaymentMethod   string  `json:"payment_method,omitempty"`
	TrackingNumber  string  `json:"tracking_number,omitempty"`
	Items           []Item  `json:"items"`
}

// InvoiceLine is a line on a sales invoice
type InvoiceLine struct {
	ItemCode string  `json:"item_code"`
	Quantity int     `json:"quantity"`
	Rate     float64 `json:"rate"`
	Amount   float64 `json:"amount"`
}

// Invoice is a normalized sales invoice
type Invoice struct {
	ID          string        `json:"id"`
	Customer    string        `json:"customer"`
	PostingDate string        `json:"posting_date"`
	Status      string        `json:"status"`
	GrandTotal  float64       `json:"grand_total"`
	Lines       []InvoiceLine `json:"lines"`
}
