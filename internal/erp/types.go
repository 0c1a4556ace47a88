// internal/erp/types.go
package erp

// Raw records as the ERP returns them. These are wire shapes only; the
// domain packages map them into normalized entities and tolerate missing
// fields, so everything here is optional-by-default.

// RawSpec is a website specification row on an item
type RawSpec struct {
	Label       string `json:"label"`
	Description string `json:"description"`
}

// RawItem represents an item record from the ERP
type RawItem struct {
	ItemCode       string    `json:"item_code"`
	ItemName       string    `json:"item_name"`
	WebItemName    string    `json:"web_item_name"`
	Brand          string    `json:"brand"`
	ItemGroup      string    `json:"item_group"`
	Description    string    `json:"description"`
	StandardRate   float64   `json:"standard_rate"`
	PriceListRate  float64   `json:"price_list_rate"`
	Discount       float64   `json:"discount_percentage"`
	Image          string    `json:"image"`
	WebsiteImage   string    `json:"website_image"`
	SlideshowItems []string  `json:"slideshow_items"`
	Colours        []string  `json:"colours"`
	Sizes          []string  `json:"sizes"`
	Specifications []RawSpec `json:"website_specifications"`
	AvailableStock float64   `json:"available_stock"`
	InStock        int       `json:"in_stock"`
	Rating         float64   `json:"rating"`
	ReviewCount    int       `json:"review_count"`
	Ranking        int       `json:"ranking"`
	Creation       string    `json:"creation"`
	OnSale         int       `json:"on_sale"`
}

// RawGroup represents an item group record
type RawGroup struct {
	Name            string `json:"name"`
	ItemGroupName   string `json:"item_group_name"`
	ParentItemGroup string `json:"parent_item_group"`
	IsGroup         int    `json:"is_group"`
	Image           string `json:"image"`
	Route           string `json:"route"`
}

// RawPricingRuleItem references an item from a pricing rule
type RawPricingRuleItem struct {
	ItemCode string `json:"item_code"`
}

// RawPricingRuleGroup references an item group from a pricing rule
type RawPricingRuleGroup struct {
	ItemGroup string `json:"item_group"`
}

// RawPricingRule represents a pricing rule record
type RawPricingRule struct {
	Name               string                `json:"name"`
	Title              string                `json:"title"`
	ApplyOn            string                `json:"apply_on"` // "Item Code" or "Item Group"
	DiscountPercentage float64               `json:"discount_percentage"`
	Items              []RawPricingRuleItem  `json:"items"`
	ItemGroups         []RawPricingRuleGroup `json:"item_groups"`
	ValidFrom          string                `json:"valid_from"`
	ValidUpto          string                `json:"valid_upto"`
	Disable            int                   `json:"disable"`
}

// RawOrderItem is a line on a sales order
type RawOrderItem struct {
	ItemCode string  `json:"item_code"`
	ItemName string  `json:"item_name"`
	Qty      float64 `json:"qty"`
	Rate     float64 `json:"rate"`
	Amount   float64 `json:"amount"`
	Colour   string  `json:"colour"`
	Size     string  `json:"size"`
}

// RawOrder represents a sales order record
type RawOrder struct {
	Name                 string         `json:"name"`
	Status               string         `json:"status"`
	Customer             string         `json:"customer"`
	TransactionDate      string         `json:"transaction_date"`
	DeliveryDate         string         `json:"delivery_date"`
	Company              string         `json:"company"`
	NetTotal             float64        `json:"net_total"`
	TotalTaxesAndCharges float64        `json:"total_taxes_and_charges"`
	DiscountAmount       float64        `json:"discount_amount"`
	ShippingCharges      float64        `json:"shipping_charges"`
	GrandTotal           float64        `json:"grand_total"`
	ShippingAddress      string         `json:"shipping_address"`
	BillingAddress       string         `json:"billing_address"`
	PaymentMethod        string         `json:"payment_method"`
	TrackingNumber       string         `json:"tracking_number"`
	Items                []RawOrderItem `json:"items"`
}

// CreateOrderItem is a line on an order submission
type CreateOrderItem struct {
	ItemCode string  `json:"item_code"`
	Qty      float64 `json:"qty"`
	Rate     float64 `json:"rate"`
	Amount   float64 `json:"amount"`
	Colour   string  `json:"colour,omitempty"`
	Size     string  `json:"size,omitempty"`
}

// CreateOrderRequest is the payload for creating a sales order
type CreateOrderRequest struct {
	Customer        string            `json:"customer"`
	TransactionDate string            `json:"transaction_date"`
	DeliveryDate    string            `json:"delivery_date"`
	Items           []CreateOrderItem `json:"items"`
	ShippingAddress string            `json:"shipping_address,omitempty"`
	BillingAddress  string            `json:"billing_address,omitempty"`
	PaymentMethod   string            `json:"payment_method,omitempty"`
}

// RawCustomer represents a customer record
type RawCustomer struct {
	Name         string `json:"name"`
	CustomerName string `json:"customer_name"`
	EmailID      string `json:"email_id"`
	MobileNo     string `json:"mobile_no"`
	Territory    string `json:"territory"`
	Image        string `json:"image"`
}

// RawWishlistItem is a line on a wishlist
type RawWishlistItem struct {
	ItemCode string `json:"item_code"`
	Creation string `json:"creation"`
}

// RawWishlist represents a wishlist record keyed by user email
type RawWishlist struct {
	Name  string            `json:"name"`
	User  string            `json:"user"`
	Items []RawWishlistItem `json:"items"`
}

// RawCartItem is a line on a shopping cart
type RawCartItem struct {
	Name     string  `json:"name"`
	ItemCode string  `json:"item_code"`
	Qty      float64 `json:"qty"`
}

// RawCart represents a shopping cart record keyed by user email
type RawCart struct {
	Name  string        `json:"name"`
	User  string        `json:"user"`
	Items []RawCartItem `json:"items"`
}

// RawReview represents an item review record
type RawReview struct {
	User     string  `json:"user"`
	UserName string  `json:"user_name"`
	Rating   float64 `json:"rating"`
	Comment  string  `json:"comment"`
	Creation string  `json:"creation"`
	Item     string  `json:"item"`
}

// RawInvoiceLine is a line on a sales invoice
type RawInvoiceLine struct {
	ItemCode string  `json:"item_code"`
	Qty      float64 `json:"qty"`
	Rate     float64 `json:"rate"`
	Amount   float64 `json:"amount"`
}

// RawInvoice represents a sales invoice record
type RawInvoice struct {
	Name        string           `json:"name"`
	Customer    string           `json:"customer"`
	PostingDate string           `json:"posting_date"`
	Status      string           `json:"status"`
	GrandTotal  float64          `json:"grand_total"`
	Items       []RawInvoiceLine `json:"items"`
}

// RawBundleItem is a component of a product bundle
type RawBundleItem struct {
	ItemCode string  `json:"item_code"`
	Qty      float64 `json:"qty"`
}

// RawBundle represents a product bundle record
type RawBundle struct {
	Name        string          `json:"name"`
	NewItemCode string          `json:"new_item_code"`
	Description string          `json:"description"`
	Items       []RawBundleItem `json:"items"`
}

// RawTopCustomer is one row of the top-customers report
type RawTopCustomer struct {
	Customer     string  `json:"customer"`
	CustomerName string  `json:"customer_name"`
	Total        float64 `json:"total"`
	OrderCount   int     `json:"order_count"`
}

// RawTopItem is one row of the top-items report
type RawTopItem struct {
	ItemCode string  `json:"item_code"`
	ItemName string  `json:"item_name"`
	Qty      float64 `json:"qty"`
}

// RawTopCustomers is the monthly top-customers report
type RawTopCustomers struct {
	Month        string           `json:"month"`
	Year         int              `json:"year"`
	TopCustomers []RawTopCustomer `json:"top_customers"`
	TopItems     []RawTopItem     `json:"top_items"`
}
