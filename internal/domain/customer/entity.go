// internal/domain/customer/entity.go
package customer

// Profile is a normalized customer record
type Profile struct {
	ID        string `json:"id"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Territory string `json:"territory,omitempty"`
	Image     string `json:"image,omitempty"`
}

// UpdateProfileRequest carries the editable profile fields
type UpdateProfileRequest struct {
	FullName string `json:"full_name,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// TopCustomer is one row of the monthly top-customers leaderboard
type TopCustomer struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Total      float64 `json:"total"`
	OrderCount int     `json:"order_count"`
}

// TopItem is one row of the monthly best-sellers list
type TopItem struct {
	ItemCode string `json:"item_code"`
	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
}

// Leaderboard is the monthly top-customers report
type Leaderboard struct {
	Month     string        `json:"month"`
	Year      int           `json:"year"`
	Customers []TopCustomer `json:"customers"`
	Items     []TopItem     `json:"items"`
}
