// internal/erp/client.go
package erp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-bff/internal/config"
)

// methodPath is the base path for the ERP's RPC-style endpoints
const methodPath = "/api/method/storefront.api."

// Client is the single gateway to the upstream ERP. Reads are idempotent;
// mutations are issued at most once per call and are never retried here.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	apiSecret  string
	log        *logrus.Entry
}

// NewClient creates an ERP client from config
func NewClient(cfg *config.Config, log *logrus.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.ERP.Timeout,
		},
		baseURL:   strings.TrimSuffix(cfg.ERP.BaseURL, "/"),
		apiKey:    cfg.ERP.APIKey,
		apiSecret: cfg.ERP.APISecret,
		log:       log.WithField("component", "erp"),
	}
}

// envelope is the ERP's standard success wrapper
type envelope struct {
	Message json.RawMessage `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "token "+c.apiKey+":"+c.apiSecret)
	}
}

// do executes a request and decodes the payload from the ERP's response
// envelope into out. A nil out discards the payload.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}, out interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return newTransportError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return parseErrorResponse(resp.StatusCode, respBody)
	}

	if out == nil {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	payload := env.Message
	if payload == nil {
		payload = env.Data
	}
	if payload == nil || string(payload) == "null" {
		return nil
	}

	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("failed to decode payload: %w", err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, method string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, methodPath+method, query, nil, out)
}

func (c *Client) post(ctx context.Context, method string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, methodPath+method, nil, body, out)
}

// isNotFound reports whether err is an ERP 404
func isNotFound(err error) bool {
	e, ok := err.(*Error)
	return ok && e.StatusCode == http.StatusNotFound
}

// --- Catalog reads ---

// GetNewArrivals fetches the most recently published website items.
// sortByPrice may be "asc", "desc" or empty.
func (c *Client) GetNewArrivals(ctx context.Context, pageSize int, sortByPrice string) ([]RawItem, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(pageSize))
	if sortByPrice != "" {
		q.Set("sort_by_price", sortByPrice)
	}
	var items []RawItem
	if err := c.get(ctx, "get_new_arrivals", q, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetWebsiteItems fetches a page of website items with optional filters
func (c *Client) GetWebsiteItems(ctx context.Context, filters map[string]string, limit, offset int, sortByPrice string) ([]RawItem, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))
	if sortByPrice != "" {
		q.Set("sort_by_price", sortByPrice)
	}
	for k, v := range filters {
		q.Set(k, v)
	}
	var items []RawItem
	if err := c.get(ctx, "get_website_items", q, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetWebsiteItemsByGroup fetches website items belonging to an item group
func (c *Client) GetWebsiteItemsByGroup(ctx context.Context, groupID string, limit int, sortByPrice string) ([]RawItem, error) {
	q := url.Values{}
	q.Set("item_group", groupID)
	q.Set("limit", strconv.Itoa(limit))
	if sortByPrice != "" {
		q.Set("sort_by_price", sortByPrice)
	}
	var items []RawItem
	if err := c.get(ctx, "get_website_items_by_group", q, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetItemsByGroup fetches plain item records for an item group
func (c *Client) GetItemsByGroup(ctx context.Context, groupID string, limit int) ([]RawItem, error) {
	q := url.Values{}
	q.Set("item_group", groupID)
	q.Set("limit", strconv.Itoa(limit))
	var items []RawItem
	if err := c.get(ctx, "get_items_by_group", q, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// SearchItems performs a full-text item search
func (c *Client) SearchItems(ctx context.Context, query string) ([]RawItem, error) {
	q := url.Values{}
	q.Set("query", query)
	var items []RawItem
	if err := c.get(ctx, "search_items", q, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetItem fetches a single item with live stock. Returns nil, nil when the
// item does not exist.
func (c *Client) GetItem(ctx context.Context, itemCode string) (*RawItem, error) {
	q := url.Values{}
	q.Set("item_code", itemCode)
	var item RawItem
	if err := c.get(ctx, "get_item", q, &item); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if item.ItemCode == "" {
		return nil, nil
	}
	return &item, nil
}

// GetWebsiteItem fetches a single website item by its web identifier
func (c *Client) GetWebsiteItem(ctx context.Context, id string) (*RawItem, error) {
	q := url.Values{}
	q.Set("name", id)
	var item RawItem
	if err := c.get(ctx, "get_website_item", q, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// GetItemGroups fetches all item groups
func (c *Client) GetItemGroups(ctx context.Context) ([]RawGroup, error) {
	var groups []RawGroup
	if err := c.get(ctx, "get_item_groups", nil, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// GetPricingRules fetches the active pricing rules
func (c *Client) GetPricingRules(ctx context.Context) ([]RawPricingRule, error) {
	var rules []RawPricingRule
	if err := c.get(ctx, "get_pricing_rules", nil, &rules); err != nil {
		return nil, err
	}
	return rules, nil
}

// GetPricingRuleAllFields fetches a pricing rule with every field the ERP
// stores on it, untyped.
func (c *Client) GetPricingRuleAllFields(ctx context.Context, name string) (map[string]interface{}, error) {
	q := url.Values{}
	q.Set("name", name)
	var fields map[string]interface{}
	if err := c.get(ctx, "get_pricing_rule_all_fields", q, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// --- Orders ---

// GetSalesOrders fetches sales orders for a customer
func (c *Client) GetSalesOrders(ctx context.Context, customerID, company string) ([]RawOrder, error) {
	q := url.Values{}
	q.Set("customer", customerID)
	if company != "" {
		q.Set("company", company)
	}
	var orders []RawOrder
	if err := c.get(ctx, "get_sales_orders", q, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetSalesOrder fetches a single sales order
func (c *Client) GetSalesOrder(ctx context.Context, id string) (*RawOrder, error) {
	q := url.Values{}
	q.Set("name", id)
	var order RawOrder
	if err := c.get(ctx, "get_sales_order", q, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// CreateSalesOrder submits a new sales order. At most one attempt is made.
func (c *Client) CreateSalesOrder(ctx context.Context, req *CreateOrderRequest) (*RawOrder, error) {
	var order RawOrder
	if err := c.post(ctx, "create_sales_order", req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// --- Customers ---

// GetCustomer fetches a customer record by identifier
func (c *Client) GetCustomer(ctx context.Context, id string) (*RawCustomer, error) {
	q := url.Values{}
	q.Set("name", id)
	var customer RawCustomer
	if err := c.get(ctx, "get_customer", q, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// GetCustomerByEmail fetches a customer by email. Returns nil, nil when no
// customer record exists for the address.
func (c *Client) GetCustomerByEmail(ctx context.Context, email string) (*RawCustomer, error) {
	q := url.Values{}
	q.Set("email", email)
	var customer RawCustomer
	if err := c.get(ctx, "get_customer_by_email", q, &customer); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if customer.Name == "" {
		return nil, nil
	}
	return &customer, nil
}

// UpdateCustomer updates fields on a customer record
func (c *Client) UpdateCustomer(ctx context.Context, id string, data map[string]interface{}) (*RawCustomer, error) {
	payload := map[string]interface{}{"name": id, "data": data}
	var customer RawCustomer
	if err := c.post(ctx, "update_customer", payload, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// GetTopCustomers fetches the monthly top-customers report. Zero values
// default to the current period on the ERP side.
func (c *Client) GetTopCustomers(ctx context.Context, year int, month string) (*RawTopCustomers, error) {
	q := url.Values{}
	if year > 0 {
		q.Set("year", strconv.Itoa(year))
	}
	if month != "" {
		q.Set("month", month)
	}
	var report RawTopCustomers
	if err := c.get(ctx, "get_top_customers", q, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// --- Wishlist ---

// GetWishlist fetches a user's wishlist. Returns nil, nil when the user has
// no wishlist yet.
func (c *Client) GetWishlist(ctx context.Context, email string) (*RawWishlist, error) {
	q := url.Values{}
	q.Set("user", email)
	var wl RawWishlist
	if err := c.get(ctx, "get_wishlist", q, &wl); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if wl.User == "" {
		return nil, nil
	}
	return &wl, nil
}

// AddToWishlist adds an item to a user's wishlist
func (c *Client) AddToWishlist(ctx context.Context, email, itemCode string, qty int) error {
	payload := map[string]interface{}{"user": email, "item_code": itemCode, "qty": qty}
	return c.post(ctx, "add_to_wishlist", payload, nil)
}

// RemoveFromWishlist removes an item from a user's wishlist
func (c *Client) RemoveFromWishlist(ctx context.Context, email, itemCode string) error {
	payload := map[string]interface{}{"user": email, "item_code": itemCode}
	return c.post(ctx, "remove_from_wishlist", payload, nil)
}

// --- Cart ---

// GetShoppingCart fetches a user's shopping cart. An empty cart is returned
// when none exists yet.
func (c *Client) GetShoppingCart(ctx context.Context, email string) (*RawCart, error) {
	q := url.Values{}
	q.Set("user", email)
	var cart RawCart
	if err := c.get(ctx, "get_shopping_cart", q, &cart); err != nil {
		if isNotFound(err) {
			return &RawCart{User: email}, nil
		}
		return nil, err
	}
	return &cart, nil
}

// AddToCart adds an item to a user's cart
func (c *Client) AddToCart(ctx context.Context, email, itemCode string, qty int) error {
	payload := map[string]interface{}{"user": email, "item_code": itemCode, "qty": qty}
	return c.post(ctx, "add_to_cart", payload, nil)
}

// RemoveFromCart removes an item from a user's cart
func (c *Client) RemoveFromCart(ctx context.Context, email, itemCode string) error {
	payload := map[string]interface{}{"user": email, "item_code": itemCode}
	return c.post(ctx, "remove_from_cart", payload, nil)
}

// UpdateCartItemQuantity sets the quantity of a cart line
func (c *Client) UpdateCartItemQuantity(ctx context.Context, email, itemCode string, qty int) error {
	payload := map[string]interface{}{"user": email, "item_code": itemCode, "qty": qty}
	return c.post(ctx, "update_cart_item_quantity", payload, nil)
}

// ClearCart removes every line from a user's cart
func (c *Client) ClearCart(ctx context.Context, email string) error {
	payload := map[string]interface{}{"user": email}
	return c.post(ctx, "clear_cart", payload, nil)
}

// --- Bundles, reviews, invoices ---

// GetProductBundles fetches product bundles
func (c *Client) GetProductBundles(ctx context.Context, limit int) ([]RawBundle, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	var bundles []RawBundle
	if err := c.get(ctx, "get_product_bundles", q, &bundles); err != nil {
		return nil, err
	}
	return bundles, nil
}

// GetItemReviews fetches reviews for an item
func (c *Client) GetItemReviews(ctx context.Context, itemName string) ([]RawReview, error) {
	q := url.Values{}
	q.Set("item", itemName)
	var reviews []RawReview
	if err := c.get(ctx, "get_item_reviews", q, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// GetSalesInvoices fetches sales invoices for a user
func (c *Client) GetSalesInvoices(ctx context.Context, userEmail string) ([]RawInvoice, error) {
	q := url.Values{}
	q.Set("user", userEmail)
	var invoices []RawInvoice
	if err := c.get(ctx, "get_sales_invoices", q, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

// GetSalesInvoice fetches a single sales invoice. Returns nil, nil when the
// invoice does not exist.
func (c *Client) GetSalesInvoice(ctx context.Context, name string) (*RawInvoice, error) {
	q := url.Values{}
	q.Set("name", name)
	var invoice RawInvoice
	if err := c.get(ctx, "get_sales_invoice", q, &invoice); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if invoice.Name == "" {
		return nil, nil
	}
	return &invoice, nil
}

// TestConnection reports whether the ERP answers at all
func (c *Client) TestConnection(ctx context.Context) bool {
	if err := c.get(ctx, "ping", nil, nil); err != nil {
		c.log.WithError(err).Warn("ERP connection test failed")
		return false
	}
	return true
}
