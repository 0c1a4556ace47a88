// internal/domain/order/service.go
package order

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-bff/internal/config"
	"github.com/your-org/storefront-bff/internal/domain/session"
	"github.com/your-org/storefront-bff/internal/erp"
	"github.com/your-org/storefront-bff/internal/pkg/apperrors"
)

// Gateway is the slice of the ERP client the order service needs
type Gateway interface {
	GetSalesOrders(ctx context.Context, customerID, company string) ([]erp.RawOrder, error)
	GetSalesOrder(ctx context.Context, id string) (*erp.RawOrder, error)
	GetSalesInvoices(ctx context.Context, userEmail string) ([]erp.RawInvoice, error)
	GetSalesInvoice(ctx context.Context, name string) (*erp.RawInvoice, error)
}

// Service exposes order and invoice history for a logged-in user
type Service struct {
	gateway Gateway
	company string
	log     *logrus.Entry
}

// NewService creates a new order service
func NewService(gateway Gateway, cfg *config.Config, log *logrus.Logger) *Service {
	return &Service{
		gateway: gateway,
		company: cfg.ERP.Company,
		log:     log.WithField("component", "order"),
	}
}

func customerFor(sess *session.Session) (string, error) {
	if sess == nil || sess.Email == "" {
		return "", apperrors.ErrAuthRequired
	}
	if sess.CustomerID != "" {
		return sess.CustomerID, nil
	}
	return sess.Email, nil
}

// ListOrders retrieves the user's sales orders
func (s *Service) ListOrders(ctx context.Context, sess *session.Session) ([]Order, error) {
	customer, err := customerFor(sess)
	if err != nil {
		return nil, err
	}
	raws, err := s.gateway.GetSalesOrders(ctx, customer, s.company)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve orders: %w", err)
	}
	orders := make([]Order, 0, len(raws))
	for i := range raws {
		orders = append(orders, mapOrder(&raws[i]))
	}
	return orders, nil
}

// GetOrder retrieves a single sales order
func (s *Service) GetOrder(ctx context.Context, sess *session.Session, orderID string) (*Order, error) {
	if sess == nil || sess.Email == "" {
		return nil, apperrors.ErrAuthRequired
	}
	if orderID == "" {
		return nil, apperrors.NewValidationError("order_id", "order id is required")
	}
	raw, err := s.gateway.GetSalesOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve order: %w", err)
	}
	if raw == nil || raw.Name == "" {
		return nil, apperrors.ErrNotFound
	}
	o := mapOrder(raw)
	return &o, nil
}

// ListInvoices retrieves the user's sales invoices
func (s *Service) ListInvoices(ctx context.Context, sess *session.Session) ([]Invoice, error) {
	if sess == nil || sess.Email == "" {
		return nil, apperrors.ErrAuthRequired
	}
	raws, err := s.gateway.GetSalesInvoices(ctx, sess.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve invoices: %w", err)
	}
	invoices := make([]Invoice, 0, len(raws))
	for i := range raws {
		invoices = append(invoices, mapInvoice(&raws[i]))
	}
	return invoices, nil
}

// GetInvoice retrieves a single sales invoice
func (s *Service) GetInvoice(ctx context.Context, sess *session.Session, invoiceID string) (*Invoice, error) {
	if sess == nil || sess.Email == "" {
		return nil, apperrors.ErrAuthRequired
	}
	if invoiceID == "" {
		return nil, apperrors.NewValidationError("invoice_id", "invoice id is required")
	}
	raw, err := s.gateway.GetSalesInvoice(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve invoice: %w", err)
	}
	if raw == nil {
		return nil, apperrors.ErrNotFound
	}
	inv := mapInvoice(raw)
	return &inv, nil
}

func mapOrder(raw *erp.RawOrder) Order {
	items := make([]Item, 0, len(raw.Items))
	for _, it := range raw.Items {
		items = append(items, Item{
			ItemCode: it.ItemCode,
			ItemName: it.ItemName,
			Quantity: int(it.Qty),
			Rate:     it.Rate,
			Amount:   it.Amount,
			Colour:   it.Colour,
			Size:     it.Size,
		})
	}
	return Order{
		ID:              raw.Name,
		Status:          raw.Status,
		Customer:        raw.Customer,
		TransactionDate: raw.TransactionDate,
		DeliveryDate:    raw.DeliveryDate,
		NetTotal:        raw.NetTotal,
		Taxes:           raw.TotalTaxesAndCharges,
		Discount:        raw.DiscountAmount,
		Shipping:        raw.ShippingCharges,
		GrandTotal:      raw.GrandTotal,
		ShippingAddress: raw.ShippingAddress,
		BillingAddress:  raw.BillingAddress,
		PaymentMethod:   raw.PaymentMethod,
		TrackingNumber:  raw.TrackingNumber,
		Items:           items,
	}
}

func mapInvoice(raw *erp.RawInvoice) Invoice {
	lines := make([]InvoiceLine, 0, len(raw.Items))
	for _, l := range raw.Items {
		lines = append(lines, InvoiceLine{
			ItemCode: l.ItemCode,
			Quantity: int(l.Qty),
			Rate:     l.Rate,
			Amount:   l.Amount,
		})
	}
	return Invoice{
		ID:          raw.Name,
		Customer:    raw.Customer,
		PostingDate: raw.PostingDate,
		Status:      raw.Status,
		GrandTotal:  raw.GrandTotal,
		Lines:       lines,
	}
}
