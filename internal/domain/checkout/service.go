// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-bff/internal/config"
	"github.com/your-org/storefront-bff/internal/domain/cart"
	"github.com/your-org/storefront-bff/internal/domain/session"
	"github.com/your-org/storefront-bff/internal/erp"
	"github.com/your-org/storefront-bff/internal/pkg/apperrors"
)

const (
	erpDateLayout = "2006-01-02"

	// deliveryLeadDays is the promised delivery window for a new order.
	deliveryLeadDays = 14
)

// Gateway is the slice of the ERP client the checkout service needs
type Gateway interface {
	GetItem(ctx context.Context, itemCode string) (*erp.RawItem, error)
	CreateSalesOrder(ctx context.Context, req *erp.CreateOrderRequest) (*erp.RawOrder, error)
}

// CartReader provides the current cart for the checkout flow
type CartReader interface {
	GetCart(ctx context.Context, sess *session.Session) (*cart.Cart, error)
}

// Service reconciles the cart against live stock and submits orders.
// Submission is blocked while any line has a stock problem; nothing is
// silently dropped or capped on the shopper's behalf.
type Service struct {
	gateway Gateway
	carts   CartReader
	log     *logrus.Entry
}

// NewService creates a new checkout service
func NewService(gateway Gateway, carts CartReader, cfg *config.Config, log *logrus.Logger) *Service {
	return &Service{
		gateway: gateway,
		carts:   carts,
		log:     log.WithField("component", "checkout"),
	}
}

// ValidateStock refetches live stock for every cart line and classifies
// each problem. A failed lookup is itself a problem: stock that cannot be
// verified is treated as unavailable.
func (s *Service) ValidateStock(ctx context.Context, lines []cart.Line) *StockReport {
	report := &StockReport{Problems: []StockProblem{}}

	for _, line := range lines {
		name := line.ItemCode
		if line.Product != nil && line.Product.Name != "" {
			name = line.Product.Name
		}

		rawItem, err := s.gateway.GetItem(ctx, line.ItemCode)
		if err != nil || rawItem == nil {
			if err != nil {
				s.log.WithError(err).WithField("item_code", line.ItemCode).Warn("stock lookup failed")
			}
			report.Problems = append(report.Problems, StockProblem{
				ItemCode: line.ItemCode,
				ItemName: name,
				Reason:   "unable to verify stock",
			})
			continue
		}

		available := int(rawItem.AvailableStock)
		switch {
		case available <= 0:
			report.Problems = append(report.Problems, StockProblem{
				ItemCode: line.ItemCode,
				ItemName: name,
				Reason:   "out of stock",
			})
		case available < line.Quantity:
			report.Problems = append(report.Problems, StockProblem{
				ItemCode: line.ItemCode,
				ItemName: name,
				Reason:   fmt.Sprintf("only %d available (requested %d)", available, line.Quantity),
			})
		}
	}
	return report
}

// PlaceOrder validates the request and the cart, reconciles stock, and
// submits the sales order. Validation failures and stock conflicts return
// before the order submission call is ever made.
func (s *Service) PlaceOrder(ctx context.Context, sess *session.Session, req *PlaceOrderRequest) (*PlaceOrderResult, error) {
	if sess == nil || sess.Email == "" {
		return nil, apperrors.ErrAuthRequired
	}
	if req == nil || req.PaymentMethod == "" {
		return nil, apperrors.NewValidationError("payment_method", "payment method is required")
	}

	userCart, err := s.carts.GetCart(ctx, sess)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart for checkout: %w", err)
	}
	if len(userCart.Lines) == 0 {
		return nil, apperrors.NewValidationError("cart", "cart is empty")
	}

	report := s.ValidateStock(ctx, userCart.Lines)
	if !report.OK() {
		return nil, apperrors.NewStockConflictError(report.Messages())
	}

	customer := sess.CustomerID
	if customer == "" {
		customer = sess.Email
	}

	now := time.Now().UTC()
	orderReq := &erp.CreateOrderRequest{
		Customer:        customer,
		TransactionDate: now.Format(erpDateLayout),
		DeliveryDate:    now.AddDate(0, 0, deliveryLeadDays).Format(erpDateLayout),
		PaymentMethod:   req.PaymentMethod,
		ShippingAddress: req.ShippingAddress,
		BillingAddress:  req.BillingAddress,
		Items:           make([]erp.CreateOrderItem, 0, len(userCart.Lines)),
	}
	for _, line := range userCart.Lines {
		var rate float64
		if line.Product != nil {
			rate = line.Product.Price
		}
		orderReq.Items = append(orderReq.Items, erp.CreateOrderItem{
			ItemCode: line.ItemCode,
			Qty:      float64(line.Quantity),
			Rate:     rate,
			Amount:   rate * float64(line.Quantity),
		})
	}

	order, err := s.gateway.CreateSalesOrder(ctx, orderReq)
	if err != nil {
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"order_id": order.Name,
		"customer": customer,
	}).Info("order placed")

	return &PlaceOrderResult{
		OrderID:      order.Name,
		DeliveryDate: orderReq.DeliveryDate,
	}, nil
}
