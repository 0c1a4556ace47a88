// internal/domain/cart/service.go
package cart

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-bff/internal/config"
	"github.com/your-org/storefront-bff/internal/domain/catalog"
	"github.com/your-org/storefront-bff/internal/domain/session"
	"github.com/your-org/storefront-bff/internal/erp"
	"github.com/your-org/storefront-bff/internal/pkg/apperrors"
)

// Gateway is the slice of the ERP client the cart service needs
type Gateway interface {
	GetShoppingCart(ctx context.Context, email string) (*erp.RawCart, error)
	AddToCart(ctx context.Context, email, itemCode string, qty int) error
	RemoveFromCart(ctx context.Context, email, itemCode string) error
	UpdateCartItemQuantity(ctx context.Context, email, itemCode string, qty int) error
	ClearCart(ctx context.Context, email string) error
	GetItem(ctx context.Context, itemCode string) (*erp.RawItem, error)
}

// Service handles cart reads and guarded mutations. Every mutation
// requires an authenticated session and is executed at most once; the
// cart is never patched in memory, dependent reads refetch after the
// settle delay.
type Service struct {
	gateway     Gateway
	settleDelay time.Duration
	log         *logrus.Entry
}

// NewService creates a new cart service
func NewService(gateway Gateway, cfg *config.Config, log *logrus.Logger) *Service {
	return &Service{
		gateway:     gateway,
		settleDelay: cfg.Storefront.SettleDelay,
		log:         log.WithField("component", "cart"),
	}
}

// GetCart retrieves and normalizes the user's cart. Lines whose product
// lookup fails are kept with a nil product.
func (s *Service) GetCart(ctx context.Context, sess *session.Session) (*Cart, error) {
	if sess == nil || sess.Email == "" {
		return nil, apperrors.ErrAuthRequired
	}

	raw, err := s.gateway.GetShoppingCart(ctx, sess.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve cart: %w", err)
	}

	lines := make([]Line, 0, len(raw.Items))
	for _, item := range raw.Items {
		line := Line{
			ID:       item.Name,
			ItemCode: item.ItemCode,
			Quantity: int(item.Qty),
		}
		if line.Quantity < 1 {
			line.Quantity = 1
		}
		rawItem, err := s.gateway.GetItem(ctx, item.ItemCode)
		if err != nil || rawItem == nil {
			if err != nil {
				s.log.WithError(err).WithField("item_code", item.ItemCode).Warn("cart line product lookup failed")
			}
			lines = append(lines, line)
			continue
		}
		product := catalog.MapItem(rawItem)
		line.Product = &product
		lines = append(lines, line)
	}

	return &Cart{
		User:   sess.Email,
		Lines:  lines,
		Totals: CalculateTotals(lines),
	}, nil
}

// AddItem adds an item to the cart. onSettled, if set, runs after the
// settle delay so the dependent read refetches against a settled backend.
func (s *Service) AddItem(ctx context.Context, sess *session.Session, itemCode string, quantity int, onSettled func()) error {
	if sess == nil || sess.Email == "" {
		return apperrors.ErrAuthRequired
	}
	if itemCode == "" {
		return apperrors.NewValidationError("item_code", "item code is required")
	}
	if quantity < 1 {
		return apperrors.NewValidationError("quantity", "quantity must be at least 1")
	}

	if err := s.gateway.AddToCart(ctx, sess.Email, itemCode, quantity); err != nil {
		return fmt.Errorf("failed to add to cart: %w", err)
	}

	s.scheduleSettle(onSettled)
	return nil
}

// RemoveItem removes an item from the cart
func (s *Service) RemoveItem(ctx context.Context, sess *session.Session, itemCode string, onSettled func()) error {
	if sess == nil || sess.Email == "" {
		return apperrors.ErrAuthRequired
	}
	if itemCode == "" {
		return apperrors.NewValidationError("item_code", "item code is required")
	}

	if err := s.gateway.RemoveFromCart(ctx, sess.Email, itemCode); err != nil {
		return fmt.Errorf("failed to remove from cart: %w", err)
	}

	s.scheduleSettle(onSettled)
	return nil
}

// UpdateQuantity sets the quantity of a cart line
func (s *Service) UpdateQuantity(ctx context.Context, sess *session.Session, itemCode string, quantity int, onSettled func()) error {
	if sess == nil || sess.Email == "" {
		return apperrors.ErrAuthRequired
	}
	if itemCode == "" {
		return apperrors.NewValidationError("item_code", "item code is required")
	}
	if quantity < 1 {
		return apperrors.NewValidationError("quantity", "quantity must be at least 1")
	}

	if err := s.gateway.UpdateCartItemQuantity(ctx, sess.Email, itemCode, quantity); err != nil {
		return fmt.Errorf("failed to update cart item: %w", err)
	}

	s.scheduleSettle(onSettled)
	return nil
}

// Clear removes every line from the cart
func (s *Service) Clear(ctx context.Context, sess *session.Session, onSettled func()) error {
	if sess == nil || sess.Email == "" {
		return apperrors.ErrAuthRequired
	}

	if err := s.gateway.ClearCart(ctx, sess.Email); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	s.scheduleSettle(onSettled)
	return nil
}

// scheduleSettle runs the callback after the settle delay. The backend
// offers no read-after-write signal, so the delay stands in for one.
func (s *Service) scheduleSettle(onSettled func()) {
	if onSettled == nil {
		return
	}
	time.AfterFunc(s.settleDelay, onSettled)
}
