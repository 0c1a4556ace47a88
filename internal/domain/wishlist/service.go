// internal/domain/wishlist/service.go
package wishlist

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

// Gateway is the slice of the ERP client the wishlist service needs
type Gateway interface {
	GetWishlist(ctx context.Context, email string) (*erp.RawWishlist, error)
	AddToWishlist(ctx context.Context, email, itemCode string, qty int) error
	RemoveFromWishlist(ctx context.Context, email, itemCode string) error
	GetItem(ctx context.Context, itemCode string) (*erp.RawItem, error)
}

// Service handles wishlist reads and guarded mutations
type Service struct {
	gateway     Gateway
	settleDelay time.Duration
	log         *logrus.Entry
}

// NewService creates a new wishlist service
func NewService(gateway Gateway, cfg *config.Config, log *logrus.Logger) *Service {
	return &Service{
		gateway:     gateway,
		settleDelay: cfg.Storefront.SettleDelay,
		log:         log.WithField("component", "wishlist"),
	}
}

// GetWishlist retrieves the user's wishlist. A user without a wishlist
// record gets an empty list. Entries whose product lookup fails are kept
// with a nil product.
func (s *Service) GetWishlist(ctx context.Context, sess *session.Session) (*Wishlist, error) {
	if sess == nil || sess.Email == "" {
		return nil, apperrors.ErrAuthRequired
	}

	raw, err := s.gateway.GetWishlist(ctx, sess.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve wishlist: %w", err)
	}

	list := &Wishlist{User: sess.Email, Entries: []Entry{}}
	if raw == nil {
		return list, nil
	}

	for _, item := range raw.Items {
		entry := Entry{ItemCode: item.ItemCode, AddedAt: item.Creation}
		rawItem, err := s.gateway.GetItem(ctx, item.ItemCode)
		if err != nil || rawItem == nil {
			if err != nil {
				s.log.WithError(err).WithField("item_code", item.ItemCode).Warn("wishlist entry product lookup failed")
			}
			list.Entries = append(list.Entries, entry)
			continue
		}
		product := catalog.MapItem(rawItem)
		entry.Product = &product
		list.Entries = append(list.Entries, entry)
	}
	return list, nil
}

// AddItem adds an item to the wishlist. onSettled, if set, runs after the
// settle delay so the dependent read refetches against a settled backend.
func (s *Service) AddItem(ctx context.Context, sess *session.Session, itemCode string, onSettled func()) error {
	if sess == nil || sess.Email == "" {
		return apperrors.ErrAuthRequired
	}
	if itemCode == "" {
		return apperrors.NewValidationError("item_code", "item code is required")
	}

	if err := s.gateway.AddToWishlist(ctx, sess.Email, itemCode, 1); err != nil {
		return fmt.Errorf("failed to add to wishlist: %w", err)
	}

	s.scheduleSettle(onSettled)
	return nil
}

// RemoveItem removes an item from the wishlist
func (s *Service) RemoveItem(ctx context.Context, sess *session.Session, itemCode string, onSettled func()) error {
	if sess == nil || sess.Email == "" {
		return apperrors.ErrAuthRequired
	}
	if itemCode == "" {
		return apperrors.NewValidationError("item_code", "item code is required")
	}

	if err := s.gateway.RemoveFromWishlist(ctx, sess.Email, itemCode); err != nil {
		return fmt.Errorf("failed to remove from wishlist: %w", err)
	}

	s.scheduleSettle(onSettled)
	return nil
}

func (s *Service) scheduleSettle(onSettled func()) {
	if onSettled == nil {
		return
	}
	time.AfterFunc(s.settleDelay, onSettled)
}
