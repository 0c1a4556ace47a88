// internal/domain/customer/service.go
package customer

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-bff/internal/domain/session"
	"github.com/your-org/storefront-bff/internal/erp"
	"github.com/your-org/storefront-bff/internal/pkg/apperrors"
)

// Gateway is the slice of the ERP client the customer service needs
type Gateway interface {
	GetCustomer(ctx context.Context, id string) (*erp.RawCustomer, error)
	GetCustomerByEmail(ctx context.Context, email string) (*erp.RawCustomer, error)
	UpdateCustomer(ctx context.Context, id string, data map[string]interface{}) (*erp.RawCustomer, error)
	GetTopCustomers(ctx context.Context, year int, month string) (*erp.RawTopCustomers, error)
}

// Service exposes customer profiles and the monthly leaderboard
type Service struct {
	gateway Gateway
	log     *logrus.Entry
}

// NewService creates a new customer service
func NewService(gateway Gateway, log *logrus.Logger) *Service {
	return &Service{
		gateway: gateway,
		log:     log.WithField("component", "customer"),
	}
}

// GetProfile resolves the customer record for the logged-in user
func (s *Service) GetProfile(ctx context.Context, sess *session.Session) (*Profile, error) {
	if sess == nil || sess.Email == "" {
		return nil, apperrors.ErrAuthRequired
	}

	var (
		raw *erp.RawCustomer
		err error
	)
	if sess.CustomerID != "" {
		raw, err = s.gateway.GetCustomer(ctx, sess.CustomerID)
	} else {
		raw, err = s.gateway.GetCustomerByEmail(ctx, sess.Email)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve customer: %w", err)
	}
	if raw == nil {
		return nil, apperrors.ErrNotFound
	}
	p := mapProfile(raw)
	return &p, nil
}

// UpdateProfile patches editable profile fields on the customer record
func (s *Service) UpdateProfile(ctx context.Context, sess *session.Session, req *UpdateProfileRequest) (*Profile, error) {
	if sess == nil || sess.Email == "" {
		return nil, apperrors.ErrAuthRequired
	}
	if sess.CustomerID == "" {
		return nil, apperrors.ErrNotFound
	}
	if req == nil || (req.FullName == "" && req.Phone == "") {
		return nil, apperrors.NewValidationError("profile", "nothing to update")
	}

	data := map[string]interface{}{}
	if req.FullName != "" {
		data["customer_name"] = req.FullName
	}
	if req.Phone != "" {
		data["mobile_no"] = req.Phone
	}

	raw, err := s.gateway.UpdateCustomer(ctx, sess.CustomerID, data)
	if err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}
	p := mapProfile(raw)

	s.log.WithField("customer", sess.CustomerID).Info("profile updated")
	return &p, nil
}

// TopCustomers retrieves the monthly leaderboard
func (s *Service) TopCustomers(ctx context.Context, year int, month string) (*Leaderboard, error) {
	if month == "" {
		return nil, apperrors.NewValidationError("month", "month is required")
	}

	raw, err := s.gateway.GetTopCustomers(ctx, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve top customers: %w", err)
	}

	board := &Leaderboard{
		Month:     raw.Month,
		Year:      raw.Year,
		Customers: make([]TopCustomer, 0, len(raw.TopCustomers)),
		Items:     make([]TopItem, 0, len(raw.TopItems)),
	}
	for _, c := range raw.TopCustomers {
		board.Customers = append(board.Customers, TopCustomer{
			ID:         c.Customer,
			Name:       c.CustomerName,
			Total:      c.Total,
			OrderCount: c.OrderCount,
		})
	}
	for _, it := range raw.TopItems {
		board.Items = append(board.Items, TopItem{
			ItemCode: it.ItemCode,
			ItemName: it.ItemName,
			Quantity: int(it.Qty),
		})
	}
	return board, nil
}

func mapProfile(raw *erp.RawCustomer) Profile {
	return Profile{
		ID:        raw.Name,
		FullName:  raw.CustomerName,
		Email:     raw.EmailID,
		Phone:     raw.MobileNo,
		Territory: raw.Territory,
		Image:     raw.Image,
	}
}
