// internal/domain/session/manager.go
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-bff/internal/config"
	"github.com/your-org/storefront-bff/internal/erp"
	"github.com/your-org/storefront-bff/internal/pkg/apperrors"
	"github.com/your-org/storefront-bff/internal/pkg/auth"
)

// Session identifies a logged-in user. It is created at login, cleared at
// logout, and passed explicitly to every component that needs identity;
// there is no ambient global session.
type Session struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	FullName   string    `json:"full_name,omitempty"`
	CustomerID string    `json:"customer_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// CustomerGateway is the slice of the ERP client the manager needs
type CustomerGateway interface {
	GetCustomerByEmail(ctx context.Context, email string) (*erp.RawCustomer, error)
}

// Store persists session records for their TTL. The Redis cache client
// satisfies it in production.
type Store interface {
	SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	GetJSON(ctx context.Context, key string, dest interface{}) (bool, error)
	Del(ctx context.Context, keys ...string) error
}

// Manager owns session lifecycle: login, logout and token resolution.
// Session records live in the store with the same TTL as the issued
// token.
type Manager struct {
	gateway CustomerGateway
	store   Store
	jwt     *auth.JWTManager
	ttl     time.Duration
	log     *logrus.Entry
}

// NewManager creates a session manager
func NewManager(gateway CustomerGateway, store Store, cfg *config.Config, log *logrus.Logger) *Manager {
	return &Manager{
		gateway: gateway,
		store:   store,
		jwt:     auth.NewJWTManager(cfg),
		ttl:     cfg.JWT.AccessTokenExpiry,
		log:     log.WithField("component", "session"),
	}
}

func sessionKey(id string) string {
	return fmt.Sprintf("session:%s", id)
}

// Login resolves the customer record for an email and opens a session.
// A missing customer record is not an error: the session simply carries
// no external customer identifier.
func (m *Manager) Login(ctx context.Context, email string) (*Session, string, error) {
	if email == "" {
		return nil, "", apperrors.NewValidationError("email", "email is required")
	}

	sess := &Session{
		ID:        uuid.New().String(),
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}

	customer, err := m.gateway.GetCustomerByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to resolve customer: %w", err)
	}
	if customer != nil {
		sess.CustomerID = customer.Name
		sess.FullName = customer.CustomerName
	}

	if err := m.store.SetJSON(ctx, sessionKey(sess.ID), sess, m.ttl); err != nil {
		return nil, "", fmt.Errorf("failed to store session: %w", err)
	}

	token, err := m.jwt.GenerateToken(email, sess.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	m.log.WithField("email", email).Info("session opened")
	return sess, token, nil
}

// Logout closes the session carried by the token. Unknown or expired
// tokens are treated as already logged out.
func (m *Manager) Logout(ctx context.Context, token string) error {
	claims, err := m.jwt.ValidateToken(token)
	if err != nil {
		return nil
	}
	if err := m.store.Del(ctx, sessionKey(claims.SessionID)); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	m.log.WithField("email", claims.Email).Info("session closed")
	return nil
}

// FromToken resolves a session from a bearer token. Returns
// apperrors.ErrAuthRequired when the token is invalid or the session has
// been closed or expired.
func (m *Manager) FromToken(ctx context.Context, token string) (*Session, error) {
	claims, err := m.jwt.ValidateToken(token)
	if err != nil {
		return nil, apperrors.ErrAuthRequired
	}

	var sess Session
	found, err := m.store.GetJSON(ctx, sessionKey(claims.SessionID), &sess)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if !found {
		return nil, apperrors.ErrAuthRequired
	}
	return &sess, nil
}
