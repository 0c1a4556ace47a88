// internal/domain/session/manager_test.go
package session

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-bff/internal/config"
	"github.com/your-org/storefront-bff/internal/erp"
	"github.com/your-org/storefront-bff/internal/pkg/apperrors"
)

type memStore struct {
	mu     sync.Mutex
	data   map[string][]byte
	setErr error
}

func (s *memStore) SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if s.setErr != nil {
		return s.setErr
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		s.data = make(map[string][]byte)
	}
	s.data[key] = b
	return nil
}

func (s *memStore) GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dest)
}

func (s *memStore) Del(ctx context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keys {
		delete(s.data, k)
	}
	return nil
}

func (s *memStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data)
}

type customerStub struct {
	customer *erp.RawCustomer
	err      error
	calls    int
}

func (c *customerStub) GetCustomerByEmail(ctx context.Context, email string) (*erp.RawCustomer, error) {
	c.calls++
	return c.customer, c.err
}

func newTestManager(gateway CustomerGateway, store Store) *Manager {
	log := logrus.New()
	log.SetOutput(io.Discard)
	cfg := &config.Config{
		App: config.AppConfig{Name: "storefront-test"},
		JWT: config.JWTConfig{
			Secret:            "0123456789abcdef0123456789abcdef",
			AccessTokenExpiry: time.Hour,
		},
	}
	return NewManager(gateway, store, cfg, log)
}

func TestManager_LoginOpensResolvableSession(t *testing.T) {
	store := &memStore{}
	gateway := &customerStub{customer: &erp.RawCustomer{Name: "CUST-0001", CustomerName: "Ama Mensah"}}
	mgr := newTestManager(gateway, store)

	sess, token, err := mgr.Login(context.Background(), "ama@example.com")
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.NotEmpty(t, token)
	assert.Equal(t, "ama@example.com", sess.Email)
	assert.Equal(t, "CUST-0001", sess.CustomerID)
	assert.Equal(t, "Ama Mensah", sess.FullName)
	assert.Equal(t, 1, store.len())

	resolved, err := mgr.FromToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, resolved.ID)
	assert.Equal(t, sess.Email, resolved.Email)
	assert.Equal(t, sess.CustomerID, resolved.CustomerID)
}

func TestManager_LoginRequiresEmail(t *testing.T) {
	gateway := &customerStub{}
	mgr := newTestManager(gateway, &memStore{})

	_, _, err := mgr.Login(context.Background(), "")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, 0, gateway.calls)
}

func TestManager_LoginWithoutCustomerRecord(t *testing.T) {
	mgr := newTestManager(&customerStub{}, &memStore{})

	sess, token, err := mgr.Login(context.Background(), "guest@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Empty(t, sess.CustomerID)
	assert.Empty(t, sess.FullName)
}

func TestManager_LoginFailsWhenCustomerLookupFails(t *testing.T) {
	store := &memStore{}
	gateway := &customerStub{err: errors.New("upstream down")}
	mgr := newTestManager(gateway, store)

	_, _, err := mgr.Login(context.Background(), "ama@example.com")
	require.Error(t, err)
	assert.Equal(t, 0, store.len(), "no session record is written on failure")
}

func TestManager_LogoutClosesSession(t *testing.T) {
	store := &memStore{}
	mgr := newTestManager(&customerStub{}, store)

	_, token, err := mgr.Login(context.Background(), "ama@example.com")
	require.NoError(t, err)

	require.NoError(t, mgr.Logout(context.Background(), token))
	assert.Equal(t, 0, store.len())

	_, err = mgr.FromToken(context.Background(), token)
	assert.ErrorIs(t, err, apperrors.ErrAuthRequired)
}

func TestManager_LogoutWithInvalidTokenIsNoop(t *testing.T) {
	mgr := newTestManager(&customerStub{}, &memStore{})

	assert.NoError(t, mgr.Logout(context.Background(), "not-a-token"))
}

func TestManager_FromTokenRejectsInvalidToken(t *testing.T) {
	mgr := newTestManager(&customerStub{}, &memStore{})

	_, err := mgr.FromToken(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, apperrors.ErrAuthRequired)
}
