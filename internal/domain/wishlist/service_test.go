// internal/domain/wishlist/service_test.go
package wishlist

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-bff/internal/config"
	"github.com/your-org/storefront-bff/internal/domain/session"
	"github.com/your-org/storefront-bff/internal/erp"
	"github.com/your-org/storefront-bff/internal/pkg/apperrors"
)

type fakeGateway struct {
	wishlist *erp.RawWishlist
	items    map[string]*erp.RawItem
	calls    int
	err      error
}

func (f *fakeGateway) GetWishlist(ctx context.Context, email string) (*erp.RawWishlist, error) {
	f.calls++
	return f.wishlist, f.err
}

func (f *fakeGateway) AddToWishlist(ctx context.Context, email, itemCode string, qty int) error {
	f.calls++
	return f.err
}

func (f *fakeGateway) RemoveFromWishlist(ctx context.Context, email, itemCode string) error {
	f.calls++
	return f.err
}

func (f *fakeGateway) GetItem(ctx context.Context, itemCode string) (*erp.RawItem, error) {
	if item, ok := f.items[itemCode]; ok {
		return item, nil
	}
	return nil, errors.New("lookup failed")
}

func testConfig() *config.Config {
	return &config.Config{
		Storefront: config.StorefrontConfig{SettleDelay: time.Millisecond},
	}
}

func testSession() *session.Session {
	return &session.Session{ID: "s1", Email: "shopper@example.com"}
}

func TestService_RequiresSession(t *testing.T) {
	gw := &fakeGateway{}
	svc := NewService(gw, testConfig(), logrus.New())
	ctx := context.Background()

	_, err := svc.GetWishlist(ctx, nil)
	assert.ErrorIs(t, err, apperrors.ErrAuthRequired)
	assert.ErrorIs(t, svc.AddItem(ctx, nil, "SKU-1", nil), apperrors.ErrAuthRequired)
	assert.ErrorIs(t, svc.RemoveItem(ctx, nil, "SKU-1", nil), apperrors.ErrAuthRequired)

	assert.Equal(t, 0, gw.calls)
}

func TestService_NoWishlistRecordMeansEmptyList(t *testing.T) {
	gw := &fakeGateway{wishlist: nil}
	svc := NewService(gw, testConfig(), logrus.New())

	list, err := svc.GetWishlist(context.Background(), testSession())

	require.NoError(t, err)
	assert.Equal(t, "shopper@example.com", list.User)
	assert.Empty(t, list.Entries)
}

func TestService_GetWishlistResolvesProducts(t *testing.T) {
	gw := &fakeGateway{
		wishlist: &erp.RawWishlist{
			User: "shopper@example.com",
			Items: []erp.RawWishlistItem{
				{ItemCode: "SKU-1", Creation: "2026-01-01 10:00:00"},
				{ItemCode: "SKU-GONE"},
			},
		},
		items: map[string]*erp.RawItem{
			"SKU-1": {ItemCode: "SKU-1", WebItemName: "Sneaker", StandardRate: 50},
		},
	}
	svc := NewService(gw, testConfig(), logrus.New())

	list, err := svc.GetWishlist(context.Background(), testSession())

	require.NoError(t, err)
	require.Len(t, list.Entries, 2)
	require.NotNil(t, list.Entries[0].Product)
	assert.Equal(t, "Sneaker", list.Entries[0].Product.Name)
	assert.Nil(t, list.Entries[1].Product, "failed lookup keeps the entry without a product")
	assert.True(t, list.Contains("SKU-GONE"))
	assert.False(t, list.Contains("SKU-OTHER"))
}

func TestService_AddItemValidation(t *testing.T) {
	gw := &fakeGateway{}
	svc := NewService(gw, testConfig(), logrus.New())

	err := svc.AddItem(context.Background(), testSession(), "", nil)

	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, 0, gw.calls)
}

func TestService_SettleCallbackFires(t *testing.T) {
	gw := &fakeGateway{}
	svc := NewService(gw, testConfig(), logrus.New())

	settled := make(chan struct{})
	err := svc.AddItem(context.Background(), testSession(), "SKU-1", func() {
		close(settled)
	})
	require.NoError(t, err)

	select {
	case <-settled:
	case <-time.After(time.Second):
		t.Fatal("settle callback never fired")
	}
}
