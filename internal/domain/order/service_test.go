// internal/domain/order/service_test.go
package order

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-bff/internal/config"
	"github.com/your-org/storefront-bff/internal/domain/session"
	"github.com/your-org/storefront-bff/internal/erp"
	"github.com/your-org/storefront-bff/internal/pkg/apperrors"
)

type fakeGateway struct {
	orders       []erp.RawOrder
	order        *erp.RawOrder
	invoices     []erp.RawInvoice
	invoice      *erp.RawInvoice
	lastCustomer string
	lastCompany  string
	calls        int
}

func (f *fakeGateway) GetSalesOrders(ctx context.Context, customerID, company string) ([]erp.RawOrder, error) {
	f.calls++
	f.lastCustomer = customerID
	f.lastCompany = company
	return f.orders, nil
}

func (f *fakeGateway) GetSalesOrder(ctx context.Context, id string) (*erp.RawOrder, error) {
	f.calls++
	return f.order, nil
}

func (f *fakeGateway) GetSalesInvoices(ctx context.Context, userEmail string) ([]erp.RawInvoice, error) {
	f.calls++
	f.lastCustomer = userEmail
	return f.invoices, nil
}

func (f *fakeGateway) GetSalesInvoice(ctx context.Context, name string) (*erp.RawInvoice, error) {
	f.calls++
	return f.invoice, nil
}

func testConfig() *config.Config {
	return &config.Config{ERP: config.ERPConfig{Company: "Acme Retail"}}
}

func TestListOrders_RequiresSessionAndMapsRows(t *testing.T) {
	gw := &fakeGateway{
		orders: []erp.RawOrder{{
			Name:            "SO-0001",
			Status:          "To Deliver",
			GrandTotal:      130,
			TransactionDate: "2026-08-01",
			Items: []erp.RawOrderItem{
				{ItemCode: "A", ItemName: "Sneaker", Qty: 2, Rate: 50, Amount: 100},
			},
		}},
	}
	svc := NewService(gw, testConfig(), logrus.New())
	ctx := context.Background()

	_, err := svc.ListOrders(ctx, nil)
	assert.ErrorIs(t, err, apperrors.ErrAuthRequired)
	assert.Equal(t, 0, gw.calls)

	sess := &session.Session{Email: "shopper@example.com", CustomerID: "CUST-001"}
	orders, err := svc.ListOrders(ctx, sess)

	require.NoError(t, err)
	assert.Equal(t, "CUST-001", gw.lastCustomer)
	assert.Equal(t, "Acme Retail", gw.lastCompany)
	require.Len(t, orders, 1)
	assert.Equal(t, "SO-0001", orders[0].ID)
	require.Len(t, orders[0].Items, 1)
	assert.Equal(t, 2, orders[0].Items[0].Quantity)
}

func TestListOrders_FallsBackToEmail(t *testing.T) {
	gw := &fakeGateway{}
	svc := NewService(gw, testConfig(), logrus.New())

	_, err := svc.ListOrders(context.Background(), &session.Session{Email: "shopper@example.com"})

	require.NoError(t, err)
	assert.Equal(t, "shopper@example.com", gw.lastCustomer)
}

func TestGetOrder_NotFound(t *testing.T) {
	gw := &fakeGateway{order: nil}
	svc := NewService(gw, testConfig(), logrus.New())
	sess := &session.Session{Email: "shopper@example.com"}

	_, err := svc.GetOrder(context.Background(), sess, "SO-MISSING")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = svc.GetOrder(context.Background(), sess, "")
	assert.True(t, apperrors.IsValidation(err))
}

func TestListInvoices_MapsRows(t *testing.T) {
	gw := &fakeGateway{
		invoices: []erp.RawInvoice{{
			Name:        "SINV-0001",
			Status:      "Paid",
			GrandTotal:  75,
			PostingDate: "2026-08-15",
			Items:       []erp.RawInvoiceLine{{ItemCode: "B", Qty: 3, Rate: 25, Amount: 75}},
		}},
	}
	svc := NewService(gw, testConfig(), logrus.New())

	invoices, err := svc.ListInvoices(context.Background(), &session.Session{Email: "shopper@example.com"})

	require.NoError(t, err)
	assert.Equal(t, "shopper@example.com", gw.lastCustomer, "invoices are looked up by email")
	require.Len(t, invoices, 1)
	assert.Equal(t, "SINV-0001", invoices[0].ID)
	require.Len(t, invoices[0].Lines, 1)
	assert.Equal(t, 3, invoices[0].Lines[0].Quantity)
}
