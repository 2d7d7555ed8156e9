package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pharmadist/pharmadist-api/internal/domain/billing"
	"github.com/pharmadist/pharmadist-api/internal/domain/entity"
	"github.com/pharmadist/pharmadist-api/internal/domain/enum"
	"github.com/pharmadist/pharmadist-api/pkg/apperror"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type invoiceFixture struct {
	svc         *InvoiceService
	invoiceRepo *fakeInvoiceRepo
	orderRepo   *fakeOrderRepo
	order       *entity.Order
}

func newInvoiceFixture(t *testing.T) *invoiceFixture {
	t.Helper()

	invoiceRepo := newFakeInvoiceRepo()
	orderRepo := newFakeOrderRepo()

	order := &entity.Order{
		ID:           uuid.New(),
		CustomerID:   uuid.New(),
		CustomerName: "City Hospital",
		OrderDate:    time.Now(),
		RequiredDate: time.Now().AddDate(0, 0, 7),
		Status:       enum.OrderStatusConfirmed,
		TotalAmount:  decimal.NewFromFloat(25.00),
		Items: []entity.OrderItem{
			{
				ProductID:   uuid.New(),
				ProductName: "Amoxicillin 500mg",
				Quantity:    10,
				UnitPrice:   decimal.NewFromFloat(2.50),
				TotalPrice:  decimal.NewFromFloat(25.00),
			},
		},
	}
	orderRepo.orders[order.ID] = order

	return &invoiceFixture{
		svc:         NewInvoiceService(invoiceRepo, orderRepo, billing.DefaultPolicy()),
		invoiceRepo: invoiceRepo,
		orderRepo:   orderRepo,
		order:       order,
	}
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	v, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return v
}

func TestCreateInvoiceDerivesFinancials(t *testing.T) {
	f := newInvoiceFixture(t)

	invoice, err := f.svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		OrderID:      f.order.ID,
		InvoiceDate:  date(t, "2024-01-01"),
		PaymentTerms: "Net 30",
	})
	require.NoError(t, err)

	assert.True(t, invoice.Subtotal.Equal(decimal.NewFromFloat(25.00)), "subtotal: %s", invoice.Subtotal)
	assert.True(t, invoice.TaxAmount.Equal(decimal.NewFromFloat(2.50)), "tax: %s", invoice.TaxAmount)
	assert.True(t, invoice.TotalAmount.Equal(decimal.NewFromFloat(27.50)), "total: %s", invoice.TotalAmount)
	assert.Equal(t, "2024-01-31", invoice.DueDate.Format("2006-01-02"))
	assert.Equal(t, enum.InvoiceStatusDraft, invoice.Status)
	assert.True(t, invoice.PaidAmount.IsZero())
}

func TestCreateInvoiceSnapshotsOrderItems(t *testing.T) {
	f := newInvoiceFixture(t)

	invoice, err := f.svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		OrderID:     f.order.ID,
		InvoiceDate: date(t, "2024-01-01"),
	})
	require.NoError(t, err)

	assert.Equal(t, "City Hospital", invoice.CustomerName)
	require.Len(t, invoice.Items, 1)
	assert.Equal(t, "Amoxicillin 500mg", invoice.Items[0].ProductName)
	assert.Equal(t, 10, invoice.Items[0].Quantity)

	// the copy is one-way: later order edits do not propagate
	f.order.Items[0].ProductName = "Renamed"
	assert.Equal(t, "Amoxicillin 500mg", invoice.Items[0].ProductName)
}

func TestCreateInvoiceDefaultsTermsToNet30(t *testing.T) {
	f := newInvoiceFixture(t)

	invoice, err := f.svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		OrderID:     f.order.ID,
		InvoiceDate: date(t, "2024-01-01"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Net 30", invoice.PaymentTerms)
	assert.Equal(t, "2024-01-31", invoice.DueDate.Format("2006-01-02"))
}

func TestCreateInvoiceUnknownOrder(t *testing.T) {
	f := newInvoiceFixture(t)

	_, err := f.svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		OrderID:     uuid.New(),
		InvoiceDate: date(t, "2024-01-01"),
	})
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
	assert.Equal(t, 0, f.invoiceRepo.creates)
}

func TestCreateInvoiceDuplicateOrder(t *testing.T) {
	f := newInvoiceFixture(t)

	_, err := f.svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		OrderID:     f.order.ID,
		InvoiceDate: date(t, "2024-01-01"),
	})
	require.NoError(t, err)

	_, err = f.svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		OrderID:     f.order.ID,
		InvoiceDate: date(t, "2024-01-02"),
	})
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
	assert.Equal(t, 1, f.invoiceRepo.creates)
}

func TestUpdateInvoiceStatusRecordsPayment(t *testing.T) {
	f := newInvoiceFixture(t)

	invoice, err := f.svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		OrderID:     f.order.ID,
		InvoiceDate: date(t, "2024-01-01"),
	})
	require.NoError(t, err)

	paid := decimal.NewFromFloat(27.50)
	updated, err := f.svc.UpdateInvoiceStatus(context.Background(), invoice.ID, enum.InvoiceStatusPaid, &paid)
	require.NoError(t, err)
	assert.Equal(t, enum.InvoiceStatusPaid, updated.Status)
	assert.True(t, updated.PaidAmount.Equal(paid))

	// full payment marks the source order as paid
	assert.Equal(t, enum.PaymentStatusPaid, f.order.PaymentStatus)
}

func TestUpdateInvoiceStatusPartialPayment(t *testing.T) {
	f := newInvoiceFixture(t)

	invoice, err := f.svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		OrderID:     f.order.ID,
		InvoiceDate: date(t, "2024-01-01"),
	})
	require.NoError(t, err)

	paid := decimal.NewFromFloat(10.00)
	updated, err := f.svc.UpdateInvoiceStatus(context.Background(), invoice.ID, enum.InvoiceStatusSent, &paid)
	require.NoError(t, err)
	assert.True(t, updated.PaidAmount.Equal(paid))
	assert.Equal(t, enum.PaymentStatusPartial, f.order.PaymentStatus)
}

func TestUpdateInvoiceStatusOverpaymentRejected(t *testing.T) {
	f := newInvoiceFixture(t)

	invoice, err := f.svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		OrderID:     f.order.ID,
		InvoiceDate: date(t, "2024-01-01"),
	})
	require.NoError(t, err)

	paid := decimal.NewFromFloat(30.00)
	_, err = f.svc.UpdateInvoiceStatus(context.Background(), invoice.ID, enum.InvoiceStatusPaid, &paid)
	require.Error(t, err)
	assert.Equal(t, "Paid amount cannot exceed total amount", apperror.GetAppError(err).Message)

	stored, _ := f.invoiceRepo.GetByID(context.Background(), invoice.ID)
	assert.True(t, stored.PaidAmount.IsZero(), "rejected payment must not be written")
}

// End-to-end derivation: order with one item at qty 10 x 2.50 flows into an
// invoice with subtotal 25.00, tax 2.50, total 27.50 and a Net 30 due date.
func TestOrderToInvoiceFlow(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	productRepo := newFakeProductRepo()
	customerRepo := newFakeCustomerRepo()
	invoiceRepo := newFakeInvoiceRepo()
	policy := billing.DefaultPolicy()

	customer := customerRepo.add(&entity.Customer{Name: "City Hospital", Status: enum.CustomerStatusActive})
	product := productRepo.add(&entity.Product{
		Name:       "Paracetamol 500mg",
		SKU:        "PCM-500",
		ExpiryDate: time.Now().AddDate(1, 0, 0),
		UnitPrice:  decimal.NewFromFloat(2.50),
		Quantity:   50,
	})

	orders := NewOrderService(orderRepo, productRepo, customerRepo, policy)
	invoices := NewInvoiceService(invoiceRepo, orderRepo, policy)

	order, err := orders.CreateOrder(context.Background(), &CreateOrderInput{
		CustomerID:   customer.ID,
		OrderDate:    date(t, "2024-01-01"),
		RequiredDate: date(t, "2024-01-08"),
		Items: []OrderItemInput{
			{ProductID: product.ID, Quantity: 10},
		},
	})
	require.NoError(t, err)
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromFloat(25.00)))

	invoice, err := invoices.CreateInvoice(context.Background(), &CreateInvoiceInput{
		OrderID:      order.ID,
		InvoiceDate:  date(t, "2024-01-01"),
		PaymentTerms: "Net 30",
	})
	require.NoError(t, err)

	assert.True(t, invoice.Subtotal.Equal(decimal.NewFromFloat(25.00)))
	assert.True(t, invoice.TaxAmount.Equal(decimal.NewFromFloat(2.50)))
	assert.True(t, invoice.TotalAmount.Equal(decimal.NewFromFloat(27.50)))
	assert.Equal(t, "2024-01-31", invoice.DueDate.Format("2006-01-02"))
}
