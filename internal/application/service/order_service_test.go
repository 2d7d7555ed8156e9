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

type orderFixture struct {
	svc          *OrderService
	orderRepo    *fakeOrderRepo
	productRepo  *fakeProductRepo
	customerRepo *fakeCustomerRepo
	customer     *entity.Customer
	product      *entity.Product
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()

	orderRepo := newFakeOrderRepo()
	productRepo := newFakeProductRepo()
	customerRepo := newFakeCustomerRepo()

	customer := customerRepo.add(&entity.Customer{
		Name:   "City Hospital",
		Email:  "orders@cityhospital.org",
		Status: enum.CustomerStatusActive,
	})
	product := productRepo.add(&entity.Product{
		Name:        "Amoxicillin 500mg",
		SKU:         "AMX-500",
		BatchNumber: "BATCH-A1",
		ExpiryDate:  time.Now().AddDate(1, 0, 0),
		Quantity:    100,
		UnitPrice:   decimal.NewFromFloat(2.50),
	})

	return &orderFixture{
		svc:          NewOrderService(orderRepo, productRepo, customerRepo, billing.DefaultPolicy()),
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		customer:     customer,
		product:      product,
	}
}

func TestCreateOrderDerivesTotals(t *testing.T) {
	f := newOrderFixture(t)

	order, err := f.svc.CreateOrder(context.Background(), &CreateOrderInput{
		CustomerID:   f.customer.ID,
		OrderDate:    time.Now(),
		RequiredDate: time.Now().AddDate(0, 0, 7),
		Items: []OrderItemInput{
			{ProductID: f.product.ID, Quantity: 10},
		},
	})
	require.NoError(t, err)

	assert.True(t, order.TotalAmount.Equal(decimal.NewFromFloat(25.00)), "total: %s", order.TotalAmount)
	require.Len(t, order.Items, 1)
	assert.True(t, order.Items[0].TotalPrice.Equal(decimal.NewFromFloat(25.00)))
	assert.Equal(t, enum.OrderStatusPending, order.Status)
	assert.Equal(t, enum.OrderPriorityMedium, order.Priority)
}

func TestCreateOrderSnapshotsProductFields(t *testing.T) {
	f := newOrderFixture(t)

	order, err := f.svc.CreateOrder(context.Background(), &CreateOrderInput{
		CustomerID:   f.customer.ID,
		OrderDate:    time.Now(),
		RequiredDate: time.Now().AddDate(0, 0, 7),
		Items: []OrderItemInput{
			{ProductID: f.product.ID, Quantity: 2},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "City Hospital", order.CustomerName)
	assert.Equal(t, "Amoxicillin 500mg", order.Items[0].ProductName)
	assert.Equal(t, "BATCH-A1", order.Items[0].BatchNumber)

	// later product edits must not affect the stored order
	f.product.Name = "Renamed"
	assert.Equal(t, "Amoxicillin 500mg", order.Items[0].ProductName)
}

func TestCreateOrderPriceOverride(t *testing.T) {
	f := newOrderFixture(t)

	negotiated := decimal.NewFromFloat(2.00)
	order, err := f.svc.CreateOrder(context.Background(), &CreateOrderInput{
		CustomerID:   f.customer.ID,
		OrderDate:    time.Now(),
		RequiredDate: time.Now().AddDate(0, 0, 7),
		Items: []OrderItemInput{
			{ProductID: f.product.ID, Quantity: 10, UnitPrice: &negotiated},
		},
	})
	require.NoError(t, err)
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromFloat(20.00)))
}

func TestCreateOrderEmptyItemsRejectedBeforePersist(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.svc.CreateOrder(context.Background(), &CreateOrderInput{
		CustomerID:   f.customer.ID,
		OrderDate:    time.Now(),
		RequiredDate: time.Now().AddDate(0, 0, 7),
		Items:        nil,
	})
	require.Error(t, err)
	assert.Equal(t, "Please add at least one order item.", apperror.GetAppError(err).Message)
	assert.Equal(t, 0, f.orderRepo.creates, "no write should happen on validation failure")
}

func TestCreateOrderUnknownCustomer(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.svc.CreateOrder(context.Background(), &CreateOrderInput{
		CustomerID:   uuid.New(),
		OrderDate:    time.Now(),
		RequiredDate: time.Now().AddDate(0, 0, 7),
		Items: []OrderItemInput{
			{ProductID: f.product.ID, Quantity: 1},
		},
	})
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
	assert.Equal(t, 0, f.orderRepo.creates)
}

func TestCreateOrderUnknownProduct(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.svc.CreateOrder(context.Background(), &CreateOrderInput{
		CustomerID:   f.customer.ID,
		OrderDate:    time.Now(),
		RequiredDate: time.Now().AddDate(0, 0, 7),
		Items: []OrderItemInput{
			{ProductID: uuid.New(), Quantity: 1},
		},
	})
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestUpdateOrderStatus(t *testing.T) {
	f := newOrderFixture(t)

	order, err := f.svc.CreateOrder(context.Background(), &CreateOrderInput{
		CustomerID:   f.customer.ID,
		OrderDate:    time.Now(),
		RequiredDate: time.Now().AddDate(0, 0, 7),
		Items: []OrderItemInput{
			{ProductID: f.product.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)

	updated, err := f.svc.UpdateOrderStatus(context.Background(), order.ID, enum.OrderStatusShipped)
	require.NoError(t, err)
	assert.Equal(t, enum.OrderStatusShipped, updated.Status)

	stored, _ := f.orderRepo.GetByID(context.Background(), order.ID)
	assert.Equal(t, enum.OrderStatusShipped, stored.Status)
}

func TestUpdateOrderStatusInvalid(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.svc.UpdateOrderStatus(context.Background(), uuid.New(), enum.OrderStatus("bogus"))
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}
