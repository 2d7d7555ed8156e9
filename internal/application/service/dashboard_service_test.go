package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pharmadist/pharmadist-api/internal/domain/entity"
	"github.com/pharmadist/pharmadist-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDashboardStats(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	productRepo := newFakeProductRepo()
	customerRepo := newFakeCustomerRepo()
	invoiceRepo := newFakeInvoiceRepo()

	customerRepo.add(&entity.Customer{Name: "A", Status: enum.CustomerStatusActive})
	customerRepo.add(&entity.Customer{Name: "B", Status: enum.CustomerStatusActive})
	customerRepo.add(&entity.Customer{Name: "C", Status: enum.CustomerStatusInactive})

	// at reorder level counts as low stock
	productRepo.add(&entity.Product{Name: "Low", SKU: "L-1", Quantity: 5, ReorderLevel: 5, ExpiryDate: time.Now().AddDate(1, 0, 0)})
	productRepo.add(&entity.Product{Name: "OK", SKU: "O-1", Quantity: 50, ReorderLevel: 5, ExpiryDate: time.Now().AddDate(1, 0, 0)})
	productRepo.add(&entity.Product{Name: "Expiring", SKU: "E-1", Quantity: 50, ReorderLevel: 5, ExpiryDate: time.Now().AddDate(0, 0, 30)})

	now := time.Now()
	thisMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	orderRepo.orders[uuid.New()] = &entity.Order{Status: enum.OrderStatusPending, OrderDate: thisMonth}
	orderRepo.orders[uuid.New()] = &entity.Order{Status: enum.OrderStatusDelivered, OrderDate: thisMonth.AddDate(0, -1, 0)}
	invoiceRepo.invoices[uuid.New()] = &entity.Invoice{
		TotalAmount: decimal.NewFromFloat(110.00),
		InvoiceDate: thisMonth,
		Status:      enum.InvoiceStatusSent,
	}
	invoiceRepo.invoices[uuid.New()] = &entity.Invoice{
		TotalAmount: decimal.NewFromFloat(100.00),
		InvoiceDate: thisMonth.AddDate(0, -1, 0),
		Status:      enum.InvoiceStatusPaid,
	}
	// cancelled invoices are excluded from revenue
	invoiceRepo.invoices[uuid.New()] = &entity.Invoice{
		TotalAmount: decimal.NewFromFloat(999.00),
		InvoiceDate: now,
		Status:      enum.InvoiceStatusCancelled,
	}

	svc := NewDashboardService(orderRepo, productRepo, customerRepo, invoiceRepo)
	stats, err := svc.GetDashboardStats(context.Background())
	require.NoError(t, err)

	assert.True(t, stats.TotalRevenue.Equal(decimal.NewFromFloat(210.00)), "revenue: %s", stats.TotalRevenue)
	assert.True(t, stats.MonthlyRevenue.Equal(decimal.NewFromFloat(110.00)))
	assert.InDelta(t, 10.0, stats.RevenueGrowth, 0.001)
	assert.Equal(t, int64(2), stats.TotalOrders)
	assert.Equal(t, int64(1), stats.PendingOrders)
	assert.InDelta(t, 0.0, stats.OrderGrowth, 0.001)
	assert.Equal(t, int64(2), stats.ActiveCustomers)
	assert.Equal(t, int64(1), stats.LowStockCount)
	assert.Equal(t, int64(1), stats.ExpiringCount)
}

func TestGrowthPercentZeroPreviousMonth(t *testing.T) {
	assert.Equal(t, 0.0, growthPercent(decimal.NewFromInt(100), decimal.Zero))
}
