package service

import (
	"context"
	"time"

	"github.com/pharmadist/pharmadist-api/internal/domain/enum"
	"github.com/pharmadist/pharmadist-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// expiryWindowDays is how far ahead the dashboard looks for expiring stock
const expiryWindowDays = 90

// DashboardService provides dashboard statistics
type DashboardService struct {
	orderRepo    repository.OrderRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	invoiceRepo  repository.InvoiceRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	invoiceRepo repository.InvoiceRepository,
) *DashboardService {
	return &DashboardService{
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		invoiceRepo:  invoiceRepo,
	}
}

// DashboardStats represents dashboard statistics
type DashboardStats struct {
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	MonthlyRevenue  decimal.Decimal `json:"monthly_revenue"`
	RevenueGrowth   float64         `json:"revenue_growth"`
	TotalOrders     int64           `json:"total_orders"`
	PendingOrders   int64           `json:"pending_orders"`
	OrderGrowth     float64         `json:"order_growth"`
	ActiveCustomers int64           `json:"active_customers"`
	LowStockCount   int64           `json:"low_stock_count"`
	ExpiringCount   int64           `json:"expiring_count"`
}

// GetDashboardStats returns dashboard statistics
func (s *DashboardService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	revenue, err := s.invoiceRepo.TotalRevenue(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalRevenue = revenue

	now := time.Now()
	thisMonth, err := s.invoiceRepo.MonthlyRevenue(ctx, now.Year(), int(now.Month()))
	if err != nil {
		return nil, err
	}
	stats.MonthlyRevenue = thisMonth

	// anchor on the first of the month so day-31 dates don't normalize
	// into the wrong month
	prev := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -1, 0)
	lastMonth, err := s.invoiceRepo.MonthlyRevenue(ctx, prev.Year(), int(prev.Month()))
	if err != nil {
		return nil, err
	}
	stats.RevenueGrowth = growthPercent(thisMonth, lastMonth)

	totalOrders, err := s.orderRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalOrders = totalOrders

	pending, err := s.orderRepo.CountByStatus(ctx, enum.OrderStatusPending)
	if err != nil {
		return nil, err
	}
	stats.PendingOrders = pending

	thisMonthOrders, err := s.orderRepo.MonthlyCount(ctx, now.Year(), int(now.Month()))
	if err != nil {
		return nil, err
	}
	lastMonthOrders, err := s.orderRepo.MonthlyCount(ctx, prev.Year(), int(prev.Month()))
	if err != nil {
		return nil, err
	}
	stats.OrderGrowth = growthPercent(
		decimal.NewFromInt(thisMonthOrders), decimal.NewFromInt(lastMonthOrders))

	active, err := s.customerRepo.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	stats.ActiveCustomers = active

	lowStock, err := s.productRepo.GetLowStock(ctx)
	if err != nil {
		return nil, err
	}
	stats.LowStockCount = int64(len(lowStock))

	expiring, err := s.productRepo.GetExpiringSoon(ctx, expiryWindowDays*24*time.Hour)
	if err != nil {
		return nil, err
	}
	stats.ExpiringCount = int64(len(expiring))

	return stats, nil
}

// growthPercent returns the month-over-month change in percent. A zero
// previous month yields zero rather than a division blowup.
func growthPercent(current, previous decimal.Decimal) float64 {
	if previous.IsZero() {
		return 0
	}
	growth, _ := current.Sub(previous).
		Div(previous).
		Mul(decimal.NewFromInt(100)).
		Round(1).
		Float64()
	return growth
}
