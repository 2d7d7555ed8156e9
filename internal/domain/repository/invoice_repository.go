package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pharmadist/pharmadist-api/internal/domain/entity"
	"github.com/pharmadist/pharmadist-api/internal/domain/enum"
	"github.com/pharmadist/pharmadist-api/pkg/pagination"
	"github.com/shopspring/decimal"
)

// InvoiceRepository defines the interface for invoice data operations
type InvoiceRepository interface {
	// CreateWithItems persists the invoice and its item snapshots in one
	// transaction
	CreateWithItems(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	GetByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.Invoice, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *InvoiceFilterParams) ([]entity.Invoice, int64, error)
	// UpdateStatus updates the status and, when paidAmount is non-nil, the
	// paid amount. Other fields of an existing invoice are immutable.
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.InvoiceStatus, paidAmount *decimal.Decimal) error
	// TotalRevenue sums total_amount over all non-cancelled invoices
	TotalRevenue(ctx context.Context) (decimal.Decimal, error)
	// MonthlyRevenue sums total_amount for invoices dated in the given month
	MonthlyRevenue(ctx context.Context, year int, month int) (decimal.Decimal, error)
}

// InvoiceFilterParams contains filtering parameters for invoice queries
type InvoiceFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.InvoiceStatus
	CustomerID *uuid.UUID
	OrderID    *uuid.UUID
	SortBy     string
	SortOrder  string
}
