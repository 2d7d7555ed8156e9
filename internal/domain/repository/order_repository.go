package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pharmadist/pharmadist-api/internal/domain/entity"
	"github.com/pharmadist/pharmadist-api/internal/domain/enum"
	"github.com/pharmadist/pharmadist-api/pkg/pagination"
)

// OrderRepository defines the interface for order data operations
type OrderRepository interface {
	// CreateWithItems persists the order and its items in one transaction
	// so a failed item insert never leaves an orphaned order row
	CreateWithItems(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	// GetWithItems loads the order together with its items and customer
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *OrderFilterParams) ([]entity.Order, int64, error)
	ListWithCursor(ctx context.Context, params *OrderCursorFilterParams) ([]entity.Order, error)
	// UpdateStatus and UpdatePaymentStatus are the only mutations of an
	// existing order; full-field edits are intentionally not exposed
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status enum.PaymentStatus) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status enum.OrderStatus) (int64, error)
	// MonthlyCount counts orders placed within the given calendar month
	MonthlyCount(ctx context.Context, year int, month int) (int64, error)
}

// OrderFilterParams contains filtering parameters for order queries
type OrderFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.OrderStatus
	Priority   *enum.OrderPriority
	CustomerID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	SortBy     string
	SortOrder  string
}

// OrderCursorFilterParams contains cursor-based filtering for order queries
type OrderCursorFilterParams struct {
	Cursor     *pagination.CursorParams
	Search     string
	Status     *enum.OrderStatus
	CustomerID *uuid.UUID
}
