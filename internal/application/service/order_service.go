package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pharmadist/pharmadist-api/internal/domain/billing"
	"github.com/pharmadist/pharmadist-api/internal/domain/entity"
	"github.com/pharmadist/pharmadist-api/internal/domain/enum"
	"github.com/pharmadist/pharmadist-api/internal/domain/repository"
	"github.com/pharmadist/pharmadist-api/internal/domain/validation"
	"github.com/pharmadist/pharmadist-api/pkg/apperror"
	"github.com/shopspring/decimal"
)

// OrderService sequences the order create lifecycle: load the customer and
// products, snapshot denormalized fields, derive totals, validate, persist.
type OrderService struct {
	orderRepo    repository.OrderRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	policy       billing.Policy
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	policy billing.Policy,
) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		policy:       policy,
	}
}

// OrderItemInput represents an item in an order
type OrderItemInput struct {
	ProductID uuid.UUID
	Quantity  int
	// UnitPrice overrides the catalogue price when non-nil (negotiated rates)
	UnitPrice *decimal.Decimal
}

// CreateOrderInput represents the create order input
type CreateOrderInput struct {
	CustomerID   uuid.UUID
	OrderDate    time.Time
	RequiredDate time.Time
	Priority     enum.OrderPriority
	Items        []OrderItemInput
}

// CreateOrder creates a new order with its items
func (s *OrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error) {
	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	// Batch fetch all products in one query (prevents N+1)
	productIDs := make([]uuid.UUID, len(input.Items))
	for i, item := range input.Items {
		productIDs[i] = item.ProductID
	}

	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	productMap := make(map[uuid.UUID]*entity.Product, len(products))
	for i := range products {
		productMap[products[i].ID] = &products[i]
	}

	items := make([]entity.OrderItem, 0, len(input.Items))
	for _, in := range input.Items {
		product, exists := productMap[in.ProductID]
		if !exists {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Product %s", in.ProductID))
		}

		unitPrice := product.UnitPrice
		if in.UnitPrice != nil {
			unitPrice = *in.UnitPrice
		}

		// Name, batch and expiry are snapshots: later product edits must
		// not rewrite historical orders
		items = append(items, entity.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			BatchNumber: product.BatchNumber,
			ExpiryDate:  product.ExpiryDate,
			Quantity:    in.Quantity,
			UnitPrice:   unitPrice,
			TotalPrice:  billing.ItemTotal(in.Quantity, unitPrice),
		})
	}

	priority := input.Priority
	if priority == "" {
		priority = enum.OrderPriorityMedium
	}

	order := &entity.Order{
		CustomerID:    customer.ID,
		CustomerName:  customer.Name,
		OrderDate:     input.OrderDate,
		RequiredDate:  input.RequiredDate,
		Status:        enum.OrderStatusPending,
		PaymentStatus: enum.PaymentStatusPending,
		Priority:      priority,
		TotalAmount:   billing.OrderTotal(items),
		Items:         items,
	}

	if err := validation.Order(order); err != nil {
		return nil, err
	}

	if err := s.orderRepo.CreateWithItems(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

// GetOrder retrieves an order with its items
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// ListOrders returns orders matching the filter with page-based pagination
func (s *OrderService) ListOrders(ctx context.Context, params *repository.OrderFilterParams) ([]entity.Order, int64, error) {
	return s.orderRepo.List(ctx, params)
}

// ListOrdersWithCursor returns orders using cursor-based pagination
func (s *OrderService) ListOrdersWithCursor(ctx context.Context, params *repository.OrderCursorFilterParams) ([]entity.Order, error) {
	return s.orderRepo.ListWithCursor(ctx, params)
}

// UpdateOrderStatus changes the status of an existing order. This is the
// only mutation exposed for persisted orders.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) (*entity.Order, error) {
	if !status.Valid() {
		return nil, apperror.NewBadRequestError("Invalid order status")
	}

	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	order.Status = status
	return order, nil
}

// DeleteOrder removes an order
func (s *OrderService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Order")
	}
	return s.orderRepo.Delete(ctx, id)
}
