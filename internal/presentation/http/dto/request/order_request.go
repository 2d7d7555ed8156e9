package request

import "github.com/google/uuid"

// OrderItemRequest represents one line of an order creation request
type OrderItemRequest struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	UnitPrice *float64  `json:"unit_price"` // omit to use the catalogue price
}

// CreateOrderRequest represents an order creation request
type CreateOrderRequest struct {
	CustomerID   uuid.UUID          `json:"customer_id"`
	OrderDate    string             `json:"order_date"`    // YYYY-MM-DD
	RequiredDate string             `json:"required_date"` // YYYY-MM-DD
	Priority     string             `json:"priority"`
	Items        []OrderItemRequest `json:"items"`
}

// UpdateOrderStatusRequest represents the status-only update of an order
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderFilterRequest represents order filter parameters
type OrderFilterRequest struct {
	Search     string `form:"search"`
	Status     string `form:"status"`
	Priority   string `form:"priority"`
	CustomerID string `form:"customer_id"`
	StartDate  string `form:"start_date"`
	EndDate    string `form:"end_date"`
	SortBy     string `form:"sort_by"`
	SortOrder  string `form:"sort_order"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
	Cursor     string `form:"cursor"`
	Limit      int    `form:"limit"` // For cursor-based pagination
}
