package request

import "github.com/google/uuid"

// CreateInvoiceRequest represents an invoice creation request. Financials
// and item lines are derived from the referenced order, never supplied.
type CreateInvoiceRequest struct {
	OrderID      uuid.UUID `json:"order_id"`
	InvoiceDate  string    `json:"invoice_date"` // YYYY-MM-DD, defaults to today
	PaymentTerms string    `json:"payment_terms"`
	Notes        string    `json:"notes"`
}

// UpdateInvoiceStatusRequest represents the status/paid-amount update of
// an invoice
type UpdateInvoiceStatusRequest struct {
	Status     string   `json:"status" binding:"required"`
	PaidAmount *float64 `json:"paid_amount"`
}

// InvoiceFilterRequest represents invoice filter parameters
type InvoiceFilterRequest struct {
	Search     string `form:"search"`
	Status     string `form:"status"`
	CustomerID string `form:"customer_id"`
	OrderID    string `form:"order_id"`
	SortBy     string `form:"sort_by"`
	SortOrder  string `form:"sort_order"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}
