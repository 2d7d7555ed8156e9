package service

import (
	"context"
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

// InvoiceService derives invoices from orders. Selecting an order is a
// one-way copy: customer, financials and item lines are snapshotted at
// creation and later order edits do not propagate.
type InvoiceService struct {
	invoiceRepo repository.InvoiceRepository
	orderRepo   repository.OrderRepository
	policy      billing.Policy
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	invoiceRepo repository.InvoiceRepository,
	orderRepo repository.OrderRepository,
	policy billing.Policy,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo: invoiceRepo,
		orderRepo:   orderRepo,
		policy:      policy,
	}
}

// CreateInvoiceInput represents the create invoice input
type CreateInvoiceInput struct {
	OrderID      uuid.UUID
	InvoiceDate  time.Time
	PaymentTerms string
	Notes        string
}

// CreateInvoice derives and persists an invoice from an existing order
func (s *InvoiceService) CreateInvoice(ctx context.Context, input *CreateInvoiceInput) (*entity.Invoice, error) {
	order, err := s.orderRepo.GetWithItems(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	existing, err := s.invoiceRepo.GetByOrderID(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Invoice already exists for this order")
	}

	invoiceDate := input.InvoiceDate
	if invoiceDate.IsZero() {
		invoiceDate = time.Now()
	}

	paymentTerms := input.PaymentTerms
	if paymentTerms == "" {
		paymentTerms = "Net 30"
	}

	fin := s.policy.InvoiceFinancials(order.TotalAmount)

	items := make([]entity.InvoiceItem, 0, len(order.Items))
	for _, line := range order.Items {
		items = append(items, entity.InvoiceItem{
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			TotalPrice:  line.TotalPrice,
		})
	}

	invoice := &entity.Invoice{
		OrderID:      order.ID,
		CustomerID:   order.CustomerID,
		CustomerName: order.CustomerName,
		InvoiceDate:  invoiceDate,
		DueDate:      s.policy.DueDate(invoiceDate, paymentTerms),
		Subtotal:     fin.Subtotal,
		TaxAmount:    fin.TaxAmount,
		TotalAmount:  fin.TotalAmount,
		PaidAmount:   decimal.Zero,
		Status:       enum.InvoiceStatusDraft,
		PaymentTerms: paymentTerms,
		Notes:        input.Notes,
		Items:        items,
	}

	if err := validation.Invoice(invoice); err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.CreateWithItems(ctx, invoice); err != nil {
		return nil, err
	}

	return invoice, nil
}

// GetInvoice retrieves an invoice with its items
func (s *InvoiceService) GetInvoice(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return invoice, nil
}

// ListInvoices returns invoices matching the filter
func (s *InvoiceService) ListInvoices(ctx context.Context, params *repository.InvoiceFilterParams) ([]entity.Invoice, int64, error) {
	return s.invoiceRepo.List(ctx, params)
}

// UpdateInvoiceStatus changes the status of an existing invoice and
// optionally records a payment. All other fields are immutable once the
// invoice is written.
func (s *InvoiceService) UpdateInvoiceStatus(ctx context.Context, id uuid.UUID, status enum.InvoiceStatus, paidAmount *decimal.Decimal) (*entity.Invoice, error) {
	if !status.Valid() {
		return nil, apperror.NewBadRequestError("Invalid invoice status")
	}

	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}

	if paidAmount != nil {
		if err := validation.PaidAmount(*paidAmount, invoice.TotalAmount); err != nil {
			return nil, err
		}
	}

	if err := s.invoiceRepo.UpdateStatus(ctx, id, status, paidAmount); err != nil {
		return nil, err
	}

	invoice.Status = status
	if paidAmount != nil {
		invoice.PaidAmount = *paidAmount

		// A recorded payment moves the source order's payment status along
		if err := s.orderRepo.UpdatePaymentStatus(ctx, invoice.OrderID, paymentStatusFor(*paidAmount, invoice.TotalAmount)); err != nil {
			return nil, err
		}
	}
	return invoice, nil
}

func paymentStatusFor(paid, total decimal.Decimal) enum.PaymentStatus {
	switch {
	case paid.GreaterThanOrEqual(total) && total.GreaterThan(decimal.Zero):
		return enum.PaymentStatusPaid
	case paid.GreaterThan(decimal.Zero):
		return enum.PaymentStatusPartial
	default:
		return enum.PaymentStatusPending
	}
}

// DeleteInvoice removes an invoice
func (s *InvoiceService) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if invoice == nil {
		return apperror.NewNotFoundError("Invoice")
	}
	return s.invoiceRepo.Delete(ctx, id)
}
