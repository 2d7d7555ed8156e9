package validation

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pharmadist/pharmadist-api/internal/domain/entity"
	"github.com/pharmadist/pharmadist-api/internal/domain/enum"
	"github.com/pharmadist/pharmadist-api/pkg/apperror"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCustomer() *entity.Customer {
	return &entity.Customer{
		Name:               "City Hospital",
		Type:               enum.CustomerTypeHospital,
		ContactPerson:      "Jane Doe",
		Email:              "a@b.co",
		Phone:              "555-0100",
		Address:            "1 Main St",
		LicenseNumber:      "LIC-100",
		CreditLimit:        decimal.NewFromInt(5000),
		OutstandingBalance: decimal.Zero,
		Status:             enum.CustomerStatusActive,
	}
}

func validSupplier() *entity.Supplier {
	return &entity.Supplier{
		Name:          "MediSupply Co",
		ContactPerson: "John Roe",
		Email:         "sales@medisupply.com",
		Phone:         "555-0200",
		Address:       "2 Dock Rd",
		LicenseNumber: "SUP-200",
		Rating:        4,
		PaymentTerms:  "Net 30",
		Status:        enum.SupplierStatusActive,
	}
}

func validOrder() *entity.Order {
	return &entity.Order{
		CustomerID:   uuid.New(),
		CustomerName: "City Hospital",
		OrderDate:    time.Now(),
		RequiredDate: time.Now().AddDate(0, 0, 7),
		Status:       enum.OrderStatusPending,
		TotalAmount:  decimal.NewFromFloat(25.00),
		Items: []entity.OrderItem{
			{
				ProductID:  uuid.New(),
				Quantity:   10,
				UnitPrice:  decimal.NewFromFloat(2.50),
				TotalPrice: decimal.NewFromFloat(25.00),
			},
		},
	}
}

func validInvoice() *entity.Invoice {
	return &entity.Invoice{
		OrderID:     uuid.New(),
		CustomerID:  uuid.New(),
		InvoiceDate: time.Now(),
		DueDate:     time.Now().AddDate(0, 0, 30),
		Subtotal:    decimal.NewFromFloat(25.00),
		TaxAmount:   decimal.NewFromFloat(2.50),
		TotalAmount: decimal.NewFromFloat(27.50),
		PaidAmount:  decimal.Zero,
		Status:      enum.InvoiceStatusDraft,
	}
}

func assertValidationMessage(t *testing.T, err error, want string) {
	t.Helper()
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 422, appErr.Code)
	assert.Equal(t, want, appErr.Message)
}

func TestCustomerValid(t *testing.T) {
	assert.NoError(t, Customer(validCustomer()))
}

func TestCustomerEmail(t *testing.T) {
	c := validCustomer()
	c.Email = "not-an-email"
	err := Customer(c)
	assertValidationMessage(t, err, "Valid email is required")
	assert.Contains(t, err.Error(), "email")
}

func TestCustomerFailFast(t *testing.T) {
	c := validCustomer()
	c.Name = ""
	c.Email = "bad"
	// only the first violated rule is reported
	assertValidationMessage(t, Customer(c), "Customer name is required")
}

func TestCustomerNegativeCreditLimit(t *testing.T) {
	c := validCustomer()
	c.CreditLimit = decimal.NewFromInt(-1)
	assertValidationMessage(t, Customer(c), "Credit limit must be non-negative")
}

func TestSupplierValid(t *testing.T) {
	assert.NoError(t, Supplier(validSupplier()))
}

func TestSupplierRating(t *testing.T) {
	for _, rating := range []int{-1, 6} {
		s := validSupplier()
		s.Rating = rating
		assertValidationMessage(t, Supplier(s), "Rating must be between 0 and 5")
	}
	for _, rating := range []int{0, 5} {
		s := validSupplier()
		s.Rating = rating
		assert.NoError(t, Supplier(s))
	}
}

func TestSupplierPaymentTerms(t *testing.T) {
	s := validSupplier()
	s.PaymentTerms = ""
	assertValidationMessage(t, Supplier(s), "Payment terms are required")
}

func TestProduct(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*entity.Product)
		wantMsg string
	}{
		{"missing name", func(p *entity.Product) { p.Name = "" }, "Product name is required"},
		{"missing sku", func(p *entity.Product) { p.SKU = "" }, "SKU is required"},
		{"negative quantity", func(p *entity.Product) { p.Quantity = -1 }, "Quantity must be a non-negative number"},
		{"negative price", func(p *entity.Product) { p.UnitPrice = decimal.NewFromInt(-1) }, "Unit price must be a non-negative number"},
		{"zero expiry", func(p *entity.Product) { p.ExpiryDate = time.Time{} }, "Valid expiry date is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &entity.Product{
				Name:       "Amoxicillin 500mg",
				SKU:        "AMX-500",
				Quantity:   100,
				UnitPrice:  decimal.NewFromFloat(2.50),
				ExpiryDate: time.Now().AddDate(1, 0, 0),
				Status:     enum.ProductStatusActive,
			}
			tt.mutate(p)
			assertValidationMessage(t, Product(p), tt.wantMsg)
		})
	}
}

func TestOrderValid(t *testing.T) {
	assert.NoError(t, Order(validOrder()))
}

func TestOrderNoItems(t *testing.T) {
	o := validOrder()
	o.Items = nil
	assertValidationMessage(t, Order(o), "Please add at least one order item.")
}

func TestOrderItemChecks(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*entity.OrderItem)
		wantMsg string
	}{
		{"no product", func(i *entity.OrderItem) { i.ProductID = uuid.Nil }, "Please select a product for all items."},
		{"zero quantity", func(i *entity.OrderItem) { i.Quantity = 0 }, "Quantity must be greater than 0 for all items."},
		{"negative unit price", func(i *entity.OrderItem) { i.UnitPrice = decimal.NewFromInt(-1) }, "Unit price cannot be negative."},
		{"negative total", func(i *entity.OrderItem) { i.TotalPrice = decimal.NewFromInt(-1) }, "Total price cannot be negative."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := validOrder()
			tt.mutate(&o.Items[0])
			assertValidationMessage(t, Order(o), tt.wantMsg)
		})
	}
}

func TestOrderMissingCustomer(t *testing.T) {
	o := validOrder()
	o.CustomerID = uuid.Nil
	assertValidationMessage(t, Order(o), "Please select a customer.")
}

func TestInvoiceValid(t *testing.T) {
	assert.NoError(t, Invoice(validInvoice()))
}

func TestInvoicePaidExceedsTotal(t *testing.T) {
	i := validInvoice()
	i.PaidAmount = decimal.NewFromFloat(30.00)
	assertValidationMessage(t, Invoice(i), "Paid amount cannot exceed total amount")
}

func TestInvoiceZeroSubtotal(t *testing.T) {
	i := validInvoice()
	i.Subtotal = decimal.Zero
	assertValidationMessage(t, Invoice(i), "Subtotal must be greater than 0.")
}

func TestPaidAmount(t *testing.T) {
	total := decimal.NewFromFloat(27.50)

	assert.NoError(t, PaidAmount(decimal.Zero, total))
	assert.NoError(t, PaidAmount(total, total))
	assertValidationMessage(t, PaidAmount(decimal.NewFromInt(-1), total), "Paid amount cannot be negative.")
	assertValidationMessage(t, PaidAmount(decimal.NewFromInt(28), total), "Paid amount cannot exceed total amount")
}
