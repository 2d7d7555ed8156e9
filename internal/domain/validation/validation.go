// Package validation checks entities before they reach the repositories.
// Checks are fail-fast: the first violated rule is returned as an
// unprocessable entity error and nothing is written.
package validation

import (
	"regexp"

	"github.com/google/uuid"
	"github.com/pharmadist/pharmadist-api/internal/domain/entity"
	"github.com/pharmadist/pharmadist-api/pkg/apperror"
	"github.com/shopspring/decimal"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether s has a basic local@domain.tld shape
func ValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

// Product validates a product before create or update
func Product(p *entity.Product) error {
	switch {
	case p.Name == "":
		return apperror.NewValidationError("Product name is required")
	case p.SKU == "":
		return apperror.NewValidationError("SKU is required")
	case p.Quantity < 0:
		return apperror.NewValidationError("Quantity must be a non-negative number")
	case p.UnitPrice.IsNegative():
		return apperror.NewValidationError("Unit price must be a non-negative number")
	case p.ExpiryDate.IsZero():
		return apperror.NewValidationError("Valid expiry date is required")
	case !p.Status.Valid():
		return apperror.NewValidationError("Invalid product status")
	}
	return nil
}

// Customer validates a customer before create or update
func Customer(c *entity.Customer) error {
	switch {
	case c.Name == "":
		return apperror.NewValidationError("Customer name is required")
	case c.ContactPerson == "":
		return apperror.NewValidationError("Contact person is required")
	case !ValidEmail(c.Email):
		return apperror.NewValidationError("Valid email is required")
	case c.Phone == "":
		return apperror.NewValidationError("Phone number is required")
	case c.Address == "":
		return apperror.NewValidationError("Address is required")
	case c.LicenseNumber == "":
		return apperror.NewValidationError("License number is required")
	case c.CreditLimit.IsNegative():
		return apperror.NewValidationError("Credit limit must be non-negative")
	case c.OutstandingBalance.IsNegative():
		return apperror.NewValidationError("Outstanding balance must be non-negative")
	case !c.Type.Valid():
		return apperror.NewValidationError("Invalid customer type")
	case !c.Status.Valid():
		return apperror.NewValidationError("Invalid customer status")
	}
	return nil
}

// Supplier validates a supplier before create or update
func Supplier(s *entity.Supplier) error {
	switch {
	case s.Name == "":
		return apperror.NewValidationError("Supplier name is required")
	case s.ContactPerson == "":
		return apperror.NewValidationError("Contact person is required")
	case !ValidEmail(s.Email):
		return apperror.NewValidationError("Valid email is required")
	case s.Phone == "":
		return apperror.NewValidationError("Phone number is required")
	case s.Address == "":
		return apperror.NewValidationError("Address is required")
	case s.LicenseNumber == "":
		return apperror.NewValidationError("License number is required")
	case s.Rating < 0 || s.Rating > 5:
		return apperror.NewValidationError("Rating must be between 0 and 5")
	case s.PaymentTerms == "":
		return apperror.NewValidationError("Payment terms are required")
	case !s.Status.Valid():
		return apperror.NewValidationError("Invalid supplier status")
	}
	return nil
}

// Order validates an assembled order, items included. The total is checked
// independently even though non-negative items imply it.
func Order(o *entity.Order) error {
	switch {
	case o.CustomerID == uuid.Nil:
		return apperror.NewValidationError("Please select a customer.")
	case o.OrderDate.IsZero():
		return apperror.NewValidationError("Please select an order date.")
	case o.RequiredDate.IsZero():
		return apperror.NewValidationError("Please select a required date.")
	case len(o.Items) == 0:
		return apperror.NewValidationError("Please add at least one order item.")
	}
	for _, item := range o.Items {
		switch {
		case item.ProductID == uuid.Nil:
			return apperror.NewValidationError("Please select a product for all items.")
		case item.Quantity <= 0:
			return apperror.NewValidationError("Quantity must be greater than 0 for all items.")
		case item.UnitPrice.IsNegative():
			return apperror.NewValidationError("Unit price cannot be negative.")
		case item.TotalPrice.IsNegative():
			return apperror.NewValidationError("Total price cannot be negative.")
		}
	}
	if o.TotalAmount.IsNegative() {
		return apperror.NewValidationError("Total amount must be non-negative")
	}
	return nil
}

// Invoice validates an assembled invoice before it is written
func Invoice(i *entity.Invoice) error {
	switch {
	case i.OrderID == uuid.Nil:
		return apperror.NewValidationError("Please select an order.")
	case i.InvoiceDate.IsZero():
		return apperror.NewValidationError("Please select an invoice date.")
	case i.DueDate.IsZero():
		return apperror.NewValidationError("Please select a due date.")
	case i.Subtotal.Sign() <= 0:
		return apperror.NewValidationError("Subtotal must be greater than 0.")
	case i.TotalAmount.Sign() <= 0:
		return apperror.NewValidationError("Total amount must be greater than 0.")
	case i.PaidAmount.IsNegative():
		return apperror.NewValidationError("Paid amount cannot be negative.")
	case i.PaidAmount.GreaterThan(i.TotalAmount):
		return apperror.NewValidationError("Paid amount cannot exceed total amount")
	}
	return nil
}

// PaidAmount validates the narrow paid-amount update path against the
// invoice's existing total
func PaidAmount(paidAmount, totalAmount decimal.Decimal) error {
	switch {
	case paidAmount.IsNegative():
		return apperror.NewValidationError("Paid amount cannot be negative.")
	case paidAmount.GreaterThan(totalAmount):
		return apperror.NewValidationError("Paid amount cannot exceed total amount")
	}
	return nil
}
