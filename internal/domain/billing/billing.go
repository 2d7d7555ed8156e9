// Package billing computes the derived money and date fields of orders and
// invoices. All functions are pure: they work on the values passed in and
// keep no state, so a caller can recompute on every input change.
package billing

import (
	"regexp"
	"strconv"
	"time"

	"github.com/pharmadist/pharmadist-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Policy holds the billing values that used to be hardcoded in the forms.
// Tax applies uniformly; per-jurisdiction rates are a known limitation.
type Policy struct {
	TaxRate         decimal.Decimal // e.g. 0.10 for 10%
	DefaultTermDays int             // fallback when payment terms carry no day count
}

// DefaultPolicy returns the historical policy: 10% tax, Net 30 fallback.
func DefaultPolicy() Policy {
	return Policy{
		TaxRate:         decimal.NewFromFloat(0.10),
		DefaultTermDays: 30,
	}
}

// ItemTotal computes the line total for a quantity at a unit price
func ItemTotal(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// OrderTotal sums the line totals of the given items. An empty list yields
// zero; rejecting empty orders is the validator's job, not ours.
func OrderTotal(items []entity.OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.TotalPrice)
	}
	return total
}

// Financials are the derived money fields of an invoice
type Financials struct {
	Subtotal    decimal.Decimal
	TaxAmount   decimal.Decimal
	TotalAmount decimal.Decimal
}

// InvoiceFinancials derives subtotal, tax and total from an order total
func (p Policy) InvoiceFinancials(orderTotal decimal.Decimal) Financials {
	subtotal := orderTotal
	tax := subtotal.Mul(p.TaxRate)
	return Financials{
		Subtotal:    subtotal,
		TaxAmount:   tax,
		TotalAmount: subtotal.Add(tax),
	}
}

var netDaysRe = regexp.MustCompile(`(\d+)`)

// TermDays extracts the day count from payment terms such as "Net 30".
// Terms without a number ("COD", free text, empty) fall back to the
// policy default.
func (p Policy) TermDays(paymentTerms string) int {
	m := netDaysRe.FindString(paymentTerms)
	if m == "" {
		return p.DefaultTermDays
	}
	days, err := strconv.Atoi(m)
	if err != nil {
		return p.DefaultTermDays
	}
	return days
}

// DueDate derives an invoice due date from its date and payment terms
func (p Policy) DueDate(invoiceDate time.Time, paymentTerms string) time.Time {
	return invoiceDate.AddDate(0, 0, p.TermDays(paymentTerms))
}
