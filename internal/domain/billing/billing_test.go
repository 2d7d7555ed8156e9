package billing

import (
	"testing"
	"time"

	"github.com/pharmadist/pharmadist-api/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestItemTotal(t *testing.T) {
	tests := []struct {
		name      string
		quantity  int
		unitPrice string
		want      string
	}{
		{"whole units", 10, "2.50", "25.00"},
		{"single unit", 1, "19.99", "19.99"},
		{"zero quantity", 0, "5.00", "0.00"},
		{"zero price", 7, "0", "0"},
		{"fractional price", 3, "0.33", "0.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ItemTotal(tt.quantity, d(tt.unitPrice))
			assert.True(t, got.Equal(d(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestOrderTotal(t *testing.T) {
	items := []entity.OrderItem{
		{TotalPrice: d("25.00")},
		{TotalPrice: d("10.50")},
		{TotalPrice: d("0.99")},
	}
	assert.True(t, OrderTotal(items).Equal(d("36.49")))
}

func TestOrderTotalEmpty(t *testing.T) {
	assert.True(t, OrderTotal(nil).IsZero())
	assert.True(t, OrderTotal([]entity.OrderItem{}).IsZero())
}

func TestInvoiceFinancials(t *testing.T) {
	p := DefaultPolicy()

	fin := p.InvoiceFinancials(d("25.00"))
	assert.True(t, fin.Subtotal.Equal(d("25.00")))
	assert.True(t, fin.TaxAmount.Equal(d("2.50")), "tax: %s", fin.TaxAmount)
	assert.True(t, fin.TotalAmount.Equal(d("27.50")), "total: %s", fin.TotalAmount)
}

func TestInvoiceFinancialsTotalIsSubtotalPlusTax(t *testing.T) {
	p := DefaultPolicy()
	for _, amount := range []string{"0", "0.01", "99.99", "1234.56", "1000000"} {
		fin := p.InvoiceFinancials(d(amount))
		assert.True(t, fin.TotalAmount.Equal(fin.Subtotal.Add(fin.TaxAmount)))
		assert.True(t, fin.TotalAmount.Equal(d(amount).Mul(d("1.10"))))
	}
}

func TestInvoiceFinancialsCustomRate(t *testing.T) {
	p := Policy{TaxRate: d("0.16"), DefaultTermDays: 30}
	fin := p.InvoiceFinancials(d("100.00"))
	assert.True(t, fin.TaxAmount.Equal(d("16.00")))
	assert.True(t, fin.TotalAmount.Equal(d("116.00")))
}

func TestTermDays(t *testing.T) {
	p := DefaultPolicy()

	tests := []struct {
		terms string
		want  int
	}{
		{"Net 30", 30},
		{"Net 45", 45},
		{"Net 15", 15},
		{"Net 60", 60},
		{"Net60", 60},
		{"net 7", 7},
		{"COD", 30},
		{"garbage", 30},
		{"", 30},
		{"due on receipt", 30},
	}

	for _, tt := range tests {
		t.Run(tt.terms, func(t *testing.T) {
			assert.Equal(t, tt.want, p.TermDays(tt.terms))
		})
	}
}

func TestDueDate(t *testing.T) {
	p := DefaultPolicy()

	date := func(s string) time.Time {
		v, err := time.Parse("2006-01-02", s)
		require.NoError(t, err)
		return v
	}

	tests := []struct {
		name        string
		invoiceDate string
		terms       string
		want        string
	}{
		{"net 45 crosses month boundary", "2024-01-15", "Net 45", "2024-02-29"},
		{"net 30", "2024-01-01", "Net 30", "2024-01-31"},
		{"unparseable falls back to 30 days", "2024-01-15", "garbage", "2024-02-14"},
		{"cod falls back to 30 days", "2024-01-15", "COD", "2024-02-14"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.DueDate(date(tt.invoiceDate), tt.terms)
			assert.Equal(t, tt.want, got.Format("2006-01-02"))
		})
	}
}
