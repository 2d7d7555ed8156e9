package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pharmadist/pharmadist-api/internal/domain/entity"
	"github.com/pharmadist/pharmadist-api/internal/domain/enum"
	"github.com/pharmadist/pharmadist-api/internal/domain/repository"
	"github.com/pharmadist/pharmadist-api/pkg/pagination"
	"github.com/shopspring/decimal"
)

// In-memory repository fakes. Only the behavior the services under test
// exercise is implemented; everything else returns zero values.

type fakeCustomerRepo struct {
	customers map[uuid.UUID]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[uuid.UUID]*entity.Customer)}
}

func (f *fakeCustomerRepo) add(c *entity.Customer) *entity.Customer {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	f.customers[c.ID] = c
	return c
}

func (f *fakeCustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	f.add(customer)
	return nil
}

func (f *fakeCustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	return f.customers[id], nil
}

func (f *fakeCustomerRepo) GetByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	for _, c := range f.customers {
		if c.Email == email {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	f.customers[customer.ID] = customer
	return nil
}

func (f *fakeCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.customers, id)
	return nil
}

func (f *fakeCustomerRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error) {
	out := make([]entity.Customer, 0, len(f.customers))
	for _, c := range f.customers {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (f *fakeCustomerRepo) CountActive(ctx context.Context) (int64, error) {
	var n int64
	for _, c := range f.customers {
		if c.Status == enum.CustomerStatusActive {
			n++
		}
	}
	return n, nil
}

type fakeProductRepo struct {
	products map[uuid.UUID]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uuid.UUID]*entity.Product)}
}

func (f *fakeProductRepo) add(p *entity.Product) *entity.Product {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	f.products[p.ID] = p
	return p
}

func (f *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	f.add(product)
	return nil
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	return f.products[id], nil
}

func (f *fakeProductRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	out := make([]entity.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := f.products[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error {
	f.products[product.ID] = product
	return nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) List(ctx context.Context, params *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	out := make([]entity.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (f *fakeProductRepo) GetLowStock(ctx context.Context) ([]entity.Product, error) {
	var out []entity.Product
	for _, p := range f.products {
		if p.IsLowStock() {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) GetExpiringSoon(ctx context.Context, within time.Duration) ([]entity.Product, error) {
	var out []entity.Product
	for _, p := range f.products {
		if p.ExpiresWithin(within) {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) error {
	if p, ok := f.products[id]; ok {
		p.Quantity = quantity
	}
	return nil
}

type fakeOrderRepo struct {
	orders  map[uuid.UUID]*entity.Order
	creates int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uuid.UUID]*entity.Order)}
}

func (f *fakeOrderRepo) CreateWithItems(ctx context.Context, order *entity.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	f.orders[order.ID] = order
	f.creates++
	return nil
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return f.orders[id], nil
}

func (f *fakeOrderRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return f.orders[id], nil
}

func (f *fakeOrderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.orders, id)
	return nil
}

func (f *fakeOrderRepo) List(ctx context.Context, params *repository.OrderFilterParams) ([]entity.Order, int64, error) {
	out := make([]entity.Order, 0, len(f.orders))
	for _, o := range f.orders {
		out = append(out, *o)
	}
	return out, int64(len(out)), nil
}

func (f *fakeOrderRepo) ListWithCursor(ctx context.Context, params *repository.OrderCursorFilterParams) ([]entity.Order, error) {
	out := make([]entity.Order, 0, len(f.orders))
	for _, o := range f.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error {
	if o, ok := f.orders[id]; ok {
		o.Status = status
	}
	return nil
}

func (f *fakeOrderRepo) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status enum.PaymentStatus) error {
	if o, ok := f.orders[id]; ok {
		o.PaymentStatus = status
	}
	return nil
}

func (f *fakeOrderRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.orders)), nil
}

func (f *fakeOrderRepo) MonthlyCount(ctx context.Context, year int, month int) (int64, error) {
	var n int64
	for _, o := range f.orders {
		if o.OrderDate.Year() == year && int(o.OrderDate.Month()) == month {
			n++
		}
	}
	return n, nil
}

func (f *fakeOrderRepo) CountByStatus(ctx context.Context, status enum.OrderStatus) (int64, error) {
	var n int64
	for _, o := range f.orders {
		if o.Status == status {
			n++
		}
	}
	return n, nil
}

type fakeInvoiceRepo struct {
	invoices map[uuid.UUID]*entity.Invoice
	creates  int
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{invoices: make(map[uuid.UUID]*entity.Invoice)}
}

func (f *fakeInvoiceRepo) CreateWithItems(ctx context.Context, invoice *entity.Invoice) error {
	if invoice.ID == uuid.Nil {
		invoice.ID = uuid.New()
	}
	f.invoices[invoice.ID] = invoice
	f.creates++
	return nil
}

func (f *fakeInvoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	return f.invoices[id], nil
}

func (f *fakeInvoiceRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	return f.invoices[id], nil
}

func (f *fakeInvoiceRepo) GetByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.Invoice, error) {
	for _, inv := range f.invoices {
		if inv.OrderID == orderID {
			return inv, nil
		}
	}
	return nil, nil
}

func (f *fakeInvoiceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.invoices, id)
	return nil
}

func (f *fakeInvoiceRepo) List(ctx context.Context, params *repository.InvoiceFilterParams) ([]entity.Invoice, int64, error) {
	out := make([]entity.Invoice, 0, len(f.invoices))
	for _, inv := range f.invoices {
		out = append(out, *inv)
	}
	return out, int64(len(out)), nil
}

func (f *fakeInvoiceRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.InvoiceStatus, paidAmount *decimal.Decimal) error {
	if inv, ok := f.invoices[id]; ok {
		inv.Status = status
		if paidAmount != nil {
			inv.PaidAmount = *paidAmount
		}
	}
	return nil
}

func (f *fakeInvoiceRepo) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, inv := range f.invoices {
		if inv.Status != enum.InvoiceStatusCancelled {
			total = total.Add(inv.TotalAmount)
		}
	}
	return total, nil
}

func (f *fakeInvoiceRepo) MonthlyRevenue(ctx context.Context, year int, month int) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, inv := range f.invoices {
		if inv.Status == enum.InvoiceStatusCancelled {
			continue
		}
		if inv.InvoiceDate.Year() == year && int(inv.InvoiceDate.Month()) == month {
			total = total.Add(inv.TotalAmount)
		}
	}
	return total, nil
}
