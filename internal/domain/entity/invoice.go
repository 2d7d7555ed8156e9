package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/pharmadist/pharmadist-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Invoice represents a bill raised against an order. CustomerName and the
// invoice items are snapshots taken from the order at creation time; edits to
// the source order do not propagate.
type Invoice struct {
	ID           uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	OrderID      uuid.UUID          `gorm:"type:uuid;not null;index" json:"order_id"`
	CustomerID   uuid.UUID          `gorm:"type:uuid;not null;index" json:"customer_id"`
	CustomerName string             `gorm:"size:255;not null" json:"customer_name"`
	InvoiceDate  time.Time          `gorm:"type:date;not null" json:"invoice_date"`
	DueDate      time.Time          `gorm:"type:date;not null" json:"due_date"`
	Subtotal     decimal.Decimal    `gorm:"type:numeric(12,2);not null" json:"subtotal"`
	TaxAmount    decimal.Decimal    `gorm:"type:numeric(12,2);not null" json:"tax_amount"`
	TotalAmount  decimal.Decimal    `gorm:"type:numeric(12,2);not null" json:"total_amount"`
	PaidAmount   decimal.Decimal    `gorm:"type:numeric(12,2);default:0" json:"paid_amount"`
	Status       enum.InvoiceStatus `gorm:"size:50;default:'draft'" json:"status"`
	PaymentTerms string             `gorm:"size:50;default:'Net 30'" json:"payment_terms"`
	Notes        string             `gorm:"type:text" json:"notes"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
	DeletedAt    gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Order    *Order        `gorm:"foreignKey:OrderID" json:"order,omitempty"`
	Customer *Customer     `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Items    []InvoiceItem `gorm:"foreignKey:InvoiceID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new invoice
func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

// InvoiceItem is a line copied verbatim from the source order item
type InvoiceItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"invoice_id"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id"`
	ProductName string          `gorm:"size:255;not null" json:"product_name"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"unit_price"`
	TotalPrice  decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total_price"`
	CreatedAt   time.Time       `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new invoice item
func (i *InvoiceItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InvoiceItem model
func (InvoiceItem) TableName() string {
	return "invoice_items"
}
