package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/pharmadist/pharmadist-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order represents a sales order placed by a customer.
// CustomerName is a snapshot taken when the order is created and is never
// synced with later customer edits.
type Order struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID    uuid.UUID          `gorm:"type:uuid;not null;index" json:"customer_id"`
	CustomerName  string             `gorm:"size:255;not null" json:"customer_name"`
	OrderDate     time.Time          `gorm:"type:date;not null" json:"order_date"`
	RequiredDate  time.Time          `gorm:"type:date;not null" json:"required_date"`
	Status        enum.OrderStatus   `gorm:"size:50;default:'pending'" json:"status"`
	PaymentStatus enum.PaymentStatus `gorm:"size:50;default:'pending'" json:"payment_status"`
	Priority      enum.OrderPriority `gorm:"size:50;default:'medium'" json:"priority"`
	TotalAmount   decimal.Decimal    `gorm:"type:numeric(12,2);default:0" json:"total_amount"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	DeletedAt     gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Customer *Customer   `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Items    []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// OrderItem represents a line item on an order. ProductName, BatchNumber and
// ExpiryDate are snapshots copied from the product at selection time; later
// product edits do not change placed items.
type OrderItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id"`
	ProductName string          `gorm:"size:255;not null" json:"product_name"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"unit_price"`
	TotalPrice  decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total_price"`
	BatchNumber string          `gorm:"size:100" json:"batch_number"`
	ExpiryDate  time.Time       `gorm:"type:date" json:"expiry_date"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// BeforeCreate generates a UUID before creating a new order item
func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}
