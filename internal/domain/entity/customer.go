package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/pharmadist/pharmadist-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Customer represents an institution that places orders
type Customer struct {
	ID                 uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	Name               string              `gorm:"size:255;not null" json:"name"`
	Type               enum.CustomerType   `gorm:"size:50;default:'pharmacy'" json:"type"`
	ContactPerson      string              `gorm:"size:255" json:"contact_person"`
	Email              string              `gorm:"size:255" json:"email"`
	Phone              string              `gorm:"size:50" json:"phone"`
	Address            string              `gorm:"type:text" json:"address"`
	LicenseNumber      string              `gorm:"size:100" json:"license_number"`
	CreditLimit        decimal.Decimal     `gorm:"type:numeric(12,2);default:0" json:"credit_limit"`
	OutstandingBalance decimal.Decimal     `gorm:"type:numeric(12,2);default:0" json:"outstanding_balance"`
	Status             enum.CustomerStatus `gorm:"size:50;default:'active'" json:"status"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
	DeletedAt          gorm.DeletedAt      `gorm:"index" json:"-"`

	// Relationships
	Orders   []Order   `gorm:"foreignKey:CustomerID" json:"-"`
	Invoices []Invoice `gorm:"foreignKey:CustomerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}
