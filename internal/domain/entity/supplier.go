package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/pharmadist/pharmadist-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Supplier represents a manufacturer or distributor the business buys from
type Supplier struct {
	ID            uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	Name          string              `gorm:"size:255;not null" json:"name"`
	ContactPerson string              `gorm:"size:255" json:"contact_person"`
	Email         string              `gorm:"size:255" json:"email"`
	Phone         string              `gorm:"size:50" json:"phone"`
	Address       string              `gorm:"type:text" json:"address"`
	LicenseNumber string              `gorm:"size:100" json:"license_number"`
	Rating        int                 `gorm:"default:0" json:"rating"`
	PaymentTerms  string              `gorm:"size:100" json:"payment_terms"`
	Status        enum.SupplierStatus `gorm:"size:50;default:'active'" json:"status"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
	DeletedAt     gorm.DeletedAt      `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new supplier
func (s *Supplier) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Supplier model
func (Supplier) TableName() string {
	return "suppliers"
}
