package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/pharmadist/pharmadist-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RegulatoryInfo holds the pharmaceutical licensing details of a product
type RegulatoryInfo struct {
	LicenseNumber string `gorm:"size:100;column:license_number" json:"license_number"`
	DrugCode      string `gorm:"size:100;column:drug_code" json:"drug_code"`
	Schedule      string `gorm:"size:50;column:schedule" json:"schedule"`
}

// Product represents a pharmaceutical product in the catalogue
type Product struct {
	ID           uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	Name         string             `gorm:"size:255;not null" json:"name"`
	GenericName  string             `gorm:"size:255" json:"generic_name"`
	Manufacturer string             `gorm:"size:255" json:"manufacturer"`
	Category     string             `gorm:"size:255" json:"category"`
	SKU          string             `gorm:"size:100;unique;not null;column:sku" json:"sku"`
	BatchNumber  string             `gorm:"size:100" json:"batch_number"`
	ExpiryDate   time.Time          `gorm:"type:date" json:"expiry_date"`
	Quantity     int                `gorm:"default:0" json:"quantity"`
	UnitPrice    decimal.Decimal    `gorm:"type:numeric(12,2);default:0" json:"unit_price"`
	ReorderLevel int                `gorm:"default:0" json:"reorder_level"`
	Status       enum.ProductStatus `gorm:"size:50;default:'active'" json:"status"`
	Regulatory   RegulatoryInfo     `gorm:"embedded" json:"regulatory_info"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
	DeletedAt    gorm.DeletedAt     `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// IsLowStock reports whether the product has fallen to its reorder level
func (p *Product) IsLowStock() bool {
	return p.Quantity <= p.ReorderLevel
}

// ExpiresWithin reports whether the product expires within d from now.
// Already-expired stock is excluded.
func (p *Product) ExpiresWithin(d time.Duration) bool {
	until := time.Until(p.ExpiryDate)
	return until > 0 && until <= d
}
