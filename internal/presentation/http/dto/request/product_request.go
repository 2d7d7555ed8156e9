package request

// CreateProductRequest represents a product creation request.
// Field checks beyond shape live in the validation package so the error
// messages match across create and update.
type CreateProductRequest struct {
	Name          string  `json:"name"`
	GenericName   string  `json:"generic_name"`
	Manufacturer  string  `json:"manufacturer"`
	Category      string  `json:"category"`
	SKU           string  `json:"sku"`
	BatchNumber   string  `json:"batch_number"`
	ExpiryDate    string  `json:"expiry_date"` // YYYY-MM-DD
	Quantity      int     `json:"quantity"`
	UnitPrice     float64 `json:"unit_price"`
	ReorderLevel  int     `json:"reorder_level"`
	Status        string  `json:"status"`
	LicenseNumber string  `json:"license_number"`
	DrugCode      string  `json:"drug_code"`
	Schedule      string  `json:"schedule"`
}

// ProductFilterRequest represents product filter parameters
type ProductFilterRequest struct {
	Search    string `form:"search"`
	Category  string `form:"category"`
	Status    string `form:"status"`
	LowStock  bool   `form:"low_stock"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
