package request

// CustomerRequest represents a customer create/update request
type CustomerRequest struct {
	Name               string  `json:"name"`
	Type               string  `json:"type"`
	ContactPerson      string  `json:"contact_person"`
	Email              string  `json:"email"`
	Phone              string  `json:"phone"`
	Address            string  `json:"address"`
	LicenseNumber      string  `json:"license_number"`
	CreditLimit        float64 `json:"credit_limit"`
	OutstandingBalance float64 `json:"outstanding_balance"`
	Status             string  `json:"status"`
}

// SupplierRequest represents a supplier create/update request
type SupplierRequest struct {
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	LicenseNumber string `json:"license_number"`
	Rating        int    `json:"rating"`
	PaymentTerms  string `json:"payment_terms"`
	Status        string `json:"status"`
}
