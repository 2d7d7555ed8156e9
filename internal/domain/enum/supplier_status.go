package enum

import "database/sql/driver"

// SupplierStatus represents the account status of a supplier
type SupplierStatus string

const (
	SupplierStatusActive   SupplierStatus = "active"
	SupplierStatusInactive SupplierStatus = "inactive"
)

func (s SupplierStatus) String() string {
	return string(s)
}

func (s SupplierStatus) Valid() bool {
	return s == SupplierStatusActive || s == SupplierStatusInactive
}

func (s SupplierStatus) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *SupplierStatus) Scan(value interface{}) error {
	if value == nil {
		*s = SupplierStatusActive
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = SupplierStatus(v)
	case []byte:
		*s = SupplierStatus(string(v))
	}
	return nil
}
