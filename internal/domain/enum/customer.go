package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// CustomerType represents the kind of institution a customer is
type CustomerType string

const (
	CustomerTypeHospital   CustomerType = "hospital"
	CustomerTypePharmacy   CustomerType = "pharmacy"
	CustomerTypeClinic     CustomerType = "clinic"
	CustomerTypeWholesaler CustomerType = "wholesaler"
)

func (t CustomerType) String() string {
	return string(t)
}

func (t CustomerType) Valid() bool {
	switch t {
	case CustomerTypeHospital, CustomerTypePharmacy, CustomerTypeClinic, CustomerTypeWholesaler:
		return true
	}
	return false
}

func (t CustomerType) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

func (t *CustomerType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*t = CustomerType(str)
	return nil
}

func (t CustomerType) Value() (driver.Value, error) {
	return string(t), nil
}

func (t *CustomerType) Scan(value interface{}) error {
	if value == nil {
		*t = CustomerTypePharmacy
		return nil
	}
	switch v := value.(type) {
	case string:
		*t = CustomerType(v)
	case []byte:
		*t = CustomerType(string(v))
	}
	return nil
}

// CustomerStatus represents the account status of a customer
type CustomerStatus string

const (
	CustomerStatusActive    CustomerStatus = "active"
	CustomerStatusInactive  CustomerStatus = "inactive"
	CustomerStatusSuspended CustomerStatus = "suspended"
)

func (s CustomerStatus) String() string {
	return string(s)
}

func (s CustomerStatus) Valid() bool {
	switch s {
	case CustomerStatusActive, CustomerStatusInactive, CustomerStatusSuspended:
		return true
	}
	return false
}

func (s CustomerStatus) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *CustomerStatus) Scan(value interface{}) error {
	if value == nil {
		*s = CustomerStatusActive
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = CustomerStatus(v)
	case []byte:
		*s = CustomerStatus(string(v))
	}
	return nil
}
