package enum

import "database/sql/driver"

// UserRole represents the access level of a back-office user
type UserRole string

const (
	UserRoleAdmin    UserRole = "admin"
	UserRoleManager  UserRole = "manager"
	UserRoleOperator UserRole = "operator"
	UserRoleViewer   UserRole = "viewer"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) Valid() bool {
	switch r {
	case UserRoleAdmin, UserRoleManager, UserRoleOperator, UserRoleViewer:
		return true
	}
	return false
}

// CanWrite reports whether the role may create or modify records
func (r UserRole) CanWrite() bool {
	return r != UserRoleViewer
}

func (r UserRole) Value() (driver.Value, error) {
	return string(r), nil
}

func (r *UserRole) Scan(value interface{}) error {
	if value == nil {
		*r = UserRoleViewer
		return nil
	}
	switch v := value.(type) {
	case string:
		*r = UserRole(v)
	case []byte:
		*r = UserRole(string(v))
	}
	return nil
}
