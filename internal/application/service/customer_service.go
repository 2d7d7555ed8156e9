package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pharmadist/pharmadist-api/internal/domain/entity"
	"github.com/pharmadist/pharmadist-api/internal/domain/enum"
	"github.com/pharmadist/pharmadist-api/internal/domain/repository"
	"github.com/pharmadist/pharmadist-api/internal/domain/validation"
	"github.com/pharmadist/pharmadist-api/pkg/apperror"
	"github.com/pharmadist/pharmadist-api/pkg/pagination"
	"github.com/shopspring/decimal"
)

// CustomerService handles customer operations
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// CustomerInput represents the create/update customer input
type CustomerInput struct {
	Name               string
	Type               enum.CustomerType
	ContactPerson      string
	Email              string
	Phone              string
	Address            string
	LicenseNumber      string
	CreditLimit        decimal.Decimal
	OutstandingBalance decimal.Decimal
	Status             enum.CustomerStatus
}

func (in *CustomerInput) toEntity() *entity.Customer {
	c := &entity.Customer{
		Name:               in.Name,
		Type:               in.Type,
		ContactPerson:      in.ContactPerson,
		Email:              in.Email,
		Phone:              in.Phone,
		Address:            in.Address,
		LicenseNumber:      in.LicenseNumber,
		CreditLimit:        in.CreditLimit,
		OutstandingBalance: in.OutstandingBalance,
		Status:             in.Status,
	}
	if c.Type == "" {
		c.Type = enum.CustomerTypePharmacy
	}
	if c.Status == "" {
		c.Status = enum.CustomerStatusActive
	}
	return c
}

// CreateCustomer validates and persists a new customer
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CustomerInput) (*entity.Customer, error) {
	customer := input.toEntity()

	if err := validation.Customer(customer); err != nil {
		return nil, err
	}

	existing, err := s.customerRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Customer with this email already exists")
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// UpdateCustomer validates and persists changes to an existing customer
func (s *CustomerService) UpdateCustomer(ctx context.Context, id uuid.UUID, input *CustomerInput) (*entity.Customer, error) {
	customer, err := s.GetCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := input.toEntity()
	if err := validation.Customer(updated); err != nil {
		return nil, err
	}

	if input.Email != customer.Email {
		existing, err := s.customerRepo.GetByEmail(ctx, input.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("Customer with this email already exists")
		}
	}

	updated.ID = customer.ID
	updated.CreatedAt = customer.CreatedAt
	if err := s.customerRepo.Update(ctx, updated); err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteCustomer removes a customer
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return apperror.NewNotFoundError("Customer")
	}
	return s.customerRepo.Delete(ctx, id)
}

// ListCustomers returns customers matching the search with pagination
func (s *CustomerService) ListCustomers(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error) {
	return s.customerRepo.List(ctx, params, search)
}

// SupplierService handles supplier operations
type SupplierService struct {
	supplierRepo repository.SupplierRepository
}

// NewSupplierService creates a new supplier service
func NewSupplierService(supplierRepo repository.SupplierRepository) *SupplierService {
	return &SupplierService{supplierRepo: supplierRepo}
}

// SupplierInput represents the create/update supplier input
type SupplierInput struct {
	Name          string
	ContactPerson string
	Email         string
	Phone         string
	Address       string
	LicenseNumber string
	Rating        int
	PaymentTerms  string
	Status        enum.SupplierStatus
}

func (in *SupplierInput) toEntity() *entity.Supplier {
	s := &entity.Supplier{
		Name:          in.Name,
		ContactPerson: in.ContactPerson,
		Email:         in.Email,
		Phone:         in.Phone,
		Address:       in.Address,
		LicenseNumber: in.LicenseNumber,
		Rating:        in.Rating,
		PaymentTerms:  in.PaymentTerms,
		Status:        in.Status,
	}
	if s.Status == "" {
		s.Status = enum.SupplierStatusActive
	}
	return s
}

// CreateSupplier validates and persists a new supplier
func (s *SupplierService) CreateSupplier(ctx context.Context, input *SupplierInput) (*entity.Supplier, error) {
	supplier := input.toEntity()

	if err := validation.Supplier(supplier); err != nil {
		return nil, err
	}

	existing, err := s.supplierRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Supplier with this email already exists")
	}

	if err := s.supplierRepo.Create(ctx, supplier); err != nil {
		return nil, err
	}

	return supplier, nil
}

// GetSupplier retrieves a supplier by ID
func (s *SupplierService) GetSupplier(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier")
	}
	return supplier, nil
}

// UpdateSupplier validates and persists changes to an existing supplier
func (s *SupplierService) UpdateSupplier(ctx context.Context, id uuid.UUID, input *SupplierInput) (*entity.Supplier, error) {
	supplier, err := s.GetSupplier(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := input.toEntity()
	if err := validation.Supplier(updated); err != nil {
		return nil, err
	}

	if input.Email != supplier.Email {
		existing, err := s.supplierRepo.GetByEmail(ctx, input.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("Supplier with this email already exists")
		}
	}

	updated.ID = supplier.ID
	updated.CreatedAt = supplier.CreatedAt
	if err := s.supplierRepo.Update(ctx, updated); err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteSupplier removes a supplier
func (s *SupplierService) DeleteSupplier(ctx context.Context, id uuid.UUID) error {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return apperror.NewNotFoundError("Supplier")
	}
	return s.supplierRepo.Delete(ctx, id)
}

// ListSuppliers returns suppliers matching the search with pagination
func (s *SupplierService) ListSuppliers(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Supplier, int64, error) {
	return s.supplierRepo.List(ctx, params, search)
}
