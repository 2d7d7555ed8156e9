package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pharmadist/pharmadist-api/internal/domain/entity"
	"github.com/pharmadist/pharmadist-api/internal/domain/enum"
	"github.com/pharmadist/pharmadist-api/internal/domain/repository"
	"github.com/pharmadist/pharmadist-api/internal/domain/validation"
	"github.com/pharmadist/pharmadist-api/pkg/apperror"
	"github.com/pharmadist/pharmadist-api/pkg/utils"
	"github.com/shopspring/decimal"
)

// ProductService handles product catalog operations
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	Name          string
	GenericName   string
	Manufacturer  string
	Category      string
	SKU           string
	BatchNumber   string
	ExpiryDate    time.Time
	Quantity      int
	UnitPrice     decimal.Decimal
	ReorderLevel  int
	Status        enum.ProductStatus
	LicenseNumber string
	DrugCode      string
	Schedule      string
}

// CreateProduct validates and persists a new product
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	product := &entity.Product{
		Name:         input.Name,
		GenericName:  input.GenericName,
		Manufacturer: input.Manufacturer,
		Category:     input.Category,
		SKU:          input.SKU,
		BatchNumber:  input.BatchNumber,
		ExpiryDate:   input.ExpiryDate,
		Quantity:     input.Quantity,
		UnitPrice:    input.UnitPrice,
		ReorderLevel: input.ReorderLevel,
		Status:       input.Status,
		Regulatory: entity.RegulatoryInfo{
			LicenseNumber: input.LicenseNumber,
			DrugCode:      input.DrugCode,
			Schedule:      input.Schedule,
		},
	}
	if product.Status == "" {
		product.Status = enum.ProductStatusActive
	}
	if product.BatchNumber == "" {
		product.BatchNumber = utils.GenerateBatchNumber()
	}

	if err := validation.Product(product); err != nil {
		return nil, err
	}

	existing, err := s.productRepo.GetBySKU(ctx, input.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Product with this SKU already exists")
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// UpdateProduct validates and persists changes to an existing product
func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, input *CreateProductInput) (*entity.Product, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.SKU != product.SKU {
		existing, err := s.productRepo.GetBySKU(ctx, input.SKU)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("Product with this SKU already exists")
		}
	}

	product.Name = input.Name
	product.GenericName = input.GenericName
	product.Manufacturer = input.Manufacturer
	product.Category = input.Category
	product.SKU = input.SKU
	product.BatchNumber = input.BatchNumber
	product.ExpiryDate = input.ExpiryDate
	product.Quantity = input.Quantity
	product.UnitPrice = input.UnitPrice
	product.ReorderLevel = input.ReorderLevel
	if input.Status != "" {
		product.Status = input.Status
	}
	product.Regulatory = entity.RegulatoryInfo{
		LicenseNumber: input.LicenseNumber,
		DrugCode:      input.DrugCode,
		Schedule:      input.Schedule,
	}

	if err := validation.Product(product); err != nil {
		return nil, err
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// DeleteProduct removes a product
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}
	return s.productRepo.Delete(ctx, id)
}

// ListProducts returns products matching the filter
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	return s.productRepo.List(ctx, params)
}

// GetLowStockProducts returns products at or below their reorder level
func (s *ProductService) GetLowStockProducts(ctx context.Context) ([]entity.Product, error) {
	return s.productRepo.GetLowStock(ctx)
}

// GetExpiringProducts returns products expiring within the given number of days
func (s *ProductService) GetExpiringProducts(ctx context.Context, days int) ([]entity.Product, error) {
	return s.productRepo.GetExpiringSoon(ctx, time.Duration(days)*24*time.Hour)
}
