package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"lengolf/internal/domain"
	"lengolf/internal/port"
)

// CreateSupplierInput is the DTO for creating a supplier.
type CreateSupplierInput struct {
	Name               string           `json:"name" binding:"required"`
	AddressLine1       string           `json:"address_line1"`
	AddressLine2       string           `json:"address_line2"`
	TaxID              string           `json:"tax_id"`
	DefaultDescription string           `json:"default_description"`
	DefaultUnitPrice   *decimal.Decimal `json:"default_unit_price"`
}

// UpdateSupplierInput is the DTO for updating a supplier.
type UpdateSupplierInput struct {
	Name               *string          `json:"name"`
	AddressLine1       *string          `json:"address_line1"`
	AddressLine2       *string          `json:"address_line2"`
	TaxID              *string          `json:"tax_id"`
	DefaultDescription *string          `json:"default_description"`
	DefaultUnitPrice   *decimal.Decimal `json:"default_unit_price"`
}

// SupplierService defines the supplier management contract.
type SupplierService interface {
	Create(ctx context.Context, input CreateSupplierInput) (*domain.Supplier, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Supplier, error)
	List(ctx context.Context, offset, limit int) ([]domain.Supplier, int, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateSupplierInput) (*domain.Supplier, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type supplierService struct {
	repo port.SupplierRepository
}

// NewSupplierService creates a new SupplierService implementation.
func NewSupplierService(repo port.SupplierRepository) SupplierService {
	return &supplierService{repo: repo}
}

func (s *supplierService) Create(ctx context.Context, input CreateSupplierInput) (*domain.Supplier, error) {
	supplier := &domain.Supplier{
		Name:               input.Name,
		AddressLine1:       input.AddressLine1,
		AddressLine2:       input.AddressLine2,
		TaxID:              input.TaxID,
		DefaultDescription: input.DefaultDescription,
	}
	if input.DefaultUnitPrice != nil {
		supplier.DefaultUnitPrice = decimal.NewNullDecimal(*input.DefaultUnitPrice)
	}
	if err := s.repo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *supplierService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Supplier, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *supplierService) List(ctx context.Context, offset, limit int) ([]domain.Supplier, int, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *supplierService) Update(ctx context.Context, id uuid.UUID, input UpdateSupplierInput) (*domain.Supplier, error) {
	supplier, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		supplier.Name = *input.Name
	}
	if input.AddressLine1 != nil {
		supplier.AddressLine1 = *input.AddressLine1
	}
	if input.AddressLine2 != nil {
		supplier.AddressLine2 = *input.AddressLine2
	}
	if input.TaxID != nil {
		supplier.TaxID = *input.TaxID
	}
	if input.DefaultDescription != nil {
		supplier.DefaultDescription = *input.DefaultDescription
	}
	if input.DefaultUnitPrice != nil {
		supplier.DefaultUnitPrice = decimal.NewNullDecimal(*input.DefaultUnitPrice)
	}

	if err := s.repo.Update(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *supplierService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
