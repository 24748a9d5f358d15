package service

import (
	"context"

	"shop-backoffice/internal/dto"
	"shop-backoffice/internal/mapper"
	"shop-backoffice/internal/repository"

	"github.com/google/uuid"
)

// SupplierService defines the interface for supplier business logic
type SupplierService interface {
	Add(ctx context.Context, supplier *dto.SupplierDTO) (*dto.SupplierDTO, error)
	ChangeAddress(ctx context.Context, supplierID uuid.UUID, address *dto.AddressDTO) (*dto.SupplierDTO, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
	GetAll(ctx context.Context) ([]*dto.SupplierDTO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.SupplierDTO, error)
}

type supplierService struct {
	suppliers repository.SupplierRepository
	tx        repository.TxManager
}

// NewSupplierService creates a new instance of SupplierService
func NewSupplierService(suppliers repository.SupplierRepository, tx repository.TxManager) SupplierService {
	return &supplierService{suppliers: suppliers, tx: tx}
}

func (s *supplierService) Add(ctx context.Context, supplier *dto.SupplierDTO) (*dto.SupplierDTO, error) {
	if supplier == nil {
		return nil, ErrInvalidSupplier
	}
	if err := validate(supplier, ErrInvalidSupplier); err != nil {
		return nil, err
	}

	saved, err := s.suppliers.Save(ctx, mapper.SupplierToEntity(supplier))
	if err != nil {
		return nil, err
	}

	return mapper.SupplierToDTO(saved), nil
}

func (s *supplierService) ChangeAddress(ctx context.Context, supplierID uuid.UUID, address *dto.AddressDTO) (*dto.SupplierDTO, error) {
	if err := validateAddress(address); err != nil {
		return nil, err
	}

	var updated *dto.SupplierDTO
	err := s.tx.WithTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		supplier, err := repos.Suppliers.FindByID(ctx, supplierID)
		if err != nil {
			return err
		}

		if err := replaceAddress(ctx, repos.Addresses, supplier.AddressID, mapper.AddressToEntity(address)); err != nil {
			return err
		}

		supplier.AddressID = address.ID
		saved, err := repos.Suppliers.Save(ctx, supplier)
		if err != nil {
			return err
		}

		updated = mapper.SupplierToDTO(saved)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *supplierService) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return s.suppliers.DeleteByID(ctx, id)
}

func (s *supplierService) GetAll(ctx context.Context) ([]*dto.SupplierDTO, error) {
	suppliers, err := s.suppliers.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapper.SuppliersToDTO(suppliers), nil
}

func (s *supplierService) GetByID(ctx context.Context, id uuid.UUID) (*dto.SupplierDTO, error) {
	supplier, err := s.suppliers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapper.SupplierToDTO(supplier), nil
}
