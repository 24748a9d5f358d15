package service

import (
	"context"
	"errors"
	"fmt"

	"shop-backoffice/internal/domain"
	"shop-backoffice/internal/dto"
	"shop-backoffice/internal/mapper"
	"shop-backoffice/internal/repository"

	"github.com/google/uuid"
)

// AddressService defines the interface for address business logic.
// Addresses are never updated in place.
type AddressService interface {
	Add(ctx context.Context, address *dto.AddressDTO) (*dto.AddressDTO, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*dto.AddressDTO, error)
}

type addressService struct {
	addresses repository.AddressRepository
}

// NewAddressService creates a new instance of AddressService
func NewAddressService(addresses repository.AddressRepository) AddressService {
	return &addressService{addresses: addresses}
}

func (s *addressService) Add(ctx context.Context, address *dto.AddressDTO) (*dto.AddressDTO, error) {
	if err := validateAddress(address); err != nil {
		return nil, err
	}

	saved, err := s.addresses.Save(ctx, mapper.AddressToEntity(address))
	if err != nil {
		return nil, err
	}

	return mapper.AddressToDTO(saved), nil
}

func (s *addressService) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return s.addresses.DeleteByID(ctx, id)
}

func (s *addressService) GetByID(ctx context.Context, id uuid.UUID) (*dto.AddressDTO, error) {
	address, err := s.addresses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapper.AddressToDTO(address), nil
}

func validateAddress(address *dto.AddressDTO) error {
	if address == nil {
		return ErrInvalidAddress
	}
	return validate(address, ErrInvalidAddress)
}

// replaceAddress stores next and removes the address at oldID. A missing old
// row is ignored, and nothing is deleted when next reuses oldID.
func replaceAddress(ctx context.Context, addresses repository.AddressRepository, oldID uuid.UUID, next *domain.Address) error {
	if _, err := addresses.Save(ctx, next); err != nil {
		return err
	}

	if oldID == next.ID {
		return nil
	}

	if err := addresses.DeleteByID(ctx, oldID); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("failed to delete previous address: %w", err)
	}

	return nil
}
