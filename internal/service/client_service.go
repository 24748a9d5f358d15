package service

import (
	"context"
	"math"

	"shop-backoffice/internal/dto"
	"shop-backoffice/internal/mapper"
	"shop-backoffice/internal/repository"

	"github.com/google/uuid"
)

// ClientService defines the interface for client business logic
type ClientService interface {
	Add(ctx context.Context, client *dto.ClientDTO) (*dto.ClientDTO, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ClientDTO, error)
	GetByNameAndSurname(ctx context.Context, name, surname string) ([]*dto.ClientDTO, error)
	// GetAll returns every client when limit and offset are both nil,
	// otherwise one page of them.
	GetAll(ctx context.Context, limit, offset *int) ([]*dto.ClientDTO, error)
	ChangeAddress(ctx context.Context, clientID uuid.UUID, address *dto.AddressDTO) (*dto.ClientDTO, error)
}

type clientService struct {
	clients repository.ClientRepository
	tx      repository.TxManager
}

// NewClientService creates a new instance of ClientService
func NewClientService(clients repository.ClientRepository, tx repository.TxManager) ClientService {
	return &clientService{clients: clients, tx: tx}
}

// Add stores a client. The registration date is always set to today.
func (s *clientService) Add(ctx context.Context, client *dto.ClientDTO) (*dto.ClientDTO, error) {
	if client == nil {
		return nil, ErrInvalidClient
	}
	if err := validate(client, ErrInvalidClient); err != nil {
		return nil, err
	}

	entity := mapper.ClientToEntity(client)
	entity.RegistrationDate = today()

	saved, err := s.clients.Save(ctx, entity)
	if err != nil {
		return nil, err
	}

	return mapper.ClientToDTO(saved), nil
}

func (s *clientService) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return s.clients.DeleteByID(ctx, id)
}

func (s *clientService) GetByID(ctx context.Context, id uuid.UUID) (*dto.ClientDTO, error) {
	client, err := s.clients.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapper.ClientToDTO(client), nil
}

func (s *clientService) GetByNameAndSurname(ctx context.Context, name, surname string) ([]*dto.ClientDTO, error) {
	clients, err := s.clients.FindByNameAndSurname(ctx, name, surname)
	if err != nil {
		return nil, err
	}
	return mapper.ClientsToDTO(clients), nil
}

// GetAll treats offset as a row position and converts it to the page that
// contains it, so offsets that are not multiples of limit round down.
func (s *clientService) GetAll(ctx context.Context, limit, offset *int) ([]*dto.ClientDTO, error) {
	if limit == nil && offset == nil {
		clients, err := s.clients.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		return mapper.ClientsToDTO(clients), nil
	}

	if (limit != nil && *limit < 1) || (offset != nil && *offset < 1) {
		return nil, ErrInvalidPagination
	}

	pageSize := int64(math.MaxInt32)
	if limit != nil {
		pageSize = int64(*limit)
	}

	var pageNumber int64
	if offset != nil {
		pageNumber = int64(*offset) / pageSize
	}

	clients, err := s.clients.FindPage(ctx, pageNumber, pageSize)
	if err != nil {
		return nil, err
	}
	return mapper.ClientsToDTO(clients), nil
}

// ChangeAddress stores the new address, drops the old one and repoints the
// client, all in one transaction.
func (s *clientService) ChangeAddress(ctx context.Context, clientID uuid.UUID, address *dto.AddressDTO) (*dto.ClientDTO, error) {
	if err := validateAddress(address); err != nil {
		return nil, err
	}

	var updated *dto.ClientDTO
	err := s.tx.WithTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		client, err := repos.Clients.FindByID(ctx, clientID)
		if err != nil {
			return err
		}

		if err := replaceAddress(ctx, repos.Addresses, client.AddressID, mapper.AddressToEntity(address)); err != nil {
			return err
		}

		client.AddressID = address.ID
		saved, err := repos.Clients.Save(ctx, client)
		if err != nil {
			return err
		}

		updated = mapper.ClientToDTO(saved)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}
