package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"shop-backoffice/internal/domain"

	"github.com/google/uuid"
)

// AddressRepository defines the interface for address data access
type AddressRepository interface {
	Save(ctx context.Context, address *domain.Address) (*domain.Address, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Address, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type addressRepository struct {
	db DBTX
}

// NewAddressRepository creates a new instance of AddressRepository
func NewAddressRepository(db DBTX) AddressRepository {
	return &addressRepository{db: db}
}

// Save inserts the address. Address columns are immutable, so saving an
// existing id returns the stored row untouched.
func (r *addressRepository) Save(ctx context.Context, address *domain.Address) (*domain.Address, error) {
	query := `
		INSERT INTO address (id, country, city, street)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET id = address.id
		RETURNING id, country, city, street
	`

	saved := &domain.Address{}
	err := r.db.QueryRowContext(ctx, query,
		address.ID,
		address.Country,
		address.City,
		address.Street,
	).Scan(&saved.ID, &saved.Country, &saved.City, &saved.Street)
	if err != nil {
		return nil, fmt.Errorf("failed to save address: %w", err)
	}

	return saved, nil
}

func (r *addressRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Address, error) {
	query := `SELECT id, country, city, street FROM address WHERE id = $1`

	address := &domain.Address{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&address.ID,
		&address.Country,
		&address.City,
		&address.Street,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAddressNotFound
		}
		return nil, fmt.Errorf("failed to find address by ID: %w", err)
	}

	return address, nil
}

func (r *addressRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return execDelete(ctx, r.db, `DELETE FROM address WHERE id = $1`, id, ErrAddressNotFound)
}
