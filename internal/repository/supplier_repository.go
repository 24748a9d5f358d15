package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"shop-backoffice/internal/domain"

	"github.com/google/uuid"
)

// SupplierRepository defines the interface for supplier data access
type SupplierRepository interface {
	Save(ctx context.Context, supplier *domain.Supplier) (*domain.Supplier, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Supplier, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
	FindAll(ctx context.Context) ([]*domain.Supplier, error)
}

type supplierRepository struct {
	db DBTX
}

// NewSupplierRepository creates a new instance of SupplierRepository
func NewSupplierRepository(db DBTX) SupplierRepository {
	return &supplierRepository{db: db}
}

func scanSupplier(row rowScanner) (*domain.Supplier, error) {
	supplier := &domain.Supplier{}
	err := row.Scan(&supplier.ID, &supplier.Name, &supplier.AddressID, &supplier.PhoneNumber)
	return supplier, err
}

// Save upserts a supplier; the name never changes after insert.
func (r *supplierRepository) Save(ctx context.Context, supplier *domain.Supplier) (*domain.Supplier, error) {
	query := `
		INSERT INTO supplier (id, name, address_id, phone_number)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET address_id = EXCLUDED.address_id, phone_number = EXCLUDED.phone_number
		RETURNING id, name, address_id, phone_number
	`

	saved, err := scanSupplier(r.db.QueryRowContext(ctx, query,
		supplier.ID,
		supplier.Name,
		supplier.AddressID,
		supplier.PhoneNumber,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to save supplier: %w", err)
	}

	return saved, nil
}

func (r *supplierRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Supplier, error) {
	query := `SELECT id, name, address_id, phone_number FROM supplier WHERE id = $1`

	supplier, err := scanSupplier(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSupplierNotFound
		}
		return nil, fmt.Errorf("failed to find supplier by ID: %w", err)
	}

	return supplier, nil
}

func (r *supplierRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return execDelete(ctx, r.db, `DELETE FROM supplier WHERE id = $1`, id, ErrSupplierNotFound)
}

func (r *supplierRepository) FindAll(ctx context.Context) ([]*domain.Supplier, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, address_id, phone_number FROM supplier ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	defer rows.Close()

	suppliers := []*domain.Supplier{}
	for rows.Next() {
		supplier, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan supplier: %w", err)
		}
		suppliers = append(suppliers, supplier)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating suppliers: %w", err)
	}

	return suppliers, nil
}
