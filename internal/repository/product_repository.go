package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"shop-backoffice/internal/domain"

	"github.com/google/uuid"
)

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	Save(ctx context.Context, product *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	// FindByIDForUpdate locks the row until the surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
	FindAll(ctx context.Context) ([]*domain.Product, error)
}

type productRepository struct {
	db DBTX
}

const productColumns = `id, name, category, price, available_stock, last_update_date, supplier_id, image_id`

// NewProductRepository creates a new instance of ProductRepository
func NewProductRepository(db DBTX) ProductRepository {
	return &productRepository{db: db}
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	product := &domain.Product{}
	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Category,
		&product.Price,
		&product.AvailableStock,
		&product.LastUpdateDate,
		&product.SupplierID,
		&product.ImageID,
	)
	return product, err
}

// Save upserts a product. Name and category are fixed once the row exists.
func (r *productRepository) Save(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query := `
		INSERT INTO product (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE
		SET price = EXCLUDED.price,
		    available_stock = EXCLUDED.available_stock,
		    last_update_date = EXCLUDED.last_update_date,
		    supplier_id = EXCLUDED.supplier_id,
		    image_id = EXCLUDED.image_id
		RETURNING ` + productColumns

	saved, err := scanProduct(r.db.QueryRowContext(ctx, query,
		product.ID,
		product.Name,
		product.Category,
		product.Price,
		product.AvailableStock,
		product.LastUpdateDate,
		product.SupplierID,
		product.ImageID,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to save product: %w", err)
	}

	return saved, nil
}

func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return r.findOne(ctx, `SELECT `+productColumns+` FROM product WHERE id = $1`, id)
}

func (r *productRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return r.findOne(ctx, `SELECT `+productColumns+` FROM product WHERE id = $1 FOR UPDATE`, id)
}

func (r *productRepository) findOne(ctx context.Context, query string, id uuid.UUID) (*domain.Product, error) {
	product, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}

	return product, nil
}

func (r *productRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return execDelete(ctx, r.db, `DELETE FROM product WHERE id = $1`, id, ErrProductNotFound)
}

func (r *productRepository) FindAll(ctx context.Context) ([]*domain.Product, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+productColumns+` FROM product ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := []*domain.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}
