package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"shop-backoffice/internal/domain"

	"github.com/google/uuid"
)

// ImageRepository defines the interface for image data access
type ImageRepository interface {
	Save(ctx context.Context, image *domain.Image) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Image, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type imageRepository struct {
	db DBTX
}

// NewImageRepository creates a new instance of ImageRepository
func NewImageRepository(db DBTX) ImageRepository {
	return &imageRepository{db: db}
}

// Save inserts or overwrites the image bytes.
func (r *imageRepository) Save(ctx context.Context, image *domain.Image) error {
	query := `
		INSERT INTO image (id, bytes)
		VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET bytes = EXCLUDED.bytes
	`

	bytes := image.Bytes
	if bytes == nil {
		bytes = []byte{}
	}

	if _, err := r.db.ExecContext(ctx, query, image.ID, bytes); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}

	return nil
}

func (r *imageRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Image, error) {
	image := &domain.Image{}
	err := r.db.QueryRowContext(ctx, `SELECT id, bytes FROM image WHERE id = $1`, id).Scan(&image.ID, &image.Bytes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrImageNotFound
		}
		return nil, fmt.Errorf("failed to find image by ID: %w", err)
	}

	return image, nil
}

func (r *imageRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return execDelete(ctx, r.db, `DELETE FROM image WHERE id = $1`, id, ErrImageNotFound)
}
