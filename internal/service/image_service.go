package service

import (
	"context"

	"shop-backoffice/internal/domain"
	"shop-backoffice/internal/dto"
	"shop-backoffice/internal/mapper"
	"shop-backoffice/internal/repository"

	"github.com/google/uuid"
)

// ImageService defines the interface for image business logic
type ImageService interface {
	// Add stores bytes under id, overwriting any previous image.
	Add(ctx context.Context, id uuid.UUID, bytes []byte) error
	ChangeBytesByID(ctx context.Context, id uuid.UUID, bytes []byte) error
	DeleteByID(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ImageDTO, error)
	GetByProductID(ctx context.Context, productID uuid.UUID) (*dto.ImageDTO, error)
}

type imageService struct {
	images   repository.ImageRepository
	products ProductService
}

// NewImageService creates a new instance of ImageService
func NewImageService(images repository.ImageRepository, products ProductService) ImageService {
	return &imageService{images: images, products: products}
}

func (s *imageService) Add(ctx context.Context, id uuid.UUID, bytes []byte) error {
	return s.images.Save(ctx, &domain.Image{ID: id, Bytes: bytes})
}

// ChangeBytesByID replaces the bytes of an existing image. An empty
// non-nil slice is accepted.
func (s *imageService) ChangeBytesByID(ctx context.Context, id uuid.UUID, bytes []byte) error {
	if _, err := s.images.FindByID(ctx, id); err != nil {
		return err
	}
	if bytes == nil {
		return ErrInvalidImage
	}
	return s.images.Save(ctx, &domain.Image{ID: id, Bytes: bytes})
}

func (s *imageService) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return s.images.DeleteByID(ctx, id)
}

func (s *imageService) GetByID(ctx context.Context, id uuid.UUID) (*dto.ImageDTO, error) {
	image, err := s.images.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapper.ImageToDTO(image), nil
}

// GetByProductID returns the image referenced by the product. A product
// without an image reports repository.ErrImageNotFound.
func (s *imageService) GetByProductID(ctx context.Context, productID uuid.UUID) (*dto.ImageDTO, error) {
	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !product.ImageID.Valid {
		return nil, repository.ErrImageNotFound
	}
	return s.GetByID(ctx, product.ImageID.UUID)
}
