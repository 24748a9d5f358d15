package service

import (
	"context"

	"shop-backoffice/internal/dto"
	"shop-backoffice/internal/mapper"
	"shop-backoffice/internal/repository"

	"github.com/google/uuid"
)

// ProductService defines the interface for product business logic
type ProductService interface {
	Add(ctx context.Context, product *dto.ProductDTO) (*dto.ProductDTO, error)
	// ReduceByAmount takes amount units out of stock. The amount must be at
	// least 1 and at most the current stock.
	ReduceByAmount(ctx context.Context, id uuid.UUID, amount int) (*dto.ProductDTO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ProductDTO, error)
	GetAll(ctx context.Context) ([]*dto.ProductDTO, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type productService struct {
	products repository.ProductRepository
	tx       repository.TxManager
}

// NewProductService creates a new instance of ProductService
func NewProductService(products repository.ProductRepository, tx repository.TxManager) ProductService {
	return &productService{products: products, tx: tx}
}

func (s *productService) Add(ctx context.Context, product *dto.ProductDTO) (*dto.ProductDTO, error) {
	if product == nil {
		return nil, ErrInvalidProduct
	}
	if err := validate(product, ErrInvalidProduct); err != nil {
		return nil, err
	}

	entity := mapper.ProductToEntity(product)
	entity.Price = entity.Price.Round(2)
	if entity.LastUpdateDate.IsZero() {
		entity.LastUpdateDate = today()
	}

	saved, err := s.products.Save(ctx, entity)
	if err != nil {
		return nil, err
	}

	return mapper.ProductToDTO(saved), nil
}

func (s *productService) ReduceByAmount(ctx context.Context, id uuid.UUID, amount int) (*dto.ProductDTO, error) {
	var updated *dto.ProductDTO
	err := s.tx.WithTx(ctx, func(ctx context.Context, repos repository.Repositories) error {
		product, err := repos.Products.FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}

		if amount < 1 || amount > int(product.AvailableStock) {
			return ErrInvalidAmount
		}

		product.AvailableStock -= int32(amount)
		saved, err := repos.Products.Save(ctx, product)
		if err != nil {
			return err
		}

		updated = mapper.ProductToDTO(saved)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *productService) GetByID(ctx context.Context, id uuid.UUID) (*dto.ProductDTO, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapper.ProductToDTO(product), nil
}

func (s *productService) GetAll(ctx context.Context) ([]*dto.ProductDTO, error) {
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapper.ProductsToDTO(products), nil
}

func (s *productService) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return s.products.DeleteByID(ctx, id)
}
