package mapper

import (
	"shop-backoffice/internal/domain"
	"shop-backoffice/internal/dto"

	"github.com/shopspring/decimal"
)

func ProductToDTO(p *domain.Product) *dto.ProductDTO {
	if p == nil {
		return nil
	}
	stock := p.AvailableStock
	return &dto.ProductDTO{
		ID:             p.ID,
		Name:           p.Name,
		Category:       p.Category,
		Price:          decimal.NewNullDecimal(p.Price),
		AvailableStock: &stock,
		LastUpdateDate: toDate(p.LastUpdateDate),
		SupplierID:     p.SupplierID,
		ImageID:        p.ImageID,
	}
}

// ProductToEntity copies a product DTO. Absent price and stock become zero.
func ProductToEntity(d *dto.ProductDTO) *domain.Product {
	if d == nil {
		return nil
	}
	p := &domain.Product{
		ID:             d.ID,
		Name:           d.Name,
		Category:       d.Category,
		LastUpdateDate: fromDate(d.LastUpdateDate),
		SupplierID:     d.SupplierID,
		ImageID:        d.ImageID,
	}
	if d.Price.Valid {
		p.Price = d.Price.Decimal
	}
	if d.AvailableStock != nil {
		p.AvailableStock = *d.AvailableStock
	}
	return p
}

func ProductsToDTO(products []*domain.Product) []*dto.ProductDTO {
	out := make([]*dto.ProductDTO, 0, len(products))
	for _, p := range products {
		out = append(out, ProductToDTO(p))
	}
	return out
}
