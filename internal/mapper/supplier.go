package mapper

import (
	"shop-backoffice/internal/domain"
	"shop-backoffice/internal/dto"
)

func SupplierToDTO(s *domain.Supplier) *dto.SupplierDTO {
	if s == nil {
		return nil
	}
	return &dto.SupplierDTO{
		ID:          s.ID,
		Name:        s.Name,
		AddressID:   s.AddressID,
		PhoneNumber: s.PhoneNumber,
	}
}

func SupplierToEntity(d *dto.SupplierDTO) *domain.Supplier {
	if d == nil {
		return nil
	}
	return &domain.Supplier{
		ID:          d.ID,
		Name:        d.Name,
		AddressID:   d.AddressID,
		PhoneNumber: d.PhoneNumber,
	}
}

func SuppliersToDTO(suppliers []*domain.Supplier) []*dto.SupplierDTO {
	out := make([]*dto.SupplierDTO, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, SupplierToDTO(s))
	}
	return out
}
