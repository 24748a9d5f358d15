package mapper

import (
	"shop-backoffice/internal/domain"
	"shop-backoffice/internal/dto"
)

func AddressToDTO(a *domain.Address) *dto.AddressDTO {
	if a == nil {
		return nil
	}
	return &dto.AddressDTO{
		ID:      a.ID,
		Country: a.Country,
		City:    a.City,
		Street:  a.Street,
	}
}

func AddressToEntity(d *dto.AddressDTO) *domain.Address {
	if d == nil {
		return nil
	}
	return &domain.Address{
		ID:      d.ID,
		Country: d.Country,
		City:    d.City,
		Street:  d.Street,
	}
}
