package mapper

import (
	"shop-backoffice/internal/domain"
	"shop-backoffice/internal/dto"
)

func ImageToDTO(i *domain.Image) *dto.ImageDTO {
	if i == nil {
		return nil
	}
	return &dto.ImageDTO{ID: i.ID, Bytes: i.Bytes}
}

func ImageToEntity(d *dto.ImageDTO) *domain.Image {
	if d == nil {
		return nil
	}
	return &domain.Image{ID: d.ID, Bytes: d.Bytes}
}
