package mapper

import (
	"shop-backoffice/internal/domain"
	"shop-backoffice/internal/dto"
)

func ClientToDTO(c *domain.Client) *dto.ClientDTO {
	if c == nil {
		return nil
	}
	return &dto.ClientDTO{
		ID:               c.ID,
		Name:             c.Name,
		Surname:          c.Surname,
		Birthday:         toDate(c.Birthday),
		Gender:           c.Gender,
		RegistrationDate: toDate(c.RegistrationDate),
		AddressID:        c.AddressID,
	}
}

func ClientToEntity(d *dto.ClientDTO) *domain.Client {
	if d == nil {
		return nil
	}
	return &domain.Client{
		ID:               d.ID,
		Name:             d.Name,
		Surname:          d.Surname,
		Birthday:         fromDate(d.Birthday),
		Gender:           d.Gender,
		RegistrationDate: fromDate(d.RegistrationDate),
		AddressID:        d.AddressID,
	}
}

// ClientsToDTO maps a slice, never returning nil so it encodes as [].
func ClientsToDTO(clients []*domain.Client) []*dto.ClientDTO {
	out := make([]*dto.ClientDTO, 0, len(clients))
	for _, c := range clients {
		out = append(out, ClientToDTO(c))
	}
	return out
}
