package dto

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// ClientDTO is the client representation used by the API. Dates are
// encoded as YYYY-MM-DD.
type ClientDTO struct {
	ID               uuid.UUID   `json:"id" validate:"required"`
	Name             string      `json:"name" validate:"required"`
	Surname          string      `json:"surname" validate:"required"`
	Birthday         pgtype.Date `json:"birthday" validate:"required"`
	Gender           string      `json:"gender" validate:"required"`
	RegistrationDate pgtype.Date `json:"registrationDate" validate:"required"`
	AddressID        uuid.UUID   `json:"addressId" validate:"required"`
}
