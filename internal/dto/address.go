package dto

import "github.com/google/uuid"

type AddressDTO struct {
	ID      uuid.UUID `json:"id" validate:"required"`
	Country string    `json:"country" validate:"required"`
	City    string    `json:"city" validate:"required"`
	Street  string    `json:"street" validate:"required"`
}
