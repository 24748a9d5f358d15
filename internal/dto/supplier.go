package dto

import "github.com/google/uuid"

type SupplierDTO struct {
	ID          uuid.UUID `json:"id" validate:"required"`
	Name        string    `json:"name" validate:"required"`
	AddressID   uuid.UUID `json:"addressId" validate:"required"`
	PhoneNumber string    `json:"phoneNumber" validate:"required"`
}
