package domain

import "github.com/google/uuid"

// Supplier represents a vendor that ships products
type Supplier struct {
	ID          uuid.UUID `db:"id"`
	Name        string    `db:"name"`
	AddressID   uuid.UUID `db:"address_id"`
	PhoneNumber string    `db:"phone_number"`
}
