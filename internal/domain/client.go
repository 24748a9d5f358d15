package domain

import (
	"time"

	"github.com/google/uuid"
)

// Client represents a registered customer
type Client struct {
	ID               uuid.UUID `db:"id"`
	Name             string    `db:"name"`
	Surname          string    `db:"surname"`
	Birthday         time.Time `db:"birthday"`
	Gender           string    `db:"gender"`
	RegistrationDate time.Time `db:"registration_date"`
	AddressID        uuid.UUID `db:"address_id"`
}
