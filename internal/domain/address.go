package domain

import "github.com/google/uuid"

// Address is a postal address owned by a client or a supplier.
// Rows are never updated in place.
type Address struct {
	ID      uuid.UUID `db:"id"`
	Country string    `db:"country"`
	City    string    `db:"city"`
	Street  string    `db:"street"`
}
