package domain

import "github.com/google/uuid"

// Image is an opaque binary blob referenced by products
type Image struct {
	ID    uuid.UUID `db:"id"`
	Bytes []byte    `db:"bytes"`
}
