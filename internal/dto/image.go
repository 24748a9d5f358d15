package dto

import "github.com/google/uuid"

type ImageDTO struct {
	ID    uuid.UUID `json:"id"`
	Bytes []byte    `json:"bytes"`
}
