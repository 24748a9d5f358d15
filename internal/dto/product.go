package dto

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// ProductDTO is the product representation used by the API.
// LastUpdateDate and ImageID are optional on input.
type ProductDTO struct {
	ID             uuid.UUID           `json:"id" validate:"required"`
	Name           string              `json:"name" validate:"required"`
	Category       string              `json:"category" validate:"required"`
	Price          decimal.NullDecimal `json:"price" validate:"required"`
	AvailableStock *int32              `json:"availableStock" validate:"required"`
	LastUpdateDate pgtype.Date         `json:"lastUpdateDate"`
	SupplierID     uuid.UUID           `json:"supplierId" validate:"required"`
	ImageID        uuid.NullUUID       `json:"imageId"`
}
