package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents a product in the catalog
type Product struct {
	ID             uuid.UUID       `db:"id"`
	Name           string          `db:"name"`
	Category       string          `db:"category"`
	Price          decimal.Decimal `db:"price"`
	AvailableStock int32           `db:"available_stock"`
	LastUpdateDate time.Time       `db:"last_update_date"`
	SupplierID     uuid.UUID       `db:"supplier_id"`
	ImageID        uuid.NullUUID   `db:"image_id"`
}

