package service

import (
	"errors"
	"fmt"
	"time"

	"shop-backoffice/internal/dto"
)

// ErrInvalidArgument is wrapped by every input validation failure.
var ErrInvalidArgument = errors.New("invalid argument")

var (
	ErrInvalidAddress    = fmt.Errorf("%w: address data", ErrInvalidArgument)
	ErrInvalidClient     = fmt.Errorf("%w: client data", ErrInvalidArgument)
	ErrInvalidSupplier   = fmt.Errorf("%w: supplier data", ErrInvalidArgument)
	ErrInvalidProduct    = fmt.Errorf("%w: product data", ErrInvalidArgument)
	ErrInvalidImage      = fmt.Errorf("%w: image bytes", ErrInvalidArgument)
	ErrInvalidPagination = fmt.Errorf("%w: limit and offset must be >= 1", ErrInvalidArgument)
	ErrInvalidAmount     = fmt.Errorf("%w: amount must be between 1 and the available stock", ErrInvalidArgument)
)

// today returns the current UTC date at midnight.
var today = func() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}

// validate checks required fields and tags the failure with kind.
func validate(v interface{}, kind error) error {
	if err := dto.Validate(v); err != nil {
		return fmt.Errorf("%w: %w", kind, err)
	}
	return nil
}
