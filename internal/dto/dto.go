// Package dto holds the JSON shapes exchanged with API clients.
package dto

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate *validator.Validate

func init() {
	// prices travel as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Validate checks the validate tags of a transfer object.
func Validate(v interface{}) error {
	return validate.Struct(v)
}
