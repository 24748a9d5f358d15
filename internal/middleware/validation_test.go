package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRequest struct {
	Name  string `json:"name" validate:"required"`
	Stock int    `json:"stock" validate:"gte=0,lte=100"`
}

func TestProperty_DecodeJSONAcceptsValidBodies(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("well-formed JSON decodes into the target", prop.ForAll(
		func(name string, stock int) bool {
			body, _ := json.Marshal(map[string]interface{}{"name": name, "stock": stock})
			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))

			var got testRequest
			if err := DecodeJSON(req, &got); err != nil {
				return false
			}
			return got.Name == name && got.Stock == stock
		},
		gen.AlphaString(),
		gen.IntRange(-1000, 1000),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestDecodeJSONRejectsBadBodies(t *testing.T) {
	var target testRequest

	err := DecodeJSON(httptest.NewRequest(http.MethodPost, "/", nil), &target)
	assert.ErrorIs(t, err, ErrEmptyBody)

	err = DecodeJSON(httptest.NewRequest(http.MethodPost, "/", strings.NewReader("")), &target)
	assert.ErrorIs(t, err, ErrEmptyBody)

	err = DecodeJSON(httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{not json")), &target)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmptyBody)
}

func TestFormatValidationErrorsUnwraps(t *testing.T) {
	v := validator.New()
	err := v.Struct(testRequest{Stock: 101})
	require.Error(t, err)

	wrapped := fmt.Errorf("%w: %w", errors.New("invalid argument"), err)
	formatted := FormatValidationErrors(wrapped)

	require.Len(t, formatted, 2)
	assert.Equal(t, "Name", formatted[0].Field)
	assert.Equal(t, "This field is required", formatted[0].Message)
	assert.Equal(t, "Value must be less than or equal to 100", formatted[1].Message)

	assert.Empty(t, FormatValidationErrors(errors.New("plain")))
}
