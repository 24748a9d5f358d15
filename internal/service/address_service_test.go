package service

import (
	"context"
	"testing"

	"shop-backoffice/internal/dto"
	"shop-backoffice/internal/repository"

	"github.com/google/uuid"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProperty_InvalidAddressWritesNothing(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("an address missing a field is rejected without a write", prop.ForAll(
		func(country, city, street string, hasID bool) bool {
			s := newServices()
			address := &dto.AddressDTO{Country: country, City: city, Street: street}
			if hasID {
				address.ID = uuid.New()
			}

			_, err := s.addresses.Add(context.Background(), address)
			count, _, _, _, _ := s.store.Counts()

			valid := hasID && country != "" && city != "" && street != ""
			if valid {
				return err == nil && count == 1
			}
			return err != nil && count == 0
		},
		gen.OneConstOf("", "Russia"),
		gen.OneConstOf("", "Tula"),
		gen.OneConstOf("", "Lenina"),
		gen.Bool(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestAddressReAddKeepsOriginal(t *testing.T) {
	s := newServices()
	ctx := context.Background()

	original := newAddressDTO()
	_, err := s.addresses.Add(ctx, original)
	require.NoError(t, err)

	again := *original
	again.City = "Elsewhere"
	stored, err := s.addresses.Add(ctx, &again)
	require.NoError(t, err)
	assert.Equal(t, original.City, stored.City)
}

func TestAddressDeleteUnknown(t *testing.T) {
	s := newServices()

	assert.ErrorIs(t, s.addresses.DeleteByID(context.Background(), uuid.New()), repository.ErrAddressNotFound)
}
