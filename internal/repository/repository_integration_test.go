//go:build integration

package repository

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"shop-backoffice/internal/domain"

	"github.com/google/uuid"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newClient(name, surname string) *domain.Client {
	return &domain.Client{
		ID:               uuid.New(),
		Name:             name,
		Surname:          surname,
		Birthday:         day(1991, time.June, 12),
		Gender:           "female",
		RegistrationDate: day(2024, time.February, 3),
		AddressID:        uuid.New(),
	}
}

func newProduct(stock int32) *domain.Product {
	return &domain.Product{
		ID:             uuid.New(),
		Name:           "Desk lamp",
		Category:       "lighting",
		Price:          decimal.RequireFromString("24.99"),
		AvailableStock: stock,
		LastUpdateDate: day(2024, time.March, 1),
		SupplierID:     uuid.New(),
	}
}

func TestProperty_ClientSavePreservesAttributes(t *testing.T) {
	repo := NewClientRepository(testDB)
	ctx := context.Background()

	properties := gopter.NewProperties(nil)

	properties.Property("saving and reading a client returns the same row", prop.ForAll(
		func(name, surname string) bool {
			client := newClient(name, surname)

			if _, err := repo.Save(ctx, client); err != nil {
				t.Logf("save failed: %v", err)
				return false
			}

			found, err := repo.FindByID(ctx, client.ID)
			if err != nil {
				t.Logf("find failed: %v", err)
				return false
			}

			return found.Name == client.Name &&
				found.Surname == client.Surname &&
				found.Birthday.Equal(client.Birthday) &&
				found.RegistrationDate.Equal(client.RegistrationDate) &&
				found.AddressID == client.AddressID
		},
		gen.AlphaString().SuchThat(func(s string) bool { return len(s) > 0 && len(s) <= 30 }),
		gen.AlphaString().SuchThat(func(s string) bool { return len(s) > 0 && len(s) <= 50 }),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestClientSaveKeepsImmutableColumns(t *testing.T) {
	repo := NewClientRepository(testDB)
	ctx := context.Background()

	original := newClient("Olga", "Ivanova")
	_, err := repo.Save(ctx, original)
	require.NoError(t, err)

	changed := *original
	changed.Name = "Changed"
	changed.RegistrationDate = day(2030, time.January, 1)
	changed.Gender = "male"
	changed.AddressID = uuid.New()

	saved, err := repo.Save(ctx, &changed)
	require.NoError(t, err)

	assert.Equal(t, "Olga", saved.Name)
	assert.True(t, saved.RegistrationDate.Equal(original.RegistrationDate))
	assert.Equal(t, "male", saved.Gender)
	assert.Equal(t, changed.AddressID, saved.AddressID)
}

func TestClientFindByNameAndSurname(t *testing.T) {
	repo := NewClientRepository(testDB)
	ctx := context.Background()

	surname := "Search" + uuid.NewString()[:8]
	for i := 0; i < 3; i++ {
		_, err := repo.Save(ctx, newClient("Petr", surname))
		require.NoError(t, err)
	}
	_, err := repo.Save(ctx, newClient("Other", surname))
	require.NoError(t, err)

	found, err := repo.FindByNameAndSurname(ctx, "Petr", surname)
	require.NoError(t, err)
	assert.Len(t, found, 3)

	none, err := repo.FindByNameAndSurname(ctx, "Nobody", surname)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestClientFindPage(t *testing.T) {
	repo := NewClientRepository(testDB)
	ctx := context.Background()

	_, err := testDB.ExecContext(ctx, `DELETE FROM client`)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		_, err := repo.Save(ctx, newClient("Page", "Client"))
		require.NoError(t, err)
	}

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 5)

	page, err := repo.FindPage(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, all[2].ID, page[0].ID)
	assert.Equal(t, all[3].ID, page[1].ID)

	last, err := repo.FindPage(ctx, 2, 2)
	require.NoError(t, err)
	assert.Len(t, last, 1)
}

func TestDeleteMissingRowsReportNotFound(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(testDB)
	id := uuid.New()

	assert.ErrorIs(t, repos.Addresses.DeleteByID(ctx, id), ErrAddressNotFound)
	assert.ErrorIs(t, repos.Clients.DeleteByID(ctx, id), ErrClientNotFound)
	assert.ErrorIs(t, repos.Suppliers.DeleteByID(ctx, id), ErrSupplierNotFound)
	assert.ErrorIs(t, repos.Products.DeleteByID(ctx, id), ErrProductNotFound)
	assert.ErrorIs(t, repos.Images.DeleteByID(ctx, id), ErrNotFound)
}

func TestAddressSaveIsInsertOnly(t *testing.T) {
	repo := NewAddressRepository(testDB)
	ctx := context.Background()

	address := &domain.Address{ID: uuid.New(), Country: "Russia", City: "Moscow", Street: "Tverskaya"}
	_, err := repo.Save(ctx, address)
	require.NoError(t, err)

	saved, err := repo.Save(ctx, &domain.Address{ID: address.ID, Country: "X", City: "Y", Street: "Z"})
	require.NoError(t, err)
	assert.Equal(t, address, saved)
}

func TestSupplierSaveKeepsName(t *testing.T) {
	repo := NewSupplierRepository(testDB)
	ctx := context.Background()

	supplier := &domain.Supplier{ID: uuid.New(), Name: "Acme", AddressID: uuid.New(), PhoneNumber: "+100"}
	_, err := repo.Save(ctx, supplier)
	require.NoError(t, err)

	saved, err := repo.Save(ctx, &domain.Supplier{ID: supplier.ID, Name: "Renamed", AddressID: uuid.New(), PhoneNumber: "+200"})
	require.NoError(t, err)
	assert.Equal(t, "Acme", saved.Name)
	assert.Equal(t, "+200", saved.PhoneNumber)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, all)
}

func TestProductRoundTripAndImageReference(t *testing.T) {
	repos := NewRepositories(testDB)
	ctx := context.Background()

	product := newProduct(7)
	saved, err := repos.Products.Save(ctx, product)
	require.NoError(t, err)
	assert.True(t, saved.Price.Equal(product.Price))
	assert.False(t, saved.ImageID.Valid)

	image := &domain.Image{ID: uuid.New(), Bytes: []byte{0xde, 0xad, 0xbe, 0xef}}
	require.NoError(t, repos.Images.Save(ctx, image))

	product.ImageID = uuid.NullUUID{UUID: image.ID, Valid: true}
	product.Name = "ignored"
	saved, err = repos.Products.Save(ctx, product)
	require.NoError(t, err)
	assert.Equal(t, "Desk lamp", saved.Name)
	assert.Equal(t, image.ID, saved.ImageID.UUID)

	found, err := repos.Images.FindByID(ctx, saved.ImageID.UUID)
	require.NoError(t, err)
	assert.Equal(t, image.Bytes, found.Bytes)
}

func TestTxManagerRollsBackOnError(t *testing.T) {
	tm := NewTxManager(testDB)
	ctx := context.Background()

	address := &domain.Address{ID: uuid.New(), Country: "Russia", City: "Omsk", Street: "Lenina"}
	boom := errors.New("boom")

	err := tm.WithTx(ctx, func(ctx context.Context, repos Repositories) error {
		if _, err := repos.Addresses.Save(ctx, address); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = NewAddressRepository(testDB).FindByID(ctx, address.ID)
	assert.ErrorIs(t, err, ErrAddressNotFound)
}

func TestForUpdateSerializesStockReduction(t *testing.T) {
	tm := NewTxManager(testDB)
	ctx := context.Background()

	product := newProduct(50)
	_, err := NewProductRepository(testDB).Save(ctx, product)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := tm.WithTx(ctx, func(ctx context.Context, repos Repositories) error {
				p, err := repos.Products.FindByIDForUpdate(ctx, product.ID)
				if err != nil {
					return err
				}
				p.AvailableStock -= 5
				_, err = repos.Products.Save(ctx, p)
				return err
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	found, err := NewProductRepository(testDB).FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, int32(0), found.AvailableStock)
}
