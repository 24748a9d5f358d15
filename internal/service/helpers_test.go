package service

import (
	"time"

	"shop-backoffice/internal/dto"
	"shop-backoffice/internal/repository/repotest"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type services struct {
	store     *repotest.Store
	addresses AddressService
	clients   ClientService
	suppliers SupplierService
	products  ProductService
	images    ImageService
}

func newServices() *services {
	store := repotest.NewStore()
	repos := store.Repositories()
	products := NewProductService(repos.Products, store)

	return &services{
		store:     store,
		addresses: NewAddressService(repos.Addresses),
		clients:   NewClientService(repos.Clients, store),
		suppliers: NewSupplierService(repos.Suppliers, store),
		products:  products,
		images:    NewImageService(repos.Images, products),
	}
}

func pgDate(t time.Time) pgtype.Date {
	return pgtype.Date{Time: t, Valid: true}
}

func newAddressDTO() *dto.AddressDTO {
	return &dto.AddressDTO{ID: uuid.New(), Country: "Russia", City: "Samara", Street: "Molodogvardeyskaya"}
}

func newClientDTO(name, surname string) *dto.ClientDTO {
	return &dto.ClientDTO{
		ID:               uuid.New(),
		Name:             name,
		Surname:          surname,
		Birthday:         pgDate(time.Date(1995, time.August, 9, 0, 0, 0, 0, time.UTC)),
		Gender:           "female",
		RegistrationDate: pgDate(time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)),
		AddressID:        uuid.New(),
	}
}

func newSupplierDTO() *dto.SupplierDTO {
	return &dto.SupplierDTO{ID: uuid.New(), Name: "Acme", AddressID: uuid.New(), PhoneNumber: "+7 495 000 00 00"}
}

func newProductDTO(stock int32) *dto.ProductDTO {
	return &dto.ProductDTO{
		ID:             uuid.New(),
		Name:           "Teapot",
		Category:       "kitchen",
		Price:          decimal.NewNullDecimal(decimal.RequireFromString("12.50")),
		AvailableStock: &stock,
		SupplierID:     uuid.New(),
	}
}

func intPtr(v int) *int {
	return &v
}
