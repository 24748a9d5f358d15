package repotest

import (
	"context"

	"shop-backoffice/internal/domain"
	"shop-backoffice/internal/repository"

	"github.com/google/uuid"
)

type addressRepo struct{ s *Store }

func (r *addressRepo) Save(_ context.Context, address *domain.Address) (*domain.Address, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.fail("addresses.Save"); err != nil {
		return nil, err
	}
	if existing, ok := r.s.addresses[address.ID]; ok {
		return &existing, nil
	}
	r.s.addresses[address.ID] = *address
	saved := *address
	return &saved, nil
}

func (r *addressRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Address, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	address, ok := r.s.addresses[id]
	if !ok {
		return nil, repository.ErrAddressNotFound
	}
	return &address, nil
}

func (r *addressRepo) DeleteByID(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.fail("addresses.DeleteByID"); err != nil {
		return err
	}
	if _, ok := r.s.addresses[id]; !ok {
		return repository.ErrAddressNotFound
	}
	delete(r.s.addresses, id)
	return nil
}

type clientRepo struct{ s *Store }

func (r *clientRepo) Save(_ context.Context, client *domain.Client) (*domain.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.fail("clients.Save"); err != nil {
		return nil, err
	}
	row := *client
	if existing, ok := r.s.clients[client.ID]; ok {
		row = existing
		row.Gender = client.Gender
		row.AddressID = client.AddressID
	}
	r.s.clients[row.ID] = row
	return &row, nil
}

func (r *clientRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Client, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	client, ok := r.s.clients[id]
	if !ok {
		return nil, repository.ErrClientNotFound
	}
	return &client, nil
}

func (r *clientRepo) DeleteByID(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.clients[id]; !ok {
		return repository.ErrClientNotFound
	}
	delete(r.s.clients, id)
	return nil
}

func (r *clientRepo) FindAll(ctx context.Context) ([]*domain.Client, error) {
	return r.filter(func(*domain.Client) bool { return true }), nil
}

func (r *clientRepo) FindPage(_ context.Context, pageNumber, pageSize int64) ([]*domain.Client, error) {
	all := r.filter(func(*domain.Client) bool { return true })

	start := pageNumber * pageSize
	if start >= int64(len(all)) {
		return []*domain.Client{}, nil
	}
	end := start + pageSize
	if end > int64(len(all)) {
		end = int64(len(all))
	}
	return all[start:end], nil
}

func (r *clientRepo) FindByNameAndSurname(_ context.Context, name, surname string) ([]*domain.Client, error) {
	return r.filter(func(c *domain.Client) bool {
		return c.Name == name && c.Surname == surname
	}), nil
}

func (r *clientRepo) filter(keep func(*domain.Client) bool) []*domain.Client {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := []*domain.Client{}
	for _, id := range sortedIDs(r.s.clients) {
		client := r.s.clients[id]
		if keep(&client) {
			out = append(out, &client)
		}
	}
	return out
}

type supplierRepo struct{ s *Store }

func (r *supplierRepo) Save(_ context.Context, supplier *domain.Supplier) (*domain.Supplier, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.fail("suppliers.Save"); err != nil {
		return nil, err
	}
	row := *supplier
	if existing, ok := r.s.suppliers[supplier.ID]; ok {
		row.Name = existing.Name
	}
	r.s.suppliers[row.ID] = row
	return &row, nil
}

func (r *supplierRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Supplier, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	supplier, ok := r.s.suppliers[id]
	if !ok {
		return nil, repository.ErrSupplierNotFound
	}
	return &supplier, nil
}

func (r *supplierRepo) DeleteByID(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.suppliers[id]; !ok {
		return repository.ErrSupplierNotFound
	}
	delete(r.s.suppliers, id)
	return nil
}

func (r *supplierRepo) FindAll(_ context.Context) ([]*domain.Supplier, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := []*domain.Supplier{}
	for _, id := range sortedIDs(r.s.suppliers) {
		supplier := r.s.suppliers[id]
		out = append(out, &supplier)
	}
	return out, nil
}

type productRepo struct{ s *Store }

func (r *productRepo) Save(_ context.Context, product *domain.Product) (*domain.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.fail("products.Save"); err != nil {
		return nil, err
	}
	row := *product
	row.Price = row.Price.Round(2)
	if existing, ok := r.s.products[product.ID]; ok {
		row.Name = existing.Name
		row.Category = existing.Category
	}
	r.s.products[row.ID] = row
	return &row, nil
}

func (r *productRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	product, ok := r.s.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	return &product, nil
}

// FindByIDForUpdate relies on WithTx serializing transactions.
func (r *productRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return r.FindByID(ctx, id)
}

func (r *productRepo) DeleteByID(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.products[id]; !ok {
		return repository.ErrProductNotFound
	}
	delete(r.s.products, id)
	return nil
}

func (r *productRepo) FindAll(_ context.Context) ([]*domain.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := []*domain.Product{}
	for _, id := range sortedIDs(r.s.products) {
		product := r.s.products[id]
		out = append(out, &product)
	}
	return out, nil
}

type imageRepo struct{ s *Store }

func (r *imageRepo) Save(_ context.Context, image *domain.Image) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.fail("images.Save"); err != nil {
		return err
	}
	row := domain.Image{ID: image.ID, Bytes: append([]byte{}, image.Bytes...)}
	r.s.images[row.ID] = row
	return nil
}

func (r *imageRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Image, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	image, ok := r.s.images[id]
	if !ok {
		return nil, repository.ErrImageNotFound
	}
	return &image, nil
}

func (r *imageRepo) DeleteByID(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.images[id]; !ok {
		return repository.ErrImageNotFound
	}
	delete(r.s.images, id)
	return nil
}
