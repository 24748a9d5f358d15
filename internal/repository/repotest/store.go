// Package repotest provides an in-memory implementation of every repository
// and of repository.TxManager for tests that should not need PostgreSQL.
package repotest

import (
	"bytes"
	"context"
	"sort"
	"sync"

	"shop-backoffice/internal/domain"
	"shop-backoffice/internal/repository"

	"github.com/google/uuid"
)

// Store keeps rows in maps and mirrors the upsert rules of the SQL
// repositories. Transactions are serialized and restored from a snapshot
// when the unit of work fails.
type Store struct {
	txMu sync.Mutex
	mu   sync.Mutex

	addresses map[uuid.UUID]domain.Address
	clients   map[uuid.UUID]domain.Client
	suppliers map[uuid.UUID]domain.Supplier
	products  map[uuid.UUID]domain.Product
	images    map[uuid.UUID]domain.Image

	failures map[string]error
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		addresses: map[uuid.UUID]domain.Address{},
		clients:   map[uuid.UUID]domain.Client{},
		suppliers: map[uuid.UUID]domain.Supplier{},
		products:  map[uuid.UUID]domain.Product{},
		images:    map[uuid.UUID]domain.Image{},
		failures:  map[string]error{},
	}
}

// FailOn makes every later call of op (for example "clients.Save") return err.
// A nil err clears the failure.
func (s *Store) FailOn(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err == nil {
		delete(s.failures, op)
		return
	}
	s.failures[op] = err
}

// Repositories returns repositories reading and writing this store.
func (s *Store) Repositories() repository.Repositories {
	return repository.Repositories{
		Addresses: &addressRepo{s},
		Clients:   &clientRepo{s},
		Suppliers: &supplierRepo{s},
		Products:  &productRepo{s},
		Images:    &imageRepo{s},
	}
}

func (s *Store) WithTx(ctx context.Context, fn func(ctx context.Context, repos repository.Repositories) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	snap := s.snapshot()
	if err := fn(ctx, s.Repositories()); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

// Counts reports the number of stored addresses, clients, suppliers,
// products and images.
func (s *Store) Counts() (addresses, clients, suppliers, products, images int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.addresses), len(s.clients), len(s.suppliers), len(s.products), len(s.images)
}

type snapshot struct {
	addresses map[uuid.UUID]domain.Address
	clients   map[uuid.UUID]domain.Client
	suppliers map[uuid.UUID]domain.Supplier
	products  map[uuid.UUID]domain.Product
	images    map[uuid.UUID]domain.Image
}

func (s *Store) snapshot() snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return snapshot{
		addresses: copyMap(s.addresses),
		clients:   copyMap(s.clients),
		suppliers: copyMap(s.suppliers),
		products:  copyMap(s.products),
		images:    copyMap(s.images),
	}
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.addresses = snap.addresses
	s.clients = snap.clients
	s.suppliers = snap.suppliers
	s.products = snap.products
	s.images = snap.images
}

// fail must be called with mu held.
func (s *Store) fail(op string) error {
	return s.failures[op]
}

func copyMap[V any](in map[uuid.UUID]V) map[uuid.UUID]V {
	out := make(map[uuid.UUID]V, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func sortedIDs[V any](in map[uuid.UUID]V) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(in))
	for id := range in {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return bytes.Compare(ids[i][:], ids[j][:]) < 0
	})
	return ids
}

var _ repository.TxManager = (*Store)(nil)
