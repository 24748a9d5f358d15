package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"shop-backoffice/internal/database"
)

// ErrNotFound is wrapped by every entity-specific not-found error.
var ErrNotFound = errors.New("not found")

var (
	ErrAddressNotFound  = fmt.Errorf("address %w", ErrNotFound)
	ErrClientNotFound   = fmt.Errorf("client %w", ErrNotFound)
	ErrSupplierNotFound = fmt.Errorf("supplier %w", ErrNotFound)
	ErrProductNotFound  = fmt.Errorf("product %w", ErrNotFound)
	ErrImageNotFound    = fmt.Errorf("image %w", ErrNotFound)
)

// DBTX is satisfied by both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// Repositories groups every repository bound to the same connection or
// transaction.
type Repositories struct {
	Addresses AddressRepository
	Clients   ClientRepository
	Suppliers SupplierRepository
	Products  ProductRepository
	Images    ImageRepository
}

// NewRepositories binds all repositories to db.
func NewRepositories(db DBTX) Repositories {
	return Repositories{
		Addresses: NewAddressRepository(db),
		Clients:   NewClientRepository(db),
		Suppliers: NewSupplierRepository(db),
		Products:  NewProductRepository(db),
		Images:    NewImageRepository(db),
	}
}

// TxManager runs a unit of work against repositories sharing one transaction.
type TxManager interface {
	WithTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}

type sqlTxManager struct {
	db *sql.DB
}

// NewTxManager creates a TxManager backed by db.
func NewTxManager(db *sql.DB) TxManager {
	return &sqlTxManager{db: db}
}

func (m *sqlTxManager) WithTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error {
	return database.WithTx(ctx, m.db, func(tx *sql.Tx) error {
		return fn(ctx, NewRepositories(tx))
	})
}

// execDelete runs a DELETE and maps zero affected rows to notFound.
func execDelete(ctx context.Context, db DBTX, query string, id interface{}, notFound error) error {
	result, err := db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return notFound
	}

	return nil
}
