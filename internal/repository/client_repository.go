package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"shop-backoffice/internal/domain"

	"github.com/google/uuid"
)

// ClientRepository defines the interface for client data access
type ClientRepository interface {
	Save(ctx context.Context, client *domain.Client) (*domain.Client, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
	FindAll(ctx context.Context) ([]*domain.Client, error)
	FindPage(ctx context.Context, pageNumber, pageSize int64) ([]*domain.Client, error)
	FindByNameAndSurname(ctx context.Context, name, surname string) ([]*domain.Client, error)
}

type clientRepository struct {
	db DBTX
}

const clientColumns = `id, name, surname, birthday, gender, registration_date, address_id`

// NewClientRepository creates a new instance of ClientRepository
func NewClientRepository(db DBTX) ClientRepository {
	return &clientRepository{db: db}
}

func scanClient(row rowScanner) (*domain.Client, error) {
	client := &domain.Client{}
	err := row.Scan(
		&client.ID,
		&client.Name,
		&client.Surname,
		&client.Birthday,
		&client.Gender,
		&client.RegistrationDate,
		&client.AddressID,
	)
	return client, err
}

// Save upserts a client. Name, surname, birthday and registration date are
// fixed once the row exists.
func (r *clientRepository) Save(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	query := `
		INSERT INTO client (` + clientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE
		SET gender = EXCLUDED.gender, address_id = EXCLUDED.address_id
		RETURNING ` + clientColumns

	saved, err := scanClient(r.db.QueryRowContext(ctx, query,
		client.ID,
		client.Name,
		client.Surname,
		client.Birthday,
		client.Gender,
		client.RegistrationDate,
		client.AddressID,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to save client: %w", err)
	}

	return saved, nil
}

func (r *clientRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM client WHERE id = $1`

	client, err := scanClient(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to find client by ID: %w", err)
	}

	return client, nil
}

func (r *clientRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return execDelete(ctx, r.db, `DELETE FROM client WHERE id = $1`, id, ErrClientNotFound)
}

func (r *clientRepository) FindAll(ctx context.Context) ([]*domain.Client, error) {
	return r.list(ctx, `SELECT `+clientColumns+` FROM client ORDER BY id`)
}

// FindPage returns page pageNumber (zero based) of pageSize clients ordered by id.
func (r *clientRepository) FindPage(ctx context.Context, pageNumber, pageSize int64) ([]*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM client ORDER BY id LIMIT $1 OFFSET $2`
	return r.list(ctx, query, pageSize, pageNumber*pageSize)
}

func (r *clientRepository) FindByNameAndSurname(ctx context.Context, name, surname string) ([]*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM client WHERE name = $1 AND surname = $2 ORDER BY id`
	return r.list(ctx, query, name, surname)
}

func (r *clientRepository) list(ctx context.Context, query string, args ...interface{}) ([]*domain.Client, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	clients := []*domain.Client{}
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, client)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating clients: %w", err)
	}

	return clients, nil
}
