// Package adminstore is thin CRUD over the `admin` and `admin_api_key`
// tables.
package adminstore

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/VinukaThejana/auth-rs/internal/models"
)

const (
	insertAdminQuery      = `INSERT INTO admin (id, email, description) VALUES ($1, $2, $3)`
	deleteAdminQuery      = `DELETE FROM admin WHERE email = $1`
	selectAdminByEmailQuery = `SELECT id, email, description FROM admin WHERE email = $1`

	insertAPIKeyQuery = `
		INSERT INTO admin_api_key (id, key, description, owned_by, created_at, last_used)
		VALUES (:id, :key, :description, :owned_by, :created_at, :last_used)`
	listAPIKeysByOwnerQuery = `
		SELECT id, key, description, owned_by, created_at, last_used
		FROM admin_api_key WHERE owned_by = $1`
	deleteAPIKeyQuery = `DELETE FROM admin_api_key WHERE id = $1`
)

// ErrNotFound is returned when an admin row does not exist.
var ErrNotFound = errors.New("admin not found")

// Store is the durable admin repository.
type Store struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Create(ctx context.Context, id, email, description string) error {
	_, err := s.db.ExecContext(ctx, insertAdminQuery, id, email, description)
	return err
}

func (s *Store) Delete(ctx context.Context, email string) error {
	_, err := s.db.ExecContext(ctx, deleteAdminQuery, email)
	return err
}

func (s *Store) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var a models.Admin
	if err := s.db.GetContext(ctx, &a, selectAdminByEmailQuery, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (s *Store) CreateAPIKey(ctx context.Context, row *models.AdminAPIKey) error {
	_, err := s.db.NamedExecContext(ctx, insertAPIKeyQuery, row)
	return err
}

func (s *Store) ListAPIKeys(ctx context.Context, ownerEmail string) ([]models.AdminAPIKey, error) {
	var keys []models.AdminAPIKey
	if err := s.db.SelectContext(ctx, &keys, listAPIKeysByOwnerQuery, ownerEmail); err != nil {
		return nil, err
	}
	return keys, nil
}

func (s *Store) DeleteAPIKey(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, deleteAPIKeyQuery, id)
	return err
}
