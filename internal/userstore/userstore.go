// Package userstore is thin CRUD over the `user` and `user_provider`
// tables, following shared/repository/repository.go's BaseRepository
// convention (named-query Create/Update, positional GetByID/List,
// panic-safe Transaction).
package userstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/VinukaThejana/auth-rs/internal/models"
)

const (
	insertUserQuery = `
		INSERT INTO "user" (id, email, username, name, password, photo_url, is_email_verified, is_two_factor_enabled)
		VALUES (:id, :email, :username, :name, :password, :photo_url, :is_email_verified, :is_two_factor_enabled)`

	insertUserProviderQuery = `
		INSERT INTO user_provider (user_id, provider_id, provider_given_user_id, linked_at)
		VALUES (:user_id, :provider_id, :provider_given_user_id, :linked_at)`

	selectUserByIDQuery = `
		SELECT id, email, username, name, password, photo_url, is_email_verified, is_two_factor_enabled
		FROM "user" WHERE id = $1`

	selectUserByEmailOrUsernameQuery = `
		SELECT id, email, username, name, password, photo_url, is_email_verified, is_two_factor_enabled
		FROM "user" WHERE email = $1 OR username = $1`

	updateEmailQuery           = `UPDATE "user" SET email = $2, is_email_verified = FALSE WHERE id = $1`
	updateUsernameQuery        = `UPDATE "user" SET username = $2 WHERE id = $1`
	updatePasswordQuery        = `UPDATE "user" SET password = $2 WHERE id = $1`
	markEmailVerifiedQuery     = `UPDATE "user" SET is_email_verified = TRUE WHERE id = $1`
	deleteUserQuery            = `DELETE FROM "user" WHERE id = $1`
)

// ErrNotFound is returned when a user row does not exist.
var ErrNotFound = errors.New("user not found")

// Store is the durable user repository.
type Store struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// CreateWithProvider inserts the user row and its "email" provider
// linkage in a single transaction.
func (s *Store) CreateWithProvider(ctx context.Context, user *models.User, link *models.UserProvider) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if _, err := tx.NamedExecContext(ctx, insertUserQuery, user); err != nil {
		tx.Rollback()
		return err
	}
	if _, err := tx.NamedExecContext(ctx, insertUserProviderQuery, link); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (s *Store) GetByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := s.db.GetContext(ctx, &u, selectUserByIDQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// GetByEmailOrUsername looks a user up by either credential, matching
// login's single-query credential lookup.
func (s *Store) GetByEmailOrUsername(ctx context.Context, credential string) (*models.User, error) {
	var u models.User
	if err := s.db.GetContext(ctx, &u, selectUserByEmailOrUsernameQuery, credential); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (s *Store) UpdateEmail(ctx context.Context, id, email string) error {
	_, err := s.db.ExecContext(ctx, updateEmailQuery, id, email)
	return err
}

func (s *Store) UpdateUsername(ctx context.Context, id, username string) error {
	_, err := s.db.ExecContext(ctx, updateUsernameQuery, id, username)
	return err
}

func (s *Store) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	_, err := s.db.ExecContext(ctx, updatePasswordQuery, id, passwordHash)
	return err
}

func (s *Store) MarkEmailVerified(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, markEmailVerifiedQuery, id)
	return err
}

func (s *Store) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, deleteUserQuery, id)
	return err
}
