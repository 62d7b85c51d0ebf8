package userstore

import (
	"context"
	"database/sql"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VinukaThejana/auth-rs/internal/models"
)

func setupStoreMock(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "postgres")
	return New(sqlxDB), mock
}

func TestCreateWithProvider_CommitsOnSuccess(t *testing.T) {
	store, mock := setupStoreMock(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO \"user\"").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO user_provider").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	user := &models.User{ID: "u1", Email: "a@b.com", Username: "alice", Name: "Alice"}
	link := &models.UserProvider{UserID: "u1", ProviderID: "p1", LinkedAt: 1}

	err := store.CreateWithProvider(context.Background(), user, link)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateWithProvider_RollsBackOnUserInsertFailure(t *testing.T) {
	store, mock := setupStoreMock(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO \"user\"").WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	user := &models.User{ID: "u1", Email: "a@b.com", Username: "alice", Name: "Alice"}
	link := &models.UserProvider{UserID: "u1", ProviderID: "p1", LinkedAt: 1}

	err := store.CreateWithProvider(context.Background(), user, link)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	store, mock := setupStoreMock(t)

	mock.ExpectQuery(`FROM "user" WHERE id`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := store.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetByEmailOrUsername_Found(t *testing.T) {
	store, mock := setupStoreMock(t)

	rows := sqlmock.NewRows([]string{"id", "email", "username", "name", "password", "photo_url", "is_email_verified", "is_two_factor_enabled"}).
		AddRow("u1", "a@b.com", "alice", "Alice", nil, nil, false, false)

	mock.ExpectQuery(`FROM "user" WHERE email`).
		WithArgs("alice").
		WillReturnRows(rows)

	u, err := store.GetByEmailOrUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)
	assert.Equal(t, "a@b.com", u.Email)
}
