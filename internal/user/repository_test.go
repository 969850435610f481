package user

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "sqlmock")
	defer sqlxDB.Close()

	repo := NewRepository(sqlxDB)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email, role, created_at FROM users WHERE id = $1")).
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "role", "created_at"}).
			AddRow(10, "Asha", "asha@example.com", "user", time.Now()))

	u, err := repo.FindByID(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", u.Email)
}

func TestFindByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "sqlmock")
	defer sqlxDB.Close()

	repo := NewRepository(sqlxDB)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email, role, created_at FROM users WHERE id = $1")).
		WithArgs(404).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = repo.FindByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
