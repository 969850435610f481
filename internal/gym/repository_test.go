package gym

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

func setupMock(t *testing.T) (*Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	return repo, mock, func() { sqlxDB.Close() }
}

func TestGetGymByID(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()
	cap := 12
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, location, owner_name, owner_email, capacity, total_visits, created_at FROM gyms WHERE id = $1")).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "location", "owner_name", "owner_email", "capacity", "total_visits", "created_at"}).
			AddRow(3, "Iron Temple", "Indore", "Ravi", "ravi@example.com", cap, 120, now))

	g, err := repo.GetGymByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Iron Temple", g.Name)
	assert.Equal(t, 12, g.EffectiveCapacity(10))
}

func TestGetGymByIDNotFound(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, location, owner_name, owner_email, capacity, total_visits, created_at FROM gyms WHERE id = $1")).
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetGymByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrGymNotFound)
}

func TestSlotOccupancy(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM schedule_entries WHERE gym_id = $1 AND entry_date = $2 AND time_slot = $3 AND status <> 'cancelled'")).
		WithArgs(3, date, "06:00-07:00").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	count, err := repo.SlotOccupancy(context.Background(), 3, date, "06:00-07:00")
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}
