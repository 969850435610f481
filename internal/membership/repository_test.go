package membership

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	return repo, mock, func() { sqlxDB.Close() }
}

func TestGetMembershipByID(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, user_id, gym_id, plan_id, start_date, end_date, status, payment_status, created_at FROM memberships WHERE id = $1")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "gym_id", "plan_id", "start_date", "end_date", "status", "payment_status", "created_at"}).
			AddRow(1, 10, 3, 5, now, now.AddDate(0, 1, 0), "active", "paid", now))

	m, err := repo.GetMembershipByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, m.ID)
	assert.Equal(t, StatusActive, m.Status)
	assert.True(t, m.IsBookable())
}

func TestGetMembershipByIDNotFound(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, user_id, gym_id, plan_id, start_date, end_date, status, payment_status, created_at FROM memberships WHERE id = $1")).
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetMembershipByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetPlanByIDNormalizesLegacyDuration(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, gym_id, tier, duration_class, price, created_at FROM plans WHERE id = $1")).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "gym_id", "tier", "duration_class", "price", "created_at"}).
			AddRow(5, 3, "gold", "Quaterly", "1800.00", now))

	plan, err := repo.GetPlanByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, ClassQuarterly, plan.DurationClass)
	assert.Equal(t, "1800", plan.Price.String())
}

func TestGetPlanByGymAndTierMissing(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, gym_id, tier, duration_class, price, created_at FROM plans WHERE gym_id = $1 AND tier = $2 ORDER BY price ASC LIMIT 1")).
		WithArgs(9, "gold").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	plan, err := repo.GetPlanByGymAndTier(context.Background(), 9, "gold")
	require.NoError(t, err)
	assert.Nil(t, plan)
}

func TestFindFeeCutForPrice(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT min_price, max_price, gym_pct, admin_pct FROM fee_cuts WHERE min_price <= $1 AND max_price >= $1 ORDER BY min_price ASC LIMIT 1")).
		WillReturnRows(sqlmock.NewRows([]string{"min_price", "max_price", "gym_pct", "admin_pct"}).
			AddRow("500.00", "1000.00", "75", "25"))

	cut, err := repo.FindFeeCutForPrice(context.Background(), decimal.NewFromInt(700))
	require.NoError(t, err)
	require.NotNil(t, cut)
	assert.Equal(t, "75", cut.GymPct.String())
}

func TestGetTierCutUnknownTier(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT tier, gym_pct, admin_pct, multi_gym FROM tier_cuts WHERE tier = $1")).
		WithArgs("bronze").
		WillReturnRows(sqlmock.NewRows([]string{"tier"}))

	cut, err := repo.GetTierCut(context.Background(), "bronze")
	require.NoError(t, err)
	assert.Nil(t, cut)
}
