package membership

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("membership or plan not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetMembershipByID(ctx context.Context, id int) (*Membership, error) {
	query := `
		SELECT id, user_id, gym_id, plan_id, start_date, end_date, status, payment_status, created_at
		FROM memberships
		WHERE id = $1
	`

	var m Membership
	err := r.db.GetContext(ctx, &m, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &m, nil
}

// planRow is the raw plan record; duration_class is normalized through
// ParseDurationClass before it leaves the repository.
type planRow struct {
	ID            int             `db:"id"`
	GymID         int             `db:"gym_id"`
	Tier          string          `db:"tier"`
	DurationClass string          `db:"duration_class"`
	Price         decimal.Decimal `db:"price"`
	CreatedAt     time.Time       `db:"created_at"`
}

func (row *planRow) toPlan() (*Plan, error) {
	class, err := ParseDurationClass(row.DurationClass)
	if err != nil {
		return nil, err
	}
	return &Plan{
		ID:            row.ID,
		GymID:         row.GymID,
		Tier:          row.Tier,
		DurationClass: class,
		Price:         row.Price,
		CreatedAt:     row.CreatedAt,
	}, nil
}

func (r *repository) GetPlanByID(ctx context.Context, id int) (*Plan, error) {
	query := `
		SELECT id, gym_id, tier, duration_class, price, created_at
		FROM plans
		WHERE id = $1
	`

	var row planRow
	err := r.db.GetContext(ctx, &row, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return row.toPlan()
}

func (r *repository) GetPlanByGymAndTier(ctx context.Context, gymID int, tier string) (*Plan, error) {
	query := `
		SELECT id, gym_id, tier, duration_class, price, created_at
		FROM plans
		WHERE gym_id = $1 AND tier = $2
		ORDER BY price ASC
		LIMIT 1
	`

	var row planRow
	err := r.db.GetContext(ctx, &row, query, gymID, tier)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return row.toPlan()
}

func (r *repository) FindFeeCutForPrice(ctx context.Context, price decimal.Decimal) (*FeeCut, error) {
	query := `
		SELECT min_price, max_price, gym_pct, admin_pct
		FROM fee_cuts
		WHERE min_price <= $1 AND max_price >= $1
		ORDER BY min_price ASC
		LIMIT 1
	`

	var cut FeeCut
	err := r.db.GetContext(ctx, &cut, query, price)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &cut, nil
}

func (r *repository) GetTierCut(ctx context.Context, tier string) (*TierCut, error) {
	query := `
		SELECT tier, gym_pct, admin_pct, multi_gym
		FROM tier_cuts
		WHERE tier = $1
	`

	var cut TierCut
	err := r.db.GetContext(ctx, &cut, query, tier)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &cut, nil
}
