package gym

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

var ErrGymNotFound = errors.New("gym not found")

type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetGymByID(ctx context.Context, id int) (*Gym, error) {
	query := `
		SELECT id, name, location, owner_name, owner_email, capacity, total_visits, created_at
		FROM gyms
		WHERE id = $1
	`

	var g Gym
	err := r.db.GetContext(ctx, &g, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGymNotFound
		}
		return nil, err
	}

	return &g, nil
}

func (r *Repository) GetAllGyms(ctx context.Context) ([]Gym, error) {
	query := `
		SELECT id, name, location, owner_name, owner_email, capacity, total_visits, created_at
		FROM gyms
		ORDER BY created_at DESC
	`

	var gyms []Gym
	err := r.db.SelectContext(ctx, &gyms, query)
	if err != nil {
		return nil, err
	}

	return gyms, nil
}

// SlotOccupancy counts non-cancelled schedule entries at one slot. Occupancy
// is always derived from entry rows, never kept as a separate counter.
func (r *Repository) SlotOccupancy(ctx context.Context, gymID int, date time.Time, timeSlot string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM schedule_entries
		WHERE gym_id = $1 AND entry_date = $2 AND time_slot = $3 AND status <> 'cancelled'
	`

	var count int
	err := r.db.GetContext(ctx, &count, query, gymID, date, timeSlot)
	if err != nil {
		return 0, err
	}

	return count, nil
}

// IncrementVisitsTx bumps the gym visit counter inside the caller's
// transaction so the counter moves atomically with the entry inserts.
func (r *Repository) IncrementVisitsTx(ctx context.Context, tx *sqlx.Tx, gymID, n int) error {
	_, err := tx.ExecContext(ctx, `
		UPDATE gyms
		SET total_visits = total_visits + $1
		WHERE id = $2
	`, n, gymID)
	return err
}
