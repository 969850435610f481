package schedule

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) BeginTx(ctx context.Context) (*sqlx.Tx, error) {
	return r.db.BeginTxx(ctx, nil)
}

func (r *repository) GetUserEntries(ctx context.Context, userID int) ([]Entry, error) {
	query := `
		SELECT id, user_id, gym_id, membership_id, activity_type, entry_date, time_slot, status, daily_gym_rate, cut_type, created_at
		FROM schedule_entries
		WHERE user_id = $1
		ORDER BY entry_date DESC, created_at DESC
	`

	var entries []Entry
	err := r.db.SelectContext(ctx, &entries, query, userID)
	if err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *repository) GetEntriesByGym(ctx context.Context, gymID int) ([]Entry, error) {
	query := `
		SELECT id, user_id, gym_id, membership_id, activity_type, entry_date, time_slot, status, daily_gym_rate, cut_type, created_at
		FROM schedule_entries
		WHERE gym_id = $1
		ORDER BY entry_date DESC, created_at DESC
	`

	var entries []Entry
	err := r.db.SelectContext(ctx, &entries, query, gymID)
	if err != nil {
		return nil, err
	}

	return entries, nil
}

const countUsedDaysQuery = `
		SELECT COUNT(*)
		FROM schedule_entries
		WHERE membership_id = $1 AND status <> 'cancelled'
	`

func (r *repository) CountUsedDays(ctx context.Context, membershipID int) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, countUsedDaysQuery, membershipID)
	if err != nil {
		return 0, err
	}

	return count, nil
}

// LockMembershipTx takes a row lock on the membership so two concurrent
// submissions cannot both pass the day-budget check.
func (r *repository) LockMembershipTx(ctx context.Context, tx *sqlx.Tx, membershipID int) error {
	var id int
	return tx.GetContext(ctx, &id, `SELECT id FROM memberships WHERE id = $1 FOR UPDATE`, membershipID)
}

func (r *repository) CountUsedDaysTx(ctx context.Context, tx *sqlx.Tx, membershipID int) (int, error) {
	var count int
	err := tx.GetContext(ctx, &count, countUsedDaysQuery, membershipID)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *repository) CountActiveForSlotTx(ctx context.Context, tx *sqlx.Tx, gymID int, date time.Time, timeSlot string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM schedule_entries
		WHERE gym_id = $1 AND entry_date = $2 AND time_slot = $3 AND status <> 'cancelled'
	`

	var count int
	err := tx.GetContext(ctx, &count, query, gymID, date, timeSlot)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *repository) UserHasEntryForDayTx(ctx context.Context, tx *sqlx.Tx, userID, gymID int, date time.Time) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM schedule_entries
			WHERE user_id = $1 AND gym_id = $2 AND entry_date = $3 AND status <> 'cancelled'
		)
	`

	var exists bool
	err := tx.GetContext(ctx, &exists, query, userID, gymID, date)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (r *repository) InsertEntryTx(ctx context.Context, tx *sqlx.Tx, e *Entry) (int, error) {
	query := `
		INSERT INTO schedule_entries (user_id, gym_id, membership_id, activity_type, entry_date, time_slot, status, daily_gym_rate, cut_type)
		VALUES ($1, $2, $3, $4, $5, $6, 'scheduled', $7, $8)
		RETURNING id
	`

	var id int
	err := tx.GetContext(ctx, &id, query,
		e.UserID, e.GymID, e.MembershipID, e.ActivityType, e.EntryDate, e.TimeSlot, e.DailyGymRate, e.CutType)
	if err != nil {
		return 0, err
	}

	return id, nil
}

func (r *repository) InsertRevenueRecordTx(ctx context.Context, tx *sqlx.Tx, gymID int, date time.Time, gymAmount, adminAmount decimal.Decimal, scheduleID int) error {
	query := `
		INSERT INTO revenue_records (gym_id, record_date, gym_amount, admin_amount, schedule_id)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := tx.ExecContext(ctx, query, gymID, date, gymAmount, adminAmount, scheduleID)
	return err
}
