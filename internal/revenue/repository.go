package revenue

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type Repository interface {
	GetGymSummary(ctx context.Context, gymID int, from, to time.Time) (*Summary, error)
	GetRecordsBySchedule(ctx context.Context, scheduleID int) ([]Record, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const dateLayout = "2006-01-02"

// GetGymSummary aggregates the ledger for one gym over an inclusive date
// range. Totals are summed in the store; the ledger is append-only so the
// numbers are stable for any committed range.
func (r *repository) GetGymSummary(ctx context.Context, gymID int, from, to time.Time) (*Summary, error) {
	query := `
		SELECT record_date::date AS day,
		       COALESCE(SUM(gym_amount), 0) AS gym_amount,
		       COALESCE(SUM(admin_amount), 0) AS admin_amount,
		       COUNT(*) AS entries
		FROM revenue_records
		WHERE gym_id = $1 AND record_date >= $2 AND record_date <= $3
		GROUP BY record_date::date
		ORDER BY record_date::date
	`

	type dayRow struct {
		Day         time.Time       `db:"day"`
		GymAmount   decimal.Decimal `db:"gym_amount"`
		AdminAmount decimal.Decimal `db:"admin_amount"`
		Entries     int             `db:"entries"`
	}

	var rows []dayRow
	if err := r.db.SelectContext(ctx, &rows, query, gymID, from, to); err != nil {
		return nil, err
	}

	s := &Summary{
		GymID:       gymID,
		From:        from.Format(dateLayout),
		To:          to.Format(dateLayout),
		GymAmount:   decimal.Zero,
		AdminAmount: decimal.Zero,
		Days:        make([]DayTotal, 0, len(rows)),
	}

	for _, row := range rows {
		s.GymAmount = s.GymAmount.Add(row.GymAmount)
		s.AdminAmount = s.AdminAmount.Add(row.AdminAmount)
		s.Entries += row.Entries
		s.Days = append(s.Days, DayTotal{
			Date:        row.Day.Format(dateLayout),
			GymAmount:   row.GymAmount,
			AdminAmount: row.AdminAmount,
			Entries:     row.Entries,
		})
	}

	return s, nil
}

func (r *repository) GetRecordsBySchedule(ctx context.Context, scheduleID int) ([]Record, error) {
	query := `
		SELECT id, gym_id, record_date, gym_amount, admin_amount, schedule_id, created_at
		FROM revenue_records
		WHERE schedule_id = $1
		ORDER BY record_date
	`

	var records []Record
	if err := r.db.SelectContext(ctx, &records, query, scheduleID); err != nil {
		return nil, err
	}

	return records, nil
}
