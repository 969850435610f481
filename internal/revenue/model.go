package revenue

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record is one row of the append-only revenue ledger: the per-day split of
// a single schedule entry.
type Record struct {
	ID          int             `db:"id" json:"id"`
	GymID       int             `db:"gym_id" json:"gym_id"`
	RecordDate  time.Time       `db:"record_date" json:"record_date"`
	GymAmount   decimal.Decimal `db:"gym_amount" json:"gym_amount"`
	AdminAmount decimal.Decimal `db:"admin_amount" json:"admin_amount"`
	ScheduleID  int             `db:"schedule_id" json:"schedule_id"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
}

// DayTotal is the ledger aggregated over one calendar day.
type DayTotal struct {
	Date        string          `db:"day" json:"date"`
	GymAmount   decimal.Decimal `db:"gym_amount" json:"gym_amount"`
	AdminAmount decimal.Decimal `db:"admin_amount" json:"admin_amount"`
	Entries     int             `db:"entries" json:"entries"`
}

// Summary is a gym's ledger rollup over a date range, with the per-day
// breakdown.
type Summary struct {
	GymID       int             `json:"gym_id"`
	From        string          `json:"from"`
	To          string          `json:"to"`
	GymAmount   decimal.Decimal `json:"gym_amount"`
	AdminAmount decimal.Decimal `json:"admin_amount"`
	Entries     int             `json:"entries"`
	Days        []DayTotal      `json:"days"`
}
