package schedule

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

// Repository persists schedule entries and their revenue records. The Tx
// variants run inside the submission transaction so every check-then-insert
// pair is atomic under the store's row locking.
type Repository interface {
	BeginTx(ctx context.Context) (*sqlx.Tx, error)

	GetUserEntries(ctx context.Context, userID int) ([]Entry, error)
	GetEntriesByGym(ctx context.Context, gymID int) ([]Entry, error)
	CountUsedDays(ctx context.Context, membershipID int) (int, error)

	LockMembershipTx(ctx context.Context, tx *sqlx.Tx, membershipID int) error
	CountUsedDaysTx(ctx context.Context, tx *sqlx.Tx, membershipID int) (int, error)
	CountActiveForSlotTx(ctx context.Context, tx *sqlx.Tx, gymID int, date time.Time, timeSlot string) (int, error)
	UserHasEntryForDayTx(ctx context.Context, tx *sqlx.Tx, userID, gymID int, date time.Time) (bool, error)
	InsertEntryTx(ctx context.Context, tx *sqlx.Tx, e *Entry) (int, error)
	InsertRevenueRecordTx(ctx context.Context, tx *sqlx.Tx, gymID int, date time.Time, gymAmount, adminAmount decimal.Decimal, scheduleID int) error
}
