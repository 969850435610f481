package schedule

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gaurav-prajapat/featuresgym-sub010/internal/membership"
)

const dateLayout = "2006-01-02"

type EntryStatus string

const (
	EntryScheduled EntryStatus = "scheduled"
	EntryCompleted EntryStatus = "completed"
	EntryMissed    EntryStatus = "missed"
	EntryCancelled EntryStatus = "cancelled"
)

// Entry is one scheduled gym visit. Created here; later lifecycle
// transitions (completed, missed, cancelled) happen downstream.
type Entry struct {
	ID           int                `db:"id" json:"id"`
	UserID       int                `db:"user_id" json:"user_id"`
	GymID        int                `db:"gym_id" json:"gym_id"`
	MembershipID int                `db:"membership_id" json:"membership_id"`
	ActivityType string             `db:"activity_type" json:"activity_type"`
	EntryDate    time.Time          `db:"entry_date" json:"entry_date"`
	TimeSlot     string             `db:"time_slot" json:"time_slot"`
	Status       EntryStatus        `db:"status" json:"status"`
	DailyGymRate decimal.Decimal    `db:"daily_gym_rate" json:"daily_gym_rate"`
	CutType      membership.CutType `db:"cut_type" json:"cut_type"`
	CreatedAt    time.Time          `db:"created_at" json:"created_at"`
}

// State tracks a submission through the coordinator. Only StateCommitted
// and StateRolledBack are terminal.
type State string

const (
	StateValidating State = "validating"
	StateExpanding  State = "expanding"
	StateFiltering  State = "filtering"
	StatePricing    State = "pricing"
	StateCommitting State = "committing"
	StateCommitted  State = "committed"
	StateRolledBack State = "rolled_back"
)

// SubmitRequest is the wire form of one schedule submission.
type SubmitRequest struct {
	MembershipID      int      `json:"membership_id" binding:"required"`
	GymID             int      `json:"gym_id" binding:"required"`
	ActivityType      string   `json:"activity_type" binding:"required"`
	StartDate         string   `json:"start_date" binding:"required"`
	EndDate           string   `json:"end_date" binding:"required"`
	TimeSlot          string   `json:"time_slot" binding:"required"`
	RecurrencePattern string   `json:"recurrence_pattern"`
	Weekdays          []string `json:"weekdays,omitempty"`
}

// DateFailure reports a single date that failed without aborting its
// siblings.
type DateFailure struct {
	Date   string `json:"date"`
	Reason string `json:"reason"`
}

// SubmitResult is the terminal outcome of a committed submission. Dates the
// user already held are skipped, not failed; full slots fail per date.
type SubmitResult struct {
	State        State         `json:"state"`
	CreatedIDs   []int         `json:"created_ids"`
	SkippedDates []string      `json:"skipped_dates"`
	FullDates    []DateFailure `json:"full_dates,omitempty"`
}
