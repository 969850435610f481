package membership

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusExpired   Status = "expired"
	StatusCancelled Status = "cancelled"
)

const PaymentPaid = "paid"

// DurationClass is the closed set of plan durations. Raw strings from the
// store or the wire must go through ParseDurationClass exactly once.
type DurationClass string

const (
	ClassDaily      DurationClass = "daily"
	ClassWeekly     DurationClass = "weekly"
	ClassMonthly    DurationClass = "monthly"
	ClassQuarterly  DurationClass = "quarterly"
	ClassHalfYearly DurationClass = "half_yearly"
	ClassYearly     DurationClass = "yearly"
)

// ParseDurationClass normalizes a raw duration string. Legacy plan rows
// carry the "quaterly" misspelling, so it is accepted here and nowhere else.
func ParseDurationClass(raw string) (DurationClass, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")

	switch s {
	case "daily":
		return ClassDaily, nil
	case "weekly":
		return ClassWeekly, nil
	case "monthly":
		return ClassMonthly, nil
	case "quarterly", "quaterly":
		return ClassQuarterly, nil
	case "half_yearly", "halfyearly":
		return ClassHalfYearly, nil
	case "yearly":
		return ClassYearly, nil
	}
	return "", fmt.Errorf("unknown duration class %q", raw)
}

// DurationDays returns the billing-day count of one plan unit.
func (c DurationClass) DurationDays() int {
	switch c {
	case ClassDaily:
		return 1
	case ClassWeekly:
		return 7
	case ClassMonthly:
		return 30
	case ClassQuarterly:
		return 90
	case ClassHalfYearly:
		return 180
	case ClassYearly:
		return 365
	}
	return 0
}

var (
	thirty = decimal.NewFromInt(30)
	four   = decimal.NewFromInt(4)
	three  = decimal.NewFromInt(3)
	six    = decimal.NewFromInt(6)
	twelve = decimal.NewFromInt(12)
)

// MonthlyEquivalent normalizes a price of this duration class to a monthly
// rate so plans of different durations can be compared.
func (c DurationClass) MonthlyEquivalent(price decimal.Decimal) decimal.Decimal {
	switch c {
	case ClassDaily:
		return price.Mul(thirty)
	case ClassWeekly:
		return price.Mul(four)
	case ClassMonthly:
		return price
	case ClassQuarterly:
		return price.DivRound(three, 4)
	case ClassHalfYearly:
		return price.DivRound(six, 4)
	case ClassYearly:
		return price.DivRound(twelve, 4)
	}
	return decimal.Zero
}

type Membership struct {
	ID            int       `db:"id" json:"id"`
	UserID        int       `db:"user_id" json:"user_id"`
	GymID         int       `db:"gym_id" json:"gym_id"`
	PlanID        int       `db:"plan_id" json:"plan_id"`
	StartDate     time.Time `db:"start_date" json:"start_date"`
	EndDate       time.Time `db:"end_date" json:"end_date"`
	Status        Status    `db:"status" json:"status"`
	PaymentStatus string    `db:"payment_status" json:"payment_status"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// IsBookable reports whether this membership may create schedule entries.
func (m *Membership) IsBookable() bool {
	return m.Status == StatusActive && m.PaymentStatus == PaymentPaid
}

// PurchasedDays is the inclusive day count of the membership window. For a
// daily pass this is the purchased day budget.
func (m *Membership) PurchasedDays() int {
	start := m.StartDate.Truncate(24 * time.Hour)
	end := m.EndDate.Truncate(24 * time.Hour)
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

type Plan struct {
	ID            int             `json:"id"`
	GymID         int             `json:"gym_id"`
	Tier          string          `json:"tier"`
	DurationClass DurationClass   `json:"duration_class"`
	Price         decimal.Decimal `json:"price"`
	CreatedAt     time.Time       `json:"created_at"`
}

// MonthlyEquivalentPrice is the plan price normalized to a monthly rate.
func (p *Plan) MonthlyEquivalentPrice() decimal.Decimal {
	return p.DurationClass.MonthlyEquivalent(p.Price)
}
