package schedule

import (
	"github.com/shopspring/decimal"

	"github.com/gaurav-prajapat/featuresgym-sub010/internal/membership"
)

var (
	hundred = decimal.NewFromInt(100)
	oneCent = decimal.New(1, -2)
)

// RateSet is the per-day revenue split applied identically to every
// surviving date of one submission.
type RateSet struct {
	GymRate       decimal.Decimal    `json:"gym_rate"`
	AdminRate     decimal.Decimal    `json:"admin_rate"`
	CutType       membership.CutType `json:"cut_type"`
	GymCutTotal   decimal.Decimal    `json:"gym_cut_total"`
	AdminCutTotal decimal.Decimal    `json:"admin_cut_total"`
}

// AllocateRevenue computes the daily gym/platform rates for a submission.
//
// The gym total is floored to a whole currency unit and the platform takes
// the remainder, so the two shares always reconcile exactly against the
// plan price. A daily-class plan bills the full totals on every scheduled
// day (one plan unit is one day). Other classes spread the totals over the
// class's fixed duration; if rounding would let gymRate*dateCount overrun
// the gym total, the gym rate gives up one cent before both rates are
// truncated to two decimals.
func AllocateRevenue(price decimal.Decimal, split membership.CutSplit, class membership.DurationClass, dateCount int) RateSet {
	gymTotal := price.Mul(split.GymPct).Div(hundred).Floor()
	adminTotal := price.Sub(gymTotal)

	rs := RateSet{
		CutType:       split.Type,
		GymCutTotal:   gymTotal,
		AdminCutTotal: adminTotal,
	}

	if class == membership.ClassDaily {
		rs.GymRate = gymTotal
		rs.AdminRate = adminTotal
		return rs
	}

	days := decimal.NewFromInt(int64(class.DurationDays()))
	gymRate := gymTotal.Div(days)
	adminRate := adminTotal.Div(days)

	if gymRate.Mul(decimal.NewFromInt(int64(dateCount))).GreaterThan(gymTotal) {
		gymRate = gymRate.Sub(oneCent)
	}

	rs.GymRate = gymRate.Truncate(2)
	rs.AdminRate = adminRate.Truncate(2)
	return rs
}
