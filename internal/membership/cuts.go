package membership

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

var ErrNoCutConfigured = errors.New("no revenue cut configured for plan")

type CutType string

const (
	CutFeeBased  CutType = "fee_based"
	CutTierBased CutType = "tier_based"
)

// CutSplit is the resolved gym/platform percentage split for a plan.
type CutSplit struct {
	Type     CutType         `json:"type"`
	GymPct   decimal.Decimal `json:"gym_pct"`
	AdminPct decimal.Decimal `json:"admin_pct"`
}

// TierCut is a row of the tier-based cut chart. MultiGym marks tiers whose
// memberships may book compatible gyms other than their own.
type TierCut struct {
	Tier     string          `db:"tier" json:"tier"`
	GymPct   decimal.Decimal `db:"gym_pct" json:"gym_pct"`
	AdminPct decimal.Decimal `db:"admin_pct" json:"admin_pct"`
	MultiGym bool            `db:"multi_gym" json:"multi_gym"`
}

// FeeCut is a row of the price-range cut chart.
type FeeCut struct {
	MinPrice decimal.Decimal `db:"min_price" json:"min_price"`
	MaxPrice decimal.Decimal `db:"max_price" json:"max_price"`
	GymPct   decimal.Decimal `db:"gym_pct" json:"gym_pct"`
	AdminPct decimal.Decimal `db:"admin_pct" json:"admin_pct"`
}

// ResolveCutSplit picks the revenue split for a plan. The price-range chart
// wins over the tier chart when both match; that priority is the rule, not
// an accident of query order.
func ResolveCutSplit(ctx context.Context, repo Repository, plan *Plan) (CutSplit, error) {
	feeCut, err := repo.FindFeeCutForPrice(ctx, plan.Price)
	if err != nil {
		return CutSplit{}, err
	}
	if feeCut != nil {
		return CutSplit{Type: CutFeeBased, GymPct: feeCut.GymPct, AdminPct: feeCut.AdminPct}, nil
	}

	tierCut, err := repo.GetTierCut(ctx, plan.Tier)
	if err != nil {
		return CutSplit{}, err
	}
	if tierCut == nil {
		return CutSplit{}, ErrNoCutConfigured
	}
	return CutSplit{Type: CutTierBased, GymPct: tierCut.GymPct, AdminPct: tierCut.AdminPct}, nil
}
