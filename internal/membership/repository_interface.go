package membership

import (
	"context"

	"github.com/shopspring/decimal"
)

type Repository interface {
	GetMembershipByID(ctx context.Context, id int) (*Membership, error)
	GetPlanByID(ctx context.Context, id int) (*Plan, error)
	GetPlanByGymAndTier(ctx context.Context, gymID int, tier string) (*Plan, error)
	// FindFeeCutForPrice returns the matching price-range cut row, or nil
	// when no range covers the price.
	FindFeeCutForPrice(ctx context.Context, price decimal.Decimal) (*FeeCut, error)
	// GetTierCut returns the tier chart row, or nil for an unknown tier.
	GetTierCut(ctx context.Context, tier string) (*TierCut, error)
}
