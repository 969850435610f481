package membership

import (
	"context"
	"fmt"
)

// Entitlement failure taxonomy. These abort a submission before any write.
var (
	ErrMembershipNotBookable   = fmt.Errorf("membership is not active and paid")
	ErrWrongGym                = fmt.Errorf("membership does not cover this gym")
	ErrInsufficientTierPrice   = fmt.Errorf("membership tier price too low for this gym")
	ErrInsufficientDailyBudget = fmt.Errorf("not enough remaining days on daily pass")
)

// UsedDaysCounter reports how many non-cancelled schedule entries a
// membership has consumed. Implemented by the schedule repository.
type UsedDaysCounter interface {
	CountUsedDays(ctx context.Context, membershipID int) (int, error)
}

type EntitlementService struct {
	repo     Repository
	usedDays UsedDaysCounter
}

// Entitlement is the resolved booking permission for one membership against
// one target gym: the plan, its revenue split, and the membership itself.
type Entitlement struct {
	Membership *Membership
	Plan       *Plan
	Split      CutSplit
}

func NewEntitlementService(repo Repository, usedDays UsedDaysCounter) *EntitlementService {
	return &EntitlementService{repo: repo, usedDays: usedDays}
}

// Resolve decides whether the membership may book the target gym and, if
// so, resolves the plan and revenue split it books under. Read-only: the
// gym-switch flow reuses this for its compatibility check.
func (s *EntitlementService) Resolve(ctx context.Context, membershipID, targetGymID int) (*Entitlement, error) {
	m, err := s.repo.GetMembershipByID(ctx, membershipID)
	if err != nil {
		return nil, err
	}

	if !m.IsBookable() {
		return nil, ErrMembershipNotBookable
	}

	plan, err := s.repo.GetPlanByID(ctx, m.PlanID)
	if err != nil {
		return nil, err
	}

	if m.GymID != targetGymID {
		if err := s.checkCrossGym(ctx, plan, targetGymID); err != nil {
			return nil, err
		}
	}

	split, err := ResolveCutSplit(ctx, s.repo, plan)
	if err != nil {
		return nil, err
	}

	return &Entitlement{Membership: m, Plan: plan, Split: split}, nil
}

// checkCrossGym allows booking a foreign gym only on a multi-gym tier whose
// monthly-equivalent price covers the target gym's same-tier plan.
func (s *EntitlementService) checkCrossGym(ctx context.Context, plan *Plan, targetGymID int) error {
	tierCut, err := s.repo.GetTierCut(ctx, plan.Tier)
	if err != nil {
		return err
	}
	if tierCut == nil || !tierCut.MultiGym {
		return ErrWrongGym
	}

	targetPlan, err := s.repo.GetPlanByGymAndTier(ctx, targetGymID, plan.Tier)
	if err != nil {
		return err
	}
	if targetPlan == nil {
		return ErrWrongGym
	}

	if plan.MonthlyEquivalentPrice().LessThan(targetPlan.MonthlyEquivalentPrice()) {
		return ErrInsufficientTierPrice
	}

	return nil
}

// RemainingDays returns the unconsumed day budget of a daily pass.
func (s *EntitlementService) RemainingDays(ctx context.Context, ent *Entitlement) (int, error) {
	used, err := s.usedDays.CountUsedDays(ctx, ent.Membership.ID)
	if err != nil {
		return 0, err
	}
	remaining := ent.Membership.PurchasedDays() - used
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

// CheckDayBudget fails a daily-pass booking that would exceed the remaining
// day budget. Non-daily classes are bounded by their date window instead.
func (s *EntitlementService) CheckDayBudget(ctx context.Context, ent *Entitlement, requestedDays int) error {
	if ent.Plan.DurationClass != ClassDaily {
		return nil
	}

	remaining, err := s.RemainingDays(ctx, ent)
	if err != nil {
		return err
	}
	if requestedDays > remaining {
		return ErrInsufficientDailyBudget
	}
	return nil
}
