package schedule

import (
	"context"
	"time"

	"github.com/gaurav-prajapat/featuresgym-sub010/internal/gym"
	"github.com/gaurav-prajapat/featuresgym-sub010/internal/logger"
	"github.com/gaurav-prajapat/featuresgym-sub010/internal/membership"
	"github.com/gaurav-prajapat/featuresgym-sub010/internal/metrics"
	"github.com/gaurav-prajapat/featuresgym-sub010/internal/user"
)

type Service interface {
	SubmitSchedule(ctx context.Context, userID int, req SubmitRequest) (*SubmitResult, error)
	GetUserEntries(ctx context.Context, userID int) ([]Entry, error)
	GetEntriesByGym(ctx context.Context, gymID int) ([]Entry, error)
}

// Notifier queues the post-commit batch notifications. Delivery is
// fire-and-forget; a queue failure never unwinds a committed batch.
type Notifier interface {
	SendScheduleConfirmation(ctx context.Context, email, name, gymName, activity, timeSlot string, dates []string) error
	SendGymScheduleAlert(ctx context.Context, ownerEmail, gymName, memberName, activity, timeSlot string, dates []string) error
}

type UserFinder interface {
	FindByID(ctx context.Context, id int) (*user.User, error)
}

type service struct {
	repo            Repository
	gymRepo         gym.GymRepository
	userRepo        UserFinder
	entitlements    *membership.EntitlementService
	notifier        Notifier
	defaultCapacity int
	now             func() time.Time
}

func NewService(
	repo Repository,
	gymRepo gym.GymRepository,
	userRepo UserFinder,
	entitlements *membership.EntitlementService,
	notifier Notifier,
	defaultCapacity int,
) Service {
	return &service{
		repo:            repo,
		gymRepo:         gymRepo,
		userRepo:        userRepo,
		entitlements:    entitlements,
		notifier:        notifier,
		defaultCapacity: defaultCapacity,
		now:             time.Now,
	}
}

// SubmitSchedule runs one submission through the coordinator state machine:
// validate entitlement, expand the recurrence, filter each date against
// capacity and duplicates, price once, commit atomically, then notify.
// Entitlement and validation failures abort before any write; persistence
// failures and the in-transaction daily-budget re-check roll everything
// back.
func (s *service) SubmitSchedule(ctx context.Context, userID int, req SubmitRequest) (*SubmitResult, error) {
	// Validating
	ent, err := s.entitlements.Resolve(ctx, req.MembershipID, req.GymID)
	if err != nil {
		return s.rolledBack(err)
	}
	if ent.Membership.UserID != userID {
		return s.rolledBack(ErrNotOwner)
	}

	// Expanding
	dates, err := s.expand(req)
	if err != nil {
		return s.rolledBack(err)
	}

	// The membership window bounds every entry. Dates past end_date would
	// keep billing the plan's day rate beyond the paid period.
	if len(dates) > 0 {
		first, last := dates[0], dates[len(dates)-1]
		if first.Before(ent.Membership.StartDate) || last.After(ent.Membership.EndDate) {
			return s.rolledBack(validationErr("schedule dates must fall within the membership period %s to %s",
				ent.Membership.StartDate.Format(dateLayout), ent.Membership.EndDate.Format(dateLayout)))
		}
	}

	if err := s.entitlements.CheckDayBudget(ctx, ent, len(dates)); err != nil {
		return s.rolledBack(err)
	}

	g, err := s.gymRepo.GetGymByID(ctx, req.GymID)
	if err != nil {
		return s.rolledBack(err)
	}
	capacity := g.EffectiveCapacity(s.defaultCapacity)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return s.rolledBack(persistenceErr(err))
	}
	defer tx.Rollback()

	if err := s.repo.LockMembershipTx(ctx, tx, ent.Membership.ID); err != nil {
		return s.rolledBack(persistenceErr(err))
	}

	// Filtering: duplicates are skipped by policy, full slots fail per date.
	var surviving []time.Time
	var skipped []string
	var full []DateFailure
	for _, d := range dates {
		dup, err := s.repo.UserHasEntryForDayTx(ctx, tx, ent.Membership.UserID, req.GymID, d)
		if err != nil {
			return s.rolledBack(persistenceErr(err))
		}
		if dup {
			skipped = append(skipped, d.Format(dateLayout))
			continue
		}

		occupancy, err := s.repo.CountActiveForSlotTx(ctx, tx, req.GymID, d, req.TimeSlot)
		if err != nil {
			return s.rolledBack(persistenceErr(err))
		}
		if occupancy >= capacity {
			full = append(full, DateFailure{Date: d.Format(dateLayout), Reason: ErrCapacityExceeded.Error()})
			continue
		}

		surviving = append(surviving, d)
	}

	// Daily-pass budget re-check under the membership row lock: a
	// concurrent submission may have consumed days since the pre-check.
	if ent.Plan.DurationClass == membership.ClassDaily {
		used, err := s.repo.CountUsedDaysTx(ctx, tx, ent.Membership.ID)
		if err != nil {
			return s.rolledBack(persistenceErr(err))
		}
		if used+len(surviving) > ent.Membership.PurchasedDays() {
			return s.rolledBack(membership.ErrInsufficientDailyBudget)
		}
	}

	// Pricing: the surviving-count clawback keeps the allocation within the
	// plan's gym total.
	rates := AllocateRevenue(ent.Plan.Price, ent.Split, ent.Plan.DurationClass, len(surviving))

	// Committing
	createdIDs := make([]int, 0, len(surviving))
	for _, d := range surviving {
		entry := &Entry{
			UserID:       ent.Membership.UserID,
			GymID:        req.GymID,
			MembershipID: ent.Membership.ID,
			ActivityType: req.ActivityType,
			EntryDate:    d,
			TimeSlot:     req.TimeSlot,
			DailyGymRate: rates.GymRate,
			CutType:      rates.CutType,
		}

		id, err := s.repo.InsertEntryTx(ctx, tx, entry)
		if err != nil {
			return s.rolledBack(persistenceErr(err))
		}

		if err := s.repo.InsertRevenueRecordTx(ctx, tx, req.GymID, d, rates.GymRate, rates.AdminRate, id); err != nil {
			return s.rolledBack(persistenceErr(err))
		}

		createdIDs = append(createdIDs, id)
	}

	if len(createdIDs) > 0 {
		if err := s.gymRepo.IncrementVisitsTx(ctx, tx, req.GymID, len(createdIDs)); err != nil {
			return s.rolledBack(persistenceErr(err))
		}
	}

	if err := tx.Commit(); err != nil {
		return s.rolledBack(persistenceErr(err))
	}

	if len(createdIDs) > 0 {
		// The batch is already committed. A client hanging up must not
		// cancel the enqueue, so detach from the request context.
		s.notify(context.WithoutCancel(ctx), ent, g, req, surviving)
	}

	metrics.RecordSubmission(string(StateCommitted), len(createdIDs), len(skipped), len(full))
	logger.Info("schedule batch committed",
		"membership_id", ent.Membership.ID,
		"gym_id", req.GymID,
		"created", len(createdIDs),
		"skipped", len(skipped),
		"full", len(full),
	)

	return &SubmitResult{
		State:        StateCommitted,
		CreatedIDs:   createdIDs,
		SkippedDates: skipped,
		FullDates:    full,
	}, nil
}

func (s *service) expand(req SubmitRequest) ([]time.Time, error) {
	pattern, err := ParsePattern(req.RecurrencePattern)
	if err != nil {
		return nil, err
	}

	weekdays, err := ParseWeekdays(req.Weekdays)
	if err != nil {
		return nil, err
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, validationErr("invalid start date %q", req.StartDate)
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return nil, validationErr("invalid end date %q", req.EndDate)
	}

	return ExpandDates(start, end, pattern, weekdays, s.now())
}

func (s *service) rolledBack(err error) (*SubmitResult, error) {
	metrics.RecordSubmission(string(StateRolledBack), 0, 0, 0)
	return nil, err
}

func (s *service) notify(ctx context.Context, ent *membership.Entitlement, g *gym.Gym, req SubmitRequest, dates []time.Time) {
	formatted := make([]string, len(dates))
	for i, d := range dates {
		formatted[i] = d.Format(dateLayout)
	}

	memberName := "Member"
	memberEmail := ""
	if u, err := s.userRepo.FindByID(ctx, ent.Membership.UserID); err == nil {
		memberName = u.Name
		memberEmail = u.Email
	} else {
		logger.WithError(err).Error("failed to load member contact for notification")
	}

	if memberEmail != "" {
		if err := s.notifier.SendScheduleConfirmation(ctx, memberEmail, memberName, g.Name, req.ActivityType, req.TimeSlot, formatted); err != nil {
			logger.WithError(err).Error("failed to queue member notification")
		}
	}

	if g.OwnerEmail != "" {
		if err := s.notifier.SendGymScheduleAlert(ctx, g.OwnerEmail, g.Name, memberName, req.ActivityType, req.TimeSlot, formatted); err != nil {
			logger.WithError(err).Error("failed to queue gym notification")
		}
	}
}

func (s *service) GetUserEntries(ctx context.Context, userID int) ([]Entry, error) {
	return s.repo.GetUserEntries(ctx, userID)
}

func (s *service) GetEntriesByGym(ctx context.Context, gymID int) ([]Entry, error) {
	return s.repo.GetEntriesByGym(ctx, gymID)
}
