package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/hocpay/rewards-service/internal/domain"
)

// ResolvedGoal is the active measurement window outcome: what the merchant
// is aiming for and how far along they are. A zero Target means no goal is
// being tracked and the widget is suppressed.
type ResolvedGoal struct {
	Target      int
	Progress    int64
	PeriodLabel string
}

// GoalResolver determines the window the merchant is currently measured
// against. An explicitly assigned cycle always wins over the synthetic
// window derived from the reward plan.
type GoalResolver interface {
	ResolveGoal(ctx context.Context, merchant *domain.Merchant) (ResolvedGoal, error)
}

type DefaultGoalResolver struct {
	CycleRepo  domain.CycleRepository
	Aggregator ReferralAggregator
	Now        func() time.Time
}

func NewDefaultGoalResolver(
	cycleRepo domain.CycleRepository,
	aggregator ReferralAggregator,
) *DefaultGoalResolver {
	return &DefaultGoalResolver{
		CycleRepo:  cycleRepo,
		Aggregator: aggregator,
		Now:        time.Now,
	}
}

func (r *DefaultGoalResolver) ResolveGoal(ctx context.Context, merchant *domain.Merchant) (ResolvedGoal, error) {
	if merchant.CurrentCycleID != "" {
		cycle, err := r.CycleRepo.GetCycle(ctx, merchant.ID, merchant.CurrentCycleID)
		if err != nil {
			return ResolvedGoal{}, fmt.Errorf("failed to load cycle %s: %w", merchant.CurrentCycleID, err)
		}
		if cycle != nil {
			return r.resolveFromCycle(ctx, merchant.ID, cycle), nil
		}
		// dangling cycle reference, fall through to the plan-derived window
	}

	if merchant.RewardPlan != nil {
		return r.resolveFromPlan(ctx, merchant.ID, merchant.RewardPlan)
	}

	return ResolvedGoal{PeriodLabel: "Week"}, nil
}

func (r *DefaultGoalResolver) resolveFromCycle(ctx context.Context, merchantID string, cycle *domain.Cycle) ResolvedGoal {
	count := r.Aggregator.CountActive(ctx, merchantID, domain.ReferralFilters{
		JoinedFrom:   cycle.StartDate,
		JoinedBefore: cycle.EndDate,
	})

	label := "Week"
	if cycle.Period == domain.PeriodMonthly {
		label = "Month"
	}

	return ResolvedGoal{
		Target:      cycle.Threshold,
		Progress:    count,
		PeriodLabel: label,
	}
}

func (r *DefaultGoalResolver) resolveFromPlan(ctx context.Context, merchantID string, plan *domain.RewardPlan) (ResolvedGoal, error) {
	target, err := domain.ThresholdFor(plan.Period, plan.Tier)
	if err != nil {
		return ResolvedGoal{}, fmt.Errorf("failed to resolve threshold for plan %s/%s: %w", plan.Period, plan.Tier, err)
	}

	now := r.Now()

	if plan.Period == domain.PeriodWeekly {
		// the week runs from the most recent Sunday 00:00 local up to now,
		// so the constraint carries no upper bound
		midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		weekStart := midnight.AddDate(0, 0, -int(now.Weekday()))

		count := r.Aggregator.CountActive(ctx, merchantID, domain.ReferralFilters{
			JoinedFrom: weekStart,
		})
		return ResolvedGoal{Target: target, Progress: count, PeriodLabel: "Week"}, nil
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	nextMonthStart := monthStart.AddDate(0, 1, 0)

	count := r.Aggregator.CountActive(ctx, merchantID, domain.ReferralFilters{
		JoinedFrom:   monthStart,
		JoinedBefore: nextMonthStart,
	})
	return ResolvedGoal{Target: target, Progress: count, PeriodLabel: "Month"}, nil
}
