package domain

import "time"

type Period string

const (
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

type Tier string

const (
	TierStarter Tier = "starter"
	TierBronze  Tier = "bronze"
	TierGold    Tier = "gold"
)

// PlanLockDays is how long a reward plan stays locked after selection.
const PlanLockDays = 30

// RewardPlan is the merchant's chosen goal. The triple is always written
// whole: an accepted change replaces period, tier and SelectedAt together.
type RewardPlan struct {
	Period     Period
	Tier       Tier
	SelectedAt time.Time
}

func (p *RewardPlan) LockedUntil() time.Time {
	return p.SelectedAt.Add(PlanLockDays * 24 * time.Hour)
}

// CanChangePlan reports whether the plan may be replaced at the given
// instant. A merchant with no plan yet is never locked.
func CanChangePlan(plan *RewardPlan, now time.Time) bool {
	if plan == nil {
		return true
	}
	return !now.Before(plan.LockedUntil())
}

type TierSpec struct {
	Threshold int
	Bonus     float64
}

var weeklyTiers = map[Tier]TierSpec{
	TierStarter: {Threshold: 5, Bonus: 500},
	TierBronze:  {Threshold: 10, Bonus: 1500},
	TierGold:    {Threshold: 30, Bonus: 10000},
}

var monthlyTiers = map[Tier]TierSpec{
	TierStarter: {Threshold: 20, Bonus: 2000},
	TierBronze:  {Threshold: 101, Bonus: 5000},
	TierGold:    {Threshold: 1000, Bonus: 50000},
}

// TierSpecFor resolves the referral threshold and bonus for a (period, tier)
// pair. Unknown values are a configuration fault and are reported as errors,
// never substituted with a default.
func TierSpecFor(period Period, tier Tier) (TierSpec, error) {
	var table map[Tier]TierSpec
	switch period {
	case PeriodWeekly:
		table = weeklyTiers
	case PeriodMonthly:
		table = monthlyTiers
	default:
		return TierSpec{}, ErrUnknownPeriod
	}
	spec, ok := table[tier]
	if !ok {
		return TierSpec{}, ErrUnknownTier
	}
	return spec, nil
}

func ThresholdFor(period Period, tier Tier) (int, error) {
	spec, err := TierSpecFor(period, tier)
	if err != nil {
		return 0, err
	}
	return spec.Threshold, nil
}
