package domain

import (
	"errors"
	"testing"
	"time"
)

func TestTierSpecFor(t *testing.T) {
	cases := []struct {
		period    Period
		tier      Tier
		threshold int
		bonus     float64
	}{
		{PeriodWeekly, TierStarter, 5, 500},
		{PeriodWeekly, TierBronze, 10, 1500},
		{PeriodWeekly, TierGold, 30, 10000},
		{PeriodMonthly, TierStarter, 20, 2000},
		{PeriodMonthly, TierBronze, 101, 5000},
		{PeriodMonthly, TierGold, 1000, 50000},
	}
	for _, c := range cases {
		spec, err := TierSpecFor(c.period, c.tier)
		if err != nil {
			t.Fatalf("TierSpecFor(%s, %s): %v", c.period, c.tier, err)
		}
		if spec.Threshold != c.threshold || spec.Bonus != c.bonus {
			t.Errorf("TierSpecFor(%s, %s) = %+v, want {%d %v}",
				c.period, c.tier, spec, c.threshold, c.bonus)
		}
	}
}

func TestTierSpecForUnknown(t *testing.T) {
	if _, err := TierSpecFor("quarterly", TierGold); !errors.Is(err, ErrUnknownPeriod) {
		t.Errorf("unknown period: err = %v, want ErrUnknownPeriod", err)
	}
	if _, err := TierSpecFor(PeriodWeekly, "platinum"); !errors.Is(err, ErrUnknownTier) {
		t.Errorf("unknown tier: err = %v, want ErrUnknownTier", err)
	}
	if _, err := ThresholdFor("", ""); err == nil {
		t.Error("empty pair: expected an error")
	}
}

func TestCanChangePlan(t *testing.T) {
	selected := time.Date(2026, 8, 1, 10, 30, 0, 0, time.UTC)
	plan := &RewardPlan{Period: PeriodWeekly, Tier: TierBronze, SelectedAt: selected}
	lockedUntil := selected.Add(PlanLockDays * 24 * time.Hour)

	cases := []struct {
		name string
		plan *RewardPlan
		now  time.Time
		want bool
	}{
		{"no plan yet", nil, selected, true},
		{"at selection", plan, selected, false},
		{"instant before expiry", plan, lockedUntil.Add(-time.Nanosecond), false},
		{"exactly at expiry", plan, lockedUntil, true},
		{"after expiry", plan, lockedUntil.Add(time.Hour), true},
	}
	for _, c := range cases {
		if got := CanChangePlan(c.plan, c.now); got != c.want {
			t.Errorf("%s: CanChangePlan = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestLockedUntil(t *testing.T) {
	selected := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	plan := &RewardPlan{SelectedAt: selected}
	want := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
	if got := plan.LockedUntil(); !got.Equal(want) {
		t.Errorf("LockedUntil = %v, want %v", got, want)
	}
}

func TestJoinedDateFallback(t *testing.T) {
	now := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	joined := now.Add(-48 * time.Hour)
	created := now.Add(-72 * time.Hour)

	r := &Referral{JoinedAt: &joined, CreatedAt: &created}
	if got := r.JoinedDate(now); !got.Equal(joined) {
		t.Errorf("with joined: %v, want %v", got, joined)
	}
	r = &Referral{CreatedAt: &created}
	if got := r.JoinedDate(now); !got.Equal(created) {
		t.Errorf("without joined: %v, want %v", got, created)
	}
	r = &Referral{}
	if got := r.JoinedDate(now); !got.Equal(now) {
		t.Errorf("without any timestamp: %v, want %v", got, now)
	}
}
