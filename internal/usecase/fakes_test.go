package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/hocpay/rewards-service/internal/domain"
)

var errStoreUnavailable = errors.New("store unavailable")

// fakeReferralRepo mimics the referral store in memory, including the SQL
// semantics of range constraints on a nullable joined_at column (rows with
// no joined timestamp never match a range).
type fakeReferralRepo struct {
	referrals []*domain.Referral

	failCount       bool // CountMatching is unsupported
	failActiveQuery bool // queries carrying the active filter fail
	failAllQueries  bool // every query fails

	countCalls []domain.ReferralFilters
	queryCalls []domain.ReferralFilters
}

func (f *fakeReferralRepo) matches(r *domain.Referral, merchantID string, filters domain.ReferralFilters) bool {
	if r.MerchantID != merchantID {
		return false
	}
	if filters.ActiveOnly && !r.IsActive {
		return false
	}
	if !filters.JoinedFrom.IsZero() {
		if r.JoinedAt == nil || r.JoinedAt.Before(filters.JoinedFrom) {
			return false
		}
	}
	if !filters.JoinedBefore.IsZero() {
		if r.JoinedAt == nil || !r.JoinedAt.Before(filters.JoinedBefore) {
			return false
		}
	}
	return true
}

func (f *fakeReferralRepo) Query(ctx context.Context, merchantID string, filters domain.ReferralFilters) ([]*domain.Referral, error) {
	f.queryCalls = append(f.queryCalls, filters)

	if f.failAllQueries {
		return nil, errStoreUnavailable
	}
	if f.failActiveQuery && filters.ActiveOnly {
		return nil, errStoreUnavailable
	}

	var result []*domain.Referral
	for _, r := range f.referrals {
		if f.matches(r, merchantID, filters) {
			result = append(result, r)
		}
	}

	if filters.OrderByJoinedDesc {
		sort.SliceStable(result, func(i, j int) bool {
			a, b := result[i].JoinedAt, result[j].JoinedAt
			if a == nil {
				return false
			}
			if b == nil {
				return true
			}
			return a.After(*b)
		})
	}
	if filters.Limit > 0 && len(result) > filters.Limit {
		result = result[:filters.Limit]
	}
	return result, nil
}

func (f *fakeReferralRepo) CountMatching(ctx context.Context, merchantID string, filters domain.ReferralFilters) (int64, error) {
	f.countCalls = append(f.countCalls, filters)

	if f.failCount {
		return 0, errStoreUnavailable
	}

	var n int64
	for _, r := range f.referrals {
		if f.matches(r, merchantID, filters) {
			n++
		}
	}
	return n, nil
}

func (f *fakeReferralRepo) UpsertReferral(ctx context.Context, referral *domain.Referral) error {
	for i, r := range f.referrals {
		if r.ID == referral.ID {
			f.referrals[i] = referral
			return nil
		}
	}
	f.referrals = append(f.referrals, referral)
	return nil
}

type fakeMerchantRepo struct {
	merchants map[string]*domain.Merchant
	failGet   bool
}

func newFakeMerchantRepo() *fakeMerchantRepo {
	return &fakeMerchantRepo{merchants: make(map[string]*domain.Merchant)}
}

func (f *fakeMerchantRepo) CreateMerchant(ctx context.Context, merchant *domain.Merchant) error {
	copied := *merchant
	f.merchants[merchant.ID] = &copied
	return nil
}

func (f *fakeMerchantRepo) GetMerchantByID(ctx context.Context, merchantID string) (*domain.Merchant, error) {
	if f.failGet {
		return nil, errStoreUnavailable
	}
	m, ok := f.merchants[merchantID]
	if !ok {
		return nil, nil
	}
	copied := *m
	if m.RewardPlan != nil {
		plan := *m.RewardPlan
		copied.RewardPlan = &plan
	}
	return &copied, nil
}

func (f *fakeMerchantRepo) ReplacePlan(ctx context.Context, merchantID string, plan domain.RewardPlan) error {
	m, ok := f.merchants[merchantID]
	if !ok {
		return domain.ErrMerchantNotFound
	}
	m.RewardPlan = &plan
	return nil
}

func (f *fakeMerchantRepo) MarkActivated(ctx context.Context, merchantID, referralCode string) error {
	m, ok := f.merchants[merchantID]
	if !ok {
		return domain.ErrMerchantNotFound
	}
	m.Status = domain.MerchantActive
	m.ReferralCode = referralCode
	return nil
}

type fakeCycleRepo struct {
	cycles  map[string]*domain.Cycle
	failGet bool
}

func newFakeCycleRepo() *fakeCycleRepo {
	return &fakeCycleRepo{cycles: make(map[string]*domain.Cycle)}
}

func (f *fakeCycleRepo) GetCycle(ctx context.Context, merchantID, cycleID string) (*domain.Cycle, error) {
	if f.failGet {
		return nil, errStoreUnavailable
	}
	c, ok := f.cycles[cycleID]
	if !ok || c.MerchantID != merchantID {
		return nil, nil
	}
	return c, nil
}

type fakeWalletRepo struct {
	balances map[string]float64
	failGet  bool
}

func (f *fakeWalletRepo) GetBalance(ctx context.Context, accountID string) (float64, error) {
	if f.failGet {
		return 0, errStoreUnavailable
	}
	return f.balances[accountID], nil
}

func timePtr(t time.Time) *time.Time {
	return &t
}
