package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hocpay/rewards-service/internal/domain"
	"github.com/hocpay/rewards-service/internal/infrastructure/metrics"
	referraldto "github.com/hocpay/rewards-service/internal/usecase/dto/referral"
)

const (
	opCountAll          = "count_all"
	opCountActive       = "count_active"
	opSumActiveCashback = "sum_active_cashback"
	opRecentActive      = "recent_active"

	strategyServerAggregate = "server_aggregate"
	strategyClientScan      = "client_scan"
	strategyZeroDefault     = "zero_default"
)

// recentFallbackCap bounds the superset fetched when the filtered ordered
// query is unavailable (e.g. missing index on the store side).
const recentFallbackCap = 20

// ReferralAggregator computes referral counts and cashback sums for one
// merchant. Count and sum operations never fail: when the store-side
// aggregate is unavailable they degrade to an in-memory scan, and when that
// fails too they settle at zero. RecentActive is the exception: its
// degraded query propagates a failure instead of substituting an empty list.
type ReferralAggregator interface {
	CountAll(ctx context.Context, merchantID string, filters domain.ReferralFilters) int64
	CountActive(ctx context.Context, merchantID string, filters domain.ReferralFilters) int64
	SumActiveCashback(ctx context.Context, merchantID string, filters domain.ReferralFilters) float64
	RecentActive(ctx context.Context, merchantID string, limit int) ([]referraldto.RecentReferralOutput, error)
}

type DefaultReferralAggregator struct {
	ReferralRepo domain.ReferralRepository
	Metrics      *metrics.RewardsMetrics
	Now          func() time.Time
}

func NewDefaultReferralAggregator(
	referralRepo domain.ReferralRepository,
	rewardsMetrics *metrics.RewardsMetrics,
) *DefaultReferralAggregator {
	return &DefaultReferralAggregator{
		ReferralRepo: referralRepo,
		Metrics:      rewardsMetrics,
		Now:          time.Now,
	}
}

// strategy is one step of a fallback chain: a named attempt to produce a
// result for the operation.
type strategy[T any] struct {
	name string
	run  func(ctx context.Context) (T, error)
}

// firstSuccess executes strategies strictly in order and returns the first
// result that settles without an error. The next strategy is attempted only
// after the previous one has failed, never speculatively.
func firstSuccess[T any](ctx context.Context, op string, strategies []strategy[T]) (T, string, error) {
	var zero T
	var lastErr error
	for _, s := range strategies {
		result, err := s.run(ctx)
		if err == nil {
			return result, s.name, nil
		}
		slog.Debug("aggregation strategy failed",
			"operation", op,
			"strategy", s.name,
			"error", err.Error(),
		)
		lastErr = err
	}
	return zero, "", lastErr
}

func (a *DefaultReferralAggregator) recordStrategy(op, name string) {
	if a.Metrics != nil {
		a.Metrics.RecordAggregationStrategy(op, name)
	}
}

func (a *DefaultReferralAggregator) recordExhausted(op string) {
	if a.Metrics != nil {
		a.Metrics.RecordAggregationExhausted(op)
	}
}

func (a *DefaultReferralAggregator) CountAll(ctx context.Context, merchantID string, filters domain.ReferralFilters) int64 {
	count, used, err := firstSuccess(ctx, opCountAll, []strategy[int64]{
		{name: strategyServerAggregate, run: func(ctx context.Context) (int64, error) {
			return a.ReferralRepo.CountMatching(ctx, merchantID, filters)
		}},
		{name: strategyClientScan, run: func(ctx context.Context) (int64, error) {
			referrals, err := a.ReferralRepo.Query(ctx, merchantID, filters)
			if err != nil {
				return 0, err
			}
			return int64(len(referrals)), nil
		}},
	})
	if err != nil {
		a.recordExhausted(opCountAll)
		return 0
	}
	a.recordStrategy(opCountAll, used)
	return count
}

func (a *DefaultReferralAggregator) CountActive(ctx context.Context, merchantID string, filters domain.ReferralFilters) int64 {
	activeFilters := filters
	activeFilters.ActiveOnly = true
	// the degraded path deliberately drops the active filter from the query
	// and applies it while scanning the loaded records
	scanFilters := filters
	scanFilters.ActiveOnly = false

	count, used, err := firstSuccess(ctx, opCountActive, []strategy[int64]{
		{name: strategyServerAggregate, run: func(ctx context.Context) (int64, error) {
			return a.ReferralRepo.CountMatching(ctx, merchantID, activeFilters)
		}},
		{name: strategyClientScan, run: func(ctx context.Context) (int64, error) {
			referrals, err := a.ReferralRepo.Query(ctx, merchantID, scanFilters)
			if err != nil {
				return 0, err
			}
			var n int64
			for _, r := range referrals {
				if r.IsActive {
					n++
				}
			}
			return n, nil
		}},
	})
	if err != nil {
		a.recordExhausted(opCountActive)
		return 0
	}
	a.recordStrategy(opCountActive, used)
	return count
}

func (a *DefaultReferralAggregator) SumActiveCashback(ctx context.Context, merchantID string, filters domain.ReferralFilters) float64 {
	activeFilters := filters
	activeFilters.ActiveOnly = true
	scanFilters := filters
	scanFilters.ActiveOnly = false

	sum, used, err := firstSuccess(ctx, opSumActiveCashback, []strategy[float64]{
		{name: strategyServerAggregate, run: func(ctx context.Context) (float64, error) {
			referrals, err := a.ReferralRepo.Query(ctx, merchantID, activeFilters)
			if err != nil {
				return 0, err
			}
			var total float64
			for _, r := range referrals {
				total += r.Cashback
			}
			return total, nil
		}},
		{name: strategyClientScan, run: func(ctx context.Context) (float64, error) {
			referrals, err := a.ReferralRepo.Query(ctx, merchantID, scanFilters)
			if err != nil {
				return 0, err
			}
			var total float64
			for _, r := range referrals {
				if r.IsActive {
					total += r.Cashback
				}
			}
			return total, nil
		}},
	})
	if err != nil {
		a.recordExhausted(opSumActiveCashback)
		return 0
	}
	a.recordStrategy(opSumActiveCashback, used)
	return sum
}

func (a *DefaultReferralAggregator) RecentActive(ctx context.Context, merchantID string, limit int) ([]referraldto.RecentReferralOutput, error) {
	recent, used, err := firstSuccess(ctx, opRecentActive, []strategy[[]referraldto.RecentReferralOutput]{
		{name: strategyServerAggregate, run: func(ctx context.Context) ([]referraldto.RecentReferralOutput, error) {
			referrals, err := a.ReferralRepo.Query(ctx, merchantID, domain.ReferralFilters{
				ActiveOnly:        true,
				OrderByJoinedDesc: true,
				Limit:             limit,
			})
			if err != nil {
				return nil, err
			}
			return a.toRecentOutputs(referrals), nil
		}},
		{name: strategyClientScan, run: func(ctx context.Context) ([]referraldto.RecentReferralOutput, error) {
			referrals, err := a.ReferralRepo.Query(ctx, merchantID, domain.ReferralFilters{
				OrderByJoinedDesc: true,
				Limit:             recentFallbackCap,
			})
			if err != nil {
				return nil, err
			}
			active := make([]*domain.Referral, 0, limit)
			for _, r := range referrals {
				if r.IsActive {
					active = append(active, r)
				}
			}
			if len(active) > limit {
				active = active[:limit]
			}
			return a.toRecentOutputs(active), nil
		}},
	})
	if err != nil {
		a.recordExhausted(opRecentActive)
		return nil, fmt.Errorf("failed to load recent referrals: %w", err)
	}
	a.recordStrategy(opRecentActive, used)
	return recent, nil
}

func (a *DefaultReferralAggregator) toRecentOutputs(referrals []*domain.Referral) []referraldto.RecentReferralOutput {
	now := a.Now()
	outputs := make([]referraldto.RecentReferralOutput, len(referrals))
	for i, r := range referrals {
		name := r.Name
		if name == "" {
			name = "Unknown"
		}
		outputs[i] = referraldto.RecentReferralOutput{
			ID:       r.ID,
			Name:     name,
			JoinedAt: r.JoinedDate(now),
			Status:   "Active",
		}
	}
	return outputs
}
