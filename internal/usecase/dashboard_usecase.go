package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/hocpay/rewards-service/internal/domain"
	"github.com/hocpay/rewards-service/internal/infrastructure/metrics"
	dashboarddto "github.com/hocpay/rewards-service/internal/usecase/dto/dashboard"
)

const recentReferralsShown = 5

// DashboardUsecase assembles the merchant dashboard read model. Aggregates
// degrade independently per the fallback chains; the profile load, the
// cycle load and the recent-referrals list are the only paths that fail the
// whole load.
type DashboardUsecase interface {
	LoadDashboard(ctx context.Context, merchantID string) (*dashboarddto.DashboardOutput, error)
}

type DefaultDashboardUsecase struct {
	MerchantRepo domain.MerchantRepository
	WalletRepo   domain.WalletRepository
	Aggregator   ReferralAggregator
	GoalResolver GoalResolver
	Metrics      *metrics.RewardsMetrics
	InviteBase   string
	Now          func() time.Time
}

func NewDefaultDashboardUsecase(
	merchantRepo domain.MerchantRepository,
	walletRepo domain.WalletRepository,
	aggregator ReferralAggregator,
	goalResolver GoalResolver,
	rewardsMetrics *metrics.RewardsMetrics,
	inviteBase string,
) *DefaultDashboardUsecase {
	return &DefaultDashboardUsecase{
		MerchantRepo: merchantRepo,
		WalletRepo:   walletRepo,
		Aggregator:   aggregator,
		GoalResolver: goalResolver,
		Metrics:      rewardsMetrics,
		InviteBase:   inviteBase,
		Now:          time.Now,
	}
}

func (uc *DefaultDashboardUsecase) LoadDashboard(ctx context.Context, merchantID string) (*dashboarddto.DashboardOutput, error) {
	started := uc.Now()

	merchant, err := uc.MerchantRepo.GetMerchantByID(ctx, merchantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load merchant profile: %w", err)
	}
	if merchant == nil {
		return nil, domain.ErrMerchantNotFound
	}

	out := &dashboarddto.DashboardOutput{
		MerchantID:       merchant.ID,
		FullName:         merchant.FullName,
		Status:           string(merchant.Status),
		ReferralCode:     merchant.ReferralCode,
		LifetimeCashback: merchant.CashbackEarned,
	}
	if merchant.ReferralCode != "" && uc.InviteBase != "" {
		out.ShareLink = fmt.Sprintf("%s/r/%s", uc.InviteBase, merchant.ReferralCode)
	}

	// the wallet lives in the payments system; its failure never blocks the
	// dashboard
	if uc.WalletRepo != nil {
		balance, err := uc.WalletRepo.GetBalance(ctx, merchant.ID)
		if err != nil {
			log.Printf("failed to fetch wallet for merchant %s: %v", merchant.ID, err)
		} else {
			out.WalletBalance = balance
		}
	}

	out.TotalReferrals = uc.Aggregator.CountAll(ctx, merchant.ID, domain.ReferralFilters{})
	out.TotalActiveReferrals = uc.Aggregator.CountActive(ctx, merchant.ID, domain.ReferralFilters{})

	now := uc.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	nextMonthStart := monthStart.AddDate(0, 1, 0)
	out.MonthlyCashback = uc.Aggregator.SumActiveCashback(ctx, merchant.ID, domain.ReferralFilters{
		JoinedFrom:   monthStart,
		JoinedBefore: nextMonthStart,
	})

	recent, err := uc.Aggregator.RecentActive(ctx, merchant.ID, recentReferralsShown)
	if err != nil {
		return nil, err
	}
	out.RecentReferrals = recent

	resolved, err := uc.GoalResolver.ResolveGoal(ctx, merchant)
	if err != nil {
		return nil, err
	}
	goal := BuildGoal(resolved)
	out.Goal = dashboarddto.GoalOutput{
		Target:      goal.Target,
		Progress:    goal.Progress,
		Percentage:  goal.Percentage,
		BarWidth:    goal.BarWidth,
		PeriodLabel: goal.PeriodLabel,
		Visible:     goal.Visible,
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordDashboardLoad(merchant.ID, uc.Now().Sub(started).Seconds())
	}

	return out, nil
}
