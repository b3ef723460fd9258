package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/hocpay/rewards-service/internal/domain"
	"github.com/hocpay/rewards-service/internal/infrastructure/kafka"
	"github.com/hocpay/rewards-service/internal/infrastructure/metrics"
	plandto "github.com/hocpay/rewards-service/internal/usecase/dto/plan"
)

// PlanUsecase guards reward plan selection behind the 30-day lock. A plan
// write always replaces the whole (period, tier, selectedAt) triple; the
// write instant restarts the lock window.
type PlanUsecase interface {
	LockStatus(ctx context.Context, merchantID string) (*plandto.LockStatusOutput, error)
	ReplacePlan(ctx context.Context, input *plandto.ReplacePlanInput) (*domain.RewardPlan, error)
}

type DefaultPlanUsecase struct {
	MerchantRepo domain.MerchantRepository
	Publisher    *kafka.RewardsPublisher
	Metrics      *metrics.RewardsMetrics
	Now          func() time.Time
}

func NewDefaultPlanUsecase(
	merchantRepo domain.MerchantRepository,
	publisher *kafka.RewardsPublisher,
	rewardsMetrics *metrics.RewardsMetrics,
) *DefaultPlanUsecase {
	return &DefaultPlanUsecase{
		MerchantRepo: merchantRepo,
		Publisher:    publisher,
		Metrics:      rewardsMetrics,
		Now:          time.Now,
	}
}

func (uc *DefaultPlanUsecase) LockStatus(ctx context.Context, merchantID string) (*plandto.LockStatusOutput, error) {
	merchant, err := uc.MerchantRepo.GetMerchantByID(ctx, merchantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get merchant: %w", err)
	}
	if merchant == nil {
		return nil, domain.ErrMerchantNotFound
	}

	out := &plandto.LockStatusOutput{
		Plan:      merchant.RewardPlan,
		CanChange: domain.CanChangePlan(merchant.RewardPlan, uc.Now()),
	}
	if merchant.RewardPlan != nil {
		out.LockedUntil = merchant.RewardPlan.LockedUntil()
	}
	return out, nil
}

func (uc *DefaultPlanUsecase) ReplacePlan(ctx context.Context, input *plandto.ReplacePlanInput) (*domain.RewardPlan, error) {
	if input.MerchantID == "" {
		return nil, fmt.Errorf("merchant_id is required")
	}
	if _, err := domain.TierSpecFor(input.Period, input.Tier); err != nil {
		return nil, err
	}

	merchant, err := uc.MerchantRepo.GetMerchantByID(ctx, input.MerchantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get merchant: %w", err)
	}
	if merchant == nil {
		return nil, domain.ErrMerchantNotFound
	}

	now := uc.Now()
	if !domain.CanChangePlan(merchant.RewardPlan, now) {
		if uc.Metrics != nil {
			uc.Metrics.RecordPlanChangeRejected(merchant.ID)
		}
		return nil, domain.ErrPlanLocked
	}

	plan := domain.RewardPlan{
		Period:     input.Period,
		Tier:       input.Tier,
		SelectedAt: now,
	}
	if err := uc.MerchantRepo.ReplacePlan(ctx, merchant.ID, plan); err != nil {
		return nil, fmt.Errorf("failed to replace reward plan: %w", err)
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordPlanChange(string(plan.Period), string(plan.Tier))
	}

	if uc.Publisher != nil {
		err := uc.Publisher.PublishPlanChange(kafka.PlanChangeEvent{
			MerchantID: merchant.ID,
			Period:     string(plan.Period),
			Tier:       string(plan.Tier),
			SelectedAt: plan.SelectedAt,
		})
		if err != nil {
			log.Printf("failed to publish plan change for merchant %s: %v", merchant.ID, err)
		}
	}

	return &plan, nil
}
