package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/hocpay/rewards-service/internal/domain"
	"github.com/hocpay/rewards-service/internal/infrastructure/kafka"
	"github.com/hocpay/rewards-service/internal/infrastructure/metrics"
	merchantdto "github.com/hocpay/rewards-service/internal/usecase/dto/merchant"
	"github.com/jaevor/go-nanoid"
)

const referralCodeLength = 8

type MerchantUsecase interface {
	CompleteOnboarding(ctx context.Context, input *merchantdto.CompleteOnboardingInput) (*domain.Merchant, error)
	Activate(ctx context.Context, merchantID string) (*domain.Merchant, error)
	GetMerchant(ctx context.Context, merchantID string) (*domain.Merchant, error)
}

type DefaultMerchantUsecase struct {
	MerchantRepo domain.MerchantRepository
	Publisher    *kafka.RewardsPublisher
	Metrics      *metrics.RewardsMetrics
	Now          func() time.Time
}

func NewDefaultMerchantUsecase(
	merchantRepo domain.MerchantRepository,
	publisher *kafka.RewardsPublisher,
	rewardsMetrics *metrics.RewardsMetrics,
) *DefaultMerchantUsecase {
	return &DefaultMerchantUsecase{
		MerchantRepo: merchantRepo,
		Publisher:    publisher,
		Metrics:      rewardsMetrics,
		Now:          time.Now,
	}
}

// CompleteOnboarding writes the merchant profile produced by the signup
// flow. The initial plan selection is never subject to the change lock:
// the profile does not exist yet, so there is nothing to lock against.
func (uc *DefaultMerchantUsecase) CompleteOnboarding(ctx context.Context, input *merchantdto.CompleteOnboardingInput) (*domain.Merchant, error) {
	if input.MerchantID == "" {
		return nil, fmt.Errorf("merchant_id is required")
	}
	if input.FullName == "" {
		return nil, fmt.Errorf("full name is required")
	}
	if _, err := domain.TierSpecFor(input.Period, input.Tier); err != nil {
		return nil, err
	}

	existing, err := uc.MerchantRepo.GetMerchantByID(ctx, input.MerchantID)
	if err != nil {
		return nil, fmt.Errorf("failed to check merchant: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrMerchantExists
	}

	now := uc.Now()
	merchant := &domain.Merchant{
		ID:          input.MerchantID,
		FullName:    input.FullName,
		Email:       input.Email,
		Phone:       input.Phone,
		Address:     input.Address,
		City:        input.City,
		State:       input.State,
		Country:     input.Country,
		BVN:         input.BVN,
		GovIDPath:   input.GovIDPath,
		UtilityPath: input.UtilityPath,
		Status:      domain.MerchantCreated,
		RewardPlan: &domain.RewardPlan{
			Period:     input.Period,
			Tier:       input.Tier,
			SelectedAt: now,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.MerchantRepo.CreateMerchant(ctx, merchant); err != nil {
		return nil, fmt.Errorf("failed to create merchant: %w", err)
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordMerchantOnboarded(string(input.Period), string(input.Tier))
	}

	if uc.Publisher != nil {
		err := uc.Publisher.PublishPlanChange(kafka.PlanChangeEvent{
			MerchantID: merchant.ID,
			Period:     string(input.Period),
			Tier:       string(input.Tier),
			SelectedAt: now,
			Onboarding: true,
		})
		if err != nil {
			log.Printf("failed to publish onboarding plan for merchant %s: %v", merchant.ID, err)
		}
	}

	return merchant, nil
}

// Activate is the write triggered when review approves the merchant: the
// status flips to Active and a referral code is assigned if none exists.
func (uc *DefaultMerchantUsecase) Activate(ctx context.Context, merchantID string) (*domain.Merchant, error) {
	merchant, err := uc.MerchantRepo.GetMerchantByID(ctx, merchantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get merchant: %w", err)
	}
	if merchant == nil {
		return nil, domain.ErrMerchantNotFound
	}

	code := merchant.ReferralCode
	if code == "" {
		generate, err := nanoid.CustomASCII("ABCDEFGHJKLMNPQRSTUVWXYZ23456789", referralCodeLength)
		if err != nil {
			return nil, fmt.Errorf("failed to init code generator: %w", err)
		}
		code = generate()
	}

	if err := uc.MerchantRepo.MarkActivated(ctx, merchant.ID, code); err != nil {
		return nil, fmt.Errorf("failed to activate merchant: %w", err)
	}
	merchant.Status = domain.MerchantActive
	merchant.ReferralCode = code

	if uc.Metrics != nil {
		uc.Metrics.RecordMerchantActivated()
	}

	if uc.Publisher != nil {
		err := uc.Publisher.PublishMerchantActivated(kafka.MerchantActivatedEvent{
			MerchantID:   merchant.ID,
			ReferralCode: code,
			ActivatedAt:  uc.Now(),
		})
		if err != nil {
			log.Printf("failed to publish activation for merchant %s: %v", merchant.ID, err)
		}
	}

	return merchant, nil
}

func (uc *DefaultMerchantUsecase) GetMerchant(ctx context.Context, merchantID string) (*domain.Merchant, error) {
	merchant, err := uc.MerchantRepo.GetMerchantByID(ctx, merchantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get merchant: %w", err)
	}
	if merchant == nil {
		return nil, domain.ErrMerchantNotFound
	}
	return merchant, nil
}
