package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/hocpay/rewards-service/internal/domain"
	"github.com/hocpay/rewards-service/internal/infrastructure/kafka"
	"github.com/hocpay/rewards-service/internal/infrastructure/metrics"
	"github.com/google/uuid"
)

const ingestGroupID = "rewards-service"

// ReferralIngestUsecase consumes referral events produced by the signup
// pipeline and materializes them as referral records. This is the only
// writer of referrals inside this service; the dashboard side only reads.
type ReferralIngestUsecase struct {
	ReferralRepo domain.ReferralRepository
	Subscriber   domain.SubscriberPort
	Metrics      *metrics.RewardsMetrics
}

func NewReferralIngestUsecase(
	referralRepo domain.ReferralRepository,
	subscriber domain.SubscriberPort,
	rewardsMetrics *metrics.RewardsMetrics,
) *ReferralIngestUsecase {
	return &ReferralIngestUsecase{
		ReferralRepo: referralRepo,
		Subscriber:   subscriber,
		Metrics:      rewardsMetrics,
	}
}

// Start blocks draining the referral topic until the context is canceled or
// the subscription channel closes.
func (uc *ReferralIngestUsecase) Start(ctx context.Context) error {
	msgs, err := uc.Subscriber.Subscribe(kafka.TopicReferralEvents, ingestGroupID)
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", kafka.TopicReferralEvents, err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-msgs:
			if !ok {
				return nil
			}
			if err := uc.handleMessage(ctx, msg); err != nil {
				log.Printf("referral ingest error: %v", err)
			}
		}
	}
}

func (uc *ReferralIngestUsecase) handleMessage(ctx context.Context, msg domain.Message) error {
	var event kafka.ReferralEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		uc.recordError("unmarshal")
		return fmt.Errorf("failed to decode referral event: %w", err)
	}

	if event.MerchantID == "" {
		uc.recordError("missing_merchant")
		return fmt.Errorf("referral event without merchant id")
	}
	if event.ReferralID == "" {
		// legacy pipeline events carry no record id; assign one so the
		// referral still lands, at the cost of upsert dedup
		event.ReferralID = uuid.NewString()
	}
	if event.Cashback < 0 {
		uc.recordError("negative_cashback")
		return fmt.Errorf("referral %s carries negative cashback", event.ReferralID)
	}

	referral := &domain.Referral{
		ID:         event.ReferralID,
		MerchantID: event.MerchantID,
		Name:       event.Name,
		JoinedAt:   event.JoinedAt,
		CreatedAt:  event.CreatedAt,
		Cashback:   event.Cashback,
		IsActive:   event.IsActive,
		TxCount:    event.TxCount,
	}
	if err := uc.ReferralRepo.UpsertReferral(ctx, referral); err != nil {
		uc.recordError("store")
		return fmt.Errorf("failed to upsert referral %s: %w", referral.ID, err)
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordReferralIngested(referral.MerchantID)
	}
	return nil
}

func (uc *ReferralIngestUsecase) recordError(reason string) {
	if uc.Metrics != nil {
		uc.Metrics.RecordIngestError(reason)
	}
}
