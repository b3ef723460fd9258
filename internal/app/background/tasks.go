package background

import (
	"context"
	"log"
	"time"

	"github.com/hocpay/rewards-service/internal/usecase"
)

const ingestRestartDelay = 10 * time.Second

type BackgroundTasks struct {
	IngestUsecase *usecase.ReferralIngestUsecase
}

func NewBackgroundTasks(ingestUC *usecase.ReferralIngestUsecase) *BackgroundTasks {
	return &BackgroundTasks{
		IngestUsecase: ingestUC,
	}
}

func (bt *BackgroundTasks) StartAll(ctx context.Context) {
	go bt.startReferralIngest(ctx)
}

// startReferralIngest keeps the referral consumer alive: a closed broker
// connection surfaces as Start returning, after which it is re-subscribed.
func (bt *BackgroundTasks) startReferralIngest(ctx context.Context) {
	for {
		err := bt.IngestUsecase.Start(ctx)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			log.Printf("referral ingest stopped: %v", err)
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(ingestRestartDelay):
		}
	}
}
