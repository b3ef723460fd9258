package plandto

import (
	"time"

	"github.com/hocpay/rewards-service/internal/domain"
)

type LockStatusOutput struct {
	Plan        *domain.RewardPlan
	LockedUntil time.Time
	CanChange   bool
}
