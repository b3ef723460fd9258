package models

import (
	"time"

	"github.com/hocpay/rewards-service/internal/domain"
)

type CycleModel struct {
	ID           string        `gorm:"primaryKey;type:uuid"`
	MerchantID   string        `gorm:"type:uuid;not null;index:idx_cycle_merchant"`
	Period       domain.Period `gorm:"not null"`
	Tier         domain.Tier   `gorm:"not null"`
	StartDate    time.Time     `gorm:"not null"`
	EndDate      time.Time     `gorm:"not null"`
	Threshold    int           `gorm:"not null"`
	AmountDue    float64       `gorm:"not null;default:0"`
	PayoutStatus domain.PayoutStatus `gorm:"not null;default:'unpaid'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (CycleModel) TableName() string {
	return "cycles"
}
