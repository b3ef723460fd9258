package models

import "time"

type ReferralModel struct {
	ID         string `gorm:"primaryKey;type:uuid"`
	MerchantID string `gorm:"type:uuid;not null;index:idx_referral_merchant"`
	Name       string
	JoinedAt   *time.Time `gorm:"index:idx_referral_joined"`
	CreatedAt  *time.Time
	Cashback   float64 `gorm:"not null;default:0"`
	IsActive   bool    `gorm:"not null;default:false;index:idx_referral_active"`
	TxCount    int     `gorm:"not null;default:0"`
}

func (ReferralModel) TableName() string {
	return "referrals"
}
