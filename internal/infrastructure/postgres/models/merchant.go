package models

import (
	"time"

	"github.com/hocpay/rewards-service/internal/domain"
)

type MerchantModel struct {
	ID             string                `gorm:"primaryKey;type:uuid"`
	FullName       string                `gorm:"not null"`
	Email          string                `gorm:"index:idx_merchant_email"`
	Phone          string
	Address        string
	City           string
	State          string
	Country        string
	BVN            string
	GovIDPath      string
	UtilityPath    string
	Status         domain.MerchantStatus `gorm:"not null;default:'created'"`
	ReferralCode   string                `gorm:"index:idx_referral_code"`
	CashbackEarned float64               `gorm:"not null;default:0"`

	// reward plan columns stay nullable together: either the merchant has
	// selected a plan (all three set) or has none
	PlanPeriod     *string
	PlanTier       *string
	PlanSelectedAt *time.Time

	CurrentCycleID string `gorm:"type:uuid"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (MerchantModel) TableName() string {
	return "merchants"
}

type WalletModel struct {
	AccountID string  `gorm:"primaryKey;type:uuid"`
	Balance   float64 `gorm:"not null;default:0"`
	UpdatedAt time.Time
}

func (WalletModel) TableName() string {
	return "wallets"
}
