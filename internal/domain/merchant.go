package domain

import (
	"context"
	"time"
)

type MerchantStatus string

const (
	MerchantCreated   MerchantStatus = "created"
	MerchantActive    MerchantStatus = "Active"
	MerchantSuspended MerchantStatus = "Suspended"
)

// Merchant is the portal profile, 1:1 with a base account. The referral
// code stays empty until the review process verifies the merchant, and the
// reward plan is only ever mutated through an accepted plan replacement.
type Merchant struct {
	ID             string // account id
	FullName       string
	Email          string
	Phone          string
	Address        string
	City           string
	State          string
	Country        string
	BVN            string
	GovIDPath      string
	UtilityPath    string
	Status         MerchantStatus
	ReferralCode   string
	CashbackEarned float64
	RewardPlan     *RewardPlan
	CurrentCycleID string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type MerchantRepository interface {
	CreateMerchant(ctx context.Context, merchant *Merchant) error
	// GetMerchantByID returns (nil, nil) when the merchant does not exist.
	GetMerchantByID(ctx context.Context, merchantID string) (*Merchant, error)
	// ReplacePlan overwrites the whole (period, tier, selectedAt) triple.
	ReplacePlan(ctx context.Context, merchantID string, plan RewardPlan) error
	// MarkActivated sets the status to Active and stores the referral code.
	MarkActivated(ctx context.Context, merchantID, referralCode string) error
}

// WalletRepository reads the base account wallet. Balances are owned by the
// payments system; this service only displays them.
type WalletRepository interface {
	GetBalance(ctx context.Context, accountID string) (float64, error)
}
