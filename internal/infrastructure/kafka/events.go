package kafka

import "time"

const (
	TopicPlanEvents     = "plan-events"
	TopicMerchantEvents = "merchant-events"
	TopicReferralEvents = "referral-events"
)

// PlanChangeEvent is emitted for every accepted reward plan replacement,
// including the initial selection during onboarding.
type PlanChangeEvent struct {
	MerchantID string    `json:"merchant_id"`
	Period     string    `json:"period"`
	Tier       string    `json:"tier"`
	SelectedAt time.Time `json:"selected_at"`
	Onboarding bool      `json:"onboarding"`
}

// MerchantActivatedEvent is emitted when review completes and the merchant
// receives a referral code.
type MerchantActivatedEvent struct {
	MerchantID   string    `json:"merchant_id"`
	ReferralCode string    `json:"referral_code"`
	ActivatedAt  time.Time `json:"activated_at"`
}

// ReferralEvent is the inbound record produced by the referral ingestion
// pipeline when a referred customer signs up or changes activity state.
type ReferralEvent struct {
	ReferralID string     `json:"referral_id"`
	MerchantID string     `json:"merchant_id"`
	Name       string     `json:"name"`
	JoinedAt   *time.Time `json:"joined_at,omitempty"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
	Cashback   float64    `json:"cashback"`
	IsActive   bool       `json:"is_active"`
	TxCount    int        `json:"tx_count"`
}
