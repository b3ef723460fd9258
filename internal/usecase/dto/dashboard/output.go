package dashboarddto

import (
	referraldto "github.com/hocpay/rewards-service/internal/usecase/dto/referral"
)

type GoalOutput struct {
	Target      int     `json:"target"`
	Progress    int64   `json:"progress"`
	Percentage  int     `json:"percentage"`
	BarWidth    float64 `json:"bar_width"`
	PeriodLabel string  `json:"period_label"`
	Visible     bool    `json:"visible"`
}

type DashboardOutput struct {
	MerchantID           string                              `json:"merchant_id"`
	FullName             string                              `json:"full_name"`
	Status               string                              `json:"status"`
	ReferralCode         string                              `json:"referral_code,omitempty"`
	ShareLink            string                              `json:"share_link,omitempty"`
	WalletBalance        float64                             `json:"wallet_balance"`
	LifetimeCashback     float64                             `json:"lifetime_cashback"`
	MonthlyCashback      float64                             `json:"monthly_cashback"`
	TotalReferrals       int64                               `json:"total_referrals"`
	TotalActiveReferrals int64                               `json:"total_active_referrals"`
	RecentReferrals      []referraldto.RecentReferralOutput  `json:"recent_referrals"`
	Goal                 GoalOutput                          `json:"goal"`
}
