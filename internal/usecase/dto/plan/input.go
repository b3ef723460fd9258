package plandto

import "github.com/hocpay/rewards-service/internal/domain"

type ReplacePlanInput struct {
	MerchantID string        `json:"merchant_id" validate:"required"`
	Period     domain.Period `json:"period" validate:"required"`
	Tier       domain.Tier   `json:"tier" validate:"required"`
}
