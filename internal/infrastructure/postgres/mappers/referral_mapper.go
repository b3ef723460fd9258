package mappers

import (
	"github.com/hocpay/rewards-service/internal/domain"
	"github.com/hocpay/rewards-service/internal/infrastructure/postgres/models"
)

func ToGORMReferral(referral *domain.Referral) *models.ReferralModel {
	return &models.ReferralModel{
		ID:         referral.ID,
		MerchantID: referral.MerchantID,
		Name:       referral.Name,
		JoinedAt:   referral.JoinedAt,
		CreatedAt:  referral.CreatedAt,
		Cashback:   referral.Cashback,
		IsActive:   referral.IsActive,
		TxCount:    referral.TxCount,
	}
}

func ToDomainReferral(model *models.ReferralModel) *domain.Referral {
	return &domain.Referral{
		ID:         model.ID,
		MerchantID: model.MerchantID,
		Name:       model.Name,
		JoinedAt:   model.JoinedAt,
		CreatedAt:  model.CreatedAt,
		Cashback:   model.Cashback,
		IsActive:   model.IsActive,
		TxCount:    model.TxCount,
	}
}

func ToDomainReferralList(referralModels []*models.ReferralModel) []*domain.Referral {
	referrals := make([]*domain.Referral, len(referralModels))
	for i, model := range referralModels {
		referrals[i] = ToDomainReferral(model)
	}
	return referrals
}
