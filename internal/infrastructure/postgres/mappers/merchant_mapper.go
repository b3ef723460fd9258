package mappers

import (
	"github.com/hocpay/rewards-service/internal/domain"
	"github.com/hocpay/rewards-service/internal/infrastructure/postgres/models"
)

func ToGORMMerchant(merchant *domain.Merchant) *models.MerchantModel {
	model := &models.MerchantModel{
		ID:             merchant.ID,
		FullName:       merchant.FullName,
		Email:          merchant.Email,
		Phone:          merchant.Phone,
		Address:        merchant.Address,
		City:           merchant.City,
		State:          merchant.State,
		Country:        merchant.Country,
		BVN:            merchant.BVN,
		GovIDPath:      merchant.GovIDPath,
		UtilityPath:    merchant.UtilityPath,
		Status:         merchant.Status,
		ReferralCode:   merchant.ReferralCode,
		CashbackEarned: merchant.CashbackEarned,
		CurrentCycleID: merchant.CurrentCycleID,
		CreatedAt:      merchant.CreatedAt,
		UpdatedAt:      merchant.UpdatedAt,
	}

	if merchant.RewardPlan != nil {
		period := string(merchant.RewardPlan.Period)
		tier := string(merchant.RewardPlan.Tier)
		selectedAt := merchant.RewardPlan.SelectedAt
		model.PlanPeriod = &period
		model.PlanTier = &tier
		model.PlanSelectedAt = &selectedAt
	}

	return model
}

func ToDomainMerchant(model *models.MerchantModel) *domain.Merchant {
	merchant := &domain.Merchant{
		ID:             model.ID,
		FullName:       model.FullName,
		Email:          model.Email,
		Phone:          model.Phone,
		Address:        model.Address,
		City:           model.City,
		State:          model.State,
		Country:        model.Country,
		BVN:            model.BVN,
		GovIDPath:      model.GovIDPath,
		UtilityPath:    model.UtilityPath,
		Status:         model.Status,
		ReferralCode:   model.ReferralCode,
		CashbackEarned: model.CashbackEarned,
		CurrentCycleID: model.CurrentCycleID,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	}

	if model.PlanPeriod != nil && model.PlanTier != nil && model.PlanSelectedAt != nil {
		merchant.RewardPlan = &domain.RewardPlan{
			Period:     domain.Period(*model.PlanPeriod),
			Tier:       domain.Tier(*model.PlanTier),
			SelectedAt: *model.PlanSelectedAt,
		}
	}

	return merchant
}
