package mappers

import (
	"github.com/hocpay/rewards-service/internal/domain"
	"github.com/hocpay/rewards-service/internal/infrastructure/postgres/models"
)

func ToDomainCycle(model *models.CycleModel) *domain.Cycle {
	return &domain.Cycle{
		ID:           model.ID,
		MerchantID:   model.MerchantID,
		Period:       model.Period,
		Tier:         model.Tier,
		StartDate:    model.StartDate,
		EndDate:      model.EndDate,
		Threshold:    model.Threshold,
		AmountDue:    model.AmountDue,
		PayoutStatus: model.PayoutStatus,
	}
}
