package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/hocpay/rewards-service/internal/domain"
	"github.com/hocpay/rewards-service/internal/infrastructure/postgres/mappers"
	"github.com/hocpay/rewards-service/internal/infrastructure/postgres/models"
)

type DefaultMerchantRepository struct {
	DB *gorm.DB
}

func NewDefaultMerchantRepository(db *gorm.DB) *DefaultMerchantRepository {
	return &DefaultMerchantRepository{DB: db}
}

func (r *DefaultMerchantRepository) CreateMerchant(ctx context.Context, merchant *domain.Merchant) error {
	model := mappers.ToGORMMerchant(merchant)
	return r.DB.WithContext(ctx).Create(model).Error
}

func (r *DefaultMerchantRepository) GetMerchantByID(ctx context.Context, merchantID string) (*domain.Merchant, error) {
	var model models.MerchantModel
	if err := r.DB.WithContext(ctx).First(&model, "id = ?", merchantID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	return mappers.ToDomainMerchant(&model), nil
}

// ReplacePlan writes all three plan columns in one statement so a partial
// period/tier/timestamp combination can never be observed.
func (r *DefaultMerchantRepository) ReplacePlan(ctx context.Context, merchantID string, plan domain.RewardPlan) error {
	result := r.DB.WithContext(ctx).
		Model(&models.MerchantModel{}).
		Where("id = ?", merchantID).
		Updates(map[string]interface{}{
			"plan_period":      string(plan.Period),
			"plan_tier":        string(plan.Tier),
			"plan_selected_at": plan.SelectedAt,
			"updated_at":       time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrMerchantNotFound
	}
	return nil
}

func (r *DefaultMerchantRepository) MarkActivated(ctx context.Context, merchantID, referralCode string) error {
	result := r.DB.WithContext(ctx).
		Model(&models.MerchantModel{}).
		Where("id = ?", merchantID).
		Updates(map[string]interface{}{
			"status":        string(domain.MerchantActive),
			"referral_code": referralCode,
			"updated_at":    time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrMerchantNotFound
	}
	return nil
}
