package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/hocpay/rewards-service/internal/domain"
	"github.com/hocpay/rewards-service/internal/infrastructure/postgres/mappers"
	"github.com/hocpay/rewards-service/internal/infrastructure/postgres/models"
)

type DefaultCycleRepository struct {
	DB *gorm.DB
}

func NewDefaultCycleRepository(db *gorm.DB) *DefaultCycleRepository {
	return &DefaultCycleRepository{DB: db}
}

func (r *DefaultCycleRepository) GetCycle(ctx context.Context, merchantID, cycleID string) (*domain.Cycle, error) {
	var model models.CycleModel
	err := r.DB.WithContext(ctx).
		First(&model, "id = ? AND merchant_id = ?", cycleID, merchantID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	return mappers.ToDomainCycle(&model), nil
}
