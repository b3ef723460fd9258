package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hocpay/rewards-service/internal/domain"
	"github.com/hocpay/rewards-service/internal/infrastructure/postgres/mappers"
	"github.com/hocpay/rewards-service/internal/infrastructure/postgres/models"
)

type DefaultReferralRepository struct {
	DB *gorm.DB
}

func NewDefaultReferralRepository(db *gorm.DB) *DefaultReferralRepository {
	return &DefaultReferralRepository{DB: db}
}

func applyReferralFilters(query *gorm.DB, merchantID string, filters domain.ReferralFilters) *gorm.DB {
	query = query.Where("merchant_id = ?", merchantID)

	if filters.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	if !filters.JoinedFrom.IsZero() {
		query = query.Where("joined_at >= ?", filters.JoinedFrom)
	}
	if !filters.JoinedBefore.IsZero() {
		query = query.Where("joined_at < ?", filters.JoinedBefore)
	}

	return query
}

func (r *DefaultReferralRepository) Query(ctx context.Context, merchantID string, filters domain.ReferralFilters) ([]*domain.Referral, error) {
	var referralModels []*models.ReferralModel

	query := applyReferralFilters(r.DB.WithContext(ctx).Model(&models.ReferralModel{}), merchantID, filters)
	if filters.OrderByJoinedDesc {
		query = query.Order("joined_at DESC NULLS LAST")
	}
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}

	if err := query.Find(&referralModels).Error; err != nil {
		return nil, err
	}

	return mappers.ToDomainReferralList(referralModels), nil
}

func (r *DefaultReferralRepository) CountMatching(ctx context.Context, merchantID string, filters domain.ReferralFilters) (int64, error) {
	var count int64

	query := applyReferralFilters(r.DB.WithContext(ctx).Model(&models.ReferralModel{}), merchantID, filters)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

func (r *DefaultReferralRepository) UpsertReferral(ctx context.Context, referral *domain.Referral) error {
	model := mappers.ToGORMReferral(referral)
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(model).Error
}
