package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/hocpay/rewards-service/internal/infrastructure/postgres/models"
)

type DefaultWalletRepository struct {
	DB *gorm.DB
}

func NewDefaultWalletRepository(db *gorm.DB) *DefaultWalletRepository {
	return &DefaultWalletRepository{DB: db}
}

// GetBalance returns 0 for accounts without a wallet row; the wallet is
// provisioned lazily by the payments system.
func (r *DefaultWalletRepository) GetBalance(ctx context.Context, accountID string) (float64, error) {
	var model models.WalletModel
	err := r.DB.WithContext(ctx).First(&model, "account_id = ?", accountID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, nil
		}
		return 0, err
	}

	return model.Balance, nil
}
