package postgres

import (
	"log"

	"github.com/hocpay/rewards-service/internal/config"
	"github.com/hocpay/rewards-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.RewardsConfig) *gorm.DB {
	dsn := cfg.RewardsDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(&models.MerchantModel{}, &models.ReferralModel{}, &models.CycleModel{}, &models.WalletModel{})

	return db
}
