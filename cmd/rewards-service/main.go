package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/hocpay/rewards-service/internal/app/background"
	"github.com/hocpay/rewards-service/internal/config"
	delivery "github.com/hocpay/rewards-service/internal/delivery/http"
	"github.com/hocpay/rewards-service/internal/delivery/http/handlers"
	"github.com/hocpay/rewards-service/internal/infrastructure/kafka"
	"github.com/hocpay/rewards-service/internal/infrastructure/metrics"
	"github.com/hocpay/rewards-service/internal/infrastructure/migrate"
	"github.com/hocpay/rewards-service/internal/infrastructure/postgres"
	"github.com/hocpay/rewards-service/internal/infrastructure/postgres/repository"
	"github.com/hocpay/rewards-service/internal/usecase"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	// Init database
	db := postgres.MustInitDB(cfg)

	if cfg.RewardsDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.RewardsDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	pub := kafka.NewRewardsPublisher(brokers)
	sub := kafka.NewRewardsSubscriber(brokers)

	// Init repositories
	merchantRepo := repository.NewDefaultMerchantRepository(db)
	referralRepo := repository.NewDefaultReferralRepository(db)
	cycleRepo := repository.NewDefaultCycleRepository(db)
	walletRepo := repository.NewDefaultWalletRepository(db)

	// Init metrics
	rewardsMetrics := metrics.NewRewardsMetrics()

	// Init usecases
	aggregator := usecase.NewDefaultReferralAggregator(referralRepo, rewardsMetrics)
	goalResolver := usecase.NewDefaultGoalResolver(cycleRepo, aggregator)
	planUC := usecase.NewDefaultPlanUsecase(merchantRepo, pub, rewardsMetrics)
	merchantUC := usecase.NewDefaultMerchantUsecase(merchantRepo, pub, rewardsMetrics)
	dashboardUC := usecase.NewDefaultDashboardUsecase(
		merchantRepo,
		walletRepo,
		aggregator,
		goalResolver,
		rewardsMetrics,
		cfg.Portal.InviteBase,
	)
	ingestUC := usecase.NewReferralIngestUsecase(referralRepo, sub, rewardsMetrics)

	// Referral ingestion worker
	tasks := background.NewBackgroundTasks(ingestUC)
	tasks.StartAll(context.Background())

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := delivery.NewRouter(
		handlers.NewMerchantHandler(merchantUC),
		handlers.NewDashboardHandler(dashboardUC, aggregator),
		handlers.NewPlanHandler(planUC),
	)

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	log.Printf("rewards service listening on %s\n", addr)
	if err := http.ListenAndServe(addr, corsMiddleware.Handler(router)); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}
