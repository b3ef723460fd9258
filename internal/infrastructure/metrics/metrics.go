package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RewardsMetrics содержит все метрики сервиса наград
type RewardsMetrics struct {
	// Загрузки дашборда
	DashboardLoadsTotal    prometheus.CounterVec
	DashboardLoadDuration  prometheus.HistogramVec

	// Агрегации по рефералам
	AggregationStrategyTotal  prometheus.CounterVec
	AggregationExhaustedTotal prometheus.CounterVec

	// Смена плана наград
	PlanChangesTotal        prometheus.CounterVec
	PlanChangeRejectedTotal prometheus.CounterVec

	// Онбординг и активация мерчантов
	MerchantsOnboardedTotal prometheus.CounterVec
	MerchantsActivatedTotal prometheus.CounterVec

	// Загрузка рефералов из брокера
	ReferralsIngestedTotal prometheus.CounterVec
	IngestErrorsTotal      prometheus.CounterVec
}

// NewRewardsMetrics создает новый экземпляр метрик
func NewRewardsMetrics() *RewardsMetrics {
	return &RewardsMetrics{
		DashboardLoadsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_loads_total",
				Help: "Общее количество загрузок дашборда",
			},
			[]string{"merchant_id"},
		),

		DashboardLoadDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dashboard_load_duration_seconds",
				Help:    "Время сборки дашборда в секундах",
				Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
			},
			[]string{"merchant_id"},
		),

		AggregationStrategyTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "referral_aggregation_strategy_total",
				Help: "Количество агрегаций по операции и сработавшей стратегии",
			},
			[]string{"operation", "strategy"},
		),

		AggregationExhaustedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "referral_aggregation_exhausted_total",
				Help: "Количество агрегаций, исчерпавших все стратегии",
			},
			[]string{"operation"},
		),

		PlanChangesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reward_plan_changes_total",
				Help: "Общее количество принятых смен плана наград",
			},
			[]string{"period", "tier"},
		),

		PlanChangeRejectedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reward_plan_change_rejected_total",
				Help: "Количество смен плана, отклоненных блокировкой",
			},
			[]string{"merchant_id"},
		),

		MerchantsOnboardedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "merchants_onboarded_total",
				Help: "Количество мерчантов, завершивших онбординг",
			},
			[]string{"period", "tier"},
		),

		MerchantsActivatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "merchants_activated_total",
				Help: "Количество активированных мерчантов",
			},
			[]string{},
		),

		ReferralsIngestedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "referrals_ingested_total",
				Help: "Количество рефералов, принятых из брокера",
			},
			[]string{"merchant_id"},
		),

		IngestErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "referral_ingest_errors_total",
				Help: "Количество ошибок при приеме рефералов",
			},
			[]string{"reason"},
		),
	}
}

// RecordDashboardLoad записывает загрузку дашборда
func (m *RewardsMetrics) RecordDashboardLoad(merchantID string, durationSeconds float64) {
	m.DashboardLoadsTotal.WithLabelValues(merchantID).Inc()
	m.DashboardLoadDuration.WithLabelValues(merchantID).Observe(durationSeconds)
}

// RecordAggregationStrategy записывает сработавшую стратегию агрегации
func (m *RewardsMetrics) RecordAggregationStrategy(operation, strategy string) {
	m.AggregationStrategyTotal.WithLabelValues(operation, strategy).Inc()
}

// RecordAggregationExhausted записывает полностью неудачную агрегацию
func (m *RewardsMetrics) RecordAggregationExhausted(operation string) {
	m.AggregationExhaustedTotal.WithLabelValues(operation).Inc()
}

// RecordPlanChange записывает принятую смену плана
func (m *RewardsMetrics) RecordPlanChange(period, tier string) {
	m.PlanChangesTotal.WithLabelValues(period, tier).Inc()
}

// RecordPlanChangeRejected записывает отклоненную смену плана
func (m *RewardsMetrics) RecordPlanChangeRejected(merchantID string) {
	m.PlanChangeRejectedTotal.WithLabelValues(merchantID).Inc()
}

// RecordMerchantOnboarded записывает завершенный онбординг
func (m *RewardsMetrics) RecordMerchantOnboarded(period, tier string) {
	m.MerchantsOnboardedTotal.WithLabelValues(period, tier).Inc()
}

// RecordMerchantActivated записывает активацию мерчанта
func (m *RewardsMetrics) RecordMerchantActivated() {
	m.MerchantsActivatedTotal.WithLabelValues().Inc()
}

// RecordReferralIngested записывает принятого реферала
func (m *RewardsMetrics) RecordReferralIngested(merchantID string) {
	m.ReferralsIngestedTotal.WithLabelValues(merchantID).Inc()
}

// RecordIngestError записывает ошибку приема
func (m *RewardsMetrics) RecordIngestError(reason string) {
	m.IngestErrorsTotal.WithLabelValues(reason).Inc()
}
