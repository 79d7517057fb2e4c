package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SettlementMetrics holds the service collectors.
type SettlementMetrics struct {
	ProgressInitTotal prometheus.CounterVec

	StageOutcomesTotal prometheus.CounterVec
	AdvanceDuration    prometheus.HistogramVec

	PriceUpdatesTotal     prometheus.CounterVec
	VersionConflictsTotal prometheus.CounterVec

	OverflowResolvedTotal prometheus.Counter
}

func NewSettlementMetrics() *SettlementMetrics {
	return &SettlementMetrics{
		ProgressInitTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reward_progress_init_total",
				Help: "Terminal reward progress bindings created",
			},
			[]string{"template_id"},
		),

		StageOutcomesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reward_stage_outcomes_total",
				Help: "Stage resolutions by outcome (achieved/failed/gap_blocked)",
			},
			[]string{"outcome"},
		),

		AdvanceDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "reward_advance_duration_seconds",
				Help:    "Duration of progress advance calls",
				Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
			},
			[]string{"outcome"},
		),

		PriceUpdatesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "settlement_price_updates_total",
				Help: "Settlement price mutations by change type",
			},
			[]string{"change_type"},
		),

		VersionConflictsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "settlement_version_conflicts_total",
				Help: "Optimistic concurrency losers by entity",
			},
			[]string{"entity"},
		),

		OverflowResolvedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "reward_overflow_resolved_total",
				Help: "Overflow logs resolved by operators",
			},
		),
	}
}

func (m *SettlementMetrics) RecordProgressInit(templateID string) {
	m.ProgressInitTotal.WithLabelValues(templateID).Inc()
}

func (m *SettlementMetrics) RecordStageOutcome(outcome string) {
	m.StageOutcomesTotal.WithLabelValues(outcome).Inc()
}

func (m *SettlementMetrics) ObserveAdvanceDuration(outcome string, durationSeconds float64) {
	m.AdvanceDuration.WithLabelValues(outcome).Observe(durationSeconds)
}

func (m *SettlementMetrics) RecordPriceUpdate(changeType string) {
	m.PriceUpdatesTotal.WithLabelValues(changeType).Inc()
}

func (m *SettlementMetrics) RecordVersionConflict(entity string) {
	m.VersionConflictsTotal.WithLabelValues(entity).Inc()
}

func (m *SettlementMetrics) RecordOverflowResolved() {
	m.OverflowResolvedTotal.Inc()
}
