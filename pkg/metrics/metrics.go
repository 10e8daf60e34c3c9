package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CycleDuration observes full reconciliation cycle durations.
	CycleDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "wdrf_cycle_duration_seconds",
		Help:    "Duration of a full reconciliation cycle.",
		Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
	})

	// CycleTotal counts completed cycles by result.
	CycleTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wdrf_cycle_total",
		Help: "Number of completed reconciliation cycles.",
	}, []string{"result"})

	// ReconcileOutcomes counts per-object reconciliation outcomes.
	ReconcileOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wdrf_reconcile_outcomes_total",
		Help: "Per-object reconciliation outcomes per cycle.",
	}, []string{"outcome"})

	// QueueDominantShare reports the current weighted dominant share per queue.
	QueueDominantShare = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "wdrf_queue_dominant_share",
		Help: "Weighted dominant resource share of each queue.",
	}, []string{"queue", "kind"})

	// PendingWorkloads reports the number of pending workloads seen in the last cycle.
	PendingWorkloads = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "wdrf_pending_workloads",
		Help: "Pending workloads observed in the last cycle snapshot.",
	})
)
