// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OpsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engine_ops_completed_total",
			Help: "Total number of operations completed by the engine",
		},
		[]string{"operation"},
	)

	OpsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engine_ops_failed_total",
			Help: "Total number of operations that returned an error result",
		},
		[]string{"operation", "error_code"},
	)

	OpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "engine_op_duration_seconds",
			Help: "Duration of operation processing in seconds",
		},
		[]string{"operation"},
	)

	OpsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "engine_ops_active",
			Help: "Number of in-flight operations",
		},
		[]string{"operation"},
	)

	StoreReads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engine_store_reads_total",
			Help: "Total record store reads by table and outcome",
		},
		[]string{"table", "outcome"},
	)
)
