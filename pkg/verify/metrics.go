package verify

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	verifyTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "attrcheck_verify_total",
			Help: "Total number of attribute verifications by outcome code",
		},
		[]string{"outcome"},
	)

	verifyBatchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "attrcheck_verify_batch_duration_seconds",
			Help:    "Duration of whole-request attribute verification in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
	)
)
