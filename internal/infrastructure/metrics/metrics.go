package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DealMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deal_mutations_total",
			Help: "Total number of deal mutations by operation",
		},
		[]string{"operation"},
	)

	DealAnalyses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deal_analyses_total",
			Help: "Total number of deal analyses by financeability tier",
		},
		[]string{"financeability"},
	)

	ExtractionRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "extraction_requests_total",
			Help: "Total number of document extractions by source and outcome",
		},
		[]string{"source", "outcome"},
	)

	ExtractionRetries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "extraction_model_retries_total",
			Help: "Total number of model call retries by provider",
		},
		[]string{"provider"},
	)

	ExtractionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "extraction_duration_seconds",
			Help:    "Duration of model extraction calls in seconds",
			Buckets: []float64{0.5, 1, 2, 5, 10, 20, 40, 80},
		},
		[]string{"provider"},
	)
)
