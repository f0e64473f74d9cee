package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prediction metrics for the inference service
var (
	PredictionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sentiment_predictions_total",
		Help: "Total number of sentiment predictions served, by predicted label",
	}, []string{"sentiment"})

	PredictionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "sentiment_prediction_duration_seconds",
		Help:    "Latency of model inference for a single prediction",
		Buckets: prometheus.DefBuckets,
	})

	PredictionErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sentiment_prediction_errors_total",
		Help: "Total number of failed model inferences",
	})
)
