package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	detectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "langdetect_detections_total",
		Help: "The total number of successful detections by detected language",
	}, []string{"language"})

	detectFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "langdetect_detect_failures_total",
		Help: "The total number of failed detection requests by reason",
	}, []string{"reason"})

	detectDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "langdetect_detect_duration_seconds",
		Help:    "Duration of detection requests",
		Buckets: prometheus.DefBuckets,
	})
)
