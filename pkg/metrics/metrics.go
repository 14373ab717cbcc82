// Package metrics exposes the watcher's Prometheus collectors and the
// optional ops HTTP endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CheckCycles = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "tokenwatch",
		Subsystem: "watch",
		Name:      "check_cycles_total",
		Help:      "Total number of completed price check cycles.",
	})

	CheckDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "tokenwatch",
		Subsystem: "watch",
		Name:      "check_duration_seconds",
		Help:      "Duration of one full check cycle in seconds.",
		Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
	})

	AlertsSent = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "tokenwatch",
		Subsystem: "watch",
		Name:      "alerts_sent_total",
		Help:      "Total number of alert messages delivered.",
	})

	DeliveryFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "tokenwatch",
		Subsystem: "watch",
		Name:      "delivery_failures_total",
		Help:      "Total number of outbound messages that failed to send.",
	})

	FeedErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tokenwatch",
		Subsystem: "feed",
		Name:      "errors_total",
		Help:      "Total number of price fetch failures per feed.",
	}, []string{"feed"})
)
