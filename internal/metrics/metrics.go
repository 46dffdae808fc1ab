// Package metrics declares the process-wide Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CacheHits counts cache hits by item kind and layer (whole, item).
	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "claudeye",
		Subsystem: "cache",
		Name:      "hits_total",
		Help:      "Cache hits by item kind and cache layer.",
	}, []string{"kind", "layer"})

	// CacheMisses counts cache misses by item kind and layer.
	CacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "claudeye",
		Subsystem: "cache",
		Name:      "misses_total",
		Help:      "Cache misses by item kind and cache layer.",
	}, []string{"kind", "layer"})

	// QueuePending is the current number of queued tasks.
	QueuePending = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "claudeye",
		Subsystem: "queue",
		Name:      "pending",
		Help:      "Tasks waiting in the work queue.",
	})

	// QueueProcessing is the current number of running tasks.
	QueueProcessing = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "claudeye",
		Subsystem: "queue",
		Name:      "processing",
		Help:      "Tasks currently executing.",
	})

	// TaskDuration observes task execution time by item kind.
	TaskDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "claudeye",
		Subsystem: "queue",
		Name:      "task_duration_seconds",
		Help:      "Wall time of executed tasks by item kind.",
		Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
	}, []string{"kind"})

	// TaskErrors counts failed tasks by item kind.
	TaskErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "claudeye",
		Subsystem: "queue",
		Name:      "task_errors_total",
		Help:      "Failed tasks by item kind.",
	}, []string{"kind"})
)
