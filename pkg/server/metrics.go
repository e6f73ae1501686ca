package server

import (
	"context"

	"github.com/aretw0/bwtnet/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds Prometheus metrics for the conversion server.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	connections      prometheus.Counter
	frameErrors      prometheus.Counter
	batchesRejected  prometheus.Counter
	recordsConverted *prometheus.CounterVec
	recordsSkipped   prometheus.Counter
	requestBytes     prometheus.Histogram
	handleDuration   prometheus.Histogram
}

// NewMetrics creates and registers the server metrics.
// It returns nil when reg is nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		return nil
	}

	m := &Metrics{
		connections: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bwtnet",
			Subsystem: "server",
			Name:      "connections_total",
			Help:      "Total connections accepted",
		}),
		frameErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bwtnet",
			Subsystem: "server",
			Name:      "frame_errors_total",
			Help:      "Connections that failed before a full request was read or the reply was written",
		}),
		batchesRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bwtnet",
			Subsystem: "server",
			Name:      "batches_rejected_total",
			Help:      "Requests answered with the rejection message",
		}),
		recordsConverted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bwtnet",
			Subsystem: "server",
			Name:      "records_converted_total",
			Help:      "Records converted, by direction",
		}, []string{"direction"}),
		recordsSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bwtnet",
			Subsystem: "server",
			Name:      "records_skipped_total",
			Help:      "Records reported in the error block",
		}),
		requestBytes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "bwtnet",
			Subsystem: "server",
			Name:      "request_bytes",
			Help:      "Size of request payloads",
			Buckets:   prometheus.ExponentialBuckets(64, 4, 8),
		}),
		handleDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "bwtnet",
			Subsystem: "server",
			Name:      "handle_duration_seconds",
			Help:      "Time from accepting a connection to sending its reply",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(
		m.connections,
		m.frameErrors,
		m.batchesRejected,
		m.recordsConverted,
		m.recordsSkipped,
		m.requestBytes,
		m.handleDuration,
	)
	return m
}

// Hooks returns lifecycle hooks that feed the record and batch counters.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	if m == nil {
		return domain.LifecycleHooks{}
	}
	return domain.LifecycleHooks{
		OnRecordConverted: func(_ context.Context, e *domain.RecordEvent) {
			m.recordsConverted.WithLabelValues(e.Direction.String()).Inc()
		},
		OnRecordSkipped: func(context.Context, *domain.RecordEvent) {
			m.recordsSkipped.Inc()
		},
		OnBatchRejected: func(context.Context, *domain.BatchEvent) {
			m.batchesRejected.Inc()
		},
	}
}

func (m *Metrics) connectionAccepted() {
	if m != nil {
		m.connections.Inc()
	}
}

func (m *Metrics) frameError() {
	if m != nil {
		m.frameErrors.Inc()
	}
}

func (m *Metrics) requestHandled(size int, seconds float64) {
	if m != nil {
		m.requestBytes.Observe(float64(size))
		m.handleDuration.Observe(seconds)
	}
}
