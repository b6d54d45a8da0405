package middleware

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/igormicadei/sessionbind/pkg/domain"
	"github.com/igormicadei/sessionbind/pkg/ports"
)

type metricsMiddleware struct {
	next ports.SessionStore

	ops      *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetricsMiddleware creates a middleware that records store operation
// counts and latencies with Prometheus. Uninitialized reads are counted as
// "miss" rather than "error" since they are part of normal binding flow.
func NewMetricsMiddleware(reg prometheus.Registerer) Middleware {
	ops := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sessionbind_store_ops_total",
			Help: "Session store operations by op and status.",
		},
		[]string{"op", "status"},
	)
	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sessionbind_store_op_duration_seconds",
			Help:    "Session store operation latency.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"op"},
	)
	reg.MustRegister(ops, duration)

	return func(next ports.SessionStore) ports.SessionStore {
		return &metricsMiddleware{
			next:     next,
			ops:      ops,
			duration: duration,
		}
	}
}

func (m *metricsMiddleware) observe(op string, start time.Time, err error) {
	status := "ok"
	switch {
	case errors.Is(err, domain.ErrSlotNotInitialized):
		status = "miss"
	case err != nil:
		status = "error"
	}
	m.ops.WithLabelValues(op, status).Inc()
	m.duration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func (m *metricsMiddleware) Get(ctx context.Context, key string) (any, error) {
	start := time.Now()
	val, err := m.next.Get(ctx, key)
	m.observe("get", start, err)
	return val, err
}

func (m *metricsMiddleware) Set(ctx context.Context, key string, value any) error {
	start := time.Now()
	err := m.next.Set(ctx, key, value)
	m.observe("set", start, err)
	return err
}

func (m *metricsMiddleware) Contains(ctx context.Context, key string) (bool, error) {
	start := time.Now()
	ok, err := m.next.Contains(ctx, key)
	m.observe("contains", start, err)
	return ok, err
}

func (m *metricsMiddleware) Delete(ctx context.Context, key string) error {
	start := time.Now()
	err := m.next.Delete(ctx, key)
	m.observe("delete", start, err)
	return err
}

func (m *metricsMiddleware) List(ctx context.Context, prefix string) ([]string, error) {
	start := time.Now()
	keys, err := m.next.List(ctx, prefix)
	m.observe("list", start, err)
	return keys, err
}
