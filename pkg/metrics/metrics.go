package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ModeScoped = "scoped"
	ModeAll    = "all_lenders"
	ModeSweep  = "sweep"

	ResultOK      = "ok"
	ResultFailed  = "failed"
	ResultSkipped = "skipped"
)

type DispatchMetrics struct {
	sweeps           *prometheus.CounterVec
	sweepDuration    prometheus.Histogram
	customersMatched *prometheus.CounterVec
	created          *prometheus.CounterVec
	conflicts        *prometheus.CounterVec
}

func NewDispatchMetrics(registry prometheus.Registerer) *DispatchMetrics {
	factory := promauto.With(registry)
	return &DispatchMetrics{
		sweeps: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "creditmatch_sweeps_total",
			Help: "Auto matching sweeps by result",
		}, []string{"result"}),
		sweepDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "creditmatch_sweep_duration_seconds",
			Help:    "Duration of auto matching sweeps",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
		}),
		customersMatched: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "creditmatch_customers_matched_total",
			Help: "Customers run through the matching engine",
		}, []string{"mode"}),
		created: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "creditmatch_applications_created_total",
			Help: "Applications persisted by dispatch mode",
		}, []string{"mode"}),
		conflicts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "creditmatch_application_conflicts_total",
			Help: "Batches rejected because a concurrent match stored the same application first",
		}, []string{"mode"}),
	}
}

func (m *DispatchMetrics) ObserveSweep(result string, d time.Duration) {
	m.sweeps.WithLabelValues(result).Inc()
	if result != ResultSkipped {
		m.sweepDuration.Observe(d.Seconds())
	}
}

func (m *DispatchMetrics) AddCustomersMatched(mode string, n int) {
	m.customersMatched.WithLabelValues(mode).Add(float64(n))
}

func (m *DispatchMetrics) AddApplicationsCreated(mode string, n int) {
	m.created.WithLabelValues(mode).Add(float64(n))
}

func (m *DispatchMetrics) IncConflict(mode string) {
	m.conflicts.WithLabelValues(mode).Inc()
}
