package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestDispatchMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewDispatchMetrics(registry)

	m.ObserveSweep(ResultOK, time.Second)
	m.ObserveSweep(ResultSkipped, 0)
	m.AddCustomersMatched(ModeSweep, 3)
	m.AddApplicationsCreated(ModeScoped, 2)
	m.AddApplicationsCreated(ModeScoped, 1)
	m.IncConflict(ModeAll)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.sweeps.WithLabelValues(ResultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.sweeps.WithLabelValues(ResultSkipped)))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.customersMatched.WithLabelValues(ModeSweep)))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.created.WithLabelValues(ModeScoped)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.conflicts.WithLabelValues(ModeAll)))
	assert.Equal(t, 1, testutil.CollectAndCount(m.sweepDuration))
}
