package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndependentRegistries(t *testing.T) {
	a := NewMetrics("carehub", prometheus.NewRegistry())
	b := NewMetrics("carehub", prometheus.NewRegistry())

	a.OutboxEventsProcessed.Inc()
	assert.Equal(t, 1.0, testutil.ToFloat64(a.OutboxEventsProcessed))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.OutboxEventsProcessed))
}

func TestSameRegistryTwicePanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewMetrics("carehub", reg)
	assert.Panics(t, func() { NewMetrics("carehub", reg) })
}

func TestVectorsAreGathered(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics("carehub", reg)
	m.InjectedFailures.WithLabelValues("list_vitals").Inc()

	n, err := testutil.GatherAndCount(reg, "carehub_simulate_injected_failures_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
