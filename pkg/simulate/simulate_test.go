package simulate

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/jwalitptl/carehub-api/pkg/metrics"
)

func TestDelayWithinBounds(t *testing.T) {
	s := New(Config{MinDelay: 5 * time.Millisecond, MaxDelay: 15 * time.Millisecond, Seed: 7}, nil)
	for i := 0; i < 20; i++ {
		d := s.nextDelay()
		assert.GreaterOrEqual(t, d, 5*time.Millisecond)
		assert.LessOrEqual(t, d, 15*time.Millisecond)
	}
}

func TestDelayHonoursCancellation(t *testing.T) {
	s := New(Config{MinDelay: time.Second, MaxDelay: 2 * time.Second, Seed: 7}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := s.Delay(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestDisabledNeverWaitsOrFails(t *testing.T) {
	s := Disabled()
	assert.NoError(t, s.Delay(context.Background()))
	for i := 0; i < 100; i++ {
		assert.False(t, s.ShouldFail("list_vitals"))
	}
}

func TestFailureRateExtremes(t *testing.T) {
	m := metrics.NewMetrics("test", prometheus.NewRegistry())
	always := New(Config{FailureRate: 1, Seed: 3}, m)
	for i := 0; i < 10; i++ {
		assert.True(t, always.ShouldFail("list_vitals"))
	}
	assert.Equal(t, 10.0, testutil.ToFloat64(m.InjectedFailures.WithLabelValues("list_vitals")))
}

func TestFailureRateIsRoughlyHonoured(t *testing.T) {
	s := New(Config{FailureRate: DefaultFailureRate, Seed: 42}, nil)
	failures := 0
	for i := 0; i < 10000; i++ {
		if s.ShouldFail("list_vitals") {
			failures++
		}
	}
	assert.InDelta(t, 500, failures, 150)
}
