// Package simulate injects artificial latency and transient failures in front
// of the in-memory store so clients see realistic network behaviour.
package simulate

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/jwalitptl/carehub-api/pkg/metrics"
)

const (
	DefaultMinDelay    = 200 * time.Millisecond
	DefaultMaxDelay    = 500 * time.Millisecond
	DefaultFailureRate = 0.05
)

type Config struct {
	MinDelay    time.Duration
	MaxDelay    time.Duration
	FailureRate float64
	// Seed makes the delay and failure sequence reproducible when non-zero.
	Seed uint64
}

// Simulator is safe for concurrent use.
type Simulator struct {
	cfg     Config
	metrics *metrics.Metrics

	mu  sync.Mutex
	rng *rand.Rand
}

func New(cfg Config, m *metrics.Metrics) *Simulator {
	if cfg.MaxDelay < cfg.MinDelay {
		cfg.MaxDelay = cfg.MinDelay
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Simulator{
		cfg:     cfg,
		metrics: m,
		rng:     rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Disabled returns a simulator with no latency and no failures.
func Disabled() *Simulator {
	return New(Config{Seed: 1}, nil)
}

// Delay waits a uniformly distributed duration in [MinDelay, MaxDelay].
// It returns ctx.Err() if the context ends first.
func (s *Simulator) Delay(ctx context.Context) error {
	d := s.nextDelay()
	if s.metrics != nil {
		s.metrics.SimulatedLatency.Observe(d.Seconds())
	}
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// ShouldFail rolls the configured failure rate for operation.
func (s *Simulator) ShouldFail(operation string) bool {
	if s.cfg.FailureRate <= 0 {
		return false
	}
	s.mu.Lock()
	failed := s.rng.Float64() < s.cfg.FailureRate
	s.mu.Unlock()

	if failed && s.metrics != nil {
		s.metrics.InjectedFailures.WithLabelValues(operation).Inc()
	}
	return failed
}

func (s *Simulator) nextDelay() time.Duration {
	span := s.cfg.MaxDelay - s.cfg.MinDelay
	if span <= 0 {
		return s.cfg.MinDelay
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg.MinDelay + time.Duration(s.rng.Int64N(int64(span)+1))
}
