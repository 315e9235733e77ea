package observability

import (
	"context"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/aretw0/wallethunt/pkg/domain"
)

// Attempt outcome label values.
const (
	OutcomeFound   = "found"
	OutcomeNoMatch = "no_match"
	OutcomeError   = "error"
)

// Progress is a point-in-time view of a running hunt.
type Progress struct {
	Index     uint64 `json:"index"`
	Total     uint64 `json:"total"`
	Attempted uint64 `json:"attempted"`
	Skipped   uint64 `json:"skipped"`
	Found     bool   `json:"found"`
}

// Metrics holds the hunt collectors and a private registry.
type Metrics struct {
	Registry *prometheus.Registry

	candidates prometheus.Counter
	skipped    prometheus.Counter
	attempts   *prometheus.CounterVec
	duration   prometheus.Histogram
	space      prometheus.Gauge

	mu       sync.RWMutex
	progress Progress
}

// NewMetrics creates and registers the hunt collectors, plus the standard Go
// and process collectors, on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		candidates: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wallethunt_candidates_total",
			Help: "Candidates produced by the enumerator",
		}),
		skipped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wallethunt_skipped_total",
			Help: "Candidates skipped by the exclusion filter",
		}),
		attempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wallethunt_attempts_total",
				Help: "Engine invocations by outcome",
			},
			[]string{"outcome"},
		),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "wallethunt_engine_duration_seconds",
			Help:    "Duration of engine invocations",
			Buckets: prometheus.ExponentialBuckets(0.5, 2, 12),
		}),
		space: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "wallethunt_space_size",
			Help: "Number of candidates in the search space",
		}),
	}

	m.Registry.MustRegister(
		m.candidates, m.skipped, m.attempts, m.duration, m.space,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Hooks returns lifecycle hooks that update the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnCandidate: func(ctx context.Context, e *domain.CandidateEvent) {
			m.candidates.Inc()
			m.space.Set(float64(e.Total))
			m.update(func(p *Progress) {
				p.Index = e.Index
				p.Total = e.Total
			})
		},
		OnSkip: func(ctx context.Context, e *domain.CandidateEvent) {
			m.skipped.Inc()
			m.update(func(p *Progress) { p.Skipped++ })
		},
		OnResult: func(ctx context.Context, e *domain.AttemptEvent) {
			outcome := OutcomeNoMatch
			switch {
			case e.Err != nil:
				outcome = OutcomeError
			case e.Result.Found():
				outcome = OutcomeFound
			}
			m.attempts.WithLabelValues(outcome).Inc()
			m.duration.Observe(e.Duration.Seconds())
			m.update(func(p *Progress) {
				p.Attempted++
				p.Found = p.Found || outcome == OutcomeFound
			})
		},
	}
}

func (m *Metrics) update(fn func(*Progress)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	fn(&m.progress)
}

// Progress returns the latest progress snapshot.
func (m *Metrics) Progress() Progress {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.progress
}
