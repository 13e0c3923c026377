// Package metrics records schedule evaluations as Prometheus metrics.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/jakechorley/conference-scheduling/pkg/core/scoring"
)

const (
	ResultFeasible   = "feasible"
	ResultInfeasible = "infeasible"
	ResultError      = "error"
)

// Manager owns a private registry so the output only contains evaluation metrics.
// A nil *Manager is valid and records nothing.
type Manager struct {
	namespace        string
	histogramBuckets []float64
	registry         *prometheus.Registry

	evaluations        *prometheus.CounterVec
	evaluationDuration prometheus.Histogram
	constraintMatches  *prometheus.CounterVec
	lastScore          *prometheus.GaugeVec
	assignedTalks      prometheus.Gauge
}

// Option configures a Manager
type Option func(*Manager)

func WithNamespace(namespace string) Option {
	return func(m *Manager) {
		m.namespace = namespace
	}
}

func WithHistogramBuckets(buckets []float64) Option {
	return func(m *Manager) {
		m.histogramBuckets = buckets
	}
}

func WithRegistry(registry *prometheus.Registry) Option {
	return func(m *Manager) {
		m.registry = registry
	}
}

// NewManager creates a manager with its own registry unless WithRegistry is given
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "conference_scheduling",
		histogramBuckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
	}

	auto := promauto.With(m.registry)
	m.evaluations = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "evaluations_total",
		Help:      "Number of evaluated schedules by result",
	}, []string{"result"})

	m.evaluationDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "evaluation_duration_seconds",
		Help:      "Time spent analyzing a schedule",
		Buckets:   m.histogramBuckets,
	})

	m.constraintMatches = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "constraint_matches_total",
		Help:      "Number of constraint matches found across evaluations",
	}, []string{"constraint", "level"})

	m.lastScore = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "last_score",
		Help:      "Score of the most recently evaluated schedule by level",
	}, []string{"level"})

	m.assignedTalks = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "last_assigned_talks",
		Help:      "Number of assigned talks in the most recently evaluated schedule",
	})

	return m
}

// Registry exposes the manager's registry for gathering
func (m *Manager) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// RecordAnalysis records one successful evaluation
func (m *Manager) RecordAnalysis(analysis *scoring.Analysis, elapsed time.Duration) {
	if m == nil || analysis == nil {
		return
	}

	m.evaluations.WithLabelValues(resultOf(analysis.Score)).Inc()
	m.evaluationDuration.Observe(elapsed.Seconds())
	for _, entry := range analysis.Constraints {
		if entry.MatchCount == 0 {
			continue
		}
		m.constraintMatches.WithLabelValues(entry.Name, entry.Level.String()).Add(float64(entry.MatchCount))
	}
}

// RecordLast sets the last_score and last_assigned_talks gauges.
// Callers evaluating concurrently call it once, for the final document in input order.
func (m *Manager) RecordLast(score scoring.Score, assignedTalks int) {
	if m == nil {
		return
	}

	m.lastScore.WithLabelValues(scoring.Hard.String()).Set(float64(score.Hard))
	m.lastScore.WithLabelValues(scoring.Medium.String()).Set(float64(score.Medium))
	m.lastScore.WithLabelValues(scoring.Soft.String()).Set(float64(score.Soft))
	m.assignedTalks.Set(float64(assignedTalks))
}

// RecordError counts a schedule that could not be loaded or evaluated
func (m *Manager) RecordError() {
	if m == nil {
		return
	}
	m.evaluations.WithLabelValues(ResultError).Inc()
}

// WriteTextfile writes all metrics in the Prometheus text format, for the node exporter textfile collector.
// An empty path is a no-op.
func (m *Manager) WriteTextfile(path string) error {
	if m == nil || path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}

func resultOf(score scoring.Score) string {
	if score.IsFeasible() {
		return ResultFeasible
	}
	return ResultInfeasible
}
