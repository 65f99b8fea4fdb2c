// Package metrics exports server and gameplay counters to Prometheus.
package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "mindmates"

// Metrics holds every collector. A nil *Metrics is valid and records nothing.
type Metrics struct {
	rpcTotal       *prometheus.CounterVec
	rpcDuration    *prometheus.HistogramVec
	xpAwarded      prometheus.Counter
	levelUps       prometheus.Counter
	achievements   *prometheus.CounterVec
	completions    *prometheus.CounterVec
	textGeneration *prometheus.CounterVec
	dailyRefreshed prometheus.Counter
}

// NewMetrics registers collectors with reg. A nil reg uses the default registerer.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		rpcTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rpc_requests_total",
			Help:      "Handled RPCs by method and status code.",
		}, []string{"method", "code"}),
		rpcDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_duration_seconds",
			Help:      "RPC handling latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
		xpAwarded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "xp_awarded_total",
			Help:      "Experience points granted to users.",
		}),
		levelUps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "level_ups_total",
			Help:      "Level-up events.",
		}),
		achievements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "achievements_unlocked_total",
			Help:      "Achievement unlocks by id.",
		}, []string{"id"}),
		completions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "challenge_completions_total",
			Help:      "Challenge completions by category.",
		}, []string{"category"}),
		textGeneration: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "text_generation_total",
			Help:      "Generated texts by kind and source (model or fallback).",
		}, []string{"kind", "source"}),
		dailyRefreshed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "daily_challenge_refreshes_total",
			Help:      "Daily challenge sets rotated.",
		}),
	}
	collectors := []prometheus.Collector{
		m.rpcTotal, m.rpcDuration, m.xpAwarded, m.levelUps,
		m.achievements, m.completions, m.textGeneration, m.dailyRefreshed,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}
			return nil, fmt.Errorf("register metric: %w", err)
		}
	}
	return m, nil
}

// MustNewMetrics is NewMetrics that panics on registration failure.
func MustNewMetrics(reg prometheus.Registerer) *Metrics {
	m, err := NewMetrics(reg)
	if err != nil {
		panic(err)
	}
	return m
}

func (m *Metrics) ObserveRPC(method, code string, d time.Duration) {
	if m == nil {
		return
	}
	m.rpcTotal.WithLabelValues(method, code).Inc()
	m.rpcDuration.WithLabelValues(method).Observe(d.Seconds())
}

// XP records an award and whether it crossed a level threshold.
func (m *Metrics) XP(amount int, leveledUp bool) {
	if m == nil || amount <= 0 {
		return
	}
	m.xpAwarded.Add(float64(amount))
	if leveledUp {
		m.levelUps.Inc()
	}
}

func (m *Metrics) AchievementUnlocked(id string) {
	if m == nil {
		return
	}
	m.achievements.WithLabelValues(id).Inc()
}

func (m *Metrics) ChallengeCompleted(category string) {
	if m == nil {
		return
	}
	m.completions.WithLabelValues(category).Inc()
}

func (m *Metrics) TextGenerated(kind, source string) {
	if m == nil {
		return
	}
	m.textGeneration.WithLabelValues(kind, source).Inc()
}

func (m *Metrics) DailyRefreshed() {
	if m == nil {
		return
	}
	m.dailyRefreshed.Inc()
}
