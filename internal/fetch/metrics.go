package fetch

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "parliament_mcp"

// Metrics records fetch activity. A nil *Metrics is valid and records nothing.
type Metrics struct {
	attempts  *prometheus.CounterVec
	outcomes  *prometheus.CounterVec
	duration  prometheus.Histogram
	cacheHits prometheus.Counter
}

// NewMetrics registers the fetch collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		attempts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "fetch",
			Name:      "attempts_total",
			Help:      "Upstream GET attempts by result kind.",
		}, []string{"kind"}),
		outcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "fetch",
			Name:      "outcomes_total",
			Help:      "Terminal fetch outcomes by kind.",
		}, []string{"kind"}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "fetch",
			Name:      "attempt_duration_seconds",
			Help:      "Duration of single upstream GET attempts.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
		}),
		cacheHits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "fetch",
			Name:      "cache_hits_total",
			Help:      "Responses served from the local HTTP cache.",
		}),
	}
}

func (m *Metrics) observeAttempt(kind Kind, d time.Duration) {
	if m == nil {
		return
	}
	m.attempts.WithLabelValues(string(kind)).Inc()
	m.duration.Observe(d.Seconds())
}

func (m *Metrics) observeOutcome(kind Kind) {
	if m == nil {
		return
	}
	m.outcomes.WithLabelValues(string(kind)).Inc()
}

func (m *Metrics) observeCacheHit() {
	if m == nil {
		return
	}
	m.cacheHits.Inc()
}
