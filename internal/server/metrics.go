package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultOK            = "ok"
	resultUpstreamError = "upstream_error"
	resultInvalid       = "invalid_arguments"
)

type toolMetrics struct {
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newToolMetrics(reg prometheus.Registerer) *toolMetrics {
	factory := promauto.With(reg)
	return &toolMetrics{
		calls: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "parliament_mcp",
			Subsystem: "tool",
			Name:      "calls_total",
			Help:      "Tool invocations by tool and result.",
		}, []string{"tool", "result"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "parliament_mcp",
			Subsystem: "tool",
			Name:      "call_duration_seconds",
			Help:      "End to end tool call duration including retries.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"tool"}),
	}
}

func (m *toolMetrics) observe(tool, result string, d time.Duration) {
	m.calls.WithLabelValues(tool, result).Inc()
	m.duration.WithLabelValues(tool).Observe(d.Seconds())
}
