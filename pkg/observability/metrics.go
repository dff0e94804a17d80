package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Render outcomes used as the "result" label.
const (
	ResultOK     = "ok"
	ResultCached = "cached"
	ResultError  = "error"
)

// Metrics holds the render collectors. A nil *Metrics records nothing.
type Metrics struct {
	Renders  *prometheus.CounterVec
	Duration *prometheus.HistogramVec
	Calls    prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Renders: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "jsquery",
				Name:      "renders_total",
				Help:      "Chain specs rendered, by result.",
			},
			[]string{"result"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "jsquery",
				Name:      "render_duration_seconds",
				Help:      "Time spent rendering a chain spec, cache lookups included.",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
			[]string{"result"},
		),
		Calls: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "jsquery",
			Name:      "chain_calls",
			Help:      "Number of method calls in rendered chains.",
			Buckets:   prometheus.LinearBuckets(0, 4, 6),
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Renders, m.Duration, m.Calls)
	}
	return m
}

// ObserveRender records one render.
func (m *Metrics) ObserveRender(result string, calls int, d time.Duration) {
	if m == nil {
		return
	}
	m.Renders.WithLabelValues(result).Inc()
	m.Duration.WithLabelValues(result).Observe(d.Seconds())
	if result != ResultError {
		m.Calls.Observe(float64(calls))
	}
}
