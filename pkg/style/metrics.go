package style

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts registry activity. A nil *Metrics records nothing.
type Metrics struct {
	injectedTotal prometheus.Counter
	skippedTotal  prometheus.Counter
	registeredNow prometheus.Gauge
}

// NewMetrics registers the style metrics with reg.
// A nil reg uses prometheus.DefaultRegisterer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		injectedTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "componentx",
			Subsystem: "styles",
			Name:      "injected_total",
			Help:      "Total number of component styles injected",
		}),
		skippedTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "componentx",
			Subsystem: "styles",
			Name:      "skipped_total",
			Help:      "Total number of injections skipped because the style was present",
		}),
		registeredNow: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "componentx",
			Subsystem: "styles",
			Name:      "registered",
			Help:      "Number of component styles currently registered",
		}),
	}
}

func (m *Metrics) injected(registered int) {
	if m == nil {
		return
	}
	m.injectedTotal.Inc()
	m.registeredNow.Set(float64(registered))
}

func (m *Metrics) skipped() {
	if m == nil {
		return
	}
	m.skippedTotal.Inc()
}

func (m *Metrics) registered(n int) {
	if m == nil {
		return
	}
	m.registeredNow.Set(float64(n))
}
