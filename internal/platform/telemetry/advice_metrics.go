package telemetry

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// AdviceMetrics counts generated advice. It implements ports.AdviceRecorder.
type AdviceMetrics struct {
	generated *prometheus.CounterVec
	fallbacks prometheus.Counter
}

// NewAdviceMetrics creates the advice counters and registers them with reg.
func NewAdviceMetrics(reg prometheus.Registerer) (*AdviceMetrics, error) {
	m := &AdviceMetrics{
		generated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "advice_generated_total",
			Help: "Survival advice responses generated, by the zodiac sign used.",
		}, []string{"sign"}),
		fallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "advice_sign_fallbacks_total",
			Help: "Advice requests whose zodiac sign was missing or unrecognized.",
		}),
	}

	for _, c := range []prometheus.Collector{m.generated, m.fallbacks} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("registering advice metrics: %w", err)
		}
	}

	return m, nil
}

// RecordAdvice increments the per-sign counter and, when the fallback
// applied, the fallback counter.
func (m *AdviceMetrics) RecordAdvice(sign string, fallback bool) {
	m.generated.WithLabelValues(sign).Inc()

	if fallback {
		m.fallbacks.Inc()
	}
}
