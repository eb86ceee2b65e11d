package observability

import (
	"context"

	"github.com/aretw0/gameinput/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the prompt counters.
type Metrics struct {
	Attempts *prometheus.CounterVec
	Rejects  *prometheus.CounterVec
	Accepts  *prometheus.CounterVec
}

// NewMetrics creates the counters and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Attempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gameinput_prompt_attempts_total",
				Help: "Total number of lines read by prompt loops",
			},
			[]string{"kind"},
		),
		Rejects: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gameinput_prompt_rejections_total",
				Help: "Total number of attempts discarded, by reason",
			},
			[]string{"kind", "reason"},
		),
		Accepts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gameinput_prompt_accepted_total",
				Help: "Total number of prompts that returned a value",
			},
			[]string{"kind"},
		),
	}

	for _, c := range []prometheus.Collector{m.Attempts, m.Rejects, m.Accepts} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Hooks returns prompt hooks that record into m. Existing hooks in next are
// still called after recording.
func (m *Metrics) Hooks(next domain.PromptHooks) domain.PromptHooks {
	return domain.PromptHooks{
		OnAttempt: func(ctx context.Context, e *domain.PromptEvent) {
			m.Attempts.WithLabelValues(string(e.Kind)).Inc()
			if next.OnAttempt != nil {
				next.OnAttempt(ctx, e)
			}
		},
		OnReject: func(ctx context.Context, e *domain.PromptEvent) {
			m.Rejects.WithLabelValues(string(e.Kind), string(e.Reason)).Inc()
			if next.OnReject != nil {
				next.OnReject(ctx, e)
			}
		},
		OnAccept: func(ctx context.Context, e *domain.PromptEvent) {
			m.Accepts.WithLabelValues(string(e.Kind)).Inc()
			if next.OnAccept != nil {
				next.OnAccept(ctx, e)
			}
		},
	}
}

// Totals sums every counter gathered from g by metric name.
func Totals(g prometheus.Gatherer) (map[string]float64, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, err
	}
	totals := make(map[string]float64, len(families))
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			if c := metric.GetCounter(); c != nil {
				totals[mf.GetName()] += c.GetValue()
			}
		}
	}
	return totals, nil
}
