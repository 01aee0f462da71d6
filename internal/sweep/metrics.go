package sweep

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/talgya/skyhouses/internal/houses"
)

const metricsNamespace = "housecalc"

// Outcome labels for ChartsTotal.
const (
	OutcomeOK       = "ok"
	OutcomeFallback = "fallback"
	OutcomeError    = "error"
)

// Metrics instruments sweep runs. A nil *Metrics records nothing.
type Metrics struct {
	// ChartsTotal counts computed charts.
	// Labels: system (requested tag), outcome (ok, fallback, error)
	ChartsTotal *prometheus.CounterVec

	// ChartSeconds measures single-chart computation time.
	ChartSeconds prometheus.Histogram

	// RunsTotal counts finished runs.
	// Labels: status (success, error, canceled)
	RunsTotal *prometheus.CounterVec
}

// NewMetrics registers sweep metrics with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		ChartsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: "sweep",
				Name:      "charts_total",
				Help:      "House charts computed by sweeps",
			},
			[]string{"system", "outcome"},
		),
		ChartSeconds: f.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: "sweep",
				Name:      "chart_duration_seconds",
				Help:      "Time to compute one house chart",
				Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 8),
			},
		),
		RunsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: "sweep",
				Name:      "runs_total",
				Help:      "Sweep runs by final status",
			},
			[]string{"status"},
		),
	}
}

func (m *Metrics) recordChart(sys houses.System, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.ChartsTotal.WithLabelValues(sys.String(), outcome).Inc()
	m.ChartSeconds.Observe(d.Seconds())
}

func (m *Metrics) recordRun(status string) {
	if m == nil {
		return
	}
	m.RunsTotal.WithLabelValues(status).Inc()
}
