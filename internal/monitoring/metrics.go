package monitoring

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics owns its registry so tests and multiple fx apps don't collide on
// the default one.
type Metrics struct {
	Registry *prometheus.Registry

	UpstreamRequests *prometheus.HistogramVec
	Outcomes         *prometheus.CounterVec
	RotationPolls    *prometheus.CounterVec
	LastRotationPoll prometheus.Gauge
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		UpstreamRequests: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "apex_upstream_request_ms",
				Help:    "Upstream round-trip latency in milliseconds.",
				Buckets: []float64{10, 20, 50, 100, 150, 200, 250, 300, 500, 750, 1000, 1500, 2000, 5000},
			},
			[]string{"endpoint", "status"},
		),
		Outcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "apex_operation_outcomes_total",
				Help: "Normalized operation outcomes by status.",
			},
			[]string{"operation", "status"},
		),
		RotationPolls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "apex_rotation_polls_total",
				Help: "Map rotation polls by outcome.",
			},
			[]string{"status"},
		),
		LastRotationPoll: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "apex_rotation_last_success_timestamp_seconds",
				Help: "Unix time of the last successful rotation poll.",
			},
		),
	}
	m.Registry.MustRegister(m.UpstreamRequests, m.Outcomes, m.RotationPolls, m.LastRotationPoll)
	return m
}

// ObserveRequest satisfies apex.Observer.
func (m *Metrics) ObserveRequest(endpoint string, status int, elapsed time.Duration) {
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	m.UpstreamRequests.WithLabelValues(endpoint, label).Observe(float64(elapsed.Milliseconds()))
}

func (m *Metrics) RecordOutcome(operation, status string) {
	m.Outcomes.WithLabelValues(operation, status).Inc()
}

func (m *Metrics) RecordPoll(status string, at time.Time, ok bool) {
	m.RotationPolls.WithLabelValues(status).Inc()
	if ok {
		m.LastRotationPoll.Set(float64(at.Unix()))
	}
}
