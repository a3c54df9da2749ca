package espn

import "github.com/prometheus/client_golang/prometheus"

// Metrics tracks requests made against the ESPN API.
type Metrics struct {
	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "leaguedash_espn_requests_total",
				Help: "ESPN API requests by view and response status",
			},
			[]string{"view", "status"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "leaguedash_espn_request_duration_seconds",
				Help:    "ESPN API request latency in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"view"},
		),
	}
	reg.MustRegister(m.Requests, m.Duration)
	return m
}
