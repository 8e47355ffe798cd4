package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for upstream calls.
const (
	OutcomeOK          = "ok"
	OutcomeTransport   = "transport_error"
	OutcomeHTTPStatus  = "http_status"
	OutcomeSoftFailure = "soft_failure"
	OutcomeDecode      = "decode_error"
)

var (
	upstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "wallet_tracker",
		Name:      "upstream_requests_total",
		Help:      "Requests sent to external blockchain-data APIs, by outcome.",
	}, []string{"api", "endpoint", "outcome"})

	upstreamDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "wallet_tracker",
		Name:      "upstream_request_duration_seconds",
		Help:      "Latency of requests to external blockchain-data APIs.",
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15},
	}, []string{"api", "endpoint"})

	sectionRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "wallet_tracker",
		Name:      "dashboard_section_requests_total",
		Help:      "Dashboard section renders, by section.",
	}, []string{"section"})
)

// ObserveUpstream records one upstream call.
func ObserveUpstream(api, endpoint, outcome string, elapsed time.Duration) {
	upstreamRequests.WithLabelValues(api, endpoint, outcome).Inc()
	upstreamDuration.WithLabelValues(api, endpoint).Observe(elapsed.Seconds())
}

// IncSection counts a dashboard section render.
func IncSection(section string) {
	sectionRequests.WithLabelValues(section).Inc()
}
