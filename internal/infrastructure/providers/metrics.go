package providers

import "github.com/prometheus/client_golang/prometheus"

// providerFallbacks counts upstream lookups that degraded to the
// neutral 1.0 value instead of returning real data.
var providerFallbacks = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "ppp_provider_fallbacks_total",
		Help: "Upstream lookups that fell back to the neutral rate",
	},
	[]string{"provider", "reason"},
)

func init() {
	prometheus.MustRegister(providerFallbacks)
}
