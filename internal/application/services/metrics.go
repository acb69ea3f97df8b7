package services

import "github.com/prometheus/client_golang/prometheus"

var (
	rateCacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ppp_rate_cache_hits_total",
		Help: "Rate lookups served from the cache",
	})

	rateCacheMisses = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ppp_rate_cache_misses_total",
		Help: "Rate lookups that required an upstream recomputation",
	})

	rateUnknownCountry = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ppp_rate_unknown_country_total",
		Help: "Rate lookups for country codes missing from the reference table",
	})
)

func init() {
	prometheus.MustRegister(rateCacheHits)
	prometheus.MustRegister(rateCacheMisses)
	prometheus.MustRegister(rateUnknownCountry)
}
