package middleware

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/fairprice/ppp-pricing/internal/core/ports"
)

// MiddlewareCollection holds all middleware instances
type MiddlewareCollection struct {
	Logging *LoggingMiddleware
	Metrics *MetricsMiddleware
	Geo     *GeoMiddleware
	Admin   *AdminMiddleware
}

// NewMiddlewareCollection creates a new collection of all middleware
func NewMiddlewareCollection(
	resolver ports.GeolocationResolver,
	logger *logrus.Logger,
	adminJWTSecret string,
	requestsTotal *prometheus.CounterVec,
	requestDuration *prometheus.HistogramVec,
) *MiddlewareCollection {
	return &MiddlewareCollection{
		Logging: NewLoggingMiddleware(logger),
		Metrics: NewMetricsMiddleware(requestsTotal, requestDuration),
		Geo:     NewGeoMiddleware(resolver, logger),
		Admin:   NewAdminMiddleware(adminJWTSecret, logger),
	}
}
