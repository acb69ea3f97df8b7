package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/fairprice/ppp-pricing/internal/core/ports"
)

// Context keys set by ResolveVisitorCountry.
const (
	VisitorCountryKey = "visitor_country"
	GeoSourceKey      = "geo_source"
)

// GeoMiddleware resolves the visitor's country once per request so every
// handler sees the same answer.
type GeoMiddleware struct {
	resolver ports.GeolocationResolver
	logger   *logrus.Logger
}

func NewGeoMiddleware(resolver ports.GeolocationResolver, logger *logrus.Logger) *GeoMiddleware {
	return &GeoMiddleware{resolver: resolver, logger: logger}
}

func (m *GeoMiddleware) ResolveVisitorCountry() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			code, source := m.resolver.ResolveCountry(c.Request())
			c.Set(VisitorCountryKey, code)
			c.Set(GeoSourceKey, source)
			if m.logger != nil {
				m.logger.WithFields(logrus.Fields{"country": code, "source": source}).Debug("visitor country resolved")
			}
			return next(c)
		}
	}
}
