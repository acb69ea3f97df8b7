package httpserver

import (
	"github.com/labstack/echo/v4"

	customMiddleware "github.com/fairprice/ppp-pricing/internal/infrastructure/httpserver/middleware"
)

// visitorCountry returns the geolocated country for the request, plus
// which source produced it. An explicit override (query or body) takes
// precedence over the geolocation middleware.
func visitorCountry(c echo.Context, override string) (code, source string) {
	if override != "" {
		return override, "request"
	}
	if v, ok := c.Get(customMiddleware.VisitorCountryKey).(string); ok && v != "" {
		src, _ := c.Get(customMiddleware.GeoSourceKey).(string)
		return v, src
	}
	return "", "default"
}
