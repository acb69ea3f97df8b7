package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *Server) evictRate(c echo.Context) error {
	country := c.Param("country")
	if err := s.rateSvc.EvictRate(c.Request().Context(), country); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"evicted": country})
}

func (s *Server) flushRates(c echo.Context) error {
	n, err := s.rateSvc.FlushRates(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"evicted": n})
}
