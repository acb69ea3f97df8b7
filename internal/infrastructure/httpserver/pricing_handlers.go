package httpserver

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// getRate exposes the bounded purchasing-power multiplier directly.
// Unknown countries are not an error; they resolve to the neutral rate.
func (s *Server) getRate(c echo.Context) error {
	country := c.Param("country")
	rate := s.rateSvc.GetPPPRate(c.Request().Context(), country)
	return c.JSON(http.StatusOK, map[string]interface{}{
		"country": country,
		"rate":    rate,
	})
}

// quotePrice adjusts a single raw price for the visitor's country.
func (s *Server) quotePrice(c echo.Context) error {
	priceParam := c.QueryParam("price")
	price, err := strconv.ParseFloat(priceParam, 64)
	if err != nil || price < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "price must be a non-negative number")
	}

	country, source := visitorCountry(c, c.QueryParam("country"))
	quote := s.priceSvc.AdjustPrice(c.Request().Context(), price, country)

	return c.JSON(http.StatusOK, map[string]interface{}{
		"quote":      quote,
		"geo_source": source,
	})
}

type refreshPriceRequest struct {
	ProductID    string   `json:"product_id"`
	RegularPrice *float64 `json:"regular_price"`
	SalePrice    *float64 `json:"sale_price"`
	Country      string   `json:"country"`
}

// refreshPrice re-renders price markup for a cached page fragment. The
// caller passes either a product identifier or an explicit regular/sale
// pair; the response carries the adjusted amounts, the markup, and the
// geolocation diagnostics the storefront logs.
func (s *Server) refreshPrice(c echo.Context) error {
	var req refreshPriceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	country, source := visitorCountry(c, req.Country)

	var regular, sale float64
	switch {
	case req.ProductID != "":
		id, err := uuid.Parse(req.ProductID)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid product ID")
		}
		product, err := s.catalogSvc.GetProduct(c.Request().Context(), id)
		if err != nil {
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		regular = product.RegularPrice
		if product.OnSale() {
			sale = product.SalePrice
		}
	case req.RegularPrice != nil:
		regular = *req.RegularPrice
		if req.SalePrice != nil {
			sale = *req.SalePrice
		}
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "product_id or regular_price is required")
	}

	pair := s.priceSvc.AdjustPricePair(c.Request().Context(), regular, sale, country)

	return c.JSON(http.StatusOK, map[string]interface{}{
		"prices":     pair,
		"markup":     renderPriceMarkup(pair),
		"country":    pair.Country,
		"geo_source": source,
	})
}
