package httpserver

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/fairprice/ppp-pricing/internal/core/domain/catalog"
)

func (s *Server) createProduct(c echo.Context) error {
	var req catalog.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	product, err := s.catalogSvc.CreateProduct(c.Request().Context(), &req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, product)
}

func (s *Server) listProducts(c echo.Context) error {
	limit := 20
	offset := 0
	if l := c.QueryParam("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil {
			limit = v
		}
	}
	if o := c.QueryParam("offset"); o != "" {
		if v, err := strconv.Atoi(o); err == nil {
			offset = v
		}
	}
	products, err := s.catalogSvc.ListProducts(c.Request().Context(), limit, offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"products": products, "limit": limit, "offset": offset})
}

// getProductPrice returns the canonical record plus what a visitor from
// the resolved country would see. The canonical price never changes.
func (s *Server) getProductPrice(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product ID")
	}
	product, err := s.catalogSvc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	}

	country, source := visitorCountry(c, c.QueryParam("country"))
	sale := 0.0
	if product.OnSale() {
		sale = product.SalePrice
	}
	pair := s.priceSvc.AdjustPricePair(c.Request().Context(), product.RegularPrice, sale, country)

	return c.JSON(http.StatusOK, map[string]interface{}{
		"product":    product,
		"display":    pair,
		"markup":     renderPriceMarkup(pair),
		"geo_source": source,
	})
}
