package httpserver_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/fairprice/ppp-pricing/internal/application/services"
	"github.com/fairprice/ppp-pricing/internal/core/domain/catalog"
	"github.com/fairprice/ppp-pricing/internal/infrastructure/geo"
	"github.com/fairprice/ppp-pricing/internal/infrastructure/httpserver"
)

const testAdminSecret = "test-admin-secret"

type rateSvcMock struct {
	rate        float64
	evicted     []string
	flushCalled bool
}

func (m *rateSvcMock) GetPPPRate(ctx context.Context, alpha2 string) float64 {
	if alpha2 == "" || alpha2 == "US" {
		return 1.0
	}
	return m.rate
}
func (m *rateSvcMock) EvictRate(ctx context.Context, alpha2 string) error {
	m.evicted = append(m.evicted, alpha2)
	return nil
}
func (m *rateSvcMock) FlushRates(ctx context.Context) (int, error) {
	m.flushCalled = true
	return 3, nil
}

type catalogSvcMock struct {
	getProductFn func(ctx context.Context, id uuid.UUID) (*catalog.Product, error)
}

func (m *catalogSvcMock) GetProduct(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	if m.getProductFn != nil {
		return m.getProductFn(ctx, id)
	}
	return nil, errors.New("not found")
}
func (m *catalogSvcMock) CreateProduct(ctx context.Context, req *catalog.CreateProductRequest) (*catalog.Product, error) {
	return nil, errors.New("not implemented")
}
func (m *catalogSvcMock) ListProducts(ctx context.Context, limit, offset int) ([]*catalog.Product, error) {
	return nil, nil
}

func newTestServer(t *testing.T, rates *rateSvcMock, catalogSvc *catalogSvcMock) *httpserver.Server {
	t.Helper()
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	if catalogSvc == nil {
		catalogSvc = &catalogSvcMock{}
	}
	deps := httpserver.ServerDeps{
		RateService:    rates,
		PriceService:   services.NewPriceService(rates, "US", logger),
		CatalogService: catalogSvc,
		Geolocation:    geo.NewHeaderResolver("CF-IPCountry", "US"),
	}
	return httpserver.NewServer(&httpserver.ServerConfig{Host: "127.0.0.1", Port: "0"}, testAdminSecret, logger, deps)
}

func adminToken(t *testing.T, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testAdminSecret))
	require.NoError(t, err)
	return signed
}

func TestGetRate_ReturnsBoundedRate(t *testing.T) {
	server := newTestServer(t, &rateSvcMock{rate: 0.5}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rates/IN", nil)
	rec := httptest.NewRecorder()
	server.Echo().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, 0.5, body["rate"])
}

func TestQuotePrice_UsesGeolocatedCountry(t *testing.T) {
	server := newTestServer(t, &rateSvcMock{rate: 0.5}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/prices/quote?price=100", nil)
	req.Header.Set("CF-IPCountry", "IN")
	rec := httptest.NewRecorder()
	server.Echo().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Quote struct {
			AdjustedPrice float64 `json:"adjusted_price"`
			Country       string  `json:"country"`
		} `json:"quote"`
		GeoSource string `json:"geo_source"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, 50.0, body.Quote.AdjustedPrice)
	require.Equal(t, "IN", body.Quote.Country)
	require.Equal(t, "header", body.GeoSource)
}

func TestQuotePrice_ExplicitCountryOverridesHeader(t *testing.T) {
	server := newTestServer(t, &rateSvcMock{rate: 0.5}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/prices/quote?price=100&country=IN", nil)
	req.Header.Set("CF-IPCountry", "DE")
	rec := httptest.NewRecorder()
	server.Echo().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Quote struct {
			Country string `json:"country"`
		} `json:"quote"`
		GeoSource string `json:"geo_source"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "IN", body.Quote.Country)
	require.Equal(t, "request", body.GeoSource)
}

func TestQuotePrice_RejectsBadPrice(t *testing.T) {
	server := newTestServer(t, &rateSvcMock{rate: 0.5}, nil)

	for _, qs := range []string{"", "price=abc", "price=-5"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/prices/quote?"+qs, nil)
		rec := httptest.NewRecorder()
		server.Echo().ServeHTTP(rec, req)
		require.Equal(t, http.StatusBadRequest, rec.Code, "query %q", qs)
	}
}

func TestRefreshPrice_WithExplicitPair(t *testing.T) {
	server := newTestServer(t, &rateSvcMock{rate: 0.5}, nil)

	payload := `{"regular_price": 100, "sale_price": 80, "country": "IN"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/prices/refresh", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.Echo().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Prices struct {
			RegularPrice   float64 `json:"regular_price"`
			SalePrice      float64 `json:"sale_price"`
			DiscountActive bool    `json:"discount_active"`
		} `json:"prices"`
		Markup string `json:"markup"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, 50.0, body.Prices.RegularPrice)
	require.Equal(t, 40.0, body.Prices.SalePrice)
	require.True(t, body.Prices.DiscountActive)
	require.Contains(t, body.Markup, "<del")
	require.Contains(t, body.Markup, "<ins>40</ins>")
}

func TestRefreshPrice_WithProductID(t *testing.T) {
	productID := uuid.New()
	catalogSvc := &catalogSvcMock{getProductFn: func(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
		require.Equal(t, productID, id)
		return &catalog.Product{ID: id, SKU: "sku-1", RegularPrice: 100, SalePrice: 0}, nil
	}}
	server := newTestServer(t, &rateSvcMock{rate: 0.5}, catalogSvc)

	payload := `{"product_id": "` + productID.String() + `", "country": "IN"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/prices/refresh", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.Echo().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Prices struct {
			RegularPrice   float64 `json:"regular_price"`
			DiscountActive bool    `json:"discount_active"`
		} `json:"prices"`
		Markup string `json:"markup"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, 50.0, body.Prices.RegularPrice)
	require.False(t, body.Prices.DiscountActive)
	require.Contains(t, body.Markup, `<span class="price">50</span>`)
}

func TestRefreshPrice_UnknownProduct(t *testing.T) {
	server := newTestServer(t, &rateSvcMock{rate: 0.5}, &catalogSvcMock{})

	payload := `{"product_id": "` + uuid.New().String() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/prices/refresh", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.Echo().ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRefreshPrice_MissingInputs(t *testing.T) {
	server := newTestServer(t, &rateSvcMock{rate: 0.5}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/prices/refresh", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	server.Echo().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminFlush_RequiresToken(t *testing.T) {
	rates := &rateSvcMock{rate: 0.5}
	server := newTestServer(t, rates, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/rates", nil)
	rec := httptest.NewRecorder()
	server.Echo().ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.False(t, rates.flushCalled)
}

func TestAdminFlush_RejectsNonAdminRole(t *testing.T) {
	rates := &rateSvcMock{rate: 0.5}
	server := newTestServer(t, rates, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/rates", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t, "viewer"))
	rec := httptest.NewRecorder()
	server.Echo().ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	require.False(t, rates.flushCalled)
}

func TestAdminFlush_WithValidToken(t *testing.T) {
	rates := &rateSvcMock{rate: 0.5}
	server := newTestServer(t, rates, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/rates", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t, "admin"))
	rec := httptest.NewRecorder()
	server.Echo().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, rates.flushCalled)
}

func TestAdminEvict_SingleCountry(t *testing.T) {
	rates := &rateSvcMock{rate: 0.5}
	server := newTestServer(t, rates, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/rates/IN", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t, "admin"))
	rec := httptest.NewRecorder()
	server.Echo().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, []string{"IN"}, rates.evicted)
}
