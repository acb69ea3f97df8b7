package httpserver

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/fairprice/ppp-pricing/internal/core/ports"
	customMiddleware "github.com/fairprice/ppp-pricing/internal/infrastructure/httpserver/middleware"
)

type ServerConfig struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	TLSCertFile  string
	TLSKeyFile   string
}

type ServerDeps struct {
	RateService    ports.RateService
	PriceService   ports.PriceService
	CatalogService ports.CatalogService
	Geolocation    ports.GeolocationResolver
	HealthCheckers []ports.HealthChecker
}

type Server struct {
	echo           *echo.Echo
	config         *ServerConfig
	logger         *logrus.Logger
	rateSvc        ports.RateService
	priceSvc       ports.PriceService
	catalogSvc     ports.CatalogService
	middleware     *customMiddleware.MiddlewareCollection
	healthCheckers []ports.HealthChecker
}

func NewServer(serverConfig *ServerConfig, adminJWTSecret string, logger *logrus.Logger, deps ServerDeps) *Server {
	e := echo.New()

	server := &Server{
		echo:           e,
		config:         serverConfig,
		logger:         logger,
		rateSvc:        deps.RateService,
		priceSvc:       deps.PriceService,
		catalogSvc:     deps.CatalogService,
		healthCheckers: deps.HealthCheckers,
		middleware: customMiddleware.NewMiddlewareCollection(
			deps.Geolocation,
			logger,
			adminJWTSecret,
			GetRequestsTotal(),
			GetRequestDuration(),
		),
	}

	server.setupMiddleware()
	server.setupRoutes()

	return server
}
