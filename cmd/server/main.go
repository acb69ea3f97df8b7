package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	config "github.com/fairprice/ppp-pricing/configs"
	"github.com/fairprice/ppp-pricing/internal/application/services"
	"github.com/fairprice/ppp-pricing/internal/core/ports"
	"github.com/fairprice/ppp-pricing/internal/infrastructure/db"
	"github.com/fairprice/ppp-pricing/internal/infrastructure/geo"
	"github.com/fairprice/ppp-pricing/internal/infrastructure/health"
	"github.com/fairprice/ppp-pricing/internal/infrastructure/httpserver"
	"github.com/fairprice/ppp-pricing/internal/infrastructure/providers"
	"github.com/fairprice/ppp-pricing/internal/infrastructure/redis"
	"github.com/fairprice/ppp-pricing/internal/infrastructure/repositories"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Setup logger
	logger := logrus.New()
	if cfg.Log.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		logger.SetLevel(logrus.InfoLevel)
	} else {
		logger.SetLevel(level)
	}

	logger.Info("Starting PPP pricing service...")

	// Initialize database (product catalog)
	database, err := db.NewDatabase(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database:", err)
	}
	defer database.Close()

	logger.Info("Connected to database successfully")

	// Initialize Redis client (rate cache)
	redisClient, err := redis.NewRedisClient(&cfg.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis:", err)
	}
	defer redisClient.Close()

	logger.Info("Connected to Redis successfully")

	// Run migrations
	if err := database.Migrate("./migrations"); err != nil {
		logger.Warn("Failed to run migrations:", err)
	}

	rateCache := redis.NewRedisCache(redisClient, "pricing")

	// Upstream data providers
	exchangeRates := providers.NewExchangeRateClient(cfg.Providers.ExchangeRateURL, cfg.Providers.Timeout, logger)
	purchasingPower := providers.NewPurchasingPowerClient(cfg.Providers.PPPDatasetURL, cfg.Providers.PPPAPIKey, cfg.Providers.Timeout, logger)

	// Core pricing pipeline
	rateService := services.NewRateService(&services.RateServiceConfig{
		BaseCountry:  cfg.Pricing.BaseCountry,
		BaseCurrency: cfg.Pricing.BaseCurrency,
		RateTTL:      cfg.Pricing.RateTTL,
		MinRate:      cfg.Pricing.MinRate,
		MaxRate:      cfg.Pricing.MaxRate,
		KeyPrefix:    cfg.Pricing.KeyPrefix,
	}, rateCache, exchangeRates, purchasingPower, logger)
	priceService := services.NewPriceService(rateService, cfg.Pricing.BaseCountry, logger)

	// Product catalog (host platform stand-in)
	productRepo := repositories.NewProductRepository(database, logger)
	catalogService := services.NewCatalogService(productRepo, logger)

	geoResolver := geo.NewHeaderResolver(cfg.Geo.CountryHeader, cfg.Pricing.BaseCountry)

	hcSlice := []ports.HealthChecker{health.NewDBHealthChecker(database), health.NewRedisHealthChecker(redisClient)}

	serverConfig := &httpserver.ServerConfig{
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		TLSCertFile:  cfg.Server.TLSCertFile,
		TLSKeyFile:   cfg.Server.TLSKeyFile,
	}

	deps := httpserver.ServerDeps{
		RateService:    rateService,
		PriceService:   priceService,
		CatalogService: catalogService,
		Geolocation:    geoResolver,
		HealthCheckers: hcSlice,
	}

	server := httpserver.NewServer(serverConfig, cfg.Admin.JWTSecret, logger, deps)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			logger.Fatal("Failed to start server:", err)
		}
	}()

	logger.Infof("Server started on %s:%s", cfg.Server.Host, cfg.Server.Port)

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown:", err)
	}

	logger.Info("Server exited")
}
