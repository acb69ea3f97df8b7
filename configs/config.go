package configs

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Log       LogConfig
	Pricing   PricingConfig
	Providers ProvidersConfig
	Geo       GeoConfig
	Admin     AdminConfig
}

type ServerConfig struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	TLSCertFile  string
	TLSKeyFile   string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	DSN      string
	// Connection pool settings
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	// Pool and timeout settings
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolTimeout  time.Duration
	IdleTimeout  time.Duration
}

type LogConfig struct {
	Level  string
	Format string // json or text
}

// PricingConfig fixes the reference economy and the bounds of the
// purchasing-power adjustment. Visitors resolved to BaseCountry always
// pay 100% of the listed price.
type PricingConfig struct {
	BaseCountry  string // ISO-3166 alpha-2
	BaseCurrency string // ISO-4217
	RateTTL      time.Duration
	MinRate      float64
	MaxRate      float64
	KeyPrefix    string
}

type ProvidersConfig struct {
	ExchangeRateURL string
	// PPPDatasetURL is a format string; %s is replaced with the
	// country's alpha-3 code.
	PPPDatasetURL string
	PPPAPIKey     string
	Timeout       time.Duration
}

type GeoConfig struct {
	// CountryHeader is the request header the upstream geolocation
	// layer writes the visitor's alpha-2 code into.
	CountryHeader string
}

type AdminConfig struct {
	JWTSecret string
}

func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:  getDurationEnv("SERVER_IDLE_TIMEOUT", 120*time.Second),
			TLSCertFile:  getEnv("TLS_CERT_FILE", ""),
			TLSKeyFile:   getEnv("TLS_KEY_FILE", ""),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", "postgres"),
			DBName:          getEnv("DB_NAME", "pricing_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxOpenConns:    getIntEnv("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", 30*time.Minute),
			ConnMaxIdleTime: getDurationEnv("DB_CONN_MAX_IDLE_TIME", 5*time.Minute),
		},
		Redis: RedisConfig{
			Host:         getEnv("REDIS_HOST", "localhost"),
			Port:         getEnv("REDIS_PORT", "6379"),
			Password:     getEnv("REDIS_PASSWORD", ""),
			DB:           getIntEnv("REDIS_DB", 0),
			PoolSize:     getIntEnv("REDIS_POOL_SIZE", 10),
			MinIdleConns: getIntEnv("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  getDurationEnv("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  getDurationEnv("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: getDurationEnv("REDIS_WRITE_TIMEOUT", 3*time.Second),
			PoolTimeout:  getDurationEnv("REDIS_POOL_TIMEOUT", 4*time.Second),
			IdleTimeout:  getDurationEnv("REDIS_IDLE_TIMEOUT", 5*time.Minute),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Pricing: PricingConfig{
			BaseCountry:  getEnv("PRICING_BASE_COUNTRY", "US"),
			BaseCurrency: getEnv("PRICING_BASE_CURRENCY", "USD"),
			// Exchange rates and PPP indices move slowly; refresh monthly.
			RateTTL:   getDurationEnv("PRICING_RATE_TTL", 730*time.Hour),
			MinRate:   getFloatEnv("PRICING_MIN_RATE", 0.1),
			MaxRate:   getFloatEnv("PRICING_MAX_RATE", 1.0),
			KeyPrefix: getEnv("PRICING_CACHE_KEY_PREFIX", "ppp_rate_"),
		},
		Providers: ProvidersConfig{
			ExchangeRateURL: getEnv("EXCHANGE_RATE_URL", "https://api.exchangerate.host/latest"),
			PPPDatasetURL:   getEnv("PPP_DATASET_URL", "https://data.nasdaq.com/api/v3/datasets/ODA/%s_PPPEX.json"),
			PPPAPIKey:       getEnv("PPP_API_KEY", ""),
			Timeout:         getDurationEnv("PROVIDER_TIMEOUT", 10*time.Second),
		},
		Geo: GeoConfig{
			CountryHeader: getEnv("GEO_COUNTRY_HEADER", "CF-IPCountry"),
		},
		Admin: AdminConfig{
			JWTSecret: getEnvRequired("ADMIN_JWT_SECRET"),
		},
	}

	// Build database DSN
	cfg.Database.DSN = fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.DBName,
		cfg.Database.SSLMode,
	)

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvRequired(key string) string {
	value := os.Getenv(key)
	if value == "" {
		panic(fmt.Sprintf("Required environment variable %s is not set", key))
	}
	return value
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
