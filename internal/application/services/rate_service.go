package services

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/sync/singleflight"

	"github.com/fairprice/ppp-pricing/internal/core/domain/country"
	"github.com/fairprice/ppp-pricing/internal/core/domain/pricing"
	"github.com/fairprice/ppp-pricing/internal/core/ports"
)

// RateServiceConfig carries the pricing policy knobs: which economy the
// sticker prices are denominated in, how long a computed rate stays
// fresh, and the bounds of the adjustment.
type RateServiceConfig struct {
	BaseCountry  string
	BaseCurrency string
	RateTTL      time.Duration
	MinRate      float64
	MaxRate      float64
	KeyPrefix    string
}

// RateService combines a purchasing-power index and an exchange rate
// into one bounded multiplier per country, cached between refreshes.
type RateService struct {
	cfg      *RateServiceConfig
	cache    ports.Cache
	exchange ports.ExchangeRateProvider
	power    ports.PurchasingPowerProvider
	logger   *logrus.Logger
	sf       singleflight.Group
}

func NewRateService(cfg *RateServiceConfig, cache ports.Cache, exchange ports.ExchangeRateProvider, power ports.PurchasingPowerProvider, logger *logrus.Logger) *RateService {
	normalized := *cfg
	normalized.BaseCountry = strings.ToUpper(normalized.BaseCountry)
	if normalized.MinRate <= 0 {
		normalized.MinRate = pricing.DefaultMinRate
	}
	if normalized.MaxRate <= 0 {
		normalized.MaxRate = pricing.DefaultMaxRate
	}
	if normalized.KeyPrefix == "" {
		normalized.KeyPrefix = "ppp_rate_"
	}
	return &RateService{
		cfg:      &normalized,
		cache:    cache,
		exchange: exchange,
		power:    power,
		logger:   logger,
	}
}

// GetPPPRate returns the fraction of the base price a visitor from the
// given country should pay, always within [MinRate, MaxRate]. The base
// country short-circuits to 1.0 before any cache or network touch.
func (s *RateService) GetPPPRate(ctx context.Context, alpha2 string) float64 {
	code := strings.ToUpper(strings.TrimSpace(alpha2))
	if code == "" {
		code = s.cfg.BaseCountry
	}
	if code == s.cfg.BaseCountry {
		return 1.0
	}

	key := s.cfg.KeyPrefix + code
	if rate, ok := s.cachedRate(ctx, key); ok {
		rateCacheHits.Inc()
		return pricing.Clamp(rate, s.cfg.MinRate, s.cfg.MaxRate)
	}
	rateCacheMisses.Inc()

	// Coalesce concurrent first requests for the same country; a stray
	// duplicate fetch would be idempotent anyway.
	v, _, _ := s.sf.Do(code, func() (interface{}, error) {
		if rate, ok := s.cachedRate(ctx, key); ok {
			return pricing.Clamp(rate, s.cfg.MinRate, s.cfg.MaxRate), nil
		}
		rate := pricing.Clamp(s.computeRate(ctx, code), s.cfg.MinRate, s.cfg.MaxRate)
		s.storeRate(ctx, key, rate)
		return rate, nil
	})

	rate, ok := v.(float64)
	if !ok {
		return s.cfg.MaxRate
	}
	return rate
}

// computeRate derives the raw multiplier from upstream data. Unknown
// countries get a neutral 1.0 so unrecognized visitors see full price.
func (s *RateService) computeRate(ctx context.Context, alpha2 string) float64 {
	rec, ok := country.Lookup(alpha2)
	if !ok {
		rateUnknownCountry.Inc()
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{"country": alpha2}).Info("country not in reference table, using neutral rate")
		}
		return 1.0
	}

	power := s.power.GetPurchasingPower(ctx, rec.Alpha3)
	exchange := s.exchange.GetExchangeRate(ctx, rec.Currency, s.cfg.BaseCurrency)
	if exchange <= 0 {
		exchange = 1.0
	}

	raw := power / exchange
	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{
			"country":          alpha2,
			"currency":         rec.Currency,
			"purchasing_power": power,
			"exchange_rate":    exchange,
			"raw_rate":         raw,
		}).Debug("computed purchasing-power rate")
	}
	return raw
}

func (s *RateService) cachedRate(ctx context.Context, key string) (float64, bool) {
	if s.cache == nil {
		return 0, false
	}
	b, ok, err := s.cache.Get(ctx, key)
	if err != nil || !ok {
		if err != nil && s.logger != nil {
			s.logger.WithError(err).Warn("rate cache read failed, recomputing")
		}
		return 0, false
	}
	var entry pricing.RateEntry
	if err := msgpack.Unmarshal(b, &entry); err != nil {
		// Treat a corrupt entry as a miss; it will be overwritten.
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{"key": key}).WithError(err).Warn("discarding undecodable rate cache entry")
		}
		return 0, false
	}
	return entry.Rate, true
}

// storeRate writes the already-clamped rate. Clamping before the single
// write boundary keeps any direct cache reader inside the bounds too.
func (s *RateService) storeRate(ctx context.Context, key string, rate float64) {
	if s.cache == nil {
		return
	}
	b, err := msgpack.Marshal(&pricing.RateEntry{Rate: rate, FetchedAt: time.Now().Unix()})
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, b, s.cfg.RateTTL); err != nil && s.logger != nil {
		s.logger.WithFields(logrus.Fields{"key": key}).WithError(err).Warn("rate cache write failed")
	}
}

// EvictRate drops one country's cached rate.
func (s *RateService) EvictRate(ctx context.Context, alpha2 string) error {
	code := strings.ToUpper(strings.TrimSpace(alpha2))
	if code == "" || s.cache == nil {
		return nil
	}
	return s.cache.Delete(ctx, s.cfg.KeyPrefix+code)
}

// FlushRates drops every cached rate and reports how many were removed.
func (s *RateService) FlushRates(ctx context.Context) (int, error) {
	if s.cache == nil {
		return 0, nil
	}
	n, err := s.cache.DeleteByPrefix(ctx, s.cfg.KeyPrefix)
	if err == nil && s.logger != nil {
		s.logger.WithFields(logrus.Fields{"evicted": n}).Info("flushed purchasing-power rate cache")
	}
	return n, err
}
