package ports

import (
	"context"
	"net/http"

	"github.com/fairprice/ppp-pricing/internal/core/domain/pricing"
)

// ExchangeRateProvider fetches the current rate of target per unit of
// base from a remote rate service. It never fails: any upstream problem
// degrades to 1.0 so a pricing bug cannot inflate a displayed price.
type ExchangeRateProvider interface {
	GetExchangeRate(ctx context.Context, targetCurrency, baseCurrency string) float64
}

// PurchasingPowerProvider fetches a PPP conversion-factor index for an
// alpha-3 country code over the trailing twelve months. Same fail-safe
// contract as ExchangeRateProvider: failures degrade to 1.0.
type PurchasingPowerProvider interface {
	GetPurchasingPower(ctx context.Context, alpha3 string) float64
}

// GeolocationResolver extracts the visitor's alpha-2 country code from a
// request. Resolution is best-effort; source names where the code came
// from ("header" or "default") for diagnostics.
type GeolocationResolver interface {
	ResolveCountry(r *http.Request) (alpha2, source string)
}

// RateService computes the bounded purchasing-power multiplier for a
// country, caching results between upstream refreshes.
type RateService interface {
	// GetPPPRate returns a rate in [MinRate, MaxRate]. An empty country
	// code resolves to the base country, which always yields 1.0.
	GetPPPRate(ctx context.Context, alpha2 string) float64
	// EvictRate drops a single country's cached rate.
	EvictRate(ctx context.Context, alpha2 string) error
	// FlushRates drops every cached rate, forcing recomputation.
	FlushRates(ctx context.Context) (int, error)
}

// PriceService is the externally visible price transformation surface.
type PriceService interface {
	// AdjustPrice returns ceil(price x rate) for the visitor's country.
	AdjustPrice(ctx context.Context, price float64, alpha2 string) pricing.Quote
	// AdjustPricePair adjusts a regular/sale pair through the same rate.
	AdjustPricePair(ctx context.Context, regular, sale float64, alpha2 string) pricing.PairQuote
}
