package pricing

import (
	"math"

	"github.com/shopspring/decimal"
)

// Default bounds for the purchasing-power multiplier. The cap keeps a
// visitor from ever paying more than the sticker price; the floor bounds
// revenue loss from extreme currency or index outliers.
const (
	DefaultMinRate = 0.1
	DefaultMaxRate = 1.0
)

// RateEntry is the cached form of a computed rate. FetchedAt is
// diagnostic only; expiry is enforced by the cache store's TTL.
type RateEntry struct {
	Rate      float64 `msgpack:"rate"`
	FetchedAt int64   `msgpack:"fetched_at"`
}

// Clamp bounds a raw purchasing-power multiplier to [min, max].
func Clamp(rate, min, max float64) float64 {
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		return max
	}
	if rate < min {
		return min
	}
	if rate > max {
		return max
	}
	return rate
}

// CeilPrice rounds a converted price up to the next whole currency unit.
// Ceiling rather than nearest keeps rounding from ever under-charging.
func CeilPrice(price, rate float64) float64 {
	adjusted := decimal.NewFromFloat(price).Mul(decimal.NewFromFloat(rate))
	return adjusted.Ceil().InexactFloat64()
}

// Quote is an adjusted price for a single base price.
type Quote struct {
	OriginalPrice float64 `json:"original_price"`
	AdjustedPrice float64 `json:"adjusted_price"`
	Rate          float64 `json:"rate"`
	Country       string  `json:"country"`
}

// PairQuote is an adjusted regular/sale price pair. DiscountActive is
// false when the adjusted pair collapses to the same amount, so the
// display layer shows a single price instead of a zero-width price drop.
type PairQuote struct {
	RegularPrice   float64 `json:"regular_price"`
	SalePrice      float64 `json:"sale_price"`
	Rate           float64 `json:"rate"`
	Country        string  `json:"country"`
	DiscountActive bool    `json:"discount_active"`
}
