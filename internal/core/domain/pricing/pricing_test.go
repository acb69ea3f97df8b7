package pricing_test

import (
	"math"
	"testing"

	"github.com/fairprice/ppp-pricing/internal/core/domain/pricing"
)

func TestClamp_Bounds(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{20.0, 1.0},  // inflated combination capped at sticker price
		{1.0, 1.0},
		{0.5, 0.5},
		{0.1, 0.1},
		{0.01, 0.1},  // extreme outlier floored
		{-3.0, 0.1},
	}
	for _, tc := range cases {
		if got := pricing.Clamp(tc.in, 0.1, 1.0); got != tc.want {
			t.Fatalf("Clamp(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestClamp_NonFiniteInputs(t *testing.T) {
	for _, in := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if got := pricing.Clamp(in, 0.1, 1.0); got != 1.0 {
			t.Fatalf("Clamp(%v) = %v, want neutral 1.0", in, got)
		}
	}
}

func TestCeilPrice_RoundsUpOnly(t *testing.T) {
	cases := []struct {
		price, rate, want float64
	}{
		{100, 0.5, 50},
		{37, 0.1, 4}, // 3.7 rounds up, never down
		{100, 1.0, 100},
		{99.99, 1.0, 100},
		{0, 0.5, 0},
	}
	for _, tc := range cases {
		if got := pricing.CeilPrice(tc.price, tc.rate); got != tc.want {
			t.Fatalf("CeilPrice(%v, %v) = %v, want %v", tc.price, tc.rate, got, tc.want)
		}
	}
}

func TestCeilPrice_NeverExceedsStickerCeiling(t *testing.T) {
	prices := []float64{0, 0.99, 1, 9.49, 37, 100, 12345.67}
	rates := []float64{0.1, 0.25, 0.5, 0.99, 1.0}
	for _, p := range prices {
		for _, r := range rates {
			got := pricing.CeilPrice(p, r)
			if got > math.Ceil(p) {
				t.Fatalf("CeilPrice(%v, %v) = %v exceeds ceil of original", p, r, got)
			}
			if got < math.Ceil(0.1*p) {
				t.Fatalf("CeilPrice(%v, %v) = %v under the floor bound", p, r, got)
			}
		}
	}
}
