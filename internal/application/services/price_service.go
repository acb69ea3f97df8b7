package services

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/fairprice/ppp-pricing/internal/core/domain/pricing"
	"github.com/fairprice/ppp-pricing/internal/core/ports"
)

// PriceService applies the purchasing-power rate to prices. It is the
// only surface the presentation layer calls with money.
type PriceService struct {
	rates       ports.RateService
	baseCountry string
	logger      *logrus.Logger
}

func NewPriceService(rates ports.RateService, baseCountry string, logger *logrus.Logger) *PriceService {
	return &PriceService{
		rates:       rates,
		baseCountry: strings.ToUpper(baseCountry),
		logger:      logger,
	}
}

func (s *PriceService) resolve(alpha2 string) string {
	code := strings.ToUpper(strings.TrimSpace(alpha2))
	if code == "" {
		return s.baseCountry
	}
	return code
}

// AdjustPrice returns ceil(price x rate) for the visitor's country.
// Negative input is treated as zero; the adjusted amount can never
// exceed the ceiling of the original.
func (s *PriceService) AdjustPrice(ctx context.Context, price float64, alpha2 string) pricing.Quote {
	if price < 0 {
		price = 0
	}
	code := s.resolve(alpha2)
	rate := s.rates.GetPPPRate(ctx, code)
	return pricing.Quote{
		OriginalPrice: price,
		AdjustedPrice: pricing.CeilPrice(price, rate),
		Rate:          rate,
		Country:       code,
	}
}

// AdjustPricePair runs a regular/sale pair through the same rate. When
// the two adjusted amounts collapse to equality the pair is flagged as
// having no active discount; which price the display layer then shows
// is its policy, not a pricing rule.
func (s *PriceService) AdjustPricePair(ctx context.Context, regular, sale float64, alpha2 string) pricing.PairQuote {
	if regular < 0 {
		regular = 0
	}
	if sale < 0 {
		sale = 0
	}
	code := s.resolve(alpha2)
	rate := s.rates.GetPPPRate(ctx, code)

	adjRegular := pricing.CeilPrice(regular, rate)
	adjSale := pricing.CeilPrice(sale, rate)
	return pricing.PairQuote{
		RegularPrice:   adjRegular,
		SalePrice:      adjSale,
		Rate:           rate,
		Country:        code,
		DiscountActive: sale > 0 && adjSale < adjRegular,
	}
}
