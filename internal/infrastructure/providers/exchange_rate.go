package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// ExchangeRateClient fetches spot rates from a remote rate service that
// answers GET ?base=X&symbols=Y with {"rates": {"Y": <float>}}.
//
// It deliberately has no error return: on any failure the rate degrades
// to 1.0 ("no adjustment"), because a pricing path must never charge a
// customer more than the listed price over a flaky upstream.
type ExchangeRateClient struct {
	baseURL string
	client  *http.Client
	logger  *logrus.Logger
}

func NewExchangeRateClient(baseURL string, timeout time.Duration, logger *logrus.Logger) *ExchangeRateClient {
	return &ExchangeRateClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// GetExchangeRate returns how many units of target one unit of base
// buys. Same-currency lookups short-circuit without a network call.
func (c *ExchangeRateClient) GetExchangeRate(ctx context.Context, targetCurrency, baseCurrency string) float64 {
	target := strings.ToUpper(strings.TrimSpace(targetCurrency))
	base := strings.ToUpper(strings.TrimSpace(baseCurrency))
	if target == "" || target == base {
		return 1.0
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return c.fallback("bad_url", target, err)
	}
	q := u.Query()
	q.Set("base", base)
	q.Set("symbols", target)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return c.fallback("bad_request", target, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return c.fallback("transport", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.fallback("status_"+strconv.Itoa(resp.StatusCode), target, nil)
	}

	var payload struct {
		Rates map[string]float64 `json:"rates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return c.fallback("decode", target, err)
	}

	rate, ok := payload.Rates[target]
	if !ok || rate <= 0 {
		return c.fallback("missing_symbol", target, nil)
	}
	return rate
}

func (c *ExchangeRateClient) fallback(reason, currency string, err error) float64 {
	providerFallbacks.WithLabelValues("exchange_rate", reason).Inc()
	if c.logger != nil {
		entry := c.logger.WithFields(logrus.Fields{"currency": currency, "reason": reason})
		if err != nil {
			entry = entry.WithError(err)
		}
		entry.Warn("exchange rate lookup failed, using neutral rate")
	}
	return 1.0
}
