package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const dateLayout = "2006-01-02"

// PurchasingPowerClient reads a PPP conversion-factor time series from a
// remote economic dataset service. The dataset path is keyed by the
// country's alpha-3 code; the query is windowed to the trailing twelve
// months and the most recent observation wins.
//
// Fail-safe contract matches ExchangeRateClient: anything short of a
// usable observation degrades to 1.0.
type PurchasingPowerClient struct {
	datasetURL string // format string, %s = alpha-3 code
	apiKey     string
	client     *http.Client
	logger     *logrus.Logger
	now        func() time.Time
}

func NewPurchasingPowerClient(datasetURL, apiKey string, timeout time.Duration, logger *logrus.Logger) *PurchasingPowerClient {
	return &PurchasingPowerClient{
		datasetURL: datasetURL,
		apiKey:     apiKey,
		client:     &http.Client{Timeout: timeout},
		logger:     logger,
		now:        time.Now,
	}
}

// GetPurchasingPower returns the latest PPP index observation for the
// country, or 1.0 when the series is unavailable.
func (c *PurchasingPowerClient) GetPurchasingPower(ctx context.Context, alpha3 string) float64 {
	code := strings.ToUpper(strings.TrimSpace(alpha3))
	if code == "" {
		return c.fallback("empty_code", code, nil)
	}

	u, err := url.Parse(fmt.Sprintf(c.datasetURL, code))
	if err != nil {
		return c.fallback("bad_url", code, err)
	}
	end := c.now()
	start := end.AddDate(-1, 0, 0)
	q := u.Query()
	if c.apiKey != "" {
		q.Set("api_key", c.apiKey)
	}
	q.Set("start_date", start.Format(dateLayout))
	q.Set("end_date", end.Format(dateLayout))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return c.fallback("bad_request", code, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return c.fallback("transport", code, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.fallback("status_"+strconv.Itoa(resp.StatusCode), code, nil)
	}

	var payload struct {
		Dataset struct {
			// Rows are [date, value], most recent first.
			Data [][]interface{} `json:"data"`
		} `json:"dataset"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return c.fallback("decode", code, err)
	}

	if len(payload.Dataset.Data) == 0 || len(payload.Dataset.Data[0]) < 2 {
		return c.fallback("empty_series", code, nil)
	}
	value, ok := payload.Dataset.Data[0][1].(float64)
	if !ok || value <= 0 {
		return c.fallback("bad_observation", code, nil)
	}
	return value
}

func (c *PurchasingPowerClient) fallback(reason, code string, err error) float64 {
	providerFallbacks.WithLabelValues("purchasing_power", reason).Inc()
	if c.logger != nil {
		entry := c.logger.WithFields(logrus.Fields{"country": code, "reason": reason})
		if err != nil {
			entry = entry.WithError(err)
		}
		entry.Warn("purchasing power lookup failed, using neutral rate")
	}
	return 1.0
}
