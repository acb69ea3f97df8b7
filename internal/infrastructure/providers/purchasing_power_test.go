package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newPPPClient(baseURL string) *PurchasingPowerClient {
	c := NewPurchasingPowerClient(baseURL+"/datasets/ODA/%s_PPPEX.json", "test-key", time.Second, nil)
	// Pin the clock so the requested window is deterministic.
	c.now = func() time.Time { return time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC) }
	return c
}

func TestGetPurchasingPower_RequestsTrailingYearWindow(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/datasets/ODA/IND_PPPEX.json", r.URL.Path)
		require.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		require.Equal(t, "2025-03-15", r.URL.Query().Get("start_date"))
		require.Equal(t, "2026-03-15", r.URL.Query().Get("end_date"))
		w.Write([]byte(`{"dataset": {"data": [["2025-12-31", 22.5], ["2024-12-31", 21.9]]}}`))
	}))
	defer srv.Close()

	c := newPPPClient(srv.URL)
	require.Equal(t, 22.5, c.GetPurchasingPower(context.Background(), "IND"))
}

func TestGetPurchasingPower_TakesMostRecentObservation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"dataset": {"data": [["2026-01-31", 0.45], ["2025-01-31", 0.52]]}}`))
	}))
	defer srv.Close()

	c := newPPPClient(srv.URL)
	require.Equal(t, 0.45, c.GetPurchasingPower(context.Background(), "deu"))
}

func TestGetPurchasingPower_FailuresDegradeToNeutral(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"not found": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		},
		"empty series": func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"dataset": {"data": []}}`))
		},
		"short row": func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"dataset": {"data": [["2026-01-31"]]}}`))
		},
		"non-numeric value": func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"dataset": {"data": [["2026-01-31", "n/a"]]}}`))
		},
		"non-positive value": func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"dataset": {"data": [["2026-01-31", -2.0]]}}`))
		},
		"malformed payload": func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"dataset":`))
		},
	}
	for name, handler := range cases {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(handler)
			defer srv.Close()
			c := newPPPClient(srv.URL)
			require.Equal(t, 1.0, c.GetPurchasingPower(context.Background(), "IND"))
		})
	}
}

func TestGetPurchasingPower_EmptyCodeDegradesToNeutral(t *testing.T) {
	c := newPPPClient("http://127.0.0.1:1")
	require.Equal(t, 1.0, c.GetPurchasingPower(context.Background(), ""))
}
