package fxapi_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/atlastours/currency-service/internal/adapters/fxapi"
	"github.com/atlastours/currency-service/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchRates_ParsesPayload(t *testing.T) {
	var gotPath, gotBase string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotBase = r.URL.Query().Get("base")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"rates": {"eur": 0.92, "RUB": 90, "BAD": -5, "ZRO": 0}, "date": "2024-05-01"}`))
	}))
	defer server.Close()

	client := fxapi.NewClient(server.URL, 5*time.Second, slog.Default())
	snapshot, err := client.FetchRates(context.Background(), "USD")

	require.NoError(t, err)
	assert.Equal(t, "/latest", gotPath)
	assert.Equal(t, "USD", gotBase)
	assert.Equal(t, "USD", snapshot.Base)
	assert.False(t, snapshot.FetchedAt.IsZero())

	// Lowercase codes are normalized; non-positive rates are dropped.
	require.Equal(t, []string{"EUR", "RUB"}, snapshot.Codes())
	rate, ok := snapshot.Rate("EUR")
	require.True(t, ok)
	assert.True(t, rate.Equal(decimal.RequireFromString("0.92")))
	_, ok = snapshot.Rate("BAD")
	assert.False(t, ok)
}

func TestFetchRates_EmptyRates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"rates": {}, "date": "2024-05-01"}`))
	}))
	defer server.Close()

	client := fxapi.NewClient(server.URL, 5*time.Second, slog.Default())
	snapshot, err := client.FetchRates(context.Background(), "USD")

	require.NoError(t, err)
	assert.True(t, snapshot.Empty())
}

func TestFetchRates_UpstreamErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := fxapi.NewClient(server.URL, 5*time.Second, slog.Default())
	_, err := client.FetchRates(context.Background(), "USD")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)
}

func TestFetchRates_UnparseablePayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>maintenance</html>`))
	}))
	defer server.Close()

	client := fxapi.NewClient(server.URL, 5*time.Second, slog.Default())
	_, err := client.FetchRates(context.Background(), "USD")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)
}

func TestFetchRates_UnreachableUpstream(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := fxapi.NewClient(server.URL, time.Second, slog.Default())
	_, err := client.FetchRates(context.Background(), "USD")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUpstreamUnavailable)
}
