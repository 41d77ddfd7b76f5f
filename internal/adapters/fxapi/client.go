package fxapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/atlastours/currency-service/internal/apperrors"
	"github.com/atlastours/currency-service/internal/core/domain"
	portsprov "github.com/atlastours/currency-service/internal/core/ports/providers"
	"github.com/shopspring/decimal"
)

// Client talks to the upstream FX-rate HTTP service. The bounded client
// timeout keeps a slow or hanging upstream from starving the next scheduled
// refresh.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates an upstream rate client against baseURL.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger.With(slog.String("component", "fxapi")),
	}
}

// Ensure implementation matches interface
var _ portsprov.RateProvider = (*Client)(nil)

// ratesPayload is the upstream response shape: a dynamic object keyed by
// currency code plus the provider's quote date.
type ratesPayload struct {
	Rates map[string]json.Number `json:"rates"`
	Date  string                 `json:"date"`
}

// FetchRates requests the full rate table relative to base. Network
// failures, non-2xx responses and unparseable payloads all map to
// ErrUpstreamUnavailable; individual rates that are missing, non-numeric or
// non-positive are dropped from the snapshot with a warning.
func (c *Client) FetchRates(ctx context.Context, base string) (*domain.RateSnapshot, error) {
	reqURL := fmt.Sprintf("%s/latest?base=%s", c.baseURL, url.QueryEscape(base))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", apperrors.ErrUpstreamUnavailable, resp.StatusCode)
	}

	var payload ratesPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decoding payload: %v", apperrors.ErrUpstreamUnavailable, err)
	}

	rates := make(map[string]decimal.Decimal, len(payload.Rates))
	for code, raw := range payload.Rates {
		rate, err := decimal.NewFromString(raw.String())
		if err != nil || rate.LessThanOrEqual(decimal.Zero) {
			c.logger.Warn("Dropping unusable upstream rate",
				slog.String("currency_code", code),
				slog.String("raw", raw.String()))
			continue
		}
		rates[strings.ToUpper(code)] = rate
	}

	return &domain.RateSnapshot{
		Base:      strings.ToUpper(base),
		Rates:     rates,
		FetchedAt: time.Now().UTC(),
	}, nil
}
