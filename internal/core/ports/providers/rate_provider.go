package providers

import (
	"context"

	"github.com/atlastours/currency-service/internal/core/domain"
)

// RateProvider fetches a full exchange-rate table from an upstream FX
// service, keyed by currency code and expressed relative to the given base
// currency. The provider is untrusted: missing codes, extra codes and
// outright failures are all expected.
type RateProvider interface {
	FetchRates(ctx context.Context, base string) (*domain.RateSnapshot, error)
}
