package services

import (
	"context"

	"github.com/atlastours/currency-service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ConversionSvcFacade defines the currency conversion operation. Convert
// only reads already-cached state, so it is safe to call with high
// concurrency and never blocks on a rate refresh.
type ConversionSvcFacade interface {
	// Convert converts amount from fromCode into toCode and returns the full
	// breakdown. An empty fromCode defaults to the base currency.
	Convert(ctx context.Context, amount decimal.Decimal, fromCode, toCode string) (*domain.ConversionBreakdown, error)
}
