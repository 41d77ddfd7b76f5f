package services

import (
	"context"
	"time"

	"github.com/atlastours/currency-service/internal/core/domain"
)

// CurrencyReaderSvc defines read operations for currency data
type CurrencyReaderSvc interface {
	// GetActiveCurrency retrieves an active currency by its code.
	GetActiveCurrency(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListActiveCurrencies retrieves all active currencies ordered by code.
	ListActiveCurrencies(ctx context.Context) ([]domain.Currency, error)

	// LastRateUpdate returns the most recent rate update time across all
	// active currencies.
	LastRateUpdate(ctx context.Context) (time.Time, error)
}

// CurrencySvcFacade combines all currency-related service interfaces.
// Rate writes are owned exclusively by the rate refresh service.
type CurrencySvcFacade interface {
	CurrencyReaderSvc
}
