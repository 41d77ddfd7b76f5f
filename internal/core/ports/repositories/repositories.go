package repositories

import (
	"context"
	"time"

	"github.com/atlastours/currency-service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyRepository defines persistence operations for currencies and their
// cached exchange rates.
type CurrencyRepository interface {
	// ListActiveCurrencies returns all active currencies ordered by code.
	ListActiveCurrencies(ctx context.Context) ([]domain.Currency, error)

	// FindCurrencyByCode retrieves a currency by its 3-letter code.
	FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// UpdateRate sets the cached rate and updated_at for a currency.
	// It touches no other fields.
	UpdateRate(ctx context.Context, currencyCode string, rate decimal.Decimal) error

	// LastRateUpdate returns the most recent updated_at across active currencies.
	LastRateUpdate(ctx context.Context) (time.Time, error)
}

// CommissionRepository defines persistence operations for per-currency
// conversion commissions.
type CommissionRepository interface {
	// ListActiveCommissions returns active commissions joined with currency
	// display info, ordered by currency code.
	ListActiveCommissions(ctx context.Context) ([]domain.CommissionInfo, error)

	// FindCommissionByCurrency retrieves the active commission for a currency.
	FindCommissionByCurrency(ctx context.Context, currencyCode string) (*domain.Commission, error)

	// UpsertCommission inserts a commission for the currency or updates the
	// existing row in place, keeping at most one active row per code.
	UpsertCommission(ctx context.Context, commission domain.Commission) error

	// DeleteCommission removes the commission for the currency.
	DeleteCommission(ctx context.Context, currencyCode string) error
}

// RepositoryProvider bundles all repository implementations for injection
// into the service layer.
type RepositoryProvider struct {
	CurrencyRepo   CurrencyRepository
	CommissionRepo CommissionRepository
}
