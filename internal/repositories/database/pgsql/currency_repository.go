package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atlastours/currency-service/internal/apperrors"
	"github.com/atlastours/currency-service/internal/core/domain"
	portsrepo "github.com/atlastours/currency-service/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxCurrencyRepository struct {
	BaseRepository
}

// newPgxCurrencyRepository creates a new repository for currency data.
func newPgxCurrencyRepository(pool *pgxpool.Pool) portsrepo.CurrencyRepository {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepository = (*PgxCurrencyRepository)(nil)

// ListActiveCurrencies retrieves all active currencies ordered by code.
func (r *PgxCurrencyRepository) ListActiveCurrencies(ctx context.Context) ([]domain.Currency, error) {
	query := `
		SELECT currency_code, name, symbol, rate, active, updated_at
		FROM currencies
		WHERE active
		ORDER BY currency_code;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}
	defer rows.Close()

	currencies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Currency, error) {
		var currency domain.Currency
		err := row.Scan(
			&currency.CurrencyCode,
			&currency.Name,
			&currency.Symbol,
			&currency.Rate,
			&currency.Active,
			&currency.UpdatedAt,
		)
		return currency, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan currencies: %w", err)
	}

	return currencies, nil
}

// FindCurrencyByCode retrieves a currency by its 3-letter code.
func (r *PgxCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	query := `
		SELECT currency_code, name, symbol, rate, active, updated_at
		FROM currencies
		WHERE currency_code = $1;
	`
	var currency domain.Currency
	err := r.Pool.QueryRow(ctx, query, currencyCode).Scan(
		&currency.CurrencyCode,
		&currency.Name,
		&currency.Symbol,
		&currency.Rate,
		&currency.Active,
		&currency.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find currency by code %s: %w", currencyCode, err)
	}

	return &currency, nil
}

// UpdateRate sets the cached rate and updated_at for a currency, touching no
// other fields. Updating an unknown code or a non-positive rate is a no-op
// error; the row never transitions through an invalid state.
func (r *PgxCurrencyRepository) UpdateRate(ctx context.Context, currencyCode string, rate decimal.Decimal) error {
	if rate.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: rate must be positive", apperrors.ErrValidation)
	}

	query := `
		UPDATE currencies
		SET rate = $2, updated_at = $3
		WHERE currency_code = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, currencyCode, rate, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to update rate for %s: %w", currencyCode, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: currency %s", apperrors.ErrNotFound, currencyCode)
	}
	return nil
}

// LastRateUpdate returns the most recent updated_at across active currencies.
func (r *PgxCurrencyRepository) LastRateUpdate(ctx context.Context) (time.Time, error) {
	query := `
		SELECT COALESCE(MAX(updated_at), 'epoch'::timestamptz)
		FROM currencies
		WHERE active;
	`
	var lastUpdate time.Time
	if err := r.Pool.QueryRow(ctx, query).Scan(&lastUpdate); err != nil {
		return time.Time{}, fmt.Errorf("failed to get last rate update: %w", err)
	}
	return lastUpdate, nil
}
