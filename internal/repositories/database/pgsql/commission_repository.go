package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/atlastours/currency-service/internal/apperrors"
	"github.com/atlastours/currency-service/internal/core/domain"
	portsrepo "github.com/atlastours/currency-service/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCommissionRepository struct {
	BaseRepository
}

// newPgxCommissionRepository creates a new repository for commission data.
func newPgxCommissionRepository(pool *pgxpool.Pool) portsrepo.CommissionRepository {
	return &PgxCommissionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CommissionRepository = (*PgxCommissionRepository)(nil)

// ListActiveCommissions retrieves active commissions joined with currency
// display info for the admin listing, ordered by currency code.
func (r *PgxCommissionRepository) ListActiveCommissions(ctx context.Context) ([]domain.CommissionInfo, error) {
	query := `
		SELECT cm.currency_code, cm.amount, cm.active, cm.updated_at, cu.name, cu.symbol
		FROM commissions cm
		JOIN currencies cu ON cu.currency_code = cm.currency_code
		WHERE cm.active
		ORDER BY cm.currency_code;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query commissions: %w", err)
	}
	defer rows.Close()

	commissions, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CommissionInfo, error) {
		var info domain.CommissionInfo
		err := row.Scan(
			&info.CurrencyCode,
			&info.Amount,
			&info.Active,
			&info.UpdatedAt,
			&info.CurrencyName,
			&info.CurrencySymbol,
		)
		return info, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan commissions: %w", err)
	}

	return commissions, nil
}

// FindCommissionByCurrency retrieves the active commission for a currency.
func (r *PgxCommissionRepository) FindCommissionByCurrency(ctx context.Context, currencyCode string) (*domain.Commission, error) {
	query := `
		SELECT currency_code, amount, active, updated_at
		FROM commissions
		WHERE currency_code = $1 AND active;
	`
	var commission domain.Commission
	err := r.Pool.QueryRow(ctx, query, currencyCode).Scan(
		&commission.CurrencyCode,
		&commission.Amount,
		&commission.Active,
		&commission.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find commission for %s: %w", currencyCode, err)
	}

	return &commission, nil
}

// UpsertCommission inserts a commission or updates the existing row in
// place. The primary key on currency_code keeps at most one row per code.
func (r *PgxCommissionRepository) UpsertCommission(ctx context.Context, commission domain.Commission) error {
	query := `
		INSERT INTO commissions (currency_code, amount, active, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (currency_code) DO UPDATE SET
			amount = EXCLUDED.amount,
			active = EXCLUDED.active,
			updated_at = EXCLUDED.updated_at;
	`
	_, err := r.Pool.Exec(ctx, query,
		commission.CurrencyCode,
		commission.Amount,
		commission.Active,
		commission.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert commission for %s: %w", commission.CurrencyCode, err)
	}
	return nil
}

// DeleteCommission removes the commission for a currency.
func (r *PgxCommissionRepository) DeleteCommission(ctx context.Context, currencyCode string) error {
	query := `DELETE FROM commissions WHERE currency_code = $1;`

	tag, err := r.Pool.Exec(ctx, query, currencyCode)
	if err != nil {
		return fmt.Errorf("failed to delete commission for %s: %w", currencyCode, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: commission for %s", apperrors.ErrNotFound, currencyCode)
	}
	return nil
}
