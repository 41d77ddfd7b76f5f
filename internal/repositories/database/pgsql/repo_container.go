package pgsql

import (
	portsrepo "github.com/atlastours/currency-service/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	currencyRepo := newPgxCurrencyRepository(dbPool)
	commissionRepo := newPgxCommissionRepository(dbPool)

	return portsrepo.RepositoryProvider{
		CurrencyRepo:   currencyRepo,
		CommissionRepo: commissionRepo,
	}
}
