package services

import (
	"log/slog"

	portsprov "github.com/atlastours/currency-service/internal/core/ports/providers"
	portsrepo "github.com/atlastours/currency-service/internal/core/ports/repositories"
	portssvc "github.com/atlastours/currency-service/internal/core/ports/services"
	"github.com/atlastours/currency-service/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(
	cfg *config.Config,
	repos portsrepo.RepositoryProvider,
	provider portsprov.RateProvider,
	logger *slog.Logger,
) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Currency reads come first since conversion and commissions validate
	// against them.
	container.Currency = NewCurrencyService(repos.CurrencyRepo)

	container.Conversion = NewConversionService(container.Currency, repos.CommissionRepo, cfg.BaseCurrency)
	container.Commission = NewCommissionService(repos.CommissionRepo, container.Currency)
	container.RateRefresh = NewRateRefreshService(repos.CurrencyRepo, provider, cfg.BaseCurrency, cfg.RateRefreshInterval, logger)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.CurrencySvcFacade   = (*currencyService)(nil)
	_ portssvc.ConversionSvcFacade = (*conversionService)(nil)
	_ portssvc.CommissionSvcFacade = (*commissionService)(nil)
	_ portssvc.RateRefreshSvc      = (*rateRefreshService)(nil)
)
