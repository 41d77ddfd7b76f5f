package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atlastours/currency-service/internal/apperrors"
	"github.com/atlastours/currency-service/internal/core/domain"
	portsrepo "github.com/atlastours/currency-service/internal/core/ports/repositories"
)

type currencyService struct {
	currencyRepo portsrepo.CurrencyRepository
}

// NewCurrencyService creates the read-side service over the currency store.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepository) *currencyService {
	return &currencyService{currencyRepo: currencyRepo}
}

// GetActiveCurrency retrieves a currency by code and rejects inactive ones.
func (s *currencyService) GetActiveCurrency(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	currencyCode = strings.ToUpper(strings.TrimSpace(currencyCode))
	if len(currencyCode) != 3 {
		return nil, fmt.Errorf("%w: currency codes must be 3 letters", apperrors.ErrValidation)
	}

	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency %s: %w", currencyCode, err)
	}
	if !currency.Active {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrCurrencyInactive, currencyCode)
	}
	return currency, nil
}

func (s *currencyService) ListActiveCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListActiveCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}
	// Return empty slice if no currencies found, not nil
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}

func (s *currencyService) LastRateUpdate(ctx context.Context) (time.Time, error) {
	lastUpdate, err := s.currencyRepo.LastRateUpdate(ctx)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get last rate update in service: %w", err)
	}
	return lastUpdate, nil
}
