package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atlastours/currency-service/internal/apperrors"
	"github.com/atlastours/currency-service/internal/core/domain"
	portsrepo "github.com/atlastours/currency-service/internal/core/ports/repositories"
	portssvc "github.com/atlastours/currency-service/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

type conversionService struct {
	currencyService portssvc.CurrencyReaderSvc
	commissionRepo  portsrepo.CommissionRepository
	baseCurrency    string
}

// NewConversionService creates the conversion engine. It only reads cached
// state; the refresher owns all rate writes.
func NewConversionService(currencyService portssvc.CurrencyReaderSvc, commissionRepo portsrepo.CommissionRepository, baseCurrency string) *conversionService {
	return &conversionService{
		currencyService: currencyService,
		commissionRepo:  commissionRepo,
		baseCurrency:    strings.ToUpper(baseCurrency),
	}
}

// Convert converts amount from fromCode into toCode.
//
// Rates are stored as units of a currency per one unit of the base currency,
// so the amount is first divided into the base and then multiplied out into
// the target. The commission is a flat additive surcharge in the target
// currency's units, not a percentage markup. The three monetary outputs are
// rounded independently to two decimal places, half-up.
func (s *conversionService) Convert(ctx context.Context, amount decimal.Decimal, fromCode, toCode string) (*domain.ConversionBreakdown, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	fromCode = strings.ToUpper(strings.TrimSpace(fromCode))
	if fromCode == "" {
		fromCode = s.baseCurrency
	}

	from, err := s.currencyService.GetActiveCurrency(ctx, fromCode)
	if err != nil {
		return nil, err
	}
	to, err := s.currencyService.GetActiveCurrency(ctx, toCode)
	if err != nil {
		return nil, err
	}

	baseAmount := amount
	if from.CurrencyCode != s.baseCurrency {
		baseAmount = amount.Div(from.Rate)
	}
	converted := baseAmount.Mul(to.Rate)

	commission := decimal.Zero
	comm, err := s.commissionRepo.FindCommissionByCurrency(ctx, to.CurrencyCode)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up commission for %s: %w", to.CurrencyCode, err)
	}
	if comm != nil {
		commission = comm.Amount
	}

	// decimal.Round rounds half away from zero, which for the positive
	// amounts in scope is exactly half-up.
	return &domain.ConversionBreakdown{
		OriginalAmount:   amount,
		FromCurrency:     from.CurrencyCode,
		ToCurrency:       to.CurrencyCode,
		ConvertedAmount:  converted.Round(2),
		CommissionAmount: commission.Round(2),
		FinalAmount:      converted.Add(commission).Round(2),
		ExchangeRateUsed: to.Rate,
		Timestamp:        time.Now().UTC(),
	}, nil
}
