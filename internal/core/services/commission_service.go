package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atlastours/currency-service/internal/apperrors"
	"github.com/atlastours/currency-service/internal/core/domain"
	portsrepo "github.com/atlastours/currency-service/internal/core/ports/repositories"
	portssvc "github.com/atlastours/currency-service/internal/core/ports/services"
	"github.com/atlastours/currency-service/internal/dto"
	"github.com/shopspring/decimal"
)

type commissionService struct {
	commissionRepo  portsrepo.CommissionRepository
	currencyService portssvc.CurrencyReaderSvc
}

// NewCommissionService creates the admin-facing commission service.
func NewCommissionService(commissionRepo portsrepo.CommissionRepository, currencyService portssvc.CurrencyReaderSvc) *commissionService {
	return &commissionService{
		commissionRepo:  commissionRepo,
		currencyService: currencyService,
	}
}

func (s *commissionService) ListActiveCommissions(ctx context.Context) ([]domain.CommissionInfo, error) {
	commissions, err := s.commissionRepo.ListActiveCommissions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list commissions in service: %w", err)
	}
	if commissions == nil {
		return []domain.CommissionInfo{}, nil
	}
	return commissions, nil
}

// UpsertCommission validates and persists a commission for an existing active
// currency. The amount is a flat surcharge and must not be negative.
func (s *commissionService) UpsertCommission(ctx context.Context, req dto.UpsertCommissionRequest) (*domain.Commission, error) {
	if req.Amount.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: commission amount must not be negative", apperrors.ErrValidation)
	}

	currency, err := s.currencyService.GetActiveCurrency(ctx, req.CurrencyCode)
	if err != nil {
		return nil, err
	}

	commission := domain.Commission{
		CurrencyCode: currency.CurrencyCode,
		Amount:       req.Amount,
		Active:       true,
		UpdatedAt:    time.Now().UTC(),
	}

	if err := s.commissionRepo.UpsertCommission(ctx, commission); err != nil {
		return nil, fmt.Errorf("failed to upsert commission for %s: %w", commission.CurrencyCode, err)
	}
	return &commission, nil
}

func (s *commissionService) RemoveCommission(ctx context.Context, currencyCode string) error {
	currencyCode = strings.ToUpper(strings.TrimSpace(currencyCode))
	if len(currencyCode) != 3 {
		return fmt.Errorf("%w: currency codes must be 3 letters", apperrors.ErrValidation)
	}

	if err := s.commissionRepo.DeleteCommission(ctx, currencyCode); err != nil {
		return fmt.Errorf("failed to remove commission for %s: %w", currencyCode, err)
	}
	return nil
}
