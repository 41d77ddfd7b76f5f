package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/atlastours/currency-service/internal/apperrors"
	portsprov "github.com/atlastours/currency-service/internal/core/ports/providers"
	portsrepo "github.com/atlastours/currency-service/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// rateRefreshService keeps the cached exchange rates reasonably fresh
// without ever leaving the store in a worse state than before a run. It is
// the sole writer of currency rates.
//
// A single atomic busy flag makes runs non-reentrant: a trigger arriving
// while a run is in flight is dropped (scheduled path) or rejected with
// ErrRefreshInProgress (manual path), never queued.
type rateRefreshService struct {
	currencyRepo portsrepo.CurrencyRepository
	provider     portsprov.RateProvider
	baseCurrency string
	interval     time.Duration
	logger       *slog.Logger

	busy atomic.Bool

	mu            sync.Mutex
	lastCompleted time.Time
}

// NewRateRefreshService creates the background rate refresher.
func NewRateRefreshService(
	currencyRepo portsrepo.CurrencyRepository,
	provider portsprov.RateProvider,
	baseCurrency string,
	interval time.Duration,
	logger *slog.Logger,
) *rateRefreshService {
	return &rateRefreshService{
		currencyRepo: currencyRepo,
		provider:     provider,
		baseCurrency: baseCurrency,
		interval:     interval,
		logger:       logger.With(slog.String("component", "rate_refresh")),
	}
}

// Start runs one refresh immediately and then one per interval until ctx is
// cancelled. Scheduled-path failures are absorbed: they are logged and the
// previous rates keep serving every reader unchanged.
func (s *rateRefreshService) Start(ctx context.Context) {
	go func() {
		s.refreshAbsorbed(ctx)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				s.logger.Info("Rate refresh loop stopped")
				return
			case <-ticker.C:
				s.refreshAbsorbed(ctx)
			}
		}
	}()
}

func (s *rateRefreshService) refreshAbsorbed(ctx context.Context) {
	err := s.Refresh(ctx)
	switch {
	case err == nil:
	case errors.Is(err, apperrors.ErrRefreshInProgress):
		s.logger.Info("Scheduled rate refresh dropped, previous run still in progress")
	default:
		s.logger.Error("Scheduled rate refresh failed, previous rates keep serving",
			slog.String("error", err.Error()))
	}
}

// Refresh runs one fetch/apply cycle synchronously. It returns
// ErrRefreshInProgress without doing any work when another run holds the
// guard, and ErrUpstreamUnavailable when the provider call fails, in which
// case no stored rate has been touched.
func (s *rateRefreshService) Refresh(ctx context.Context) error {
	if !s.busy.CompareAndSwap(false, true) {
		return apperrors.ErrRefreshInProgress
	}
	defer s.busy.Store(false)

	return s.run(ctx)
}

func (s *rateRefreshService) run(ctx context.Context) error {
	snapshot, err := s.provider.FetchRates(ctx, s.baseCurrency)
	if err != nil {
		return fmt.Errorf("fetching rates from provider: %w", err)
	}
	if snapshot.Empty() {
		s.logger.Warn("Upstream payload contained no usable rates, nothing to apply")
	}

	currencies, err := s.currencyRepo.ListActiveCurrencies(ctx)
	if err != nil {
		return fmt.Errorf("listing active currencies: %w", err)
	}

	applied := 0
	for _, currency := range currencies {
		code := currency.CurrencyCode

		// The base currency is pinned to 1 no matter what the payload says.
		rate := decimal.NewFromInt(1)
		if code != s.baseCurrency {
			fetched, ok := snapshot.Rate(code)
			if !ok {
				// Missing a single currency is not an error for the run.
				s.logger.Warn("Upstream payload missing currency, keeping previous rate",
					slog.String("currency_code", code))
				continue
			}
			rate = fetched
		}

		if err := s.currencyRepo.UpdateRate(ctx, code, rate); err != nil {
			s.logger.Error("Failed to store refreshed rate",
				slog.String("currency_code", code),
				slog.String("error", err.Error()))
			continue
		}
		applied++
	}

	completedAt := time.Now().UTC()
	s.mu.Lock()
	s.lastCompleted = completedAt
	s.mu.Unlock()

	s.logger.Info("Rate refresh completed",
		slog.Int("applied", applied),
		slog.Int("active_currencies", len(currencies)),
		slog.Time("fetched_at", snapshot.FetchedAt))
	return nil
}

// LastCompleted returns when the most recent run finished, zero if none has.
func (s *rateRefreshService) LastCompleted() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastCompleted
}
