package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/atlastours/currency-service/internal/apperrors"
	"github.com/atlastours/currency-service/internal/core/domain"
	portssvc "github.com/atlastours/currency-service/internal/core/ports/services"
	"github.com/atlastours/currency-service/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) ListActiveCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) UpdateRate(ctx context.Context, currencyCode string, rate decimal.Decimal) error {
	args := m.Called(ctx, currencyCode, rate)
	return args.Error(0)
}

func (m *MockCurrencyRepository) LastRateUpdate(ctx context.Context) (time.Time, error) {
	args := m.Called(ctx)
	return args.Get(0).(time.Time), args.Error(1)
}

// --- Test Suite ---
type CurrencyServiceTestSuite struct {
	suite.Suite
	mockCurrencyRepo *MockCurrencyRepository
	service          portssvc.CurrencySvcFacade
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.mockCurrencyRepo = new(MockCurrencyRepository)
	suite.service = services.NewCurrencyService(suite.mockCurrencyRepo)
}

func (suite *CurrencyServiceTestSuite) TestGetActiveCurrency_Success() {
	ctx := context.Background()
	currency := &domain.Currency{
		CurrencyCode: "EUR",
		Name:         "Euro",
		Symbol:       "€",
		Rate:         decimal.RequireFromString("0.92"),
		Active:       true,
	}
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "EUR").Return(currency, nil).Once()

	got, err := suite.service.GetActiveCurrency(ctx, "eur")

	suite.Require().NoError(err)
	suite.Equal("EUR", got.CurrencyCode)
	suite.mockCurrencyRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestGetActiveCurrency_InvalidCode() {
	ctx := context.Background()

	_, err := suite.service.GetActiveCurrency(ctx, "EURO")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockCurrencyRepo.AssertNotCalled(suite.T(), "FindCurrencyByCode")
}

func (suite *CurrencyServiceTestSuite) TestGetActiveCurrency_NotFound() {
	ctx := context.Background()
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "XXX").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetActiveCurrency(ctx, "XXX")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CurrencyServiceTestSuite) TestGetActiveCurrency_Inactive() {
	ctx := context.Background()
	currency := &domain.Currency{
		CurrencyCode: "RUB",
		Rate:         decimal.NewFromInt(90),
		Active:       false,
	}
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "RUB").Return(currency, nil).Once()

	_, err := suite.service.GetActiveCurrency(ctx, "RUB")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrCurrencyInactive)
}

func (suite *CurrencyServiceTestSuite) TestListActiveCurrencies_EmptyNotNil() {
	ctx := context.Background()
	suite.mockCurrencyRepo.On("ListActiveCurrencies", ctx).Return(nil, nil).Once()

	currencies, err := suite.service.ListActiveCurrencies(ctx)

	suite.Require().NoError(err)
	suite.NotNil(currencies)
	suite.Empty(currencies)
}

func (suite *CurrencyServiceTestSuite) TestLastRateUpdate() {
	ctx := context.Background()
	lastUpdate := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	suite.mockCurrencyRepo.On("LastRateUpdate", ctx).Return(lastUpdate, nil).Once()

	got, err := suite.service.LastRateUpdate(ctx)

	suite.Require().NoError(err)
	suite.Equal(lastUpdate, got)
}

func TestCurrencyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}
