package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/atlastours/currency-service/internal/apperrors"
	"github.com/atlastours/currency-service/internal/core/domain"
	portssvc "github.com/atlastours/currency-service/internal/core/ports/services"
	"github.com/atlastours/currency-service/internal/dto"
	"github.com/atlastours/currency-service/internal/handlers"
	"github.com/atlastours/currency-service/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// --- Mock ConversionService ---
type MockConversionService struct {
	mock.Mock
}

func (m *MockConversionService) Convert(ctx context.Context, amount decimal.Decimal, fromCode, toCode string) (*domain.ConversionBreakdown, error) {
	args := m.Called(ctx, amount, fromCode, toCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConversionBreakdown), args.Error(1)
}

var _ portssvc.ConversionSvcFacade = (*MockConversionService)(nil)

// --- Mock CurrencyService ---
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) GetActiveCurrency(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) ListActiveCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) LastRateUpdate(ctx context.Context) (time.Time, error) {
	args := m.Called(ctx)
	return args.Get(0).(time.Time), args.Error(1)
}

var _ portssvc.CurrencySvcFacade = (*MockCurrencyService)(nil)

// --- Mock CommissionService ---
type MockCommissionService struct {
	mock.Mock
}

func (m *MockCommissionService) ListActiveCommissions(ctx context.Context) ([]domain.CommissionInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CommissionInfo), args.Error(1)
}

func (m *MockCommissionService) UpsertCommission(ctx context.Context, req dto.UpsertCommissionRequest) (*domain.Commission, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Commission), args.Error(1)
}

func (m *MockCommissionService) RemoveCommission(ctx context.Context, currencyCode string) error {
	args := m.Called(ctx, currencyCode)
	return args.Error(0)
}

var _ portssvc.CommissionSvcFacade = (*MockCommissionService)(nil)

// --- Mock RateRefreshService ---
type MockRateRefreshService struct {
	mock.Mock
}

func (m *MockRateRefreshService) Start(ctx context.Context) {
	m.Called(ctx)
}

func (m *MockRateRefreshService) Refresh(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRateRefreshService) LastCompleted() time.Time {
	args := m.Called()
	return args.Get(0).(time.Time)
}

var _ portssvc.RateRefreshSvc = (*MockRateRefreshService)(nil)

// --- Test Suite ---
type HandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockConversion  *MockConversionService
	mockCurrency    *MockCurrencyService
	mockCommission  *MockCommissionService
	mockRateRefresh *MockRateRefreshService
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.mockConversion = new(MockConversionService)
	suite.mockCurrency = new(MockCurrencyService)
	suite.mockCommission = new(MockCommissionService)
	suite.mockRateRefresh = new(MockRateRefreshService)

	container := &portssvc.ServiceContainer{
		Currency:    suite.mockCurrency,
		Conversion:  suite.mockConversion,
		Commission:  suite.mockCommission,
		RateRefresh: suite.mockRateRefresh,
	}

	rate, err := limiter.NewRateFromFormatted("1000-S")
	suite.Require().NoError(err)
	limiterInstance := limiter.New(memory.NewStore(), rate)

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, &config.Config{BaseCurrency: "USD"}, container, limiterInstance)
}

func (suite *HandlerTestSuite) serve(method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) TestConvert_Success() {
	breakdown := &domain.ConversionBreakdown{
		OriginalAmount:   decimal.NewFromInt(100),
		FromCurrency:     "USD",
		ToCurrency:       "RUB",
		ConvertedAmount:  decimal.NewFromInt(9000),
		CommissionAmount: decimal.NewFromInt(7),
		FinalAmount:      decimal.NewFromInt(9007),
		ExchangeRateUsed: decimal.NewFromInt(90),
		Timestamp:        time.Now().UTC(),
	}
	suite.mockConversion.On("Convert", mock.Anything, mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.NewFromInt(100))
	}), "", "RUB").Return(breakdown, nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/convert?amount=100&to=RUB")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ConversionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.FinalAmount.Equal(decimal.NewFromInt(9007)))
	suite.Equal("RUB", resp.ToCurrency)
	suite.mockConversion.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestConvert_MissingAmount() {
	w := suite.serve(http.MethodGet, "/api/v1/convert?to=RUB")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockConversion.AssertNotCalled(suite.T(), "Convert")
}

func (suite *HandlerTestSuite) TestConvert_MalformedAmount() {
	w := suite.serve(http.MethodGet, "/api/v1/convert?amount=abc&to=RUB")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockConversion.AssertNotCalled(suite.T(), "Convert")
}

func (suite *HandlerTestSuite) TestConvert_InvalidCurrencyCodeFormat() {
	w := suite.serve(http.MethodGet, "/api/v1/convert?amount=100&to=RUBLES")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockConversion.AssertNotCalled(suite.T(), "Convert")
}

func (suite *HandlerTestSuite) TestConvert_UnknownCurrency() {
	suite.mockConversion.On("Convert", mock.Anything, mock.Anything, "", "XXX").
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.serve(http.MethodGet, "/api/v1/convert?amount=100&to=XXX")

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestConvert_InactiveCurrency() {
	suite.mockConversion.On("Convert", mock.Anything, mock.Anything, "", "RUB").
		Return(nil, apperrors.ErrCurrencyInactive).Once()

	w := suite.serve(http.MethodGet, "/api/v1/convert?amount=100&to=RUB")

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestListRates_Success() {
	lastUpdate := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	currencies := []domain.Currency{
		{CurrencyCode: "EUR", Name: "Euro", Symbol: "€", Rate: decimal.RequireFromString("0.92"), Active: true, UpdatedAt: lastUpdate},
		{CurrencyCode: "USD", Name: "US Dollar", Symbol: "$", Rate: decimal.NewFromInt(1), Active: true, UpdatedAt: lastUpdate},
	}
	suite.mockCurrency.On("ListActiveCurrencies", mock.Anything).Return(currencies, nil).Once()
	suite.mockCurrency.On("LastRateUpdate", mock.Anything).Return(lastUpdate, nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/rates")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListRatesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Rates, 2)
	suite.True(lastUpdate.Equal(resp.LastUpdate))
}

func (suite *HandlerTestSuite) TestForceRefresh_Success() {
	completed := time.Now().UTC()
	suite.mockRateRefresh.On("Refresh", mock.Anything).Return(nil).Once()
	suite.mockRateRefresh.On("LastCompleted").Return(completed).Once()

	w := suite.serve(http.MethodPost, "/api/v1/admin/rates/refresh")

	suite.Equal(http.StatusOK, w.Code)
	suite.mockRateRefresh.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestForceRefresh_Busy() {
	suite.mockRateRefresh.On("Refresh", mock.Anything).Return(apperrors.ErrRefreshInProgress).Once()

	w := suite.serve(http.MethodPost, "/api/v1/admin/rates/refresh")

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestForceRefresh_UpstreamUnavailable() {
	suite.mockRateRefresh.On("Refresh", mock.Anything).Return(apperrors.ErrUpstreamUnavailable).Once()

	w := suite.serve(http.MethodPost, "/api/v1/admin/rates/refresh")

	suite.Equal(http.StatusBadGateway, w.Code)
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
