package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/apperrors"
	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/core/domain"
	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/core/services"
)

// --- Mock RateSource ---
type MockRateSource struct {
	mock.Mock
}

func (m *MockRateSource) FetchRates(ctx context.Context, base string) (domain.RateTable, error) {
	args := m.Called(ctx, base)
	return args.Get(0).(domain.RateTable), args.Error(1)
}

// --- Test Suite ---
type RateCacheServiceTestSuite struct {
	suite.Suite
	mockSource *MockRateSource
	now        time.Time
	service    *services.RateCacheService
}

func (suite *RateCacheServiceTestSuite) SetupTest() {
	suite.mockSource = new(MockRateSource)
	suite.now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	suite.service = services.NewRateCacheService(
		suite.mockSource,
		12*time.Hour,
		decimal.NewFromInt(40),
		services.WithClock(func() time.Time { return suite.now }),
	)
}

func (suite *RateCacheServiceTestSuite) usdTable() domain.RateTable {
	return domain.RateTable{
		Base: "USD",
		Rates: map[string]decimal.Decimal{
			"UYU": decimal.RequireFromString("40.5"),
			"ARS": decimal.NewFromInt(950),
		},
	}
}

// --- Test Cases ---

func (suite *RateCacheServiceTestSuite) TestGetRates_FetchesOnceWithinTTL() {
	ctx := context.Background()
	suite.mockSource.On("FetchRates", ctx, "USD").Return(suite.usdTable(), nil).Once()

	first := suite.service.GetRates(ctx, "USD")
	second := suite.service.GetRates(ctx, "usd")

	suite.Equal("USD", first.Base)
	suite.Equal(first.Rates, second.Rates)
	suite.Equal(suite.now, first.FetchedAt)
	suite.mockSource.AssertExpectations(suite.T())
	suite.mockSource.AssertNumberOfCalls(suite.T(), "FetchRates", 1)
}

func (suite *RateCacheServiceTestSuite) TestGetRates_RefetchesAfterTTL() {
	ctx := context.Background()
	suite.mockSource.On("FetchRates", ctx, "USD").Return(suite.usdTable(), nil).Twice()

	suite.service.GetRates(ctx, "USD")
	suite.now = suite.now.Add(12*time.Hour + time.Minute)
	refreshed := suite.service.GetRates(ctx, "USD")

	suite.Equal(suite.now, refreshed.FetchedAt)
	suite.mockSource.AssertNumberOfCalls(suite.T(), "FetchRates", 2)
}

func (suite *RateCacheServiceTestSuite) TestGetRates_ProviderFailureUsesStaticFallback() {
	ctx := context.Background()
	suite.mockSource.On("FetchRates", ctx, "USD").Return(domain.RateTable{}, apperrors.ErrProvider).Once()

	table := suite.service.GetRates(ctx, "USD")

	rate, ok := table.Rate("UYU")
	suite.Require().True(ok)
	suite.True(rate.Equal(decimal.NewFromInt(40)))
	suite.Equal(suite.now, table.FetchedAt)
	suite.mockSource.AssertExpectations(suite.T())
}

func (suite *RateCacheServiceTestSuite) TestGetRates_FallbackIsCachedWithinTTL() {
	ctx := context.Background()
	suite.mockSource.On("FetchRates", ctx, "USD").Return(domain.RateTable{}, apperrors.ErrProvider).Once()

	suite.service.GetRates(ctx, "USD")
	suite.service.GetRates(ctx, "USD")

	suite.mockSource.AssertNumberOfCalls(suite.T(), "FetchRates", 1)
}

func (suite *RateCacheServiceTestSuite) TestGetRates_FallbackReciprocalForUYU() {
	ctx := context.Background()
	suite.mockSource.On("FetchRates", ctx, "UYU").Return(domain.RateTable{}, apperrors.ErrProvider).Once()

	table := suite.service.GetRates(ctx, "UYU")

	rate, ok := table.Rate("USD")
	suite.Require().True(ok)
	suite.True(rate.Equal(decimal.NewFromInt(1).Div(decimal.NewFromInt(40))))
}

func (suite *RateCacheServiceTestSuite) TestGetRates_FallbackIdentityForOtherBases() {
	ctx := context.Background()
	suite.mockSource.On("FetchRates", ctx, "ARS").Return(domain.RateTable{}, apperrors.ErrProvider).Once()

	table := suite.service.GetRates(ctx, "ARS")

	rate, ok := table.Rate("ARS")
	suite.Require().True(ok)
	suite.True(rate.Equal(decimal.NewFromInt(1)))
	_, ok = table.Rate("USD")
	suite.False(ok)
}

func (suite *RateCacheServiceTestSuite) TestGetRates_EmptyBaseDefaultsToUSD() {
	ctx := context.Background()
	suite.mockSource.On("FetchRates", ctx, "USD").Return(suite.usdTable(), nil).Once()

	table := suite.service.GetRates(ctx, "")

	suite.Equal("USD", table.Base)
	suite.mockSource.AssertExpectations(suite.T())
}

func (suite *RateCacheServiceTestSuite) TestReset_DropsCachedEntries() {
	ctx := context.Background()
	suite.mockSource.On("FetchRates", ctx, "USD").Return(suite.usdTable(), nil).Twice()

	suite.service.GetRates(ctx, "USD")
	suite.service.Reset()
	suite.service.GetRates(ctx, "USD")

	suite.mockSource.AssertNumberOfCalls(suite.T(), "FetchRates", 2)
}

func TestRateCacheServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RateCacheServiceTestSuite))
}
