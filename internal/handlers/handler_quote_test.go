package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/apperrors"
	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/core/domain"
	portssvc "github.com/fabiograbrielfr-cell/runandsport-pro/internal/core/ports/services"
	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/dto"
	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/handlers"
	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/platform/config"
)

// --- Mock CatalogSvcFacade ---
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) Catalog(ctx context.Context) (domain.Catalog, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Catalog), args.Error(1)
}

func (m *MockCatalogService) Shop(ctx context.Context) domain.Shop {
	args := m.Called(ctx)
	return args.Get(0).(domain.Shop)
}

func (m *MockCatalogService) Product(ctx context.Context, id string) (domain.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockCatalogService) ShippingOptions(ctx context.Context) ([]domain.ShippingOption, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShippingOption), args.Error(1)
}

func (m *MockCatalogService) ShippingOption(ctx context.Context, id string) (domain.ShippingOption, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.ShippingOption), args.Error(1)
}

// --- Mock ResolverSvcFacade ---
type MockResolverService struct {
	mock.Mock
}

func (m *MockResolverService) Resolve(pref domain.DisplayPreference, detectedCountry, shopCountry, shopCurrency string) string {
	args := m.Called(pref, detectedCountry, shopCountry, shopCurrency)
	return args.String(0)
}

func (m *MockResolverService) DisplayCurrency(ctx context.Context, pref domain.DisplayPreference) string {
	args := m.Called(ctx, pref)
	return args.String(0)
}

func (m *MockResolverService) DetectedCountry(ctx context.Context) string {
	args := m.Called(ctx)
	return args.String(0)
}

// --- Mock PricingSvcFacade ---
type MockPricingService struct {
	mock.Mock
}

func (m *MockPricingService) ComputeCartTotal(ctx context.Context, lines []domain.CartLine, shipping *domain.ShippingOption, target string) domain.Money {
	args := m.Called(ctx, lines, shipping, target)
	return args.Get(0).(domain.Money)
}

func (m *MockPricingService) FormatMoney(amount decimal.Decimal, currencyCode string) string {
	args := m.Called(amount, currencyCode)
	return args.String(0)
}

// --- Mock RateSvcFacade ---
type MockRateService struct {
	mock.Mock
}

func (m *MockRateService) GetRates(ctx context.Context, base string) domain.RateTable {
	args := m.Called(ctx, base)
	return args.Get(0).(domain.RateTable)
}

// --- Mock CheckoutSvcFacade ---
type MockCheckoutService struct {
	mock.Mock
}

func (m *MockCheckoutService) CreatePreference(ctx context.Context, req dto.CreatePreferenceRequest) (*dto.CreatePreferenceResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CreatePreferenceResponse), args.Error(1)
}

func (m *MockCheckoutService) BuildWhatsAppMessage(ctx context.Context, req dto.WhatsAppMessageRequest) (*dto.WhatsAppMessageResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.WhatsAppMessageResponse), args.Error(1)
}

// --- Mock CartSvcFacade ---
type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) GetCart(ctx context.Context, ownerID string) (domain.Cart, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(domain.Cart), args.Error(1)
}

func (m *MockCartService) ReplaceCart(ctx context.Context, ownerID string, items map[string]int64) (domain.Cart, error) {
	args := m.Called(ctx, ownerID, items)
	return args.Get(0).(domain.Cart), args.Error(1)
}

func (m *MockCartService) SetQuantity(ctx context.Context, ownerID, productID string, quantity int64) (domain.Cart, error) {
	args := m.Called(ctx, ownerID, productID, quantity)
	return args.Get(0).(domain.Cart), args.Error(1)
}

func (m *MockCartService) RemoveItem(ctx context.Context, ownerID, productID string) (domain.Cart, error) {
	args := m.Called(ctx, ownerID, productID)
	return args.Get(0).(domain.Cart), args.Error(1)
}

// --- Mock PreferenceSvcFacade ---
type MockPreferenceService struct {
	mock.Mock
}

func (m *MockPreferenceService) GetDisplayPreference(ctx context.Context, ownerID string) (domain.DisplayPreference, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(domain.DisplayPreference), args.Error(1)
}

func (m *MockPreferenceService) SaveDisplayPreference(ctx context.Context, ownerID string, raw string) (domain.DisplayPreference, error) {
	args := m.Called(ctx, ownerID, raw)
	return args.Get(0).(domain.DisplayPreference), args.Error(1)
}

// --- Test Suite ---
type HandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockCatalog     *MockCatalogService
	mockResolver    *MockResolverService
	mockPricing     *MockPricingService
	mockRates       *MockRateService
	mockCheckout    *MockCheckoutService
	mockCarts       *MockCartService
	mockPreferences *MockPreferenceService
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.mockCatalog = new(MockCatalogService)
	suite.mockResolver = new(MockResolverService)
	suite.mockPricing = new(MockPricingService)
	suite.mockRates = new(MockRateService)
	suite.mockCheckout = new(MockCheckoutService)
	suite.mockCarts = new(MockCartService)
	suite.mockPreferences = new(MockPreferenceService)

	cfg := &config.Config{Port: "4000"}
	container := &portssvc.ServiceContainer{
		Rates:      suite.mockRates,
		Resolver:   suite.mockResolver,
		Pricing:    suite.mockPricing,
		Catalog:    suite.mockCatalog,
		Cart:       suite.mockCarts,
		Preference: suite.mockPreferences,
		Checkout:   suite.mockCheckout,
	}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, container)
}

func (suite *HandlerTestSuite) performJSON(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func shoesCatalog() domain.Catalog {
	return domain.Catalog{
		Shop: domain.Shop{Name: "Run&Sport", Country: "UY", DefaultCurrency: "UYU"},
		Products: []domain.Product{
			{ID: "p1", Title: "Zapatillas", Price: domain.Money{Amount: decimal.NewFromInt(2500), Currency: "UYU"}},
		},
	}
}

// --- Test Cases ---

func (suite *HandlerTestSuite) TestQuote_Success() {
	suite.mockCatalog.On("Catalog", mock.Anything).Return(shoesCatalog(), nil).Once()
	suite.mockResolver.On("DisplayCurrency", mock.Anything, domain.DisplayAuto).Return("UYU").Once()
	suite.mockPricing.On("ComputeCartTotal", mock.Anything, mock.AnythingOfType("[]domain.CartLine"), (*domain.ShippingOption)(nil), "UYU").
		Return(domain.Money{Amount: decimal.NewFromInt(5000), Currency: "UYU"}).Once()
	suite.mockPricing.On("FormatMoney", mock.AnythingOfType("decimal.Decimal"), "UYU").Return("$U 5.000").Once()

	w := suite.performJSON(http.MethodPost, "/api/quote", dto.QuoteRequest{
		Cart: []dto.QuoteLine{{ID: "p1", Quantity: 2}},
	})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.QuoteResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("UYU", resp.Currency)
	suite.Equal("$U 5.000", resp.Formatted)
	suite.True(resp.Total.Equal(decimal.NewFromInt(5000)))
	suite.mockPricing.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestQuote_UnknownProductIs404() {
	suite.mockCatalog.On("Catalog", mock.Anything).Return(shoesCatalog(), nil).Once()

	w := suite.performJSON(http.MethodPost, "/api/quote", dto.QuoteRequest{
		Cart: []dto.QuoteLine{{ID: "nope", Quantity: 1}},
	})

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestQuote_EmptyCartIs400() {
	w := suite.performJSON(http.MethodPost, "/api/quote", map[string]any{"cart": []any{}})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockCatalog.AssertNotCalled(suite.T(), "Catalog")
}

func (suite *HandlerTestSuite) TestGetRates_DefaultsBaseToUSD() {
	suite.mockRates.On("GetRates", mock.Anything, "USD").Return(domain.RateTable{
		Base:  "USD",
		Rates: map[string]decimal.Decimal{"UYU": decimal.NewFromInt(40)},
	}).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/fx", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.FxResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("USD", resp.Base)
	suite.mockRates.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestGeo_ReturnsDetectedCountry() {
	suite.mockResolver.On("DetectedCountry", mock.Anything).Return("AR").Once()

	req := httptest.NewRequest(http.MethodGet, "/api/geo", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.GeoResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("AR", resp.CountryCode)
}

func (suite *HandlerTestSuite) TestCreatePreference_PricingErrorIs422() {
	suite.mockCheckout.On("CreatePreference", mock.Anything, mock.AnythingOfType("dto.CreatePreferenceRequest")).
		Return(nil, apperrors.ErrPricing).Once()

	w := suite.performJSON(http.MethodPost, "/api/create_preference", dto.CreatePreferenceRequest{
		Cart: []dto.QuoteLine{{ID: "p1", Quantity: 1}},
	})

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *HandlerTestSuite) TestCreatePreference_ValidationErrorIs400() {
	suite.mockCheckout.On("CreatePreference", mock.Anything, mock.AnythingOfType("dto.CreatePreferenceRequest")).
		Return(nil, apperrors.ErrValidation).Once()

	w := suite.performJSON(http.MethodPost, "/api/create_preference", dto.CreatePreferenceRequest{
		Cart: []dto.QuoteLine{{ID: "p1", Quantity: 1}},
	})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestCreatePreference_Success() {
	suite.mockCheckout.On("CreatePreference", mock.Anything, mock.AnythingOfType("dto.CreatePreferenceRequest")).
		Return(&dto.CreatePreferenceResponse{ID: "pref-123", InitPoint: "https://mp/init"}, nil).Once()

	w := suite.performJSON(http.MethodPost, "/api/create_preference", dto.CreatePreferenceRequest{
		Cart: []dto.QuoteLine{{ID: "p1", Quantity: 1}},
	})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.CreatePreferenceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("pref-123", resp.ID)
}

func (suite *HandlerTestSuite) TestPaymentWebhook_AlwaysAcks() {
	w := suite.performJSON(http.MethodPost, "/api/webhook/mercadopago", map[string]any{"type": "payment"})

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestGetCart_Success() {
	suite.mockCarts.On("GetCart", mock.Anything, "visitor-1").Return(domain.Cart{
		OwnerID: "visitor-1",
		Items:   map[string]int64{"p1": 2},
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/cart/visitor-1", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.CartResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(2), resp.Items["p1"])
	suite.Equal(int64(2), resp.Count)
}

func (suite *HandlerTestSuite) TestSavePreference_Success() {
	suite.mockPreferences.On("SaveDisplayPreference", mock.Anything, "visitor-1", "usd").
		Return(domain.DisplayPreference("USD"), nil).Once()

	w := suite.performJSON(http.MethodPut, "/api/preference/visitor-1", dto.SaveDisplayPreferenceRequest{
		Preference: "usd",
	})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.DisplayPreferenceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("USD", resp.Preference)
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
