package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/apperrors"
	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/core/domain"
	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/core/ports/providers"
	portssvc "github.com/fabiograbrielfr-cell/runandsport-pro/internal/core/ports/services"
	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/dto"
)

var nonDigits = regexp.MustCompile(`\D`)

// CheckoutConfig carries the checkout-relevant slice of the app config.
type CheckoutConfig struct {
	// SettlementCurrency is the fixed currency the processor is charged
	// in, independent of the visitor's display currency.
	SettlementCurrency string

	// BaseURL is the public base URL of the shop. Back URLs and
	// auto-return are only attached when it is public https; the hosted
	// checkout rejects localhost redirect targets.
	BaseURL string

	// StatementDescriptor appears on the buyer's card statement.
	StatementDescriptor string

	// WhatsappOverride, when set, replaces the catalog's WhatsApp number.
	WhatsappOverride string
}

// CheckoutService prices carts for settlement and hands them off to the
// payment processor or to WhatsApp. Unlike the display path, settlement
// conversion is strict: a line that cannot be priced aborts preference
// creation with an explicit pricing error.
type CheckoutService struct {
	BaseService

	catalog   portssvc.CatalogSvcFacade
	converter *ConverterService
	pricing   portssvc.PricingSvcFacade
	resolver  portssvc.ResolverSvcFacade
	gateway   providers.PaymentGateway
	cfg       CheckoutConfig
	now       func() time.Time
}

// CheckoutOption configures a CheckoutService.
type CheckoutOption func(*CheckoutService)

// WithCheckoutClock substitutes the wall clock, for deterministic tests.
func WithCheckoutClock(now func() time.Time) CheckoutOption {
	return func(s *CheckoutService) {
		s.now = now
	}
}

// NewCheckoutService creates a CheckoutService. gateway may be nil when the
// processor token is not configured; CreatePreference then fails fast.
func NewCheckoutService(
	catalog portssvc.CatalogSvcFacade,
	converter *ConverterService,
	pricing portssvc.PricingSvcFacade,
	resolver portssvc.ResolverSvcFacade,
	gateway providers.PaymentGateway,
	cfg CheckoutConfig,
	opts ...CheckoutOption,
) *CheckoutService {
	cfg.SettlementCurrency = domain.NormalizeCurrency(cfg.SettlementCurrency)
	s := &CheckoutService{
		catalog:   catalog,
		converter: converter,
		pricing:   pricing,
		resolver:  resolver,
		gateway:   gateway,
		cfg:       cfg,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreatePreference converts every cart line into the settlement currency,
// rounds to the processor's precision and creates the hosted checkout
// preference. Every conversion uses one rate snapshot captured up front.
func (s *CheckoutService) CreatePreference(ctx context.Context, req dto.CreatePreferenceRequest) (*dto.CreatePreferenceResponse, error) {
	if s.gateway == nil {
		return nil, fmt.Errorf("payment processor is not configured")
	}
	if len(req.Cart) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", apperrors.ErrValidation)
	}

	catalog, err := s.catalog.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	settlement := s.cfg.SettlementCurrency
	sources := make([]string, 0, len(req.Cart))
	lineProducts := make([]domain.Product, 0, len(req.Cart))
	for _, line := range req.Cart {
		product, found := catalog.Product(strings.TrimSpace(line.ID))
		if !found {
			return nil, fmt.Errorf("%w: product %q not found", apperrors.ErrValidation, line.ID)
		}
		if !product.Price.Amount.IsPositive() {
			return nil, fmt.Errorf("%w: invalid price for %q", apperrors.ErrValidation, product.Title)
		}
		lineProducts = append(lineProducts, product)
		sources = append(sources, product.Price.Currency)
	}
	snap := s.converter.SnapshotFor(ctx, settlement, sources...)

	items := make([]domain.PreferenceItem, 0, len(req.Cart))
	for i, line := range req.Cart {
		product := lineProducts[i]
		quantity := line.Quantity
		if quantity < 1 {
			quantity = 1
		}

		unit, err := snap.ConvertStrict(product.Price.Amount, product.Price.Currency, settlement)
		if err != nil {
			s.LogError(ctx, err, "Settlement conversion failed for cart line",
				slog.String("product_id", product.ID),
				slog.String("currency", product.Price.Currency),
			)
			return nil, fmt.Errorf("%w: product %q (%s): %w", apperrors.ErrPricing, product.Title, product.ID, err)
		}

		items = append(items, domain.PreferenceItem{
			Title:      product.Title,
			Quantity:   quantity,
			CurrencyID: settlement,
			// Integer units: the settlement currency is zero-decimal at
			// the processor.
			UnitPrice: unit.Round(0),
		})
	}

	prefReq := domain.PreferenceRequest{
		Items:               items,
		StatementDescriptor: s.cfg.StatementDescriptor,
		ExternalReference:   fmt.Sprintf("RUNSPORT-%d", s.now().UnixMilli()),
	}
	if base, public := publicHTTPSBase(s.cfg.BaseURL); public {
		prefReq.BackURLs = &domain.BackURLs{
			Success: base + "/?pago=success",
			Pending: base + "/?pago=pending",
			Failure: base + "/?pago=failure",
		}
		prefReq.AutoReturn = "approved"
		prefReq.NotificationURL = base + "/api/webhook/mercadopago"
	}

	result, err := s.gateway.CreatePreference(ctx, prefReq)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout preference: %w", err)
	}

	s.LogInfo(ctx, "Checkout preference created",
		slog.String("preference_id", result.ID),
		slog.String("external_reference", prefReq.ExternalReference),
		slog.Int("items", len(items)),
	)
	return &dto.CreatePreferenceResponse{
		ID:               result.ID,
		InitPoint:        result.InitPoint,
		SandboxInitPoint: result.SandboxInitPoint,
	}, nil
}

// BuildWhatsAppMessage renders the order summary in the visitor's display
// currency, as handed off to WhatsApp. Display-path conversion applies:
// a missing rate degrades to the unconverted price instead of failing.
func (s *CheckoutService) BuildWhatsAppMessage(ctx context.Context, req dto.WhatsAppMessageRequest) (*dto.WhatsAppMessageResponse, error) {
	if len(req.Cart) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", apperrors.ErrValidation)
	}

	catalog, err := s.catalog.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	shop := catalog.Shop
	display := s.resolver.DisplayCurrency(ctx, domain.ParseDisplayPreference(req.Currency))

	lines := make([]domain.CartLine, 0, len(req.Cart))
	for _, item := range req.Cart {
		product, found := catalog.Product(strings.TrimSpace(item.ID))
		if !found {
			return nil, fmt.Errorf("%w: product %q not found", apperrors.ErrValidation, item.ID)
		}
		quantity := item.Quantity
		if quantity < 1 {
			quantity = 1
		}
		lines = append(lines, domain.CartLine{
			ProductID: product.ID,
			Title:     product.Title,
			UnitPrice: product.Price,
			Quantity:  quantity,
		})
	}

	var shipping *domain.ShippingOption
	if req.ShippingID != "" {
		option, err := s.catalog.ShippingOption(ctx, req.ShippingID)
		if err != nil {
			return nil, err
		}
		shipping = &option
	}

	sources := make([]string, 0, len(lines))
	for _, line := range lines {
		sources = append(sources, line.UnitPrice.Currency)
	}
	snap := s.converter.SnapshotFor(ctx, display, sources...)

	shopName := shop.Name
	if shopName == "" {
		shopName = "Run&Sport"
	}
	text := []string{fmt.Sprintf("Hola %s! Quiero comprar:", shopName)}
	for _, line := range lines {
		unit := snap.Convert(line.UnitPrice.Amount, line.UnitPrice.Currency, display)
		text = append(text, fmt.Sprintf("- %s x%d (%s c/u)", line.Title, line.Quantity, s.pricing.FormatMoney(unit, display)))
	}
	text = append(text, "—")
	if shipping != nil {
		value := s.converter.Convert(ctx, shipping.Price.Amount, shipping.Price.Currency, display)
		text = append(text, fmt.Sprintf("Envío: %s (%s)", shipping.Label, s.pricing.FormatMoney(value, display)))
	}
	total := s.pricing.ComputeCartTotal(ctx, lines, shipping, display)
	text = append(text,
		fmt.Sprintf("Total aprox.: %s", s.pricing.FormatMoney(total.Amount, total.Currency)),
		"—",
		"Nombre:",
		"Ciudad / Dirección:",
		"Consulta/Nota:",
	)

	message := strings.Join(text, "\n")
	return &dto.WhatsAppMessageResponse{
		Message: message,
		URL:     fmt.Sprintf("https://wa.me/%s?text=%s", s.whatsappNumber(shop), url.QueryEscape(message)),
	}, nil
}

// whatsappNumber strips the configured number down to digits.
func (s *CheckoutService) whatsappNumber(shop domain.Shop) string {
	raw := s.cfg.WhatsappOverride
	if raw == "" {
		raw = shop.Whatsapp
	}
	return nonDigits.ReplaceAllString(raw, "")
}

// publicHTTPSBase normalizes the base URL and reports whether it is a
// public https target the processor will accept for redirects.
func publicHTTPSBase(baseURL string) (string, bool) {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	return base, strings.HasPrefix(strings.ToLower(base), "https://")
}
