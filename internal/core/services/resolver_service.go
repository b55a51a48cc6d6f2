package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/core/domain"
	portssvc "github.com/fabiograbrielfr-cell/runandsport-pro/internal/core/ports/services"
	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/core/ports/providers"
)

// countryCurrency maps visitor countries to their display currency for the
// AUTO preference. Countries not listed here fall through to the shop
// default currency.
var countryCurrency = map[string]string{
	"UY": "UYU",
	"AR": "ARS",
	"BR": "BRL",
	"US": "USD",
	"CL": "CLP",
	"PE": "PEN",
	"PY": "PYG",
	"BO": "BOB",
	"CO": "COP",
	"MX": "MXN",
	"ES": "EUR",
	"FR": "EUR",
	"DE": "EUR",
	"IT": "EUR",
	"PT": "EUR",
}

// ResolverService maps the visitor's stored preference and detected country
// to a display currency. An explicit preference always wins; AUTO walks the
// detected-country → shop-country → shop-default-currency chain. Resolution
// never fails.
type ResolverService struct {
	BaseService

	geo     providers.GeoLocator
	catalog portssvc.CatalogSvcFacade
}

// NewResolverService creates a ResolverService. geo may be nil, in which
// case the detected country is always absent.
func NewResolverService(geo providers.GeoLocator, catalog portssvc.CatalogSvcFacade) *ResolverService {
	return &ResolverService{geo: geo, catalog: catalog}
}

// Resolve applies the resolution chain to already-gathered inputs. An
// explicit preference is returned verbatim (uppercased), without checking
// any supported-currency list; unsupported codes simply fail to format
// later. detectedCountry may be empty when geo lookup failed.
func (s *ResolverService) Resolve(pref domain.DisplayPreference, detectedCountry, shopCountry, shopCurrency string) string {
	if code, explicit := pref.Explicit(); explicit {
		return code
	}

	country := strings.ToUpper(strings.TrimSpace(detectedCountry))
	if country == "" {
		country = strings.ToUpper(strings.TrimSpace(shopCountry))
	}
	if cur, found := countryCurrency[country]; found {
		return cur
	}
	return domain.NormalizeCurrency(shopCurrency)
}

// CurrencyForCountry looks up the static country→currency table.
func (s *ResolverService) CurrencyForCountry(countryCode string) (string, bool) {
	cur, found := countryCurrency[strings.ToUpper(strings.TrimSpace(countryCode))]
	return cur, found
}

// DetectedCountry returns the visitor country from the geo collaborator,
// falling back to the shop country when the lookup is unavailable. Never
// fails.
func (s *ResolverService) DetectedCountry(ctx context.Context) string {
	shop := s.catalog.Shop(ctx)
	if s.geo == nil {
		return strings.ToUpper(shop.Country)
	}
	country, err := s.geo.Country(ctx)
	if err != nil || strings.TrimSpace(country) == "" {
		if err != nil {
			s.LogDebug(ctx, "Geo lookup unavailable, falling back to shop country",
				slog.String("error", err.Error()),
			)
		}
		return strings.ToUpper(shop.Country)
	}
	return strings.ToUpper(strings.TrimSpace(country))
}

// DisplayCurrency resolves the display currency for the current request.
func (s *ResolverService) DisplayCurrency(ctx context.Context, pref domain.DisplayPreference) string {
	if code, explicit := pref.Explicit(); explicit {
		return code
	}
	shop := s.catalog.Shop(ctx)
	return s.Resolve(pref, s.DetectedCountry(ctx), shop.Country, shop.DefaultCurrency)
}
