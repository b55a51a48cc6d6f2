// Package file loads the shop catalog from a JSON file on disk. The file is
// re-read on every Load so catalog edits show up without a restart.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/core/domain"
	portsprov "github.com/fabiograbrielfr-cell/runandsport-pro/internal/core/ports/providers"
)

type Loader struct {
	path           string
	whatsappEnvVal string
	validate       *validator.Validate
}

// NewLoader creates a catalog source for the given path. whatsappOverride,
// when set, replaces the catalog's WhatsApp number.
func NewLoader(path, whatsappOverride string) *Loader {
	return &Loader{
		path:           path,
		whatsappEnvVal: whatsappOverride,
		validate:       validator.New(),
	}
}

var _ portsprov.CatalogSource = (*Loader)(nil)

// catalogFile mirrors the on-disk shape: prices are bare numbers with a
// sibling currency code that defaults to the shop currency.
type catalogFile struct {
	Shop     shopFile      `json:"shop" validate:"required"`
	Products []productFile `json:"products" validate:"required,dive"`
}

type shopFile struct {
	Name            string            `json:"name" validate:"required"`
	Country         string            `json:"country"`
	DefaultCurrency string            `json:"defaultCurrency"`
	Whatsapp        string            `json:"whatsapp"`
	Social          map[string]string `json:"social"`
	Shipping        shippingFile      `json:"shipping"`
}

type shippingFile struct {
	Local         []shippingOptionFile `json:"local" validate:"omitempty,dive"`
	International []shippingOptionFile `json:"international" validate:"omitempty,dive"`
}

type shippingOptionFile struct {
	ID       string          `json:"id" validate:"required"`
	Label    string          `json:"label" validate:"required"`
	Price    decimal.Decimal `json:"price"`
	Currency string          `json:"currency"`
}

type productFile struct {
	ID       string            `json:"id" validate:"required"`
	Title    string            `json:"title" validate:"required"`
	Desc     string            `json:"desc"`
	Category string            `json:"category"`
	Tag      string            `json:"tag"`
	Price    decimal.Decimal   `json:"price"`
	Currency string            `json:"currency"`
	Stock    domain.StockState `json:"stock"`
	Featured bool              `json:"featured"`
	Images   []string          `json:"images"`
	Specs    []string          `json:"specs"`
}

func (l *Loader) Load(_ context.Context) (domain.Catalog, error) {
	raw, err := os.ReadFile(l.path)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("failed to read catalog file %s: %w", l.path, err)
	}

	var parsed catalogFile
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return domain.Catalog{}, fmt.Errorf("failed to parse catalog file %s: %w", l.path, err)
	}
	if err := l.validate.Struct(parsed); err != nil {
		return domain.Catalog{}, fmt.Errorf("invalid catalog file %s: %w", l.path, err)
	}

	shopCurrency := domain.NormalizeCurrency(parsed.Shop.DefaultCurrency)
	if shopCurrency == "" {
		shopCurrency = "UYU"
	}
	shopCountry := strings.ToUpper(strings.TrimSpace(parsed.Shop.Country))
	if shopCountry == "" {
		shopCountry = "UY"
	}
	whatsapp := parsed.Shop.Whatsapp
	if l.whatsappEnvVal != "" {
		whatsapp = l.whatsappEnvVal
	}

	catalog := domain.Catalog{
		Shop: domain.Shop{
			Name:            parsed.Shop.Name,
			Country:         shopCountry,
			DefaultCurrency: shopCurrency,
			Whatsapp:        whatsapp,
			Social:          parsed.Shop.Social,
			// International shipping is quoted in USD unless the entry says otherwise.
			Shipping: domain.ShippingConfig{
				Local:         toShippingOptions(parsed.Shop.Shipping.Local, shopCurrency),
				International: toShippingOptions(parsed.Shop.Shipping.International, "USD"),
			},
		},
		Products: make([]domain.Product, 0, len(parsed.Products)),
	}

	for _, p := range parsed.Products {
		price, err := domain.NewMoney(p.Price, fallbackCurrency(p.Currency, shopCurrency))
		if err != nil {
			return domain.Catalog{}, fmt.Errorf("invalid price for product %q in %s: %w", p.ID, l.path, err)
		}
		catalog.Products = append(catalog.Products, domain.Product{
			ID:       p.ID,
			Title:    p.Title,
			Desc:     p.Desc,
			Category: p.Category,
			Tag:      p.Tag,
			Price:    price,
			Stock:    p.Stock,
			Featured: p.Featured,
			Images:   p.Images,
			Specs:    p.Specs,
		})
	}

	return catalog, nil
}

func toShippingOptions(in []shippingOptionFile, defaultCurrency string) []domain.ShippingOption {
	if len(in) == 0 {
		return nil
	}
	out := make([]domain.ShippingOption, 0, len(in))
	for _, o := range in {
		out = append(out, domain.ShippingOption{
			ID:    o.ID,
			Label: o.Label,
			Price: domain.Money{Amount: o.Price, Currency: fallbackCurrency(o.Currency, defaultCurrency)},
		})
	}
	return out
}

func fallbackCurrency(code, fallback string) string {
	if c := domain.NormalizeCurrency(code); c != "" {
		return c
	}
	return fallback
}
