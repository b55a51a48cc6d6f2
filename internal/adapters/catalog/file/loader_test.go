package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogfile "github.com/fabiograbrielfr-cell/runandsport-pro/internal/adapters/catalog/file"
)

const sampleCatalog = `{
  "shop": {
    "name": "Run&Sport",
    "country": "uy",
    "defaultCurrency": "uyu",
    "whatsapp": "+598 99 123 456",
    "shipping": {
      "local": [{"id": "mvd", "label": "Montevideo", "price": 150}],
      "international": [{"id": "intl", "label": "Courier", "price": 25}]
    }
  },
  "products": [
    {"id": "p1", "title": "Zapatillas", "price": 2500, "stock": "in_stock"},
    {"id": "p2", "title": "Camiseta", "price": 30, "currency": "usd", "stock": false}
  ]
}`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoader_Load_Success(t *testing.T) {
	loader := catalogfile.NewLoader(writeCatalog(t, sampleCatalog), "")

	catalog, err := loader.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Run&Sport", catalog.Shop.Name)
	assert.Equal(t, "UY", catalog.Shop.Country)
	assert.Equal(t, "UYU", catalog.Shop.DefaultCurrency)

	p1, ok := catalog.Product("p1")
	require.True(t, ok)
	assert.Equal(t, "UYU", p1.Price.Currency)
	assert.Equal(t, "2500", p1.Price.Amount.String())
	assert.True(t, p1.Stock.InStock())

	p2, ok := catalog.Product("p2")
	require.True(t, ok)
	assert.Equal(t, "USD", p2.Price.Currency)
	assert.False(t, p2.Stock.InStock())
}

func TestLoader_Load_ShippingCurrencies(t *testing.T) {
	loader := catalogfile.NewLoader(writeCatalog(t, sampleCatalog), "")

	catalog, err := loader.Load(context.Background())
	require.NoError(t, err)

	local, ok := catalog.Shop.Shipping.Option("mvd")
	require.True(t, ok)
	assert.Equal(t, "UYU", local.Price.Currency)

	intl, ok := catalog.Shop.Shipping.Option("intl")
	require.True(t, ok)
	assert.Equal(t, "USD", intl.Price.Currency)
}

func TestLoader_Load_WhatsappOverride(t *testing.T) {
	loader := catalogfile.NewLoader(writeCatalog(t, sampleCatalog), "+598 91 000 000")

	catalog, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "+598 91 000 000", catalog.Shop.Whatsapp)
}

func TestLoader_Load_MissingFile(t *testing.T) {
	loader := catalogfile.NewLoader(filepath.Join(t.TempDir(), "nope.json"), "")

	_, err := loader.Load(context.Background())
	require.Error(t, err)
}

func TestLoader_Load_MissingShopBlock(t *testing.T) {
	loader := catalogfile.NewLoader(writeCatalog(t, `{"products": []}`), "")

	_, err := loader.Load(context.Background())
	require.Error(t, err)
}

func TestLoader_Load_RejectsNegativePrice(t *testing.T) {
	loader := catalogfile.NewLoader(writeCatalog(t, `{
      "shop": {"name": "Run&Sport"},
      "products": [{"id": "p1", "title": "Rota", "price": -5}]
    }`), "")

	_, err := loader.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "p1")
}
