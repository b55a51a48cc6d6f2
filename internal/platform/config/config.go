package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	RawBaseURL   string
	IsProduction bool

	// Catalog / shop
	CatalogPath  string
	ShopWhatsapp string

	// FX pipeline
	FxAPIBaseURL   string
	FxTTL          time.Duration
	FxFetchTimeout time.Duration
	USDUYURate     decimal.Decimal

	// Payment processor
	MPAccessToken       string
	MPBaseURL           string
	MPCurrency          string
	StatementDescriptor string

	// Geo lookup
	GeoAPIURL string

	// Optional persistence
	DatabaseURL   string
	EnableDBCheck bool
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "4000")
	viper.SetDefault("BASE_URL", "")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("CATALOG_PATH", "catalog.json")
	viper.SetDefault("SHOP_WHATSAPP", "")
	viper.SetDefault("FX_API_BASE_URL", "https://open.er-api.com/v6/latest")
	viper.SetDefault("FX_TTL", "12h")
	viper.SetDefault("FX_FETCH_TIMEOUT", "8s")
	viper.SetDefault("USD_UYU_RATE", "40")
	viper.SetDefault("MP_ACCESS_TOKEN", "")
	viper.SetDefault("MP_BASE_URL", "https://api.mercadopago.com")
	viper.SetDefault("MP_CURRENCY", "UYU")
	viper.SetDefault("STATEMENT_DESCRIPTOR", "RUN&SPORT")
	viper.SetDefault("GEO_API_URL", "https://ipapi.co/json/")
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("ENABLE_DB_CHECK", false)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	cfg.RawBaseURL = viper.GetString("BASE_URL")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.CatalogPath = viper.GetString("CATALOG_PATH")
	cfg.ShopWhatsapp = viper.GetString("SHOP_WHATSAPP")
	cfg.FxAPIBaseURL = viper.GetString("FX_API_BASE_URL")
	cfg.MPAccessToken = viper.GetString("MP_ACCESS_TOKEN")
	cfg.MPBaseURL = viper.GetString("MP_BASE_URL")
	cfg.MPCurrency = strings.ToUpper(viper.GetString("MP_CURRENCY"))
	cfg.StatementDescriptor = viper.GetString("STATEMENT_DESCRIPTOR")
	cfg.GeoAPIURL = viper.GetString("GEO_API_URL")
	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	fxTTLStr := viper.GetString("FX_TTL")
	fxTTL, err := time.ParseDuration(fxTTLStr)
	if err != nil {
		fxTTL = 12 * time.Hour
		log.Printf("Warning: Invalid value for FX_TTL ('%s'). Defaulting to %s.\n", fxTTLStr, fxTTL)
	}
	cfg.FxTTL = fxTTL

	fxTimeoutStr := viper.GetString("FX_FETCH_TIMEOUT")
	fxTimeout, err := time.ParseDuration(fxTimeoutStr)
	if err != nil {
		fxTimeout = 8 * time.Second
		log.Printf("Warning: Invalid value for FX_FETCH_TIMEOUT ('%s'). Defaulting to %s.\n", fxTimeoutStr, fxTimeout)
	}
	cfg.FxFetchTimeout = fxTimeout

	rateStr := viper.GetString("USD_UYU_RATE")
	rate, err := decimal.NewFromString(rateStr)
	if err != nil || !rate.IsPositive() {
		rate = decimal.NewFromInt(40)
		log.Printf("Warning: Invalid value for USD_UYU_RATE ('%s'). Defaulting to %s.\n", rateStr, rate)
	}
	cfg.USDUYURate = rate

	if cfg.MPAccessToken == "" {
		log.Println("Warning: MP_ACCESS_TOKEN not set. Checkout preference creation will not function.")
	}
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL not set. Carts and preferences will be kept in memory only.")
	}

	return cfg, nil
}

// BaseURL returns the public base URL without a trailing slash, defaulting
// to the local listen address.
func (c *Config) BaseURL() string {
	base := strings.TrimRight(strings.TrimSpace(c.RawBaseURL), "/")
	if base != "" {
		return base
	}
	return fmt.Sprintf("http://localhost:%s", c.Port)
}
