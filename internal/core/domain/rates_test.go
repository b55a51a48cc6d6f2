package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/core/domain"
)

func TestRateTable_Rate(t *testing.T) {
	table := domain.RateTable{
		Base: "USD",
		Rates: map[string]decimal.Decimal{
			"UYU": decimal.NewFromInt(40),
			"BAD": decimal.Zero,
		},
	}

	rate, ok := table.Rate("uyu")
	require.True(t, ok)
	assert.True(t, rate.Equal(decimal.NewFromInt(40)))

	// The base maps to itself even when the payload omits it.
	rate, ok = table.Rate("USD")
	require.True(t, ok)
	assert.True(t, rate.Equal(decimal.NewFromInt(1)))

	_, ok = table.Rate("BAD")
	assert.False(t, ok, "non-positive rates are unusable")

	_, ok = table.Rate("JPY")
	assert.False(t, ok)
}

func TestRateTable_Expired(t *testing.T) {
	fetched := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	table := domain.RateTable{Base: "USD", FetchedAt: fetched}
	ttl := 12 * time.Hour

	assert.False(t, table.Expired(fetched.Add(11*time.Hour), ttl))
	assert.True(t, table.Expired(fetched.Add(12*time.Hour), ttl))
	assert.True(t, table.Expired(fetched.Add(24*time.Hour), ttl))
}

func TestNewMoney(t *testing.T) {
	m, err := domain.NewMoney(decimal.NewFromInt(100), " uyu ")
	require.NoError(t, err)
	assert.Equal(t, "UYU", m.Currency)

	_, err = domain.NewMoney(decimal.NewFromInt(-1), "UYU")
	assert.Error(t, err)

	_, err = domain.NewMoney(decimal.NewFromInt(1), "PESOS")
	assert.Error(t, err)
}

func TestParseDisplayPreference(t *testing.T) {
	assert.Equal(t, domain.DisplayAuto, domain.ParseDisplayPreference(""))
	assert.Equal(t, domain.DisplayAuto, domain.ParseDisplayPreference("auto"))
	assert.Equal(t, domain.DisplayPreference("USD"), domain.ParseDisplayPreference(" usd "))

	code, explicit := domain.DisplayPreference("EUR").Explicit()
	require.True(t, explicit)
	assert.Equal(t, "EUR", code)

	_, explicit = domain.DisplayAuto.Explicit()
	assert.False(t, explicit)
}
