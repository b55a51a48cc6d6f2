package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/core/domain"
)

func TestStockState_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		raw     string
		inStock bool
	}{
		{`"in_stock"`, true},
		{`"out_of_stock"`, false},
		{`true`, true},
		{`false`, false},
		{`3`, true},
		{`0`, false},
		{`null`, true},
		{`""`, true},
		{`"whatever"`, true},
	}

	for _, tc := range cases {
		var s domain.StockState
		require.NoError(t, json.Unmarshal([]byte(tc.raw), &s), "raw %s", tc.raw)
		assert.Equal(t, tc.inStock, s.InStock(), "raw %s", tc.raw)
	}
}

func TestShippingConfig_Option(t *testing.T) {
	cfg := domain.ShippingConfig{
		Local:         []domain.ShippingOption{{ID: "mvd", Label: "Montevideo"}},
		International: []domain.ShippingOption{{ID: "intl", Label: "Courier"}},
	}

	opt, ok := cfg.Option("intl")
	require.True(t, ok)
	assert.Equal(t, "Courier", opt.Label)

	_, ok = cfg.Option("teleport")
	assert.False(t, ok)

	assert.Len(t, cfg.Options(), 2)
}

func TestCart_SetQuantity(t *testing.T) {
	cart := domain.NewCart("visitor-1")

	cart.SetQuantity("p1", 2)
	cart.SetQuantity("p2", 1)
	assert.Equal(t, int64(3), cart.TotalQuantity())

	cart.SetQuantity("p1", 0)
	_, exists := cart.Items["p1"]
	assert.False(t, exists)
	assert.Equal(t, int64(1), cart.TotalQuantity())
}
