package dto

import (
	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FxResponse is the rate table served to the storefront frontend.
type FxResponse struct {
	Base  string                     `json:"base"`
	Rates map[string]decimal.Decimal `json:"rates"`
	Ts    int64                      `json:"ts"`
}

// ToFxResponse converts a domain.RateTable to an FxResponse DTO.
func ToFxResponse(table domain.RateTable) FxResponse {
	return FxResponse{
		Base:  table.Base,
		Rates: table.Rates,
		Ts:    table.FetchedAt.UnixMilli(),
	}
}

// GeoResponse carries the country used for AUTO currency resolution.
type GeoResponse struct {
	CountryCode string `json:"country_code"`
}
