// Package erapi fetches exchange-rate tables from the open.er-api.com
// public endpoint.
package erapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/apperrors"
	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/core/domain"
	portsprov "github.com/fabiograbrielfr-cell/runandsport-pro/internal/core/ports/providers"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a rate source against the given endpoint base,
// e.g. "https://open.er-api.com/v6/latest". The timeout bounds each fetch.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

var _ portsprov.RateSource = (*Client)(nil)

type ratesPayload struct {
	Result   string             `json:"result"`
	BaseCode string             `json:"base_code"`
	Rates    map[string]float64 `json:"rates"`
}

func (c *Client) FetchRates(ctx context.Context, base string) (domain.RateTable, error) {
	base = domain.NormalizeCurrency(base)
	if base == "" {
		base = "USD"
	}

	url := fmt.Sprintf("%s/%s", c.baseURL, base)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.RateTable{}, fmt.Errorf("%w: building rates request: %v", apperrors.ErrProvider, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.RateTable{}, fmt.Errorf("%w: fetching rates for %s: %v", apperrors.ErrProvider, base, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.RateTable{}, fmt.Errorf("%w: rates endpoint returned %d for %s", apperrors.ErrProvider, resp.StatusCode, base)
	}

	var payload ratesPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain.RateTable{}, fmt.Errorf("%w: decoding rates payload: %v", apperrors.ErrProvider, err)
	}
	if payload.Result != "" && payload.Result != "success" {
		return domain.RateTable{}, fmt.Errorf("%w: rates endpoint reported %q for %s", apperrors.ErrProvider, payload.Result, base)
	}

	rates := make(map[string]decimal.Decimal, len(payload.Rates))
	for code, value := range payload.Rates {
		if value <= 0 {
			continue
		}
		rates[domain.NormalizeCurrency(code)] = decimal.NewFromFloat(value)
	}
	if len(rates) == 0 {
		return domain.RateTable{}, fmt.Errorf("%w: empty rates payload for %s", apperrors.ErrProvider, base)
	}

	return domain.RateTable{
		Base:      base,
		Rates:     rates,
		FetchedAt: time.Now(),
	}, nil
}
