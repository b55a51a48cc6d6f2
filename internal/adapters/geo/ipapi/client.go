// Package ipapi resolves the visitor's country through the ipapi.co
// JSON endpoint.
package ipapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/apperrors"
	portsprov "github.com/fabiograbrielfr-cell/runandsport-pro/internal/core/ports/providers"
)

type Client struct {
	endpoint   string
	httpClient *http.Client
}

func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
	}
}

var _ portsprov.GeoLocator = (*Client)(nil)

type geoPayload struct {
	CountryCode string `json:"country_code"`
}

// Country returns the two-letter country code for the caller's IP. Errors
// are expected in normal operation (rate limits, offline dev) and callers
// fall back to the shop country.
func (c *Client) Country(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("%w: building geo request: %v", apperrors.ErrProvider, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: geo lookup: %v", apperrors.ErrProvider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: geo endpoint returned %d", apperrors.ErrProvider, resp.StatusCode)
	}

	var payload geoPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("%w: decoding geo payload: %v", apperrors.ErrProvider, err)
	}

	code := strings.ToUpper(strings.TrimSpace(payload.CountryCode))
	if code == "" {
		return "", fmt.Errorf("%w: geo payload missing country_code", apperrors.ErrProvider)
	}
	return code, nil
}
