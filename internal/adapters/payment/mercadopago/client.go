// Package mercadopago creates hosted-checkout preferences through the
// Mercado Pago REST API.
package mercadopago

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/apperrors"
	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/core/domain"
	portsprov "github.com/fabiograbrielfr-cell/runandsport-pro/internal/core/ports/providers"
)

type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

func NewClient(baseURL, accessToken string, timeout time.Duration) *Client {
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

var _ portsprov.PaymentGateway = (*Client)(nil)

type preferenceItemBody struct {
	Title      string  `json:"title"`
	Quantity   int64   `json:"quantity"`
	CurrencyID string  `json:"currency_id"`
	UnitPrice  float64 `json:"unit_price"`
}

type backURLsBody struct {
	Success string `json:"success"`
	Pending string `json:"pending"`
	Failure string `json:"failure"`
}

type preferenceBody struct {
	Items               []preferenceItemBody `json:"items"`
	StatementDescriptor string               `json:"statement_descriptor,omitempty"`
	ExternalReference   string               `json:"external_reference,omitempty"`
	BackURLs            *backURLsBody        `json:"back_urls,omitempty"`
	AutoReturn          string               `json:"auto_return,omitempty"`
	NotificationURL     string               `json:"notification_url,omitempty"`
}

type preferenceResponse struct {
	ID               string `json:"id"`
	InitPoint        string `json:"init_point"`
	SandboxInitPoint string `json:"sandbox_init_point"`
}

func (c *Client) CreatePreference(ctx context.Context, req domain.PreferenceRequest) (*domain.PreferenceResult, error) {
	body := preferenceBody{
		Items:               make([]preferenceItemBody, 0, len(req.Items)),
		StatementDescriptor: req.StatementDescriptor,
		ExternalReference:   req.ExternalReference,
		AutoReturn:          req.AutoReturn,
		NotificationURL:     req.NotificationURL,
	}
	for _, item := range req.Items {
		unitPrice, _ := item.UnitPrice.Float64()
		body.Items = append(body.Items, preferenceItemBody{
			Title:      item.Title,
			Quantity:   item.Quantity,
			CurrencyID: item.CurrencyID,
			UnitPrice:  unitPrice,
		})
	}
	if req.BackURLs != nil {
		body.BackURLs = &backURLsBody{
			Success: req.BackURLs.Success,
			Pending: req.BackURLs.Pending,
			Failure: req.BackURLs.Failure,
		}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("%w: encoding preference body: %v", apperrors.ErrProvider, err)
	}

	url := c.baseURL + "/checkout/preferences"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: building preference request: %v", apperrors.ErrProvider, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: creating preference: %v", apperrors.ErrProvider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("%w: preference endpoint returned %d: %s", apperrors.ErrProvider, resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	var parsed preferenceResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: decoding preference response: %v", apperrors.ErrProvider, err)
	}
	if parsed.ID == "" {
		return nil, fmt.Errorf("%w: preference response missing id", apperrors.ErrProvider)
	}

	return &domain.PreferenceResult{
		ID:               parsed.ID,
		InitPoint:        parsed.InitPoint,
		SandboxInitPoint: parsed.SandboxInitPoint,
	}, nil
}
