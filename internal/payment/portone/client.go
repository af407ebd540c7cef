// Package portone fetches payment facts from the PortOne V2 REST API.
package portone

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/stpnv0/VillaBooker/internal/domain"
)

const (
	DefaultBaseURL = "https://api.portone.io"
	maxBodyBytes   = 1 << 20
)

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	secret     string
}

func NewClient(baseURL, secret string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
		secret: secret,
	}
}

type paymentResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Amount struct {
		Total int64 `json:"total"`
	} `json:"amount"`
}

// GetPayment returns domain.ErrPaymentNotFound on 404 and wraps any other
// failure in domain.ErrExternalProvider.
func (c *Client) GetPayment(ctx context.Context, paymentID string) (*domain.ProviderPayment, error) {
	endpoint := c.BaseURL + "/payments/" + url.PathEscape(paymentID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %s", domain.ErrExternalProvider, err.Error())
	}
	req.Header.Set("Authorization", "PortOne "+c.secret)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: request failed: %w", domain.ErrExternalProvider, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %w", domain.ErrExternalProvider, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, domain.ErrPaymentNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("%w: status %d: %s", domain.ErrExternalProvider, resp.StatusCode, errorMessage(body))
	}

	var payload paymentResponse
	if err = json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: decode payment: %w", domain.ErrExternalProvider, err)
	}
	if payload.Status == "" {
		return nil, fmt.Errorf("%w: payment without status", domain.ErrExternalProvider)
	}

	id := payload.ID
	if id == "" {
		id = paymentID
	}

	return &domain.ProviderPayment{
		ID:     id,
		Status: payload.Status,
		Amount: payload.Amount.Total,
		Raw:    json.RawMessage(body),
	}, nil
}

func errorMessage(body []byte) string {
	var errResp struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &errResp); err != nil {
		return "unreadable error body"
	}
	if errResp.Message != "" {
		return errResp.Message
	}
	if errResp.Type != "" {
		return errResp.Type
	}
	return "empty error body"
}
