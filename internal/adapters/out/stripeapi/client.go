// Package stripeapi talks to the external payment processor over its
// HTTP API. The Client maps processor failures onto the external-service
// error taxonomy and flags which of them are worth retrying.
package stripeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"zapshift/internal/core/ports"
	"zapshift/internal/pkg/errs"
)

// ErrTransient marks failures that a retry may fix: network errors,
// processor 5xx responses, and rate limiting. Business rejections never
// carry it.
var ErrTransient = errors.New("transient payment processor failure")

const serviceName = "payment processor"

// Client implements ports.PaymentGateway against the processor's HTTP API.
type Client struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
}

// NewClient creates a payment processor client. The secret key is sent as
// a bearer token on every request.
func NewClient(baseURL, secretKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		secretKey:  secretKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type intentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}

// CreateIntent opens a payment intent for the given amount. The returned
// client secret is handed to the frontend to confirm the charge.
func (c *Client) CreateIntent(ctx context.Context, amount int64, currency string) (*ports.PaymentIntent, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amount, 10))
	form.Set("currency", currency)
	form.Set("payment_method_types[]", "card")

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+"/v1/payment_intents",
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Join(ErrTransient, errs.NewExternalServiceError(serviceName, err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, errors.Join(ErrTransient, errs.NewExternalServiceError(serviceName, err))
	}

	if resp.StatusCode != http.StatusOK {
		cause := fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
		if isTransientStatus(resp.StatusCode) {
			return nil, errors.Join(ErrTransient, errs.NewExternalServiceError(serviceName, cause))
		}
		return nil, errs.NewExternalServiceError(serviceName, cause)
	}

	var decoded intentResponse
	if err = json.Unmarshal(body, &decoded); err != nil {
		return nil, errs.NewExternalServiceError(serviceName, err)
	}
	if decoded.ID == "" || decoded.ClientSecret == "" {
		return nil, errs.NewExternalServiceError(
			serviceName, errors.New("response missing intent id or client secret"),
		)
	}

	return &ports.PaymentIntent{
		ID:           decoded.ID,
		ClientSecret: decoded.ClientSecret,
		Amount:       decoded.Amount,
		Currency:     decoded.Currency,
	}, nil
}

func isTransientStatus(code int) bool {
	return code >= http.StatusInternalServerError || code == http.StatusTooManyRequests
}
