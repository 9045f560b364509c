package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/stayhub/payment-service/internal/models"
)

// Metadata keys carried on every session and intent. They are the only way
// the webhook and confirmation paths recover the reservation context, since
// the gateway knows nothing about the reservation domain.
const (
	MetadataReservationID = "reservationId"
	MetadataUserEmail     = "userEmail"
)

// Session payment status reported by the gateway.
const PaymentStatusPaid = "paid"

// Intent status reported by the gateway.
const IntentStatusSucceeded = "succeeded"

type CheckoutSessionParams struct {
	AmountMinorUnits   int64             `json:"amount"`
	Currency           string            `json:"currency"`
	ProductName        string            `json:"product_name"`
	ProductDescription string            `json:"product_description,omitempty"`
	CustomerEmail      string            `json:"customer_email"`
	SuccessURL         string            `json:"success_url"`
	CancelURL          string            `json:"cancel_url"`
	Metadata           map[string]string `json:"metadata"`
}

type CheckoutSession struct {
	ID            string            `json:"id"`
	URL           string            `json:"url"`
	PaymentStatus string            `json:"payment_status"`
	AmountTotal   int64             `json:"amount_total"`
	Currency      string            `json:"currency"`
	CustomerEmail string            `json:"customer_email"`
	Metadata      map[string]string `json:"metadata"`
}

type PaymentIntentParams struct {
	AmountMinorUnits int64             `json:"amount"`
	Currency         string            `json:"currency"`
	Metadata         map[string]string `json:"metadata"`
}

type PaymentIntent struct {
	ID           string            `json:"id"`
	ClientSecret string            `json:"client_secret"`
	Status       string            `json:"status"`
	Metadata     map[string]string `json:"metadata"`
}

// Client is a typed HTTP client for the payment processor. It is constructed
// explicitly so tests can substitute a fake gateway; there is no package
// level singleton.
type Client struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
}

func NewClient(baseURL, secretKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		secretKey:  secretKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) CreateCheckoutSession(ctx context.Context, params CheckoutSessionParams) (*CheckoutSession, error) {
	var session CheckoutSession
	if err := c.do(ctx, http.MethodPost, "/v1/checkout/sessions", params, &session); err != nil {
		return nil, &models.GatewayError{Op: "create checkout session", Err: err}
	}
	return &session, nil
}

func (c *Client) CreatePaymentIntent(ctx context.Context, params PaymentIntentParams) (*PaymentIntent, error) {
	var intent PaymentIntent
	if err := c.do(ctx, http.MethodPost, "/v1/payment_intents", params, &intent); err != nil {
		return nil, &models.GatewayError{Op: "create payment intent", Err: err}
	}
	return &intent, nil
}

// GetCheckoutSession retrieves the current gateway-side state of a session.
// The gateway is the source of truth for payment status; client claims are
// never trusted.
func (c *Client) GetCheckoutSession(ctx context.Context, sessionID string) (*CheckoutSession, error) {
	var session CheckoutSession
	path := "/v1/checkout/sessions/" + sessionID
	if err := c.do(ctx, http.MethodGet, path, nil, &session); err != nil {
		return nil, &models.GatewayError{Op: "retrieve checkout session", Err: err}
	}
	return &session, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("error marshaling request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(data))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
