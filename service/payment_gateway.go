package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"invitation-studio/models"
)

// PaymentGateway starts hosted checkout sessions at the payment provider
type PaymentGateway interface {
	CreateSession(ctx context.Context, req models.CheckoutSessionRequest) (string, error)
	RedirectURL(sessionID string) string
}

// HTTPPaymentGateway talks to a checkout session endpoint over JSON
type HTTPPaymentGateway struct {
	sessionURL  string
	checkoutURL string
	client      *http.Client
}

// NewHTTPPaymentGateway creates a gateway posting to sessionURL and redirecting to checkoutURL
func NewHTTPPaymentGateway(sessionURL, checkoutURL string, client *http.Client) *HTTPPaymentGateway {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &HTTPPaymentGateway{
		sessionURL:  sessionURL,
		checkoutURL: checkoutURL,
		client:      client,
	}
}

// Ensure HTTPPaymentGateway implements PaymentGateway
var _ PaymentGateway = (*HTTPPaymentGateway)(nil)

// CreateSession posts the checkout request and returns the provider's session id
func (g *HTTPPaymentGateway) CreateSession(ctx context.Context, req models.CheckoutSessionRequest) (string, error) {
	if g.sessionURL == "" {
		return "", fmt.Errorf("payment session url is not configured")
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to encode checkout request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.sessionURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build checkout request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to create checkout session: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("checkout session endpoint returned %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var out models.CheckoutSessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode checkout session: %w", err)
	}
	if out.SessionID == "" {
		return "", fmt.Errorf("checkout session endpoint returned no session id")
	}
	return out.SessionID, nil
}

// RedirectURL is the hosted checkout page for sessionID
func (g *HTTPPaymentGateway) RedirectURL(sessionID string) string {
	if g.checkoutURL == "" {
		return ""
	}
	u, err := url.Parse(g.checkoutURL)
	if err != nil {
		return g.checkoutURL
	}
	q := u.Query()
	q.Set("session_id", sessionID)
	u.RawQuery = q.Encode()
	return u.String()
}
