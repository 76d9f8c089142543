package models

import "github.com/shopspring/decimal"

// PaymentItem represents one line sent to the payment provider
type PaymentItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Description string          `json:"description,omitempty"`
}

// CheckoutSessionRequest is posted to the checkout session endpoint
// Example: {"items": [{"id": "1", "name": "Elegant Wedding", "price": 29.99, "quantity": 1}], "successUrl": "...", "cancelUrl": "..."}
type CheckoutSessionRequest struct {
	Items      []PaymentItem `json:"items"`
	SuccessURL string        `json:"successUrl"`
	CancelURL  string        `json:"cancelUrl"`
}

// CheckoutSessionResponse is returned by the checkout session endpoint
type CheckoutSessionResponse struct {
	SessionID string `json:"sessionId"`
}

// CheckoutResponse tells the storefront where to send the user
type CheckoutResponse struct {
	SessionID   string `json:"sessionId"`
	RedirectURL string `json:"redirectUrl"`
	OrderID     string `json:"orderId"`
	Message     string `json:"message"`
}
