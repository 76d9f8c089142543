package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order status values
const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusFailed    = "failed"
	OrderStatusRefunded  = "refunded"
)

// Order represents a checkout that was handed to the payment provider
type Order struct {
	ID               string          `json:"id"`
	Items            []CartItem      `json:"items"`
	Total            decimal.Decimal `json:"total"`
	Status           string          `json:"status"`
	PaymentSessionID string          `json:"paymentSessionId"`
	CreatedAt        time.Time       `json:"createdAt"`
	HostedURLs       []string        `json:"hostedUrls"`
}

// OrderListResponse represents the response for listing orders
type OrderListResponse struct {
	Orders []Order `json:"orders"`
}
