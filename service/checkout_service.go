package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"invitation-studio/cart"
	"invitation-studio/logger"
	"invitation-studio/models"
	"invitation-studio/repository"
)

// CheckoutService hands the cart to the payment provider and records the order
type CheckoutService struct {
	carts   *CartService
	orders  repository.OrderRepositoryInterface
	gateway PaymentGateway
	now     func() time.Time
	newID   func() string
}

// NewCheckoutService creates a new CheckoutService
func NewCheckoutService(carts *CartService, orders repository.OrderRepositoryInterface, gateway PaymentGateway) *CheckoutService {
	return &CheckoutService{
		carts:   carts,
		orders:  orders,
		gateway: gateway,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// PaymentItems converts cart lines to the provider's line format
func PaymentItems(c cart.Cart) []models.PaymentItem {
	items := make([]models.PaymentItem, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, models.PaymentItem{
			ID:          item.Template.ID,
			Name:        item.Template.Name,
			Price:       item.Template.Price,
			Quantity:    item.Quantity,
			Description: item.Template.Description,
		})
	}
	return items
}

// CheckoutURLs returns the success and cancel return addresses for baseURL
func CheckoutURLs(baseURL string) (success, cancel string) {
	base := strings.TrimRight(baseURL, "/")
	return base + "/dashboard/orders?success=true", base + "/cart?cancelled=true"
}

// Checkout starts a payment session for the client's cart. The cart is only
// cleared once the provider accepted the session.
func (s *CheckoutService) Checkout(ctx context.Context, clientID, baseURL string) (models.CheckoutResponse, error) {
	current, err := s.carts.Get(ctx, clientID)
	if err != nil {
		return models.CheckoutResponse{}, err
	}
	if current.IsEmpty() {
		return models.CheckoutResponse{}, ErrEmptyCart
	}

	successURL, cancelURL := CheckoutURLs(baseURL)
	sessionID, err := s.gateway.CreateSession(ctx, models.CheckoutSessionRequest{
		Items:      PaymentItems(current),
		SuccessURL: successURL,
		CancelURL:  cancelURL,
	})
	if err != nil {
		logger.Log.WithField("client_id", clientID).Errorf("❌ Payment error: %v", err)
		return models.CheckoutResponse{}, fmt.Errorf("%w: %v", ErrPaymentUnavailable, err)
	}

	order := models.Order{
		ID:               s.newID(),
		Items:            current.Items,
		Total:            current.Total(),
		Status:           models.OrderStatusPending,
		PaymentSessionID: sessionID,
		CreatedAt:        s.now(),
		HostedURLs:       []string{},
	}
	if err := s.orders.Append(ctx, clientID, order); err != nil {
		logger.Log.WithField("client_id", clientID).Warnf("⚠️ Could not record order %s: %v", order.ID, err)
	}

	if _, err := s.carts.Clear(ctx, clientID); err != nil {
		logger.Log.WithField("client_id", clientID).Warnf("⚠️ Could not clear cart after checkout: %v", err)
	}

	logger.Log.WithFields(logrus.Fields{
		"client_id":  clientID,
		"order_id":   order.ID,
		"session_id": sessionID,
		"items":      current.ItemCount(),
	}).Info("✓ Checkout session created")

	return models.CheckoutResponse{
		SessionID:   sessionID,
		RedirectURL: s.gateway.RedirectURL(sessionID),
		OrderID:     order.ID,
		Message:     "Redirecting to payment...",
	}, nil
}
