package service

import (
	"context"
	"fmt"

	"invitation-studio/logger"
	"invitation-studio/models"
	"invitation-studio/repository"
)

// OrderService reads the client's order history
type OrderService struct {
	repo repository.OrderRepositoryInterface
}

// NewOrderService creates a new OrderService
func NewOrderService(repo repository.OrderRepositoryInterface) *OrderService {
	return &OrderService{repo: repo}
}

// List returns the client's orders, newest first
func (s *OrderService) List(ctx context.Context, clientID string) (models.OrderListResponse, error) {
	orders, err := s.repo.List(ctx, clientID)
	if err != nil {
		return models.OrderListResponse{}, fmt.Errorf("failed to list orders: %w", err)
	}

	out := make([]models.Order, len(orders))
	for i, o := range orders {
		out[len(orders)-1-i] = o
	}
	return models.OrderListResponse{Orders: out}, nil
}

// AttachHostedURL links a published invitation to the order that bought its template
func (s *OrderService) AttachHostedURL(ctx context.Context, clientID, templateID, url string) {
	attached, err := s.repo.AttachHostedURL(ctx, clientID, templateID, url)
	if err != nil {
		logger.Log.WithField("client_id", clientID).Warnf("⚠️ Could not link hosted url to order: %v", err)
		return
	}
	if attached {
		logger.Log.WithField("template_id", templateID).Debugf("🔗 Linked %s to order", url)
	}
}
