package repository

import (
	"context"
	"errors"

	"invitation-studio/logger"
	"invitation-studio/models"
)

// OrderRepository persists each client's order history under "orders"
type OrderRepository struct {
	store KeyValueStore
	locks *keyLocker
}

// NewOrderRepository creates a new OrderRepository
func NewOrderRepository(store KeyValueStore) *OrderRepository {
	return &OrderRepository{store: store, locks: newKeyLocker()}
}

// Ensure OrderRepository implements OrderRepositoryInterface
var _ OrderRepositoryInterface = (*OrderRepository)(nil)

// List returns the client's orders, oldest first
func (r *OrderRepository) List(ctx context.Context, clientID string) ([]models.Order, error) {
	orders := []models.Order{}
	err := getJSON(ctx, r.store, ClientKey(clientID, OrdersKey), &orders)
	if errors.Is(err, ErrNotFound) {
		return []models.Order{}, nil
	}
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// Append records a new order for the client
func (r *OrderRepository) Append(ctx context.Context, clientID string, o models.Order) error {
	key := ClientKey(clientID, OrdersKey)
	unlock := r.locks.lock(key)
	defer unlock()

	orders, err := r.List(ctx, clientID)
	if errors.Is(err, ErrInvalidRecord) {
		logger.Log.WithField("client_id", clientID).Warnf("⚠️ Stored order history is corrupt, starting a new one: %v", err)
		orders = []models.Order{}
	} else if err != nil {
		return err
	}

	return setJSON(ctx, r.store, key, append(orders, o))
}

// AttachHostedURL links a published invitation to the newest order that bought
// its template. Reports false when no such order exists.
func (r *OrderRepository) AttachHostedURL(ctx context.Context, clientID, templateID, url string) (bool, error) {
	key := ClientKey(clientID, OrdersKey)
	unlock := r.locks.lock(key)
	defer unlock()

	orders, err := r.List(ctx, clientID)
	if err != nil {
		return false, err
	}

	for i := len(orders) - 1; i >= 0; i-- {
		if !orderHasTemplate(orders[i], templateID) {
			continue
		}
		for _, existing := range orders[i].HostedURLs {
			if existing == url {
				return true, nil
			}
		}
		orders[i].HostedURLs = append(orders[i].HostedURLs, url)
		return true, setJSON(ctx, r.store, key, orders)
	}
	return false, nil
}

func orderHasTemplate(o models.Order, templateID string) bool {
	for _, item := range o.Items {
		if item.Template.ID == templateID {
			return true
		}
	}
	return false
}
