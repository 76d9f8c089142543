package repository

import (
	"context"
	"errors"

	"invitation-studio/cart"
	"invitation-studio/logger"
)

// CartRepository persists one cart per client under "cart-storage"
type CartRepository struct {
	store KeyValueStore
	locks *keyLocker
}

// NewCartRepository creates a new CartRepository
func NewCartRepository(store KeyValueStore) *CartRepository {
	return &CartRepository{store: store, locks: newKeyLocker()}
}

// Ensure CartRepository implements CartRepositoryInterface
var _ CartRepositoryInterface = (*CartRepository)(nil)

// Get returns the stored cart, sanitized. ErrNotFound and ErrInvalidRecord pass through.
func (r *CartRepository) Get(ctx context.Context, clientID string) (cart.Cart, error) {
	var c cart.Cart
	if err := getJSON(ctx, r.store, ClientKey(clientID, CartKey), &c); err != nil {
		return cart.New(), err
	}
	return c.Sanitize(), nil
}

// Update applies cmd to the stored cart and saves the result while holding the
// client's cart lock. A missing or corrupt cart reaches cmd as empty.
func (r *CartRepository) Update(ctx context.Context, clientID string, cmd func(cart.Cart) cart.Cart) (cart.Cart, error) {
	key := ClientKey(clientID, CartKey)
	unlock := r.locks.lock(key)
	defer unlock()

	current, err := r.Get(ctx, clientID)
	switch {
	case err == nil:
	case errors.Is(err, ErrNotFound):
		current = cart.New()
	case errors.Is(err, ErrInvalidRecord):
		logger.Log.WithField("client_id", clientID).Warnf("⚠️ Stored cart is corrupt, starting empty: %v", err)
		current = cart.New()
	default:
		return cart.Cart{}, err
	}

	next := cmd(current)
	if err := setJSON(ctx, r.store, key, next); err != nil {
		return cart.Cart{}, err
	}
	return next, nil
}
