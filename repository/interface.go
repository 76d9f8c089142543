package repository

import (
	"context"
	"errors"

	"invitation-studio/cart"
	"invitation-studio/models"
)

var (
	// ErrNotFound is returned when a key holds no value
	ErrNotFound = errors.New("record not found")
	// ErrInvalidRecord is returned when a stored value cannot be decoded
	ErrInvalidRecord = errors.New("invalid stored record")
)

// KeyValueStore is the string key-value store every repository persists through.
// Implementations are safe for concurrent use; Set is last-write-wins per key.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	// SetIfAbsent writes only when key holds no value and reports whether it wrote
	SetIfAbsent(ctx context.Context, key, value string) (bool, error)
	Delete(ctx context.Context, key string) error
}

// CartRepositoryInterface defines the contract for cart persistence
type CartRepositoryInterface interface {
	Get(ctx context.Context, clientID string) (cart.Cart, error)
	// Update applies cmd and saves the result atomically per client
	Update(ctx context.Context, clientID string, cmd func(cart.Cart) cart.Cart) (cart.Cart, error)
}

// CustomizationRepositoryInterface defines the contract for draft persistence
type CustomizationRepositoryInterface interface {
	Get(ctx context.Context, clientID, templateID string) (models.CustomizationData, error)
	// Update replaces the stored draft with fn's result atomically per client and template
	Update(ctx context.Context, clientID, templateID string, fn func(stored models.CustomizationData, loadErr error) (models.CustomizationData, error)) (models.CustomizationData, error)
}

// InvitationRepositoryInterface defines the contract for hosted invitation persistence
type InvitationRepositoryInterface interface {
	Get(ctx context.Context, slug string) (models.InvitationPage, error)
	// Create stores page under its slug unless the slug is taken
	Create(ctx context.Context, page models.InvitationPage) (bool, error)
	// AddHosted records that clientID published slug
	AddHosted(ctx context.Context, clientID, slug string) error
	// ListHosted returns the slugs clientID published, oldest first
	ListHosted(ctx context.Context, clientID string) ([]string, error)
}

// RSVPRepositoryInterface defines the contract for RSVP persistence
type RSVPRepositoryInterface interface {
	List(ctx context.Context, slug string) ([]models.RSVP, error)
	Append(ctx context.Context, r models.RSVP) error
}

// OrderRepositoryInterface defines the contract for order history persistence
type OrderRepositoryInterface interface {
	List(ctx context.Context, clientID string) ([]models.Order, error)
	Append(ctx context.Context, clientID string, o models.Order) error
	// AttachHostedURL adds url to the newest order containing templateID
	AttachHostedURL(ctx context.Context, clientID, templateID, url string) (bool, error)
}
