package service

import (
	"context"
	"errors"
	"fmt"

	"invitation-studio/cart"
	"invitation-studio/logger"
	"invitation-studio/models"
	"invitation-studio/repository"
)

// TemplateCatalog looks templates up by id
type TemplateCatalog interface {
	Get(id string) (models.Template, bool)
}

// CartService applies cart commands and persists the result immediately
type CartService struct {
	catalog TemplateCatalog
	repo    repository.CartRepositoryInterface
}

// NewCartService creates a new CartService
func NewCartService(catalog TemplateCatalog, repo repository.CartRepositoryInterface) *CartService {
	return &CartService{catalog: catalog, repo: repo}
}

// Get returns the client's cart. Missing or corrupt carts load as empty.
func (s *CartService) Get(ctx context.Context, clientID string) (cart.Cart, error) {
	c, err := s.repo.Get(ctx, clientID)
	switch {
	case err == nil:
		return c, nil
	case errors.Is(err, repository.ErrNotFound):
		return cart.New(), nil
	case errors.Is(err, repository.ErrInvalidRecord):
		logger.Log.WithField("client_id", clientID).Warnf("⚠️ Stored cart is corrupt, starting empty: %v", err)
		return cart.New(), nil
	default:
		return cart.Cart{}, fmt.Errorf("failed to load cart: %w", err)
	}
}

// AddItem adds one unit of the template to the cart
func (s *CartService) AddItem(ctx context.Context, clientID, templateID string) (cart.Cart, error) {
	t, ok := s.catalog.Get(templateID)
	if !ok {
		return cart.Cart{}, fmt.Errorf("%w: %s", ErrTemplateNotFound, templateID)
	}
	return s.apply(ctx, clientID, func(c cart.Cart) cart.Cart { return c.AddItem(t) })
}

// RemoveItem drops the template's line. Absent ids are a no-op.
func (s *CartService) RemoveItem(ctx context.Context, clientID, templateID string) (cart.Cart, error) {
	return s.apply(ctx, clientID, func(c cart.Cart) cart.Cart { return c.RemoveItem(templateID) })
}

// UpdateCustomization merges patch into the template's line. Absent ids are a no-op.
func (s *CartService) UpdateCustomization(ctx context.Context, clientID, templateID string, patch models.CustomizationPatch) (cart.Cart, error) {
	return s.apply(ctx, clientID, func(c cart.Cart) cart.Cart { return c.UpdateCustomization(templateID, patch) })
}

// Clear empties the cart
func (s *CartService) Clear(ctx context.Context, clientID string) (cart.Cart, error) {
	return s.apply(ctx, clientID, func(c cart.Cart) cart.Cart { return c.Clear() })
}

func (s *CartService) apply(ctx context.Context, clientID string, cmd func(cart.Cart) cart.Cart) (cart.Cart, error) {
	next, err := s.repo.Update(ctx, clientID, cmd)
	if err != nil {
		logger.Log.WithField("client_id", clientID).Errorf("❌ Error saving cart: %v", err)
		return cart.Cart{}, fmt.Errorf("failed to save cart: %w", err)
	}
	return next, nil
}
