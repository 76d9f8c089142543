package service

import (
	"context"
	"testing"
	"time"

	"invitation-studio/catalog"
	"invitation-studio/repository"
)

type testServices struct {
	store          *repository.MemoryStore
	carts          *CartService
	customizations *CustomizationService
	orders         *repository.OrderRepository
}

func newTestServices(t *testing.T) testServices {
	t.Helper()
	store := repository.NewMemoryStore()
	carts := NewCartService(catalog.Default(), repository.NewCartRepository(store))
	return testServices{
		store:          store,
		carts:          carts,
		customizations: NewCustomizationService(catalog.Default(), repository.NewCustomizationRepository(store), carts),
		orders:         repository.NewOrderRepository(store),
	}
}

// slowStore widens the window between a read and the following write
type slowStore struct {
	*repository.MemoryStore
	delay time.Duration
}

func (s *slowStore) Get(ctx context.Context, key string) (string, error) {
	time.Sleep(s.delay)
	return s.MemoryStore.Get(ctx, key)
}

func newSlowTestServices(t *testing.T) testServices {
	t.Helper()
	mem := repository.NewMemoryStore()
	store := &slowStore{MemoryStore: mem, delay: 2 * time.Millisecond}
	carts := NewCartService(catalog.Default(), repository.NewCartRepository(store))
	return testServices{
		store:          mem,
		carts:          carts,
		customizations: NewCustomizationService(catalog.Default(), repository.NewCustomizationRepository(store), carts),
		orders:         repository.NewOrderRepository(store),
	}
}
