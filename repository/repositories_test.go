package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invitation-studio/cart"
	"invitation-studio/models"
)

func TestCartRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewCartRepository(NewMemoryStore())

	_, err := repo.Get(ctx, "c1")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.Update(ctx, "c1", func(c cart.Cart) cart.Cart {
		return c.AddItem(models.Template{ID: "1", Price: decimal.RequireFromString("29.99")})
	})
	require.NoError(t, err)

	got, err := repo.Get(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.True(t, decimal.RequireFromString("29.99").Equal(got.Total()))

	_, err = repo.Get(ctx, "c2")
	assert.ErrorIs(t, err, ErrNotFound, "carts are client scoped")
}

func TestCartRepository_Corrupt(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Set(ctx, ClientKey("c1", CartKey), "{not json"))

	repo := NewCartRepository(store)
	got, err := repo.Get(ctx, "c1")
	assert.ErrorIs(t, err, ErrInvalidRecord)
	assert.True(t, got.IsEmpty())

	// Update starts over from an empty cart
	got, err = repo.Update(ctx, "c1", func(c cart.Cart) cart.Cart {
		return c.AddItem(models.Template{ID: "3"})
	})
	require.NoError(t, err)
	assert.Equal(t, 1, got.ItemCount())
}

func TestCustomizationRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewCustomizationRepository(NewMemoryStore())

	_, err := repo.Get(ctx, "c1", "4")
	assert.ErrorIs(t, err, ErrNotFound)

	saved, err := repo.Update(ctx, "c1", "4", func(stored models.CustomizationData, loadErr error) (models.CustomizationData, error) {
		assert.ErrorIs(t, loadErr, ErrNotFound)
		return models.CustomizationData{EventName: "Shower"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "4", saved.TemplateID)

	got, err := repo.Get(ctx, "c1", "4")
	require.NoError(t, err)
	assert.Equal(t, "Shower", got.EventName)

	// a failing edit leaves the stored draft alone
	_, err = repo.Update(ctx, "c1", "4", func(stored models.CustomizationData, loadErr error) (models.CustomizationData, error) {
		require.NoError(t, loadErr)
		assert.Equal(t, "Shower", stored.EventName)
		return models.CustomizationData{}, assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)
	got, err = repo.Get(ctx, "c1", "4")
	require.NoError(t, err)
	assert.Equal(t, "Shower", got.EventName)
}

func TestInvitationRepository(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	repo := NewInvitationRepository(store)

	page := models.InvitationPage{
		ID:            "id-1",
		Slug:          "ann-gala-000001",
		Template:      models.TemplateRef{Name: "Gala Dinner", Category: models.CategoryCorporate},
		Customization: models.CustomizationData{TemplateID: "17", EventName: "Gala"},
		IsActive:      true,
	}

	created, err := repo.Create(ctx, page)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.Create(ctx, models.InvitationPage{Slug: page.Slug})
	require.NoError(t, err)
	assert.False(t, created)

	got, err := repo.Get(ctx, page.Slug)
	require.NoError(t, err)
	assert.Equal(t, "Gala", got.Customization.EventName)
	assert.Equal(t, "Gala Dinner", got.Template.Name)
}

func TestInvitationRepository_InvalidRecords(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	repo := NewInvitationRepository(store)

	require.NoError(t, store.Set(ctx, HostedKey("no-custom"), `{"id":"x","slug":"no-custom"}`))
	require.NoError(t, store.Set(ctx, HostedKey("garbage"), `<<<`))

	_, err := repo.Get(ctx, "no-custom")
	assert.ErrorIs(t, err, ErrInvalidRecord)
	_, err = repo.Get(ctx, "garbage")
	assert.ErrorIs(t, err, ErrInvalidRecord)
	_, err = repo.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRSVPRepository_ConcurrentAppend(t *testing.T) {
	ctx := context.Background()
	repo := NewRSVPRepository(NewMemoryStore())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, repo.Append(ctx, models.RSVP{Slug: "s", GuestName: "g", NumberOfGuests: 1}))
		}()
	}
	wg.Wait()

	list, err := repo.List(ctx, "s")
	require.NoError(t, err)
	assert.Len(t, list, 20)

	empty, err := repo.List(ctx, "other")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestOrderRepository(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	repo := NewOrderRepository(store)

	require.NoError(t, store.Set(ctx, ClientKey("c1", OrdersKey), "corrupt"))
	require.NoError(t, repo.Append(ctx, "c1", models.Order{ID: "o1", Status: models.OrderStatusPending, CreatedAt: time.Now()}))
	require.NoError(t, repo.Append(ctx, "c1", models.Order{ID: "o2", Status: models.OrderStatusPending}))

	orders, err := repo.List(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "o1", orders[0].ID)
	assert.Equal(t, "o2", orders[1].ID)
}

func TestOrderRepository_AttachHostedURL(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(NewMemoryStore())

	wedding := models.CartItem{Template: models.Template{ID: "1"}, Quantity: 1}
	birthday := models.CartItem{Template: models.Template{ID: "2"}, Quantity: 1}
	require.NoError(t, repo.Append(ctx, "c1", models.Order{ID: "o1", Items: []models.CartItem{wedding}}))
	require.NoError(t, repo.Append(ctx, "c1", models.Order{ID: "o2", Items: []models.CartItem{wedding, birthday}}))

	attached, err := repo.AttachHostedURL(ctx, "c1", "1", "http://x/invite/a")
	require.NoError(t, err)
	assert.True(t, attached)

	// second call with the same url does not duplicate it
	attached, err = repo.AttachHostedURL(ctx, "c1", "1", "http://x/invite/a")
	require.NoError(t, err)
	assert.True(t, attached)

	attached, err = repo.AttachHostedURL(ctx, "c1", "9", "http://x/invite/b")
	require.NoError(t, err)
	assert.False(t, attached)

	orders, err := repo.List(ctx, "c1")
	require.NoError(t, err)
	assert.Empty(t, orders[0].HostedURLs)
	assert.Equal(t, []string{"http://x/invite/a"}, orders[1].HostedURLs)
}

func TestInvitationRepository_HostedList(t *testing.T) {
	ctx := context.Background()
	repo := NewInvitationRepository(NewMemoryStore())

	slugs, err := repo.ListHosted(ctx, "c1")
	require.NoError(t, err)
	assert.Empty(t, slugs)

	require.NoError(t, repo.AddHosted(ctx, "c1", "ann-gala-000001"))
	require.NoError(t, repo.AddHosted(ctx, "c1", "ann-gala-000002"))
	require.NoError(t, repo.AddHosted(ctx, "c1", "ann-gala-000001"))

	slugs, err = repo.ListHosted(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, []string{"ann-gala-000001", "ann-gala-000002"}, slugs)

	slugs, err = repo.ListHosted(ctx, "c2")
	require.NoError(t, err)
	assert.Empty(t, slugs, "published lists are client scoped")
}
