package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invitation-studio/customization"
	"invitation-studio/models"
	"invitation-studio/repository"
)

func newRSVPFixture(t *testing.T) (*RSVPService, string) {
	t.Helper()
	store := repository.NewMemoryStore()
	publisher := NewPublisherService(repository.NewInvitationRepository(store)).WithClock(fixedClock)
	page, err := publisher.Publish(context.Background(), "host", customization.New("1"), elegantWedding(t))
	require.NoError(t, err)
	return NewRSVPService(publisher, repository.NewRSVPRepository(store)), page.Slug
}

func TestRSVP_SubmitAndList(t *testing.T) {
	ctx := context.Background()
	svc, slugValue := newRSVPFixture(t)

	r, err := svc.Submit(ctx, slugValue, models.RSVPRequest{GuestName: "  Ana ", Attending: true, NumberOfGuests: 3})
	require.NoError(t, err)
	assert.Equal(t, "Ana", r.GuestName)
	assert.NotEmpty(t, r.ID)

	_, err = svc.Submit(ctx, slugValue, models.RSVPRequest{GuestName: "Luis", Attending: true})
	require.NoError(t, err)
	_, err = svc.Submit(ctx, slugValue, models.RSVPRequest{GuestName: "Marta", Attending: false, NumberOfGuests: 4})
	require.NoError(t, err)

	list, err := svc.List(ctx, "host", slugValue)
	require.NoError(t, err)
	require.Len(t, list.RSVPs, 3)
	assert.Equal(t, 1, list.RSVPs[1].NumberOfGuests)
	assert.Equal(t, 4, list.Attending)
}

func TestRSVP_RequiresGuestName(t *testing.T) {
	svc, slugValue := newRSVPFixture(t)
	_, err := svc.Submit(context.Background(), slugValue, models.RSVPRequest{GuestName: "   "})
	assert.ErrorIs(t, err, ErrInvalidRSVP)
}

func TestRSVP_UnpublishedSlug(t *testing.T) {
	svc, _ := newRSVPFixture(t)
	_, err := svc.Submit(context.Background(), "demo-wedding-000000", models.RSVPRequest{GuestName: "Ana"})
	assert.ErrorIs(t, err, ErrInvitationNotFound)
}

func TestRSVP_ListOnlyForHost(t *testing.T) {
	ctx := context.Background()
	svc, slugValue := newRSVPFixture(t)
	_, err := svc.Submit(ctx, slugValue, models.RSVPRequest{GuestName: "Ana", GuestEmail: "ana@example.com"})
	require.NoError(t, err)

	_, err = svc.List(ctx, "guest", slugValue)
	assert.ErrorIs(t, err, ErrInvitationNotFound)
}
