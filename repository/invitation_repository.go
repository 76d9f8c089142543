package repository

import (
	"context"
	"errors"
	"fmt"

	"invitation-studio/logger"
	"invitation-studio/models"
)

// InvitationRepository persists hosted invitations under "hosted-{slug}"
// The slugs each client published are kept under the client scoped "published-invitations".
type InvitationRepository struct {
	store KeyValueStore
	locks *keyLocker
}

// NewInvitationRepository creates a new InvitationRepository
func NewInvitationRepository(store KeyValueStore) *InvitationRepository {
	return &InvitationRepository{store: store, locks: newKeyLocker()}
}

// Ensure InvitationRepository implements InvitationRepositoryInterface
var _ InvitationRepositoryInterface = (*InvitationRepository)(nil)

// storedInvitation mirrors InvitationPage with customization optional, so a
// record without one can be told apart from a record with empty fields.
type storedInvitation struct {
	models.InvitationPage
	Customization *models.CustomizationData `json:"customization"`
}

// Get returns the hosted invitation. A record that does not decode or has no
// customization yields ErrInvalidRecord.
func (r *InvitationRepository) Get(ctx context.Context, slug string) (models.InvitationPage, error) {
	var rec storedInvitation
	if err := getJSON(ctx, r.store, HostedKey(slug), &rec); err != nil {
		return models.InvitationPage{}, err
	}
	if rec.Customization == nil {
		return models.InvitationPage{}, fmt.Errorf("%w: hosted %s has no customization", ErrInvalidRecord, slug)
	}

	page := rec.InvitationPage
	page.Customization = *rec.Customization
	return page, nil
}

// Create writes page unless its slug is already taken
func (r *InvitationRepository) Create(ctx context.Context, page models.InvitationPage) (bool, error) {
	key := HostedKey(page.Slug)
	value, err := encodeJSON(key, page)
	if err != nil {
		return false, err
	}
	return r.store.SetIfAbsent(ctx, key, value)
}

// ListHosted returns the slugs published by clientID. A missing list is empty.
func (r *InvitationRepository) ListHosted(ctx context.Context, clientID string) ([]string, error) {
	slugs := []string{}
	err := getJSON(ctx, r.store, ClientKey(clientID, HostedByKey), &slugs)
	if errors.Is(err, ErrNotFound) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}
	return slugs, nil
}

// AddHosted appends slug to the client's published list
func (r *InvitationRepository) AddHosted(ctx context.Context, clientID, slug string) error {
	key := ClientKey(clientID, HostedByKey)
	unlock := r.locks.lock(key)
	defer unlock()

	slugs, err := r.ListHosted(ctx, clientID)
	if errors.Is(err, ErrInvalidRecord) {
		logger.Log.WithField("client_id", clientID).Warnf("⚠️ Stored published list is corrupt, starting a new one: %v", err)
		slugs = []string{}
	} else if err != nil {
		return err
	}

	for _, existing := range slugs {
		if existing == slug {
			return nil
		}
	}
	return setJSON(ctx, r.store, key, append(slugs, slug))
}
