package repository

import (
	"context"
	"errors"

	"invitation-studio/logger"
	"invitation-studio/models"
)

// RSVPRepository persists the RSVP list of each hosted invitation under "rsvp-{slug}"
type RSVPRepository struct {
	store KeyValueStore
	locks *keyLocker
}

// NewRSVPRepository creates a new RSVPRepository
func NewRSVPRepository(store KeyValueStore) *RSVPRepository {
	return &RSVPRepository{store: store, locks: newKeyLocker()}
}

// Ensure RSVPRepository implements RSVPRepositoryInterface
var _ RSVPRepositoryInterface = (*RSVPRepository)(nil)

// List returns the RSVPs of slug in response order. Missing lists are empty.
func (r *RSVPRepository) List(ctx context.Context, slug string) ([]models.RSVP, error) {
	list := []models.RSVP{}
	err := getJSON(ctx, r.store, RSVPKey(slug), &list)
	if errors.Is(err, ErrNotFound) {
		return []models.RSVP{}, nil
	}
	if err != nil {
		return nil, err
	}
	return list, nil
}

// Append adds one RSVP to the list of rsvp.Slug
func (r *RSVPRepository) Append(ctx context.Context, rsvp models.RSVP) error {
	key := RSVPKey(rsvp.Slug)
	unlock := r.locks.lock(key)
	defer unlock()

	list, err := r.List(ctx, rsvp.Slug)
	if errors.Is(err, ErrInvalidRecord) {
		logger.Log.WithField("slug", rsvp.Slug).Warnf("⚠️ Stored RSVP list is corrupt, starting a new one: %v", err)
		list = []models.RSVP{}
	} else if err != nil {
		return err
	}

	return setJSON(ctx, r.store, key, append(list, rsvp))
}
