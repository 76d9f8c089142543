package repository

import (
	"context"
	"errors"

	"invitation-studio/models"
)

// CustomizationRepository persists drafts under "customization-{templateId}"
type CustomizationRepository struct {
	store KeyValueStore
	locks *keyLocker
}

// NewCustomizationRepository creates a new CustomizationRepository
func NewCustomizationRepository(store KeyValueStore) *CustomizationRepository {
	return &CustomizationRepository{store: store, locks: newKeyLocker()}
}

// Ensure CustomizationRepository implements CustomizationRepositoryInterface
var _ CustomizationRepositoryInterface = (*CustomizationRepository)(nil)

// Get returns the stored draft as persisted (no defaults applied)
func (r *CustomizationRepository) Get(ctx context.Context, clientID, templateID string) (models.CustomizationData, error) {
	var d models.CustomizationData
	if err := getJSON(ctx, r.store, ClientKey(clientID, CustomizationKey(templateID)), &d); err != nil {
		return models.CustomizationData{}, err
	}
	return d, nil
}

// Update hands the stored draft of templateID to fn and saves what fn returns,
// holding the draft's lock throughout. loadErr is ErrNotFound or ErrInvalidRecord
// when there is no usable stored draft; other load failures are returned without
// calling fn. Nothing is saved when fn fails.
func (r *CustomizationRepository) Update(ctx context.Context, clientID, templateID string, fn func(stored models.CustomizationData, loadErr error) (models.CustomizationData, error)) (models.CustomizationData, error) {
	key := ClientKey(clientID, CustomizationKey(templateID))
	unlock := r.locks.lock(key)
	defer unlock()

	stored, err := r.Get(ctx, clientID, templateID)
	if err != nil && !errors.Is(err, ErrNotFound) && !errors.Is(err, ErrInvalidRecord) {
		return models.CustomizationData{}, err
	}

	next, err := fn(stored, err)
	if err != nil {
		return models.CustomizationData{}, err
	}
	next.TemplateID = templateID
	if err := setJSON(ctx, r.store, key, next); err != nil {
		return models.CustomizationData{}, err
	}
	return next, nil
}
