package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"strings"

	"github.com/disintegration/imaging"

	"invitation-studio/catalog"
	"invitation-studio/customization"
	"invitation-studio/logger"
	"invitation-studio/models"
	"invitation-studio/repository"
	"invitation-studio/utils"
)

const (
	// MaxBackgroundImageBytes is the largest accepted background upload
	MaxBackgroundImageBytes = 5 * 1024 * 1024
	backgroundMaxDim        = 1600
	backgroundQuality       = 85
)

// CustomizationService loads and edits per-template drafts. Every edit is
// saved right away and mirrored into the matching cart line.
type CustomizationService struct {
	catalog TemplateCatalog
	repo    repository.CustomizationRepositoryInterface
	carts   *CartService
}

// NewCustomizationService creates a new CustomizationService
func NewCustomizationService(catalog TemplateCatalog, repo repository.CustomizationRepositoryInterface, carts *CartService) *CustomizationService {
	return &CustomizationService{catalog: catalog, repo: repo, carts: carts}
}

// Load returns the stored draft, or the default draft when none is stored or it is corrupt
func (s *CustomizationService) Load(ctx context.Context, clientID, templateID string) (models.CustomizationData, error) {
	if _, ok := s.catalog.Get(templateID); !ok {
		return models.CustomizationData{}, fmt.Errorf("%w: %s", ErrTemplateNotFound, templateID)
	}

	d, err := s.repo.Get(ctx, clientID, templateID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) && !errors.Is(err, repository.ErrInvalidRecord) {
		return models.CustomizationData{}, fmt.Errorf("failed to load customization: %w", err)
	}
	return draftOrDefault(templateID, d, err), nil
}

// Save overwrites the draft (last write wins)
func (s *CustomizationService) Save(ctx context.Context, clientID string, d models.CustomizationData) (models.CustomizationData, error) {
	return s.mutate(ctx, clientID, d.TemplateID, func(models.CustomizationData) (models.CustomizationData, error) {
		return customization.Normalize(d), nil
	})
}

// Update sets one field, e.g. "eventName" or "colors.primary"
func (s *CustomizationService) Update(ctx context.Context, clientID, templateID, field, value string) (models.CustomizationData, error) {
	return s.mutate(ctx, clientID, templateID, func(d models.CustomizationData) (models.CustomizationData, error) {
		return customization.Update(d, field, value)
	})
}

// Patch merges a partial draft. The background image only changes through SetBackgroundImage.
func (s *CustomizationService) Patch(ctx context.Context, clientID, templateID string, patch models.CustomizationPatch) (models.CustomizationData, error) {
	patch.TemplateID = nil
	patch.BackgroundImage = nil
	return s.mutate(ctx, clientID, templateID, func(d models.CustomizationData) (models.CustomizationData, error) {
		return customization.Merge(d, patch), nil
	})
}

// ApplyPreset replaces the three colors with a named preset
func (s *CustomizationService) ApplyPreset(ctx context.Context, clientID, templateID, presetName string) (models.CustomizationData, error) {
	preset, ok := catalog.FindPreset(presetName)
	if !ok {
		return models.CustomizationData{}, fmt.Errorf("%w: %s", ErrPresetNotFound, presetName)
	}
	return s.mutate(ctx, clientID, templateID, func(d models.CustomizationData) (models.CustomizationData, error) {
		return customization.ApplyPreset(d, preset), nil
	})
}

// SetBackgroundImage validates an uploaded data URI (image/*, at most 5MB),
// downsizes it and stores it as a JPEG data URI
func (s *CustomizationService) SetBackgroundImage(ctx context.Context, clientID, templateID, dataURI string) (models.CustomizationData, error) {
	uri, err := prepareBackgroundImage(dataURI)
	if err != nil {
		return models.CustomizationData{}, err
	}
	return s.mutate(ctx, clientID, templateID, func(d models.CustomizationData) (models.CustomizationData, error) {
		d.BackgroundImage = uri
		return d, nil
	})
}

// RemoveBackgroundImage clears the background image
func (s *CustomizationService) RemoveBackgroundImage(ctx context.Context, clientID, templateID string) (models.CustomizationData, error) {
	return s.mutate(ctx, clientID, templateID, func(d models.CustomizationData) (models.CustomizationData, error) {
		d.BackgroundImage = ""
		return d, nil
	})
}

// mutate runs fn on the current draft and saves the result together with its
// cart mirror while the draft is locked, so edits to one template apply in order
func (s *CustomizationService) mutate(ctx context.Context, clientID, templateID string, fn func(models.CustomizationData) (models.CustomizationData, error)) (models.CustomizationData, error) {
	if _, ok := s.catalog.Get(templateID); !ok {
		return models.CustomizationData{}, fmt.Errorf("%w: %s", ErrTemplateNotFound, templateID)
	}

	var editErr error
	saved, err := s.repo.Update(ctx, clientID, templateID, func(stored models.CustomizationData, loadErr error) (models.CustomizationData, error) {
		next, err := fn(draftOrDefault(templateID, stored, loadErr))
		if err != nil {
			editErr = err
			return models.CustomizationData{}, err
		}
		next.TemplateID = templateID
		if s.carts != nil {
			if err := s.syncCart(ctx, clientID, next); err != nil {
				return models.CustomizationData{}, err
			}
		}
		return next, nil
	})
	if editErr != nil {
		return models.CustomizationData{}, editErr
	}
	if err != nil {
		logger.Log.WithField("template_id", templateID).Errorf("❌ Error saving customization: %v", err)
		return models.CustomizationData{}, fmt.Errorf("failed to save customization: %w", err)
	}
	return saved, nil
}

func draftOrDefault(templateID string, stored models.CustomizationData, loadErr error) models.CustomizationData {
	switch {
	case loadErr == nil:
		stored.TemplateID = templateID
		return customization.Normalize(stored)
	case errors.Is(loadErr, repository.ErrInvalidRecord):
		logger.Log.WithField("template_id", templateID).Warnf("⚠️ Stored customization is corrupt, using defaults: %v", loadErr)
	}
	return customization.New(templateID)
}

// syncCart mirrors the draft into the cart line of its template, if there is one
func (s *CustomizationService) syncCart(ctx context.Context, clientID string, d models.CustomizationData) error {
	c, err := s.carts.Get(ctx, clientID)
	if err != nil || !c.Contains(d.TemplateID) {
		return err
	}
	_, err = s.carts.UpdateCustomization(ctx, clientID, d.TemplateID, customization.ToPatch(d))
	return err
}

func prepareBackgroundImage(dataURI string) (string, error) {
	mime, data, err := utils.DecodeDataURI(dataURI)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	if !strings.HasPrefix(mime, "image/") {
		return "", fmt.Errorf("%w: please select an image file, got %s", ErrInvalidImage, mime)
	}
	if len(data) > MaxBackgroundImageBytes {
		return "", fmt.Errorf("%w: image size should be less than 5MB", ErrInvalidImage)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: failed to decode image: %v", ErrInvalidImage, err)
	}

	b := img.Bounds()
	if b.Dx() > backgroundMaxDim || b.Dy() > backgroundMaxDim {
		img = imaging.Fit(img, backgroundMaxDim, backgroundMaxDim, imaging.Lanczos)
		logger.Log.Debugf("🔄 Background resized: %dx%d -> %dx%d", b.Dx(), b.Dy(), img.Bounds().Dx(), img.Bounds().Dy())
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: backgroundQuality}); err != nil {
		return "", fmt.Errorf("failed to encode to JPEG: %w", err)
	}

	logger.Log.Debugf("✓ Background image prepared: format=%s, output_size=%d bytes", format, buf.Len())
	return utils.EncodeDataURI("image/jpeg", buf.Bytes()), nil
}
