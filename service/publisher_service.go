package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"invitation-studio/customization"
	"invitation-studio/logger"
	"invitation-studio/metrics"
	"invitation-studio/models"
	"invitation-studio/repository"
	"invitation-studio/slug"
)

// MaxSlugAttempts bounds the slug collision retries of Publish
const MaxSlugAttempts = 5

// PublisherService hosts invitations under generated slugs and resolves them back
type PublisherService struct {
	repo  repository.InvitationRepositoryInterface
	slugs *slug.Generator
	newID func() string
}

// NewPublisherService creates a new PublisherService
func NewPublisherService(repo repository.InvitationRepositoryInterface) *PublisherService {
	return &PublisherService{
		repo:  repo,
		slugs: slug.NewGenerator(),
		newID: uuid.NewString,
	}
}

// WithClock replaces the time source, for tests
func (s *PublisherService) WithClock(now func() time.Time) *PublisherService {
	s.slugs = &slug.Generator{Now: now}
	return s
}

// Publish snapshots d with every blank field defaulted and stores it under a
// new slug owned by clientID. A taken slug is retried with the next
// millisecond's suffix; an existing record is never overwritten.
func (s *PublisherService) Publish(ctx context.Context, clientID string, d models.CustomizationData, t models.Template) (models.InvitationPage, error) {
	createdAt := s.slugs.Time()
	page := models.InvitationPage{
		ID:            s.newID(),
		Template:      models.TemplateRef{Name: t.Name, Category: t.Category},
		Customization: customization.ResolveDefaults(d),
		IsActive:      true,
		ViewCount:     0,
		CreatedAt:     &createdAt,
	}
	page.Customization.TemplateID = t.ID

	for attempt := 0; attempt < MaxSlugAttempts; attempt++ {
		// Slug parts come from the raw draft so blank names become "event"/"host"
		page.Slug = s.slugs.GenerateAt(d.EventName, d.HostName, createdAt.Add(time.Duration(attempt)*time.Millisecond))

		created, err := s.repo.Create(ctx, page)
		if err != nil {
			metrics.RecordPublish("error")
			logger.Log.WithField("slug", page.Slug).Errorf("❌ Error storing hosted invitation: %v", err)
			return models.InvitationPage{}, fmt.Errorf("failed to publish invitation: %w", err)
		}
		if created {
			if err := s.repo.AddHosted(ctx, clientID, page.Slug); err != nil {
				logger.Log.WithField("slug", page.Slug).Errorf("❌ Error recording invitation host: %v", err)
				return models.InvitationPage{}, fmt.Errorf("failed to record invitation host: %w", err)
			}
			metrics.RecordPublish("created")
			logger.Log.WithFields(logrus.Fields{
				"slug":        page.Slug,
				"template_id": t.ID,
			}).Info("✓ Invitation published")
			return page, nil
		}

		metrics.RecordPublish("collision")
		logger.Log.WithField("slug", page.Slug).Warn("⚠️ Slug already taken, retrying with next suffix")
	}

	return models.InvitationPage{}, fmt.Errorf("%w: %d attempts", ErrSlugCollision, MaxSlugAttempts)
}

// Resolve returns the hosted invitation for slug with defaults reapplied.
// Missing or invalid records resolve to the demo invitation; found reports which.
func (s *PublisherService) Resolve(ctx context.Context, slugValue string) (models.InvitationPage, bool) {
	page, err := s.repo.Get(ctx, slugValue)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			logger.Log.WithField("slug", slugValue).Warnf("⚠️ Hosted invitation unreadable, serving fallback: %v", err)
		}
		metrics.RecordFallbackResolve()
		return FallbackInvitation(slugValue), false
	}

	page.Slug = slugValue
	page.Customization = customization.ResolveDefaults(page.Customization)
	return page, true
}

// Exists reports whether slug has a real hosted record
func (s *PublisherService) Exists(ctx context.Context, slugValue string) (bool, error) {
	_, err := s.repo.Get(ctx, slugValue)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, repository.ErrInvalidRecord):
		return false, nil
	default:
		return false, err
	}
}

// IsHost reports whether clientID published slug
func (s *PublisherService) IsHost(ctx context.Context, clientID, slugValue string) (bool, error) {
	slugs, err := s.repo.ListHosted(ctx, clientID)
	if err != nil {
		return false, fmt.Errorf("failed to load published invitations: %w", err)
	}
	for _, owned := range slugs {
		if owned == slugValue {
			return true, nil
		}
	}
	return false, nil
}

// FallbackInvitation is the fixed demo invitation shown for unknown slugs
func FallbackInvitation(slugValue string) models.InvitationPage {
	d := customization.New("1")
	d.EventName = "Sarah & John's Wedding"
	d.HostName = "Sarah & John"
	d.EventDate = "2025-06-15"
	d.EventTime = "16:00"
	d.Venue = "The Grand Ballroom"
	d.Address = "123 Celebration Avenue, New York, NY 10001"
	d.Message = "We joyfully invite you to celebrate our special day with us. Your presence would make our wedding complete."
	d.RSVPLink = "#"

	return models.InvitationPage{
		ID:            "1",
		Slug:          slugValue,
		Template:      models.TemplateRef{Name: "Elegant Wedding", Category: models.CategoryWedding},
		Customization: d,
		IsActive:      true,
		ViewCount:     42,
	}
}
