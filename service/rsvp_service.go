package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"invitation-studio/logger"
	"invitation-studio/models"
	"invitation-studio/repository"
)

// InvitationChecker reports whether a slug has a real hosted invitation and who published it
type InvitationChecker interface {
	Exists(ctx context.Context, slug string) (bool, error)
	IsHost(ctx context.Context, clientID, slug string) (bool, error)
}

// RSVPService records guest answers for hosted invitations
type RSVPService struct {
	invitations InvitationChecker
	repo        repository.RSVPRepositoryInterface
	now         func() time.Time
	newID       func() string
}

// NewRSVPService creates a new RSVPService
func NewRSVPService(invitations InvitationChecker, repo repository.RSVPRepositoryInterface) *RSVPService {
	return &RSVPService{
		invitations: invitations,
		repo:        repo,
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

// Submit stores an RSVP for slug. The fallback invitation does not take RSVPs.
func (s *RSVPService) Submit(ctx context.Context, slug string, req models.RSVPRequest) (models.RSVP, error) {
	name := strings.TrimSpace(req.GuestName)
	if name == "" {
		return models.RSVP{}, fmt.Errorf("%w: guestName is required", ErrInvalidRSVP)
	}

	exists, err := s.invitations.Exists(ctx, slug)
	if err != nil {
		return models.RSVP{}, fmt.Errorf("failed to look up invitation: %w", err)
	}
	if !exists {
		return models.RSVP{}, fmt.Errorf("%w: %s", ErrInvitationNotFound, slug)
	}

	guests := req.NumberOfGuests
	if guests < 1 {
		guests = 1
	}

	rsvp := models.RSVP{
		ID:             s.newID(),
		Slug:           slug,
		GuestName:      name,
		GuestEmail:     strings.TrimSpace(req.GuestEmail),
		GuestPhone:     strings.TrimSpace(req.GuestPhone),
		Attending:      req.Attending,
		NumberOfGuests: guests,
		Message:        req.Message,
		RespondedAt:    s.now(),
	}
	if err := s.repo.Append(ctx, rsvp); err != nil {
		logger.Log.WithField("slug", slug).Errorf("❌ Error saving RSVP: %v", err)
		return models.RSVP{}, fmt.Errorf("failed to save rsvp: %w", err)
	}

	logger.Log.WithFields(logrus.Fields{
		"slug":      slug,
		"attending": rsvp.Attending,
		"guests":    rsvp.NumberOfGuests,
	}).Info("✓ RSVP recorded")
	return rsvp, nil
}

// List returns every RSVP of slug and the number of attending guests.
// Only the client that published slug may list them; anyone else gets ErrInvitationNotFound.
func (s *RSVPService) List(ctx context.Context, clientID, slug string) (models.RSVPListResponse, error) {
	host, err := s.invitations.IsHost(ctx, clientID, slug)
	if err != nil {
		return models.RSVPListResponse{}, err
	}
	if !host {
		return models.RSVPListResponse{}, fmt.Errorf("%w: %s", ErrInvitationNotFound, slug)
	}

	list, err := s.repo.List(ctx, slug)
	if err != nil {
		return models.RSVPListResponse{}, fmt.Errorf("failed to list rsvps: %w", err)
	}

	attending := 0
	for _, r := range list {
		if r.Attending {
			attending += r.NumberOfGuests
		}
	}
	return models.RSVPListResponse{RSVPs: list, Attending: attending}, nil
}
