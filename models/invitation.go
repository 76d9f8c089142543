package models

import "time"

// InvitationPage represents a published invitation addressed by its slug.
// ViewCount, IsActive and ExpiresAt are stored but not enforced.
type InvitationPage struct {
	ID            string            `json:"id"`
	Slug          string            `json:"slug"`
	Template      TemplateRef       `json:"template"`
	Customization CustomizationData `json:"customization"`
	IsActive      bool              `json:"isActive"`
	ViewCount     int               `json:"viewCount"`
	CreatedAt     *time.Time        `json:"createdAt,omitempty"`
	ExpiresAt     *time.Time        `json:"expiresAt,omitempty"`
}

// Countdown represents the time left until an event
type Countdown struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// InvitationResponse represents the public view of a hosted invitation
// Example response:
// {
//   "invitation": {"id": "...", "slug": "sarah-john-sarah-john-s-wedding-123456", ...},
//   "countdown": {"days": 12, "hours": 3, "minutes": 0, "seconds": 41},
//   "url": "https://example.com/invite/sarah-john-sarah-john-s-wedding-123456",
//   "isFallback": false
// }
type InvitationResponse struct {
	Invitation InvitationPage `json:"invitation"`
	Countdown  Countdown      `json:"countdown"`
	URL        string         `json:"url"`
	IsFallback bool           `json:"isFallback"`
}

// PublishResponse represents the response after hosting an invitation
type PublishResponse struct {
	Slug string `json:"slug"`
	URL  string `json:"url"`
}
