package controller

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"invitation-studio/app/middleware"
	"invitation-studio/models"
	"invitation-studio/service"
	"invitation-studio/utils"
)

// InvitationController handles the public side of hosted invitations
type InvitationController struct {
	publisher *service.PublisherService
	render    *service.RenderService
	exporter  *service.ExportService
	rsvps     *service.RSVPService
	baseURL   string
	now       func() time.Time
}

// NewInvitationController creates a new InvitationController
func NewInvitationController(
	publisher *service.PublisherService,
	render *service.RenderService,
	exporter *service.ExportService,
	rsvps *service.RSVPService,
	baseURL string,
) *InvitationController {
	return &InvitationController{
		publisher: publisher,
		render:    render,
		exporter:  exporter,
		rsvps:     rsvps,
		baseURL:   baseURL,
		now:       time.Now,
	}
}

// GetInvitation handles GET /api/invitations/{slug}
// Unknown slugs answer 200 with the demo invitation and "isFallback": true
func (c *InvitationController) GetInvitation(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	page, found := c.publisher.Resolve(r.Context(), slug)

	writeJSON(w, http.StatusOK, models.InvitationResponse{
		Invitation: page,
		Countdown:  utils.TimeUntil(page.Customization.EventDate, page.Customization.EventTime, c.now()),
		URL:        c.baseURL + "/invite/" + slug,
		IsFallback: !found,
	})
}

// Page handles GET /invite/{slug}, the hosted HTML page
func (c *InvitationController) Page(w http.ResponseWriter, r *http.Request) {
	page, _ := c.publisher.Resolve(r.Context(), chi.URLParam(r, "slug"))
	countdown := utils.TimeUntil(page.Customization.EventDate, page.Customization.EventTime, c.now())

	html, err := c.render.RenderPage(page.Customization, service.RenderOptions{
		Countdown:  &countdown,
		ShowFooter: true,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeHTML(w, http.StatusOK, html)
}

// Export handles GET /api/invitations/{slug}/export?format=png|pdf
func (c *InvitationController) Export(w http.ResponseWriter, r *http.Request) {
	page, _ := c.publisher.Resolve(r.Context(), chi.URLParam(r, "slug"))

	art, err := c.exporter.Export(r.Context(), page.Customization, strings.ToLower(r.URL.Query().Get("format")))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeArtifact(w, art)
}

// SubmitRSVP handles POST /api/invitations/{slug}/rsvp
// Example request: {"guestName": "Ana", "attending": true, "numberOfGuests": 2}
func (c *InvitationController) SubmitRSVP(w http.ResponseWriter, r *http.Request) {
	var req models.RSVPRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	rsvp, err := c.rsvps.Submit(r.Context(), chi.URLParam(r, "slug"), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rsvp)
}

// ListRSVPs handles GET /api/invitations/{slug}/rsvps for the client that published slug
func (c *InvitationController) ListRSVPs(w http.ResponseWriter, r *http.Request) {
	list, err := c.rsvps.List(r.Context(), middleware.ClientIDFrom(r.Context()), chi.URLParam(r, "slug"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}
