package controller

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"invitation-studio/app/middleware"
	"invitation-studio/models"
	"invitation-studio/service"
)

// CustomizationController handles HTTP requests for per-template drafts
type CustomizationController struct {
	catalog   service.TemplateCatalog
	drafts    *service.CustomizationService
	publisher *service.PublisherService
	exporter  *service.ExportService
	render    *service.RenderService
	orders    *service.OrderService
	baseURL   string
}

// NewCustomizationController creates a new CustomizationController
func NewCustomizationController(
	catalog service.TemplateCatalog,
	drafts *service.CustomizationService,
	publisher *service.PublisherService,
	exporter *service.ExportService,
	render *service.RenderService,
	orders *service.OrderService,
	baseURL string,
) *CustomizationController {
	return &CustomizationController{
		catalog:   catalog,
		drafts:    drafts,
		publisher: publisher,
		exporter:  exporter,
		render:    render,
		orders:    orders,
		baseURL:   baseURL,
	}
}

// GetCustomization handles GET /api/customizations/{templateId}
func (c *CustomizationController) GetCustomization(w http.ResponseWriter, r *http.Request) {
	d, err := c.drafts.Load(r.Context(), middleware.ClientIDFrom(r.Context()), chi.URLParam(r, "templateId"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// UpdateField handles PATCH /api/customizations/{templateId}
// Example request: {"field": "colors.primary", "value": "#E11D48"}
func (c *CustomizationController) UpdateField(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateFieldRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Field == "" {
		writeError(w, http.StatusBadRequest, "field is required")
		return
	}

	d, err := c.drafts.Update(r.Context(), middleware.ClientIDFrom(r.Context()), chi.URLParam(r, "templateId"), req.Field, req.Value)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// SaveCustomization handles PUT /api/customizations/{templateId}
func (c *CustomizationController) SaveCustomization(w http.ResponseWriter, r *http.Request) {
	var d models.CustomizationData
	if !decodeJSON(w, r, &d) {
		return
	}
	d.TemplateID = chi.URLParam(r, "templateId")

	saved, err := c.drafts.Save(r.Context(), middleware.ClientIDFrom(r.Context()), d)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// MergeCustomization handles POST /api/customizations/{templateId}/merge
// Example request: {"venue": "Rooftop", "colors": {"accent": "#111111"}}
func (c *CustomizationController) MergeCustomization(w http.ResponseWriter, r *http.Request) {
	var patch models.CustomizationPatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	d, err := c.drafts.Patch(r.Context(), middleware.ClientIDFrom(r.Context()), chi.URLParam(r, "templateId"), patch)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// ApplyPreset handles POST /api/customizations/{templateId}/preset
// Example request: {"name": "Ocean Blue"}
func (c *CustomizationController) ApplyPreset(w http.ResponseWriter, r *http.Request) {
	var req models.ApplyPresetRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	d, err := c.drafts.ApplyPreset(r.Context(), middleware.ClientIDFrom(r.Context()), chi.URLParam(r, "templateId"), req.Name)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// SetBackground handles POST /api/customizations/{templateId}/background
// Example request: {"dataUri": "data:image/png;base64,iVBORw0KGgo..."}
func (c *CustomizationController) SetBackground(w http.ResponseWriter, r *http.Request) {
	var req models.BackgroundImageRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	d, err := c.drafts.SetBackgroundImage(r.Context(), middleware.ClientIDFrom(r.Context()), chi.URLParam(r, "templateId"), req.DataURI)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// RemoveBackground handles DELETE /api/customizations/{templateId}/background
func (c *CustomizationController) RemoveBackground(w http.ResponseWriter, r *http.Request) {
	d, err := c.drafts.RemoveBackgroundImage(r.Context(), middleware.ClientIDFrom(r.Context()), chi.URLParam(r, "templateId"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// Publish handles POST /api/customizations/{templateId}/publish
// Example response:
// {"slug": "sarah-john-sarah-john-s-wedding-123456", "url": "https://example.com/invite/sarah-john-sarah-john-s-wedding-123456"}
func (c *CustomizationController) Publish(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	clientID := middleware.ClientIDFrom(ctx)
	templateID := chi.URLParam(r, "templateId")

	t, ok := c.catalog.Get(templateID)
	if !ok {
		writeError(w, http.StatusNotFound, "template not found")
		return
	}
	d, err := c.drafts.Load(ctx, clientID, templateID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	page, err := c.publisher.Publish(ctx, clientID, d, t)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	url := c.baseURL + "/invite/" + page.Slug
	c.orders.AttachHostedURL(ctx, clientID, templateID, url)
	writeJSON(w, http.StatusCreated, models.PublishResponse{Slug: page.Slug, URL: url})
}

// Export handles GET /api/customizations/{templateId}/export?format=png|pdf
func (c *CustomizationController) Export(w http.ResponseWriter, r *http.Request) {
	d, err := c.drafts.Load(r.Context(), middleware.ClientIDFrom(r.Context()), chi.URLParam(r, "templateId"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	art, err := c.exporter.Export(r.Context(), d, strings.ToLower(r.URL.Query().Get("format")))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeArtifact(w, art)
}

// Preview handles GET /api/customizations/{templateId}/preview
// Returns the draft rendered as an HTML page with defaults applied
func (c *CustomizationController) Preview(w http.ResponseWriter, r *http.Request) {
	d, err := c.drafts.Load(r.Context(), middleware.ClientIDFrom(r.Context()), chi.URLParam(r, "templateId"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	html, err := c.render.RenderPage(d, service.RenderOptions{})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeHTML(w, http.StatusOK, html)
}
