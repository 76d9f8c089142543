package controller

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"invitation-studio/logger"
	"invitation-studio/service"
)

// TemplateImageController serves catalog thumbnails and preview images
type TemplateImageController struct {
	images *service.TemplateImageService
}

// NewTemplateImageController creates a new TemplateImageController
func NewTemplateImageController(images *service.TemplateImageService) *TemplateImageController {
	return &TemplateImageController{images: images}
}

// GetImage handles GET /templates/{file}?size=thumb|medium
func (c *TemplateImageController) GetImage(w http.ResponseWriter, r *http.Request) {
	file := chi.URLParam(r, "file")

	data, err := c.images.Image(r.Context(), file, r.URL.Query().Get("size"))
	if err != nil {
		logger.Log.WithField("file", file).Warnf("⚠️ Template image unavailable: %v", err)
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(data)))
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		logger.Log.Errorf("❌ Error writing image %s: %v", file, err)
	}
}
