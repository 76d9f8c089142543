package controller

import (
	"net/http"

	"invitation-studio/models"
	"invitation-studio/service"
)

// ShareController handles link sharing. The server has no share sheet, so
// sharing always goes through the clipboard and the text to copy is returned.
type ShareController struct{}

// NewShareController creates a new ShareController
func NewShareController() *ShareController {
	return &ShareController{}
}

// Share handles POST /api/share
// Example request: {"url": "https://example.com/invite/abc-123456", "title": "Ana's Party"}
// Example response: {"success": true, "message": "Link copied to clipboard!", "copyText": "https://...", "title": "Ana's Party", "text": ""}
func (c *ShareController) Share(w http.ResponseWriter, r *http.Request) {
	var req models.ShareRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	clip := &service.TextClipboard{}
	res := service.NewShareService(nil, clip).Share(r.Context(), req)
	if res == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	status := http.StatusOK
	if !res.Success {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, models.ShareResponse{
		ShareResult: *res,
		CopyText:    clip.Text,
		Title:       req.Title,
		Text:        req.Text,
	})
}
