package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"invitation-studio/customization"
	"invitation-studio/export"
	"invitation-studio/logger"
	"invitation-studio/service"
)

// maxBodyBytes bounds JSON request bodies; background uploads are the largest
const maxBodyBytes = 8 << 20

// errorResponse is the body of every failed JSON request
type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorf("❌ Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// decodeJSON reads the request body into dst and answers 400 when it cannot
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return false
	}
	return true
}

// writeServiceError maps service sentinels to status codes
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrTemplateNotFound),
		errors.Is(err, service.ErrInvitationNotFound),
		errors.Is(err, service.ErrImageNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, customization.ErrUnknownField),
		errors.Is(err, service.ErrInvalidImage),
		errors.Is(err, service.ErrInvalidRSVP),
		errors.Is(err, service.ErrPresetNotFound),
		errors.Is(err, service.ErrUnsupportedFormat),
		errors.Is(err, service.ErrEmptyCart):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrPaymentUnavailable):
		writeError(w, http.StatusBadGateway, service.PaymentFailedMessage)
	case errors.Is(err, service.ErrSlugCollision):
		writeError(w, http.StatusServiceUnavailable, "Could not reserve a link for this invitation. Please try again.")
	default:
		logger.Log.Errorf("❌ Internal error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// writeArtifact sends an exported file as a download
func writeArtifact(w http.ResponseWriter, art export.Artifact) {
	w.Header().Set("Content-Type", art.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", art.Filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(art.Data)))
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	if art.Degraded {
		w.Header().Set("X-Export-Degraded", "true")
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(art.Data); err != nil {
		logger.Log.Errorf("❌ Error writing %s: %v", art.Filename, err)
	}
}

func writeHTML(w http.ResponseWriter, status int, html string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(html)); err != nil {
		logger.Log.Errorf("❌ Error writing HTML response: %v", err)
	}
}
