package service

import (
	"context"
	"errors"

	"invitation-studio/logger"
	"invitation-studio/models"
)

// Share outcome messages
const (
	LinkCopiedMessage     = "Link copied to clipboard!"
	LinkCopyFailedMessage = "Failed to copy link"
)

// NativeSharer is a platform share sheet
type NativeSharer interface {
	Share(ctx context.Context, req models.ShareRequest) error
}

// Clipboard receives copied text
type Clipboard interface {
	Copy(ctx context.Context, text string) error
}

// ShareService shares invitation links through the native sharer when there
// is one and through the clipboard otherwise
type ShareService struct {
	native    NativeSharer
	clipboard Clipboard
}

// NewShareService creates a new ShareService. native may be nil.
func NewShareService(native NativeSharer, clipboard Clipboard) *ShareService {
	return &ShareService{native: native, clipboard: clipboard}
}

// Share returns nil when the native sharer handled the request, including
// when it failed or was cancelled. Otherwise it reports the clipboard outcome.
func (s *ShareService) Share(ctx context.Context, req models.ShareRequest) *models.ShareResult {
	if s.native != nil {
		if err := s.native.Share(ctx, req); err != nil {
			logger.Log.WithField("url", req.URL).Debugf("Native share did not complete: %v", err)
		}
		return nil
	}

	if s.clipboard == nil {
		return &models.ShareResult{Success: false, Message: LinkCopyFailedMessage}
	}
	if err := s.clipboard.Copy(ctx, req.URL); err != nil {
		logger.Log.WithField("url", req.URL).Warnf("⚠️ Failed to copy link: %v", err)
		return &models.ShareResult{Success: false, Message: LinkCopyFailedMessage}
	}
	return &models.ShareResult{Success: true, Message: LinkCopiedMessage}
}

// ErrNothingToCopy is returned by TextClipboard for empty text
var ErrNothingToCopy = errors.New("nothing to copy")

// TextClipboard keeps the copied text so it can be returned to the caller
type TextClipboard struct {
	Text string
}

// Ensure TextClipboard implements Clipboard
var _ Clipboard = (*TextClipboard)(nil)

// Copy stores text
func (c *TextClipboard) Copy(_ context.Context, text string) error {
	if text == "" {
		return ErrNothingToCopy
	}
	c.Text = text
	return nil
}
