package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invitation-studio/models"
)

type fakeSharer struct {
	err   error
	calls int
}

func (f *fakeSharer) Share(context.Context, models.ShareRequest) error {
	f.calls++
	return f.err
}

type failingClipboard struct{}

func (failingClipboard) Copy(context.Context, string) error { return errors.New("denied") }

func TestShare_NativeSharer(t *testing.T) {
	native := &fakeSharer{}
	res := NewShareService(native, &TextClipboard{}).Share(context.Background(), models.ShareRequest{URL: "http://x/invite/a"})
	assert.Nil(t, res)
	assert.Equal(t, 1, native.calls)
}

func TestShare_NativeSharerCancelled(t *testing.T) {
	native := &fakeSharer{err: errors.New("AbortError")}
	clip := &TextClipboard{}
	res := NewShareService(native, clip).Share(context.Background(), models.ShareRequest{URL: "http://x/invite/a"})
	assert.Nil(t, res)
	assert.Empty(t, clip.Text)
}

func TestShare_ClipboardFallback(t *testing.T) {
	clip := &TextClipboard{}
	res := NewShareService(nil, clip).Share(context.Background(), models.ShareRequest{URL: "http://x/invite/a"})
	require.NotNil(t, res)
	assert.True(t, res.Success)
	assert.Equal(t, LinkCopiedMessage, res.Message)
	assert.Equal(t, "http://x/invite/a", clip.Text)
}

func TestShare_ClipboardFailure(t *testing.T) {
	res := NewShareService(nil, failingClipboard{}).Share(context.Background(), models.ShareRequest{URL: "http://x"})
	require.NotNil(t, res)
	assert.False(t, res.Success)
	assert.Equal(t, LinkCopyFailedMessage, res.Message)

	res = NewShareService(nil, &TextClipboard{}).Share(context.Background(), models.ShareRequest{})
	require.NotNil(t, res)
	assert.False(t, res.Success)
}
