package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invitation-studio/customization"
	"invitation-studio/models"
)

func newTestRenderer(t *testing.T) *RenderService {
	t.Helper()
	r, err := NewRenderService()
	require.NoError(t, err)
	return r
}

func TestRenderPage_AppliesDefaults(t *testing.T) {
	html, err := newTestRenderer(t).RenderPage(customization.New("1"), RenderOptions{ShowFooter: true})
	require.NoError(t, err)

	assert.Contains(t, html, "Your Event Name")
	assert.Contains(t, html, "Host Name(s)")
	assert.Contains(t, html, "Sunday, June 15, 2025")
	assert.Contains(t, html, "4:00 PM")
	assert.Contains(t, html, `id="invitation-preview"`)
	assert.Contains(t, html, "#8B5CF6")
	assert.Contains(t, html, "Created with Invitation Studio")
}

func TestRenderCard_EscapesUserText(t *testing.T) {
	d := customization.New("1")
	d.EventName = `<script>alert(1)</script>`
	d.CustomFields["dressCode"] = "Black tie"

	html, err := newTestRenderer(t).RenderCard(d)
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.Contains(t, html, "dressCode")
	assert.NotContains(t, html, "<html")
}

func TestRenderCard_BackgroundOnlyForImageDataURIs(t *testing.T) {
	r := newTestRenderer(t)
	d := customization.New("1")

	d.BackgroundImage = "data:image/png;base64,iVBORw0KGgo="
	html, err := r.RenderCard(d)
	require.NoError(t, err)
	assert.Contains(t, html, `src="data:image/png;base64,iVBORw0KGgo="`)

	d.BackgroundImage = "javascript:alert(1)"
	html, err = r.RenderCard(d)
	require.NoError(t, err)
	assert.NotContains(t, html, "javascript:")
	assert.NotContains(t, html, "invitation-background")
}

func TestRenderPage_Countdown(t *testing.T) {
	html, err := newTestRenderer(t).RenderPage(customization.New("1"), RenderOptions{
		Countdown: &models.Countdown{Days: 12, Hours: 3, Minutes: 4, Seconds: 5},
	})
	require.NoError(t, err)

	assert.Contains(t, html, "<strong>12</strong>Days")
	assert.NotContains(t, html, "Created with Invitation Studio")
}
