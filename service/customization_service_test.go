package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invitation-studio/customization"
	"invitation-studio/models"
	"invitation-studio/repository"
	"invitation-studio/utils"
)

func pngDataURI(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return utils.EncodeDataURI("image/png", buf.Bytes())
}

func TestCustomizationService_LoadDefaults(t *testing.T) {
	d, err := newTestServices(t).customizations.Load(context.Background(), "c1", "3")
	require.NoError(t, err)

	assert.Equal(t, "3", d.TemplateID)
	assert.Equal(t, customization.DefaultColors(), d.Colors)
	assert.Equal(t, customization.DefaultFonts(), d.Fonts)
	assert.Empty(t, d.EventName)
}

func TestCustomizationService_UnknownTemplate(t *testing.T) {
	_, err := newTestServices(t).customizations.Load(context.Background(), "c1", "404")
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestCustomizationService_CorruptDraftLoadsDefaults(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)
	key := repository.ClientKey("c1", repository.CustomizationKey("1"))
	require.NoError(t, s.store.Set(ctx, key, "not json"))

	d, err := s.customizations.Load(ctx, "c1", "1")
	require.NoError(t, err)
	assert.Equal(t, customization.New("1"), d)
}

func TestCustomizationService_UpdatePersists(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)

	_, err := s.customizations.Update(ctx, "c1", "1", "colors.primary", "#FF0000")
	require.NoError(t, err)
	_, err = s.customizations.Update(ctx, "c1", "1", "eventName", "Gala")
	require.NoError(t, err)

	d, err := s.customizations.Load(ctx, "c1", "1")
	require.NoError(t, err)
	assert.Equal(t, "#FF0000", d.Colors.Primary)
	assert.Equal(t, customization.DefaultSecondary, d.Colors.Secondary)
	assert.Equal(t, "Gala", d.EventName)
}

func TestCustomizationService_UnknownField(t *testing.T) {
	_, err := newTestServices(t).customizations.Update(context.Background(), "c1", "1", "colors.border", "#000")
	assert.ErrorIs(t, err, customization.ErrUnknownField)
}

func TestCustomizationService_SyncsCartLine(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)
	_, err := s.carts.AddItem(ctx, "c1", "1")
	require.NoError(t, err)

	_, err = s.customizations.Update(ctx, "c1", "1", "hostName", "Ana")
	require.NoError(t, err)

	c, err := s.carts.Get(ctx, "c1")
	require.NoError(t, err)
	item, ok := c.Find("1")
	require.True(t, ok)
	require.NotNil(t, item.Customization.HostName)
	assert.Equal(t, "Ana", *item.Customization.HostName)
}

func TestCustomizationService_DoesNotAddToCart(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)

	_, err := s.customizations.Update(ctx, "c1", "2", "hostName", "Ana")
	require.NoError(t, err)

	c, err := s.carts.Get(ctx, "c1")
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
}

func TestCustomizationService_ApplyPreset(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)

	d, err := s.customizations.ApplyPreset(ctx, "c1", "1", "ocean blue")
	require.NoError(t, err)
	assert.NotEqual(t, customization.DefaultPrimary, d.Colors.Primary)

	_, err = s.customizations.ApplyPreset(ctx, "c1", "1", "Neon Nights")
	assert.ErrorIs(t, err, ErrPresetNotFound)
}

func TestCustomizationService_BackgroundImage(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)

	d, err := s.customizations.SetBackgroundImage(ctx, "c1", "1", pngDataURI(t, 2000, 1000))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(d.BackgroundImage, "data:image/jpeg;base64,"))

	_, data, err := utils.DecodeDataURI(d.BackgroundImage)
	require.NoError(t, err)
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 1600, cfg.Width)
	assert.Equal(t, 800, cfg.Height)

	d, err = s.customizations.RemoveBackgroundImage(ctx, "c1", "1")
	require.NoError(t, err)
	assert.Empty(t, d.BackgroundImage)
}

func TestCustomizationService_BackgroundImageRejected(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)

	_, err := s.customizations.SetBackgroundImage(ctx, "c1", "1", utils.EncodeDataURI("text/plain", []byte("hello")))
	assert.ErrorIs(t, err, ErrInvalidImage)

	big := utils.EncodeDataURI("image/png", make([]byte, MaxBackgroundImageBytes+1))
	_, err = s.customizations.SetBackgroundImage(ctx, "c1", "1", big)
	assert.ErrorIs(t, err, ErrInvalidImage)

	_, err = s.customizations.SetBackgroundImage(ctx, "c1", "1", "not a data uri")
	assert.ErrorIs(t, err, ErrInvalidImage)
}

func TestCustomizationService_Patch(t *testing.T) {
	ctx := context.Background()
	s := newTestServices(t)
	_, err := s.carts.AddItem(ctx, "c1", "3")
	require.NoError(t, err)

	accent := "#111111"
	venue := "Rooftop"
	bg := "data:image/png;base64,AAAA"
	d, err := s.customizations.Patch(ctx, "c1", "3", models.CustomizationPatch{
		Venue:           &venue,
		Colors:          &models.ColorsPatch{Accent: &accent},
		BackgroundImage: &bg,
		CustomFields:    map[string]string{"dressCode": "Casual"},
	})
	require.NoError(t, err)

	assert.Equal(t, "3", d.TemplateID)
	assert.Equal(t, "Rooftop", d.Venue)
	assert.Equal(t, "#111111", d.Colors.Accent)
	assert.Equal(t, customization.DefaultColors().Primary, d.Colors.Primary)
	assert.Empty(t, d.BackgroundImage)
	assert.Equal(t, "Casual", d.CustomFields["dressCode"])

	c, err := s.carts.Get(ctx, "c1")
	require.NoError(t, err)
	item, ok := c.Find("3")
	require.True(t, ok)
	require.NotNil(t, item.Customization.Venue)
	assert.Equal(t, "Rooftop", *item.Customization.Venue)
}

func TestCustomizationService_ConcurrentEditsAreKept(t *testing.T) {
	ctx := context.Background()
	s := newSlowTestServices(t)
	_, err := s.carts.AddItem(ctx, "c1", "2")
	require.NoError(t, err)

	const n = 10
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.customizations.Update(ctx, "c1", "2", fmt.Sprintf("customFields.f%d", i), "x")
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	d, err := s.customizations.Load(ctx, "c1", "2")
	require.NoError(t, err)
	assert.Len(t, d.CustomFields, n)

	c, err := s.carts.Get(ctx, "c1")
	require.NoError(t, err)
	item, ok := c.Find("2")
	require.True(t, ok)
	assert.Len(t, item.Customization.CustomFields, n)
}
