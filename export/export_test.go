package export

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRasterizer struct {
	capture    []byte
	captureErr error
	pdf        []byte
	printErr   error

	printedDoc string
	regionID   string
	viewport   Viewport
}

func (f *fakeRasterizer) CaptureRegion(ctx context.Context, document, regionID string, vp Viewport) ([]byte, error) {
	f.regionID = regionID
	f.viewport = vp
	return f.capture, f.captureErr
}

func (f *fakeRasterizer) PrintPage(ctx context.Context, document string) ([]byte, error) {
	f.printedDoc = document
	return f.pdf, f.printErr
}

func pngOf(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.Black)
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestExportImage_Rendered(t *testing.T) {
	capture := pngOf(t, 40, 50)
	raster := &fakeRasterizer{capture: capture}
	e := New(raster, time.Second)

	a, err := e.ExportImage(context.Background(), Request{Document: "<html></html>", Filename: "Ann's Gala"})
	require.NoError(t, err)

	assert.False(t, a.Degraded)
	assert.Equal(t, "Ann's Gala.png", a.Filename)
	assert.Equal(t, "image/png", a.ContentType)
	assert.Equal(t, capture, a.Data)
	assert.Equal(t, DefaultRegionID, raster.regionID)
	assert.Equal(t, Viewport{Width: DefaultWidth, Height: DefaultHeight}, raster.viewport)
}

func TestExportImage_FallsBackToPlaceholder(t *testing.T) {
	e := New(&fakeRasterizer{captureErr: errors.New("chrome not found")}, time.Second)

	a, err := e.ExportImage(context.Background(), Request{Filename: "", Width: 300, Height: 200})
	require.NoError(t, err)

	assert.True(t, a.Degraded)
	assert.Equal(t, "invitation.png", a.Filename)
	cfg, err := png.DecodeConfig(bytes.NewReader(a.Data))
	require.NoError(t, err)
	assert.Equal(t, 300, cfg.Width)
	assert.Equal(t, 200, cfg.Height)
}

func TestExportImage_NilRasterizer(t *testing.T) {
	a, err := New(nil, 0).ExportImage(context.Background(), Request{})
	require.NoError(t, err)
	assert.True(t, a.Degraded)
}

func TestExportPDF_Rendered(t *testing.T) {
	raster := &fakeRasterizer{capture: pngOf(t, 800, 1000), pdf: []byte("%PDF-1.4")}
	e := New(raster, time.Second)

	a, err := e.ExportPDF(context.Background(), Request{Filename: "gala"})
	require.NoError(t, err)

	assert.False(t, a.Degraded)
	assert.Equal(t, "gala.pdf", a.Filename)
	assert.Equal(t, "application/pdf", a.ContentType)
	assert.Equal(t, []byte("%PDF-1.4"), a.Data)
	assert.Contains(t, raster.printedDoc, "size: A4")
	assert.Contains(t, raster.printedDoc, "width: 180.000mm")
	assert.Contains(t, raster.printedDoc, "data:image/png;base64,")
}

func TestExportPDF_FallsBackToPrintDocument(t *testing.T) {
	raster := &fakeRasterizer{capture: pngOf(t, 10, 10), printErr: errors.New("print failed")}
	e := New(raster, time.Second)

	a, err := e.ExportPDF(context.Background(), Request{
		Filename:   "gala",
		RegionHTML: `<div id="invitation-preview">Gala</div>`,
	})
	require.NoError(t, err)

	assert.True(t, a.Degraded)
	assert.Equal(t, "gala.html", a.Filename)
	assert.True(t, strings.HasPrefix(a.ContentType, "text/html"))
	body := string(a.Data)
	assert.Contains(t, body, `<div id="invitation-preview">Gala</div>`)
	assert.Contains(t, body, "@page { margin: 0.5in; size: A4; }")
	assert.Contains(t, body, "window.print()")
}

func TestExportPDF_CaptureNotAnImage(t *testing.T) {
	raster := &fakeRasterizer{capture: []byte("not a png"), pdf: []byte("%PDF")}

	a, err := New(raster, time.Second).ExportPDF(context.Background(), Request{})
	require.NoError(t, err)
	assert.True(t, a.Degraded)
	assert.Empty(t, raster.printedDoc)
}

func TestPlaceholder_HasDarkTextPixels(t *testing.T) {
	data, err := Placeholder(DefaultWidth, DefaultHeight)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	dark := 0
	for y := DefaultHeight/2 - 20; y < DefaultHeight/2+50; y++ {
		for x := 0; x < DefaultWidth; x++ {
			r, _, _, _ := img.At(x, y).RGBA()
			if r < 0x8000 {
				dark++
			}
		}
	}
	assert.Greater(t, dark, 0)

	r, g, b, _ := img.At(0, 0).RGBA()
	assert.Equal(t, []uint32{0xffff, 0xffff, 0xffff}, []uint32{r, g, b})
}

func TestPlaceholder_InvalidSize(t *testing.T) {
	_, err := Placeholder(0, 10)
	assert.Error(t, err)
}
