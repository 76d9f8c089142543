package export

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Placeholder text drawn when the invitation could not be rasterized
const (
	PlaceholderTitle = "Invitation Preview"
	PlaceholderHint  = "(Use browser print for full version)"
)

// text is drawn with a 7x13 bitmap face and enlarged by this factor
const placeholderTextScale = 2

// Placeholder draws a white width × height PNG with the two placeholder lines
// centred, the second one 30px below the first.
func Placeholder(width, height int) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid placeholder size %dx%d", width, height)
	}

	canvas := imaging.New(width, height, color.White)

	for i, line := range []string{PlaceholderTitle, PlaceholderHint} {
		txt := renderLine(line)
		b := txt.Bounds()
		x := (width - b.Dx()) / 2
		y := height/2 - b.Dy()/2 + i*30
		canvas = imaging.Overlay(canvas, txt, image.Pt(x, y), 1.0)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, canvas, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode placeholder: %w", err)
	}
	return buf.Bytes(), nil
}

// renderLine draws s in black on a transparent strip and scales it up
func renderLine(s string) image.Image {
	face := basicfont.Face7x13
	w := font.MeasureString(face, s).Ceil()
	h := face.Metrics().Height.Ceil()

	strip := image.NewNRGBA(image.Rect(0, 0, w, h))
	d := &font.Drawer{
		Dst:  strip,
		Src:  image.NewUniform(color.Black),
		Face: face,
		Dot:  fixed.P(0, face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)

	return imaging.Resize(strip, w*placeholderTextScale, h*placeholderTextScale, imaging.NearestNeighbor)
}
