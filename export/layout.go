package export

import (
	"fmt"
	"math"
)

// A4 page geometry in millimetres
const (
	A4WidthMM    = 210.0
	A4HeightMM   = 297.0
	PageMarginMM = 15.0

	// CSS reference pixel: 96 per inch
	PixelsPerMM = 96.0 / 25.4
)

// Placement is where an image lands on an A4 page, in millimetres
type Placement struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	Scale  float64
}

// FitToPage scales an image of pxWidth × pxHeight CSS pixels into the A4 page
// inside the margins, keeping its aspect ratio, never enlarging it, and centres it.
func FitToPage(pxWidth, pxHeight int) (Placement, error) {
	if pxWidth <= 0 || pxHeight <= 0 {
		return Placement{}, fmt.Errorf("invalid image size %dx%d", pxWidth, pxHeight)
	}

	widthMM := float64(pxWidth) / PixelsPerMM
	heightMM := float64(pxHeight) / PixelsPerMM

	maxWidth := A4WidthMM - 2*PageMarginMM
	maxHeight := A4HeightMM - 2*PageMarginMM

	scale := math.Min(math.Min(maxWidth/widthMM, maxHeight/heightMM), 1)

	w := widthMM * scale
	h := heightMM * scale
	return Placement{
		X:      (A4WidthMM - w) / 2,
		Y:      (A4HeightMM - h) / 2,
		Width:  w,
		Height: h,
		Scale:  scale,
	}, nil
}
