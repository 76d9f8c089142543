// Package export turns a rendered invitation into a downloadable PNG or PDF.
// When the headless browser path fails the caller still gets a degraded
// artifact: a placeholder PNG, or a printable HTML page instead of a PDF.
package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"time"

	"invitation-studio/logger"
	"invitation-studio/metrics"
	"invitation-studio/utils"
)

// Formats
const (
	FormatPNG = "png"
	FormatPDF = "pdf"
)

// DefaultRegionID is the element id of the invitation card in rendered pages
const DefaultRegionID = "invitation-preview"

// Default region size used when the caller does not know it
const (
	DefaultWidth  = 800
	DefaultHeight = 1000
)

// Viewport is the browser window size used for rendering, in CSS pixels
type Viewport struct {
	Width  int
	Height int
}

// Rasterizer renders HTML documents. Implementations must be safe for concurrent use.
type Rasterizer interface {
	// CaptureRegion loads document and returns a PNG of the element with id regionID
	CaptureRegion(ctx context.Context, document, regionID string, vp Viewport) ([]byte, error)
	// PrintPage loads document and prints it to an A4 PDF with zero margins
	PrintPage(ctx context.Context, document string) ([]byte, error)
}

// Request describes one export
type Request struct {
	Document   string // full HTML page containing the region
	RegionHTML string // markup of the region alone, used by the print fallback
	RegionID   string
	Filename   string // base name without extension
	Width      int
	Height     int
}

// Artifact is an exported file
type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte
	Degraded    bool
}

// Exporter produces artifacts through a Rasterizer
type Exporter struct {
	raster  Rasterizer
	timeout time.Duration
}

// New creates an Exporter. A nil rasterizer makes every export degraded.
func New(raster Rasterizer, timeout time.Duration) *Exporter {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Exporter{raster: raster, timeout: timeout}
}

var errNoRasterizer = errors.New("no rasterizer configured")

// ExportImage returns a PNG of the region, or a placeholder PNG when rendering fails
func (e *Exporter) ExportImage(ctx context.Context, req Request) (Artifact, error) {
	req = req.withDefaults()
	name := utils.SanitizeFilename(req.Filename)

	data, err := e.capture(ctx, req)
	if err == nil {
		metrics.RecordExport(FormatPNG, "rendered")
		return Artifact{Filename: name + ".png", ContentType: "image/png", Data: data}, nil
	}

	logger.Log.WithField("filename", name).Warnf("⚠️ Image export failed, using placeholder: %v", err)
	placeholder, perr := Placeholder(req.Width, req.Height)
	if perr != nil {
		metrics.RecordExport(FormatPNG, "failed")
		return Artifact{}, fmt.Errorf("failed to export image: %v; placeholder: %w", err, perr)
	}

	metrics.RecordExport(FormatPNG, "degraded")
	return Artifact{Filename: name + ".png", ContentType: "image/png", Data: placeholder, Degraded: true}, nil
}

// ExportPDF returns an A4 PDF with the region centred inside the margins, or a
// printable HTML document when rendering fails
func (e *Exporter) ExportPDF(ctx context.Context, req Request) (Artifact, error) {
	req = req.withDefaults()
	name := utils.SanitizeFilename(req.Filename)

	data, err := e.renderPDF(ctx, req)
	if err == nil {
		metrics.RecordExport(FormatPDF, "rendered")
		return Artifact{Filename: name + ".pdf", ContentType: "application/pdf", Data: data}, nil
	}

	logger.Log.WithField("filename", name).Warnf("⚠️ PDF export failed, using print document: %v", err)
	doc, perr := PrintDocument(name, req.RegionHTML)
	if perr != nil {
		metrics.RecordExport(FormatPDF, "failed")
		return Artifact{}, fmt.Errorf("failed to export pdf: %v; print document: %w", err, perr)
	}

	metrics.RecordExport(FormatPDF, "degraded")
	return Artifact{Filename: name + ".html", ContentType: "text/html; charset=utf-8", Data: doc, Degraded: true}, nil
}

func (e *Exporter) capture(ctx context.Context, req Request) ([]byte, error) {
	if e.raster == nil {
		return nil, errNoRasterizer
	}
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	data, err := e.raster.CaptureRegion(ctx, req.Document, req.RegionID, Viewport{Width: req.Width, Height: req.Height})
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errors.New("empty capture")
	}
	return data, nil
}

func (e *Exporter) renderPDF(ctx context.Context, req Request) ([]byte, error) {
	pngData, err := e.capture(ctx, req)
	if err != nil {
		return nil, err
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(pngData))
	if err != nil {
		return nil, fmt.Errorf("failed to read captured image: %w", err)
	}
	placement, err := FitToPage(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}

	page, err := PDFPageDocument(pngData, placement)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()
	pdf, err := e.raster.PrintPage(ctx, page)
	if err != nil {
		return nil, err
	}
	if len(pdf) == 0 {
		return nil, errors.New("empty pdf")
	}
	return pdf, nil
}

func (r Request) withDefaults() Request {
	if r.RegionID == "" {
		r.RegionID = DefaultRegionID
	}
	if r.Width <= 0 {
		r.Width = DefaultWidth
	}
	if r.Height <= 0 {
		r.Height = DefaultHeight
	}
	if r.Filename == "" {
		r.Filename = "invitation"
	}
	return r
}
