package service

import (
	"context"
	"fmt"
	"strings"

	"invitation-studio/export"
	"invitation-studio/models"
)

// ImageExporter is the subset of export.Exporter used here
type ImageExporter interface {
	ExportImage(ctx context.Context, req export.Request) (export.Artifact, error)
	ExportPDF(ctx context.Context, req export.Request) (export.Artifact, error)
}

// ExportService renders an invitation and hands it to the exporter
type ExportService struct {
	render   *RenderService
	exporter ImageExporter
}

// NewExportService creates a new ExportService
func NewExportService(render *RenderService, exporter ImageExporter) *ExportService {
	return &ExportService{render: render, exporter: exporter}
}

// Export renders d and exports it as format ("png" or "pdf", default png)
func (s *ExportService) Export(ctx context.Context, d models.CustomizationData, format string) (export.Artifact, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = export.FormatPNG
	}
	if format != export.FormatPNG && format != export.FormatPDF {
		return export.Artifact{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	req, err := s.buildRequest(d)
	if err != nil {
		return export.Artifact{}, err
	}
	if format == export.FormatPDF {
		return s.exporter.ExportPDF(ctx, req)
	}
	return s.exporter.ExportImage(ctx, req)
}

func (s *ExportService) buildRequest(d models.CustomizationData) (export.Request, error) {
	card, err := s.render.RenderCard(d)
	if err != nil {
		return export.Request{}, err
	}
	page, err := s.render.RenderPage(d, RenderOptions{})
	if err != nil {
		return export.Request{}, err
	}

	// Filenames use the draft's own event name, not the display default
	name := strings.TrimSpace(d.EventName)
	if name == "" {
		name = "invitation"
	}
	return export.Request{
		Document:   page,
		RegionHTML: card,
		RegionID:   export.DefaultRegionID,
		Filename:   name,
		Width:      export.DefaultWidth,
		Height:     export.DefaultHeight,
	}, nil
}
