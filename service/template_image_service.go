package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"invitation-studio/logger"
	"invitation-studio/utils"
)

// ErrImageNotFound is returned for a template image the source does not have
var ErrImageNotFound = errors.New("image not found")

// ImageSource provides the original template images by file name
type ImageSource interface {
	Read(ctx context.Context, name string) ([]byte, error)
}

// LocalImageSource reads template images from a directory
type LocalImageSource struct {
	dir string
}

// NewLocalImageSource creates a source rooted at dir
func NewLocalImageSource(dir string) *LocalImageSource {
	return &LocalImageSource{dir: dir}
}

// Ensure LocalImageSource implements ImageSource
var _ ImageSource = (*LocalImageSource)(nil)

// Read returns the file called name inside the directory
func (s *LocalImageSource) Read(_ context.Context, name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, filepath.Base(name)))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrImageNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read image %s: %w", name, err)
	}
	return data, nil
}

// TemplateImageService serves optimized catalog thumbnails and preview images
type TemplateImageService struct {
	source    ImageSource
	optimizer *ImageOptimizer
}

// NewTemplateImageService creates a new TemplateImageService
func NewTemplateImageService(source ImageSource, optimizer *ImageOptimizer) *TemplateImageService {
	return &TemplateImageService{source: source, optimizer: optimizer}
}

// Image returns the optimized JPEG for filename. An empty size picks thumb for
// thumbnails and medium for preview images.
func (s *TemplateImageService) Image(ctx context.Context, filename, size string) ([]byte, error) {
	parsed, err := utils.ParseTemplateImageName(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageNotFound, err)
	}

	size = strings.ToLower(size)
	if size == "" {
		size = SizeMedium
		if parsed.Variant == utils.VariantThumb {
			size = SizeThumb
		}
	}
	if size != SizeThumb && size != SizeMedium {
		size = SizeMedium
	}

	cachePath := s.optimizer.CachePath(filename, size)
	if data, ok := s.optimizer.ReadFromCache(cachePath); ok {
		logger.Log.Debugf("🔍 Cache hit: %s", cachePath)
		return data, nil
	}

	original, err := s.source.Read(ctx, filepath.Base(filename))
	if err != nil {
		return nil, err
	}

	optimized, err := s.optimizer.Optimize(original, size)
	if err != nil {
		return nil, fmt.Errorf("failed to optimize %s: %w", filename, err)
	}

	if err := s.optimizer.SaveToCache(cachePath, optimized); err != nil {
		logger.Log.Warnf("⚠️ Failed to cache image: %v", err)
	}
	return optimized, nil
}
