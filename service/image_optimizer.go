package service

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"invitation-studio/logger"
)

// Image sizes served for template images
const (
	SizeThumb  = "thumb"
	SizeMedium = "medium"
)

const (
	// Quality settings
	qualityThumb  = 60
	qualityMedium = 75
	// Size settings (max dimension)
	maxSizeThumb  = 300
	maxSizeMedium = 800
)

// ImageOptimizer resizes template images to JPEG and keeps the results in an on-disk cache
type ImageOptimizer struct {
	cacheDir string
}

// NewImageOptimizer creates an optimizer caching under cacheDir
func NewImageOptimizer(cacheDir string) *ImageOptimizer {
	return &ImageOptimizer{cacheDir: cacheDir}
}

// EnsureCacheDir ensures the cache directory exists, creates it if it doesn't
func (o *ImageOptimizer) EnsureCacheDir() error {
	if err := os.MkdirAll(o.cacheDir, 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	return nil
}

// CachePath returns the cache file path for a template image at size.
// The source extension is part of the name so x.png and x.jpg never share an entry.
func (o *ImageOptimizer) CachePath(filename, size string) string {
	name := filepath.Base(filename)
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	return filepath.Join(o.cacheDir, fmt.Sprintf("template_%s_%s_%s.jpg", base, strings.TrimPrefix(ext, "."), size))
}

// ReadFromCache returns the cached bytes, or false when nothing is cached
func (o *ImageOptimizer) ReadFromCache(cachePath string) ([]byte, bool) {
	data, err := os.ReadFile(cachePath)
	if err != nil {
		return nil, false
	}
	return data, true
}

// SaveToCache saves an image to the cache
func (o *ImageOptimizer) SaveToCache(cachePath string, imageData []byte) error {
	if err := os.MkdirAll(filepath.Dir(cachePath), 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	if err := os.WriteFile(cachePath, imageData, 0644); err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}

	logger.Log.Debugf("💾 Image cached: %s", cachePath)
	return nil
}

// Optimize decodes imageData, fits it inside the size's max dimension and
// re-encodes it as JPEG. Unknown sizes are treated as medium.
func (o *ImageOptimizer) Optimize(imageData []byte, size string) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	maxDim, quality := maxSizeMedium, qualityMedium
	switch size {
	case SizeThumb:
		maxDim, quality = maxSizeThumb, qualityThumb
	case SizeMedium:
	default:
		logger.Log.Warnf("⚠️ Unknown size '%s', defaulting to medium", size)
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxDim || bounds.Dy() > maxDim {
		logger.Log.Debugf("🔄 Resizing %s image %dx%d to fit %d", format, bounds.Dx(), bounds.Dy(), maxDim)
		img = imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode to JPEG: %w", err)
	}
	return buf.Bytes(), nil
}
