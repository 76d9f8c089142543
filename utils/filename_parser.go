package utils

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// ImageVariant is the kind of template image a file holds
type ImageVariant string

const (
	VariantThumb   ImageVariant = "thumb"
	VariantPreview ImageVariant = "preview"
)

// TemplateImageName is the parsed form of a template image file name
type TemplateImageName struct {
	Base    string // e.g. wedding-elegant
	Variant ImageVariant
	Index   int // preview index, 0 for thumbnails
	Ext     string
}

var templateImageRegex = regexp.MustCompile(`^([a-z0-9-]+)-(thumb|\d+)\.(jpg|jpeg|png)$`)

// ParseTemplateImageName parses a filename following the pattern:
// BASE-thumb.EXT or BASE-N.EXT
// Example: wedding-elegant-thumb.jpg, wedding-elegant-2.jpg
func ParseTemplateImageName(filename string) (*TemplateImageName, error) {
	name := strings.ToLower(filepath.Base(filename))

	matches := templateImageRegex.FindStringSubmatch(name)
	if len(matches) != 4 {
		return nil, fmt.Errorf("invalid template image name: expected BASE-thumb.jpg or BASE-N.jpg, got %s", filename)
	}

	parsed := &TemplateImageName{Base: matches[1], Ext: matches[3], Variant: VariantThumb}
	if matches[2] != "thumb" {
		parsed.Variant = VariantPreview
		if _, err := fmt.Sscanf(matches[2], "%d", &parsed.Index); err != nil {
			return nil, fmt.Errorf("invalid preview index in %s: %w", filename, err)
		}
	}
	return parsed, nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9 ._&'()-]+`)

// SanitizeFilename makes a user-provided name safe for a Content-Disposition header.
// Empty results fall back to "invitation".
func SanitizeFilename(name string) string {
	cleaned := unsafeFilenameChars.ReplaceAllString(name, "")
	cleaned = strings.Trim(strings.TrimSpace(cleaned), ".")
	if cleaned == "" {
		return "invitation"
	}
	return cleaned
}
