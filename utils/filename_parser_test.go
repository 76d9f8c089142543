package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTemplateImageName(t *testing.T) {
	thumb, err := ParseTemplateImageName("/templates/wedding-elegant-thumb.jpg")
	require.NoError(t, err)
	assert.Equal(t, TemplateImageName{Base: "wedding-elegant", Variant: VariantThumb, Ext: "jpg"}, *thumb)

	preview, err := ParseTemplateImageName("Birthday-Modern-2.PNG")
	require.NoError(t, err)
	assert.Equal(t, TemplateImageName{Base: "birthday-modern", Variant: VariantPreview, Index: 2, Ext: "png"}, *preview)
}

func TestParseTemplateImageName_Invalid(t *testing.T) {
	for _, name := range []string{"wedding.jpg", "wedding-elegant-thumb.gif", "wedding elegant-1.jpg", ""} {
		_, err := ParseTemplateImageName(name)
		assert.Error(t, err, name)
	}
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "Sarah & John's Wedding", SanitizeFilename("Sarah & John's Wedding"))
	assert.Equal(t, "Partyetcpasswd", SanitizeFilename(`Party"/etc/passwd`))
	assert.Equal(t, "invitation", SanitizeFilename("  ...  "))
	assert.Equal(t, "invitation", SanitizeFilename("🎉"))
}
