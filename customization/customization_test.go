package customization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invitation-studio/models"
)

func strPtr(s string) *string { return &s }

func TestNew_Defaults(t *testing.T) {
	d := New("7")

	assert.Equal(t, "7", d.TemplateID)
	assert.Equal(t, models.Colors{Primary: "#8B5CF6", Secondary: "#F3F4F6", Accent: "#F59E0B"}, d.Colors)
	assert.Equal(t, models.Fonts{Heading: "Playfair Display", Body: "Inter"}, d.Fonts)
	assert.Empty(t, d.EventName)
	assert.NotNil(t, d.CustomFields)
}

func TestUpdate_NestedColorKeepsSiblings(t *testing.T) {
	d := New("1")

	got, err := Update(d, "colors.primary", "#E11D48")
	require.NoError(t, err)

	assert.Equal(t, "#E11D48", got.Colors.Primary)
	assert.Equal(t, DefaultSecondary, got.Colors.Secondary)
	assert.Equal(t, DefaultAccent, got.Colors.Accent)
	assert.Equal(t, DefaultPrimary, d.Colors.Primary, "input draft must not change")
}

func TestUpdate_Fields(t *testing.T) {
	d := New("1")
	var err error

	d, err = Update(d, "eventName", "Gala")
	require.NoError(t, err)
	d, err = Update(d, "fonts.body", "Roboto")
	require.NoError(t, err)
	d, err = Update(d, "customFields.dressCode", "Black tie")
	require.NoError(t, err)
	d, err = Update(d, "rsvpLink", "https://rsvp.example.com")
	require.NoError(t, err)

	assert.Equal(t, "Gala", d.EventName)
	assert.Equal(t, "Roboto", d.Fonts.Body)
	assert.Equal(t, DefaultHeading, d.Fonts.Heading)
	assert.Equal(t, "Black tie", d.CustomFields["dressCode"])
	assert.Equal(t, "https://rsvp.example.com", d.RSVPLink)
}

func TestUpdate_UnknownField(t *testing.T) {
	for _, field := range []string{"nope", "colors.border", "fonts.title", "customFields.", "layout.x"} {
		_, err := Update(New("1"), field, "x")
		assert.ErrorIs(t, err, ErrUnknownField, field)
	}
}

func TestApplyPreset_ReplacesOnlyColors(t *testing.T) {
	d := New("1")
	d.EventName = "Party"
	d.Fonts.Body = "Poppins"

	got := ApplyPreset(d, models.ColorPreset{Name: "Ocean Blue", Primary: "#0EA5E9", Secondary: "#F0F9FF", Accent: "#10B981"})

	assert.Equal(t, models.Colors{Primary: "#0EA5E9", Secondary: "#F0F9FF", Accent: "#10B981"}, got.Colors)
	assert.Equal(t, "Party", got.EventName)
	assert.Equal(t, "Poppins", got.Fonts.Body)
}

func TestMerge_NestedPerField(t *testing.T) {
	d := New("1")
	d.CustomFields["a"] = "1"

	got := Merge(d, models.CustomizationPatch{
		Venue:        strPtr("Hall"),
		Colors:       &models.ColorsPatch{Accent: strPtr("#000000")},
		CustomFields: map[string]string{"b": "2"},
	})

	assert.Equal(t, "Hall", got.Venue)
	assert.Equal(t, DefaultPrimary, got.Colors.Primary)
	assert.Equal(t, "#000000", got.Colors.Accent)
	assert.Equal(t, map[string]string{"a": "1", "b": "2"}, got.CustomFields)
	assert.Equal(t, map[string]string{"a": "1"}, d.CustomFields)
}

func TestMergePatch_NextWins(t *testing.T) {
	base := models.CustomizationPatch{
		EventName: strPtr("Old"),
		HostName:  strPtr("Ann"),
		Colors:    &models.ColorsPatch{Primary: strPtr("#111111"), Accent: strPtr("#222222")},
	}
	next := models.CustomizationPatch{
		EventName: strPtr("New"),
		Colors:    &models.ColorsPatch{Primary: strPtr("#333333")},
	}

	got := MergePatch(base, next)

	assert.Equal(t, "New", *got.EventName)
	assert.Equal(t, "Ann", *got.HostName)
	assert.Equal(t, "#333333", *got.Colors.Primary)
	assert.Equal(t, "#222222", *got.Colors.Accent)
	assert.Nil(t, got.Colors.Secondary)
	assert.Nil(t, got.Fonts)
}

func TestToPatch_RoundTripsThroughMerge(t *testing.T) {
	d := New("3")
	d.EventName = "Engagement"
	d.Colors.Primary = "#E11D48"
	d.CustomFields["theme"] = "garden"

	assert.Equal(t, d, Merge(New("9"), ToPatch(d)))
}

func TestNormalize_RefillsBlankNested(t *testing.T) {
	d := models.CustomizationData{TemplateID: "1", Colors: models.Colors{Primary: "#123456"}}

	got := Normalize(d)

	assert.Equal(t, "#123456", got.Colors.Primary)
	assert.Equal(t, DefaultSecondary, got.Colors.Secondary)
	assert.Equal(t, DefaultFonts(), got.Fonts)
	assert.NotNil(t, got.CustomFields)
}

func TestResolveDefaults_BlankDraft(t *testing.T) {
	got := ResolveDefaults(models.CustomizationData{TemplateID: "2"})

	assert.Equal(t, "Your Event Name", got.EventName)
	assert.Equal(t, "Host Name(s)", got.HostName)
	assert.Equal(t, "2025-06-15", got.EventDate)
	assert.Equal(t, "16:00", got.EventTime)
	assert.Equal(t, "Venue Name", got.Venue)
	assert.Equal(t, "Venue Address", got.Address)
	assert.Equal(t, "We joyfully invite you to celebrate our special day with us.", got.Message)
	assert.Equal(t, "#", got.RSVPLink)
	assert.Equal(t, DefaultColors(), got.Colors)
	assert.Equal(t, DefaultFonts(), got.Fonts)
}

func TestResolveDefaults_KeepsFilledFields(t *testing.T) {
	d := New("1")
	d.EventName = "Gala"
	d.Venue = "Museum"

	got := ResolveDefaults(d)

	assert.Equal(t, "Gala", got.EventName)
	assert.Equal(t, "Museum", got.Venue)
	assert.Equal(t, FallbackAddress, got.Address)
}
