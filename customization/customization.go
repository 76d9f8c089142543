// Package customization holds the invitation draft model: defaults, single-field
// edits, preset application and partial merges.
package customization

import (
	"errors"
	"fmt"
	"strings"

	"invitation-studio/models"
)

// ErrUnknownField is returned by Update for a field name the draft does not have
var ErrUnknownField = errors.New("unknown customization field")

const (
	DefaultPrimary   = "#8B5CF6"
	DefaultSecondary = "#F3F4F6"
	DefaultAccent    = "#F59E0B"
	DefaultHeading   = "Playfair Display"
	DefaultBody      = "Inter"
)

// DefaultColors returns the default color triple
func DefaultColors() models.Colors {
	return models.Colors{Primary: DefaultPrimary, Secondary: DefaultSecondary, Accent: DefaultAccent}
}

// DefaultFonts returns the default font pair
func DefaultFonts() models.Fonts {
	return models.Fonts{Heading: DefaultHeading, Body: DefaultBody}
}

// New returns the default draft for a template
func New(templateID string) models.CustomizationData {
	return models.CustomizationData{
		TemplateID:   templateID,
		Colors:       DefaultColors(),
		Fonts:        DefaultFonts(),
		CustomFields: map[string]string{},
	}
}

// Normalize refills blank colors and fonts with their defaults and makes sure
// CustomFields is non-nil. Stored drafts go through it after load.
func Normalize(d models.CustomizationData) models.CustomizationData {
	def := DefaultColors()
	d.Colors.Primary = orDefault(d.Colors.Primary, def.Primary)
	d.Colors.Secondary = orDefault(d.Colors.Secondary, def.Secondary)
	d.Colors.Accent = orDefault(d.Colors.Accent, def.Accent)

	fonts := DefaultFonts()
	d.Fonts.Heading = orDefault(d.Fonts.Heading, fonts.Heading)
	d.Fonts.Body = orDefault(d.Fonts.Body, fonts.Body)

	d.CustomFields = cloneFields(d.CustomFields)
	return d
}

// Update sets one field of the draft. Nested fields are addressed as
// "colors.primary", "fonts.body" or "customFields.<name>". Values are not validated.
func Update(d models.CustomizationData, field, value string) (models.CustomizationData, error) {
	d.CustomFields = cloneFields(d.CustomFields)

	group, name, nested := strings.Cut(field, ".")
	if nested {
		switch group {
		case "colors":
			switch name {
			case "primary":
				d.Colors.Primary = value
			case "secondary":
				d.Colors.Secondary = value
			case "accent":
				d.Colors.Accent = value
			default:
				return d, fmt.Errorf("%w: %s", ErrUnknownField, field)
			}
		case "fonts":
			switch name {
			case "heading":
				d.Fonts.Heading = value
			case "body":
				d.Fonts.Body = value
			default:
				return d, fmt.Errorf("%w: %s", ErrUnknownField, field)
			}
		case "customFields":
			if name == "" {
				return d, fmt.Errorf("%w: %s", ErrUnknownField, field)
			}
			d.CustomFields[name] = value
		default:
			return d, fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		return d, nil
	}

	switch field {
	case "eventName":
		d.EventName = value
	case "hostName":
		d.HostName = value
	case "eventDate":
		d.EventDate = value
	case "eventTime":
		d.EventTime = value
	case "venue":
		d.Venue = value
	case "address":
		d.Address = value
	case "rsvpLink":
		d.RSVPLink = value
	case "message":
		d.Message = value
	case "backgroundImage":
		d.BackgroundImage = value
	default:
		return d, fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	return d, nil
}

// ApplyPreset replaces all three colors at once
func ApplyPreset(d models.CustomizationData, p models.ColorPreset) models.CustomizationData {
	d.Colors = models.Colors{Primary: p.Primary, Secondary: p.Secondary, Accent: p.Accent}
	d.CustomFields = cloneFields(d.CustomFields)
	return d
}

// Merge applies a partial patch. Nested colors and fonts merge per field.
func Merge(d models.CustomizationData, p models.CustomizationPatch) models.CustomizationData {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&d.TemplateID, p.TemplateID)
	set(&d.EventName, p.EventName)
	set(&d.HostName, p.HostName)
	set(&d.EventDate, p.EventDate)
	set(&d.EventTime, p.EventTime)
	set(&d.Venue, p.Venue)
	set(&d.Address, p.Address)
	set(&d.RSVPLink, p.RSVPLink)
	set(&d.Message, p.Message)
	set(&d.BackgroundImage, p.BackgroundImage)
	if p.Colors != nil {
		set(&d.Colors.Primary, p.Colors.Primary)
		set(&d.Colors.Secondary, p.Colors.Secondary)
		set(&d.Colors.Accent, p.Colors.Accent)
	}
	if p.Fonts != nil {
		set(&d.Fonts.Heading, p.Fonts.Heading)
		set(&d.Fonts.Body, p.Fonts.Body)
	}

	d.CustomFields = cloneFields(d.CustomFields)
	for k, v := range p.CustomFields {
		d.CustomFields[k] = v
	}
	return d
}

// MergePatch merges two patches; fields set in next win
func MergePatch(base, next models.CustomizationPatch) models.CustomizationPatch {
	pick := func(a, b *string) *string {
		if b != nil {
			return b
		}
		return a
	}
	out := models.CustomizationPatch{
		TemplateID:      pick(base.TemplateID, next.TemplateID),
		EventName:       pick(base.EventName, next.EventName),
		HostName:        pick(base.HostName, next.HostName),
		EventDate:       pick(base.EventDate, next.EventDate),
		EventTime:       pick(base.EventTime, next.EventTime),
		Venue:           pick(base.Venue, next.Venue),
		Address:         pick(base.Address, next.Address),
		RSVPLink:        pick(base.RSVPLink, next.RSVPLink),
		Message:         pick(base.Message, next.Message),
		BackgroundImage: pick(base.BackgroundImage, next.BackgroundImage),
	}

	if base.Colors != nil || next.Colors != nil {
		var a, b models.ColorsPatch
		if base.Colors != nil {
			a = *base.Colors
		}
		if next.Colors != nil {
			b = *next.Colors
		}
		out.Colors = &models.ColorsPatch{
			Primary:   pick(a.Primary, b.Primary),
			Secondary: pick(a.Secondary, b.Secondary),
			Accent:    pick(a.Accent, b.Accent),
		}
	}
	if base.Fonts != nil || next.Fonts != nil {
		var a, b models.FontsPatch
		if base.Fonts != nil {
			a = *base.Fonts
		}
		if next.Fonts != nil {
			b = *next.Fonts
		}
		out.Fonts = &models.FontsPatch{
			Heading: pick(a.Heading, b.Heading),
			Body:    pick(a.Body, b.Body),
		}
	}

	if len(base.CustomFields) > 0 || len(next.CustomFields) > 0 {
		out.CustomFields = make(map[string]string, len(base.CustomFields)+len(next.CustomFields))
		for k, v := range base.CustomFields {
			out.CustomFields[k] = v
		}
		for k, v := range next.CustomFields {
			out.CustomFields[k] = v
		}
	}
	return out
}

// ToPatch turns a full draft into a patch that sets every field
func ToPatch(d models.CustomizationData) models.CustomizationPatch {
	str := func(s string) *string { return &s }
	return models.CustomizationPatch{
		TemplateID:      str(d.TemplateID),
		EventName:       str(d.EventName),
		HostName:        str(d.HostName),
		EventDate:       str(d.EventDate),
		EventTime:       str(d.EventTime),
		Venue:           str(d.Venue),
		Address:         str(d.Address),
		RSVPLink:        str(d.RSVPLink),
		Message:         str(d.Message),
		BackgroundImage: str(d.BackgroundImage),
		Colors: &models.ColorsPatch{
			Primary:   str(d.Colors.Primary),
			Secondary: str(d.Colors.Secondary),
			Accent:    str(d.Colors.Accent),
		},
		Fonts: &models.FontsPatch{
			Heading: str(d.Fonts.Heading),
			Body:    str(d.Fonts.Body),
		},
		CustomFields: cloneFields(d.CustomFields),
	}
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func cloneFields(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
