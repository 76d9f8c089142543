package customization

import (
	"strings"

	"invitation-studio/models"
)

// Fallback text used wherever a published or rendered invitation has a blank field.
const (
	FallbackEventName = "Your Event Name"
	FallbackHostName  = "Host Name(s)"
	FallbackEventDate = "2025-06-15"
	FallbackEventTime = "16:00"
	FallbackVenue     = "Venue Name"
	FallbackAddress   = "Venue Address"
	FallbackMessage   = "We joyfully invite you to celebrate our special day with us."
	FallbackRSVPLink  = "#"
)

// ResolveDefaults fills every blank display field so a page never renders empty.
// It is the single defaults policy for publishing, resolving and previewing.
func ResolveDefaults(d models.CustomizationData) models.CustomizationData {
	d = Normalize(d)
	d.EventName = orDefault(d.EventName, FallbackEventName)
	d.HostName = orDefault(d.HostName, FallbackHostName)
	d.EventDate = orDefault(d.EventDate, FallbackEventDate)
	d.EventTime = orDefault(d.EventTime, FallbackEventTime)
	d.Venue = orDefault(d.Venue, FallbackVenue)
	d.Address = orDefault(d.Address, FallbackAddress)
	d.Message = orDefault(d.Message, FallbackMessage)
	d.RSVPLink = orDefault(d.RSVPLink, FallbackRSVPLink)
	d.BackgroundImage = strings.TrimSpace(d.BackgroundImage)
	return d
}
