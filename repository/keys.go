package repository

import "strings"

const (
	CartKey   = "cart-storage"
	OrdersKey = "orders"
	// HostedByKey lists the slugs a client has published
	HostedByKey = "published-invitations"

	customizationPrefix = "customization-"
	hostedPrefix        = "hosted-"
	rsvpPrefix          = "rsvp-"
)

// CustomizationKey is the key of the draft for a template
func CustomizationKey(templateID string) string {
	return customizationPrefix + templateID
}

// HostedKey is the key of a hosted invitation
func HostedKey(slug string) string {
	return hostedPrefix + slug
}

// RSVPKey is the key of the RSVP list of a hosted invitation
func RSVPKey(slug string) string {
	return rsvpPrefix + slug
}

// ClientKey scopes a per-browser key to one client id.
// Hosted invitations and RSVPs are public and never client scoped.
func ClientKey(clientID, key string) string {
	var b strings.Builder
	b.Grow(len("client:") + len(clientID) + 1 + len(key))
	b.WriteString("client:")
	b.WriteString(clientID)
	b.WriteByte(':')
	b.WriteString(key)
	return b.String()
}
