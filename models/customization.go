package models

// Colors holds the color triple of an invitation (hex strings)
type Colors struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
}

// Fonts holds the font pair of an invitation
type Fonts struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

// CustomizationData represents the user's draft for one template
type CustomizationData struct {
	TemplateID      string            `json:"templateId"`
	EventName       string            `json:"eventName"`
	HostName        string            `json:"hostName"`
	EventDate       string            `json:"eventDate"`
	EventTime       string            `json:"eventTime"`
	Venue           string            `json:"venue"`
	Address         string            `json:"address"`
	RSVPLink        string            `json:"rsvpLink,omitempty"`
	Message         string            `json:"message"`
	Colors          Colors            `json:"colors"`
	Fonts           Fonts             `json:"fonts"`
	BackgroundImage string            `json:"backgroundImage,omitempty"` // data URI
	CustomFields    map[string]string `json:"customFields"`
}

// ColorsPatch is a partial color update; nil fields are left untouched
type ColorsPatch struct {
	Primary   *string `json:"primary,omitempty"`
	Secondary *string `json:"secondary,omitempty"`
	Accent    *string `json:"accent,omitempty"`
}

// FontsPatch is a partial font update; nil fields are left untouched
type FontsPatch struct {
	Heading *string `json:"heading,omitempty"`
	Body    *string `json:"body,omitempty"`
}

// CustomizationPatch is a partial CustomizationData.
// It is what a cart line carries and what PATCH requests decode into.
type CustomizationPatch struct {
	TemplateID      *string           `json:"templateId,omitempty"`
	EventName       *string           `json:"eventName,omitempty"`
	HostName        *string           `json:"hostName,omitempty"`
	EventDate       *string           `json:"eventDate,omitempty"`
	EventTime       *string           `json:"eventTime,omitempty"`
	Venue           *string           `json:"venue,omitempty"`
	Address         *string           `json:"address,omitempty"`
	RSVPLink        *string           `json:"rsvpLink,omitempty"`
	Message         *string           `json:"message,omitempty"`
	Colors          *ColorsPatch      `json:"colors,omitempty"`
	Fonts           *FontsPatch       `json:"fonts,omitempty"`
	BackgroundImage *string           `json:"backgroundImage,omitempty"`
	CustomFields    map[string]string `json:"customFields,omitempty"`
}

// UpdateFieldRequest represents the request body for a single field edit
// Example: {"field": "colors.primary", "value": "#E11D48"}
type UpdateFieldRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// ApplyPresetRequest represents the request body for applying a color preset
// Example: {"name": "Ocean Blue"}
type ApplyPresetRequest struct {
	Name string `json:"name"`
}

// BackgroundImageRequest represents the request body for uploading a background image
// Example: {"dataUri": "data:image/png;base64,iVBORw0KGgo..."}
type BackgroundImageRequest struct {
	DataURI string `json:"dataUri"`
}
