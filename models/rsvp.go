package models

import "time"

// RSVP represents a guest's answer to a hosted invitation
type RSVP struct {
	ID             string    `json:"id"`
	Slug           string    `json:"slug"`
	GuestName      string    `json:"guestName"`
	GuestEmail     string    `json:"guestEmail,omitempty"`
	GuestPhone     string    `json:"guestPhone,omitempty"`
	Attending      bool      `json:"attending"`
	NumberOfGuests int       `json:"numberOfGuests"`
	Message        string    `json:"message,omitempty"`
	RespondedAt    time.Time `json:"respondedAt"`
}

// RSVPRequest represents the request body for submitting an RSVP
// Example: {"guestName": "Ana", "guestEmail": "ana@example.com", "attending": true, "numberOfGuests": 2}
type RSVPRequest struct {
	GuestName      string `json:"guestName"`
	GuestEmail     string `json:"guestEmail,omitempty"`
	GuestPhone     string `json:"guestPhone,omitempty"`
	Attending      bool   `json:"attending"`
	NumberOfGuests int    `json:"numberOfGuests"`
	Message        string `json:"message,omitempty"`
}

// RSVPListResponse represents the response for listing RSVPs of an invitation
type RSVPListResponse struct {
	RSVPs     []RSVP `json:"rsvps"`
	Attending int    `json:"attending"` // sum of numberOfGuests over attending answers
}
