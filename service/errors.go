package service

import "errors"

var (
	// ErrTemplateNotFound is returned for a template id the catalog does not have
	ErrTemplateNotFound = errors.New("template not found")
	// ErrInvitationNotFound is returned when a slug has no hosted invitation
	ErrInvitationNotFound = errors.New("invitation not found")
	// ErrSlugCollision is returned when no free slug was found after every retry
	ErrSlugCollision = errors.New("slug collision")
	// ErrEmptyCart is returned when checking out an empty cart
	ErrEmptyCart = errors.New("cart is empty")
	// ErrPaymentUnavailable is returned when the payment provider could not start a session
	ErrPaymentUnavailable = errors.New("payment unavailable")
	// ErrInvalidImage is returned for a background image that is not an image or is too large
	ErrInvalidImage = errors.New("invalid image")
	// ErrInvalidRSVP is returned for an RSVP missing required fields
	ErrInvalidRSVP = errors.New("invalid rsvp")
	// ErrPresetNotFound is returned for an unknown color preset name
	ErrPresetNotFound = errors.New("color preset not found")
	// ErrUnsupportedFormat is returned for an export format other than png or pdf
	ErrUnsupportedFormat = errors.New("unsupported export format")
)

// PaymentFailedMessage is shown to the user when checkout cannot start
const PaymentFailedMessage = "Payment failed. Please try again."
