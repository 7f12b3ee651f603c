package model

import "errors"

// Common errors used across the application
var (
	// Store errors
	ErrKeyNotFound = errors.New("key not found")

	// Player errors
	ErrPlayerNotFound      = errors.New("player not found")
	ErrNoSession           = errors.New("no active session")
	ErrInvalidRegistration = errors.New("invalid registration")
	ErrUnknownWard         = errors.New("unknown ward")

	// Membership errors
	ErrUnknownTier = errors.New("unknown membership tier")

	// Schedule errors
	ErrScheduleEntryNotFound = errors.New("schedule entry not found")

	// Donation and highlight errors
	ErrInvalidDonation  = errors.New("invalid donation")
	ErrInvalidHighlight = errors.New("invalid highlight")
)
