package model

import (
	"fmt"
	"strings"
)

// Registration is the validated payload of the registration form
type Registration struct {
	FullName  string
	UserID    string
	Ward      string
	SubCounty string // optional
	Phone     string // collected for the payment prompt only
	Email     string
}

// ValidationError names the field that failed validation
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidRegistration, e.Field, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidRegistration
func (e *ValidationError) Unwrap() error {
	return ErrInvalidRegistration
}

// Normalize trims surrounding whitespace from every field
func (r Registration) Normalize() Registration {
	return Registration{
		FullName:  strings.TrimSpace(r.FullName),
		UserID:    strings.TrimSpace(r.UserID),
		Ward:      strings.TrimSpace(r.Ward),
		SubCounty: strings.TrimSpace(r.SubCounty),
		Phone:     strings.TrimSpace(r.Phone),
		Email:     strings.TrimSpace(r.Email),
	}
}

// Validate checks required fields and enumerated values. Missing fields are
// rejected, never coerced.
func (r Registration) Validate() error {
	r = r.Normalize()
	switch {
	case r.FullName == "":
		return &ValidationError{Field: "fullName", Reason: "is required"}
	case r.UserID == "":
		return &ValidationError{Field: "userId", Reason: "is required"}
	case r.Ward == "":
		return &ValidationError{Field: "ward", Reason: "is required"}
	case !IsWard(r.Ward):
		return &ValidationError{Field: "ward", Reason: fmt.Sprintf("%q is not a known ward", r.Ward)}
	case r.SubCounty != "" && !IsSubCounty(r.SubCounty):
		return &ValidationError{Field: "subCounty", Reason: fmt.Sprintf("%q is not a known sub-county", r.SubCounty)}
	}
	return nil
}
