package domain

import "errors"

// Location resolution conditions. All of them are recoverable.
var (
	ErrEmptySearchQuery    = errors.New("search query is empty")
	ErrGeocodeUnavailable  = errors.New("geocoding unavailable")
	ErrNoSearchResults     = errors.New("no location found for search query")
	ErrNotServiceable      = errors.New("location is not serviceable")
	ErrPermissionDenied    = errors.New("location permission denied")
	ErrPositionUnavailable = errors.New("position unavailable")
	ErrServicesDisabled    = errors.New("location services disabled")
	ErrSuperseded          = errors.New("resolution attempt superseded")
)

// Session store contract violations
var (
	ErrInvalidStepID     = errors.New("invalid step id")
	ErrMalformedLocation = errors.New("malformed location")
	ErrPhoneNumberLocked = errors.New("phone number cannot change after OTP request")
	ErrStepPrerequisite  = errors.New("step prerequisite not satisfied")
)

// Onboarding input errors
var (
	ErrInvalidAddress     = errors.New("invalid address")
	ErrInvalidOTP         = errors.New("invalid OTP")
	ErrInvalidPhoneNumber = errors.New("invalid phone number")
	ErrInvalidPreferences = errors.New("invalid preferences")
	ErrInvalidZone        = errors.New("invalid service zone")
	ErrNoOTPRequested     = errors.New("no OTP requested")
	ErrResendTooSoon      = errors.New("OTP resend not yet allowed")
	ErrSampleNotFound     = errors.New("sample not found")
	ErrZoneExists         = errors.New("service zone already exists")
)
