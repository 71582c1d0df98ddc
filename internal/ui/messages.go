package ui

import (
	"github.com/renato0307/freshcart/internal/domain"
	"github.com/renato0307/freshcart/internal/services"
)

// splashDoneMsg ends the splash screen
type splashDoneMsg struct{}

// otpSentMsg reports the outcome of an OTP request or resend
type otpSentMsg struct {
	Challenge *services.OTPChallenge
	Err       error
}

// otpVerifiedMsg reports the outcome of an OTP verification
type otpVerifiedMsg struct {
	Err error
}

// resendTickMsg refreshes the resend countdown
type resendTickMsg struct{}

// resolutionMsg carries the outcome of a location resolution attempt
type resolutionMsg struct {
	Resolution domain.Resolution
}

// settingsOpenedMsg reports that app settings were opened
type settingsOpenedMsg struct {
	Err error
}

// foregroundMsg simulates the app returning to the foreground after settings
type foregroundMsg struct{}

// foregroundResolutionMsg carries the outcome of a foreground resume
type foregroundResolutionMsg struct {
	Resolution domain.Resolution
	Started    bool
}

// locationCommittedMsg reports the outcome of confirming the location
type locationCommittedMsg struct {
	Err error
}

// samplesLoadedMsg carries the sample catalog
type samplesLoadedMsg struct {
	Err     error
	Samples []domain.Sample
}

// sampleToggledMsg reports the outcome of selecting or unselecting a sample
type sampleToggledMsg struct {
	Err      error
	ID       int
	Selected bool
}
