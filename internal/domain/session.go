package domain

import "time"

// StepID identifies an onboarding step
type StepID int

// Onboarding plan
const (
	StepLogin StepID = iota
	StepLocation
	StepAddress
	StepSamples
)

// OTPValidity is how long an issued OTP stays valid
const OTPValidity = time.Hour

// Step status symbols (Unicode)
const (
	SymbolCompleted = "●"
	SymbolCurrent   = "◐"
	SymbolPending   = "○"
)

// Step is one entry of the onboarding plan
type Step struct {
	Completed bool
	ID        StepID
	Title     string
}

// DefaultSteps returns the fixed four-step onboarding plan
func DefaultSteps() []Step {
	return []Step{
		{ID: StepLogin, Title: "Login"},
		{ID: StepLocation, Title: "Location"},
		{ID: StepAddress, Title: "Address"},
		{ID: StepSamples, Title: "Samples"},
	}
}

// Valid reports whether the id belongs to the onboarding plan
func (id StepID) Valid() bool {
	return id >= StepLogin && id <= StepSamples
}

// Sample is a product the customer can request a trial of
type Sample struct {
	Badge    string `json:"badge"`
	ID       int    `json:"id"`
	ImageURL string `json:"image_url"`
	Name     string `json:"name"`
	Sub      string `json:"sub"`
}

// SessionSnapshot is a read-only copy of the onboarding session state
type SessionSnapshot struct {
	Address            *AddressDetails
	CurrentStep        int
	ID                 string
	IsLoggedIn         bool
	Location           *ResolvedLocation
	OnboardingComplete bool
	OTP                string
	OTPIssuedAt        *time.Time
	PhoneNumber        string
	Preferences        Preferences
	SelectedSamples    []Sample
	Steps              []Step
}

// CompletedSteps counts the completed steps
func (s SessionSnapshot) CompletedSteps() int {
	n := 0
	for _, step := range s.Steps {
		if step.Completed {
			n++
		}
	}
	return n
}

// OTPValidAt reports whether an OTP issued at issuedAt is still valid at now
func OTPValidAt(code string, issuedAt *time.Time, now time.Time) bool {
	if code == "" || issuedAt == nil {
		return false
	}
	return now.Sub(*issuedAt) <= OTPValidity
}
