package services

import (
	"time"

	"github.com/renato0307/freshcart/internal/domain"
)

// OTPResendDelay is how long the user waits before asking for a new code
const OTPResendDelay = 28 * time.Second

// OTPChallenge describes an OTP that was sent to the user
type OTPChallenge struct {
	PhoneNumber string
	ResendAt    time.Time
	SentAt      time.Time
}

// Progress summarises how far the user got through onboarding
type Progress struct {
	Completed          int
	CurrentStep        int
	OnboardingComplete bool
	Steps              []domain.Step
	Total              int
}

// Symbol returns the status symbol for a step
func (p Progress) Symbol(step domain.Step) string {
	switch {
	case step.Completed:
		return domain.SymbolCompleted
	case int(step.ID) == p.CurrentStep:
		return domain.SymbolCurrent
	default:
		return domain.SymbolPending
	}
}
