package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/renato0307/freshcart/internal/domain"
	"github.com/renato0307/freshcart/internal/logging"
	"github.com/renato0307/freshcart/internal/ports"
)

// SystemClock reads the wall clock
type SystemClock struct{}

// Now returns the current time
func (SystemClock) Now() time.Time { return time.Now() }

var _ ports.Clock = SystemClock{}

// sessionState is the mutable part of the store, only touched under SessionStore.mu
type sessionState struct {
	address            *domain.AddressDetails
	currentStep        int
	id                 string
	isLoggedIn         bool
	location           *domain.ResolvedLocation
	onboardingComplete bool
	otp                string
	otpIssuedAt        *time.Time
	phoneLocked        bool
	phoneNumber        string
	preferences        domain.Preferences
	selectedSamples    []domain.Sample
	steps              []domain.Step
}

func newSessionState() sessionState {
	return sessionState{
		id:    uuid.New().String(),
		steps: domain.DefaultSteps(),
	}
}

// SessionStore holds the state of one onboarding session.
// Every mutation is atomic with respect to readers.
type SessionStore struct {
	clock ports.Clock
	mu    sync.RWMutex
	state sessionState
}

// NewSessionStore creates an empty session with the default step plan
func NewSessionStore(clock ports.Clock) *SessionStore {
	if clock == nil {
		clock = SystemClock{}
	}
	store := &SessionStore{
		clock: clock,
		state: newSessionState(),
	}
	logging.Logger.Debug("Session created", "session_id", store.state.id)
	return store
}

// ID returns the session identifier
func (s *SessionStore) ID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.id
}

// SetPhoneNumber stores the phone number. It cannot change once the OTP request started.
func (s *SessionStore) SetPhoneNumber(number string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.phoneLocked && number != s.state.phoneNumber {
		return domain.ErrPhoneNumberLocked
	}
	s.state.phoneNumber = number
	return nil
}

// LockPhoneNumber marks the OTP request as started
func (s *SessionStore) LockPhoneNumber() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.phoneLocked = true
}

// PhoneNumber returns the stored phone number
func (s *SessionStore) PhoneNumber() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.phoneNumber
}

// SetOtp stores the code and stamps the issuance time
func (s *SessionStore) SetOtp(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	s.state.otp = code
	s.state.otpIssuedAt = &now
}

// IsOtpValid reports whether the stored OTP is still inside its validity window.
// Evaluated against the clock on every call.
func (s *SessionStore) IsOtpValid() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.OTPValidAt(s.state.otp, s.state.otpIssuedAt, s.clock.Now())
}

// ClearOtp forgets the stored OTP
func (s *SessionStore) ClearOtp() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.otp = ""
	s.state.otpIssuedAt = nil
}

// SetLocation replaces the current location wholesale
func (s *SessionStore) SetLocation(loc domain.ResolvedLocation) error {
	if err := loc.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.location = &loc
	return nil
}

// Location returns the current location, if any
func (s *SessionStore) Location() (domain.ResolvedLocation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.location == nil {
		return domain.ResolvedLocation{}, false
	}
	return *s.state.location, true
}

// SelectSample adds a sample to the selection. Returns false if it was already selected.
func (s *SessionStore) SelectSample(sample domain.Sample) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, selected := range s.state.selectedSamples {
		if selected.ID == sample.ID {
			return false
		}
	}
	s.state.selectedSamples = append(s.state.selectedSamples, sample)
	return true
}

// UnselectSample removes a sample from the selection. Returns false if it was not selected.
func (s *SessionStore) UnselectSample(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, selected := range s.state.selectedSamples {
		if selected.ID == id {
			s.state.selectedSamples = append(s.state.selectedSamples[:i:i], s.state.selectedSamples[i+1:]...)
			return true
		}
	}
	return false
}

// ToggleSample unselects the sample with the given id if it is selected,
// otherwise selects the sample returned by load. The check and the update
// happen under one lock, so concurrent toggles never double select.
// Returns whether the sample is selected afterwards.
func (s *SessionStore) ToggleSample(id int, load func() (domain.Sample, error)) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, selected := range s.state.selectedSamples {
		if selected.ID == id {
			s.state.selectedSamples = append(s.state.selectedSamples[:i:i], s.state.selectedSamples[i+1:]...)
			return false, nil
		}
	}

	sample, err := load()
	if err != nil {
		return false, err
	}
	s.state.selectedSamples = append(s.state.selectedSamples, sample)
	return true, nil
}

// SelectedSamples returns the selection in insertion order
func (s *SessionStore) SelectedSamples() []domain.Sample {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Sample(nil), s.state.selectedSamples...)
}

// CompleteStep marks a step as completed and moves the current step past it.
// Completing an already completed step is a no-op that still succeeds.
func (s *SessionStore) CompleteStep(id domain.StepID) error {
	if !id.Valid() {
		return fmt.Errorf("%w: %d", domain.ErrInvalidStepID, id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkPrerequisiteLocked(id); err != nil {
		return err
	}

	s.state.steps[id].Completed = true
	if next := int(id) + 1; next > s.state.currentStep {
		s.state.currentStep = next
	}

	logging.Logger.Debug("Step completed",
		"session_id", s.state.id,
		"step", s.state.steps[id].Title,
		"current_step", s.state.currentStep)
	return nil
}

func (s *SessionStore) checkPrerequisiteLocked(id domain.StepID) error {
	switch id {
	case domain.StepLogin:
		if s.state.phoneNumber == "" || s.state.otp == "" {
			return fmt.Errorf("%w: login requires a phone number and an OTP", domain.ErrStepPrerequisite)
		}
	case domain.StepLocation:
		if s.state.location == nil {
			return fmt.Errorf("%w: location step requires a location", domain.ErrStepPrerequisite)
		}
	case domain.StepAddress:
		if s.state.address == nil {
			return fmt.Errorf("%w: address step requires an address", domain.ErrStepPrerequisite)
		}
	}
	return nil
}

// Steps returns a copy of the step plan
func (s *SessionStore) Steps() []domain.Step {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Step(nil), s.state.steps...)
}

// CurrentStep returns the advisory step pointer
func (s *SessionStore) CurrentStep() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.currentStep
}

// MarkLoggedIn records a successful OTP verification
func (s *SessionStore) MarkLoggedIn() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.isLoggedIn = true
}

// SkipLogin lets the user browse without verifying a phone number.
// Step 0 stays incomplete.
func (s *SessionStore) SkipLogin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.isLoggedIn = true
}

// IsLoggedIn reports whether the user verified or skipped login
func (s *SessionStore) IsLoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.isLoggedIn
}

// SetAddress stores the delivery address
func (s *SessionStore) SetAddress(addr domain.AddressDetails) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.address = &addr
}

// SetPreferences stores the questionnaire answers
func (s *SessionStore) SetPreferences(prefs domain.Preferences) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prefs.Household = append([]string(nil), prefs.Household...)
	s.state.preferences = prefs
}

// CompleteOnboarding marks the whole flow as finished
func (s *SessionStore) CompleteOnboarding() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.onboardingComplete = true
}

// Snapshot returns a deep copy of the session state
func (s *SessionStore) Snapshot() domain.SessionSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := domain.SessionSnapshot{
		CurrentStep:        s.state.currentStep,
		ID:                 s.state.id,
		IsLoggedIn:         s.state.isLoggedIn,
		OnboardingComplete: s.state.onboardingComplete,
		OTP:                s.state.otp,
		PhoneNumber:        s.state.phoneNumber,
		Preferences: domain.Preferences{
			Diet:      s.state.preferences.Diet,
			Household: append([]string(nil), s.state.preferences.Household...),
			ShopTime:  s.state.preferences.ShopTime,
		},
		SelectedSamples: append([]domain.Sample(nil), s.state.selectedSamples...),
		Steps:           append([]domain.Step(nil), s.state.steps...),
	}
	if s.state.address != nil {
		addr := *s.state.address
		snap.Address = &addr
	}
	if s.state.location != nil {
		loc := *s.state.location
		snap.Location = &loc
	}
	if s.state.otpIssuedAt != nil {
		issued := *s.state.otpIssuedAt
		snap.OTPIssuedAt = &issued
	}
	return snap
}

// Discard tears the session down and starts a fresh one under a new id
func (s *SessionStore) Discard() {
	s.mu.Lock()
	defer s.mu.Unlock()

	old := s.state.id
	s.state = newSessionState()
	logging.Logger.Debug("Session discarded", "session_id", old, "new_session_id", s.state.id)
}
