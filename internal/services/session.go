package services

import (
	"github.com/renato0307/freshcart/internal/logging"
	"github.com/renato0307/freshcart/internal/ports"
)

// SessionDeps are the collaborators shared by onboarding sessions
type SessionDeps struct {
	Catalog        ports.SampleCatalog
	Clock          ports.Clock
	Device         ports.Device
	GeocodeCache   ports.GeocodeCache // Optional
	OTPGateway     ports.OTPGateway
	Serviceability ports.ServiceabilityChecker
}

// Session bundles the services of one onboarding session.
// Every terminal (local or SSH) gets its own Session.
type Session struct {
	Auth       *AuthService
	Location   *LocationService
	Onboarding *OnboardingService
	Store      *SessionStore
}

// NewSession wires the services of a new onboarding session around a fresh store
func NewSession(deps SessionDeps) *Session {
	clock := deps.Clock
	if clock == nil {
		clock = SystemClock{}
	}

	var geocoder ports.GeocodeService = deps.Device
	if deps.GeocodeCache != nil {
		geocoder = NewCachedGeocoder(deps.Device, deps.GeocodeCache)
	}

	store := NewSessionStore(clock)
	session := &Session{
		Auth:       NewAuthService(store, deps.OTPGateway, clock),
		Location:   NewLocationService(store, deps.Device, deps.Device, geocoder, deps.Device, deps.Serviceability, clock),
		Onboarding: NewOnboardingService(store, deps.Catalog),
		Store:      store,
	}

	logging.Logger.Info("Onboarding session created", "session_id", store.ID())
	return session
}

// Close abandons resolution attempts in flight and discards the session state
func (s *Session) Close() {
	id := s.Store.ID()
	s.Location.Close()
	s.Store.Discard()
	logging.Logger.Info("Onboarding session closed", "session_id", id)
}
