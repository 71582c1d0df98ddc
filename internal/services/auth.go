package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/renato0307/freshcart/internal/domain"
	"github.com/renato0307/freshcart/internal/logging"
	"github.com/renato0307/freshcart/internal/ports"
)

// AuthService handles phone capture and OTP verification
type AuthService struct {
	challenge *OTPChallenge
	clock     ports.Clock
	gateway   ports.OTPGateway
	mu        sync.Mutex
	store     *SessionStore
}

// NewAuthService creates a new AuthService
func NewAuthService(store *SessionStore, gateway ports.OTPGateway, clock ports.Clock) *AuthService {
	if clock == nil {
		clock = SystemClock{}
	}
	return &AuthService{
		clock:   clock,
		gateway: gateway,
		store:   store,
	}
}

// RequestOTP validates the phone number, locks it in the session and sends an OTP
func (s *AuthService) RequestOTP(ctx context.Context, phoneNumber string) (*OTPChallenge, error) {
	phoneNumber = strings.TrimSpace(phoneNumber)
	if err := domain.ValidateIndianMobile(phoneNumber); err != nil {
		return nil, err
	}

	if err := s.store.SetPhoneNumber(phoneNumber); err != nil {
		return nil, err
	}
	s.store.LockPhoneNumber()

	return s.send(ctx, phoneNumber)
}

// ResendOTP sends a new code once the resend delay has passed
func (s *AuthService) ResendOTP(ctx context.Context) (*OTPChallenge, error) {
	s.mu.Lock()
	challenge := s.challenge
	s.mu.Unlock()

	if challenge == nil {
		return nil, domain.ErrNoOTPRequested
	}

	if wait := challenge.ResendAt.Sub(s.clock.Now()); wait > 0 {
		return nil, fmt.Errorf("%w: wait %ds", domain.ErrResendTooSoon, int((wait+time.Second-1)/time.Second))
	}

	s.store.ClearOtp()
	return s.send(ctx, challenge.PhoneNumber)
}

// ResendIn returns how long until a resend is allowed (zero when allowed)
func (s *AuthService) ResendIn() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.challenge == nil {
		return 0
	}
	if wait := s.challenge.ResendAt.Sub(s.clock.Now()); wait > 0 {
		return wait
	}
	return 0
}

// VerifyOTP checks the code with the gateway and completes the login step
func (s *AuthService) VerifyOTP(ctx context.Context, code string) error {
	code = strings.TrimSpace(code)
	if err := domain.ValidateOTP(code); err != nil {
		return err
	}

	s.mu.Lock()
	challenge := s.challenge
	s.mu.Unlock()

	if challenge == nil {
		return domain.ErrNoOTPRequested
	}

	ok, err := s.gateway.VerifyOTP(ctx, challenge.PhoneNumber, code)
	if err != nil {
		logging.Logger.Error("OTP verification failed", "error", err)
		return fmt.Errorf("failed to verify OTP: %w", err)
	}
	if !ok {
		logging.Logger.Info("Wrong OTP entered", "session_id", s.store.ID())
		return fmt.Errorf("%w: please check and try again", domain.ErrInvalidOTP)
	}

	s.store.SetOtp(code)
	s.store.MarkLoggedIn()
	if err := s.store.CompleteStep(domain.StepLogin); err != nil {
		return fmt.Errorf("failed to complete login step: %w", err)
	}

	logging.Logger.Info("Phone number verified", "session_id", s.store.ID())
	return nil
}

// SkipLogin lets the user continue without verifying a phone number
func (s *AuthService) SkipLogin() {
	logging.Logger.Info("Login skipped", "session_id", s.store.ID())
	s.store.SkipLogin()
}

func (s *AuthService) send(ctx context.Context, phoneNumber string) (*OTPChallenge, error) {
	if err := s.gateway.SendOTP(ctx, phoneNumber); err != nil {
		logging.Logger.Error("Failed to send OTP", "error", err)
		return nil, fmt.Errorf("failed to send OTP: %w", err)
	}

	now := s.clock.Now()
	challenge := &OTPChallenge{
		PhoneNumber: phoneNumber,
		ResendAt:    now.Add(OTPResendDelay),
		SentAt:      now,
	}

	s.mu.Lock()
	s.challenge = challenge
	s.mu.Unlock()

	logging.Logger.Info("OTP sent", "session_id", s.store.ID(), "resend_at", challenge.ResendAt)
	copied := *challenge
	return &copied, nil
}
