package services

import (
	"context"
	"fmt"

	"github.com/renato0307/freshcart/internal/domain"
	"github.com/renato0307/freshcart/internal/logging"
	"github.com/renato0307/freshcart/internal/ports"
)

// OnboardingService handles the address, preference and sample steps
type OnboardingService struct {
	catalog ports.SampleCatalog
	store   *SessionStore
}

// NewOnboardingService creates a new OnboardingService
func NewOnboardingService(store *SessionStore, catalog ports.SampleCatalog) *OnboardingService {
	return &OnboardingService{
		catalog: catalog,
		store:   store,
	}
}

// SaveAddress validates and stores the delivery address, then completes the address step
func (s *OnboardingService) SaveAddress(addr domain.AddressDetails) error {
	addr = addr.Normalize()
	if err := addr.Validate(); err != nil {
		return err
	}

	s.store.SetAddress(addr)
	if err := s.store.CompleteStep(domain.StepAddress); err != nil {
		return fmt.Errorf("failed to complete address step: %w", err)
	}

	logging.Logger.Info("Address saved", "session_id", s.store.ID(), "tag", addr.Tag, "city", addr.City)
	return nil
}

// SavePreferences stores the questionnaire answers
func (s *OnboardingService) SavePreferences(prefs domain.Preferences) error {
	if err := prefs.Validate(); err != nil {
		return err
	}
	s.store.SetPreferences(prefs)
	logging.Logger.Debug("Preferences saved", "session_id", s.store.ID(), "preferences", prefs)
	return nil
}

// SkipPreferences leaves the questionnaire unanswered
func (s *OnboardingService) SkipPreferences() {
	s.store.SetPreferences(domain.Preferences{})
	logging.Logger.Debug("Preferences skipped", "session_id", s.store.ID())
}

// Samples lists the samples on offer
func (s *OnboardingService) Samples(ctx context.Context) ([]domain.Sample, error) {
	samples, err := s.catalog.ListSamples(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list samples: %w", err)
	}
	return samples, nil
}

// ToggleSample selects the sample if it is not selected, otherwise unselects it.
// Returns whether the sample ends up selected.
func (s *OnboardingService) ToggleSample(ctx context.Context, id int) (bool, error) {
	return s.store.ToggleSample(id, func() (domain.Sample, error) {
		sample, err := s.catalog.GetSample(ctx, id)
		if err != nil {
			return domain.Sample{}, err
		}
		return *sample, nil
	})
}

// FinishSamples completes the last step and the onboarding
func (s *OnboardingService) FinishSamples() error {
	if err := s.store.CompleteStep(domain.StepSamples); err != nil {
		return fmt.Errorf("failed to complete samples step: %w", err)
	}
	s.store.CompleteOnboarding()

	logging.Logger.Info("Onboarding complete",
		"session_id", s.store.ID(),
		"samples", len(s.store.SelectedSamples()))
	return nil
}

// Progress reports the step plan with completion counts
func (s *OnboardingService) Progress() Progress {
	snap := s.store.Snapshot()
	return Progress{
		Completed:          snap.CompletedSteps(),
		CurrentStep:        snap.CurrentStep,
		OnboardingComplete: snap.OnboardingComplete,
		Steps:              snap.Steps,
		Total:              len(snap.Steps),
	}
}
