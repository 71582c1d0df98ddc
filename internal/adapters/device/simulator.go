package device

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/renato0307/freshcart/internal/domain"
	"github.com/renato0307/freshcart/internal/logging"
	"github.com/renato0307/freshcart/internal/ports"
)

// Simulator answers the device ports from a Scenario.
// Each onboarding session gets its own Simulator so permission changes stay local.
type Simulator struct {
	clock         ports.Clock
	mu            sync.Mutex
	permission    domain.PermissionStatus
	scenario      *Scenario
	settingsOpens int
}

var _ ports.Device = (*Simulator)(nil)

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// NewSimulator creates a simulator for the scenario
func NewSimulator(scenario *Scenario, clock ports.Clock) *Simulator {
	if scenario == nil {
		scenario = DefaultScenario()
	}
	if clock == nil {
		clock = systemClock{}
	}
	return &Simulator{
		clock:      clock,
		permission: scenario.Permission.Status,
		scenario:   scenario,
	}
}

// Scenario returns the scenario name
func (s *Simulator) Scenario() string {
	return s.scenario.Name
}

// Status implements ports.PermissionService
func (s *Simulator) Status(ctx context.Context) (domain.PermissionStatus, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.permission, nil
}

// Request implements ports.PermissionService.
// Only an undetermined permission shows the prompt.
func (s *Simulator) Request(ctx context.Context) (domain.PermissionStatus, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.permission == domain.PermissionUndetermined {
		s.permission = s.scenario.Permission.OnRequest
		logging.Logger.Debug("Simulated permission prompt answered", "status", s.permission)
	}
	return s.permission, nil
}

// ServicesEnabled implements ports.PermissionService
func (s *Simulator) ServicesEnabled(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return s.scenario.ServicesEnabled, nil
}

// OpenAppSettings implements ports.SettingsLauncher.
// The simulated user applies the scenario's after_settings status.
func (s *Simulator) OpenAppSettings(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settingsOpens++
	s.permission = s.scenario.Permission.AfterSettings
	logging.Logger.Debug("Simulated settings visit", "status", s.permission, "visits", s.settingsOpens)
	return nil
}

// SettingsOpens counts OpenAppSettings calls
func (s *Simulator) SettingsOpens() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settingsOpens
}

// Current implements ports.PositionService
func (s *Simulator) Current(ctx context.Context, opts domain.PositionOptions) (domain.Coordinates, error) {
	script := s.scenario.Position

	if script.CurrentError == FailureTimeout {
		<-ctx.Done()
		return domain.Coordinates{}, fmt.Errorf("%w: %v", domain.ErrPositionUnavailable, ctx.Err())
	}
	if err := wait(ctx, script.Delay); err != nil {
		return domain.Coordinates{}, fmt.Errorf("%w: %v", domain.ErrPositionUnavailable, err)
	}
	if script.CurrentError == FailureUnavailable || script.Current == nil {
		return domain.Coordinates{}, domain.ErrPositionUnavailable
	}

	coords := script.Current.coordinates(s.clock.Now())
	logging.Logger.Debug("Simulated position fix", "coords", coords.String(), "accuracy", opts.Accuracy)
	return coords, nil
}

// LastKnown implements ports.PositionService
func (s *Simulator) LastKnown(ctx context.Context, opts domain.LastKnownOptions) (domain.Coordinates, error) {
	if err := ctx.Err(); err != nil {
		return domain.Coordinates{}, err
	}
	if s.scenario.Position.LastKnown == nil {
		return domain.Coordinates{}, domain.ErrPositionUnavailable
	}
	return s.scenario.Position.LastKnown.coordinates(s.clock.Now()), nil
}

// Reverse implements ports.GeocodeService.
// The first rule whose radius contains the point wins; no match yields no candidates.
func (s *Simulator) Reverse(ctx context.Context, coords domain.Coordinates) ([]domain.AddressCandidate, error) {
	script := s.scenario.Geocode

	if err := s.geocodeFailure(ctx, script.ReverseError); err != nil {
		return nil, err
	}
	if err := wait(ctx, script.Delay); err != nil {
		return nil, err
	}

	for _, rule := range script.Reverse {
		if domain.DistanceKm(rule.Near.coordinates(time.Time{}), coords)*1000 <= rule.RadiusM {
			return []domain.AddressCandidate{rule.Candidate.toDomain()}, nil
		}
	}
	return nil, nil
}

// Forward implements ports.GeocodeService.
// Queries match case-insensitively, first on the whole query, then on the
// longest scripted key it contains. Keys of equal length are tried in order.
func (s *Simulator) Forward(ctx context.Context, query string) ([]domain.Coordinates, error) {
	script := s.scenario.Geocode

	if err := s.geocodeFailure(ctx, script.ForwardError); err != nil {
		return nil, err
	}
	if err := wait(ctx, script.Delay); err != nil {
		return nil, err
	}

	points := forwardMatch(script.Forward, normalizeQuery(query))
	result := make([]domain.Coordinates, 0, len(points))
	for _, p := range points {
		result = append(result, p.coordinates(time.Time{}))
	}
	return result, nil
}

func forwardMatch(forward map[string][]Point, q string) []Point {
	if points, ok := forward[q]; ok {
		return points
	}

	best := ""
	for _, key := range slices.Sorted(maps.Keys(forward)) {
		if len(key) > len(best) && strings.Contains(q, key) {
			best = key
		}
	}
	if best == "" {
		return nil
	}
	return forward[best]
}

func (s *Simulator) geocodeFailure(ctx context.Context, mode string) error {
	switch mode {
	case FailureTimeout:
		<-ctx.Done()
		return fmt.Errorf("%w: %v", domain.ErrGeocodeUnavailable, ctx.Err())
	case FailureUnavailable:
		return domain.ErrGeocodeUnavailable
	}
	return nil
}

// wait sleeps for d unless ctx ends first
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
