package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/renato0307/freshcart/internal/domain"
	"github.com/renato0307/freshcart/internal/logging"
	"github.com/renato0307/freshcart/internal/ports"
)

// Position request policies
var (
	// LoadPositionOptions is used when the location screen opens
	LoadPositionOptions = domain.PositionOptions{
		Accuracy: domain.AccuracyBalanced,
		MaxAge:   10 * time.Second,
		Timeout:  15 * time.Second,
	}

	// CurrentPositionOptions is used by the explicit "use current location" action
	CurrentPositionOptions = domain.PositionOptions{
		Accuracy: domain.AccuracyHigh,
		MaxAge:   5 * time.Second,
		Timeout:  10 * time.Second,
	}

	// LastKnownPolicy bounds the fallback position
	LastKnownPolicy = domain.LastKnownOptions{
		MaxAge:           5 * time.Minute,
		RequiredAccuracy: 1000,
	}

	// GeocodeTimeout bounds every forward and reverse geocoding call
	GeocodeTimeout = 10 * time.Second
)

// LocationService runs location resolution attempts and writes their results
// into the session store. A new attempt supersedes any attempt still in flight.
type LocationService struct {
	awaiting       bool
	cancelInFlight context.CancelFunc
	clock          ports.Clock
	geocoder       ports.GeocodeService
	geocodeTimeout time.Duration
	lastCommitted  uint64
	latest         *domain.Resolution
	mu             sync.Mutex
	permissions    ports.PermissionService
	positions      ports.PositionService
	seq            uint64
	serviceability ports.ServiceabilityChecker
	settings       ports.SettingsLauncher
	store          *SessionStore
}

// NewLocationService creates a new LocationService
func NewLocationService(
	store *SessionStore,
	permissions ports.PermissionService,
	positions ports.PositionService,
	geocoder ports.GeocodeService,
	settings ports.SettingsLauncher,
	serviceability ports.ServiceabilityChecker,
	clock ports.Clock,
) *LocationService {
	if clock == nil {
		clock = SystemClock{}
	}
	if serviceability == nil {
		serviceability = AlwaysServiceable{}
	}
	return &LocationService{
		clock:          clock,
		geocoder:       geocoder,
		geocodeTimeout: GeocodeTimeout,
		permissions:    permissions,
		positions:      positions,
		serviceability: serviceability,
		settings:       settings,
		store:          store,
	}
}

// attempt is one run of the resolution state machine
type attempt struct {
	cancel  context.CancelFunc
	ctx     context.Context
	phases  []domain.Phase
	seq     uint64
	trigger domain.Trigger
}

func (a *attempt) enter(phase domain.Phase) {
	a.phases = append(a.phases, phase)
	logging.Logger.Debug("Location phase",
		"attempt", a.seq,
		"trigger", a.trigger,
		"phase", phase)
}

func (a *attempt) resolved(kind domain.ResolutionKind, loc domain.ResolvedLocation, source domain.PositionSource, reason error) domain.Resolution {
	return domain.Resolution{
		Kind:     kind,
		Location: loc,
		Reason:   reason,
		Source:   source,
	}
}

func (a *attempt) failed(reason error) domain.Resolution {
	return domain.Resolution{Kind: domain.ResolutionFailed, Reason: reason}
}

// begin starts a new attempt and cancels the one in flight
func (s *LocationService) begin(ctx context.Context, trigger domain.Trigger) *attempt {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancelInFlight != nil {
		s.cancelInFlight()
	}
	s.seq++

	attemptCtx, cancel := context.WithCancel(ctx)
	s.cancelInFlight = cancel

	a := &attempt{
		cancel:  cancel,
		ctx:     attemptCtx,
		seq:     s.seq,
		trigger: trigger,
	}
	logging.Logger.Info("Location resolution started", "attempt", a.seq, "trigger", trigger)
	a.enter(domain.PhaseIdle)
	return a
}

// finish commits the attempt's location unless a newer attempt exists,
// and records the outcome as the latest resolution
func (s *LocationService) finish(a *attempt, res domain.Resolution) domain.Resolution {
	defer a.cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	res.Attempt = a.seq
	res.Trigger = a.trigger
	res.Phases = a.phases

	if err := a.ctx.Err(); err != nil || a.seq <= s.lastCommitted {
		reason := domain.ErrSuperseded
		if a.seq == s.seq && err != nil && a.seq > s.lastCommitted {
			// Cancelled by the caller, not by a newer attempt
			reason = fmt.Errorf("resolution cancelled: %w", err)
		}
		logging.Logger.Info("Location resolution discarded",
			"attempt", a.seq,
			"trigger", a.trigger,
			"reason", reason)
		return domain.Resolution{
			Attempt: a.seq,
			Kind:    domain.ResolutionFailed,
			Phases:  a.phases,
			Reason:  reason,
			Trigger: a.trigger,
		}
	}

	if res.HasLocation() {
		if err := s.store.SetLocation(res.Location); err != nil {
			logging.Logger.Warn("Resolved location rejected by session store",
				"attempt", a.seq,
				"error", err)
			res = domain.Resolution{
				Attempt: a.seq,
				Kind:    domain.ResolutionFailed,
				Phases:  a.phases,
				Reason:  err,
				Trigger: a.trigger,
			}
		} else {
			res.Committed = true
			s.lastCommitted = a.seq
			s.awaiting = false
		}
	}

	if res.Terminal() == domain.PhaseAwaitingUserAction {
		s.awaiting = true
	}

	latest := res
	s.latest = &latest

	logging.Logger.Info("Location resolution finished",
		"attempt", a.seq,
		"trigger", a.trigger,
		"kind", res.Kind,
		"terminal", res.Terminal(),
		"committed", res.Committed,
		"reason", res.Reason)
	return res
}

// supersede invalidates every attempt in flight without starting a new one
func (s *LocationService) supersede() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancelInFlight != nil {
		s.cancelInFlight()
		s.cancelInFlight = nil
	}
	s.seq++
	s.lastCommitted = s.seq
}

// Close cancels any attempt in flight. Later results are discarded.
func (s *LocationService) Close() {
	s.supersede()
}

// ResolveOnLoad runs the full chain when the location screen opens.
// An undetermined permission is requested from the user.
func (s *LocationService) ResolveOnLoad(ctx context.Context) domain.Resolution {
	a := s.begin(ctx, domain.TriggerLoad)
	return s.finish(a, s.resolveFromDevice(a, LoadPositionOptions, true))
}

// ResolveCurrentLocation runs the full chain for the explicit "use current location" action
func (s *LocationService) ResolveCurrentLocation(ctx context.Context) domain.Resolution {
	a := s.begin(ctx, domain.TriggerCurrentLocation)
	return s.finish(a, s.resolveFromDevice(a, CurrentPositionOptions, false))
}

// ResumeOnForeground re-checks the permission after the user returned from the
// system settings. It does nothing unless a previous attempt is awaiting user action.
func (s *LocationService) ResumeOnForeground(ctx context.Context) (domain.Resolution, bool) {
	if !s.AwaitingUserAction() {
		return domain.Resolution{}, false
	}
	a := s.begin(ctx, domain.TriggerForeground)
	return s.finish(a, s.resolveFromDevice(a, LoadPositionOptions, false)), true
}

// ResolveFromSearch forward geocodes the query and labels the first match by
// reverse geocoding its coordinates
func (s *LocationService) ResolveFromSearch(ctx context.Context, query string) domain.Resolution {
	a := s.begin(ctx, domain.TriggerSearch)

	query = strings.TrimSpace(query)
	if query == "" {
		return s.finish(a, a.failed(domain.ErrEmptySearchQuery))
	}

	a.enter(domain.PhaseForwardGeocoding)
	geocodeCtx, cancel := context.WithTimeout(a.ctx, s.geocodeTimeout)
	matches, err := s.geocoder.Forward(geocodeCtx, query)
	cancel()
	if err != nil {
		logging.Logger.Warn("Forward geocoding failed", "query", query, "error", err)
		return s.finish(a, a.failed(fmt.Errorf("%w: %v", domain.ErrGeocodeUnavailable, err)))
	}

	for _, match := range matches {
		if match.Valid() {
			return s.finish(a, s.label(a, match, domain.SourceSearch, nil))
		}
	}
	return s.finish(a, a.failed(domain.ErrNoSearchResults))
}

// ResolveFromMapPoint labels a point the user tapped on the map
func (s *LocationService) ResolveFromMapPoint(ctx context.Context, coords domain.Coordinates) domain.Resolution {
	return s.resolvePoint(ctx, domain.TriggerMapPoint, domain.SourceMapPoint, coords)
}

// ResolveFromMarkerDrag labels the point where the user dropped the marker
func (s *LocationService) ResolveFromMarkerDrag(ctx context.Context, coords domain.Coordinates) domain.Resolution {
	return s.resolvePoint(ctx, domain.TriggerMarkerDrag, domain.SourceMarkerDrag, coords)
}

func (s *LocationService) resolvePoint(
	ctx context.Context,
	trigger domain.Trigger,
	source domain.PositionSource,
	coords domain.Coordinates,
) domain.Resolution {
	a := s.begin(ctx, trigger)
	if !coords.Valid() {
		return s.finish(a, a.failed(fmt.Errorf("%w: %s", domain.ErrMalformedLocation, coords)))
	}
	return s.finish(a, s.label(a, coords, source, nil))
}

// CommitLocationAndAdvance confirms the current location and completes the
// location step. The default location is used when nothing was resolved.
func (s *LocationService) CommitLocationAndAdvance(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to commit location: %w", err)
	}

	loc, ok := s.store.Location()
	if ok && !loc.IsServiceable {
		logging.Logger.Info("Refusing to advance with unserviceable location", "location", loc.Address)
		return domain.ErrNotServiceable
	}

	s.supersede()

	if !ok {
		logging.Logger.Info("No location resolved, committing default")
		if err := s.store.SetLocation(domain.DefaultLocation()); err != nil {
			return fmt.Errorf("failed to set default location: %w", err)
		}
	}

	if err := s.store.CompleteStep(domain.StepLocation); err != nil {
		return fmt.Errorf("failed to complete location step: %w", err)
	}
	return nil
}

// SkipToDefault abandons any attempt in flight, writes the default location
// and completes the location step
func (s *LocationService) SkipToDefault(ctx context.Context) error {
	a := s.begin(ctx, domain.TriggerSkip)
	a.enter(domain.PhaseUsingDefault)
	res := s.finish(a, a.resolved(domain.ResolutionResolved, domain.DefaultLocation(), domain.SourceDefault, nil))
	if !res.Committed {
		return fmt.Errorf("failed to commit default location: %w", res.Reason)
	}

	if err := s.store.CompleteStep(domain.StepLocation); err != nil {
		return fmt.Errorf("failed to complete location step: %w", err)
	}
	return nil
}

// OpenSettings sends the user to the system settings to grant permission
func (s *LocationService) OpenSettings(ctx context.Context) error {
	if err := s.settings.OpenAppSettings(ctx); err != nil {
		return fmt.Errorf("failed to open app settings: %w", err)
	}
	return nil
}

// AwaitingUserAction reports whether the last device attempt stopped on a
// denied permission or disabled location services
func (s *LocationService) AwaitingUserAction() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.awaiting
}

// Latest returns the outcome of the most recent attempt that was not superseded
func (s *LocationService) Latest() (domain.Resolution, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.latest == nil {
		return domain.Resolution{}, false
	}
	return *s.latest, true
}

// resolveFromDevice runs permission negotiation, position acquisition with the
// last-known and default fallbacks, then reverse geocoding
func (s *LocationService) resolveFromDevice(a *attempt, opts domain.PositionOptions, request bool) domain.Resolution {
	a.enter(domain.PhaseCheckingPermission)

	enabled, status := s.preflight(a.ctx)
	if status == domain.PermissionUndetermined && request && enabled {
		requested, err := s.permissions.Request(a.ctx)
		if err != nil {
			logging.Logger.Warn("Permission request failed", "error", err)
			requested = domain.PermissionDenied
		}
		status = requested
	}

	if !enabled || status != domain.PermissionGranted {
		a.enter(domain.PhasePermissionDenied)
		a.enter(domain.PhaseAwaitingUserAction)
		if !enabled {
			return a.failed(domain.ErrServicesDisabled)
		}
		return a.failed(domain.ErrPermissionDenied)
	}
	a.enter(domain.PhasePermissionGranted)

	a.enter(domain.PhaseAcquiringPosition)
	coords, err := s.currentPosition(a.ctx, opts)
	if err == nil {
		a.enter(domain.PhasePositionOK)
		return s.label(a, coords, domain.SourceGPS, nil)
	}
	logging.Logger.Warn("Current position unavailable", "attempt", a.seq, "error", err)
	a.enter(domain.PhasePositionFailed)

	a.enter(domain.PhaseAcquiringLastKnown)
	coords, err = s.lastKnownPosition(a.ctx)
	if err == nil {
		a.enter(domain.PhaseLastKnownOK)
		return s.label(a, coords, domain.SourceLastKnown, domain.ErrPositionUnavailable)
	}
	logging.Logger.Warn("Last known position unavailable", "attempt", a.seq, "error", err)
	a.enter(domain.PhaseLastKnownFailed)

	a.enter(domain.PhaseUsingDefault)
	return a.resolved(domain.ResolutionDegraded, domain.DefaultLocation(), domain.SourceDefault, domain.ErrPositionUnavailable)
}

// preflight checks location services and permission status concurrently.
// API failures count as disabled services or denied permission.
func (s *LocationService) preflight(ctx context.Context) (bool, domain.PermissionStatus) {
	var (
		enabled bool
		status  = domain.PermissionDenied
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		on, err := s.permissions.ServicesEnabled(ctx)
		if err != nil {
			logging.Logger.Warn("Failed to check location services", "error", err)
			return nil
		}
		enabled = on
		return nil
	})

	g.Go(func() error {
		st, err := s.permissions.Status(ctx)
		if err != nil {
			logging.Logger.Warn("Failed to read permission status", "error", err)
			return nil
		}
		status = st
		return nil
	})

	_ = g.Wait()
	logging.Logger.Debug("Permission preflight", "services_enabled", enabled, "status", status)
	return enabled, status
}

// currentPosition asks for a fix, bounded by the request timeout
func (s *LocationService) currentPosition(ctx context.Context, opts domain.PositionOptions) (domain.Coordinates, error) {
	posCtx := ctx
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		posCtx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	coords, err := s.positions.Current(posCtx, opts)
	if err != nil {
		return domain.Coordinates{}, err
	}
	if !coords.Valid() {
		return domain.Coordinates{}, fmt.Errorf("%w: invalid fix %s", domain.ErrPositionUnavailable, coords)
	}
	return coords, nil
}

// lastKnownPosition returns the cached fix if it is fresh and accurate enough
func (s *LocationService) lastKnownPosition(ctx context.Context) (domain.Coordinates, error) {
	coords, err := s.positions.LastKnown(ctx, LastKnownPolicy)
	if err != nil {
		return domain.Coordinates{}, err
	}
	if !coords.Valid() {
		return domain.Coordinates{}, fmt.Errorf("%w: invalid fix %s", domain.ErrPositionUnavailable, coords)
	}
	if !coords.Timestamp.IsZero() {
		if age := s.clock.Now().Sub(coords.Timestamp); age > LastKnownPolicy.MaxAge {
			return domain.Coordinates{}, fmt.Errorf("%w: last known fix is %s old", domain.ErrPositionUnavailable, age.Round(time.Second))
		}
	}
	if coords.Accuracy > LastKnownPolicy.RequiredAccuracy {
		return domain.Coordinates{}, fmt.Errorf("%w: last known fix accuracy %.0fm", domain.ErrPositionUnavailable, coords.Accuracy)
	}
	return coords, nil
}

// label reverse geocodes coords and evaluates serviceability.
// positionReason is set when the coordinates themselves came from a fallback.
func (s *LocationService) label(a *attempt, coords domain.Coordinates, source domain.PositionSource, positionReason error) domain.Resolution {
	a.enter(domain.PhaseReverseGeocoding)

	var (
		loc    domain.ResolvedLocation
		kind   = domain.ResolutionResolved
		reason = positionReason
	)

	geocodeCtx, cancel := context.WithTimeout(a.ctx, s.geocodeTimeout)
	candidates, err := s.geocoder.Reverse(geocodeCtx, coords)
	cancel()
	switch {
	case err == nil && len(candidates) > 0:
		a.enter(domain.PhaseGeocodeOK)
		loc = domain.LabelFromCandidate(coords, candidates[0])
		a.enter(domain.PhaseResolved)
	default:
		if err == nil {
			err = errors.New("no address candidates")
		}
		logging.Logger.Warn("Reverse geocoding failed", "coords", coords.String(), "error", err)
		a.enter(domain.PhaseGeocodeFailed)
		loc = domain.LabelFromCoordinates(coords)
		a.enter(domain.PhaseUsingRawCoordinates)
		reason = errors.Join(positionReason, domain.ErrGeocodeUnavailable)
	}

	if reason != nil {
		kind = domain.ResolutionDegraded
	}

	loc.IsServiceable = s.serviceability.IsServiceable(a.ctx, coords)
	return a.resolved(kind, loc, source, reason)
}
