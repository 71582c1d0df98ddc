package domain

import "time"

// PermissionStatus is the foreground location permission state
type PermissionStatus string

const (
	PermissionDenied       PermissionStatus = "denied"
	PermissionGranted      PermissionStatus = "granted"
	PermissionUndetermined PermissionStatus = "undetermined"
)

// Accuracy is the requested position accuracy
type Accuracy string

const (
	AccuracyBalanced Accuracy = "balanced"
	AccuracyHigh     Accuracy = "high"
	AccuracyLow      Accuracy = "low"
)

// PositionOptions configures a current-position request
type PositionOptions struct {
	Accuracy Accuracy
	MaxAge   time.Duration
	Timeout  time.Duration
}

// LastKnownOptions bounds the staleness and accuracy of a cached position
type LastKnownOptions struct {
	MaxAge           time.Duration
	RequiredAccuracy float64 // meters
}

// Phase is a state of the location resolution state machine
type Phase string

const (
	PhaseIdle                Phase = "idle"
	PhaseCheckingPermission  Phase = "checking_permission"
	PhasePermissionGranted   Phase = "permission_granted"
	PhasePermissionDenied    Phase = "permission_denied"
	PhaseAcquiringPosition   Phase = "acquiring_position"
	PhasePositionOK          Phase = "position_ok"
	PhasePositionFailed      Phase = "position_failed"
	PhaseAcquiringLastKnown  Phase = "acquiring_last_known"
	PhaseLastKnownOK         Phase = "last_known_ok"
	PhaseLastKnownFailed     Phase = "last_known_failed"
	PhaseUsingDefault        Phase = "using_default"
	PhaseReverseGeocoding    Phase = "reverse_geocoding"
	PhaseGeocodeOK           Phase = "geocode_ok"
	PhaseGeocodeFailed       Phase = "geocode_failed"
	PhaseUsingRawCoordinates Phase = "using_raw_coordinates"
	PhaseResolved            Phase = "resolved"
	PhaseAwaitingUserAction  Phase = "awaiting_user_action"
	PhaseForwardGeocoding    Phase = "forward_geocoding"
)

// Trigger is what started a resolution attempt
type Trigger string

const (
	TriggerCurrentLocation Trigger = "current_location"
	TriggerForeground      Trigger = "foreground"
	TriggerLoad            Trigger = "load"
	TriggerMapPoint        Trigger = "map_point"
	TriggerMarkerDrag      Trigger = "marker_drag"
	TriggerSearch          Trigger = "search"
	TriggerSkip            Trigger = "skip"
)

// PositionSource tells where the coordinates of a resolution came from
type PositionSource string

const (
	SourceDefault    PositionSource = "default"
	SourceGPS        PositionSource = "gps"
	SourceLastKnown  PositionSource = "last_known"
	SourceMapPoint   PositionSource = "map_point"
	SourceMarkerDrag PositionSource = "marker_drag"
	SourceNone       PositionSource = ""
	SourceSearch     PositionSource = "search"
)

// ResolutionKind tags the outcome of a resolution attempt
type ResolutionKind int

const (
	ResolutionResolved ResolutionKind = iota
	ResolutionDegraded
	ResolutionFailed
)

// String returns the kind name
func (k ResolutionKind) String() string {
	switch k {
	case ResolutionResolved:
		return "resolved"
	case ResolutionDegraded:
		return "degraded"
	case ResolutionFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Resolution is the outcome of one resolution attempt.
// Resolved and Degraded carry a Location; Degraded and Failed carry a Reason.
type Resolution struct {
	Attempt   uint64
	Committed bool // Whether Location was written to the session store
	Kind      ResolutionKind
	Location  ResolvedLocation
	Phases    []Phase
	Reason    error
	Source    PositionSource
	Trigger   Trigger
}

// HasLocation reports whether the resolution produced a location
func (r Resolution) HasLocation() bool {
	return r.Kind != ResolutionFailed
}

// Terminal returns the last phase reached
func (r Resolution) Terminal() Phase {
	if len(r.Phases) == 0 {
		return PhaseIdle
	}
	return r.Phases[len(r.Phases)-1]
}
