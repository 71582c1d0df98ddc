package device

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/renato0307/freshcart/internal/domain"
)

//go:embed scenarios/default.yaml
var defaultScenario []byte

// Failure modes for position and geocoding calls
const (
	FailureNone        = ""
	FailureTimeout     = "timeout"     // Block until the caller's deadline
	FailureUnavailable = "unavailable" // Fail immediately
)

// Scenario scripts how the simulated device answers the location workflow
type Scenario struct {
	Geocode         GeocodeScript    `yaml:"geocode"`
	Name            string           `yaml:"name"`
	Permission      PermissionScript `yaml:"permission"`
	Position        PositionScript   `yaml:"position"`
	ServicesEnabled bool             `yaml:"services_enabled"`
}

// PermissionScript scripts the permission dialog
type PermissionScript struct {
	AfterSettings domain.PermissionStatus `yaml:"after_settings"` // Status once the user visited the settings page
	OnRequest     domain.PermissionStatus `yaml:"on_request"`     // Answer to the permission prompt
	Status        domain.PermissionStatus `yaml:"status"`
}

// Point is a coordinate as written in scenario files
type Point struct {
	Accuracy  float64       `yaml:"accuracy"`
	Age       time.Duration `yaml:"age"`
	Latitude  float64       `yaml:"latitude"`
	Longitude float64       `yaml:"longitude"`
}

// PositionScript scripts GPS fixes
type PositionScript struct {
	Current      *Point        `yaml:"current"`
	CurrentError string        `yaml:"current_error"`
	Delay        time.Duration `yaml:"delay"`
	LastKnown    *Point        `yaml:"last_known"`
}

// ReverseRule answers reverse lookups within RadiusM meters of Near
type ReverseRule struct {
	Candidate Candidate `yaml:"candidate"`
	Near      Point     `yaml:"near"`
	RadiusM   float64   `yaml:"radius_m"`
}

// Candidate is an address candidate as written in scenario files
type Candidate struct {
	City      string `yaml:"city"`
	District  string `yaml:"district"`
	Name      string `yaml:"name"`
	Region    string `yaml:"region"`
	Street    string `yaml:"street"`
	Subregion string `yaml:"subregion"`
}

// GeocodeScript scripts the geocoding provider
type GeocodeScript struct {
	Delay        time.Duration      `yaml:"delay"`
	Forward      map[string][]Point `yaml:"forward"`
	ForwardError string             `yaml:"forward_error"`
	Reverse      []ReverseRule      `yaml:"reverse"`
	ReverseError string             `yaml:"reverse_error"`
}

// DefaultScenario returns the built-in scenario
func DefaultScenario() *Scenario {
	s, err := ParseScenario(defaultScenario)
	if err != nil {
		panic(fmt.Sprintf("built-in scenario is invalid: %v", err))
	}
	return s
}

// LoadScenario reads a scenario file. An empty path returns the built-in scenario.
func LoadScenario(path string) (*Scenario, error) {
	if path == "" {
		return DefaultScenario(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	s, err := ParseScenario(data)
	if err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", path, err)
	}
	return s, nil
}

// ParseScenario decodes and validates a YAML scenario
func ParseScenario(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}

	s.normalize()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Scenario) normalize() {
	if s.Permission.Status == "" {
		s.Permission.Status = domain.PermissionUndetermined
	}
	if s.Permission.OnRequest == "" {
		s.Permission.OnRequest = s.Permission.Status
	}
	if s.Permission.AfterSettings == "" {
		s.Permission.AfterSettings = s.Permission.Status
	}

	forward := make(map[string][]Point, len(s.Geocode.Forward))
	for query, points := range s.Geocode.Forward {
		forward[normalizeQuery(query)] = points
	}
	s.Geocode.Forward = forward
}

// Validate checks enum values and coordinates
func (s *Scenario) Validate() error {
	for _, status := range []domain.PermissionStatus{s.Permission.Status, s.Permission.OnRequest, s.Permission.AfterSettings} {
		switch status {
		case domain.PermissionGranted, domain.PermissionDenied, domain.PermissionUndetermined:
		default:
			return fmt.Errorf("unknown permission status '%s'", status)
		}
	}

	for _, failure := range []string{s.Position.CurrentError, s.Geocode.ForwardError, s.Geocode.ReverseError} {
		switch failure {
		case FailureNone, FailureTimeout, FailureUnavailable:
		default:
			return fmt.Errorf("unknown failure mode '%s'", failure)
		}
	}

	points := []*Point{s.Position.Current, s.Position.LastKnown}
	for i := range s.Geocode.Reverse {
		points = append(points, &s.Geocode.Reverse[i].Near)
	}
	for _, matches := range s.Geocode.Forward {
		for i := range matches {
			points = append(points, &matches[i])
		}
	}
	for _, p := range points {
		if p != nil && !p.coordinates(time.Time{}).Valid() {
			return fmt.Errorf("coordinates out of range: %v, %v", p.Latitude, p.Longitude)
		}
	}
	return nil
}

func (p Point) coordinates(now time.Time) domain.Coordinates {
	c := domain.Coordinates{
		Accuracy:  p.Accuracy,
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
	}
	if !now.IsZero() {
		c.Timestamp = now.Add(-p.Age)
	}
	return c
}

func (c Candidate) toDomain() domain.AddressCandidate {
	return domain.AddressCandidate{
		City:      c.City,
		District:  c.District,
		Name:      c.Name,
		Region:    c.Region,
		Street:    c.Street,
		Subregion: c.Subregion,
	}
}

func normalizeQuery(q string) string {
	return strings.ToLower(strings.Join(strings.Fields(q), " "))
}
