package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Serviceability policies
const (
	ServiceabilityAlways = "always"
	ServiceabilityRadius = "radius"
	ServiceabilityZones  = "zones"
)

// Geocode cache drivers
const (
	GeocodeCacheMemory = "memory"
	GeocodeCacheNone   = "none"
	GeocodeCacheRedis  = "redis"
)

// Defaults applied when neither flag, env nor settings.json set a value
const (
	DefaultGeocodeCache    = GeocodeCacheMemory
	DefaultOTPLatencyMs    = 1000
	DefaultRedisURL        = "redis://localhost:6379/0"
	DefaultServiceRadiusKm = 25.0
	DefaultServiceability  = ServiceabilityZones
	DefaultSplashSeconds   = 3
	DefaultSSHHost         = "localhost"
	DefaultSSHPort         = 23234
)

// Settings represents the structure of ~/.freshcart/settings.json
type Settings struct {
	AuthorizedKeys  string   `json:"authorized_keys,omitempty"`
	Debug           *bool    `json:"debug,omitempty"`
	GeocodeCache    string   `json:"geocode_cache,omitempty"`
	MaxLogFiles     *int     `json:"max_log_files,omitempty"`
	OTPLatencyMs    *int     `json:"otp_latency_ms,omitempty"`
	RedisURL        string   `json:"redis_url,omitempty"`
	Scenario        string   `json:"scenario,omitempty"`
	ServiceRadiusKm *float64 `json:"service_radius_km,omitempty"`
	Serviceability  string   `json:"serviceability,omitempty"`
	SplashSeconds   *int     `json:"splash_seconds,omitempty"`
	SSHHost         string   `json:"ssh_host,omitempty"`
	SSHPort         *int     `json:"ssh_port,omitempty"`
}

// Validate rejects unknown enum values and out-of-range numbers
func (s *Settings) Validate() error {
	switch s.Serviceability {
	case "", ServiceabilityAlways, ServiceabilityRadius, ServiceabilityZones:
	default:
		return fmt.Errorf("unknown serviceability policy '%s'", s.Serviceability)
	}

	switch s.GeocodeCache {
	case "", GeocodeCacheMemory, GeocodeCacheNone, GeocodeCacheRedis:
	default:
		return fmt.Errorf("unknown geocode cache '%s'", s.GeocodeCache)
	}

	if s.ServiceRadiusKm != nil && *s.ServiceRadiusKm <= 0 {
		return fmt.Errorf("service_radius_km must be positive")
	}
	if s.SSHPort != nil && (*s.SSHPort <= 0 || *s.SSHPort > 65535) {
		return fmt.Errorf("ssh_port out of range: %d", *s.SSHPort)
	}
	if s.OTPLatencyMs != nil && *s.OTPLatencyMs < 0 {
		return fmt.Errorf("otp_latency_ms cannot be negative")
	}
	return nil
}

// LoadSettings loads settings from $FRESHCART_HOME/settings.json (or ~/.freshcart/settings.json if not set)
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	path := GetSettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if settings.Scenario != "" {
		settings.Scenario = ExpandPath(settings.Scenario)
	}
	if settings.AuthorizedKeys != "" {
		settings.AuthorizedKeys = ExpandPath(settings.AuthorizedKeys)
	}

	return &settings, nil
}

// SaveSettings saves settings to $FRESHCART_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
