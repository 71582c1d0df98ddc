package device

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/freshcart/internal/domain"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

var testNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func TestDefaultScenario(t *testing.T) {
	s := DefaultScenario()

	assert.Equal(t, "default", s.Name)
	assert.True(t, s.ServicesEnabled)
	assert.Equal(t, domain.PermissionGranted, s.Permission.Status)
	require.NotNil(t, s.Position.Current)
	assert.Contains(t, s.Geocode.Forward, "btm layout")
}

func TestParseScenario_Defaults(t *testing.T) {
	s, err := ParseScenario([]byte("name: bare\n"))
	require.NoError(t, err)

	assert.False(t, s.ServicesEnabled)
	assert.Equal(t, domain.PermissionUndetermined, s.Permission.Status)
	assert.Equal(t, domain.PermissionUndetermined, s.Permission.OnRequest)
	assert.Equal(t, domain.PermissionUndetermined, s.Permission.AfterSettings)
}

func TestParseScenario_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"malformed yaml", "permission: [granted"},
		{"unknown permission", "permission:\n  status: maybe\n"},
		{"unknown failure", "position:\n  current_error: flaky\n"},
		{"latitude out of range", "position:\n  current: {latitude: 91, longitude: 0}\n"},
		{"forward out of range", "geocode:\n  forward:\n    x:\n      - {latitude: 0, longitude: 200}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadScenario(t *testing.T) {
	s, err := LoadScenario("")
	require.NoError(t, err)
	assert.Equal(t, "default", s.Name)

	path := filepath.Join(t.TempDir(), "denied.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: denied\nservices_enabled: true\npermission:\n  status: denied\n"), 0644))

	s, err = LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, "denied", s.Name)
	assert.Equal(t, domain.PermissionDenied, s.Permission.Status)

	_, err = LoadScenario(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSimulator_PermissionLifecycle(t *testing.T) {
	s, err := ParseScenario([]byte(`
services_enabled: true
permission:
  status: undetermined
  on_request: denied
  after_settings: granted
`))
	require.NoError(t, err)
	sim := NewSimulator(s, nil)
	ctx := context.Background()

	status, err := sim.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.PermissionUndetermined, status)

	status, err = sim.Request(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.PermissionDenied, status)

	// A denied permission does not prompt again
	status, err = sim.Request(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.PermissionDenied, status)

	require.NoError(t, sim.OpenAppSettings(ctx))
	status, err = sim.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.PermissionGranted, status)
	assert.Equal(t, 1, sim.SettingsOpens())
}

func TestSimulator_CancelledContext(t *testing.T) {
	sim := NewSimulator(nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := sim.Status(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = sim.ServicesEnabled(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = sim.Current(ctx, domain.PositionOptions{})
	assert.ErrorIs(t, err, domain.ErrPositionUnavailable)
}

func TestSimulator_Positions(t *testing.T) {
	s, err := ParseScenario([]byte(`
position:
  current: {latitude: 12.9166, longitude: 77.6101, accuracy: 15}
  last_known: {latitude: 12.9170, longitude: 77.6105, accuracy: 60, age: 2m}
`))
	require.NoError(t, err)
	sim := NewSimulator(s, fixedClock{testNow})

	current, err := sim.Current(context.Background(), domain.PositionOptions{})
	require.NoError(t, err)
	assert.Equal(t, 12.9166, current.Latitude)
	assert.Equal(t, 15.0, current.Accuracy)
	assert.Equal(t, testNow, current.Timestamp)

	last, err := sim.LastKnown(context.Background(), domain.LastKnownOptions{})
	require.NoError(t, err)
	assert.Equal(t, testNow.Add(-2*time.Minute), last.Timestamp)
	assert.Equal(t, 60.0, last.Accuracy)
}

func TestSimulator_PositionFailures(t *testing.T) {
	s, err := ParseScenario([]byte("position:\n  current_error: timeout\n"))
	require.NoError(t, err)
	sim := NewSimulator(s, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = sim.Current(ctx, domain.PositionOptions{})
	assert.ErrorIs(t, err, domain.ErrPositionUnavailable)

	_, err = sim.LastKnown(context.Background(), domain.LastKnownOptions{})
	assert.ErrorIs(t, err, domain.ErrPositionUnavailable)

	s, err = ParseScenario([]byte("position:\n  current: {latitude: 1, longitude: 1}\n  current_error: unavailable\n"))
	require.NoError(t, err)
	_, err = NewSimulator(s, nil).Current(context.Background(), domain.PositionOptions{})
	assert.ErrorIs(t, err, domain.ErrPositionUnavailable)
}

func TestSimulator_Reverse(t *testing.T) {
	sim := NewSimulator(DefaultScenario(), nil)
	ctx := context.Background()

	candidates, err := sim.Reverse(ctx, domain.Coordinates{Latitude: 12.9170, Longitude: 77.6105})
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "BTM Layout", candidates[0].Name)
	assert.Equal(t, "Bengaluru", candidates[0].City)

	candidates, err = sim.Reverse(ctx, domain.Coordinates{Latitude: 0, Longitude: 0})
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestSimulator_Forward(t *testing.T) {
	sim := NewSimulator(DefaultScenario(), nil)
	ctx := context.Background()

	matches, err := sim.Forward(ctx, "  BTM   Layout ")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, 12.9166, matches[0].Latitude)

	matches, err = sim.Forward(ctx, "2nd cross, koramangala")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, 12.9352, matches[0].Latitude)

	matches, err = sim.Forward(ctx, "atlantis")
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestSimulator_ForwardPrefersLongestKey(t *testing.T) {
	s, err := ParseScenario([]byte(`
geocode:
  forward:
    btm:
      - {latitude: 1, longitude: 1}
    btm layout:
      - {latitude: 2, longitude: 2}
    hsr:
      - {latitude: 3, longitude: 3}
    indira:
      - {latitude: 4, longitude: 4}
    domlur:
      - {latitude: 5, longitude: 5}
`))
	require.NoError(t, err)
	sim := NewSimulator(s, nil)
	ctx := context.Background()

	for range 20 {
		matches, err := sim.Forward(ctx, "BTM Layout near HSR")
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, 2.0, matches[0].Latitude)

		// equal length keys resolve in key order
		matches, err = sim.Forward(ctx, "indira to domlur")
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, 5.0, matches[0].Latitude)
	}

	matches, err := NewSimulator(DefaultScenario(), nil).Forward(ctx, "btm layout near koramangala")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, 12.9352, matches[0].Latitude)
}

func TestSimulator_GeocodeFailures(t *testing.T) {
	s, err := ParseScenario([]byte("geocode:\n  reverse_error: unavailable\n  forward_error: unavailable\n"))
	require.NoError(t, err)
	sim := NewSimulator(s, nil)

	_, err = sim.Reverse(context.Background(), domain.Coordinates{})
	assert.ErrorIs(t, err, domain.ErrGeocodeUnavailable)

	_, err = sim.Forward(context.Background(), "btm")
	assert.ErrorIs(t, err, domain.ErrGeocodeUnavailable)
}
