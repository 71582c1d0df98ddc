package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/freshcart/internal/config"
)

func defaultCLI() CLI {
	return CLI{
		GeocodeCache:    config.DefaultGeocodeCache,
		MaxLogFiles:     1000,
		OTPLatencyMs:    config.DefaultOTPLatencyMs,
		ServiceRadiusKm: config.DefaultServiceRadiusKm,
		Serviceability:  config.DefaultServiceability,
	}
}

func TestApplySettings_UsesSettingsForDefaults(t *testing.T) {
	radius := 12.5
	latency := 0
	cli := defaultCLI()
	cli.SetSettings(&config.Settings{
		GeocodeCache:    config.GeocodeCacheNone,
		OTPLatencyMs:    &latency,
		Scenario:        "/tmp/denied.yaml",
		ServiceRadiusKm: &radius,
		Serviceability:  config.ServiceabilityRadius,
	})

	cli.applySettings()

	assert.Equal(t, config.GeocodeCacheNone, cli.GeocodeCache)
	assert.Equal(t, 0, cli.OTPLatencyMs)
	assert.Equal(t, "/tmp/denied.yaml", cli.Scenario)
	assert.Equal(t, 12.5, cli.ServiceRadiusKm)
	assert.Equal(t, config.ServiceabilityRadius, cli.Serviceability)
}

func TestApplySettings_FlagAndEnvWin(t *testing.T) {
	t.Setenv("FRESHCART_SERVICEABILITY", "zones")

	cli := defaultCLI()
	cli.GeocodeCache = config.GeocodeCacheRedis // set by flag
	cli.SetSettings(&config.Settings{
		GeocodeCache:   config.GeocodeCacheNone,
		Serviceability: config.ServiceabilityAlways,
	})

	cli.applySettings()

	assert.Equal(t, config.GeocodeCacheRedis, cli.GeocodeCache)
	assert.Equal(t, config.ServiceabilityZones, cli.Serviceability)
}

func TestNewContainer(t *testing.T) {
	newTestHome(t)
	cli := defaultCLI()

	container, err := NewContainer(cli.containerOptions())
	require.NoError(t, err)
	defer container.Close()

	assert.Equal(t, "default", container.Scenario.Name)
	assert.NotNil(t, container.GeocodeCache)

	a := container.NewSession()
	b := container.NewSession()
	defer a.Close()
	defer b.Close()
	assert.NotEqual(t, a.Store.ID(), b.Store.ID())
}

func TestNewContainer_Errors(t *testing.T) {
	home := newTestHome(t)

	tests := []struct {
		name string
		opts func(*ContainerOptions)
	}{
		{"missing scenario", func(o *ContainerOptions) { o.ScenarioPath = filepath.Join(home, "missing.yaml") }},
		{"unknown policy", func(o *ContainerOptions) { o.Serviceability = "everywhere" }},
		{"unknown cache", func(o *ContainerOptions) { o.GeocodeCache = "disk" }},
		{"unreachable redis", func(o *ContainerOptions) {
			o.GeocodeCache = config.GeocodeCacheRedis
			o.RedisURL = "redis://127.0.0.1:1/0"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli := defaultCLI()
			opts := cli.containerOptions()
			tt.opts(&opts)

			_, err := NewContainer(opts)
			assert.Error(t, err)
		})
	}
}

func TestRunCLI_SettingsFileApplies(t *testing.T) {
	home := newTestHome(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte(`{"serviceability": "always"}`), 0644))

	result := runCLI(t, "settings", "show", "--format", "json")

	require.NoError(t, result.Err)
	assert.Contains(t, result.Stdout, `"serviceability": "always"`)
}
