package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/alecthomas/kong"

	"github.com/renato0307/freshcart/internal/config"
	"github.com/renato0307/freshcart/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version         kong.VersionFlag `help:"Show version information"`
	Debug           bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile       string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	GeocodeCache    string           `help:"Reverse geocode cache: memory, none or redis" enum:"memory,none,redis" default:"memory" env:"FRESHCART_GEOCODE_CACHE"`
	MaxLogFiles     int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	OTPLatencyMs    int              `name:"otp-latency-ms" help:"Simulated OTP gateway latency in milliseconds" default:"1000" env:"FRESHCART_OTP_LATENCY_MS"`
	RedisURL        string           `help:"Redis URL used by the redis geocode cache" env:"FRESHCART_REDIS_URL"`
	Scenario        string           `help:"Device scenario YAML file (built-in default when empty)" type:"path" env:"FRESHCART_SCENARIO"`
	ServiceRadiusKm float64          `help:"Radius around the default location for the radius policy" default:"25" env:"FRESHCART_SERVICE_RADIUS_KM"`
	Serviceability  string           `help:"Serviceability policy: always, radius or zones" enum:"always,radius,zones" default:"zones" env:"FRESHCART_SERVICEABILITY"`

	Run      RunCmd      `cmd:"" help:"Start the onboarding TUI (default)" default:"1"`
	Serve    ServeCmd    `cmd:"serve" help:"Serve the onboarding TUI over SSH"`
	Resolve  ResolveCmd  `cmd:"resolve" help:"Run one location resolution and print the result"`
	OTP      OTPCmd      `cmd:"otp" help:"Inspect one-time password validity"`
	Samples  SamplesCmd  `cmd:"samples" help:"Inspect the sample catalog"`
	Zones    ZonesCmd    `cmd:"zones" help:"Manage service zones"`
	Settings SettingsCmd `cmd:"settings" help:"Show effective settings and an example settings.json"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	c.applySettings()

	// Initialize logging first and get the log file path
	logFilePath, err := logging.Initialize(logging.Options{
		Debug:       c.Debug,
		DebugFile:   c.DebugFile,
		MaxLogFiles: c.MaxLogFiles,
	})
	if err != nil {
		return err
	}

	// Serve sessions and the GORM logger read these to share the same log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("FRESHCART_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("FRESHCART_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != logging.DefaultMaxLogFiles {
		os.Setenv("FRESHCART_MAX_LOG_FILES", strconv.Itoa(c.MaxLogFiles))
	}

	// Create container AFTER logging is initialized
	container, err := NewContainer(c.containerOptions())
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// applySettings fills values from settings.json.
// Precedence: CLI flags > env vars > settings.json > defaults.
// A setting only applies when the flag is at its default and the env var is unset.
func (c *CLI) applySettings() {
	if c.settings == nil {
		return
	}
	s := c.settings

	if c.MaxLogFiles == logging.DefaultMaxLogFiles && !hasEnv("FRESHCART_MAX_LOG_FILES") && s.MaxLogFiles != nil {
		c.MaxLogFiles = *s.MaxLogFiles
	}
	if !c.Debug && !hasEnv("FRESHCART_DEBUG") && s.Debug != nil && *s.Debug {
		c.Debug = true
	}
	if c.GeocodeCache == config.DefaultGeocodeCache && !hasEnv("FRESHCART_GEOCODE_CACHE") && s.GeocodeCache != "" {
		c.GeocodeCache = s.GeocodeCache
	}
	if c.OTPLatencyMs == config.DefaultOTPLatencyMs && !hasEnv("FRESHCART_OTP_LATENCY_MS") && s.OTPLatencyMs != nil {
		c.OTPLatencyMs = *s.OTPLatencyMs
	}
	if c.RedisURL == "" && s.RedisURL != "" {
		c.RedisURL = s.RedisURL
	}
	if c.Scenario == "" && s.Scenario != "" {
		c.Scenario = s.Scenario
	}
	if c.ServiceRadiusKm == config.DefaultServiceRadiusKm && !hasEnv("FRESHCART_SERVICE_RADIUS_KM") && s.ServiceRadiusKm != nil {
		c.ServiceRadiusKm = *s.ServiceRadiusKm
	}
	if c.Serviceability == config.DefaultServiceability && !hasEnv("FRESHCART_SERVICEABILITY") && s.Serviceability != "" {
		c.Serviceability = s.Serviceability
	}
}

func (c *CLI) containerOptions() ContainerOptions {
	return ContainerOptions{
		DBPath:          config.GetDBPath(),
		GeocodeCache:    c.GeocodeCache,
		OTPLatency:      time.Duration(c.OTPLatencyMs) * time.Millisecond,
		RedisURL:        c.RedisURL,
		ScenarioPath:    c.Scenario,
		ServiceRadiusKm: c.ServiceRadiusKm,
		Serviceability:  c.Serviceability,
	}
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

func hasEnv(key string) bool {
	_, ok := os.LookupEnv(key)
	return ok
}
