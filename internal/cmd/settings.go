package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/renato0307/freshcart/internal/config"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Example SettingsExampleCmd `cmd:"example" help:"Show an example settings.json with every option"`
	Show    SettingsShowCmd    `cmd:"show" help:"Show the settings file location and effective values" default:"1"`
}

// SettingsShowCmd displays the effective configuration
type SettingsShowCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// SettingsExampleCmd displays an example settings file
type SettingsExampleCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the show command
func (s *SettingsShowCmd) Run(cli *CLI) error {
	effective := map[string]any{
		"debug":             cli.Debug,
		"geocode_cache":     cli.GeocodeCache,
		"max_log_files":     cli.MaxLogFiles,
		"otp_latency_ms":    cli.OTPLatencyMs,
		"redis_url":         cli.RedisURL,
		"scenario":          cli.Scenario,
		"service_radius_km": cli.ServiceRadiusKm,
		"serviceability":    cli.Serviceability,
	}
	return writeSettings(os.Stdout, config.GetSettingsPath(), effective, s.Format)
}

// Run executes the example command
func (s *SettingsExampleCmd) Run(cli *CLI) error {
	if err := writeSettings(os.Stdout, config.GetSettingsPath(), config.GetSettingsExample(), s.Format); err != nil {
		return err
	}
	if s.Format == "table" {
		fmt.Println()
		fmt.Println("Create or edit this file to configure freshcart.")
		fmt.Println("All settings are optional and have sensible defaults.")
	}
	return nil
}

func writeSettings(w io.Writer, settingsFile string, values map[string]any, format string) error {
	if format == "json" {
		output := map[string]any{
			"settings_file": settingsFile,
			"values":        values,
		}
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(w, string(data))
		return nil
	}

	fmt.Fprintf(w, "Settings file: %s\n\n", settingsFile)

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, key := range keys {
		value := values[key]
		var valueStr string
		switch v := value.(type) {
		case string:
			valueStr = v
			if v == "" {
				valueStr = "-"
			}
		case bool:
			valueStr = fmt.Sprintf("%t", v)
		case int:
			valueStr = fmt.Sprintf("%d", v)
		default:
			valueStr = fmt.Sprintf("%v", v)
		}
		fmt.Fprintf(tw, "%s\t%s\n", key, valueStr)
	}
	return tw.Flush()
}
