package version

import "fmt"

// Tagline is the application's tagline used in help text and the TUI header
const Tagline = "Fresh groceries, onboarding in your terminal"

// Build information injected at build time via ldflags
// Example: -ldflags="-X github.com/renato0307/freshcart/version.Version=v1.0.0"
var (
	Commit    = "unknown" // Git commit hash
	Date      = "unknown" // Build date (RFC3339)
	GoVersion = "unknown" // Go version used
	Version   = "dev"     // Semantic version or "dev"
)

// Info returns formatted version information
func Info() string {
	return fmt.Sprintf("freshcart %s (commit: %s, built: %s, go: %s)",
		Version, Commit, Date, GoVersion)
}
