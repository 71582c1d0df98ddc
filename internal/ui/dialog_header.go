package ui

import (
	"fmt"
	"strings"

	"github.com/renato0307/freshcart/internal/domain"
	"github.com/renato0307/freshcart/internal/services"
	"github.com/renato0307/freshcart/internal/theme"
)

// VersionInfo holds version information for display in UI headers.
// Populated by main.go from ldflags-injected values.
type VersionInfo struct {
	Commit    string
	Date      string
	GoVersion string
	Tagline   string
	Version   string
}

// DefaultVersionInfo provides default values when version info is not available
var DefaultVersionInfo = VersionInfo{
	Commit:    "unknown",
	Date:      "unknown",
	GoVersion: "unknown",
	Tagline:   "Fresh groceries, onboarding in your terminal",
	Version:   "dev",
}

// versionInfo holds the global version info set by SetVersionInfo
var versionInfo = DefaultVersionInfo

// SetVersionInfo sets the global version info (called from main.go)
func SetVersionInfo(info VersionInfo) {
	versionInfo = info
}

// renderHeader creates the header shown above every onboarding screen.
// It displays the app name with optional version info (in dev mode) and tagline.
// If subtitle is provided, it's rendered below the tagline.
func renderHeader(devMode bool, subtitle string) string {
	appNameLine := theme.AppNameStyle.Render("freshcart")
	if devMode {
		commit := versionInfo.Commit
		if len(commit) > 7 {
			commit = commit[:7] // Short commit hash
		}
		appNameLine += theme.VersionStyle.Render(fmt.Sprintf(" %s | %s | %s | %s",
			versionInfo.Version,
			commit,
			versionInfo.Date,
			versionInfo.GoVersion))
	}

	result := appNameLine + "\n"
	result += theme.TaglineStyle.Render(versionInfo.Tagline)

	if subtitle != "" {
		result += "\n\n" + theme.SubtitleStyle.Render(subtitle)
	}

	result += "\n"
	return result
}

// renderProgress draws the step plan, e.g. "● Login  ◐ Location  ○ Address  ○ Samples  1 of 4"
func renderProgress(p services.Progress) string {
	parts := make([]string, 0, len(p.Steps)+1)
	for _, step := range p.Steps {
		symbol := p.Symbol(step)
		label := symbol + " " + step.Title
		switch symbol {
		case domain.SymbolCompleted:
			parts = append(parts, theme.StepCompletedStyle.Render(label))
		case domain.SymbolCurrent:
			parts = append(parts, theme.StepCurrentStyle.Render(label))
		default:
			parts = append(parts, theme.StepPendingStyle.Render(label))
		}
	}
	parts = append(parts, theme.MutedStyle.Render(fmt.Sprintf("%d of %d", p.Completed, p.Total)))
	return strings.Join(parts, "  ")
}
