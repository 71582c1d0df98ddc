package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)
)

// Help line styles
var (
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)

	HelpLabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)
)

// Step progress styles
var (
	StepCompletedStyle = lipgloss.NewStyle().
				Foreground(ColorStepCompleted)

	StepCurrentStyle = lipgloss.NewStyle().
				Foreground(ColorStepCurrent).
				Bold(true)

	StepPendingStyle = lipgloss.NewStyle().
				Foreground(ColorStepPending)
)

// Location card styles
var (
	AddressStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)

	DegradedStyle = lipgloss.NewStyle().
			Foreground(ColorDegraded)

	LocationCardStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorder).
				Padding(0, 1)

	MarkerStyle = lipgloss.NewStyle().
			Foreground(ColorMarker).
			Bold(true)

	NotServiceableStyle = lipgloss.NewStyle().
				Foreground(ColorNotServiceable).
				Bold(true)

	ResolvedStyle = lipgloss.NewStyle().
			Foreground(ColorResolved)
)

// Sample list styles
var (
	BadgeStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	CursorStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorSelected).
			Bold(true)
)

// Header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Spinner style
var SpinnerStyle = lipgloss.NewStyle().
	Foreground(ColorSpinner)
