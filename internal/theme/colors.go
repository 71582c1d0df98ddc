package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "35"  // Green - app name, titles
	ColorSecondary Color = "214" // Orange - subtitles, badges
)

// Step state colors
const (
	ColorStepCompleted Color = "2" // Green
	ColorStepCurrent   Color = "3" // Yellow
	ColorStepPending   Color = "8" // Gray
)

// Location outcome colors
const (
	ColorDegraded       Color = "178" // Gold - raw coordinates or default location
	ColorNotServiceable Color = "1"   // Red
	ColorResolved       Color = "2"   // Green
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSelected  Color = "48"  // Bright green - selected items
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
)

// Accent colors
const (
	ColorBorder  Color = "238" // Panel borders
	ColorMarker  Color = "205" // Pink - map marker
	ColorSpinner Color = "205" // Pink
)
