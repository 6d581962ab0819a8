package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "33"  // Blue - app name, titles
	ColorSecondary Color = "86"  // Cyan - subtitles
	ColorAccent    Color = "214" // Orange - active values
)

// Command result colors
const (
	ColorHandled   Color = "2" // Green - command consumed
	ColorUnhandled Color = "1" // Red - command not recognized
)

// Random scheduler colors
const (
	ColorArmed Color = "2" // Green - random armed
	ColorIdle  Color = "8" // Gray - random idle
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
)

// Volume meter colors
const (
	ColorMeterEmpty Color = "238"
	ColorMeterFull  Color = "45"
)
