package theme

import "github.com/charmbracelet/lipgloss"

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

// Status panel styles
var (
	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle).
			Width(14)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	ArmedStyle = lipgloss.NewStyle().
			Foreground(ColorArmed).
			Bold(true)

	IdleStyle = lipgloss.NewStyle().
			Foreground(ColorIdle)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1)
)

// Volume meter styles
var (
	MeterEmptyStyle = lipgloss.NewStyle().
			Foreground(ColorMeterEmpty)

	MeterFullStyle = lipgloss.NewStyle().
			Foreground(ColorMeterFull)
)

// Command history styles
var (
	HandledStyle = lipgloss.NewStyle().
			Foreground(ColorHandled)

	UnhandledStyle = lipgloss.NewStyle().
			Foreground(ColorUnhandled)

	HistoryStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	PromptStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)
)

// Help styles
var HelpStyle = lipgloss.NewStyle().
	Foreground(ColorMuted).
	Padding(1, 0, 0, 0)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)
