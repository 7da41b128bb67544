package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)
)

// Header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Sound list styles
var (
	CursorStyle = lipgloss.NewStyle().
			Foreground(ColorCursor).
			Bold(true)

	LoadedIconStyle = lipgloss.NewStyle().
			Foreground(ColorLoaded)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)

	UnloadedIconStyle = lipgloss.NewStyle().
				Foreground(ColorUnloaded)
)

// Help screen styles
var (
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)

	HelpSeparatorStyle = lipgloss.NewStyle().
				Foreground(ColorVersion)
)

// Status line styles
var (
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	StatusStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
