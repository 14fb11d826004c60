package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/RBEGamer/OnRobot3FG15/internal/version"
)

// Application branding constants
const (
	AppName = "3FG15 GRIPPER CONTROL PANEL"
)

// AppVersion returns the application version from the centralized version package
func AppVersion() string {
	return version.Version
}

// Layout constants for responsive terminal width
const (
	MinTerminalWidth = 60 // Minimum supported terminal width
	MaxContentWidth  = 96 // Maximum content width before capping
)

// Color palette
var (
	// Primary colors
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple
	SecondaryColor = lipgloss.Color("#43BF6D") // Green
	WarningColor   = lipgloss.Color("#FFA500") // Orange
	ErrorColor     = lipgloss.Color("#FF5F5F") // Red

	// Neutral colors
	TextColor      = lipgloss.Color("#FFFFFF") // White
	SubtleColor    = lipgloss.Color("#626262") // Gray
	BorderColor    = lipgloss.Color("#7D56F4") // Purple (same as primary)
	HighlightColor = lipgloss.Color("#43BF6D") // Green (same as secondary)
)

// Common styles
var (
	// Title style for the panel header
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			Padding(1, 0)

	// Subtitle style for the device address line
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)

	// Status box around the projected snapshot
	StatusBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(1, 2)

	// Field label inside the status box
	LabelStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Width(12)

	// Field value inside the status box
	ValueStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	// Highlighted value (gripped, ready)
	ActiveValueStyle = lipgloss.NewStyle().
				Foreground(HighlightColor).
				Bold(true)

	// Warning value (not ready)
	WarnValueStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	// Error line under the status box
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// Parameter input label (unfocused)
	InputLabelStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// Parameter input label (focused)
	FocusedInputLabelStyle = lipgloss.NewStyle().
				Foreground(HighlightColor).
				Bold(true)

	// Help text style
	HelpStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Padding(1, 0)
)
