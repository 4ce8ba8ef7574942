package ui

import "github.com/charmbracelet/lipgloss"

// Palette
var (
	ColorInk          = lipgloss.Color("#E0E0E0")
	ColorMuted        = lipgloss.Color("#5A5A5A")
	ColorAccent       = lipgloss.Color("#00FF41")
	ColorAccentMid    = lipgloss.Color("#00AA22")
	ColorBarBg        = lipgloss.Color("#1A1A1A")
	ColorBorderBright = lipgloss.Color("#00FF41")
	ColorBorderNorm   = lipgloss.Color("#3A3A3A")
	ColorWarning      = lipgloss.Color("#FFAA00")
)

// Pre-built styles
var (
	StyleMenuBar = lipgloss.NewStyle().
			Background(ColorBarBg).
			Foreground(ColorInk).
			Bold(true).
			Padding(0, 1)

	StyleMenuKey = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	StyleMenuLabel = lipgloss.NewStyle().
			Foreground(ColorInk)

	StyleStatusBar = lipgloss.NewStyle().
			Background(ColorBarBg).
			Foreground(ColorAccentMid).
			Padding(0, 1)

	StyleStateOn = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	StyleStateOff = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true)

	StylePanelBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderNorm)

	StylePanelActive = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderBright)

	StylePanelTitle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true).
			Padding(0, 1)

	StyleSeparator = lipgloss.NewStyle().
			Foreground(ColorMuted)

	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
