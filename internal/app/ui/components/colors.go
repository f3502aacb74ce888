package components

import "github.com/charmbracelet/lipgloss"

// Color palette for the UI with semantic naming
const (
	// Foreground colors - text and elements
	FgPrimary = lipgloss.Color("#7D56F4") // Purple - focus, titles
	FgAccent  = lipgloss.Color("#04B575") // Green - dates
	FgText    = lipgloss.Color("#E0E0E0") // Light - body text
	FgMuted   = lipgloss.Color("7")       // Light gray - summaries, images
	FgBorder  = lipgloss.Color("8")       // Gray - separators, help
	FgLink    = lipgloss.Color("12")      // Blue - document and contact links

	// Background colors
	BgSelection = lipgloss.Color("235") // Dark gray - focused item, open menu
)

// SeparatorColor is the adaptive color for header and footer lines
var SeparatorColor = lipgloss.AdaptiveColor{Light: "#737373", Dark: "#a3a3a3"}
