package components

import "github.com/charmbracelet/lipgloss"

// Layout styles
var (
	HeaderStyle     = lipgloss.NewStyle().Padding(1, 1, 0, 1)
	FooterStyle     = lipgloss.NewStyle().Padding(0, 1)
	FooterHelpStyle = lipgloss.NewStyle().Padding(0, 1)
	ContentStyle    = lipgloss.NewStyle().Padding(1, 2)
	SeparatorStyle  = lipgloss.NewStyle().Foreground(SeparatorColor)
	HelpStyle       = lipgloss.NewStyle().Foreground(FgBorder)
	TipStyle        = lipgloss.NewStyle().Foreground(FgBorder).Italic(true)
)

// Content styles
var (
	TitleStyle          = lipgloss.NewStyle().Bold(true).Foreground(FgPrimary)
	CardTitleStyle      = lipgloss.NewStyle().Bold(true).Foreground(FgText)
	SummaryStyle        = lipgloss.NewStyle().Foreground(FgMuted)
	DateStyle           = lipgloss.NewStyle().Foreground(FgAccent)
	ImageStyle          = lipgloss.NewStyle().Foreground(FgMuted).Italic(true)
	BodyStyle           = lipgloss.NewStyle().Foreground(FgText)
	SectionHeadingStyle = lipgloss.NewStyle().Bold(true).Foreground(FgText)
	LinkStyle           = lipgloss.NewStyle().Foreground(FgLink).Underline(true)
	FocusStyle          = lipgloss.NewStyle().Bold(true).Foreground(FgPrimary).Background(BgSelection)
	MarkerStyle         = lipgloss.NewStyle().Foreground(FgPrimary)
	EmptyStateStyle     = lipgloss.NewStyle().Foreground(FgMuted).Italic(true)
	ErrorStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Menu styles
var (
	MenuStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(FgPrimary).
			Padding(0, 2)

	MenuItemStyle     = lipgloss.NewStyle().Foreground(FgText)
	MenuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(FgPrimary).Background(BgSelection)
	MenuCurrentStyle  = lipgloss.NewStyle().Foreground(FgAccent)
)
