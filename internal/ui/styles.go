package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	ColorPrimary   = lipgloss.Color("205") // Pink
	ColorSecondary = lipgloss.Color("241") // Gray
	ColorSuccess   = lipgloss.Color("42")  // Green
	ColorError     = lipgloss.Color("160") // Red
	ColorWarning   = lipgloss.Color("214") // Orange/Yellow
	ColorText      = lipgloss.Color("252") // White/Gray
	ColorWild      = lipgloss.Color("177") // Purple for the wild axis
	ColorAction    = lipgloss.Color("42")  // Green for the actionable axis
	ColorDeep      = lipgloss.Color("75")  // Blue for the deep axis

	// Base Styles
	StyleTitle   = lipgloss.NewStyle().Foreground(ColorText).Bold(true)
	StyleSubtle  = lipgloss.NewStyle().Foreground(ColorSecondary)
	StylePrimary = lipgloss.NewStyle().Foreground(ColorPrimary)
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning)

	// Card styles for the swipe deck
	StyleCard = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorSecondary).
			Padding(1, 2).
			Width(56)

	StyleCardSaving = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorSuccess).
			Padding(1, 2).
			Width(56)

	StyleCardDismissing = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(ColorError).
				Padding(1, 2).
				Width(56)

	StyleCardTitle = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	StyleCardHook  = lipgloss.NewStyle().Foreground(ColorWarning).Italic(true)

	// Axis styles for the blend triangle
	StyleWild   = lipgloss.NewStyle().Foreground(ColorWild).Bold(true)
	StyleAction = lipgloss.NewStyle().Foreground(ColorAction).Bold(true)
	StyleDeep   = lipgloss.NewStyle().Foreground(ColorDeep).Bold(true)

	// Canvas note style
	StyleNote = lipgloss.NewStyle().Foreground(ColorSecondary).Italic(true)
)

// Icon returns a styled icon string
func Icon(icon string, style lipgloss.Style) string {
	return style.Render(icon)
}
