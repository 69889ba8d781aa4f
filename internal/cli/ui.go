package cli

import "github.com/charmbracelet/lipgloss"

// Color palette.
var (
	colorCyan   = lipgloss.Color("36")  // Teal - highlights
	colorYellow = lipgloss.Color("220") // Amber - last move marker
	colorWhite  = lipgloss.Color("255") // Bright white - white stones
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - grid
)

// TUI styles.
var (
	styleTitle     = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleStatus    = lipgloss.NewStyle().Foreground(colorGray)
	styleGrid      = lipgloss.NewStyle().Foreground(colorDim)
	styleStar      = lipgloss.NewStyle().Foreground(colorGray)
	styleBlack     = lipgloss.NewStyle().Foreground(lipgloss.Color("0"))
	styleWhiteSt   = lipgloss.NewStyle().Foreground(colorWhite)
	styleLastMove  = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
	styleBoardPane = lipgloss.NewStyle().Padding(1, 2)
)
