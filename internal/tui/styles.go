package tui

import "github.com/charmbracelet/lipgloss"

var (
	ColorNavy   = lipgloss.Color("17")
	ColorBlue   = lipgloss.Color("39")
	ColorOrange = lipgloss.Color("208")
	ColorWhite  = lipgloss.Color("255")
	ColorGray   = lipgloss.Color("244")
)

var (
	titleStyle = lipgloss.NewStyle().
			Background(ColorNavy).
			Foreground(ColorOrange).
			Bold(true).
			Padding(0, 1)

	tabStyle = lipgloss.NewStyle().
			Foreground(ColorGray).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Background(ColorBlue).
			Foreground(ColorWhite).
			Bold(true).
			Padding(0, 1)

	sectionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorNavy)

	rowStyle = lipgloss.NewStyle().Foreground(ColorWhite)

	totalStyle = lipgloss.NewStyle().Foreground(ColorOrange).Bold(true)

	helpStyle = lipgloss.NewStyle().Foreground(ColorGray)

	statusStyle = lipgloss.NewStyle().
			Background(ColorNavy).
			Foreground(ColorWhite)

	barStyle = lipgloss.NewStyle().Foreground(ColorOrange).Background(ColorOrange)
)
