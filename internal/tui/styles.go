package tui

import "github.com/charmbracelet/lipgloss"

// Color palette.
var (
	ColorHeader = lipgloss.Color("212")
	ColorLabel  = lipgloss.Color("241")
	ColorValue  = lipgloss.Color("252")
	ColorAccent = lipgloss.Color("86")
	ColorMuted  = lipgloss.Color("240")
)

// Shared styles.
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorHeader).
			Bold(true).
			Padding(0, 1)

	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(ColorHeader).
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(ColorMuted).
				BorderBottom(true)

	TableSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57")).
				Bold(false)

	LabelStyle = lipgloss.NewStyle().Foreground(ColorLabel)

	ValueStyle = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)

	AccentStyle = lipgloss.NewStyle().Foreground(ColorAccent)

	HelpStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	PopoverStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Padding(0, 1)
)
