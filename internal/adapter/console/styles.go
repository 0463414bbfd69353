package console

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor   = lipgloss.Color("#7C3AED")
	borderColor    = lipgloss.Color("#374151")
	textColor      = lipgloss.Color("#F9FAFB")
	secondaryColor = lipgloss.Color("#9CA3AF")
	goodColor      = lipgloss.Color("#10B981")
	badColor       = lipgloss.Color("#EF4444")
	mutedColor     = lipgloss.Color("#6B7280")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(secondaryColor).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Padding(0, 1)

	numberStyle = cellStyle.Align(lipgloss.Right)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	labelStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Width(24)
)
