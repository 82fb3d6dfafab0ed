package ui

import "github.com/charmbracelet/lipgloss"

// Styles
var (
	SpinnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#C084FC")) // soft violet

	CountStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E4E4E7"))

	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9CA3AF")) // lighter dim gray
)
