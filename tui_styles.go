package main

import "github.com/charmbracelet/lipgloss"

var (
	subtle    = lipgloss.Color("243")
	highlight = lipgloss.Color("#c4b5fd")
	warning   = lipgloss.Color("#f87171")

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Align(lipgloss.Center).
			MarginBottom(1)

	containerStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(subtle).
			Padding(1, 3)

	labelStyle     = lipgloss.NewStyle().Foreground(subtle)
	cursorStyle    = lipgloss.NewStyle().Foreground(highlight).Bold(true)
	titleStyle     = lipgloss.NewStyle()
	completedStyle = lipgloss.NewStyle().Strikethrough(true).Foreground(subtle)
	editingStyle   = lipgloss.NewStyle().Foreground(highlight).Italic(true)
	emptyStyle     = lipgloss.NewStyle().Foreground(subtle).Italic(true)
	statusStyle    = lipgloss.NewStyle().Foreground(warning)
	helpStyle      = lipgloss.NewStyle().Faint(true)

	descriptionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252")).
				BorderStyle(lipgloss.NormalBorder()).
				BorderLeft(true).
				BorderForeground(subtle).
				PaddingLeft(1).
				MarginLeft(6)
)
