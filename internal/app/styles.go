package app

import "charm.land/lipgloss/v2"

// Color palette.
var (
	colorPrimary = lipgloss.Color("#8B5CF6") // Purple
	colorSuccess = lipgloss.Color("#22C55E") // Green
	colorError   = lipgloss.Color("#F43F5E") // Rose
	colorAccent  = lipgloss.Color("#F97316") // Orange
	colorDim     = lipgloss.Color("#94A3B8") // Slate
)

var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	stylePrompt = lipgloss.NewStyle().
			Bold(true)

	styleOption = lipgloss.NewStyle().
			Foreground(colorDim)

	styleCorrect = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)

	styleIncorrect = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	styleXP = lipgloss.NewStyle().
		Foreground(colorAccent).
		Bold(true)

	styleHint = lipgloss.NewStyle().
			Foreground(colorDim).
			Italic(true)

	styleSummary = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(1, 2)
)
