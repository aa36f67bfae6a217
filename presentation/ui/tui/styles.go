package tui

import "github.com/charmbracelet/lipgloss"

var (
	accentColor  = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#89B4FA"}
	mutedColor   = lipgloss.AdaptiveColor{Light: "#6C6F85", Dark: "#A6ADC8"}
	grabColor    = lipgloss.AdaptiveColor{Light: "#DF8E1D", Dark: "#F9E2AF"}
	successColor = lipgloss.AdaptiveColor{Light: "#40A02B", Dark: "#A6E3A1"}
)

type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	hint    lipgloss.Style
	row     lipgloss.Style
	cursor  lipgloss.Style
	grabbed lipgloss.Style
	status  lipgloss.Style
	busy    lipgloss.Style
	frame   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor),
		header: lipgloss.NewStyle().
			Bold(true).
			MarginTop(1),
		hint: lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true),
		row: lipgloss.NewStyle().
			PaddingLeft(2),
		cursor: lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true),
		grabbed: lipgloss.NewStyle().
			Foreground(grabColor).
			Bold(true),
		status: lipgloss.NewStyle().
			Foreground(successColor).
			MarginTop(1),
		busy: lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1),
		frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(1, 2),
	}
}
