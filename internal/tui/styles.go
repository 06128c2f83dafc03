package tui

import "github.com/charmbracelet/lipgloss"

const (
	colorAccent  lipgloss.Color = "#f5c2e7"
	colorFocus   lipgloss.Color = "#b4befe"
	colorSubtext lipgloss.Color = "#a6adc8"
	colorOverlay lipgloss.Color = "#6c7086"
	colorWarning lipgloss.Color = "#f9e2af"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Underline(true)
	tabStyle       = lipgloss.NewStyle().Foreground(colorOverlay).Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().Foreground(colorFocus).Bold(true).Padding(0, 1).Underline(true)
	helpStyle      = lipgloss.NewStyle().Foreground(colorSubtext)
	statusStyle    = lipgloss.NewStyle().Foreground(colorWarning)
	spinnerStyle   = lipgloss.NewStyle().Foreground(colorAccent)
)
