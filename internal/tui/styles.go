package tui

import "github.com/charmbracelet/lipgloss"

// Styles contains lipgloss styles for the TUI
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Status   lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Muted    lipgloss.Style
	Border   lipgloss.Style
	Help     lipgloss.Style
	Key      lipgloss.Style
	KeyDesc  lipgloss.Style
	Badge    lipgloss.Style
}

// DefaultStyles returns the default lipgloss styles
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")). // Purple
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")). // Gray
			MarginBottom(1),
		Status: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")), // Cyan
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")), // Red
		Success: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("46")), // Green
		Warning: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("226")), // Yellow
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")), // Gray
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")). // Purple
			Padding(1, 2),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")). // Gray
			MarginTop(1),
		Key: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")), // Purple
		KeyDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")), // Gray
		Badge: lipgloss.NewStyle().
			Background(lipgloss.Color("63")).  // Purple
			Foreground(lipgloss.Color("230")). // Light yellow
			Bold(true).
			Padding(0, 1),
	}
}
