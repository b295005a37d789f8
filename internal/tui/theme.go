// Package tui implements the interactive configuration form used by
// `gaugebuild config --init` on a terminal.
package tui

import "github.com/charmbracelet/lipgloss"

// StyleSet holds the lipgloss styles for the form.
type StyleSet struct {
	Title  lipgloss.Style
	Label  lipgloss.Style
	Done   lipgloss.Style
	Value  lipgloss.Style
	Error  lipgloss.Style
	Help   lipgloss.Style
	Accent lipgloss.Color
}

// DefaultStyles returns the form's dark-terminal styles.
func DefaultStyles() StyleSet {
	accent := lipgloss.Color("#f97316")
	return StyleSet{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(accent),
		Label:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#e0e0e8")),
		Done:   lipgloss.NewStyle().Foreground(lipgloss.Color("#22c55e")),
		Value:  lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444")),
		Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("#5a5a70")),
		Accent: accent,
	}
}
