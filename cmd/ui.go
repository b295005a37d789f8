package cmd

import "github.com/charmbracelet/lipgloss"

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#22c55e")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#eab308"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

func successLine(msg string) string {
	return successStyle.Render("✓") + " " + msg
}

func errorLine(msg string) string {
	return errorStyle.Render("✗") + " " + msg
}

func warnLine(msg string) string {
	return warnStyle.Render("!") + " " + msg
}
