package utils

import "github.com/charmbracelet/lipgloss"

// Console styles used by the command line tool.
var (
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E")).Bold(true)
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)
	AccentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED"))
	DimStyle     = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"})
)
