package ui

import "github.com/charmbracelet/lipgloss"

// palette pairs a light and dark terminal shade per screen role.
var palette = struct {
	accent, text, muted, faint, alert lipgloss.AdaptiveColor
}{
	accent: lipgloss.AdaptiveColor{Light: "#1F6FB2", Dark: "#7FC8FF"},
	text:   lipgloss.AdaptiveColor{Light: "#333333", Dark: "#F0F0F0"},
	muted:  lipgloss.AdaptiveColor{Light: "#666666", Dark: "#A8A8A8"},
	faint:  lipgloss.AdaptiveColor{Light: "#9A9A9A", Dark: "#6A6A6A"},
	alert:  lipgloss.AdaptiveColor{Light: "#C0392B", Dark: "#FF6B6B"},
}

var (
	// brandStyle renders the app name in the header and picker.
	brandStyle  = lipgloss.NewStyle().Bold(true).Foreground(palette.accent)
	signalStyle = lipgloss.NewStyle().Bold(true).Foreground(palette.text)
	detailStyle = lipgloss.NewStyle().Foreground(palette.muted)
	clockStyle  = lipgloss.NewStyle().Foreground(palette.muted)
	statusStyle = lipgloss.NewStyle().Foreground(palette.muted)
	keysStyle   = lipgloss.NewStyle().Foreground(palette.faint)
	errorStyle  = lipgloss.NewStyle().Foreground(palette.alert)
)
