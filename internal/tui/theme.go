package tui

import (
	huh "github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// NewHuhTheme returns the huh form theme shared by all interactive flows.
func NewHuhTheme() *huh.Theme {
	theme := huh.ThemeBase()

	accent := lipgloss.Color("#00B8D4")
	muted := lipgloss.Color("#888888")

	theme.Focused.Title = theme.Focused.Title.Foreground(accent).Bold(true)
	theme.Focused.Description = theme.Focused.Description.Foreground(muted)
	theme.Focused.SelectSelector = theme.Focused.SelectSelector.Foreground(accent)
	theme.Focused.SelectedOption = theme.Focused.SelectedOption.Foreground(accent).Bold(true)
	theme.Focused.FocusedButton = theme.Focused.FocusedButton.
		Background(accent).
		Foreground(lipgloss.Color("#FFFFFF"))
	theme.Blurred.Title = theme.Blurred.Title.Foreground(muted)

	return theme
}
