// Package style wraps lipgloss styles as plain string renderers.
package style

import (
	"github.com/anisan-cli/eprange/color"
	"github.com/charmbracelet/lipgloss"
)

func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Fg returns a renderer painting text in c.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return New().Foreground(c).Render(s) }
}

var (
	Faint = func(s string) string { return New().Faint(true).Render(s) }
	Bold  = func(s string) string { return New().Bold(true).Render(s) }
)

// Title renders a padded header badge.
var Title = banner(color.New("62"))

// ErrorTitle is Title on a red background.
var ErrorTitle = banner(color.Red)

func banner(bg lipgloss.Color) func(string) string {
	return func(s string) string {
		return New().Foreground(color.New("230")).Background(bg).Padding(0, 1).Render(s)
	}
}
