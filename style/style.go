// Package style composes the lipgloss styles shared by the TUI and the CLI.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/cinerow/cinerow/color"
)

// Palette, dark theme.
var (
	Text     = lipgloss.Color("#cdd6f4")
	surface  = lipgloss.Color("#313244")
	mauve    = lipgloss.Color("#cba6f7")
	lavender = lipgloss.Color("#b4befe")
	red      = lipgloss.Color("#f38ba8")
	yellow   = lipgloss.Color("#f9e2af")
	green    = lipgloss.Color("#a6e3a1")
	titleFg  = color.New("230")
	titleBg  = color.New("62")
	errorBg  = color.Red
)

var (
	AccentColor       = mauve
	SecondaryColor    = lavender
	SuccessColor      = green
	WarningColor      = yellow
	ErrorColor        = red
	HiRed             = red
	BorderColor       = surface
	ActiveBorderColor = AccentColor
)

func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Fg returns a renderer for the given foreground color.
func Fg(c lipgloss.Color) func(string) string {
	s := New().Foreground(c)
	return func(text string) string { return s.Render(text) }
}

var (
	Faint  = func(s string) string { return New().Faint(true).Render(s) }
	Bold   = func(s string) string { return New().Bold(true).Render(s) }
	Italic = func(s string) string { return New().Italic(true).Render(s) }
)

// Title renders a padded banner, used for row headers and the detail pane.
func Title(s string) string {
	return banner(titleFg, titleBg).Render(s)
}

func ErrorTitle(s string) string {
	return banner(titleFg, errorBg).Render(s)
}

func banner(fg, bg lipgloss.Color) lipgloss.Style {
	return New().Foreground(fg).Background(bg).Padding(0, 1)
}
