package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ConfigureColor disables colors when asked to, when NO_COLOR is set, or
// when stdout is not a terminal.
func ConfigureColor(noColor bool) {
	if noColor || os.Getenv("NO_COLOR") != "" || !IsStdoutTerminal() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// ColorRed colors text red
func ColorRed(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("1")).
		Render(text)
}

// ColorGreen colors text green
func ColorGreen(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("2")).
		Render(text)
}

// ColorYellow colors text yellow
func ColorYellow(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("3")).
		Render(text)
}

// ColorCyan colors text cyan
func ColorCyan(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("6")).
		Render(text)
}

// ColorDim renders secondary text
func ColorDim(text string) string {
	return lipgloss.NewStyle().Faint(true).Render(text)
}
