// Package style renders gitstrap's status lines.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	commandStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// Init picks the color profile. Colors are off when stdout is not a
// terminal or NO_COLOR is set.
func Init() {
	if os.Getenv("NO_COLOR") != "" || !isatty.IsTerminal(os.Stdout.Fd()) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// Heading renders a step heading
func Heading(text string) string {
	return headingStyle.Render(text)
}

// Success renders a completion line
func Success(text string) string {
	return successStyle.Render(text)
}

// Path renders a file or directory path
func Path(text string) string {
	return pathStyle.Render(text)
}

// Command renders a suggested command line
func Command(text string) string {
	return commandStyle.Render(text)
}

// Fail renders a failing check
func Fail(text string) string {
	return failStyle.Render(text)
}
