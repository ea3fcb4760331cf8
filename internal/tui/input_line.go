package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// minFieldWidth keeps fields usable inside very narrow modals.
const minFieldWidth = 10

var fieldScrub = strings.NewReplacer("\n", " ", "\r", " ")

// renderFieldLine renders one textinput view as a single filled line of
// the given width. A field must stay exactly one visual line; a stray
// newline or ANSI overflow would wrap inside the modal box.
func renderFieldLine(width int, view string) string {
	if width < minFieldWidth {
		width = minFieldWidth
	}
	line := lipgloss.PlaceHorizontal(
		width,
		lipgloss.Left,
		" "+fieldScrub.Replace(view)+" ",
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(colorInputBg),
	)
	if xansi.StringWidth(line) <= width {
		return line
	}
	// Hard cut and terminate styling so it cannot bleed past the box.
	return xansi.Cut(line, 0, width) + "\x1b[0m"
}
