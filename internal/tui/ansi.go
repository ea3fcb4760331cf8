package tui

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// stripANSIEscapes removes ANSI CSI escape sequences from a string.
// It is intentionally minimal: good enough for detecting "visually empty" lines
// without pulling in extra dependencies.
func stripANSIEscapes(s string) string {
	if s == "" {
		return ""
	}
	b := []byte(s)
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		if b[i] != 0x1b { // ESC
			out = append(out, b[i])
			continue
		}
		// CSI: ESC [
		if i+1 < len(b) && b[i+1] == '[' {
			i += 2
			// Consume until final byte (0x40-0x7E).
			for i < len(b) {
				c := b[i]
				if c >= 0x40 && c <= 0x7E {
					break
				}
				i++
			}
			continue
		}
		// Unknown ESC sequence: drop just the ESC byte.
	}
	return string(out)
}

// spliceLine paints overlay into line starting at column x, ANSI-aware.
// The NUL style terminators around the overlay prevent the base line's
// styling from bleeding into it (and vice versa).
func spliceLine(line, overlay string, x int) string {
	if x < 0 {
		x = 0
	}
	w := xansi.StringWidth(overlay)
	if w == 0 {
		return line
	}
	lineW := xansi.StringWidth(line)

	left := ""
	if x > 0 {
		left = xansi.Cut(line, 0, x)
		if lw := xansi.StringWidth(left); lw < x {
			left += strings.Repeat(" ", x-lw)
		}
	}
	right := ""
	if x+w < lineW {
		right = xansi.Cut(line, x+w, lineW)
	}
	return left + "\x1b[0m" + overlay + "\x1b[0m" + right
}

// overlayAt paints a multi-line overlay onto base at (x, y). Rows past
// the bottom of base are dropped rather than extending the canvas, so
// overlays can never grow the screen.
func overlayAt(base, overlay string, x, y int) string {
	if overlay == "" {
		return base
	}
	baseLines := strings.Split(base, "\n")
	for i, ov := range strings.Split(overlay, "\n") {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}
		baseLines[row] = spliceLine(baseLines[row], ov, x)
	}
	return strings.Join(baseLines, "\n")
}
