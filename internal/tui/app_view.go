package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

func (m appModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading…"
	}

	lines, _ := m.layout()

	scroll := m.scroll
	if ms := m.maxScroll(len(lines)); scroll > ms {
		scroll = ms
	}
	if scroll < 0 {
		scroll = 0
	}
	end := scroll + m.contentHeight()
	if end > len(lines) {
		end = len(lines)
	}
	window := lines[scroll:end]

	content := normalizePane(strings.Join(window, "\n"), m.width, m.contentHeight())

	out := m.renderTitleBar() + "\n\n" + content + "\n" + m.renderFooter()

	// Overlays paint over the composed screen, bottom-most first: the
	// modal, then the dropdown, then toasts on top of everything.
	if m.modal != modalNone {
		out = overlayCentered(out, m.renderActiveModal(), m.width, m.height)
	}
	if m.help {
		out = overlayCentered(out, m.renderHelp(), m.width, m.height)
	}
	if m.dd != nil {
		out = overlayAt(out, m.dd.render(), m.dd.x, m.dd.y)
	}
	out = m.overlayToasts(out)
	return out
}

// overlayCentered paints a box in the middle of the screen, keeping the
// dashboard visible around it.
func overlayCentered(base, box string, width, height int) string {
	if box == "" {
		return base
	}
	boxLines := strings.Split(box, "\n")
	boxW := 0
	for _, ln := range boxLines {
		if w := xansi.StringWidth(ln); w > boxW {
			boxW = w
		}
	}
	x := (width - boxW) / 2
	y := (height - len(boxLines)) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return overlayAt(base, box, x, y)
}

func (m appModel) renderTitleBar() string {
	brand := lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Foreground(colorAccentFg).
		Background(colorAccent).
		Render("livadm")

	parts := []string{brand, styleMuted().Render("admin dashboard")}

	if m.loading && m.doc != nil {
		parts = append(parts, styleMuted().Render("refreshing…"))
	}
	if m.filtering {
		parts = append(parts, m.filter.View())
	}

	line := " " + strings.Join(parts, "  ")
	return normalizePane(line, m.width, 1)
}

func (m appModel) renderFooter() string {
	hints := []string{
		"tab: section",
		"j/k: rows",
		"enter/a: toggle",
		"n: new",
		"x: delete",
	}
	switch m.section {
	case sectionUsers:
		hints = append(hints, "p: password", "g: gps")
	case sectionPharmacies:
		hints = append(hints, "s: pick driver", "A: assign", "u: unassign", "c: cutoffs")
	case sectionSettings:
		hints = []string{"tab: section", "j/k: fields", "←/→: change", "enter: save"}
	}
	hints = append(hints, "/: filter", "r: refresh", "?: help", "q: quit")

	return normalizePane(styleMuted().Render(" "+strings.Join(hints, "   ")), m.width, 1)
}
