package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"livadm/internal/dashboard"
)

// dropdown is the one floating select menu. The model holds at most one
// (dd == nil means closed), which gives the single-open rule for free:
// opening a second menu replaces the first.
type dropdown struct {
	// id routes the selection: "gps:<userID>" or "assign:<pharmacyID>".
	id      string
	entries []dashboard.Entry
	// current is the value marked with a check, usually the menu's
	// mirrored selection at open time.
	current string
	cursor  int

	// Box geometry on screen, computed at open time.
	x, y   int
	w, h   int
	openUp bool
}

// dropdownW is the inner text width: longest label plus the check
// marker column.
func dropdownInnerW(entries []dashboard.Entry) int {
	w := 8
	for _, e := range entries {
		if lw := xansi.StringWidth(e.Label) + 2; lw > w {
			w = lw
		}
	}
	return w
}

// openDropdown builds a menu anchored at the trigger cell. The menu
// drops below the trigger; when there is not enough room below and more
// above, it flips upward.
func (m appModel) openDropdown(id string, menu dashboard.Menu, triggerX, triggerY int) *dropdown {
	if menu.Empty() {
		return nil
	}
	d := &dropdown{
		id:      id,
		entries: menu.Entries,
		current: menu.Value,
	}
	for i, e := range menu.Entries {
		if e.Value == menu.Value {
			d.cursor = i
			break
		}
	}

	d.w = dropdownInnerW(menu.Entries) + 2 // border
	d.h = len(menu.Entries) + 2

	below := m.height - triggerY - 1
	above := triggerY
	d.openUp = d.h > below && above > below

	if d.openUp {
		d.y = triggerY - d.h
		if d.y < 0 {
			d.y = 0
		}
	} else {
		d.y = triggerY + 1
	}
	d.x = triggerX
	if d.x+d.w > m.width {
		d.x = m.width - d.w
	}
	if d.x < 0 {
		d.x = 0
	}
	return d
}

func (d *dropdown) move(delta int) {
	if len(d.entries) == 0 {
		return
	}
	d.cursor += delta
	if d.cursor < 0 {
		d.cursor = 0
	}
	if d.cursor >= len(d.entries) {
		d.cursor = len(d.entries) - 1
	}
}

func (d *dropdown) selected() dashboard.Entry {
	if d.cursor < 0 || d.cursor >= len(d.entries) {
		return dashboard.Entry{}
	}
	return d.entries[d.cursor]
}

// contains reports whether a screen cell falls inside the menu box.
func (d *dropdown) contains(x, y int) bool {
	return x >= d.x && x < d.x+d.w && y >= d.y && y < d.y+d.h
}

// entryAt maps a screen cell to an entry index; ok is false on the
// border rows or outside the box.
func (d *dropdown) entryAt(x, y int) (int, bool) {
	if !d.contains(x, y) {
		return 0, false
	}
	idx := y - d.y - 1
	if idx < 0 || idx >= len(d.entries) {
		return 0, false
	}
	return idx, true
}

func (d *dropdown) render() string {
	innerW := d.w - 2
	var rows []string
	for i, e := range d.entries {
		marker := "  "
		if e.Value == d.current {
			marker = glyphCheck() + " "
		}
		label := marker + e.Label
		if xansi.StringWidth(label) > innerW {
			label = xansi.Cut(label, 0, innerW-1) + "…"
		}
		st := lipgloss.NewStyle().
			Foreground(colorSurfaceFg).
			Background(colorControlBg)
		if i == d.cursor {
			st = st.
				Foreground(colorSelectedFg).
				Background(colorSelectedBg).
				Bold(true)
		}
		if w := xansi.StringWidth(label); w < innerW {
			label += strings.Repeat(" ", innerW-w)
		}
		rows = append(rows, st.Render(label))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Background(colorControlBg)
	return box.Render(strings.Join(rows, "\n"))
}
