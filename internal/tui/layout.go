package tui

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// normalizePane forces s to be exactly width columns wide (ANSI-aware) and
// height lines tall. This keeps overlay splicing and mouse hit-testing
// stable: every content line occupies the full row.
func normalizePane(s string, width, height int) string {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	lines := strings.Split(s, "\n")

	if height > 0 {
		if len(lines) > height {
			lines = lines[:height]
		}
		for len(lines) < height {
			lines = append(lines, "")
		}
	}

	for i := range lines {
		ln := lines[i]
		// Fast path: avoid computing StringWidth on extremely long lines (can be slow).
		// If the raw string is huge, it's almost certainly visually wider than the pane;
		// cut it early so subsequent width computations are bounded.
		if width > 0 && len(ln) > 8192 {
			if width == 1 {
				ln = xansi.Cut(ln, 0, 1)
			} else {
				ln = xansi.Cut(ln, 0, width-1) + "…"
			}
		}

		w := xansi.StringWidth(ln)

		if w > width {
			if width <= 0 {
				ln = ""
			} else if width == 1 {
				ln = xansi.Cut(ln, 0, 1)
			} else {
				ln = xansi.Cut(ln, 0, width-1) + "…"
			}
			w = xansi.StringWidth(ln)
		}
		if w < width {
			ln = ln + strings.Repeat(" ", width-w)
		}
		lines[i] = ln
	}

	return strings.Join(lines, "\n")
}

// Span action tokens. Row identity comes from the enclosing lineRef;
// tokens carry only what the ref can't.
const (
	actHeader   = "header"
	actGPS      = "gps"
	actAssign   = "assign"
	actChip     = "chip:" // chip:<userID>
	actSetField = "setfield"
	actSetSave  = "setsave"
)

type lineKind int

const (
	lineBlank lineKind = iota
	lineNotice
	lineSectionHeader
	lineColumnHead
	lineStats
	lineRow
	lineChips
	lineSettingsField
	lineSettingsSave
)

// span is a clickable column range on a line, half-open [x0, x1).
// Spans double as anchor geometry when a dropdown opens from the
// keyboard.
type span struct {
	x0, x1 int
	action string
}

// lineRef describes one rendered content line for mouse hit-testing.
// row indexes the section's visible rows (or the settings field list).
type lineRef struct {
	kind    lineKind
	section sectionID
	row     int
	spans   []span
}

func (r lineRef) spanAt(x int) (span, bool) {
	for _, sp := range r.spans {
		if x >= sp.x0 && x < sp.x1 {
			return sp, true
		}
	}
	return span{}, false
}

func (r lineRef) spanFor(action string) (span, bool) {
	for _, sp := range r.spans {
		if sp.action == action || strings.HasPrefix(sp.action, action) {
			return sp, true
		}
	}
	return span{}, false
}

// Screen geometry: a one-line title bar, a spacer, the scrollable
// content window, and a one-line footer.
const (
	contentTop    = 2
	footerLines   = 1
	minContentW   = 40
	sectionIndent = "  "
)

func (m appModel) contentWidth() int {
	w := m.width
	if w > maxContentW {
		w = maxContentW
	}
	if w < minContentW {
		w = minContentW
	}
	return w
}

func (m appModel) contentHeight() int {
	h := m.height - contentTop - footerLines
	if h < 1 {
		h = 1
	}
	return h
}

func (m appModel) maxScroll(total int) int {
	ms := total - m.contentHeight()
	if ms < 0 {
		ms = 0
	}
	return ms
}

// contentLineAt maps a screen row to a content line index, accounting
// for the title bar and scroll. ok is false outside the content window.
func (m appModel) contentLineAt(screenY int) (int, bool) {
	if screenY < contentTop || screenY >= contentTop+m.contentHeight() {
		return 0, false
	}
	return m.scroll + (screenY - contentTop), true
}

// screenYOf is the inverse: content line index to screen row, ok false
// when the line is scrolled out of view.
func (m appModel) screenYOf(lineIdx int) (int, bool) {
	y := lineIdx - m.scroll + contentTop
	if y < contentTop || y >= contentTop+m.contentHeight() {
		return 0, false
	}
	return y, true
}

// layout renders the scrollable content and its hit-test refs. View and
// the mouse handler both call it, so the two can never disagree about
// what is where.
func (m appModel) layout() ([]string, []lineRef) {
	var (
		lines []string
		refs  []lineRef
	)
	push := func(s string, r lineRef) {
		lines = append(lines, s)
		refs = append(refs, r)
	}
	blank := func() {
		push("", lineRef{kind: lineBlank})
	}

	if m.loading && m.doc == nil {
		push(styleMuted().Render("Loading dashboard…"), lineRef{kind: lineNotice})
		return lines, refs
	}
	if m.loadErr != nil && m.doc == nil {
		push(errorTextStyle().Render("Could not load dashboard: "+m.loadErr.Error()), lineRef{kind: lineNotice})
		push(styleMuted().Render("r: retry   q: quit"), lineRef{kind: lineNotice})
		return lines, refs
	}
	if m.doc == nil {
		return lines, refs
	}

	for id := sectionID(0); id < sectionCount; id++ {
		push(m.renderSectionHeader(id), lineRef{
			kind:    lineSectionHeader,
			section: id,
			spans:   []span{{0, m.contentWidth(), actHeader}},
		})
		if m.sectionCollapsed(id) {
			blank()
			continue
		}
		switch id {
		case sectionStats:
			push(m.renderStatsLine(), lineRef{kind: lineStats, section: id})
		case sectionUsers:
			m.renderUserSection(push)
		case sectionRegions:
			m.renderRegionSection(push)
		case sectionPharmacies:
			m.renderPharmacySection(push)
		case sectionSettings:
			m.renderSettingsSection(push)
		}
		blank()
	}
	return lines, refs
}

// rowLineIndex finds the content line for a section row. Used to keep
// the cursor in view and to anchor keyboard-opened dropdowns.
func rowLineIndex(refs []lineRef, id sectionID, row int, kind lineKind) (int, bool) {
	for i, r := range refs {
		if r.kind == kind && r.section == id && r.row == row {
			return i, true
		}
	}
	return 0, false
}

// ensureRowVisible adjusts scroll so the cursor's line is inside the
// content window.
func (m *appModel) ensureRowVisible(refs []lineRef) {
	kind := lineRow
	switch m.section {
	case sectionStats:
		kind = lineStats
	case sectionSettings:
		kind = lineSettingsField
		if m.rowIdx[sectionSettings] == settingsRowCount-1 {
			kind = lineSettingsSave
		}
	}
	idx, ok := rowLineIndex(refs, m.section, m.selectedRow(), kind)
	if !ok {
		// Collapsed or empty section: show its header instead.
		for i, r := range refs {
			if r.kind == lineSectionHeader && r.section == m.section {
				idx, ok = i, true
				break
			}
		}
		if !ok {
			return
		}
	}
	h := m.contentHeight()
	if idx < m.scroll {
		m.scroll = idx
	}
	if idx >= m.scroll+h {
		m.scroll = idx - h + 1
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}
