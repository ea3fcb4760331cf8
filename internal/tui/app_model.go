package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"

	"livadm/internal/dashboard"
	"livadm/internal/model"
	"livadm/internal/reconcile"
)

const (
	// How long a toast stays up before auto-dismissing.
	toastTTL = 4 * time.Second
	// How long the settings save button reads "Saved ✓" before the
	// label is restored.
	savedLabelDelay = time.Second

	maxContentW = 110
)

type appModel struct {
	client Client
	prefs  UIPrefs

	width  int
	height int

	// We treat the very first WindowSizeMsg as "initial sizing" rather than
	// a user-driven resize. Otherwise we briefly render the "Resizing…"
	// overlay on startup.
	seenWindowSize bool

	// doc is the working copy of the dashboard. Optimistic updates mutate
	// it in place; a refresh replaces it wholesale.
	doc     *dashboard.Document
	loading bool
	loadErr error
	// snapshotSeq invalidates in-flight fetches when a newer one starts.
	snapshotSeq int

	section sectionID
	// rowIdx remembers the cursor per section so jumping between sections
	// doesn't lose your place.
	rowIdx map[sectionID]int
	// chipIdx is the assignment-chip cursor on the selected pharmacy row.
	// -1 means no chip focused.
	chipIdx int

	collapsed map[string]bool

	filter    textinput.Model
	filtering bool

	modal modalKind
	// modalID/modalLabel identify the row the modal targets (user id for
	// the password modal, pharmacy id for cutoffs, any row for delete).
	modalID    int
	modalLabel string
	// confirmKind is the delete submission the confirm modal guards.
	confirmKind  reconcile.Kind
	confirmFocus confirmModalFocus

	// Create-modal form state. formMenu is the role picker (new user) or
	// region picker (new pharmacy).
	formInputs []textinput.Model
	formLabels []string
	formFocus  int
	formMenu   dashboard.Menu
	formErr    string

	// Cutoffs modal: one input per weekday, Monday first.
	weekInputs [7]textinput.Model
	weekFocus  int

	dd *dropdown

	// busy tracks in-flight submissions by control key so a control can't
	// double-fire. savedSeq/savedLabel drive the transient "Saved ✓" labels.
	busy       map[string]bool
	submitSeq  int
	savedSeq   map[string]int
	savedLabel map[string]string

	// settingsDraft holds unsaved edits to the settings form; Save submits
	// the whole draft.
	settingsDraft model.Settings
	settingsFocus int
	settingsDirty bool

	toasts   []toast
	toastSeq int

	scroll int

	help      bool
	helpTopic int
}

func newAppModel(client Client, prefs UIPrefs) appModel {
	m := appModel{
		client:  client,
		prefs:   prefs,
		loading: true,
		section: sectionUsers,
		chipIdx: -1,
	}
	m.rowIdx = map[sectionID]int{}
	m.collapsed = map[string]bool{}
	m.busy = map[string]bool{}
	m.savedSeq = map[string]int{}
	m.savedLabel = map[string]string{}

	m.filter = textinput.New()
	m.filter.Placeholder = "Filter rows"
	m.filter.CharLimit = 80
	m.filter.Width = 28
	m.filter.Prompt = "/"

	if prefs != nil {
		for k, v := range prefs.Sections(context.Background()) {
			m.collapsed[k] = v
		}
	}
	return m
}

// filterQuery returns the active filter text, empty when the filter is
// not engaged.
func (m appModel) filterQuery() string {
	if !m.filtering {
		return ""
	}
	return m.filter.Value()
}

func (m appModel) sectionCollapsed(id sectionID) bool {
	return m.collapsed[id.key()]
}

// visible filters table rows against the active query. Pointers into
// the document's backing slices come back so callers can mutate rows in
// place.
func visible[R interface{ Cells() []string }](rows []R, q string) []*R {
	out := make([]*R, 0, len(rows))
	for i := range rows {
		if q == "" || rowMatches(rows[i].Cells(), q) {
			out = append(out, &rows[i])
		}
	}
	return out
}

func rowMatches(cells []string, q string) bool {
	q = strings.ToLower(q)
	for _, c := range cells {
		if strings.Contains(strings.ToLower(c), q) {
			return true
		}
	}
	return false
}

func (m appModel) visibleUsers() []*dashboard.UserRow {
	if m.doc == nil {
		return nil
	}
	return visible(m.doc.Users, m.filterQuery())
}

func (m appModel) visibleRegions() []*dashboard.RegionRow {
	if m.doc == nil {
		return nil
	}
	return visible(m.doc.Regions, m.filterQuery())
}

func (m appModel) visiblePharmacies() []*dashboard.PharmacyRow {
	if m.doc == nil {
		return nil
	}
	return visible(m.doc.Pharmacies, m.filterQuery())
}

// rowCount is the number of selectable rows in the section. The
// settings section exposes its fields plus the save button as rows.
func (m appModel) rowCount(id sectionID) int {
	switch id {
	case sectionUsers:
		return len(m.visibleUsers())
	case sectionRegions:
		return len(m.visibleRegions())
	case sectionPharmacies:
		return len(m.visiblePharmacies())
	case sectionSettings:
		return settingsRowCount
	}
	return 0
}

// selectedRow clamps and returns the cursor for the current section.
func (m appModel) selectedRow() int {
	n := m.rowCount(m.section)
	if n == 0 {
		return -1
	}
	idx := m.rowIdx[m.section]
	if idx < 0 {
		return 0
	}
	if idx >= n {
		return n - 1
	}
	return idx
}

func (m appModel) selectedUser() *dashboard.UserRow {
	if m.section != sectionUsers {
		return nil
	}
	rows := m.visibleUsers()
	idx := m.selectedRow()
	if idx < 0 || idx >= len(rows) {
		return nil
	}
	return rows[idx]
}

func (m appModel) selectedRegion() *dashboard.RegionRow {
	if m.section != sectionRegions {
		return nil
	}
	rows := m.visibleRegions()
	idx := m.selectedRow()
	if idx < 0 || idx >= len(rows) {
		return nil
	}
	return rows[idx]
}

func (m appModel) selectedPharmacy() *dashboard.PharmacyRow {
	if m.section != sectionPharmacies {
		return nil
	}
	rows := m.visiblePharmacies()
	idx := m.selectedRow()
	if idx < 0 || idx >= len(rows) {
		return nil
	}
	return rows[idx]
}

func (m *appModel) moveRow(delta int) {
	n := m.rowCount(m.section)
	if n == 0 {
		return
	}
	idx := m.selectedRow() + delta
	if idx < 0 {
		idx = 0
	}
	if idx >= n {
		idx = n - 1
	}
	m.rowIdx[m.section] = idx
	m.chipIdx = -1
}

// nextSection cycles through sections, honoring direction. Collapsed
// sections still participate so tab order stays stable.
func (m *appModel) nextSection(delta int) {
	s := int(m.section) + delta
	for s < 0 {
		s += int(sectionCount)
	}
	m.section = sectionID(s % int(sectionCount))
	m.chipIdx = -1
}

func (m *appModel) toggleCollapsed(id sectionID) {
	key := id.key()
	m.collapsed[key] = !m.collapsed[key]
	m.persistSections()
}

// persistSections stores the collapsed-section map. Failures are
// ignored; losing a collapse preference is not worth a toast.
func (m *appModel) persistSections() {
	if m.prefs == nil {
		return
	}
	snapshot := make(map[string]bool, len(m.collapsed))
	for k, v := range m.collapsed {
		if v {
			snapshot[k] = true
		}
	}
	_ = m.prefs.SetSections(context.Background(), snapshot)
}
