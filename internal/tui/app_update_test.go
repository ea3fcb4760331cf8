package tui

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"livadm/internal/model"
	"livadm/internal/reconcile"
	"livadm/internal/store"
)

func TestTab_CyclesSectionsAndWraps(t *testing.T) {
	m, _ := newTestModel(t)
	if m.section != sectionUsers {
		t.Fatalf("expected users section first, got %v", m.section)
	}

	want := []sectionID{sectionRegions, sectionPharmacies, sectionSettings, sectionStats, sectionUsers}
	for _, w := range want {
		m, _ = press(t, m, "tab")
		if m.section != w {
			t.Fatalf("expected section %v, got %v", w, m.section)
		}
	}

	m, _ = press(t, m, "shift+tab")
	if m.section != sectionStats {
		t.Fatalf("expected shift+tab to cycle backward, got %v", m.section)
	}
}

func TestMoveRow_ClampsAtEdges(t *testing.T) {
	m, _ := newTestModel(t)

	for i := 0; i < 5; i++ {
		m, _ = press(t, m, "j")
	}
	if got := m.selectedRow(); got != 2 {
		t.Fatalf("expected cursor clamped at last user, got %d", got)
	}

	for i := 0; i < 5; i++ {
		m, _ = press(t, m, "k")
	}
	if got := m.selectedRow(); got != 0 {
		t.Fatalf("expected cursor clamped at first user, got %d", got)
	}
}

func TestRowCursor_RemembersPerSection(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = press(t, m, "j")
	m, _ = press(t, m, "tab")
	m, _ = press(t, m, "shift+tab")
	if got := m.selectedRow(); got != 1 {
		t.Fatalf("expected users cursor remembered, got %d", got)
	}
}

func TestFilter_NarrowsAllSections(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = press(t, m, "/")
	if !m.filter.Focused() {
		t.Fatalf("expected filter focused")
	}
	m = typeString(t, m, "dan")
	if got := len(m.visibleUsers()); got != 1 {
		t.Fatalf("expected 1 user matching, got %d", got)
	}
	if got := len(m.visiblePharmacies()); got != 0 {
		t.Fatalf("expected no pharmacies matching, got %d", got)
	}

	// Enter keeps the query engaged but returns keys to the dashboard.
	m, _ = press(t, m, "enter")
	if m.filter.Focused() {
		t.Fatalf("expected filter blurred after enter")
	}
	if got := len(m.visibleUsers()); got != 1 {
		t.Fatalf("expected query still engaged, got %d users", got)
	}

	m, _ = press(t, m, "esc")
	if m.filtering {
		t.Fatalf("expected esc to disengage filter")
	}
	if got := len(m.visibleUsers()); got != 3 {
		t.Fatalf("expected all users back, got %d", got)
	}
}

func TestFilter_EscWhileTypingClears(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = press(t, m, "/")
	m = typeString(t, m, "north")
	m, _ = press(t, m, "esc")
	if m.filtering || m.filter.Value() != "" {
		t.Fatalf("expected filter cleared, got %q", m.filter.Value())
	}
}

func TestSnapshot_StaleSeqDropped(t *testing.T) {
	m, _ := newTestModel(t)
	m.snapshotSeq = 2

	stale := testSnapshot()
	stale.Users = nil
	mAny, _ := m.Update(snapshotMsg{seq: 1, snap: stale})
	m2 := mAny.(appModel)
	if len(m2.doc.Users) != 3 {
		t.Fatalf("expected stale snapshot dropped, got %d users", len(m2.doc.Users))
	}
}

func TestRefresh_RebuildsDocument(t *testing.T) {
	m, client := newTestModel(t)
	next := testSnapshot()
	next.Users = append(next.Users, model.User{ID: 4, Login: "vera", Role: model.RoleDriver, IsActive: true, GPSMode: model.GPSInherit})
	client.snapshot = next

	m2, cmd := press(t, m, "r")
	if m2.loading {
		t.Fatalf("expected no loading flash while a document is shown")
	}
	m3, _ := deliver(t, m2, cmd)
	if client.fetches != 1 {
		t.Fatalf("expected 1 fetch, got %d", client.fetches)
	}
	if len(m3.doc.Users) != 4 {
		t.Fatalf("expected rebuilt document with 4 users, got %d", len(m3.doc.Users))
	}
}

func TestRefreshError_KeepsStaleDocument(t *testing.T) {
	m, client := newTestModel(t)
	client.snapErr = errors.New("boom")

	m2, cmd := press(t, m, "r")
	m3, _ := deliver(t, m2, cmd)
	if m3.doc == nil || len(m3.doc.Users) != 3 {
		t.Fatalf("expected stale document kept")
	}
	if m3.loadErr == nil {
		t.Fatalf("expected load error recorded")
	}
	if len(m3.toasts) != 1 || m3.toasts[0].severity != reconcile.SeverityError {
		t.Fatalf("expected error toast, got %+v", m3.toasts)
	}
}

func TestCollapse_PersistsAcrossModels(t *testing.T) {
	ctx := context.Background()
	prefs, err := store.OpenPrefsPath(ctx, filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("open prefs: %v", err)
	}
	defer prefs.Close()

	client := &stubClient{snapshot: testSnapshot()}
	m := newAppModel(client, prefs)
	m.width = 100
	m.height = 30
	m.loading = false
	m.doc = testDocument()

	m2, _ := press(t, m, " ")
	if !m2.sectionCollapsed(sectionUsers) {
		t.Fatalf("expected users section collapsed")
	}

	fresh := newAppModel(client, prefs)
	if !fresh.sectionCollapsed(sectionUsers) {
		t.Fatalf("expected collapse state restored from prefs")
	}
	if fresh.sectionCollapsed(sectionRegions) {
		t.Fatalf("expected untouched sections expanded")
	}
}

func TestWindowResize_ClampsScroll(t *testing.T) {
	m, _ := newTestModel(t)
	m.scroll = 999

	mAny, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m2 := mAny.(appModel)
	lines, _ := m2.layout()
	if m2.scroll > m2.maxScroll(len(lines)) {
		t.Fatalf("expected scroll clamped, got %d", m2.scroll)
	}
}

func TestHelp_CapturesKeys(t *testing.T) {
	m, client := newTestModel(t)

	m2, _ := press(t, m, "?")
	if !m2.help {
		t.Fatalf("expected help open")
	}

	// Dashboard keys must not leak through the overlay.
	m3, cmd := press(t, m2, "a")
	if cmd != nil || len(client.subs) != 0 {
		t.Fatalf("expected key captured by help overlay")
	}
	if !m3.help {
		t.Fatalf("expected help still open")
	}

	m4, _ := press(t, m3, "tab")
	if m4.helpTopic != m3.helpTopic+1 {
		t.Fatalf("expected tab to advance topic")
	}

	m5, _ := press(t, m4, "esc")
	if m5.help {
		t.Fatalf("expected esc to close help")
	}
}

func TestSpace_TogglesCollapseOfCurrentSection(t *testing.T) {
	m, _ := newTestModel(t)

	m2, _ := press(t, m, " ")
	if !m2.sectionCollapsed(sectionUsers) {
		t.Fatalf("expected users collapsed")
	}
	m3, _ := press(t, m2, " ")
	if m3.sectionCollapsed(sectionUsers) {
		t.Fatalf("expected users expanded again")
	}
}
