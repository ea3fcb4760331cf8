package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"livadm/internal/dashboard"
	"livadm/internal/model"
	"livadm/internal/reconcile"
)

// stubClient scripts Do by action kind and records every submission in
// order. Unscripted kinds answer with a bare success payload.
type stubClient struct {
	subs    []reconcile.Submission
	results map[reconcile.Kind]reconcile.Result
	errs    map[reconcile.Kind]error

	snapshot dashboard.Snapshot
	snapErr  error
	fetches  int
}

func (c *stubClient) Do(_ context.Context, sub reconcile.Submission) (reconcile.Result, error) {
	c.subs = append(c.subs, sub)
	if err, ok := c.errs[sub.Kind]; ok {
		return nil, err
	}
	if res, ok := c.results[sub.Kind]; ok {
		return res, nil
	}
	return reconcile.DecodeResult(sub.Kind, []byte(`{"ok":true}`))
}

func (c *stubClient) FetchDashboard(_ context.Context) (dashboard.Snapshot, error) {
	c.fetches++
	if c.snapErr != nil {
		return dashboard.Snapshot{}, c.snapErr
	}
	return c.snapshot, nil
}

// decode fabricates a typed result the way the transport layer does.
func decode(t *testing.T, kind reconcile.Kind, body string) reconcile.Result {
	t.Helper()
	res, err := reconcile.DecodeResult(kind, []byte(body))
	if err != nil {
		t.Fatalf("decode result: %v", err)
	}
	return res
}

func testSnapshot() dashboard.Snapshot {
	return dashboard.Snapshot{
		OK: true,
		Users: []model.User{
			{ID: 1, Login: "root", Role: model.RoleAdmin, IsActive: true, GPSMode: model.GPSInherit},
			{ID: 2, Login: "dana", Role: model.RoleDriver, IsActive: true, GPSMode: model.GPSInherit},
			{ID: 3, Login: "miro", Role: model.RoleDriver, IsActive: false, GPSMode: model.GPSRequire},
		},
		Regions: []model.Region{
			{ID: 10, Name: "North", IsActive: true},
		},
		Pharmacies: []model.Pharmacy{
			{ID: 20, Name: "Central", RegionID: 10, RegionName: "North", Address: "Main st 1", IsActive: true},
			{ID: 21, Name: "Harbor", RegionID: 10, RegionName: "North", IsActive: false},
		},
		Assignments: map[string][]int{"20": {2}},
		Counts:      model.Counts{Users: 3, Regions: 1, Pharmacies: 2},
		Settings: model.Settings{
			AllowedPickupsPerDay: 2,
			MinRequiredPhotos:    1,
			PhotoSourceMode:      "camera_or_upload",
		},
	}
}

func testDocument() *dashboard.Document {
	return dashboard.BuildDocument(testSnapshot())
}

// newTestModel builds a sized model with a loaded document, the way it
// looks right after the initial fetch.
func newTestModel(t *testing.T) (appModel, *stubClient) {
	t.Helper()
	client := &stubClient{
		results:  map[reconcile.Kind]reconcile.Result{},
		errs:     map[reconcile.Kind]error{},
		snapshot: testSnapshot(),
	}
	m := newAppModel(client, nil)
	m.width = 100
	m.height = 30
	m.seenWindowSize = true
	m.loading = false
	m.doc = testDocument()
	m.settingsDraft = m.doc.Settings
	m.snapshotSeq = 1
	return m, client
}

func press(t *testing.T, m appModel, key string) (appModel, tea.Cmd) {
	t.Helper()
	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		msg = tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		msg = tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		msg = tea.KeyMsg{Type: tea.KeyRight}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	mAny, cmd := m.Update(msg)
	return mAny.(appModel), cmd
}

// deliver invokes a submission command and feeds its message back into
// the model. The follow-up command (toast ticks and the like) is
// returned without being run.
func deliver(t *testing.T, m appModel, cmd tea.Cmd) (appModel, tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatalf("expected a command")
	}
	msg := cmd()
	if msg == nil {
		return m, nil
	}
	mAny, next := m.Update(msg)
	return mAny.(appModel), next
}

func typeString(t *testing.T, m appModel, s string) appModel {
	t.Helper()
	for _, r := range s {
		mAny, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = mAny.(appModel)
	}
	return m
}
