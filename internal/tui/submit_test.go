package tui

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"livadm/internal/reconcile"
)

func TestControlKey_ScopesPerControl(t *testing.T) {
	cases := []struct {
		sub  reconcile.Submission
		want string
	}{
		{reconcile.Submission{Kind: reconcile.KindNone}, settingsSaveKey},
		{reconcile.Submission{Kind: reconcile.KindUserCreate}, "user-create"},
		{reconcile.Submission{Kind: reconcile.KindUserToggle, UserID: 3}, "user-toggle:3"},
		{reconcile.Submission{Kind: reconcile.KindRegionDelete, RegionID: 10}, "region-delete:10"},
		{reconcile.Submission{Kind: reconcile.KindAssignUser, PharmacyID: 20}, "assign-user:20"},
		{
			reconcile.Submission{
				Kind:       reconcile.KindUnassignUser,
				PharmacyID: 20,
				Fields:     url.Values{"user_id": {"2"}},
			},
			"unassign-user:20:2",
		},
		{reconcile.Submission{Kind: reconcile.KindCutoffsWeek, PharmacyID: 21}, "cutoffs-week:21"},
	}
	for _, tc := range cases {
		if got := controlKey(tc.sub); got != tc.want {
			t.Fatalf("controlKey(%s) = %q, want %q", tc.sub.Kind, got, tc.want)
		}
	}
}

func TestToggleUser_BusyThenReconciled(t *testing.T) {
	m, client := newTestModel(t)

	m2, cmd := press(t, m, "a")
	if cmd == nil {
		t.Fatalf("expected submission cmd")
	}
	if !m2.busy["user-toggle:1"] {
		t.Fatalf("expected control busy while in flight")
	}

	m3, _ := deliver(t, m2, cmd)
	if len(client.subs) != 1 {
		t.Fatalf("expected 1 submission, got %d", len(client.subs))
	}
	if client.subs[0].URL != "/admin/users/1/toggle-active" {
		t.Fatalf("unexpected url %q", client.subs[0].URL)
	}
	if m3.busy["user-toggle:1"] {
		t.Fatalf("expected control re-enabled after delivery")
	}
	if m3.doc.Users[0].User.IsActive {
		t.Fatalf("expected user 1 flipped inactive")
	}
	if len(m3.toasts) != 1 || m3.toasts[0].severity != reconcile.SeveritySuccess {
		t.Fatalf("expected one success toast, got %+v", m3.toasts)
	}
	if m3.toasts[0].text != "User root deactivated" {
		t.Fatalf("unexpected toast text %q", m3.toasts[0].text)
	}
}

func TestToggle_WhileBusy_RefusesSecondFire(t *testing.T) {
	m, client := newTestModel(t)

	m2, cmd := press(t, m, "a")
	if cmd == nil {
		t.Fatalf("expected first fire")
	}
	_, cmd2 := press(t, m2, "a")
	if cmd2 != nil {
		t.Fatalf("expected busy control to refuse second fire")
	}
	if cmd() == nil {
		t.Fatalf("expected done msg from first fire")
	}
	if len(client.subs) != 1 {
		t.Fatalf("expected exactly 1 submission, got %d", len(client.subs))
	}
}

func TestSubmitError_ReenablesAndToasts(t *testing.T) {
	m, client := newTestModel(t)
	client.errs[reconcile.KindUserToggle] = errors.New("connection refused")

	m2, cmd := press(t, m, "a")
	m3, _ := deliver(t, m2, cmd)

	if m3.busy["user-toggle:1"] {
		t.Fatalf("expected control re-enabled after error")
	}
	if !m3.doc.Users[0].User.IsActive {
		t.Fatalf("expected document untouched on error")
	}
	if len(m3.toasts) != 1 || m3.toasts[0].severity != reconcile.SeverityError {
		t.Fatalf("expected one error toast, got %+v", m3.toasts)
	}
	if m3.toasts[0].text != "Unexpected error" {
		t.Fatalf("unexpected toast text %q", m3.toasts[0].text)
	}
}

func TestSettingsSave_TransientSavedLabel(t *testing.T) {
	m, _ := newTestModel(t)
	m.section = sectionSettings
	m.rowIdx[sectionSettings] = settingsFieldPickups

	m2, _ := press(t, m, "right")
	if !m2.settingsDirty || m2.settingsDraft.AllowedPickupsPerDay != 3 {
		t.Fatalf("expected dirty draft with 3 pickups, got %+v", m2.settingsDraft)
	}

	m2.rowIdx[sectionSettings] = settingsRowSave
	m3, cmd := press(t, m2, "enter")
	if cmd == nil {
		t.Fatalf("expected save cmd")
	}
	if !m3.busy[settingsSaveKey] {
		t.Fatalf("expected save button busy")
	}

	m4, _ := deliver(t, m3, cmd)
	if m4.busy[settingsSaveKey] {
		t.Fatalf("expected save button re-enabled")
	}
	if !strings.HasPrefix(m4.savedLabel[settingsSaveKey], "Saved") {
		t.Fatalf("expected transient saved label, got %q", m4.savedLabel[settingsSaveKey])
	}
	if m4.settingsDirty {
		t.Fatalf("expected draft marked clean after save")
	}
	if m4.doc.Settings.AllowedPickupsPerDay != 3 {
		t.Fatalf("expected draft committed to document, got %d", m4.doc.Settings.AllowedPickupsPerDay)
	}

	mAny, _ := m4.Update(submitRestoreMsg{key: settingsSaveKey, seq: m4.savedSeq[settingsSaveKey]})
	m5 := mAny.(appModel)
	if m5.savedLabel[settingsSaveKey] != "" {
		t.Fatalf("expected label restored, got %q", m5.savedLabel[settingsSaveKey])
	}
}

func TestSettingsSave_StaleRestoreIgnored(t *testing.T) {
	m, _ := newTestModel(t)
	m.section = sectionSettings
	m.rowIdx[sectionSettings] = settingsRowSave

	m2, cmd := press(t, m, "enter")
	m3, _ := deliver(t, m2, cmd)
	firstSeq := m3.savedSeq[settingsSaveKey]

	// A second save claims the control before the first restore lands.
	m4, cmd2 := press(t, m3, "enter")
	m5, _ := deliver(t, m4, cmd2)

	mAny, _ := m5.Update(submitRestoreMsg{key: settingsSaveKey, seq: firstSeq})
	m6 := mAny.(appModel)
	if !strings.HasPrefix(m6.savedLabel[settingsSaveKey], "Saved") {
		t.Fatalf("expected stale restore to leave label, got %q", m6.savedLabel[settingsSaveKey])
	}

	mAny, _ = m6.Update(submitRestoreMsg{key: settingsSaveKey, seq: m6.savedSeq[settingsSaveKey]})
	m7 := mAny.(appModel)
	if m7.savedLabel[settingsSaveKey] != "" {
		t.Fatalf("expected current restore to clear label, got %q", m7.savedLabel[settingsSaveKey])
	}
}

func TestUnassignChip_RemovesAndClampsCursor(t *testing.T) {
	m, client := newTestModel(t)
	m.section = sectionPharmacies
	m.rowIdx[sectionPharmacies] = 0
	m.chipIdx = 0

	m2, cmd := press(t, m, "u")
	if cmd == nil {
		t.Fatalf("expected unassign cmd")
	}
	if !m2.busy["unassign-user:20:2"] {
		t.Fatalf("expected chip busy, got %v", m2.busy)
	}

	m3, _ := deliver(t, m2, cmd)
	if got := client.subs[0].URL; got != "/admin/pharmacies/20/unassign" {
		t.Fatalf("unexpected url %q", got)
	}
	if len(m3.doc.Pharmacies[0].Chips) != 0 {
		t.Fatalf("expected chip removed, got %+v", m3.doc.Pharmacies[0].Chips)
	}
	if m3.chipIdx != -1 {
		t.Fatalf("expected chip cursor cleared, got %d", m3.chipIdx)
	}
}

func TestAssign_AlreadyAssigned_InfoNoDuplicate(t *testing.T) {
	m, _ := newTestModel(t)
	m.section = sectionPharmacies
	m.rowIdx[sectionPharmacies] = 0

	// Central's menu preselects dana, who already has a chip there.
	m2, cmd := press(t, m, "A")
	m3, _ := deliver(t, m2, cmd)

	if len(m3.doc.Pharmacies[0].Chips) != 1 {
		t.Fatalf("expected no duplicate chip, got %+v", m3.doc.Pharmacies[0].Chips)
	}
	if len(m3.toasts) != 1 || m3.toasts[0].severity != reconcile.SeverityInfo {
		t.Fatalf("expected info toast, got %+v", m3.toasts)
	}
}

func TestAssign_NewDriver_AppendsChip(t *testing.T) {
	m, _ := newTestModel(t)
	m.section = sectionPharmacies
	m.rowIdx[sectionPharmacies] = 0
	m.doc.Pharmacies[0].AssignMenu.Select("3")

	m2, cmd := press(t, m, "A")
	m3, _ := deliver(t, m2, cmd)

	chips := m3.doc.Pharmacies[0].Chips
	if len(chips) != 2 || chips[1].Label != "miro" {
		t.Fatalf("expected miro chip appended, got %+v", chips)
	}
	if chips[1].UnassignURL != "/admin/pharmacies/20/unassign" {
		t.Fatalf("unexpected unassign url %q", chips[1].UnassignURL)
	}
	if len(m3.toasts) != 1 || m3.toasts[0].severity != reconcile.SeveritySuccess {
		t.Fatalf("expected success toast, got %+v", m3.toasts)
	}
}
