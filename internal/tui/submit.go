package tui

import (
	"context"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"livadm/internal/api"
	"livadm/internal/dashboard"
	"livadm/internal/reconcile"
)

// settingsSaveKey is the control key of the one plain (KindNone) form
// on the dashboard.
const settingsSaveKey = "settings-save"

// controlKey names the UI control a submission belongs to. Busy state,
// the double-fire guard and saved labels all key off it.
func controlKey(sub reconcile.Submission) string {
	tag := sub.Kind.Tag()
	switch sub.Kind {
	case reconcile.KindNone:
		return settingsSaveKey
	case reconcile.KindUserCreate, reconcile.KindRegionCreate, reconcile.KindPharmacyCreate:
		return tag
	case reconcile.KindUserToggle, reconcile.KindUserDelete, reconcile.KindUserPassword, reconcile.KindUserGPSMode:
		return tag + ":" + strconv.Itoa(sub.UserID)
	case reconcile.KindRegionToggle, reconcile.KindRegionDelete:
		return tag + ":" + strconv.Itoa(sub.RegionID)
	case reconcile.KindUnassignUser:
		return tag + ":" + strconv.Itoa(sub.PharmacyID) + ":" + strconv.Itoa(sub.FieldInt("user_id"))
	}
	// Remaining kinds are pharmacy-scoped.
	return tag + ":" + strconv.Itoa(sub.PharmacyID)
}

// startSubmission marks the control busy and launches the request. A
// control already in flight refuses to fire again; the caller sees nil
// and nothing happens, which is the whole point.
func (m *appModel) startSubmission(sub reconcile.Submission) tea.Cmd {
	key := controlKey(sub)
	if m.busy[key] {
		return nil
	}
	m.busy[key] = true
	m.submitSeq++
	seq := m.submitSeq

	client := m.client
	return func() tea.Msg {
		res, err := client.Do(context.Background(), sub)
		return submitDoneMsg{key: key, seq: seq, sub: sub, res: res, err: err}
	}
}

func (m *appModel) handleSubmitDone(msg submitDoneMsg) tea.Cmd {
	delete(m.busy, msg.key)

	if msg.err != nil {
		return m.notifyError(api.ToastMessage(msg.err))
	}

	if msg.sub.Kind == reconcile.KindNone {
		// Plain form: no reconciliation, just transient button feedback.
		m.savedLabel[msg.key] = "Saved " + glyphCheck()
		m.savedSeq[msg.key] = msg.seq
		if msg.key == settingsSaveKey {
			m.settingsDirty = false
			if m.doc != nil {
				m.doc.Settings = m.settingsDraft
			}
		}
		key, seq := msg.key, msg.seq
		return tea.Tick(savedLabelDelay, func(time.Time) tea.Msg {
			return submitRestoreMsg{key: key, seq: seq}
		})
	}

	if m.doc == nil {
		return nil
	}
	out := reconcile.Apply(m.doc, msg.sub, msg.res)
	return m.applyOutcome(out)
}

// handleSubmitRestore puts a control's label back after the "Saved"
// interval, unless a newer save has claimed the control since.
func (m *appModel) handleSubmitRestore(msg submitRestoreMsg) {
	if m.savedSeq[msg.key] != msg.seq {
		return
	}
	delete(m.savedLabel, msg.key)
	delete(m.savedSeq, msg.key)
}

// applyOutcome carries out a reconciliation's UI directives. The
// document is already mutated; this is toasts, form state and the
// optional refetch.
func (m *appModel) applyOutcome(out reconcile.Outcome) tea.Cmd {
	var cmds []tea.Cmd
	if cmd := m.notify(out.Toasts); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if out.ClearForm {
		m.clearFormInputs()
	}
	if out.CloseModal {
		m.closeModal()
	}
	// A form modal that succeeded has nothing more to offer: close it
	// too. The inputs were cleared above so reopening starts blank.
	if out.ClearForm && !out.HasError() {
		switch m.modal {
		case modalNewUser, modalNewRegion, modalNewPharmacy, modalPassword:
			m.closeModal()
		}
	}
	if out.Refresh {
		cmds = append(cmds, m.fetchSnapshot())
	}
	m.clampCursors()
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// clampCursors pulls row and chip cursors back in range after rows or
// chips disappear.
func (m *appModel) clampCursors() {
	for id := sectionID(0); id < sectionCount; id++ {
		n := m.rowCount(id)
		if m.rowIdx[id] >= n {
			m.rowIdx[id] = n - 1
		}
		if m.rowIdx[id] < 0 {
			m.rowIdx[id] = 0
		}
	}
	if r := m.selectedPharmacy(); r != nil {
		if m.chipIdx >= len(r.Chips) {
			m.chipIdx = len(r.Chips) - 1
		}
	} else {
		m.chipIdx = -1
	}
}

// fetchSnapshot launches a full dashboard refetch. Bumping the sequence
// first invalidates any fetch still in flight.
func (m *appModel) fetchSnapshot() tea.Cmd {
	m.snapshotSeq++
	seq := m.snapshotSeq
	client := m.client
	return func() tea.Msg {
		snap, err := client.FetchDashboard(context.Background())
		return snapshotMsg{seq: seq, snap: snap, err: err}
	}
}

func (m *appModel) handleSnapshot(msg snapshotMsg) tea.Cmd {
	if msg.seq != m.snapshotSeq {
		return nil
	}
	m.loading = false
	if msg.err != nil {
		m.loadErr = msg.err
		if m.doc != nil {
			// Keep showing the stale document; the toast says why.
			return m.notifyError(api.ToastMessage(msg.err))
		}
		return nil
	}
	m.loadErr = nil
	m.doc = dashboard.BuildDocument(msg.snap)
	if !m.settingsDirty {
		m.settingsDraft = m.doc.Settings
	}
	m.clampCursors()
	return nil
}

