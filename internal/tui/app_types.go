package tui

import (
	"livadm/internal/dashboard"
	"livadm/internal/reconcile"
)

type sectionID int

const (
	sectionStats sectionID = iota
	sectionUsers
	sectionRegions
	sectionPharmacies
	sectionSettings

	sectionCount // sentinel, keep last
)

// key is the stable id used for persisted collapse state.
func (s sectionID) key() string {
	switch s {
	case sectionStats:
		return "stats"
	case sectionUsers:
		return "users"
	case sectionRegions:
		return "regions"
	case sectionPharmacies:
		return "pharmacies"
	case sectionSettings:
		return "settings"
	}
	return ""
}

func (s sectionID) title() string {
	switch s {
	case sectionStats:
		return "Stats"
	case sectionUsers:
		return "Users"
	case sectionRegions:
		return "Regions"
	case sectionPharmacies:
		return "Pharmacies"
	case sectionSettings:
		return "Settings"
	}
	return ""
}

type modalKind int

const (
	modalNone modalKind = iota
	modalNewUser
	modalNewRegion
	modalNewPharmacy
	modalPassword
	modalCutoffs
	modalConfirmDelete
)

type confirmModalFocus int

const (
	confirmFocusConfirm confirmModalFocus = iota
	confirmFocusCancel
)

// snapshotMsg delivers a dashboard refetch. seq guards against a stale
// fetch landing after a newer one was requested.
type snapshotMsg struct {
	seq  int
	snap dashboard.Snapshot
	err  error
}

// submitDoneMsg delivers the classified outcome of one submission. key
// names the originating control so exactly that control re-enables.
type submitDoneMsg struct {
	key string
	seq int
	sub reconcile.Submission
	res reconcile.Result
	err error
}

// submitRestoreMsg restores a submit control's idle label after the
// transient "Saved" state. Stale seqs (control resubmitted since) are
// dropped.
type submitRestoreMsg struct {
	key string
	seq int
}

// toastExpireMsg removes the toast carrying this seq, if it is still
// showing. A toast dismissed by hand leaves its tick to expire on
// nothing.
type toastExpireMsg struct {
	seq int
}

type toast struct {
	seq      int
	severity reconcile.Severity
	text     string
}
