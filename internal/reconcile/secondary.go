package reconcile

import (
	"livadm/internal/dashboard"
	"livadm/internal/model"
)

// Secondary-field updates confirm with a fixed message and never name
// the entity. They gate on the success marker: a logical failure was
// already surfaced and a confirmation on top of it would lie.

func applyPassword(doc *dashboard.Document, sub Submission, r Ack) Outcome {
	if !r.Succeeded() {
		return Outcome{}
	}
	out := successOutcome("Password updated")
	// Wipe the sensitive inputs.
	out.ClearForm = true
	return out
}

func applyGPSMode(doc *dashboard.Document, sub Submission, r GPSModeSet) Outcome {
	if !r.Succeeded() {
		return Outcome{}
	}
	row, ok := doc.FindUser(sub.UserID)
	if !ok {
		return Outcome{}
	}
	if mode, err := model.ParseGPSMode(r.GPSMode); err == nil {
		row.User.GPSMode = mode
	}
	return successOutcome("GPS mode updated")
}
