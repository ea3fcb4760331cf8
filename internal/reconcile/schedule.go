package reconcile

import (
	"strings"

	"livadm/internal/dashboard"
	"livadm/internal/model"
)

// applyCutoffSet re-renders the pharmacy's default-cutoff label from
// whichever of the three payload shapes arrived: a pre-formatted
// label, a raw time value to truncate, or nothing (the muted "no
// cutoff" rendering).
func applyCutoffSet(doc *dashboard.Document, sub Submission, r CutoffSaved) Outcome {
	row, ok := doc.FindPharmacy(sub.PharmacyID)
	if !ok {
		return Outcome{}
	}

	switch {
	case strings.TrimSpace(r.Label) != "":
		row.DefaultCutoffLabel = strings.TrimSpace(r.Label)
	case r.Raw != nil && strings.TrimSpace(*r.Raw) != "":
		hhmm, err := model.NormalizeHHMM(*r.Raw)
		if err != nil {
			// Unusable raw value; keep the old rendering.
			return Outcome{}
		}
		row.DefaultCutoffLabel = hhmm
	default:
		row.DefaultCutoffLabel = ""
	}
	return successOutcome("Cutoff updated")
}

// applyCutoffsWeek recomputes the weekly summary from the seven form
// fields, not from the payload, then closes the editor modal.
func applyCutoffsWeek(doc *dashboard.Document, sub Submission, r WeekSaved) Outcome {
	row, ok := doc.FindPharmacy(sub.PharmacyID)
	if !ok {
		return Outcome{}
	}

	row.Pharmacy.Cutoffs = model.WeekFromForm(sub.Fields)

	out := successOutcome("Cutoffs saved")
	out.CloseModal = true
	return out
}
