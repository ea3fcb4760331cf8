// Package mutate builds the form submissions both front ends send:
// target URL, method, action kind, field values and row anchors, with
// the same field-level validation the admin page applies before
// dispatch. The TUI assembles submissions from widget state, the CLI
// from flags; both go through here so the wire contract lives in one
// place.
package mutate

import (
	"net/url"
	"strconv"

	"livadm/internal/dashboard"
	"livadm/internal/reconcile"
)

func assignFields(userValue string) url.Values {
	fields := url.Values{}
	fields.Set("user_id", userValue)
	return fields
}

// AssignSelected builds the assign submission for the menu's currently
// selected entry; ok is false when the menu is empty.
func AssignSelected(row *dashboard.PharmacyRow) (reconcile.Submission, bool) {
	sel, ok := row.AssignMenu.Selected()
	if !ok {
		return reconcile.Submission{}, false
	}
	return reconcile.Submission{
		Kind:       reconcile.KindAssignUser,
		Method:     "POST",
		URL:        dashboard.AssignPath(row.Pharmacy.ID),
		Fields:     assignFields(sel.Value),
		PharmacyID: row.Pharmacy.ID,
	}, true
}

// AssignUser is the direct form of AssignSelected for callers that
// already know the user id.
func AssignUser(pharmacyID, userID int) reconcile.Submission {
	return reconcile.Submission{
		Kind:       reconcile.KindAssignUser,
		Method:     "POST",
		URL:        dashboard.AssignPath(pharmacyID),
		Fields:     assignFields(strconv.Itoa(userID)),
		PharmacyID: pharmacyID,
	}
}

// Unassign posts to the chip's own endpoint, the one the document
// carries per chip.
func Unassign(pharmacyID int, chip dashboard.Chip) reconcile.Submission {
	return reconcile.Submission{
		Kind:       reconcile.KindUnassignUser,
		Method:     "POST",
		URL:        chip.UnassignURL,
		Fields:     assignFields(strconv.Itoa(chip.UserID)),
		PharmacyID: pharmacyID,
		UserID:     chip.UserID,
	}
}
