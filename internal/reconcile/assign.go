package reconcile

import (
	"fmt"
	"strconv"

	"livadm/internal/dashboard"
)

func chipLabel(doc *dashboard.Document, userID int) string {
	if u, ok := doc.FindUser(userID); ok {
		return u.User.Label()
	}
	return strconv.Itoa(userID)
}

// applyAssign appends a chip for the user named by the form's hidden
// user_id field. An already-assigned signal, from the server or from
// the defensive chip scan, is an informational no-op; never two chips
// for one identity.
func applyAssign(doc *dashboard.Document, sub Submission, r Assigned) Outcome {
	row, ok := doc.FindPharmacy(sub.PharmacyID)
	if !ok {
		return Outcome{}
	}
	userID := sub.FieldInt("user_id")
	if userID == 0 {
		return Outcome{}
	}

	label := chipLabel(doc, userID)
	if r.AlreadyAssigned || row.HasChip(userID) {
		return infoOutcome(fmt.Sprintf("%s is already assigned", label))
	}

	row.Chips = append(row.Chips, dashboard.Chip{
		UserID:      userID,
		Label:       label,
		UnassignURL: UnassignURLFrom(sub.URL),
	})
	return successOutcome(fmt.Sprintf("Assigned %s", label))
}

// applyUnassign removes exactly the chip for the submitted user id and
// names it from the label read before removal.
func applyUnassign(doc *dashboard.Document, sub Submission, r Ack) Outcome {
	row, ok := doc.FindPharmacy(sub.PharmacyID)
	if !ok {
		return Outcome{}
	}
	userID := sub.FieldInt("user_id")
	if userID == 0 {
		return Outcome{}
	}

	label, ok := row.RemoveChip(userID)
	if !ok {
		return Outcome{}
	}
	return successOutcome(fmt.Sprintf("Unassigned %s", label))
}
