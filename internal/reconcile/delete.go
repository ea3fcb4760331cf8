package reconcile

import (
	"fmt"
	"strconv"

	"livadm/internal/dashboard"
)

// Delete routines capture the row label (second column) before removal
// so the toast can still name the entity.

func applyUserDelete(doc *dashboard.Document, sub Submission, r Ack) Outcome {
	row, ok := doc.FindUser(sub.UserID)
	if !ok {
		return Outcome{}
	}
	label := row.Cells()[1]
	doc.RemoveUser(sub.UserID)

	// Purge the identity from every assign menu; the Menu invariant
	// handles selection promotion and the empty placeholder.
	value := strconv.Itoa(sub.UserID)
	for i := range doc.Pharmacies {
		doc.Pharmacies[i].AssignMenu.Remove(value)
	}

	return successOutcome(fmt.Sprintf("User %s deleted", label))
}

func applyRegionDelete(doc *dashboard.Document, sub Submission, r Ack) Outcome {
	row, ok := doc.FindRegion(sub.RegionID)
	if !ok {
		return Outcome{}
	}
	label := row.Cells()[1]
	doc.RemoveRegion(sub.RegionID)
	return successOutcome(fmt.Sprintf("Region %s deleted", label))
}

func applyPharmacyDelete(doc *dashboard.Document, sub Submission, r Ack) Outcome {
	row, ok := doc.FindPharmacy(sub.PharmacyID)
	if !ok {
		return Outcome{}
	}
	label := row.Cells()[1]
	doc.RemovePharmacy(sub.PharmacyID)
	return successOutcome(fmt.Sprintf("Pharmacy %s deleted", label))
}
