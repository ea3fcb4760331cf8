package reconcile

import (
	"fmt"

	"livadm/internal/dashboard"
)

// Toggle routines prefer the explicit boolean in the payload and fall
// back to inverting the pill's current rendering when the server omits
// it. A missing row means page and response are out of sync; the
// routine aborts silently.

func flipped(current bool, r Toggled) bool {
	if r.IsActive != nil {
		return *r.IsActive
	}
	return !current
}

func toggleWord(active bool) string {
	if active {
		return "activated"
	}
	return "deactivated"
}

func applyUserToggle(doc *dashboard.Document, sub Submission, r Toggled) Outcome {
	row, ok := doc.FindUser(sub.UserID)
	if !ok {
		return Outcome{}
	}
	row.User.IsActive = flipped(row.User.IsActive, r)
	return successOutcome(fmt.Sprintf("User %s %s", row.User.Login, toggleWord(row.User.IsActive)))
}

func applyRegionToggle(doc *dashboard.Document, sub Submission, r Toggled) Outcome {
	row, ok := doc.FindRegion(sub.RegionID)
	if !ok {
		return Outcome{}
	}
	row.Region.IsActive = flipped(row.Region.IsActive, r)
	return successOutcome(fmt.Sprintf("Region %s %s", row.Region.Name, toggleWord(row.Region.IsActive)))
}

func applyPharmacyToggle(doc *dashboard.Document, sub Submission, r Toggled) Outcome {
	row, ok := doc.FindPharmacy(sub.PharmacyID)
	if !ok {
		return Outcome{}
	}
	row.Pharmacy.IsActive = flipped(row.Pharmacy.IsActive, r)
	return successOutcome(fmt.Sprintf("Pharmacy %s %s", row.Pharmacy.Name, toggleWord(row.Pharmacy.IsActive)))
}
