package reconcile

import (
	"fmt"
	"strconv"

	"livadm/internal/dashboard"
)

// Creation routines validate the success marker and entity object
// before touching the document: a malformed payload means no partial
// insertion, only an error toast.

func applyUserCreate(doc *dashboard.Document, sub Submission, r UserCreated) Outcome {
	if !r.Succeeded() || r.User.ID == 0 {
		if r.Err() != "" {
			// Already surfaced by Apply.
			return Outcome{}
		}
		return errorOutcome("Create user failed")
	}

	doc.Users = append(doc.Users, dashboard.UserRow{User: r.User})

	if r.User.Role.Assignable() {
		entry := dashboard.Entry{
			Value: strconv.Itoa(r.User.ID),
			Label: r.User.Label(),
		}
		for i := range doc.Pharmacies {
			doc.Pharmacies[i].AssignMenu.Add(entry)
		}
	}

	out := successOutcome(fmt.Sprintf("User %s created", r.User.Login))
	out.ClearForm = true
	return out
}

func applyRegionCreate(doc *dashboard.Document, sub Submission, r RegionCreated) Outcome {
	if !r.Succeeded() || r.Region.ID == 0 {
		if r.Err() != "" {
			return Outcome{}
		}
		return errorOutcome("Create region failed")
	}

	doc.Regions = append(doc.Regions, dashboard.RegionRow{Region: r.Region})

	out := successOutcome(fmt.Sprintf("Region %s created", r.Region.Name))
	out.ClearForm = true
	return out
}

// applyPharmacyCreate takes the deliberate simplified path: the row
// carries too much structure to synthesize safely (chips, menu, cutoff
// labels), so it reports success and asks for a full document refetch.
func applyPharmacyCreate(doc *dashboard.Document, sub Submission, r PharmacyCreated) Outcome {
	if !r.Succeeded() || r.Pharmacy.ID == 0 {
		if r.Err() != "" {
			return Outcome{}
		}
		return errorOutcome("Create pharmacy failed")
	}

	out := successOutcome(fmt.Sprintf("Pharmacy %s created", r.Pharmacy.Name))
	out.ClearForm = true
	out.Refresh = true
	return out
}
