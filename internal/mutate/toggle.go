package mutate

import (
	"net/url"

	"livadm/internal/dashboard"
	"livadm/internal/model"
	"livadm/internal/reconcile"
)

// Toggle submissions carry no fields; the server flips the flag and
// answers with the new state.

func ToggleUser(u model.User) reconcile.Submission {
	return reconcile.Submission{
		Kind:   reconcile.KindUserToggle,
		Method: "POST",
		URL:    dashboard.UserTogglePath(u.ID),
		Fields: url.Values{},
		UserID: u.ID,
	}
}

func ToggleRegion(r model.Region) reconcile.Submission {
	return reconcile.Submission{
		Kind:     reconcile.KindRegionToggle,
		Method:   "POST",
		URL:      dashboard.RegionTogglePath(r.ID),
		Fields:   url.Values{},
		RegionID: r.ID,
	}
}

func TogglePharmacy(p model.Pharmacy) reconcile.Submission {
	return reconcile.Submission{
		Kind:       reconcile.KindPharmacyToggle,
		Method:     "POST",
		URL:        dashboard.PharmacyTogglePath(p.ID),
		Fields:     url.Values{},
		PharmacyID: p.ID,
	}
}
