package mutate

import (
	"net/url"

	"livadm/internal/dashboard"
	"livadm/internal/reconcile"
)

// Deletes cascade on the server (dependent records go with the row),
// so both front ends confirm before calling these.

func DeleteUser(id int) reconcile.Submission {
	return reconcile.Submission{
		Kind:   reconcile.KindUserDelete,
		Method: "POST",
		URL:    dashboard.UserDeletePath(id),
		Fields: url.Values{},
		UserID: id,
	}
}

func DeleteRegion(id int) reconcile.Submission {
	return reconcile.Submission{
		Kind:     reconcile.KindRegionDelete,
		Method:   "POST",
		URL:      dashboard.RegionDeletePath(id),
		Fields:   url.Values{},
		RegionID: id,
	}
}

func DeletePharmacy(id int) reconcile.Submission {
	return reconcile.Submission{
		Kind:       reconcile.KindPharmacyDelete,
		Method:     "POST",
		URL:        dashboard.PharmacyDeletePath(id),
		Fields:     url.Values{},
		PharmacyID: id,
	}
}
